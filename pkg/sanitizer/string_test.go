package sanitizer

import "testing"

func TestTrimAndNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"only spaces", "   ", ""},
		{"leading and trailing", "  Konferenzraum A  ", "Konferenzraum A"},
		{"inner runs collapsed", "Konferenzraum   A\t(Galaxy)", "Konferenzraum A (Galaxy)"},
		{"newlines collapsed", "Firmen\nwagen", "Firmen wagen"},
		{"already clean", "Beamer Portable", "Beamer Portable"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TrimAndNormalize(tt.input); got != tt.want {
				t.Errorf("TrimAndNormalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeEmail(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"  Max.Mustermann@Example.COM ", "max.mustermann@example.com"},
		{"user@host.de", "user@host.de"},
	}

	for _, tt := range tests {
		if got := NormalizeEmail(tt.input); got != tt.want {
			t.Errorf("NormalizeEmail(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestNormalizeHexColor(t *testing.T) {
	if got := NormalizeHexColor(" #3B82F6 "); got != "#3b82f6" {
		t.Errorf("NormalizeHexColor() = %q, want %q", got, "#3b82f6")
	}
}
