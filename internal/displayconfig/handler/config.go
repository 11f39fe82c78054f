package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"assetbook/internal/displayconfig/service"
	httputil "assetbook/pkg/http"
	"assetbook/pkg/logger"
	"assetbook/pkg/model"
)

type ConfigHandler struct {
	service service.ConfigService
	log     *logger.Logger
}

func NewConfigHandler(service service.ConfigService, log *logger.Logger) *ConfigHandler {
	return &ConfigHandler{
		service: service,
		log:     log,
	}
}

func (h *ConfigHandler) Get(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	settings, err := h.service.Get(r.Context())
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Get", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, settings); err != nil {
		h.log.Error("failed to write success response", "handler", "Get", "error", err)
	}
}

func (h *ConfigHandler) Update(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var updates model.DisplayConfigUpdate
	if err := json.NewDecoder(r.Body).Decode(&updates); err != nil {
		if writeErr := httputil.WriteJSON(w, http.StatusBadRequest, httputil.ErrorResponse{
			Error: "Invalid request body",
		}); writeErr != nil {
			h.log.Error("failed to write JSON response", "handler", "Update", "error", writeErr)
		}
		return
	}

	settings, err := h.service.Update(r.Context(), &updates)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Update", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, settings); err != nil {
		h.log.Error("failed to write success response", "handler", "Update", "error", err)
	}
}

func (h *ConfigHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/api/v1/config", h.Get)
	router.PATCH("/api/v1/config", h.Update)
}
