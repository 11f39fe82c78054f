package main

import (
	"github.com/joho/godotenv"

	assethandler "assetbook/internal/assets/handler"
	assetrepo "assetbook/internal/assets/repository"
	assetservice "assetbook/internal/assets/service"
	assetvalidator "assetbook/internal/assets/validator"
	bookinghandler "assetbook/internal/bookings/handler"
	bookingrepo "assetbook/internal/bookings/repository"
	bookingservice "assetbook/internal/bookings/service"
	bookingvalidator "assetbook/internal/bookings/validator"
	confighandler "assetbook/internal/displayconfig/handler"
	configrepo "assetbook/internal/displayconfig/repository"
	configservice "assetbook/internal/displayconfig/service"
	"assetbook/pkg/app"
	"assetbook/pkg/config"
	"assetbook/pkg/contracts"
	"assetbook/pkg/kafka"
	kafka_config "assetbook/pkg/kafka/config"
)

const ServiceName = "assetbook"

func main() {
	// Missing .env is fine; the environment itself may carry the config.
	_ = godotenv.Load()

	cfg := config.Load(ServiceName)
	cfg.SetMongo()

	cfg.Log.Info("Starting assetbook service")

	events, closeEvents := initEvents(cfg)
	defer closeEvents()

	serverApp := app.NewApplication(cfg)
	serverApp.SetApp(initHandlers(cfg, events)...)
	serverApp.Run()
}

func initHandlers(cfg *config.Config, events bookingservice.EventPublisher) []contracts.Handler {
	assetValidator := assetvalidator.NewAssetValidator(cfg.Log)
	assetRepo := assetrepo.NewMongoAssetRepository(cfg)
	assetService := assetservice.NewAssetService(assetRepo, assetValidator, cfg)

	bookingValidator := bookingvalidator.NewBookingValidator(cfg.Log)
	bookingRepo := bookingrepo.NewMongoBookingRepository(cfg)
	lockRepo := bookingrepo.NewBookingLockRepository(cfg)
	bookingService := bookingservice.NewBookingService(
		bookingRepo,
		lockRepo,
		assetRepo,
		bookingValidator,
		events,
		cfg,
	)

	settingsRepo := configrepo.NewMongoConfigRepository(cfg)
	settingsService := configservice.NewConfigService(settingsRepo, cfg)

	cfg.Log.Info("Services initialized", "database", cfg.MongoDatabaseName)

	return []contracts.Handler{
		assethandler.NewAssetHandler(assetService, cfg.Log),
		bookinghandler.NewBookingHandler(bookingService, cfg.Log),
		confighandler.NewConfigHandler(settingsService, cfg.Log),
	}
}

// initEvents wires the Kafka producer when event publishing is enabled and
// falls back to a no-op publisher otherwise. Publishing is best effort, so
// a broker outage never blocks bookings.
func initEvents(cfg *config.Config) (bookingservice.EventPublisher, func()) {
	kafkaCfg := kafka_config.Load()
	if !kafkaCfg.Enabled {
		cfg.Log.Info("Kafka publishing disabled, booking events will be dropped")
		return bookingservice.NopPublisher{}, func() {}
	}

	producer, err := kafka.NewProducer(kafkaCfg, kafkaCfg.BookingTopic)
	if err != nil {
		cfg.Log.Error("Failed to initialize Kafka producer, booking events will be dropped", "error", err)
		return bookingservice.NopPublisher{}, func() {}
	}

	cfg.Log.Info("Kafka producer initialized",
		"topic", kafkaCfg.BookingTopic,
		"brokers", kafkaCfg.Brokers,
	)
	return producer, func() {
		if err := producer.Close(); err != nil {
			cfg.Log.Error("Failed to close Kafka producer", "error", err)
		}
	}
}
