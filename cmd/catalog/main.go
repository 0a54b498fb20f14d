package main

import (
	"atlascars/internal/catalog/events"
	"atlascars/internal/catalog/handler"
	"atlascars/internal/catalog/notifier"
	"atlascars/internal/catalog/repository"
	"atlascars/internal/catalog/service"
	"atlascars/internal/catalog/validator"
	"atlascars/pkg/app"
	"atlascars/pkg/config"
)

const ServiceName = "catalog"

func main() {
	cfg := config.Load(ServiceName)

	cfg.Log.Info("Starting Catalog service")
	cfg.SetMongo()
	defer cfg.GracefulShutdown()

	carService, bookingService, publisher := initServices(cfg)

	serverApp := app.NewApplication()
	serverApp.SetApp(cfg,
		handler.NewRouter(
			handler.NewCarHandler(carService, cfg.Log),
			handler.NewBookingHandler(bookingService, cfg.Log),
		),
		handler.NewHealthHandler(cfg.Client.Mongo, cfg.Log),
	)
	serverApp.OnShutdown(func() {
		if err := publisher.Close(); err != nil {
			cfg.Log.Error("Failed to close lead publisher", "error", err)
		}
	})
	serverApp.Run()
}

func initServices(cfg *config.Config) (service.CarService, service.BookingService, events.LeadPublisher) {
	carRepo := repository.NewMongoCarRepository(cfg)
	bookingRepo := repository.NewMongoBookingRepository(cfg)
	bookingValidator := validator.NewBookingValidator(cfg.Log)

	bookingNotifier := notifier.NewEmailNotifier(
		cfg.SendgridAPIKey,
		cfg.SiteName,
		cfg.SenderEmail,
		cfg.SupportEmail,
		cfg.Log,
	)

	publisher := initPublisher(cfg)

	carService := service.NewCarService(carRepo, cfg)
	bookingService := service.NewBookingService(
		bookingRepo,
		carRepo,
		bookingValidator,
		bookingNotifier,
		publisher,
		cfg,
	)

	cfg.Log.Info("Catalog services initialized", "database", cfg.MongoDatabaseName)
	return carService, bookingService, publisher
}

func initPublisher(cfg *config.Config) events.LeadPublisher {
	if !cfg.KafkaEnabled() {
		cfg.Log.Info("Kafka brokers not configured, lead events disabled")
		return events.NewNoopLeadPublisher()
	}

	publisher, err := events.NewKafkaLeadPublisher(cfg.KafkaBrokers, cfg.KafkaLeadTopic, cfg.Log)
	if err != nil {
		cfg.Log.Fatal("Failed to initialize lead publisher", "error", err)
	}
	return publisher
}
