package main

import (
	bookinghandler "lawnmow/internal/bookings/handler"
	bookingrepo "lawnmow/internal/bookings/repository"
	bookingservice "lawnmow/internal/bookings/service"
	bookingvalidator "lawnmow/internal/bookings/validator"
	"lawnmow/internal/diagnostics"
	quotehandler "lawnmow/internal/quotes/handler"
	quoterepo "lawnmow/internal/quotes/repository"
	quoteservice "lawnmow/internal/quotes/service"
	quotevalidator "lawnmow/internal/quotes/validator"
	"lawnmow/pkg/app"
	"lawnmow/pkg/config"
	"lawnmow/pkg/events"
)

const ServiceName = "lawnmow"

func main() {
	cfg := config.Load(ServiceName)
	cfg.SetMongo()

	publisher := events.FromConfig(cfg.KafkaBrokers, cfg.KafkaEventTopic, ServiceName, cfg.Log)

	quoteSvc := quoteservice.NewQuoteService(
		quoterepo.NewMongoQuoteRepository(cfg),
		quotevalidator.NewQuoteValidator(cfg.Log),
		publisher,
		cfg,
	)
	bookingSvc := bookingservice.NewBookingService(
		bookingrepo.NewMongoBookingRepository(cfg),
		bookingvalidator.NewBookingValidator(cfg.Log),
		publisher,
		cfg,
	)

	cfg.Log.Info("Services initialized", "database", cfg.MongoDatabaseName)

	serverApp := app.NewApplication(cfg)
	serverApp.SetHandlers(
		quotehandler.NewQuoteHandler(quoteSvc, cfg, cfg.Log),
		bookinghandler.NewBookingHandler(bookingSvc, cfg, cfg.Log),
		diagnostics.NewHandler(cfg.Client.Mongo, cfg.MongoDatabaseName, cfg.Log),
	)
	serverApp.RegisterOnShutdown(func() {
		if err := publisher.Close(); err != nil {
			cfg.Log.Error("Failed to close event publisher", "error", err)
		}
	})
	serverApp.Run()
}
