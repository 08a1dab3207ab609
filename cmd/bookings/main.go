package main

import (
	"context"

	"roombook/internal/bookings/events"
	bookinghandler "roombook/internal/bookings/handler"
	bookingrepository "roombook/internal/bookings/repository"
	bookingservice "roombook/internal/bookings/service"
	"roombook/internal/bookings/validator"
	roomhandler "roombook/internal/rooms/handler"
	roomrepository "roombook/internal/rooms/repository"
	roomservice "roombook/internal/rooms/service"
	"roombook/pkg/app"
	"roombook/pkg/clock"
	"roombook/pkg/config"
	"roombook/pkg/idgen"
	"roombook/pkg/kafka"
	kafka_middleware "roombook/pkg/kafka/middleware"

	"github.com/joho/godotenv"
)

const ServiceName = "bookings"

func main() {
	// A missing .env is fine; the environment is authoritative.
	_ = godotenv.Load()

	cfg := config.Load(ServiceName)
	cfg.Log.Info("Starting Bookings service")

	rooms := initRooms(cfg)
	publisher := initPublisher(cfg)

	bookingService := bookingservice.NewBookingService(
		bookingrepository.NewInMemoryBookingRepository(),
		rooms,
		validator.NewBookingValidator(cfg.Log, cfg.MaxBookingDuration),
		clock.System(),
		idgen.UUID(),
		publisher,
		cfg.Log,
	)

	serverApp := app.NewApplication(cfg)
	serverApp.SetApp(
		roomhandler.NewRoomHandler(roomservice.NewRoomService(rooms, cfg.Log), cfg.Log),
		bookinghandler.NewBookingHandler(bookingService, cfg.Log),
	)
	serverApp.OnShutdown("event publisher", publisher.Close)
	serverApp.OnShutdown("mongo client", func() error {
		cfg.GracefulShutdown()
		return nil
	})
	serverApp.Run()
}

func initRooms(cfg *config.Config) roomrepository.RoomRepository {
	source := roomrepository.NewSeedRoomSource(cfg.Rooms)
	if cfg.UsesMongo() {
		if err := cfg.SetMongo(); err != nil {
			cfg.Log.Fatal("Failed to connect to MongoDB", "error", err)
		}
		source = roomrepository.NewMongoRoomSource(cfg.Client.Mongo, cfg.MongoDatabaseName)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.MongoConnTimeout)
	defer cancel()

	rooms, err := roomrepository.LoadRegistry(ctx, source)
	if err != nil {
		cfg.Log.Fatal("Failed to load room registry", "source", cfg.RoomsSource, "error", err)
	}

	cfg.Log.Info("Room registry loaded", "source", cfg.RoomsSource, "rooms", rooms.Count())
	return rooms
}

func initPublisher(cfg *config.Config) events.Publisher {
	if !cfg.Kafka.Enabled {
		cfg.Log.Info("Kafka disabled, booking events will not be published")
		return events.NewNoopPublisher()
	}

	producer, err := kafka.NewProducer(cfg.Kafka, cfg.Kafka.BookingTopic, cfg.Kafka.DLQTopic, cfg.Log)
	if err != nil {
		cfg.Log.Fatal("Failed to create Kafka producer", "error", err)
	}
	if cfg.Kafka.EnableMiddleware {
		producer.Use(kafka_middleware.LoggingProducerMiddleware(cfg.Log))
	}

	cfg.Log.Info("Kafka producer initialized", "topic", cfg.Kafka.BookingTopic, "dlq_topic", cfg.Kafka.DLQTopic)
	return events.NewKafkaPublisher(producer)
}
