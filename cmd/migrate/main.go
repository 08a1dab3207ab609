package main

import (
	"context"
	"time"

	mongoMigration "roombook/internal/migrations/mongo"
	roomrepository "roombook/internal/rooms/repository"
	"roombook/pkg/config"

	"github.com/joho/godotenv"
)

const (
	JobName          = "mongo-migration"
	migrationTimeout = 120 * time.Second
)

func main() {
	_ = godotenv.Load()

	ctx, cancel := context.WithTimeout(context.Background(), migrationTimeout)
	defer cancel()

	cfg := config.Load(JobName)
	if err := cfg.SetMongo(); err != nil {
		cfg.Log.Fatal("Failed to connect to MongoDB", "error", err)
	}
	defer cfg.GracefulShutdown()

	cfg.Log.Info("Starting Mongo migration job", "database", cfg.MongoDatabaseName)

	rooms, err := roomrepository.ParseSeed(cfg.Rooms)
	if err != nil {
		cfg.Log.Fatal("Invalid room seed", "error", err)
	}

	migration := mongoMigration.NewMigration(cfg.Client.Mongo.Database(cfg.MongoDatabaseName), cfg.Log)
	if err := migration.Run(ctx, rooms); err != nil {
		cfg.Log.Error("Migration failed", "error", err)
		return
	}

	cfg.Log.Info("Migration completed successfully", "rooms", len(rooms))
}
