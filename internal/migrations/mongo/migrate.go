package mongo

import (
	"context"
	"fmt"

	"roombook/internal/migrations/mongo/validators"
	roomrepository "roombook/internal/rooms/repository"
	"roombook/pkg/logger"
	"roombook/pkg/model"

	"github.com/samber/lo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var RoomsIndexes = []mongo.IndexModel{
	{Keys: bson.D{{Key: roomrepository.PositionField, Value: 1}}},
}

type roomDocument struct {
	ID       string `bson:"_id"`
	Name     string `bson:"name"`
	Position int    `bson:"position"`
}

// roomDocuments records each room's seed index as its position.
func roomDocuments(rooms []model.Room) []roomDocument {
	return lo.Map(rooms, func(room model.Room, i int) roomDocument {
		return roomDocument{ID: room.ID, Name: room.Name, Position: i}
	})
}

type Migration struct {
	db  *mongo.Database
	log *logger.Logger
}

func NewMigration(db *mongo.Database, log *logger.Logger) *Migration {
	return &Migration{db: db, log: log}
}

// Run creates the rooms collection with its schema and upserts the seed
// rooms. Running it twice leaves the same state.
func (m *Migration) Run(ctx context.Context, rooms []model.Room) error {
	name := roomrepository.CollectionName
	m.log.Info("Running Mongo migrations", "database", m.db.Name())

	if err := m.ensureCollection(ctx, name, validators.RoomValidator); err != nil {
		return fmt.Errorf("failed to ensure collection %s: %w", name, err)
	}
	if err := m.ensureIndexes(ctx, name, RoomsIndexes); err != nil {
		return fmt.Errorf("failed to ensure indexes for %s: %w", name, err)
	}
	if err := m.upsertRooms(ctx, name, rooms); err != nil {
		return fmt.Errorf("failed to seed %s: %w", name, err)
	}

	m.log.Info("All migrations applied successfully")
	return nil
}

func (m *Migration) ensureCollection(ctx context.Context, name string, validator bson.M) error {
	existing, err := m.db.ListCollectionNames(ctx, bson.D{{Key: "name", Value: name}})
	if err != nil {
		return err
	}

	if len(existing) == 0 {
		m.log.Info("Creating collection", "collection", name)
		opts := options.CreateCollection().SetValidator(validator)
		if err := m.db.CreateCollection(ctx, name, opts); err != nil {
			return fmt.Errorf("failed creating %s: %w", name, err)
		}
		return nil
	}

	m.log.Info("Collection already exists, updating validator", "collection", name)
	command := bson.D{
		{Key: "collMod", Value: name},
		{Key: "validator", Value: validator},
	}
	if err := m.db.RunCommand(ctx, command).Err(); err != nil {
		m.log.Warn("Failed updating validator", "collection", name, "error", err)
	}
	return nil
}

func (m *Migration) ensureIndexes(ctx context.Context, name string, models []mongo.IndexModel) error {
	if _, err := m.db.Collection(name).Indexes().CreateMany(ctx, models); err != nil {
		return err
	}
	m.log.Info("Ensured indexes", "collection", name)
	return nil
}

func (m *Migration) upsertRooms(ctx context.Context, name string, rooms []model.Room) error {
	if len(rooms) == 0 {
		return nil
	}

	writes := lo.Map(roomDocuments(rooms), func(doc roomDocument, _ int) mongo.WriteModel {
		return mongo.NewReplaceOneModel().
			SetFilter(bson.M{"_id": doc.ID}).
			SetReplacement(doc).
			SetUpsert(true)
	})

	result, err := m.db.Collection(name).BulkWrite(ctx, writes, options.BulkWrite().SetOrdered(false))
	if err != nil {
		return err
	}
	m.log.Info("Seeded rooms",
		"collection", name,
		"upserted", result.UpsertedCount,
		"modified", result.ModifiedCount,
	)
	return nil
}
