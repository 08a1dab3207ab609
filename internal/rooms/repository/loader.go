package repository

import (
	"context"
	"fmt"
	"strings"

	roomserrors "roombook/internal/rooms/errors"
	"roombook/pkg/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	CollectionName = "Rooms"
	// PositionField holds a room's seed index so Mongo-loaded registries keep
	// the configured order.
	PositionField = "position"

	seedEntrySeparator = ";"
	seedPairSeparator  = "="
)

// RoomSource supplies the rooms the registry is seeded with at startup.
type RoomSource interface {
	LoadRooms(ctx context.Context) ([]model.Room, error)
}

type seedRoomSource struct {
	seed string
}

// NewSeedRoomSource reads rooms from a "ID=Name;ID=Name" string.
func NewSeedRoomSource(seed string) RoomSource {
	return &seedRoomSource{seed: seed}
}

func (s *seedRoomSource) LoadRooms(_ context.Context) ([]model.Room, error) {
	return ParseSeed(s.seed)
}

// ParseSeed parses "A=Meeting room A;B=Meeting room B". A bare "C" entry
// uses the ID as its name.
func ParseSeed(seed string) ([]model.Room, error) {
	var rooms []model.Room
	for i, entry := range strings.Split(seed, seedEntrySeparator) {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		id, name, _ := strings.Cut(entry, seedPairSeparator)
		id = strings.TrimSpace(id)
		if id == "" {
			return nil, fmt.Errorf("%w: entry %d (%q) has no room ID", roomserrors.ErrInvalidSeed, i+1, entry)
		}
		rooms = append(rooms, model.Room{ID: id, Name: strings.TrimSpace(name)})
	}

	if len(rooms) == 0 {
		return nil, fmt.Errorf("%w: no rooms defined", roomserrors.ErrInvalidSeed)
	}
	return rooms, nil
}

type mongoRoomSource struct {
	collection *mongo.Collection
}

func NewMongoRoomSource(client *mongo.Client, databaseName string) RoomSource {
	return &mongoRoomSource{
		collection: client.Database(databaseName).Collection(CollectionName),
	}
}

func (s *mongoRoomSource) LoadRooms(ctx context.Context) ([]model.Room, error) {
	cursor, err := s.collection.Find(ctx, bson.M{}, roomsFindOptions())
	if err != nil {
		return nil, fmt.Errorf("failed to find rooms: %w", err)
	}
	defer cursor.Close(ctx)

	var rooms []model.Room
	if err := cursor.All(ctx, &rooms); err != nil {
		return nil, fmt.Errorf("failed to decode rooms: %w", err)
	}
	if len(rooms) == 0 {
		return nil, fmt.Errorf("%w: collection %s is empty", roomserrors.ErrInvalidSeed, CollectionName)
	}
	return rooms, nil
}

// roomsFindOptions orders by seed position; _id breaks ties for documents
// written without one.
func roomsFindOptions() *options.FindOptions {
	return options.Find().SetSort(bson.D{
		{Key: PositionField, Value: 1},
		{Key: "_id", Value: 1},
	})
}

// LoadRegistry reads the source once and freezes the result into a registry.
func LoadRegistry(ctx context.Context, source RoomSource) (RoomRepository, error) {
	rooms, err := source.LoadRooms(ctx)
	if err != nil {
		return nil, err
	}
	return NewRoomRegistry(rooms)
}
