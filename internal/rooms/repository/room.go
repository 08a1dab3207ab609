package repository

import (
	"fmt"

	roomserrors "roombook/internal/rooms/errors"
	"roombook/pkg/model"
	"roombook/pkg/sanitizer"

	"github.com/samber/lo"
)

// RoomRepository is the read-only room registry. Rooms are fixed once the
// process has started, so bookings can never reference a removed room.
type RoomRepository interface {
	Exists(id string) bool
	FindByID(id string) (*model.Room, error)
	FindAll() []*model.Room
	Count() int
}

type inMemoryRoomRepository struct {
	byID  map[string]model.Room
	order []string
}

// NewRoomRegistry builds the registry in the given order. Empty or duplicate
// IDs are rejected.
func NewRoomRegistry(rooms []model.Room) (RoomRepository, error) {
	r := &inMemoryRoomRepository{
		byID:  make(map[string]model.Room, len(rooms)),
		order: make([]string, 0, len(rooms)),
	}

	for i, room := range rooms {
		room.ID = sanitizer.NormalizeIdentifier(room.ID)
		room.Name = sanitizer.NormalizeName(room.Name)

		if room.ID == "" {
			return nil, fmt.Errorf("%w: room at position %d has an empty ID", roomserrors.ErrInvalidSeed, i)
		}
		if _, exists := r.byID[room.ID]; exists {
			return nil, fmt.Errorf("%w: %s", roomserrors.ErrDuplicateID, room.ID)
		}
		if room.Name == "" {
			room.Name = room.ID
		}

		r.byID[room.ID] = room
		r.order = append(r.order, room.ID)
	}

	return r, nil
}

func (r *inMemoryRoomRepository) Exists(id string) bool {
	_, ok := r.byID[id]
	return ok
}

func (r *inMemoryRoomRepository) FindByID(id string) (*model.Room, error) {
	room, ok := r.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", roomserrors.ErrNotFound, id)
	}
	return &room, nil
}

func (r *inMemoryRoomRepository) FindAll() []*model.Room {
	return lo.Map(r.order, func(id string, _ int) *model.Room {
		room := r.byID[id]
		return &room
	})
}

func (r *inMemoryRoomRepository) Count() int {
	return len(r.order)
}
