package repository

import (
	"context"
	"errors"
	"testing"

	roomserrors "roombook/internal/rooms/errors"
	"roombook/pkg/model"
)

func TestNewRoomRegistry(t *testing.T) {
	tests := []struct {
		name    string
		rooms   []model.Room
		wantErr error
	}{
		{
			name:  "valid rooms",
			rooms: []model.Room{{ID: "A", Name: "Meeting room A"}, {ID: "B", Name: "Meeting room B"}},
		},
		{
			name:    "empty id",
			rooms:   []model.Room{{ID: "  ", Name: "Nameless"}},
			wantErr: roomserrors.ErrInvalidSeed,
		},
		{
			name:    "duplicate id after normalization",
			rooms:   []model.Room{{ID: "A"}, {ID: " A "}},
			wantErr: roomserrors.ErrDuplicateID,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRoomRegistry(tt.rooms)
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestRoomRegistry_Lookups(t *testing.T) {
	registry, err := NewRoomRegistry([]model.Room{
		{ID: "B", Name: "Meeting room B"},
		{ID: "A", Name: "  Meeting   room A "},
		{ID: "C"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !registry.Exists("A") || registry.Exists("Z") {
		t.Errorf("Exists() returned wrong results")
	}

	room, err := registry.FindByID("A")
	if err != nil {
		t.Fatalf("FindByID(A) failed: %v", err)
	}
	if room.Name != "Meeting room A" {
		t.Errorf("expected normalized name, got %q", room.Name)
	}

	if _, err := registry.FindByID("Z"); !errors.Is(err, roomserrors.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}

	all := registry.FindAll()
	if len(all) != 3 || registry.Count() != 3 {
		t.Fatalf("expected 3 rooms, got %d", len(all))
	}
	for i, want := range []string{"B", "A", "C"} {
		if all[i].ID != want {
			t.Errorf("position %d: expected %s, got %s", i, want, all[i].ID)
		}
	}
	if all[2].Name != "C" {
		t.Errorf("room without name should fall back to its ID, got %q", all[2].Name)
	}

	all[0].Name = "mutated"
	again, _ := registry.FindByID("B")
	if again.Name != "Meeting room B" {
		t.Errorf("registry leaked internal state: %q", again.Name)
	}
}

func TestParseSeed(t *testing.T) {
	rooms, err := ParseSeed("A=Meeting room A; B = Meeting room B ;C;")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []model.Room{
		{ID: "A", Name: "Meeting room A"},
		{ID: "B", Name: "Meeting room B"},
		{ID: "C", Name: ""},
	}
	if len(rooms) != len(want) {
		t.Fatalf("expected %d rooms, got %d", len(want), len(rooms))
	}
	for i := range want {
		if rooms[i] != want[i] {
			t.Errorf("room %d = %+v, want %+v", i, rooms[i], want[i])
		}
	}

	for _, bad := range []string{"", " ; ", "=Nameless"} {
		if _, err := ParseSeed(bad); !errors.Is(err, roomserrors.ErrInvalidSeed) {
			t.Errorf("ParseSeed(%q) expected ErrInvalidSeed, got %v", bad, err)
		}
	}
}

func TestLoadRegistry_FromSeed(t *testing.T) {
	registry, err := LoadRegistry(context.Background(), NewSeedRoomSource("A=Meeting room A;B=Meeting room B"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if registry.Count() != 2 {
		t.Errorf("expected 2 rooms, got %d", registry.Count())
	}

	if _, err := LoadRegistry(context.Background(), NewSeedRoomSource("A;A")); !errors.Is(err, roomserrors.ErrDuplicateID) {
		t.Errorf("expected ErrDuplicateID, got %v", err)
	}
}
