package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	bookingserrors "roombook/internal/bookings/errors"
	"roombook/internal/bookings/events"
	"roombook/internal/bookings/repository"
	"roombook/internal/bookings/validator"
	roomsrepository "roombook/internal/rooms/repository"
	"roombook/pkg/clock"
	"roombook/pkg/idgen"
	"roombook/pkg/logger"
	"roombook/pkg/model"
)

type publishedEvent struct {
	eventType events.Type
	booking   model.Booking
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []publishedEvent
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, eventType events.Type, booking *model.Booking) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	p.events = append(p.events, publishedEvent{eventType: eventType, booking: *booking})
	return nil
}

func (p *recordingPublisher) Close() error { return nil }

type fixture struct {
	svc       BookingService
	repo      repository.BookingRepository
	clock     *clock.Fixed
	publisher *recordingPublisher
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	rooms, err := roomsrepository.NewRoomRegistry([]model.Room{
		{ID: "A", Name: "Meeting room A"},
		{ID: "B", Name: "Meeting room B"},
	})
	if err != nil {
		t.Fatalf("failed to build room registry: %v", err)
	}

	log := logger.NewNop()
	repo := repository.NewInMemoryBookingRepository()
	clk := clock.NewFixed(time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC))
	publisher := &recordingPublisher{}

	return &fixture{
		svc:       NewBookingService(repo, rooms, validator.NewBookingValidator(log, 0), clk, idgen.NewSequence("bk"), publisher, log),
		repo:      repo,
		clock:     clk,
		publisher: publisher,
	}
}

// at returns the given wall time on 2025-01-01 UTC.
func at(hour, minute int) time.Time {
	return time.Date(2025, 1, 1, hour, minute, 0, 0, time.UTC)
}

func createReq(roomID, userID string, start, end time.Time) *model.BookingCreate {
	return &model.BookingCreate{RoomID: roomID, UserID: userID, StartTime: start, EndTime: end}
}

func (f *fixture) mustCreate(t *testing.T, roomID, userID string, start, end time.Time) *model.Booking {
	t.Helper()
	booking, err := f.svc.Create(context.Background(), createReq(roomID, userID, start, end))
	if err != nil {
		t.Fatalf("Create(%s, %s, %s, %s) failed: %v", roomID, userID, start, end, err)
	}
	return booking
}

func (f *fixture) count(t *testing.T) int {
	t.Helper()
	n, err := f.repo.Count(context.Background())
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	return n
}

func TestBookingService_ConcreteScenario(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	x := f.mustCreate(t, "A", "user1", at(10, 0), at(11, 0))

	_, err := f.svc.Create(ctx, createReq("A", "user2", at(10, 30), at(11, 30)))
	if !errors.Is(err, bookingserrors.ErrOverlap) {
		t.Fatalf("expected ErrOverlap, got %v", err)
	}

	if _, err := f.svc.Update(ctx, x.ID, &model.BookingUpdate{StartTime: at(11, 0), EndTime: at(12, 0)}); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	if _, err := f.svc.Create(ctx, createReq("A", "user2", at(10, 30), at(11, 0))); err != nil {
		t.Fatalf("expected booking before the moved one to succeed, got %v", err)
	}

	if n := f.count(t); n != 2 {
		t.Errorf("expected 2 bookings, got %d", n)
	}
}

func TestBookingService_Create(t *testing.T) {
	f := newFixture(t)

	booking := f.mustCreate(t, " A ", " user1 ", at(10, 0), at(11, 0))

	if booking.ID != "bk-1" {
		t.Errorf("expected id bk-1, got %q", booking.ID)
	}
	if booking.RoomID != "A" || booking.UserID != "user1" {
		t.Errorf("expected normalized ids, got room=%q user=%q", booking.RoomID, booking.UserID)
	}

	stored, err := f.svc.GetByID(context.Background(), booking.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if *stored != *booking {
		t.Errorf("stored booking %+v differs from returned %+v", stored, booking)
	}
}

func TestBookingService_CreateNormalizesToUTC(t *testing.T) {
	f := newFixture(t)
	zone := time.FixedZone("CET", 2*60*60)

	booking := f.mustCreate(t, "A", "user1",
		time.Date(2025, 1, 1, 12, 0, 0, 0, zone),
		time.Date(2025, 1, 1, 13, 0, 0, 0, zone),
	)

	if booking.StartTime.Location() != time.UTC || !booking.StartTime.Equal(at(10, 0)) {
		t.Errorf("expected start 10:00 UTC, got %s", booking.StartTime)
	}
}

func TestBookingService_BoundaryTouchIsNotOverlap(t *testing.T) {
	f := newFixture(t)

	f.mustCreate(t, "A", "user1", at(10, 0), at(11, 0))
	f.mustCreate(t, "A", "user2", at(11, 0), at(12, 0))
	f.mustCreate(t, "A", "user3", at(9, 0), at(10, 0))

	if n := f.count(t); n != 3 {
		t.Errorf("expected 3 bookings, got %d", n)
	}
}

func TestBookingService_OtherRoomDoesNotConflict(t *testing.T) {
	f := newFixture(t)

	f.mustCreate(t, "A", "user1", at(10, 0), at(11, 0))
	f.mustCreate(t, "B", "user1", at(10, 0), at(11, 0))
}

func TestBookingService_ValidationOrder(t *testing.T) {
	tests := []struct {
		name    string
		roomID  string
		start   time.Time
		end     time.Time
		wantErr error
	}{
		{
			name:    "unknown room wins over past start",
			roomID:  "Z",
			start:   at(10, 0).AddDate(-1, 0, 0),
			end:     at(9, 0).AddDate(-1, 0, 0),
			wantErr: bookingserrors.ErrRoomNotFound,
		},
		{
			name:    "past start wins over inverted order",
			roomID:  "A",
			start:   time.Date(2024, 12, 30, 10, 0, 0, 0, time.UTC),
			end:     time.Date(2024, 12, 30, 9, 0, 0, 0, time.UTC),
			wantErr: bookingserrors.ErrStartInPast,
		},
		{
			name:    "inverted order",
			roomID:  "A",
			start:   at(11, 0),
			end:     at(10, 0),
			wantErr: bookingserrors.ErrInvalidOrder,
		},
		{
			name:    "empty interval",
			roomID:  "A",
			start:   at(10, 0),
			end:     at(10, 0),
			wantErr: bookingserrors.ErrInvalidOrder,
		},
		{
			name:    "too long wins over overlap",
			roomID:  "A",
			start:   at(8, 0),
			end:     at(13, 0),
			wantErr: bookingserrors.ErrTooLong,
		},
		{
			name:    "overlap",
			roomID:  "A",
			start:   at(9, 30),
			end:     at(10, 30),
			wantErr: bookingserrors.ErrOverlap,
		},
		{
			name:    "enclosing overlap",
			roomID:  "A",
			start:   at(9, 0),
			end:     at(12, 0),
			wantErr: bookingserrors.ErrOverlap,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.mustCreate(t, "A", "user1", at(10, 0), at(11, 0))

			_, err := f.svc.Create(context.Background(), createReq(tt.roomID, "user2", tt.start, tt.end))
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
			if n := f.count(t); n != 1 {
				t.Errorf("store changed after rejected create: %d bookings", n)
			}
		})
	}
}

func TestBookingService_DurationCap(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	if _, err := f.svc.Create(ctx, createReq("A", "user1", at(8, 0), at(12, 0))); err != nil {
		t.Fatalf("exactly four hours should succeed, got %v", err)
	}

	_, err := f.svc.Create(ctx, createReq("B", "user1", at(8, 0), at(12, 1)))
	if !errors.Is(err, bookingserrors.ErrTooLong) {
		t.Fatalf("expected ErrTooLong, got %v", err)
	}
}

func TestBookingService_StartAtNowIsAllowed(t *testing.T) {
	f := newFixture(t)
	now := f.clock.Now()

	f.mustCreate(t, "A", "user1", now, now.Add(time.Hour))

	f.clock.Advance(time.Minute)
	_, err := f.svc.Create(context.Background(), createReq("B", "user1", now, now.Add(time.Hour)))
	if !errors.Is(err, bookingserrors.ErrStartInPast) {
		t.Fatalf("expected ErrStartInPast once the clock moved on, got %v", err)
	}
}

func TestBookingService_UnknownRoomLeavesStoreUnchanged(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.Create(context.Background(), createReq("Z", "user1", at(10, 0), at(11, 0)))
	if !errors.Is(err, bookingserrors.ErrRoomNotFound) {
		t.Fatalf("expected ErrRoomNotFound, got %v", err)
	}
	if n := f.count(t); n != 0 {
		t.Errorf("expected empty store, got %d bookings", n)
	}
	if len(f.publisher.events) != 0 {
		t.Errorf("rejected create must not publish, got %d events", len(f.publisher.events))
	}
}

func TestBookingService_CreateShapeValidation(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.Create(context.Background(), createReq("A", "   ", at(10, 0), at(11, 0)))

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		t.Fatalf("expected ValidationErrors, got %v", err)
	}
	if validationErrs[0].Field != "user_id" {
		t.Errorf("expected user_id field error, got %+v", validationErrs)
	}
	if n := f.count(t); n != 0 {
		t.Errorf("expected empty store, got %d bookings", n)
	}
}

func TestBookingService_NormalizesIdentifiers(t *testing.T) {
	f := newFixture(t)

	booking, err := f.svc.Create(context.Background(), createReq(" A\t", "\x00user1 ", at(10, 0), at(11, 0)))
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if booking.RoomID != "A" || booking.UserID != "user1" {
		t.Errorf("expected stored ids A/user1, got %q/%q", booking.RoomID, booking.UserID)
	}

	if _, err := f.svc.Create(context.Background(), createReq("A", "user2", at(10, 30), at(11, 30))); !errors.Is(err, bookingserrors.ErrOverlap) {
		t.Errorf("padded room id must address the same room, got %v", err)
	}
	if got, err := f.svc.GetByID(context.Background(), " "+booking.ID+" "); err != nil || got.ID != booking.ID {
		t.Errorf("GetByID with padded id = %v, %v", got, err)
	}
}

func TestBookingService_UpdatePreservesIdentity(t *testing.T) {
	f := newFixture(t)
	original := f.mustCreate(t, "A", "user1", at(10, 0), at(11, 0))

	updated, err := f.svc.Update(context.Background(), original.ID, &model.BookingUpdate{StartTime: at(14, 0), EndTime: at(15, 30)})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	if updated.ID != original.ID || updated.RoomID != original.RoomID || updated.UserID != original.UserID {
		t.Errorf("identity changed: before %+v, after %+v", original, updated)
	}
	if !updated.StartTime.Equal(at(14, 0)) || !updated.EndTime.Equal(at(15, 30)) {
		t.Errorf("interval not updated: %+v", updated)
	}

	stored, _ := f.svc.GetByID(context.Background(), original.ID)
	if *stored != *updated {
		t.Errorf("stored booking %+v differs from returned %+v", stored, updated)
	}
}

func TestBookingService_UpdateSameIntervalSucceeds(t *testing.T) {
	f := newFixture(t)
	booking := f.mustCreate(t, "A", "user1", at(10, 0), at(11, 0))

	if _, err := f.svc.Update(context.Background(), booking.ID, &model.BookingUpdate{StartTime: at(10, 0), EndTime: at(11, 0)}); err != nil {
		t.Fatalf("updating to the same interval should succeed, got %v", err)
	}
	if _, err := f.svc.Update(context.Background(), booking.ID, &model.BookingUpdate{StartTime: at(10, 30), EndTime: at(11, 30)}); err != nil {
		t.Fatalf("shifting over its own prior interval should succeed, got %v", err)
	}
}

func TestBookingService_UpdateErrors(t *testing.T) {
	f := newFixture(t)
	first := f.mustCreate(t, "A", "user1", at(10, 0), at(11, 0))
	f.mustCreate(t, "A", "user2", at(12, 0), at(13, 0))

	tests := []struct {
		name    string
		id      string
		update  *model.BookingUpdate
		wantErr error
	}{
		{"missing booking", "bk-404", &model.BookingUpdate{StartTime: at(15, 0), EndTime: at(16, 0)}, bookingserrors.ErrBookingNotFound},
		{"empty id", "  ", &model.BookingUpdate{StartTime: at(15, 0), EndTime: at(16, 0)}, bookingserrors.ErrBookingNotFound},
		{"overlaps another booking", first.ID, &model.BookingUpdate{StartTime: at(11, 30), EndTime: at(12, 30)}, bookingserrors.ErrOverlap},
		{"past start", first.ID, &model.BookingUpdate{StartTime: at(10, 0).AddDate(-1, 0, 0), EndTime: at(11, 0)}, bookingserrors.ErrStartInPast},
		{"inverted", first.ID, &model.BookingUpdate{StartTime: at(11, 0), EndTime: at(10, 0)}, bookingserrors.ErrInvalidOrder},
		{"too long", first.ID, &model.BookingUpdate{StartTime: at(14, 0), EndTime: at(18, 1)}, bookingserrors.ErrTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.svc.Update(context.Background(), tt.id, tt.update)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}

			stored, err := f.svc.GetByID(context.Background(), first.ID)
			if err != nil {
				t.Fatalf("GetByID failed: %v", err)
			}
			if !stored.StartTime.Equal(at(10, 0)) || !stored.EndTime.Equal(at(11, 0)) {
				t.Errorf("rejected update changed the booking: %+v", stored)
			}
		})
	}
}

func TestBookingService_UpdateReportsMissingBookingBeforeShape(t *testing.T) {
	f := newFixture(t)
	existing := f.mustCreate(t, "A", "user1", at(10, 0), at(11, 0))
	missingStart := &model.BookingUpdate{EndTime: at(16, 0)}

	if _, err := f.svc.Update(context.Background(), "bk-404", missingStart); !errors.Is(err, bookingserrors.ErrBookingNotFound) {
		t.Fatalf("expected ErrBookingNotFound for an unknown id, got %v", err)
	}

	_, err := f.svc.Update(context.Background(), existing.ID, &model.BookingUpdate{EndTime: at(16, 0)})
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) || validationErrs[0].Field != "start_time" {
		t.Fatalf("expected start_time ValidationErrors for a known id, got %v", err)
	}
}

func TestBookingService_CancelThenQuery(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	booking := f.mustCreate(t, "A", "user1", at(10, 0), at(11, 0))
	kept := f.mustCreate(t, "A", "user1", at(11, 0), at(12, 0))

	if err := f.svc.Cancel(ctx, booking.ID); err != nil {
		t.Fatalf("Cancel failed: %v", err)
	}

	byRoom, _ := f.svc.ListByRoom(ctx, "A", nil, nil)
	byUser, _ := f.svc.ListByUser(ctx, "user1")
	for _, list := range [][]*model.Booking{byRoom, byUser} {
		if len(list) != 1 || list[0].ID != kept.ID {
			t.Errorf("expected only %s after cancel, got %+v", kept.ID, list)
		}
	}

	if err := f.svc.Cancel(ctx, booking.ID); !errors.Is(err, bookingserrors.ErrBookingNotFound) {
		t.Errorf("second cancel: expected ErrBookingNotFound, got %v", err)
	}
	if _, err := f.svc.GetByID(ctx, booking.ID); !errors.Is(err, bookingserrors.ErrBookingNotFound) {
		t.Errorf("GetByID after cancel: expected ErrBookingNotFound, got %v", err)
	}

	// The freed slot can be booked again.
	f.mustCreate(t, "A", "user2", at(10, 0), at(11, 0))
}

func TestBookingService_ListByRoom(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.mustCreate(t, "A", "user1", at(13, 0), at(14, 0))
	f.mustCreate(t, "B", "user1", at(10, 0), at(11, 0))
	f.mustCreate(t, "A", "user2", at(9, 0), at(10, 0))
	f.mustCreate(t, "A", "user2", at(16, 0), at(17, 0))

	from, to := at(9, 30), at(13, 0)

	tests := []struct {
		name    string
		roomID  string
		from    *time.Time
		to      *time.Time
		wantIDs []string
		wantErr error
	}{
		{name: "all in insertion order", roomID: "A", wantIDs: []string{"bk-1", "bk-3", "bk-4"}},
		{name: "window keeps overlapping only", roomID: "A", from: &from, to: &to, wantIDs: []string{"bk-3"}},
		{name: "open ended from", roomID: "A", from: &to, wantIDs: []string{"bk-1", "bk-4"}},
		{name: "open ended to", roomID: "A", to: &from, wantIDs: []string{"bk-3"}},
		{name: "room without bookings", roomID: "B", from: &to, wantIDs: []string{}},
		{name: "unknown room", roomID: "Z", wantErr: bookingserrors.ErrRoomNotFound},
		{name: "inverted window", roomID: "A", from: &to, to: &from, wantErr: bookingserrors.ErrInvalidOrder},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bookings, err := f.svc.ListByRoom(ctx, tt.roomID, tt.from, tt.to)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(bookings) != len(tt.wantIDs) {
				t.Fatalf("expected %v, got %+v", tt.wantIDs, bookings)
			}
			for i, id := range tt.wantIDs {
				if bookings[i].ID != id {
					t.Errorf("position %d: expected %s, got %s", i, id, bookings[i].ID)
				}
			}
		})
	}
}

func TestBookingService_ListByUser(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.mustCreate(t, "A", "user1", at(10, 0), at(11, 0))
	f.mustCreate(t, "B", "user1", at(10, 0), at(11, 0))
	f.mustCreate(t, "A", "user2", at(11, 0), at(12, 0))

	bookings, err := f.svc.ListByUser(ctx, "user1")
	if err != nil {
		t.Fatalf("ListByUser failed: %v", err)
	}
	if len(bookings) != 2 {
		t.Errorf("expected 2 bookings for user1, got %d", len(bookings))
	}

	none, err := f.svc.ListByUser(ctx, "ghost")
	if err != nil {
		t.Fatalf("ListByUser for unknown user should not fail, got %v", err)
	}
	if len(none) != 0 {
		t.Errorf("expected no bookings, got %+v", none)
	}
}

func TestBookingService_PublishesEvents(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	booking := f.mustCreate(t, "A", "user1", at(10, 0), at(11, 0))
	if _, err := f.svc.Update(ctx, booking.ID, &model.BookingUpdate{StartTime: at(12, 0), EndTime: at(13, 0)}); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if err := f.svc.Cancel(ctx, booking.ID); err != nil {
		t.Fatalf("Cancel failed: %v", err)
	}

	want := []events.Type{events.BookingCreated, events.BookingUpdated, events.BookingCancelled}
	if len(f.publisher.events) != len(want) {
		t.Fatalf("expected %d events, got %+v", len(want), f.publisher.events)
	}
	for i, eventType := range want {
		if f.publisher.events[i].eventType != eventType {
			t.Errorf("event %d: expected %s, got %s", i, eventType, f.publisher.events[i].eventType)
		}
		if f.publisher.events[i].booking.ID != booking.ID {
			t.Errorf("event %d: unexpected booking %+v", i, f.publisher.events[i].booking)
		}
	}
	if !f.publisher.events[1].booking.StartTime.Equal(at(12, 0)) {
		t.Errorf("update event should carry the new interval, got %+v", f.publisher.events[1].booking)
	}
}

func TestBookingService_PublishFailureDoesNotFailMutation(t *testing.T) {
	f := newFixture(t)
	f.publisher.err = errors.New("broker unavailable")

	booking := f.mustCreate(t, "A", "user1", at(10, 0), at(11, 0))

	if _, err := f.svc.GetByID(context.Background(), booking.ID); err != nil {
		t.Errorf("booking should be stored despite the publish failure, got %v", err)
	}
}

func TestBookingService_ConcurrentIdenticalCreates(t *testing.T) {
	f := newFixture(t)
	const workers = 32

	var wg sync.WaitGroup
	results := make(chan error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := f.svc.Create(context.Background(), createReq("A", fmt.Sprintf("user%d", i), at(10, 0), at(11, 0)))
			results <- err
		}(i)
	}
	wg.Wait()
	close(results)

	var succeeded, conflicted int
	for err := range results {
		switch {
		case err == nil:
			succeeded++
		case errors.Is(err, bookingserrors.ErrOverlap):
			conflicted++
		default:
			t.Errorf("unexpected error: %v", err)
		}
	}

	if succeeded != 1 || conflicted != workers-1 {
		t.Errorf("expected exactly one winner, got %d succeeded and %d conflicted", succeeded, conflicted)
	}
}

func TestBookingService_ConcurrentMutationsKeepRoomsDisjoint(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	const workers = 48

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			room := []string{"A", "B"}[i%2]
			start := at(8, 0).Add(time.Duration(i*20) * time.Minute)
			booking, err := f.svc.Create(ctx, createReq(room, fmt.Sprintf("user%d", i), start, start.Add(90*time.Minute)))
			if err != nil {
				return
			}
			shifted := booking.StartTime.Add(45 * time.Minute)
			_, _ = f.svc.Update(ctx, booking.ID, &model.BookingUpdate{StartTime: shifted, EndTime: shifted.Add(time.Hour)})
			if i%3 == 0 {
				_ = f.svc.Cancel(ctx, booking.ID)
			}
		}(i)
	}
	wg.Wait()

	for _, room := range []string{"A", "B"} {
		bookings, err := f.svc.ListByRoom(ctx, room, nil, nil)
		if err != nil {
			t.Fatalf("ListByRoom(%s) failed: %v", room, err)
		}
		for i, b1 := range bookings {
			for _, b2 := range bookings[i+1:] {
				if overlaps(b1.StartTime, b1.EndTime, b2.StartTime, b2.EndTime) {
					t.Errorf("room %s has overlapping bookings %+v and %+v", room, b1, b2)
				}
			}
		}
	}
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name         string
		start1, end1 time.Time
		start2, end2 time.Time
		want         bool
	}{
		{"disjoint", at(9, 0), at(10, 0), at(11, 0), at(12, 0), false},
		{"touching", at(9, 0), at(10, 0), at(10, 0), at(11, 0), false},
		{"partial", at(9, 0), at(10, 30), at(10, 0), at(11, 0), true},
		{"contained", at(9, 0), at(12, 0), at(10, 0), at(11, 0), true},
		{"identical", at(10, 0), at(11, 0), at(10, 0), at(11, 0), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := overlaps(tt.start1, tt.end1, tt.start2, tt.end2); got != tt.want {
				t.Errorf("overlaps() = %v, want %v", got, tt.want)
			}
			if got := overlaps(tt.start2, tt.end2, tt.start1, tt.end1); got != tt.want {
				t.Errorf("overlaps() is not symmetric for %s", tt.name)
			}
		})
	}
}
