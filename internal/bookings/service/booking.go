package service

//go:generate go run go.uber.org/mock/mockgen -source=booking.go -destination=../mocks/mock_booking_service.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
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
	"roombook/pkg/sanitizer"

	"github.com/samber/lo"
)

type BookingService interface {
	Create(ctx context.Context, req *model.BookingCreate) (*model.Booking, error)
	GetByID(ctx context.Context, id string) (*model.Booking, error)
	Update(ctx context.Context, id string, req *model.BookingUpdate) (*model.Booking, error)
	Cancel(ctx context.Context, id string) error
	ListByRoom(ctx context.Context, roomID string, from, to *time.Time) ([]*model.Booking, error)
	ListByUser(ctx context.Context, userID string) ([]*model.Booking, error)
}

type bookingService struct {
	repo      repository.BookingRepository
	rooms     roomsrepository.RoomRepository
	validator *validator.BookingValidator
	clock     clock.Clock
	ids       idgen.Generator
	publisher events.Publisher
	log       *logger.Logger
}

func NewBookingService(
	repo repository.BookingRepository,
	rooms roomsrepository.RoomRepository,
	validator *validator.BookingValidator,
	clock clock.Clock,
	ids idgen.Generator,
	publisher events.Publisher,
	log *logger.Logger,
) BookingService {
	if publisher == nil {
		publisher = events.NewNoopPublisher()
	}
	return &bookingService{
		repo:      repo,
		rooms:     rooms,
		validator: validator,
		clock:     clock,
		ids:       ids,
		publisher: publisher,
		log:       log,
	}
}

func (s *bookingService) Create(ctx context.Context, req *model.BookingCreate) (*model.Booking, error) {
	if req == nil {
		return nil, validator.ValidationErrors{{Field: "body", Message: "body is required"}}
	}
	s.sanitizeCreate(req)
	if err := s.validator.ValidateCreate(req); err != nil {
		s.log.Warn("Booking create validation failed", "error", err)
		return nil, err
	}

	var created model.Booking
	err := s.repo.ExecuteTransaction(ctx, func(tx repository.Tx) error {
		if err := s.validate(tx, req.RoomID, req.StartTime, req.EndTime, ""); err != nil {
			return err
		}
		created = model.Booking{
			ID:        s.ids.NewID(),
			RoomID:    req.RoomID,
			UserID:    req.UserID,
			StartTime: req.StartTime,
			EndTime:   req.EndTime,
		}
		return tx.Insert(&created)
	})
	if err != nil {
		s.logFailure("Failed to create booking", err,
			"room_id", req.RoomID,
			"user_id", req.UserID,
			"start_time", req.StartTime,
			"end_time", req.EndTime,
		)
		return nil, err
	}

	s.log.Info("Booking created successfully",
		"id", created.ID,
		"room_id", created.RoomID,
		"user_id", created.UserID,
		"start_time", created.StartTime,
		"end_time", created.EndTime,
	)
	s.publish(ctx, events.BookingCreated, created)
	return &created, nil
}

func (s *bookingService) GetByID(ctx context.Context, id string) (*model.Booking, error) {
	id = sanitizer.NormalizeIdentifier(id)
	if id == "" {
		return nil, fmt.Errorf("%w: empty id", bookingserrors.ErrBookingNotFound)
	}

	booking, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.logFailure("Failed to retrieve booking", err, "id", id)
		return nil, err
	}
	return booking, nil
}

func (s *bookingService) Update(ctx context.Context, id string, req *model.BookingUpdate) (*model.Booking, error) {
	id = sanitizer.NormalizeIdentifier(id)
	if id == "" {
		return nil, fmt.Errorf("%w: empty id", bookingserrors.ErrBookingNotFound)
	}
	if req == nil {
		return nil, validator.ValidationErrors{{Field: "body", Message: "body is required"}}
	}
	req.StartTime = req.StartTime.UTC()
	req.EndTime = req.EndTime.UTC()

	var updated *model.Booking
	err := s.repo.ExecuteTransaction(ctx, func(tx repository.Tx) error {
		existing, err := tx.FindByID(id)
		if err != nil {
			return err
		}
		// An unknown booking is reported before a malformed body.
		if err := s.validator.ValidateUpdate(req); err != nil {
			return err
		}
		if err := s.validate(tx, existing.RoomID, req.StartTime, req.EndTime, existing.ID); err != nil {
			return err
		}
		existing.StartTime = req.StartTime
		existing.EndTime = req.EndTime
		if err := tx.Update(existing); err != nil {
			return err
		}
		updated = existing
		return nil
	})
	if err != nil {
		s.logFailure("Failed to update booking", err,
			"id", id,
			"start_time", req.StartTime,
			"end_time", req.EndTime,
		)
		return nil, err
	}

	s.log.Info("Booking updated successfully",
		"id", updated.ID,
		"room_id", updated.RoomID,
		"start_time", updated.StartTime,
		"end_time", updated.EndTime,
	)
	s.publish(ctx, events.BookingUpdated, *updated)
	return updated, nil
}

func (s *bookingService) Cancel(ctx context.Context, id string) error {
	id = sanitizer.NormalizeIdentifier(id)
	if id == "" {
		return fmt.Errorf("%w: empty id", bookingserrors.ErrBookingNotFound)
	}

	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		s.logFailure("Failed to cancel booking", err, "id", id)
		return err
	}

	s.log.Info("Booking cancelled successfully", "id", id, "room_id", deleted.RoomID)
	s.publish(ctx, events.BookingCancelled, *deleted)
	return nil
}

// ListByRoom returns the room's bookings in insertion order. When from or to
// is set, only bookings overlapping [from, to) are kept.
func (s *bookingService) ListByRoom(ctx context.Context, roomID string, from, to *time.Time) ([]*model.Booking, error) {
	roomID = sanitizer.NormalizeIdentifier(roomID)
	if !s.rooms.Exists(roomID) {
		s.log.Warn("Booking listing for unknown room", "room_id", roomID)
		return nil, fmt.Errorf("%w: %s", bookingserrors.ErrRoomNotFound, roomID)
	}
	if from != nil && to != nil && !from.Before(*to) {
		return nil, fmt.Errorf("%w: start %s, end %s",
			bookingserrors.ErrInvalidOrder, from.Format(time.RFC3339), to.Format(time.RFC3339))
	}

	bookings, err := s.repo.FindByRoom(ctx, roomID)
	if err != nil {
		s.logFailure("Failed to list bookings by room", err, "room_id", roomID)
		return nil, err
	}

	if from != nil || to != nil {
		bookings = lo.Filter(bookings, func(b *model.Booking, _ int) bool {
			return (to == nil || b.StartTime.Before(*to)) && (from == nil || from.Before(b.EndTime))
		})
	}

	s.log.Debug("Room bookings listed", "room_id", roomID, "count", len(bookings))
	return bookings, nil
}

func (s *bookingService) ListByUser(ctx context.Context, userID string) ([]*model.Booking, error) {
	userID = sanitizer.NormalizeIdentifier(userID)

	bookings, err := s.repo.FindByUser(ctx, userID)
	if err != nil {
		s.logFailure("Failed to list bookings by user", err, "user_id", userID)
		return nil, err
	}

	s.log.Debug("User bookings listed", "user_id", userID, "count", len(bookings))
	return bookings, nil
}

// --- Helpers ---

// validate runs the admission checks in order and returns the first failure.
// It must be called inside ExecuteTransaction so the conflict scan sees a
// stable booking set.
func (s *bookingService) validate(tx repository.Tx, roomID string, start, end time.Time, excludingID string) error {
	if !s.rooms.Exists(roomID) {
		return fmt.Errorf("%w: %s", bookingserrors.ErrRoomNotFound, roomID)
	}

	if err := s.validator.ValidateWindow(start, end, s.clock.Now()); err != nil {
		return err
	}

	for _, other := range tx.FindByRoom(roomID) {
		if other.ID == excludingID {
			continue
		}
		if overlaps(start, end, other.StartTime, other.EndTime) {
			return fmt.Errorf("%w: conflicts with booking %s (%s - %s)",
				bookingserrors.ErrOverlap,
				other.ID,
				other.StartTime.Format(time.RFC3339),
				other.EndTime.Format(time.RFC3339),
			)
		}
	}
	return nil
}

// overlaps treats both intervals as half-open, so touching ends do not clash.
func overlaps(start1, end1, start2, end2 time.Time) bool {
	return start1.Before(end2) && start2.Before(end1)
}

func (s *bookingService) sanitizeCreate(req *model.BookingCreate) {
	req.RoomID = sanitizer.NormalizeIdentifier(req.RoomID)
	req.UserID = sanitizer.NormalizeIdentifier(req.UserID)
	req.StartTime = req.StartTime.UTC()
	req.EndTime = req.EndTime.UTC()
}

// publish runs after the store lock is released. A failed notification never
// undoes the committed mutation.
func (s *bookingService) publish(ctx context.Context, eventType events.Type, booking model.Booking) {
	if err := s.publisher.Publish(context.WithoutCancel(ctx), eventType, &booking); err != nil {
		s.log.Warn("Failed to publish booking event",
			"event_type", eventType,
			"id", booking.ID,
			"error", err,
		)
	}
}

func (s *bookingService) logFailure(msg string, err error, args ...any) {
	args = append(args, "error", err)
	if isRejection(err) {
		s.log.Warn(msg, args...)
		return
	}
	s.log.Error(msg, args...)
}

// isRejection reports whether err is an expected outcome of the request
// against the current state rather than an infrastructure failure.
func isRejection(err error) bool {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		return true
	}
	return lo.SomeBy([]error{
		bookingserrors.ErrRoomNotFound,
		bookingserrors.ErrStartInPast,
		bookingserrors.ErrInvalidOrder,
		bookingserrors.ErrTooLong,
		bookingserrors.ErrOverlap,
		bookingserrors.ErrBookingNotFound,
	}, func(target error) bool {
		return errors.Is(err, target)
	})
}
