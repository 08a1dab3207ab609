package repository

import (
	"context"
	"fmt"
	"sync"

	bookingserrors "roombook/internal/bookings/errors"
	"roombook/pkg/model"

	"github.com/samber/lo"
)

// Tx is the view of the store handed to a transaction. Its methods assume the
// store lock is already held and must not be retained after fn returns.
type Tx interface {
	FindByID(id string) (*model.Booking, error)
	FindByRoom(roomID string) []*model.Booking
	Insert(booking *model.Booking) error
	Update(booking *model.Booking) error
}

type TransactionFunc func(tx Tx) error

type BookingRepository interface {
	FindByID(ctx context.Context, id string) (*model.Booking, error)
	FindByRoom(ctx context.Context, roomID string) ([]*model.Booking, error)
	FindByUser(ctx context.Context, userID string) ([]*model.Booking, error)
	Delete(ctx context.Context, id string) (*model.Booking, error)
	Count(ctx context.Context) (int, error)
	ExecuteTransaction(ctx context.Context, fn TransactionFunc) error
}

// inMemoryBookingRepository keeps bookings in insertion order behind one
// store-wide lock. Every returned booking is a copy.
type inMemoryBookingRepository struct {
	mu       sync.RWMutex
	bookings map[string]*model.Booking
	order    []string
}

func NewInMemoryBookingRepository() BookingRepository {
	return &inMemoryBookingRepository{
		bookings: make(map[string]*model.Booking),
	}
}

func (r *inMemoryBookingRepository) FindByID(ctx context.Context, id string) (*model.Booking, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.findByID(id)
}

func (r *inMemoryBookingRepository) FindByRoom(ctx context.Context, roomID string) ([]*model.Booking, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.filter(func(b *model.Booking) bool { return b.RoomID == roomID }), nil
}

func (r *inMemoryBookingRepository) FindByUser(ctx context.Context, userID string) ([]*model.Booking, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.filter(func(b *model.Booking) bool { return b.UserID == userID }), nil
}

func (r *inMemoryBookingRepository) Delete(ctx context.Context, id string) (*model.Booking, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.bookings[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", bookingserrors.ErrBookingNotFound, id)
	}
	delete(r.bookings, id)
	r.order = lo.Without(r.order, id)

	deleted := *existing
	return &deleted, nil
}

func (r *inMemoryBookingRepository) Count(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.bookings), nil
}

// ExecuteTransaction runs fn under the exclusive store lock. fn must only
// write through tx after all of its checks have passed; nothing is rolled back.
func (r *inMemoryBookingRepository) ExecuteTransaction(ctx context.Context, fn TransactionFunc) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	return fn(&lockedTx{repo: r})
}

func (r *inMemoryBookingRepository) findByID(id string) (*model.Booking, error) {
	existing, ok := r.bookings[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", bookingserrors.ErrBookingNotFound, id)
	}
	booking := *existing
	return &booking, nil
}

func (r *inMemoryBookingRepository) filter(keep func(*model.Booking) bool) []*model.Booking {
	result := make([]*model.Booking, 0)
	for _, id := range r.order {
		if b := r.bookings[id]; keep(b) {
			booking := *b
			result = append(result, &booking)
		}
	}
	return result
}

type lockedTx struct {
	repo *inMemoryBookingRepository
}

func (tx *lockedTx) FindByID(id string) (*model.Booking, error) {
	return tx.repo.findByID(id)
}

func (tx *lockedTx) FindByRoom(roomID string) []*model.Booking {
	return tx.repo.filter(func(b *model.Booking) bool { return b.RoomID == roomID })
}

func (tx *lockedTx) Insert(booking *model.Booking) error {
	if _, exists := tx.repo.bookings[booking.ID]; exists {
		return fmt.Errorf("%w: %s", bookingserrors.ErrDuplicateID, booking.ID)
	}
	stored := *booking
	tx.repo.bookings[booking.ID] = &stored
	tx.repo.order = append(tx.repo.order, booking.ID)
	return nil
}

func (tx *lockedTx) Update(booking *model.Booking) error {
	existing, ok := tx.repo.bookings[booking.ID]
	if !ok {
		return fmt.Errorf("%w: %s", bookingserrors.ErrBookingNotFound, booking.ID)
	}
	*existing = *booking
	return nil
}
