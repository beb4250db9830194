package booking

import (
	"errors"
	"time"

	"loft-booking/internal/domain/pricing"
	"loft-booking/internal/domain/stay"

	"github.com/google/uuid"
)

var (
	ErrInvalidStatus           = errors.New("invalid booking status")
	ErrInvalidStatusTransition = errors.New("booking status transition is not allowed")
	ErrNonPositiveTotal        = errors.New("booking total must be positive")
)

type Booking struct {
	id        uuid.UUID
	loftID    uuid.UUID
	guestID   uuid.UUID
	stay      stay.DateRange
	status    Status
	total     pricing.Money
	currency  pricing.Currency
	createdAt time.Time
	updatedAt time.Time
}

// NewBooking creates a pending booking. Availability must already have been checked by the caller.
func NewBooking(
	loftID, guestID uuid.UUID,
	period stay.DateRange,
	total pricing.Money,
	currency pricing.Currency,
	now time.Time,
) (*Booking, error) {
	if !total.IsPositive() {
		return nil, ErrNonPositiveTotal
	}
	return &Booking{
		id:        uuid.New(),
		loftID:    loftID,
		guestID:   guestID,
		stay:      period,
		status:    StatusPending,
		total:     total,
		currency:  currency,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructBooking(
	id, loftID, guestID uuid.UUID,
	period stay.DateRange,
	status Status,
	total pricing.Money,
	currency pricing.Currency,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:        id,
		loftID:    loftID,
		guestID:   guestID,
		stay:      period,
		status:    status,
		total:     total,
		currency:  currency,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (b *Booking) TransitionTo(next Status, now time.Time) error {
	if !next.IsValid() {
		return ErrInvalidStatus
	}
	if !b.status.CanTransitionTo(next) {
		return ErrInvalidStatusTransition
	}
	b.status = next
	b.updatedAt = now
	return nil
}

func (b *Booking) Blocks() bool {
	return b.status.Blocks()
}

func (b *Booking) ID() uuid.UUID              { return b.id }
func (b *Booking) LoftID() uuid.UUID          { return b.loftID }
func (b *Booking) GuestID() uuid.UUID         { return b.guestID }
func (b *Booking) Stay() stay.DateRange       { return b.stay }
func (b *Booking) Status() Status             { return b.status }
func (b *Booking) Total() pricing.Money       { return b.total }
func (b *Booking) Currency() pricing.Currency { return b.currency }
func (b *Booking) CreatedAt() time.Time       { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time       { return b.updatedAt }
