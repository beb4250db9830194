package queries

import (
	"context"

	"loft-booking/internal/domain/user"
	"loft-booking/internal/infra"
	"loft-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

type BookingQueries interface {
	GetByID(ctx context.Context, id uuid.UUID, actor user.Actor) (*BookingView, error)
}

type bookingQueriesImpl struct {
	bookings BookingReader
}

func NewBookingQueries(bookings BookingReader) BookingQueries {
	return &bookingQueriesImpl{bookings: bookings}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, id uuid.UUID, actor user.Actor) (*BookingView, error) {
	snap, err := q.bookings.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrBookingNotFound)
		}
		return nil, err
	}
	if !actor.CanViewBooking(snap.GuestID, snap.PartnerID) {
		return nil, ErrBookingAccess
	}

	view := &BookingView{}
	if err := copyView(view, snap); err != nil {
		return nil, errs.Wrap(err, "failed to build booking view")
	}
	return view, nil
}
