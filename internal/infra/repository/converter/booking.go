package converter

import (
	"loft-booking/internal/domain/booking"
	sqlc "loft-booking/internal/infra/sqlc/generated"
	"loft-booking/internal/pkg/pgconv"
)

func BookingToInfra(b *booking.Booking) sqlc.CreateBookingParams {
	return sqlc.CreateBookingParams{
		ID:         b.ID(),
		LoftID:     b.LoftID(),
		GuestID:    b.GuestID(),
		CheckIn:    pgconv.DateToPgtype(b.Stay().CheckIn()),
		CheckOut:   pgconv.DateToPgtype(b.Stay().CheckOut()),
		Status:     b.Status().String(),
		TotalCents: b.Total().Cents(),
		Currency:   string(b.Currency()),
	}
}

func BookingStatusToInfra(b *booking.Booking) sqlc.UpdateBookingStatusParams {
	return sqlc.UpdateBookingStatusParams{
		ID:        b.ID(),
		Status:    b.Status().String(),
		UpdatedAt: pgconv.TimeToPgtype(b.UpdatedAt()),
	}
}
