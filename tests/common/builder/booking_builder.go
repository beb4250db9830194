//go:build unit || e2e

package builder

import (
	"time"

	"loft-booking/internal/domain/booking"
	"loft-booking/internal/domain/pricing"
	"loft-booking/internal/domain/stay"
	reqdto "loft-booking/internal/handler/dto/request"
	sqlc "loft-booking/internal/infra/sqlc/generated"
	"loft-booking/internal/pkg/pgconv"
	"loft-booking/internal/usecase/queries"
	"loft-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	ID         uuid.UUID
	LoftID     uuid.UUID
	PartnerID  uuid.UUID
	GuestID    uuid.UUID
	CheckIn    string
	CheckOut   string
	Status     string
	TotalCents int64
	Currency   string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func NewBookingBuilder() *BookingBuilder {
	created := time.Date(2030, 5, 1, 10, 0, 0, 0, time.UTC)
	return &BookingBuilder{
		ID:         uuid.New(),
		LoftID:     uuid.New(),
		PartnerID:  uuid.New(),
		GuestID:    uuid.New(),
		CheckIn:    "2030-06-01",
		CheckOut:   "2030-06-05",
		Status:     booking.StatusPending.String(),
		TotalCents: 50600,
		Currency:   "USD",
		CreatedAt:  created,
		UpdatedAt:  created,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) Stay() stay.DateRange {
	period, err := stay.ParseDateRange(b.CheckIn, b.CheckOut)
	if err != nil {
		panic(err)
	}
	return period
}

// Build methods
func (b *BookingBuilder) BuildDomain() (*booking.Booking, error) {
	return booking.NewBooking(b.LoftID, b.GuestID, b.Stay(), pricing.NewMoney(b.TotalCents), pricing.Currency(b.Currency), b.CreatedAt)
}

func (b *BookingBuilder) BuildCommandsDomain() *booking.Booking {
	status, err := booking.ParseStatus(b.Status)
	if err != nil {
		panic(err)
	}
	return booking.ReconstructBooking(
		b.ID, b.LoftID, b.GuestID, b.Stay(), status,
		pricing.NewMoney(b.TotalCents), pricing.Currency(b.Currency),
		b.CreatedAt, b.UpdatedAt,
	)
}

func (b *BookingBuilder) BuildInfraRow() sqlc.GetBookingByIDRow {
	period := b.Stay()
	return sqlc.GetBookingByIDRow{
		ID:         b.ID,
		LoftID:     b.LoftID,
		PartnerID:  b.PartnerID,
		GuestID:    b.GuestID,
		CheckIn:    pgconv.DateToPgtype(period.CheckIn()),
		CheckOut:   pgconv.DateToPgtype(period.CheckOut()),
		Status:     b.Status,
		TotalCents: b.TotalCents,
		Currency:   b.Currency,
		CreatedAt:  pgconv.TimeToPgtype(b.CreatedAt),
		UpdatedAt:  pgconv.TimeToPgtype(b.UpdatedAt),
	}
}

func (b *BookingBuilder) BuildSnapshot() *shared.BookingSnapshot {
	period := b.Stay()
	return &shared.BookingSnapshot{
		ID:         b.ID,
		LoftID:     b.LoftID,
		PartnerID:  b.PartnerID,
		GuestID:    b.GuestID,
		CheckIn:    period.CheckIn(),
		CheckOut:   period.CheckOut(),
		Status:     b.Status,
		TotalCents: b.TotalCents,
		Currency:   b.Currency,
		CreatedAt:  b.CreatedAt,
		UpdatedAt:  b.UpdatedAt,
	}
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		LoftID:   b.LoftID,
		CheckIn:  b.CheckIn,
		CheckOut: b.CheckOut,
	}
}

func (b *BookingBuilder) BuildViewQuery() *queries.BookingView {
	return &queries.BookingView{
		ID:         b.ID,
		LoftID:     b.LoftID,
		GuestID:    b.GuestID,
		CheckIn:    b.CheckIn,
		CheckOut:   b.CheckOut,
		Status:     b.Status,
		TotalCents: b.TotalCents,
		Currency:   b.Currency,
		CreatedAt:  b.CreatedAt,
		UpdatedAt:  b.UpdatedAt,
	}
}
