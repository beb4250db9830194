package shared

import (
	"time"

	"loft-booking/internal/domain/availability"
	"loft-booking/internal/domain/booking"
	"loft-booking/internal/domain/loft"
	"loft-booking/internal/domain/pricing"
	"loft-booking/internal/domain/stay"

	"github.com/google/uuid"
)

// Snapshots cross the usecase boundary and are cached as JSON, hence the tags.

type LoftSnapshot struct {
	ID                uuid.UUID `json:"id"`
	PartnerID         uuid.UUID `json:"partner_id"`
	Name              string    `json:"name"`
	Address           string    `json:"address"`
	NightlyPriceCents int64     `json:"nightly_price_cents"`
	CleaningFeeCents  int64     `json:"cleaning_fee_cents"`
	MinimumStay       int       `json:"minimum_stay"`
	MaximumStay       *int      `json:"maximum_stay,omitempty"`
	TaxRate           float64   `json:"tax_rate"`
	Currency          string    `json:"currency"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

func (s *LoftSnapshot) ToDomain() *loft.Loft {
	return loft.ReconstructLoft(s.ID, loft.Params{
		PartnerID:    s.PartnerID,
		Name:         s.Name,
		Address:      s.Address,
		NightlyPrice: pricing.NewMoney(s.NightlyPriceCents),
		CleaningFee:  pricing.NewMoney(s.CleaningFeeCents),
		MinimumStay:  s.MinimumStay,
		MaximumStay:  s.MaximumStay,
		TaxRate:      s.TaxRate,
		Currency:     pricing.Currency(s.Currency),
	}, s.CreatedAt, s.UpdatedAt)
}

type SeasonalRateSnapshot struct {
	ID                uuid.UUID `json:"id"`
	LoftID            uuid.UUID `json:"loft_id"`
	CheckIn           time.Time `json:"check_in"`
	CheckOut          time.Time `json:"check_out"`
	NightlyPriceCents int64     `json:"nightly_price_cents"`
	Label             string    `json:"label"`
	CreatedAt         time.Time `json:"created_at"`
}

func (s *SeasonalRateSnapshot) ToDomain() (*pricing.SeasonalRate, error) {
	period, err := stay.NewDateRange(s.CheckIn, s.CheckOut)
	if err != nil {
		return nil, err
	}
	return pricing.ReconstructSeasonalRate(s.ID, s.LoftID, period, pricing.NewMoney(s.NightlyPriceCents), s.Label, s.CreatedAt), nil
}

func SeasonalRatesToDomain(snaps []*SeasonalRateSnapshot) ([]*pricing.SeasonalRate, error) {
	rates := make([]*pricing.SeasonalRate, 0, len(snaps))
	for _, s := range snaps {
		r, err := s.ToDomain()
		if err != nil {
			return nil, err
		}
		rates = append(rates, r)
	}
	return rates, nil
}

// OccupancySnapshot is the minimal projection of a booking used for conflict detection.
type OccupancySnapshot struct {
	BookingID uuid.UUID
	CheckIn   time.Time
	CheckOut  time.Time
	Status    string
}

func OccupanciesToDomain(snaps []*OccupancySnapshot) ([]availability.Occupancy, error) {
	out := make([]availability.Occupancy, 0, len(snaps))
	for _, s := range snaps {
		period, err := stay.NewDateRange(s.CheckIn, s.CheckOut)
		if err != nil {
			return nil, err
		}
		status, err := booking.ParseStatus(s.Status)
		if err != nil {
			return nil, err
		}
		out = append(out, availability.Occupancy{BookingID: s.BookingID, Stay: period, Status: status})
	}
	return out, nil
}

type BookingSnapshot struct {
	ID         uuid.UUID
	LoftID     uuid.UUID
	PartnerID  uuid.UUID
	GuestID    uuid.UUID
	CheckIn    time.Time
	CheckOut   time.Time
	Status     string
	TotalCents int64
	Currency   string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (s *BookingSnapshot) ToDomain() (*booking.Booking, error) {
	period, err := stay.NewDateRange(s.CheckIn, s.CheckOut)
	if err != nil {
		return nil, err
	}
	status, err := booking.ParseStatus(s.Status)
	if err != nil {
		return nil, err
	}
	return booking.ReconstructBooking(
		s.ID, s.LoftID, s.GuestID,
		period, status,
		pricing.NewMoney(s.TotalCents), pricing.Currency(s.Currency),
		s.CreatedAt, s.UpdatedAt,
	), nil
}
