package queries

import (
	"time"

	"loft-booking/internal/domain/stay"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type LoftView struct {
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

type SeasonalRateView struct {
	ID                uuid.UUID `json:"id"`
	LoftID            uuid.UUID `json:"loft_id"`
	CheckIn           string    `json:"check_in"`
	CheckOut          string    `json:"check_out"`
	NightlyPriceCents int64     `json:"nightly_price_cents"`
	Label             string    `json:"label"`
	CreatedAt         time.Time `json:"created_at"`
}

type BookingView struct {
	ID         uuid.UUID `json:"id"`
	LoftID     uuid.UUID `json:"loft_id"`
	GuestID    uuid.UUID `json:"guest_id"`
	CheckIn    string    `json:"check_in"`
	CheckOut   string    `json:"check_out"`
	Status     string    `json:"status"`
	TotalCents int64     `json:"total_cents"`
	Currency   string    `json:"currency"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type RestrictionView struct {
	Kind             string  `json:"kind"`
	Message          string  `json:"message"`
	ConflictCheckIn  *string `json:"conflict_check_in,omitempty"`
	ConflictCheckOut *string `json:"conflict_check_out,omitempty"`
}

type AvailabilityView struct {
	LoftID       uuid.UUID         `json:"loft_id"`
	CheckIn      string            `json:"check_in"`
	CheckOut     string            `json:"check_out"`
	Nights       int               `json:"nights"`
	IsAvailable  bool              `json:"is_available"`
	Restrictions []RestrictionView `json:"restrictions"`
}

type NightLineView struct {
	Date       string `json:"date"`
	PriceCents int64  `json:"price_cents"`
	Seasonal   bool   `json:"seasonal"`
}

type SeasonalOverrideView struct {
	RateID            uuid.UUID `json:"rate_id"`
	Label             string    `json:"label"`
	NightlyPriceCents int64     `json:"nightly_price_cents"`
	Nights            int       `json:"nights"`
}

type PricingView struct {
	LoftID           uuid.UUID              `json:"loft_id"`
	CheckIn          string                 `json:"check_in"`
	CheckOut         string                 `json:"check_out"`
	Nights           int                    `json:"nights"`
	Lines            []NightLineView        `json:"lines"`
	SubtotalCents    int64                  `json:"subtotal_cents"`
	CleaningFeeCents int64                  `json:"cleaning_fee_cents"`
	ServiceFeeCents  int64                  `json:"service_fee_cents"`
	TaxesCents       int64                  `json:"taxes_cents"`
	TotalCents       int64                  `json:"total_cents"`
	Currency         string                 `json:"currency"`
	Overrides        []SeasonalOverrideView `json:"seasonal_overrides"`
}

type CalendarDayView struct {
	Date       string `json:"date"`
	Available  bool   `json:"available"`
	PriceCents int64  `json:"price_cents"`
	Seasonal   bool   `json:"seasonal"`
	RateLabel  string `json:"rate_label,omitempty"`
}

type CalendarView struct {
	LoftID   uuid.UUID         `json:"loft_id"`
	From     string            `json:"from"`
	To       string            `json:"to"`
	Currency string            `json:"currency"`
	Days     []CalendarDayView `json:"days"`
}

// Snapshots carry dates as time.Time; views expose them as YYYY-MM-DD.
var copyOption = copier.Option{
	Converters: []copier.TypeConverter{
		{
			SrcType: time.Time{},
			DstType: copier.String,
			Fn: func(src any) (any, error) {
				return src.(time.Time).Format(stay.DateLayout), nil
			},
		},
	},
}

func copyView(to, from any) error {
	return copier.CopyWithOption(to, from, copyOption)
}
