package loft

import (
	"errors"
	"strings"
	"time"

	"loft-booking/internal/domain/availability"
	"loft-booking/internal/domain/pricing"

	"github.com/google/uuid"
)

var (
	ErrEmptyName           = errors.New("loft name cannot be empty")
	ErrNameTooLong         = errors.New("loft name must be at most 200 characters")
	ErrInvalidNightlyPrice = errors.New("nightly price must be positive")
	ErrNegativeCleaningFee = errors.New("cleaning fee cannot be negative")
	ErrInvalidMinimumStay  = errors.New("minimum stay must be at least one night")
	ErrInvalidMaximumStay  = errors.New("maximum stay cannot be shorter than minimum stay")
	ErrInvalidTaxRate      = errors.New("tax rate must be at least 0 and below 1")
)

const maxNameLength = 200

type Params struct {
	PartnerID    uuid.UUID
	Name         string
	Address      string
	NightlyPrice pricing.Money
	CleaningFee  pricing.Money
	MinimumStay  int
	MaximumStay  *int
	TaxRate      float64
	Currency     pricing.Currency
}

type Loft struct {
	id           uuid.UUID
	partnerID    uuid.UUID
	name         string
	address      string
	nightlyPrice pricing.Money
	cleaningFee  pricing.Money
	minimumStay  int
	maximumStay  *int
	taxRate      float64
	currency     pricing.Currency
	createdAt    time.Time
	updatedAt    time.Time
}

func NewLoft(p Params) (*Loft, error) {
	name := strings.TrimSpace(p.Name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if len([]rune(name)) > maxNameLength {
		return nil, ErrNameTooLong
	}
	if !p.NightlyPrice.IsPositive() {
		return nil, ErrInvalidNightlyPrice
	}
	if p.CleaningFee.IsNegative() {
		return nil, ErrNegativeCleaningFee
	}
	if p.MinimumStay < 1 {
		return nil, ErrInvalidMinimumStay
	}
	if p.MaximumStay != nil && *p.MaximumStay < p.MinimumStay {
		return nil, ErrInvalidMaximumStay
	}
	if p.TaxRate < 0 || p.TaxRate >= 1 {
		return nil, ErrInvalidTaxRate
	}
	if _, err := pricing.NewCurrency(string(p.Currency)); err != nil {
		return nil, err
	}

	return &Loft{
		id:           uuid.New(),
		partnerID:    p.PartnerID,
		name:         name,
		address:      strings.TrimSpace(p.Address),
		nightlyPrice: p.NightlyPrice,
		cleaningFee:  p.CleaningFee,
		minimumStay:  p.MinimumStay,
		maximumStay:  p.MaximumStay,
		taxRate:      p.TaxRate,
		currency:     p.Currency,
	}, nil
}

func ReconstructLoft(id uuid.UUID, p Params, createdAt, updatedAt time.Time) *Loft {
	return &Loft{
		id:           id,
		partnerID:    p.PartnerID,
		name:         p.Name,
		address:      p.Address,
		nightlyPrice: p.NightlyPrice,
		cleaningFee:  p.CleaningFee,
		minimumStay:  p.MinimumStay,
		maximumStay:  p.MaximumStay,
		taxRate:      p.TaxRate,
		currency:     p.Currency,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func (l *Loft) StayRules() availability.StayRules {
	return availability.StayRules{MinimumStay: l.minimumStay, MaximumStay: l.maximumStay}
}

func (l *Loft) Rates() pricing.Rates {
	return pricing.Rates{
		NightlyPrice: l.nightlyPrice,
		CleaningFee:  l.cleaningFee,
		TaxRate:      l.taxRate,
		Currency:     l.currency,
	}
}

func (l *Loft) IsOwnedBy(partnerID uuid.UUID) bool {
	return l.partnerID == partnerID
}

func (l *Loft) ID() uuid.UUID               { return l.id }
func (l *Loft) PartnerID() uuid.UUID        { return l.partnerID }
func (l *Loft) Name() string                { return l.name }
func (l *Loft) Address() string             { return l.address }
func (l *Loft) NightlyPrice() pricing.Money { return l.nightlyPrice }
func (l *Loft) CleaningFee() pricing.Money  { return l.cleaningFee }
func (l *Loft) MinimumStay() int            { return l.minimumStay }
func (l *Loft) MaximumStay() *int           { return l.maximumStay }
func (l *Loft) TaxRate() float64            { return l.taxRate }
func (l *Loft) Currency() pricing.Currency  { return l.currency }
func (l *Loft) CreatedAt() time.Time        { return l.createdAt }
func (l *Loft) UpdatedAt() time.Time        { return l.updatedAt }
