package response

import (
	"loft-booking/internal/usecase/queries"
)

type LoftResponse struct {
	ID                string  `json:"id"`
	PartnerID         string  `json:"partner_id"`
	Name              string  `json:"name"`
	Address           string  `json:"address"`
	NightlyPriceCents int64   `json:"nightly_price_cents"`
	CleaningFeeCents  int64   `json:"cleaning_fee_cents"`
	MinimumStay       int     `json:"minimum_stay"`
	MaximumStay       *int    `json:"maximum_stay,omitempty"`
	TaxRate           float64 `json:"tax_rate"`
	Currency          string  `json:"currency"`
	CreatedAt         int64   `json:"created_at"`
	UpdatedAt         int64   `json:"updated_at"`
}

func FromLoftView(v *queries.LoftView) *LoftResponse {
	return &LoftResponse{
		ID:                v.ID.String(),
		PartnerID:         v.PartnerID.String(),
		Name:              v.Name,
		Address:           v.Address,
		NightlyPriceCents: v.NightlyPriceCents,
		CleaningFeeCents:  v.CleaningFeeCents,
		MinimumStay:       v.MinimumStay,
		MaximumStay:       v.MaximumStay,
		TaxRate:           v.TaxRate,
		Currency:          v.Currency,
		CreatedAt:         v.CreatedAt.Unix(),
		UpdatedAt:         v.UpdatedAt.Unix(),
	}
}

type SeasonalRateResponse struct {
	ID                string `json:"id"`
	LoftID            string `json:"loft_id"`
	CheckIn           string `json:"check_in"`
	CheckOut          string `json:"check_out"`
	NightlyPriceCents int64  `json:"nightly_price_cents"`
	Label             string `json:"label"`
	CreatedAt         int64  `json:"created_at"`
}

func FromSeasonalRateViews(items []*queries.SeasonalRateView) []*SeasonalRateResponse {
	res := make([]*SeasonalRateResponse, len(items))
	for i, v := range items {
		res[i] = &SeasonalRateResponse{
			ID:                v.ID.String(),
			LoftID:            v.LoftID.String(),
			CheckIn:           v.CheckIn,
			CheckOut:          v.CheckOut,
			NightlyPriceCents: v.NightlyPriceCents,
			Label:             v.Label,
			CreatedAt:         v.CreatedAt.Unix(),
		}
	}
	return res
}

type CreatedResponse struct {
	ID string `json:"id"`
}
