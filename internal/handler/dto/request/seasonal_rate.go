package request

import (
	"strings"

	"loft-booking/internal/usecase/commands"
)

type CreateSeasonalRateRequest struct {
	CheckIn           string `json:"check_in" binding:"required,datetime=2006-01-02"`
	CheckOut          string `json:"check_out" binding:"required,datetime=2006-01-02"`
	NightlyPriceCents int64  `json:"nightly_price_cents" binding:"required,gt=0"`
	Label             string `json:"label" binding:"max=100"`
}

func (r CreateSeasonalRateRequest) ToCommand() commands.CreateSeasonalRateRequest {
	return commands.CreateSeasonalRateRequest{
		CheckIn:           r.CheckIn,
		CheckOut:          r.CheckOut,
		NightlyPriceCents: r.NightlyPriceCents,
		Label:             strings.TrimSpace(r.Label),
	}
}
