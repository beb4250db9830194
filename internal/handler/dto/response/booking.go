package response

import (
	"loft-booking/internal/usecase/commands"
	"loft-booking/internal/usecase/queries"
)

type BookingResponse struct {
	ID         string `json:"id"`
	LoftID     string `json:"loft_id"`
	GuestID    string `json:"guest_id"`
	CheckIn    string `json:"check_in"`
	CheckOut   string `json:"check_out"`
	Status     string `json:"status"`
	TotalCents int64  `json:"total_cents"`
	Currency   string `json:"currency"`
	CreatedAt  int64  `json:"created_at"`
	UpdatedAt  int64  `json:"updated_at"`
}

func FromBookingView(v *queries.BookingView) *BookingResponse {
	return &BookingResponse{
		ID:         v.ID.String(),
		LoftID:     v.LoftID.String(),
		GuestID:    v.GuestID.String(),
		CheckIn:    v.CheckIn,
		CheckOut:   v.CheckOut,
		Status:     v.Status,
		TotalCents: v.TotalCents,
		Currency:   v.Currency,
		CreatedAt:  v.CreatedAt.Unix(),
		UpdatedAt:  v.UpdatedAt.Unix(),
	}
}

type CreateBookingResponse struct {
	ID      string           `json:"id"`
	Status  string           `json:"status"`
	Pricing *PricingResponse `json:"pricing"`
}

func FromCreateBookingResult(r *commands.CreateBookingResult) *CreateBookingResponse {
	return &CreateBookingResponse{
		ID:      r.BookingID.String(),
		Status:  r.Status.String(),
		Pricing: FromPricingView(r.Pricing),
	}
}

// UnavailableDetail is returned as the error detail of a 409 on booking creation.
type UnavailableDetail struct {
	Restrictions []queries.RestrictionView `json:"restrictions"`
}
