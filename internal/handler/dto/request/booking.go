package request

import (
	"loft-booking/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	LoftID   uuid.UUID `json:"loft_id" binding:"required"`
	CheckIn  string    `json:"check_in" binding:"required,datetime=2006-01-02"`
	CheckOut string    `json:"check_out" binding:"required,datetime=2006-01-02"`
}

func (r CreateBookingRequest) ToCommand() commands.CreateBookingRequest {
	return commands.CreateBookingRequest{
		LoftID:   r.LoftID,
		CheckIn:  r.CheckIn,
		CheckOut: r.CheckOut,
	}
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending confirmed cancelled completed"`
}
