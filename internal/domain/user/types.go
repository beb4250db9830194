package user

import (
	"errors"

	"github.com/google/uuid"
)

var ErrInvalidRole = errors.New("invalid role")

type Role string

const (
	RoleClient  Role = "client"
	RolePartner Role = "partner"
	RoleAdmin   Role = "admin"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleClient, RolePartner, RoleAdmin:
		return true
	default:
		return false
	}
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}

// Actor is the authenticated caller of a use case.
type Actor struct {
	ID   uuid.UUID
	Role Role
}

func NewActor(id uuid.UUID, role Role) Actor {
	return Actor{ID: id, Role: role}
}

// CanManageLoft covers seasonal rates and booking confirmation for a loft owned by partnerID.
func (a Actor) CanManageLoft(partnerID uuid.UUID) bool {
	switch a.Role {
	case RoleAdmin:
		return true
	case RolePartner:
		return a.ID == partnerID
	case RoleClient:
		return false
	default:
		return false
	}
}

// CanViewBooking allows the guest, the partner owning the loft and admins.
func (a Actor) CanViewBooking(guestID, partnerID uuid.UUID) bool {
	switch a.Role {
	case RoleAdmin:
		return true
	case RolePartner:
		return a.ID == partnerID || a.ID == guestID
	case RoleClient:
		return a.ID == guestID
	default:
		return false
	}
}

// CanCancelBooking matches CanViewBooking: anyone who may see a booking may cancel it.
func (a Actor) CanCancelBooking(guestID, partnerID uuid.UUID) bool {
	return a.CanViewBooking(guestID, partnerID)
}
