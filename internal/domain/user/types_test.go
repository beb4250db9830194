//go:build unit

package user_test

import (
	"testing"

	"loft-booking/internal/domain/user"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRole(t *testing.T) {
	for _, s := range []string{"client", "partner", "admin"} {
		r, err := user.NewRole(s)
		require.NoError(t, err, s)
		assert.Equal(t, s, r.String())
	}

	for _, s := range []string{"", "Admin", "viewer", "operator", "guest"} {
		_, err := user.NewRole(s)
		assert.ErrorIs(t, err, user.ErrInvalidRole, s)
	}
}

func TestActor_Permissions(t *testing.T) {
	partnerID := uuid.New()
	guestID := uuid.New()

	tests := []struct {
		name       string
		actor      user.Actor
		manageLoft bool
		viewBook   bool
	}{
		{name: "admin", actor: user.NewActor(uuid.New(), user.RoleAdmin), manageLoft: true, viewBook: true},
		{name: "所有パートナー", actor: user.NewActor(partnerID, user.RolePartner), manageLoft: true, viewBook: true},
		{name: "他パートナー", actor: user.NewActor(uuid.New(), user.RolePartner), manageLoft: false, viewBook: false},
		{name: "予約したゲスト", actor: user.NewActor(guestID, user.RoleClient), manageLoft: false, viewBook: true},
		{name: "他のゲスト", actor: user.NewActor(uuid.New(), user.RoleClient), manageLoft: false, viewBook: false},
		{name: "不正ロール", actor: user.Actor{ID: partnerID, Role: "root"}, manageLoft: false, viewBook: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.manageLoft, tt.actor.CanManageLoft(partnerID))
			assert.Equal(t, tt.viewBook, tt.actor.CanViewBooking(guestID, partnerID))
			assert.Equal(t, tt.viewBook, tt.actor.CanCancelBooking(guestID, partnerID))
		})
	}
}
