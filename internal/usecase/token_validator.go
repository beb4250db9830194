package usecase

import (
	"loft-booking/internal/domain/user"
	"loft-booking/internal/pkg/jwt"
)

// TokenValidator turns a bearer token into the acting user for middleware
type TokenValidator interface {
	ValidateToken(tokenString string) (user.Actor, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
	}
}

func (t *tokenValidatorImpl) ValidateToken(tokenString string) (user.Actor, error) {
	return t.jwtService.Authenticate(tokenString)
}
