package commands

import (
	"context"
	"log/slog"

	"loft-booking/internal/domain/pricing"
	"loft-booking/internal/domain/user"
	"loft-booking/internal/infra"
	"loft-booking/internal/pkg/errs"
	"loft-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateSeasonalRateRequest struct {
	CheckIn           string
	CheckOut          string
	NightlyPriceCents int64
	Label             string
}

type SeasonalRateCommands interface {
	CreateSeasonalRate(ctx context.Context, loftID uuid.UUID, req CreateSeasonalRateRequest, actor user.Actor) (uuid.UUID, error)
	DeleteSeasonalRate(ctx context.Context, loftID, rateID uuid.UUID, actor user.Actor) error
}

// RateCacheInvalidator drops cached seasonal rates. Writes call it right before the change and
// again after commit, so a list read before the write cannot outlive it in the cache.
type RateCacheInvalidator interface {
	InvalidateSeasonalRates(ctx context.Context, loftID uuid.UUID) error
}

type seasonalRateUseCaseImpl struct {
	uow   shared.UnitOfWork
	cache RateCacheInvalidator
}

func NewSeasonalRateUseCase(uow shared.UnitOfWork, cache RateCacheInvalidator) SeasonalRateCommands {
	return &seasonalRateUseCaseImpl{uow: uow, cache: cache}
}

func (uc *seasonalRateUseCaseImpl) CreateSeasonalRate(ctx context.Context, loftID uuid.UUID, req CreateSeasonalRateRequest, actor user.Actor) (uuid.UUID, error) {
	period, err := shared.ParseWindow(req.CheckIn, req.CheckOut)
	if err != nil {
		return uuid.Nil, err
	}
	rate, err := pricing.NewSeasonalRate(loftID, period, pricing.NewMoney(req.NightlyPriceCents), req.Label)
	if err != nil {
		return uuid.Nil, err
	}

	var createdID uuid.UUID
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := authorizeLoft(ctx, tx.Reads(), loftID, actor); err != nil {
			return err
		}
		uc.invalidate(ctx, loftID)
		id, err := tx.SeasonalRates().Create(ctx, tx.DB(), rate)
		if err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				return errs.Mark(err, ErrSeasonalRateOverlap)
			}
			return err
		}
		createdID = id
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}

	uc.invalidate(ctx, loftID)
	return createdID, nil
}

func (uc *seasonalRateUseCaseImpl) DeleteSeasonalRate(ctx context.Context, loftID, rateID uuid.UUID, actor user.Actor) error {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		reads := tx.Reads()
		if err := authorizeLoft(ctx, reads, loftID, actor); err != nil {
			return err
		}

		snap, err := reads.SeasonalRateByID(ctx, rateID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrSeasonalRateNotFound)
			}
			return err
		}
		if snap.LoftID != loftID {
			return ErrSeasonalRateNotFound
		}

		uc.invalidate(ctx, loftID)
		err = tx.SeasonalRates().Delete(ctx, tx.DB(), rateID)
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, ErrSeasonalRateNotFound)
		}
		return err
	})
	if err != nil {
		return err
	}

	uc.invalidate(ctx, loftID)
	return nil
}

func (uc *seasonalRateUseCaseImpl) invalidate(ctx context.Context, loftID uuid.UUID) {
	if err := uc.cache.InvalidateSeasonalRates(ctx, loftID); err != nil {
		slog.WarnContext(ctx, "failed to invalidate seasonal rate cache", "loft_id", loftID, "error", err.Error())
	}
}

func authorizeLoft(ctx context.Context, reads shared.CommandReads, loftID uuid.UUID, actor user.Actor) error {
	snap, err := reads.LoftByID(ctx, loftID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, ErrLoftNotFound)
		}
		return err
	}
	if !actor.CanManageLoft(snap.PartnerID) {
		return ErrForbidden
	}
	return nil
}
