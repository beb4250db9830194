package commands

import (
	"context"
	"errors"

	"loft-booking/internal/domain/availability"
	"loft-booking/internal/domain/booking"
	"loft-booking/internal/domain/pricing"
	"loft-booking/internal/domain/user"
	"loft-booking/internal/infra"
	"loft-booking/internal/pkg/clock"
	"loft-booking/internal/pkg/errs"
	"loft-booking/internal/pkg/metrics"
	"loft-booking/internal/usecase/queries"
	"loft-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	LoftID   uuid.UUID
	CheckIn  string
	CheckOut string
}

type CreateBookingResult struct {
	BookingID uuid.UUID
	Status    booking.Status
	Pricing   *queries.PricingView
}

type BookingCommands interface {
	CreateBooking(ctx context.Context, req CreateBookingRequest, actor user.Actor) (*CreateBookingResult, error)
	UpdateBookingStatus(ctx context.Context, bookingID uuid.UUID, next string, actor user.Actor) error
}

type bookingUseCaseImpl struct {
	uow        shared.UnitOfWork
	calculator pricing.Calculator
	clock      clock.Clock
	metrics    *metrics.Collector
}

func NewBookingUseCase(uow shared.UnitOfWork, calculator pricing.Calculator, clk clock.Clock, m *metrics.Collector) BookingCommands {
	return &bookingUseCaseImpl{uow: uow, calculator: calculator, clock: clk, metrics: m}
}

// CreateBooking re-checks availability, prices and inserts inside one serializable transaction.
// A concurrent insert that slips past the re-check is stopped by the exclusion constraint.
func (uc *bookingUseCaseImpl) CreateBooking(ctx context.Context, req CreateBookingRequest, actor user.Actor) (*CreateBookingResult, error) {
	period, err := shared.ParseStay(req.CheckIn, req.CheckOut, clock.Today(uc.clock))
	if err != nil {
		return nil, err
	}

	var result *CreateBookingResult
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		reads := tx.Reads()

		snap, err := reads.LoftByID(ctx, req.LoftID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrLoftNotFound)
			}
			return err
		}
		l := snap.ToDomain()

		occSnaps, err := reads.BlockingOccupancies(ctx, l.ID(), period)
		if err != nil {
			return err
		}
		occupied, err := shared.OccupanciesToDomain(occSnaps)
		if err != nil {
			return err
		}
		if check := availability.Check(l.StayRules(), period, occupied); !check.IsAvailable {
			return &UnavailableError{Restrictions: check.Restrictions}
		}

		rateSnaps, err := reads.SeasonalRatesByLoft(ctx, l.ID())
		if err != nil {
			return err
		}
		rates, err := shared.SeasonalRatesToDomain(rateSnaps)
		if err != nil {
			return err
		}
		breakdown := uc.calculator.Calculate(l.Rates(), period, rates)

		b, err := booking.NewBooking(l.ID(), actor.ID, period, breakdown.Total, breakdown.Currency, uc.clock.Now())
		if err != nil {
			return err
		}
		id, err := tx.Bookings().Create(ctx, tx.DB(), b)
		if err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				return errs.Mark(err, ErrBookingConflict)
			}
			return err
		}

		result = &CreateBookingResult{
			BookingID: id,
			Status:    b.Status(),
			Pricing:   queries.ToPricingView(l.ID(), period, breakdown),
		}
		return nil
	})
	if errors.Is(err, shared.ErrTxRetriesExhausted) {
		err = errs.Mark(err, ErrBookingConflict)
	}
	uc.metrics.ObserveBooking(bookingOutcome(err))
	if err != nil {
		return nil, err
	}
	return result, nil
}

func bookingOutcome(err error) string {
	switch {
	case err == nil:
		return "created"
	case errors.Is(err, ErrBookingUnavailable):
		return "unavailable"
	case errors.Is(err, ErrBookingConflict):
		return "conflict"
	default:
		return "error"
	}
}

func (uc *bookingUseCaseImpl) UpdateBookingStatus(ctx context.Context, bookingID uuid.UUID, next string, actor user.Actor) error {
	status, err := booking.ParseStatus(next)
	if err != nil {
		return err
	}

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reads().BookingByID(ctx, bookingID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrBookingNotFound)
			}
			return err
		}
		if !canSetStatus(actor, snap, status) {
			return ErrForbidden
		}

		b, err := snap.ToDomain()
		if err != nil {
			return err
		}
		if err := b.TransitionTo(status, uc.clock.Now()); err != nil {
			return err
		}
		err = tx.Bookings().UpdateStatus(ctx, tx.DB(), b)
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, ErrBookingNotFound)
		}
		return err
	})
}

// Confirming and completing belong to the loft side; guests may only cancel.
func canSetStatus(actor user.Actor, snap *shared.BookingSnapshot, next booking.Status) bool {
	switch next {
	case booking.StatusConfirmed, booking.StatusCompleted:
		return actor.CanManageLoft(snap.PartnerID)
	case booking.StatusCancelled:
		return actor.CanCancelBooking(snap.GuestID, snap.PartnerID)
	case booking.StatusPending:
		return actor.CanViewBooking(snap.GuestID, snap.PartnerID)
	default:
		return false
	}
}
