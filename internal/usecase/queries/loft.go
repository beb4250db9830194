package queries

import (
	"context"

	"loft-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

type LoftQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*LoftView, error)
	ListSeasonalRates(ctx context.Context, loftID uuid.UUID) ([]*SeasonalRateView, error)
}

type loftQueriesImpl struct {
	catalog Catalog
}

func NewLoftQueries(catalog Catalog) LoftQueries {
	return &loftQueriesImpl{catalog: catalog}
}

func (q *loftQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*LoftView, error) {
	snap, err := q.catalog.Loft(ctx, id)
	if err != nil {
		return nil, err
	}
	view := &LoftView{}
	if err := copyView(view, snap); err != nil {
		return nil, errs.Wrap(err, "failed to build loft view")
	}
	return view, nil
}

// ListSeasonalRates answers ErrLoftNotFound rather than an empty list for unknown lofts.
func (q *loftQueriesImpl) ListSeasonalRates(ctx context.Context, loftID uuid.UUID) ([]*SeasonalRateView, error) {
	if _, err := q.catalog.Loft(ctx, loftID); err != nil {
		return nil, err
	}
	snaps, err := q.catalog.SeasonalRates(ctx, loftID)
	if err != nil {
		return nil, err
	}
	views := make([]*SeasonalRateView, 0, len(snaps))
	if err := copyView(&views, snaps); err != nil {
		return nil, errs.Wrap(err, "failed to build seasonal rate views")
	}
	return views, nil
}
