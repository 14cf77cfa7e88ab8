package queries

import (
	"context"

	"vps-rental/internal/infra"
	"vps-rental/internal/pkg/errs"
)

type OfferingReadStore interface {
	ListActive(ctx context.Context, query string) ([]*OfferingListItem, error)
	FindActiveByID(ctx context.Context, id int64) (*OfferingView, error)
	ListSpecifications(ctx context.Context, offeringID int64) ([]*SpecificationView, error)
	FindSpecificationByID(ctx context.Context, id int64) (*SpecificationView, error)
}

type OfferingQueries interface {
	List(ctx context.Context, query string) ([]*OfferingListItem, error)
	GetByID(ctx context.Context, id int64) (*OfferingView, error)
	ListSpecifications(ctx context.Context, offeringID int64) ([]*SpecificationView, error)
	GetSpecification(ctx context.Context, id int64) (*SpecificationView, error)
}

type offeringQueriesImpl struct {
	store OfferingReadStore
}

func NewOfferingQueries(store OfferingReadStore) OfferingQueries {
	return &offeringQueriesImpl{store: store}
}

func (q *offeringQueriesImpl) List(ctx context.Context, query string) ([]*OfferingListItem, error) {
	return q.store.ListActive(ctx, query)
}

func (q *offeringQueriesImpl) GetByID(ctx context.Context, id int64) (*OfferingView, error) {
	view, err := q.store.FindActiveByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrOfferingNotFound)
		}
		return nil, err
	}
	return view, nil
}

func (q *offeringQueriesImpl) ListSpecifications(ctx context.Context, offeringID int64) ([]*SpecificationView, error) {
	if _, err := q.GetByID(ctx, offeringID); err != nil {
		return nil, err
	}
	return q.store.ListSpecifications(ctx, offeringID)
}

func (q *offeringQueriesImpl) GetSpecification(ctx context.Context, id int64) (*SpecificationView, error) {
	view, err := q.store.FindSpecificationByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrSpecificationNotFound)
		}
		return nil, err
	}
	return view, nil
}
