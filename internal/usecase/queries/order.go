package queries

import (
	"context"
	"errors"

	"vps-rental/internal/domain/order"
	"vps-rental/internal/infra"
	"vps-rental/internal/pkg/errs"
)

type OrderReadStore interface {
	// List returns orders excluding the private DRAFT and DELETED states.
	List(ctx context.Context, status *order.Status) ([]*OrderView, error)
	FindByID(ctx context.Context, id int64) (*OrderView, error)
	FindDraftByCreator(ctx context.Context, creatorID int64) (*OrderView, error)
}

type OrderQueries interface {
	List(ctx context.Context, actor order.Actor, status *order.Status) ([]*OrderView, error)
	GetByID(ctx context.Context, actor order.Actor, id int64) (*OrderView, error)
	GetDraft(ctx context.Context, creatorID int64) (*OrderView, error)
}

type orderQueriesImpl struct {
	store OrderReadStore
}

func NewOrderQueries(store OrderReadStore) OrderQueries {
	return &orderQueriesImpl{store: store}
}

func (q *orderQueriesImpl) List(ctx context.Context, actor order.Actor, status *order.Status) ([]*OrderView, error) {
	if err := order.Authorize(actor, order.ActionList, order.Resource{}); err != nil {
		return nil, errs.Mark(err, errs.ErrForbidden)
	}
	return q.store.List(ctx, status)
}

func (q *orderQueriesImpl) GetByID(ctx context.Context, actor order.Actor, id int64) (*OrderView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrOrderNotFound)
		}
		return nil, err
	}

	if err := order.Authorize(actor, order.ActionView, order.Resource{CreatorID: view.CreatorID}); err != nil {
		if errors.Is(err, order.ErrDenied) {
			return nil, errs.Mark(err, errs.ErrForbidden)
		}
		return nil, err
	}
	return view, nil
}

func (q *orderQueriesImpl) GetDraft(ctx context.Context, creatorID int64) (*OrderView, error) {
	view, err := q.store.FindDraftByCreator(ctx, creatorID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrDraftNotFound)
		}
		return nil, err
	}
	return view, nil
}
