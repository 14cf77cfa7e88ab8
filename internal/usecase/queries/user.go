package queries

import (
	"context"

	"vps-rental/internal/infra"
	"vps-rental/internal/pkg/errs"
)

type UserReadStore interface {
	FindByID(ctx context.Context, id int64) (*CurrentUserView, error)
}

type UserQueries interface {
	GetCurrentUser(ctx context.Context, userID int64) (*CurrentUserView, error)
}

type userQueriesImpl struct {
	store UserReadStore
}

func NewUserQueries(store UserReadStore) UserQueries {
	return &userQueriesImpl{store: store}
}

func (q *userQueriesImpl) GetCurrentUser(ctx context.Context, userID int64) (*CurrentUserView, error) {
	view, err := q.store.FindByID(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrUserNotFound)
		}
		return nil, err
	}
	return view, nil
}
