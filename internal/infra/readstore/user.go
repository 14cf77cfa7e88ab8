package readstore

import (
	"context"

	"vps-rental/internal/infra"
	"vps-rental/internal/infra/db"
	"vps-rental/internal/usecase/queries"
)

type UserReadStore struct {
	db db.DBTX
}

func NewUserReadStore(dbtx db.DBTX) *UserReadStore {
	return &UserReadStore{db: dbtx}
}

const findUserFlagsSQL = `
SELECT is_staff OR is_superuser
FROM users
WHERE id = $1`

func (r *UserReadStore) FindByID(ctx context.Context, id int64) (*queries.CurrentUserView, error) {
	var view queries.CurrentUserView
	err := r.db.QueryRow(ctx, findUserFlagsSQL, id).Scan(&view.IsStaff)
	if err != nil {
		if db.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user", err)
	}
	return &view, nil
}
