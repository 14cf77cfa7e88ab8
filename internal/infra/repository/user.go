package repository

import (
	"context"

	"vps-rental/internal/infra"
	"vps-rental/internal/infra/db"
	"vps-rental/internal/usecase/commands"
)

type UserRepository struct {
	db db.DBTX
}

func NewUserRepository(dbtx db.DBTX) *UserRepository {
	return &UserRepository{db: dbtx}
}

const findUserByUsernameSQL = `
SELECT id, username, email, password_hash, is_staff, is_superuser
FROM users
WHERE username = $1`

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*commands.UserSnapshot, string, error) {
	var (
		snap commands.UserSnapshot
		hash string
	)
	err := r.db.QueryRow(ctx, findUserByUsernameSQL, username).
		Scan(&snap.ID, &snap.Username, &snap.Email, &hash, &snap.IsStaff, &snap.IsSuperuser)
	if err != nil {
		if db.IsNoRows(err) {
			return nil, "", infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find user by username", err)
	}
	return &snap, hash, nil
}
