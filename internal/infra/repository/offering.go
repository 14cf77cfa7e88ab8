package repository

import (
	"context"

	"vps-rental/internal/infra"
	"vps-rental/internal/infra/db"
	"vps-rental/internal/usecase/commands"
)

type OfferingRepository struct {
	db db.DBTX
}

func NewOfferingRepository(dbtx db.DBTX) *OfferingRepository {
	return &OfferingRepository{db: dbtx}
}

const createOfferingSQL = `
INSERT INTO offerings (name, image, description, price)
VALUES ($1, $2, $3, $4)
RETURNING id`

func (r *OfferingRepository) Create(ctx context.Context, params commands.SaveOfferingParams) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, createOfferingSQL,
		params.Name, params.Image, params.Description, params.Price,
	).Scan(&id)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create offering", err)
	}
	return id, nil
}

const updateOfferingSQL = `
UPDATE offerings
SET name = $2, image = $3, description = $4, price = $5, updated_at = now()
WHERE id = $1`

func (r *OfferingRepository) Update(ctx context.Context, id int64, params commands.SaveOfferingParams) error {
	tag, err := r.db.Exec(ctx, updateOfferingSQL,
		id, params.Name, params.Image, params.Description, params.Price,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update offering", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("offering not found", nil, infra.KindNotFound)
	}
	return nil
}

const offeringSnapshotSQL = `
SELECT id, is_active
FROM offerings
WHERE id = $1`

func (r *OfferingRepository) Snapshot(ctx context.Context, id int64) (*commands.OfferingSnapshot, error) {
	var snap commands.OfferingSnapshot
	err := r.db.QueryRow(ctx, offeringSnapshotSQL, id).Scan(&snap.ID, &snap.IsActive)
	if err != nil {
		if db.IsNoRows(err) {
			return nil, infra.WrapRepoErr("offering not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to load offering snapshot", err)
	}
	return &snap, nil
}

const softDeleteOfferingSQL = `
UPDATE offerings
SET is_active = FALSE, updated_at = now()
WHERE id = $1 AND is_active`

func (r *OfferingRepository) SoftDelete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, softDeleteOfferingSQL, id)
	if err != nil {
		return infra.WrapRepoErr("failed to soft delete offering", err)
	}
	if tag.RowsAffected() > 0 {
		return nil
	}

	// Distinguish "never existed" from "already withdrawn".
	var exists bool
	if err := r.db.QueryRow(ctx, "SELECT EXISTS (SELECT 1 FROM offerings WHERE id = $1)", id).Scan(&exists); err != nil {
		return infra.WrapRepoErr("failed to check offering existence", err)
	}
	if !exists {
		return infra.WrapRepoErr("offering not found", nil, infra.KindNotFound)
	}
	return infra.WrapRepoErr("offering already withdrawn", nil, infra.KindConflict)
}
