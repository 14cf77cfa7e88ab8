package repository

import (
	"context"

	"vps-rental/internal/infra"
	"vps-rental/internal/infra/db"
	"vps-rental/internal/usecase/commands"
)

type SpecificationRepository struct {
	db db.DBTX
}

func NewSpecificationRepository(dbtx db.DBTX) *SpecificationRepository {
	return &SpecificationRepository{db: dbtx}
}

const createSpecificationSQL = `
INSERT INTO offering_specs (offering_id, processor, ram_mb, disk_gb, network_mbps)
VALUES ($1, $2, $3, $4, $5)
RETURNING id`

func (r *SpecificationRepository) Create(ctx context.Context, params commands.SaveSpecificationParams) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, createSpecificationSQL,
		params.OfferingID, params.Processor, params.RAMMB, params.DiskGB, params.NetworkMbps,
	).Scan(&id)
	if err != nil {
		if db.IsForeignKeyViolation(err) {
			return 0, infra.WrapRepoErr("offering not found", err, infra.KindForeignKeyViolated)
		}
		return 0, infra.WrapRepoErr("failed to create specification", err)
	}
	return id, nil
}

const updateSpecificationSQL = `
UPDATE offering_specs
SET processor = $2, ram_mb = $3, disk_gb = $4, network_mbps = $5
WHERE id = $1`

func (r *SpecificationRepository) Update(ctx context.Context, id int64, params commands.SaveSpecificationParams) error {
	tag, err := r.db.Exec(ctx, updateSpecificationSQL,
		id, params.Processor, params.RAMMB, params.DiskGB, params.NetworkMbps,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update specification", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("specification not found", nil, infra.KindNotFound)
	}
	return nil
}

const deleteSpecificationSQL = `
DELETE FROM offering_specs
WHERE id = $1`

func (r *SpecificationRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, deleteSpecificationSQL, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete specification", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("specification not found", nil, infra.KindNotFound)
	}
	return nil
}
