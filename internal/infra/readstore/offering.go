package readstore

import (
	"context"

	"vps-rental/internal/infra"
	"vps-rental/internal/infra/db"
	"vps-rental/internal/usecase/queries"
)

type OfferingReadStore struct {
	db db.DBTX
}

func NewOfferingReadStore(dbtx db.DBTX) *OfferingReadStore {
	return &OfferingReadStore{db: dbtx}
}

const listActiveOfferingsSQL = `
SELECT id, name, image, description, price, is_active
FROM offerings
WHERE is_active
  AND ($1 = '' OR name ILIKE '%' || $1 || '%' OR description ILIKE '%' || $1 || '%')
ORDER BY id`

func (r *OfferingReadStore) ListActive(ctx context.Context, query string) ([]*queries.OfferingListItem, error) {
	rows, err := r.db.Query(ctx, listActiveOfferingsSQL, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list offerings", err)
	}
	defer rows.Close()

	result := make([]*queries.OfferingListItem, 0)
	for rows.Next() {
		var item queries.OfferingListItem
		if err := rows.Scan(&item.ID, &item.Name, &item.Image, &item.Description, &item.Price, &item.IsActive); err != nil {
			return nil, infra.WrapRepoErr("failed to scan offering row", err)
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate offering rows", err)
	}
	return result, nil
}

const findOfferingSQL = `
SELECT id, name, image, description, price, is_active
FROM offerings
WHERE id = $1`

const findActiveOfferingSQL = findOfferingSQL + ` AND is_active`

func (r *OfferingReadStore) FindActiveByID(ctx context.Context, id int64) (*queries.OfferingView, error) {
	return r.findByID(ctx, findActiveOfferingSQL, id)
}

// FindByID ignores the is_active filter so catalog commands can return the
// written row even after a toggle.
func (r *OfferingReadStore) FindByID(ctx context.Context, id int64) (*queries.OfferingView, error) {
	return r.findByID(ctx, findOfferingSQL, id)
}

func (r *OfferingReadStore) findByID(ctx context.Context, sql string, id int64) (*queries.OfferingView, error) {
	var view queries.OfferingView
	err := r.db.QueryRow(ctx, sql, id).
		Scan(&view.ID, &view.Name, &view.Image, &view.Description, &view.Price, &view.IsActive)
	if err != nil {
		if db.IsNoRows(err) {
			return nil, infra.WrapRepoErr("offering not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find offering", err)
	}

	specs, err := r.ListSpecifications(ctx, id)
	if err != nil {
		return nil, err
	}
	view.Specifications = specs
	return &view, nil
}

const listSpecificationsSQL = `
SELECT id, offering_id, processor, ram_mb, disk_gb, network_mbps
FROM offering_specs
WHERE offering_id = $1
ORDER BY id`

func (r *OfferingReadStore) ListSpecifications(ctx context.Context, offeringID int64) ([]*queries.SpecificationView, error) {
	rows, err := r.db.Query(ctx, listSpecificationsSQL, offeringID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list specifications", err)
	}
	defer rows.Close()

	result := make([]*queries.SpecificationView, 0)
	for rows.Next() {
		var spec queries.SpecificationView
		if err := rows.Scan(&spec.ID, &spec.OfferingID, &spec.Processor, &spec.RAMMB, &spec.DiskGB, &spec.NetworkMbps); err != nil {
			return nil, infra.WrapRepoErr("failed to scan specification row", err)
		}
		result = append(result, &spec)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate specification rows", err)
	}
	return result, nil
}

const findSpecificationSQL = `
SELECT id, offering_id, processor, ram_mb, disk_gb, network_mbps
FROM offering_specs
WHERE id = $1`

func (r *OfferingReadStore) FindSpecificationByID(ctx context.Context, id int64) (*queries.SpecificationView, error) {
	var spec queries.SpecificationView
	err := r.db.QueryRow(ctx, findSpecificationSQL, id).
		Scan(&spec.ID, &spec.OfferingID, &spec.Processor, &spec.RAMMB, &spec.DiskGB, &spec.NetworkMbps)
	if err != nil {
		if db.IsNoRows(err) {
			return nil, infra.WrapRepoErr("specification not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find specification", err)
	}
	return &spec, nil
}
