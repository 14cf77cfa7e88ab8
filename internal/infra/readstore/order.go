package readstore

import (
	"context"

	"vps-rental/internal/domain/order"
	"vps-rental/internal/infra"
	"vps-rental/internal/infra/db"
	"vps-rental/internal/usecase/queries"
)

type OrderReadStore struct {
	db db.DBTX
}

func NewOrderReadStore(dbtx db.DBTX) *OrderReadStore {
	return &OrderReadStore{db: dbtx}
}

const listOrdersSQL = `
SELECT id, status, created_at, updated_at, creator_id, moderator_id
FROM orders
WHERE status NOT IN ('DRAFT', 'DELETED')
  AND ($1::text IS NULL OR status = $1)
ORDER BY created_at DESC, id DESC`

func (r *OrderReadStore) List(ctx context.Context, status *order.Status) ([]*queries.OrderView, error) {
	var statusArg *string
	if status != nil {
		s := status.String()
		statusArg = &s
	}

	rows, err := r.db.Query(ctx, listOrdersSQL, statusArg)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list orders", err)
	}
	defer rows.Close()

	result := make([]*queries.OrderView, 0)
	for rows.Next() {
		var view queries.OrderView
		if err := rows.Scan(&view.ID, &view.Status, &view.CreatedAt, &view.UpdatedAt, &view.CreatorID, &view.ModeratorID); err != nil {
			return nil, infra.WrapRepoErr("failed to scan order row", err)
		}
		result = append(result, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate order rows", err)
	}

	for _, view := range result {
		offerings, err := r.listOrderOfferings(ctx, view.ID)
		if err != nil {
			return nil, err
		}
		view.Offerings = offerings
	}
	return result, nil
}

const findOrderSQL = `
SELECT id, status, created_at, updated_at, creator_id, moderator_id
FROM orders
WHERE id = $1`

func (r *OrderReadStore) FindByID(ctx context.Context, id int64) (*queries.OrderView, error) {
	return r.findOne(ctx, findOrderSQL, id)
}

const findDraftByCreatorSQL = `
SELECT id, status, created_at, updated_at, creator_id, moderator_id
FROM orders
WHERE creator_id = $1 AND status = 'DRAFT'
ORDER BY id
LIMIT 1`

func (r *OrderReadStore) FindDraftByCreator(ctx context.Context, creatorID int64) (*queries.OrderView, error) {
	return r.findOne(ctx, findDraftByCreatorSQL, creatorID)
}

func (r *OrderReadStore) findOne(ctx context.Context, sql string, arg any) (*queries.OrderView, error) {
	var view queries.OrderView
	err := r.db.QueryRow(ctx, sql, arg).
		Scan(&view.ID, &view.Status, &view.CreatedAt, &view.UpdatedAt, &view.CreatorID, &view.ModeratorID)
	if err != nil {
		if db.IsNoRows(err) {
			return nil, infra.WrapRepoErr("order not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find order", err)
	}

	offerings, err := r.listOrderOfferings(ctx, view.ID)
	if err != nil {
		return nil, err
	}
	view.Offerings = offerings
	return &view, nil
}

const listOrderOfferingsSQL = `
SELECT o.id, o.name, o.image, o.description, o.price, o.is_active
FROM order_lines l
JOIN offerings o ON o.id = l.offering_id
WHERE l.order_id = $1
ORDER BY l.id`

func (r *OrderReadStore) listOrderOfferings(ctx context.Context, orderID int64) ([]*queries.OfferingListItem, error) {
	rows, err := r.db.Query(ctx, listOrderOfferingsSQL, orderID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list order offerings", err)
	}
	defer rows.Close()

	result := make([]*queries.OfferingListItem, 0)
	for rows.Next() {
		var item queries.OfferingListItem
		if err := rows.Scan(&item.ID, &item.Name, &item.Image, &item.Description, &item.Price, &item.IsActive); err != nil {
			return nil, infra.WrapRepoErr("failed to scan order offering row", err)
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate order offering rows", err)
	}
	return result, nil
}
