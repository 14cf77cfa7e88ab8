package repository

import (
	"context"

	"vps-rental/internal/domain/order"
	"vps-rental/internal/infra"
	"vps-rental/internal/infra/db"
	"vps-rental/internal/usecase/commands"
)

type OrderRepository struct {
	db db.DBTX
}

func NewOrderRepository(dbtx db.DBTX) *OrderRepository {
	return &OrderRepository{db: dbtx}
}

// No status filter: deleted orders stay readable so a repeated delete is
// rejected by the transition check as a conflict, not reported as missing.
const orderSnapshotSQL = `
SELECT id, status, creator_id
FROM orders
WHERE id = $1`

func (r *OrderRepository) Snapshot(ctx context.Context, id int64) (*commands.OrderSnapshot, error) {
	var (
		snap   commands.OrderSnapshot
		status string
	)
	err := r.db.QueryRow(ctx, orderSnapshotSQL, id).Scan(&snap.ID, &status, &snap.CreatorID)
	if err != nil {
		if db.IsNoRows(err) {
			return nil, infra.WrapRepoErr("order not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to load order snapshot", err)
	}
	snap.Status = order.Status(status)
	return &snap, nil
}

const updateOrderStatusSQL = `
UPDATE orders
SET status = $2, moderator_id = COALESCE($3, moderator_id), updated_at = now()
WHERE id = $1`

func (r *OrderRepository) UpdateStatus(ctx context.Context, id int64, status order.Status, moderatorID *int64) error {
	tag, err := r.db.Exec(ctx, updateOrderStatusSQL, id, status.String(), moderatorID)
	if err != nil {
		return infra.WrapRepoErr("failed to update order status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("order not found", nil, infra.KindNotFound)
	}
	return nil
}

const deleteOrderLineSQL = `
DELETE FROM order_lines
WHERE order_id = $1 AND offering_id = $2`

func (r *OrderRepository) DeleteLine(ctx context.Context, orderID, offeringID int64) error {
	tag, err := r.db.Exec(ctx, deleteOrderLineSQL, orderID, offeringID)
	if err != nil {
		return infra.WrapRepoErr("failed to delete order line", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("order line not found", nil, infra.KindNotFound)
	}
	return nil
}

const findDraftIDByCreatorSQL = `
SELECT id
FROM orders
WHERE creator_id = $1 AND status = 'DRAFT'
ORDER BY id
LIMIT 1`

func (r *OrderRepository) FindDraftIDByCreator(ctx context.Context, tx db.DBTX, creatorID int64) (int64, error) {
	var id int64
	err := tx.QueryRow(ctx, findDraftIDByCreatorSQL, creatorID).Scan(&id)
	if err != nil {
		if db.IsNoRows(err) {
			return 0, infra.WrapRepoErr("draft not found", err, infra.KindNotFound)
		}
		return 0, infra.WrapRepoErr("failed to find draft", err)
	}
	return id, nil
}

const createDraftSQL = `
INSERT INTO orders (status, creator_id)
VALUES ('DRAFT', $1)
RETURNING id`

func (r *OrderRepository) CreateDraft(ctx context.Context, tx db.DBTX, creatorID int64) (int64, error) {
	var id int64
	if err := tx.QueryRow(ctx, createDraftSQL, creatorID).Scan(&id); err != nil {
		return 0, infra.WrapRepoErr("failed to create draft", err)
	}
	return id, nil
}

const lineExistsSQL = `
SELECT EXISTS (
	SELECT 1 FROM order_lines
	WHERE order_id = $1 AND offering_id = $2
)`

func (r *OrderRepository) LineExists(ctx context.Context, tx db.DBTX, orderID, offeringID int64) (bool, error) {
	var exists bool
	if err := tx.QueryRow(ctx, lineExistsSQL, orderID, offeringID).Scan(&exists); err != nil {
		return false, infra.WrapRepoErr("failed to check order line", err)
	}
	return exists, nil
}

const insertLineSQL = `
INSERT INTO order_lines (order_id, offering_id)
VALUES ($1, $2)`

func (r *OrderRepository) InsertLine(ctx context.Context, tx db.DBTX, orderID, offeringID int64) error {
	if _, err := tx.Exec(ctx, insertLineSQL, orderID, offeringID); err != nil {
		if db.IsUniqueViolation(err) {
			return infra.WrapRepoErr("order line already exists", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to insert order line", err)
	}
	return nil
}
