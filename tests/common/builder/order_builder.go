//go:build unit || e2e

package builder

import (
	"time"

	"vps-rental/internal/domain/order"
	"vps-rental/internal/usecase/queries"
)

type OrderBuilder struct {
	ID          int64
	Status      order.Status
	CreatorID   int64
	ModeratorID *int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Offerings   []*queries.OfferingListItem
}

func NewOrderBuilder() *OrderBuilder {
	now := time.Now()
	return &OrderBuilder{
		ID:        1,
		Status:    order.StatusDraft,
		CreatorID: 10,
		CreatedAt: now,
		UpdatedAt: now,
		Offerings: []*queries.OfferingListItem{},
	}
}

func (b *OrderBuilder) With(mutate func(*OrderBuilder)) *OrderBuilder {
	mutate(b)
	return b
}

func (b *OrderBuilder) BuildView() *queries.OrderView {
	return &queries.OrderView{
		ID:          b.ID,
		Status:      b.Status.String(),
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
		CreatorID:   b.CreatorID,
		ModeratorID: b.ModeratorID,
		Offerings:   b.Offerings,
	}
}
