package commands

import (
	"context"
	"time"

	"vps-rental/internal/domain/order"
	"vps-rental/internal/infra/db"
	"vps-rental/internal/usecase/queries"
)

// UnitOfWork runs fn inside a single transaction; only the draft-assembly
// command needs one (get-or-create draft plus line insert).
type UnitOfWork interface {
	Within(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error
}

// Write-side snapshots carry only the fields command guards depend on.
type OrderSnapshot struct {
	ID        int64
	Status    order.Status
	CreatorID int64
}

type OfferingSnapshot struct {
	ID       int64
	IsActive bool
}

type UserSnapshot struct {
	ID          int64
	Username    string
	Email       string
	IsStaff     bool
	IsSuperuser bool
}

type SaveOfferingParams struct {
	Name        string
	Image       string
	Description string
	Price       int64
}

type SaveSpecificationParams struct {
	OfferingID  int64
	Processor   string
	RAMMB       int32
	DiskGB      int32
	NetworkMbps int32
}

type OfferingRepository interface {
	Create(ctx context.Context, params SaveOfferingParams) (int64, error)
	Update(ctx context.Context, id int64, params SaveOfferingParams) error
	Snapshot(ctx context.Context, id int64) (*OfferingSnapshot, error)
	// SoftDelete flips is_active; KindConflict when the offering is already
	// inactive, KindNotFound when it never existed.
	SoftDelete(ctx context.Context, id int64) error
}

type SpecificationRepository interface {
	Create(ctx context.Context, params SaveSpecificationParams) (int64, error)
	Update(ctx context.Context, id int64, params SaveSpecificationParams) error
	Delete(ctx context.Context, id int64) error
}

type OrderRepository interface {
	Snapshot(ctx context.Context, id int64) (*OrderSnapshot, error)
	UpdateStatus(ctx context.Context, id int64, status order.Status, moderatorID *int64) error
	// DeleteLine removes the join row; KindNotFound when no such line exists.
	DeleteLine(ctx context.Context, orderID, offeringID int64) error

	// Draft assembly runs inside one transaction, hence the explicit tx.
	FindDraftIDByCreator(ctx context.Context, tx db.DBTX, creatorID int64) (int64, error)
	CreateDraft(ctx context.Context, tx db.DBTX, creatorID int64) (int64, error)
	LineExists(ctx context.Context, tx db.DBTX, orderID, offeringID int64) (bool, error)
	InsertLine(ctx context.Context, tx db.DBTX, orderID, offeringID int64) error
}

type UserRepository interface {
	// FindByUsername returns the identity snapshot together with the stored
	// password hash; credentials themselves are owned by the identity
	// provider.
	FindByUsername(ctx context.Context, username string) (*UserSnapshot, string, error)
}

// Read-after-write views come from the read side, bypassing visibility rules.
type OfferingReader interface {
	FindByID(ctx context.Context, id int64) (*queries.OfferingView, error)
	FindSpecificationByID(ctx context.Context, id int64) (*queries.SpecificationView, error)
}

type OrderReader interface {
	FindByID(ctx context.Context, id int64) (*queries.OrderView, error)
}

// LoginRecorder appends a successful login event to the capped per-user log.
type LoginRecorder interface {
	Record(ctx context.Context, username string, at time.Time) error
}
