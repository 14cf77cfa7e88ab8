package queries

import "time"

// Read models (DTO for read side)

type OfferingListItem struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Image       string `json:"image"`
	Description string `json:"description"`
	Price       int64  `json:"price"`
	IsActive    bool   `json:"is_active"`
}

type SpecificationView struct {
	ID          int64  `json:"id"`
	OfferingID  int64  `json:"offering_id"`
	Processor   string `json:"processor"`
	RAMMB       int32  `json:"ram_mb"`
	DiskGB      int32  `json:"disk_gb"`
	NetworkMbps int32  `json:"network_mbps"`
}

type OfferingView struct {
	ID             int64                `json:"id"`
	Name           string               `json:"name"`
	Image          string               `json:"image"`
	Description    string               `json:"description"`
	Price          int64                `json:"price"`
	IsActive       bool                 `json:"is_active"`
	Specifications []*SpecificationView `json:"specifications"`
}

type OrderView struct {
	ID          int64               `json:"id"`
	Status      string              `json:"status"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
	CreatorID   int64               `json:"creator_id"`
	ModeratorID *int64              `json:"moderator_id,omitempty"`
	Offerings   []*OfferingListItem `json:"offerings"`
}

// CurrentUserView exposes only the staff flag of the caller.
type CurrentUserView struct {
	IsStaff bool `json:"is_staff"`
}
