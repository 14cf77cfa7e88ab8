package order

import "errors"

var (
	ErrInvalidStatus   = errors.New("invalid order status")
	ErrStatusConflict  = errors.New("status transition conflict")
	ErrActorNotAllowed = errors.New("actor role not allowed for this transition")
)

// Status is the single mutable field driving the order workflow.
// DRAFT and DELETED are private working states, never shown in moderator
// listings.
type Status string

const (
	StatusDraft     Status = "DRAFT"
	StatusFormed    Status = "FORMED"
	StatusCompleted Status = "COMPLETED"
	StatusRejected  Status = "REJECTED"
	StatusDeleted   Status = "DELETED"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusDraft, StatusFormed, StatusCompleted, StatusRejected, StatusDeleted:
		return true
	default:
		return false
	}
}

// Moderation targets are the only statuses a moderator may set directly.
func (s Status) IsModerationTarget() bool {
	return s == StatusCompleted || s == StatusRejected
}

func ParseStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}

func AllStatuses() []Status {
	return []Status{StatusDraft, StatusFormed, StatusCompleted, StatusRejected, StatusDeleted}
}
