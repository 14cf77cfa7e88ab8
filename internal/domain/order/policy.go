package order

import (
	"errors"

	"vps-rental/internal/domain/user"
)

var ErrDenied = errors.New("access denied")

type Actor struct {
	UserID int64
	Role   user.Role
}

func (a Actor) IsModerator() bool {
	return a.Role.IsModerator()
}

type Action string

const (
	ActionList          Action = "list"
	ActionView          Action = "view"
	ActionForm          Action = "form"
	ActionAdjudicate    Action = "adjudicate"
	ActionDelete        Action = "delete"
	ActionRemoveLine    Action = "remove_line"
	ActionManageCatalog Action = "manage_catalog"
)

// Resource carries the only order attribute authorization depends on.
type Resource struct {
	CreatorID int64
}

// Authorize is a pure predicate evaluated once per request before any
// mutation, independent of the transport framework.
func Authorize(actor Actor, action Action, res Resource) error {
	switch action {
	case ActionList, ActionAdjudicate, ActionManageCatalog:
		if actor.IsModerator() {
			return nil
		}
	case ActionView:
		if actor.IsModerator() || actor.UserID == res.CreatorID {
			return nil
		}
	case ActionForm, ActionDelete, ActionRemoveLine:
		if actor.UserID == res.CreatorID {
			return nil
		}
	}
	return ErrDenied
}
