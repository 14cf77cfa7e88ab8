package order

import "vps-rental/internal/domain/user"

// The workflow graph:
//
//	DRAFT → FORMED → {COMPLETED | REJECTED}
//
// plus an orthogonal DELETED terminal reachable from any non-DELETED state.
// Ownership (creator vs. stranger) is checked separately by Authorize; this
// table only constrains the state graph and the actor role.

type rule struct {
	from Status
	to   Status
	// empty role means no role restriction (ownership still applies via Authorize)
	by user.Role
}

var transitionTable = []rule{
	{from: StatusDraft, to: StatusFormed},
	{from: StatusFormed, to: StatusCompleted, by: user.RoleModerator},
	{from: StatusFormed, to: StatusRejected, by: user.RoleModerator},
}

// Transition is a total function over (current, requested, role). It returns
// the new status, or an error describing why the move is rejected:
//
//   - ErrInvalidStatus: requested value is not a known status
//   - ErrStatusConflict: requested equals current, or the edge is not in the
//     graph (e.g. COMPLETED → FORMED)
//   - ErrActorNotAllowed: the edge exists but requires another role
func Transition(current, requested Status, role user.Role) (Status, error) {
	if !requested.IsValid() {
		return "", ErrInvalidStatus
	}
	if requested == current {
		return "", ErrStatusConflict
	}

	// DELETED is a soft-delete overlay: reachable from anywhere except itself.
	if requested == StatusDeleted {
		return StatusDeleted, nil
	}

	for _, r := range transitionTable {
		if r.from != current || r.to != requested {
			continue
		}
		if r.by != "" && r.by != role {
			return "", ErrActorNotAllowed
		}
		return requested, nil
	}

	return "", ErrStatusConflict
}
