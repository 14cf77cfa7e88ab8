package commands

import (
	"context"
	"errors"

	"vps-rental/internal/domain/order"
	"vps-rental/internal/infra"
	"vps-rental/internal/pkg/errs"
	"vps-rental/internal/usecase/queries"
)

type OrderCommands interface {
	// SetStatus moves a FORMED order to COMPLETED or REJECTED (moderator only).
	SetStatus(ctx context.Context, actor order.Actor, id int64, requested order.Status) (*queries.OrderView, error)
	// Form submits the caller's draft for moderation.
	Form(ctx context.Context, actor order.Actor, id int64) (*queries.OrderView, error)
	// SoftDelete marks the order DELETED and returns the final view. A second
	// delete of the same order is a status conflict, not a missing order.
	SoftDelete(ctx context.Context, actor order.Actor, id int64) (*queries.OrderView, error)
	RemoveLine(ctx context.Context, actor order.Actor, orderID, offeringID int64) error
}

type orderCommandsImpl struct {
	orderRepo OrderRepository
	reader    OrderReader
}

func NewOrderCommands(orderRepo OrderRepository, reader OrderReader) OrderCommands {
	return &orderCommandsImpl{
		orderRepo: orderRepo,
		reader:    reader,
	}
}

func (c *orderCommandsImpl) SetStatus(ctx context.Context, actor order.Actor, id int64, requested order.Status) (*queries.OrderView, error) {
	if !requested.IsModerationTarget() {
		return nil, errs.Mark(errs.Newf("status %q is not a moderation target", requested), errs.ErrInvalidStatus)
	}
	if err := order.Authorize(actor, order.ActionAdjudicate, order.Resource{}); err != nil {
		return nil, errs.Mark(err, errs.ErrForbidden)
	}

	snap, err := c.snapshot(ctx, id)
	if err != nil {
		return nil, err
	}

	next, err := order.Transition(snap.Status, requested, actor.Role)
	if err != nil {
		return nil, markTransitionErr(err)
	}

	moderatorID := actor.UserID
	if err := c.updateStatus(ctx, id, next, &moderatorID); err != nil {
		return nil, err
	}
	return c.reader.FindByID(ctx, id)
}

func (c *orderCommandsImpl) Form(ctx context.Context, actor order.Actor, id int64) (*queries.OrderView, error) {
	snap, err := c.snapshot(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := order.Authorize(actor, order.ActionForm, order.Resource{CreatorID: snap.CreatorID}); err != nil {
		return nil, errs.Mark(err, errs.ErrForbidden)
	}

	next, err := order.Transition(snap.Status, order.StatusFormed, actor.Role)
	if err != nil {
		return nil, markTransitionErr(err)
	}

	if err := c.updateStatus(ctx, id, next, nil); err != nil {
		return nil, err
	}
	return c.reader.FindByID(ctx, id)
}

func (c *orderCommandsImpl) SoftDelete(ctx context.Context, actor order.Actor, id int64) (*queries.OrderView, error) {
	snap, err := c.snapshot(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := order.Authorize(actor, order.ActionDelete, order.Resource{CreatorID: snap.CreatorID}); err != nil {
		return nil, errs.Mark(err, errs.ErrForbidden)
	}

	next, err := order.Transition(snap.Status, order.StatusDeleted, actor.Role)
	if err != nil {
		return nil, markTransitionErr(err)
	}

	if err := c.updateStatus(ctx, id, next, nil); err != nil {
		return nil, err
	}
	return c.reader.FindByID(ctx, id)
}

func (c *orderCommandsImpl) RemoveLine(ctx context.Context, actor order.Actor, orderID, offeringID int64) error {
	snap, err := c.snapshot(ctx, orderID)
	if err != nil {
		return err
	}
	if err := order.Authorize(actor, order.ActionRemoveLine, order.Resource{CreatorID: snap.CreatorID}); err != nil {
		return errs.Mark(err, errs.ErrForbidden)
	}
	// Lines are only editable while the order is still being assembled.
	if snap.Status != order.StatusDraft {
		return errs.Mark(errs.Newf("order %d is %s", orderID, snap.Status), errs.ErrOrderNotDraft)
	}

	if err := c.orderRepo.DeleteLine(ctx, orderID, offeringID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, errs.ErrOrderLineMissing)
		}
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nil
}

func (c *orderCommandsImpl) snapshot(ctx context.Context, id int64) (*OrderSnapshot, error) {
	snap, err := c.orderRepo.Snapshot(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrOrderNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return snap, nil
}

func (c *orderCommandsImpl) updateStatus(ctx context.Context, id int64, status order.Status, moderatorID *int64) error {
	if err := c.orderRepo.UpdateStatus(ctx, id, status, moderatorID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, errs.ErrOrderNotFound)
		}
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nil
}

func markTransitionErr(err error) error {
	switch {
	case errors.Is(err, order.ErrInvalidStatus):
		return errs.Mark(err, errs.ErrInvalidStatus)
	case errors.Is(err, order.ErrActorNotAllowed):
		return errs.Mark(err, errs.ErrForbidden)
	default:
		return errs.Mark(err, errs.ErrStatusConflict)
	}
}
