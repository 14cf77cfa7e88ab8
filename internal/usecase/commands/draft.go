package commands

import (
	"context"

	"vps-rental/internal/domain/order"
	"vps-rental/internal/infra"
	"vps-rental/internal/infra/db"
	"vps-rental/internal/pkg/errs"
	"vps-rental/internal/usecase/queries"
)

type DraftCommands interface {
	// AddOffering appends an offering to the caller's draft, creating the
	// draft first when none exists. Get-or-create and the line insert run in
	// one transaction so a crash never leaves an empty stray draft.
	AddOffering(ctx context.Context, actor order.Actor, offeringID int64) (*queries.OrderView, error)
}

type draftCommandsImpl struct {
	uow          UnitOfWork
	orderRepo    OrderRepository
	offeringRepo OfferingRepository
	reader       OrderReader
}

func NewDraftCommands(
	uow UnitOfWork,
	orderRepo OrderRepository,
	offeringRepo OfferingRepository,
	reader OrderReader,
) DraftCommands {
	return &draftCommandsImpl{
		uow:          uow,
		orderRepo:    orderRepo,
		offeringRepo: offeringRepo,
		reader:       reader,
	}
}

func (c *draftCommandsImpl) AddOffering(ctx context.Context, actor order.Actor, offeringID int64) (*queries.OrderView, error) {
	snap, err := c.offeringRepo.Snapshot(ctx, offeringID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrOfferingNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	// Withdrawn offerings are invisible to customers, so adding one behaves
	// like adding a nonexistent one.
	if !snap.IsActive {
		return nil, errs.ErrOfferingNotFound
	}

	var draftID int64
	err = c.uow.Within(ctx, func(ctx context.Context, tx db.DBTX) error {
		draftID, err = c.orderRepo.FindDraftIDByCreator(ctx, tx, actor.UserID)
		if err != nil {
			if !infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, errs.ErrDatabaseOperationFailed)
			}
			draftID, err = c.orderRepo.CreateDraft(ctx, tx, actor.UserID)
			if err != nil {
				return errs.Mark(err, errs.ErrDatabaseOperationFailed)
			}
		}

		exists, err := c.orderRepo.LineExists(ctx, tx, draftID, offeringID)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if exists {
			return errs.Mark(errs.Newf("offering %d already in draft %d", offeringID, draftID), errs.ErrDuplicateLine)
		}

		if err := c.orderRepo.InsertLine(ctx, tx, draftID, offeringID); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return errs.Mark(err, errs.ErrDuplicateLine)
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return c.reader.FindByID(ctx, draftID)
}
