package commands

import (
	"context"

	"vps-rental/internal/domain/offering"
	"vps-rental/internal/domain/order"
	reqdto "vps-rental/internal/handler/dto/request"
	"vps-rental/internal/infra"
	"vps-rental/internal/pkg/errs"
	"vps-rental/internal/usecase/queries"
)

type OfferingCommands interface {
	Create(ctx context.Context, actor order.Actor, req reqdto.SaveOfferingRequest) (*queries.OfferingView, error)
	Update(ctx context.Context, actor order.Actor, id int64, req reqdto.SaveOfferingRequest) (*queries.OfferingView, error)
	SoftDelete(ctx context.Context, actor order.Actor, id int64) error
	CreateSpecification(ctx context.Context, actor order.Actor, offeringID int64, req reqdto.SaveSpecificationRequest) (*queries.SpecificationView, error)
	UpdateSpecification(ctx context.Context, actor order.Actor, id int64, req reqdto.SaveSpecificationRequest) (*queries.SpecificationView, error)
	DeleteSpecification(ctx context.Context, actor order.Actor, id int64) error
}

type offeringCommandsImpl struct {
	offeringRepo OfferingRepository
	specRepo     SpecificationRepository
	reader       OfferingReader
}

func NewOfferingCommands(
	offeringRepo OfferingRepository,
	specRepo SpecificationRepository,
	reader OfferingReader,
) OfferingCommands {
	return &offeringCommandsImpl{
		offeringRepo: offeringRepo,
		specRepo:     specRepo,
		reader:       reader,
	}
}

func (c *offeringCommandsImpl) Create(ctx context.Context, actor order.Actor, req reqdto.SaveOfferingRequest) (*queries.OfferingView, error) {
	if err := order.Authorize(actor, order.ActionManageCatalog, order.Resource{}); err != nil {
		return nil, errs.Mark(err, errs.ErrForbidden)
	}

	entity, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	id, err := c.offeringRepo.Create(ctx, saveOfferingParams(entity))
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return c.reader.FindByID(ctx, id)
}

func (c *offeringCommandsImpl) Update(ctx context.Context, actor order.Actor, id int64, req reqdto.SaveOfferingRequest) (*queries.OfferingView, error) {
	if err := order.Authorize(actor, order.ActionManageCatalog, order.Resource{}); err != nil {
		return nil, errs.Mark(err, errs.ErrForbidden)
	}

	entity, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	if err := c.offeringRepo.Update(ctx, id, saveOfferingParams(entity)); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrOfferingNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return c.reader.FindByID(ctx, id)
}

func (c *offeringCommandsImpl) SoftDelete(ctx context.Context, actor order.Actor, id int64) error {
	if err := order.Authorize(actor, order.ActionManageCatalog, order.Resource{}); err != nil {
		return errs.Mark(err, errs.ErrForbidden)
	}

	if err := c.offeringRepo.SoftDelete(ctx, id); err != nil {
		switch {
		case infra.IsKind(err, infra.KindNotFound):
			return errs.Mark(err, errs.ErrOfferingNotFound)
		case infra.IsKind(err, infra.KindConflict):
			return errs.Mark(err, errs.ErrOfferingAlreadyDeleted)
		default:
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
	}
	return nil
}

func (c *offeringCommandsImpl) CreateSpecification(ctx context.Context, actor order.Actor, offeringID int64, req reqdto.SaveSpecificationRequest) (*queries.SpecificationView, error) {
	if err := order.Authorize(actor, order.ActionManageCatalog, order.Resource{}); err != nil {
		return nil, errs.Mark(err, errs.ErrForbidden)
	}

	entity, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	snap, err := c.offeringRepo.Snapshot(ctx, offeringID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrOfferingNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if !snap.IsActive {
		return nil, errs.ErrOfferingNotFound
	}

	id, err := c.specRepo.Create(ctx, saveSpecificationParams(offeringID, entity))
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return c.reader.FindSpecificationByID(ctx, id)
}

func (c *offeringCommandsImpl) UpdateSpecification(ctx context.Context, actor order.Actor, id int64, req reqdto.SaveSpecificationRequest) (*queries.SpecificationView, error) {
	if err := order.Authorize(actor, order.ActionManageCatalog, order.Resource{}); err != nil {
		return nil, errs.Mark(err, errs.ErrForbidden)
	}

	entity, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	if err := c.specRepo.Update(ctx, id, saveSpecificationParams(0, entity)); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrSpecificationNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return c.reader.FindSpecificationByID(ctx, id)
}

func (c *offeringCommandsImpl) DeleteSpecification(ctx context.Context, actor order.Actor, id int64) error {
	if err := order.Authorize(actor, order.ActionManageCatalog, order.Resource{}); err != nil {
		return errs.Mark(err, errs.ErrForbidden)
	}

	if err := c.specRepo.Delete(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, errs.ErrSpecificationNotFound)
		}
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nil
}

func saveOfferingParams(entity *offering.Offering) SaveOfferingParams {
	return SaveOfferingParams{
		Name:        entity.Name(),
		Image:       entity.Image(),
		Description: entity.Description(),
		Price:       entity.Price(),
	}
}

func saveSpecificationParams(offeringID int64, entity *offering.Specification) SaveSpecificationParams {
	return SaveSpecificationParams{
		OfferingID:  offeringID,
		Processor:   entity.Processor(),
		RAMMB:       entity.RAMMB(),
		DiskGB:      entity.DiskGB(),
		NetworkMbps: entity.NetworkMbps(),
	}
}
