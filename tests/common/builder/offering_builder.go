//go:build unit || e2e

package builder

import (
	reqdto "vps-rental/internal/handler/dto/request"
	"vps-rental/internal/usecase/queries"
)

type OfferingBuilder struct {
	ID          int64
	Name        string
	Image       string
	Description string
	Price       int64
	IsActive    bool
}

func NewOfferingBuilder() *OfferingBuilder {
	return &OfferingBuilder{
		ID:          1,
		Name:        "Basic VPS",
		Image:       "https://cdn.example.com/basic.png",
		Description: "Entry-level virtual server",
		Price:       490,
		IsActive:    true,
	}
}

func (b *OfferingBuilder) With(mutate func(*OfferingBuilder)) *OfferingBuilder {
	mutate(b)
	return b
}

func (b *OfferingBuilder) BuildSaveRequestDTO() reqdto.SaveOfferingRequest {
	price := b.Price
	return reqdto.SaveOfferingRequest{
		Name:        b.Name,
		Image:       b.Image,
		Description: b.Description,
		Price:       &price,
	}
}

func (b *OfferingBuilder) BuildListItem() *queries.OfferingListItem {
	return &queries.OfferingListItem{
		ID:          b.ID,
		Name:        b.Name,
		Image:       b.Image,
		Description: b.Description,
		Price:       b.Price,
		IsActive:    b.IsActive,
	}
}

func (b *OfferingBuilder) BuildView() *queries.OfferingView {
	return &queries.OfferingView{
		ID:             b.ID,
		Name:           b.Name,
		Image:          b.Image,
		Description:    b.Description,
		Price:          b.Price,
		IsActive:       b.IsActive,
		Specifications: []*queries.SpecificationView{},
	}
}

type SpecificationBuilder struct {
	ID          int64
	OfferingID  int64
	Processor   string
	RAMMB       int32
	DiskGB      int32
	NetworkMbps int32
}

func NewSpecificationBuilder() *SpecificationBuilder {
	return &SpecificationBuilder{
		ID:          1,
		OfferingID:  1,
		Processor:   "EPYC 7543",
		RAMMB:       4096,
		DiskGB:      80,
		NetworkMbps: 1000,
	}
}

func (b *SpecificationBuilder) With(mutate func(*SpecificationBuilder)) *SpecificationBuilder {
	mutate(b)
	return b
}

func (b *SpecificationBuilder) BuildSaveRequestDTO() reqdto.SaveSpecificationRequest {
	return reqdto.SaveSpecificationRequest{
		Processor:   b.Processor,
		RAMMB:       b.RAMMB,
		DiskGB:      b.DiskGB,
		NetworkMbps: b.NetworkMbps,
	}
}

func (b *SpecificationBuilder) BuildView() *queries.SpecificationView {
	return &queries.SpecificationView{
		ID:          b.ID,
		OfferingID:  b.OfferingID,
		Processor:   b.Processor,
		RAMMB:       b.RAMMB,
		DiskGB:      b.DiskGB,
		NetworkMbps: b.NetworkMbps,
	}
}
