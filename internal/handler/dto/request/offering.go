package request

import "vps-rental/internal/domain/offering"

type SaveOfferingRequest struct {
	Name        string `json:"name" binding:"required"`
	Image       string `json:"image"`
	Description string `json:"description"`
	// Pointer so a free offering (price 0) passes the required check.
	Price *int64 `json:"price" binding:"required,gte=0"`
}

func (r SaveOfferingRequest) ToDomain() (*offering.Offering, error) {
	return offering.New(r.Name, r.Image, r.Description, *r.Price)
}

type SaveSpecificationRequest struct {
	Processor   string `json:"processor" binding:"required"`
	RAMMB       int32  `json:"ram_mb" binding:"required,gt=0"`
	DiskGB      int32  `json:"disk_gb" binding:"required,gt=0"`
	NetworkMbps int32  `json:"network_mbps" binding:"required,gt=0"`
}

func (r SaveSpecificationRequest) ToDomain() (*offering.Specification, error) {
	return offering.NewSpecification(r.Processor, r.RAMMB, r.DiskGB, r.NetworkMbps)
}
