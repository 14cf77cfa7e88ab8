package request

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type AddDraftOfferingRequest struct {
	OfferingID int64 `json:"offering_id" binding:"required,gt=0"`
}
