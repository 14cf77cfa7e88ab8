package api

import (
	"errors"
	"fmt"
	"net/http"

	"vps-rental/internal/domain/order"
	reqdto "vps-rental/internal/handler/dto/request"
	resdto "vps-rental/internal/handler/dto/response"
	"vps-rental/internal/handler/httperr"
	"vps-rental/internal/pkg/errs"
	"vps-rental/internal/usecase/commands"
	"vps-rental/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	orderCommands commands.OrderCommands
	draftCommands commands.DraftCommands
	orderQueries  queries.OrderQueries
}

func NewOrderHandler(
	orderCommands commands.OrderCommands,
	draftCommands commands.DraftCommands,
	orderQueries queries.OrderQueries,
) *OrderHandler {
	return &OrderHandler{
		orderCommands: orderCommands,
		draftCommands: draftCommands,
		orderQueries:  orderQueries,
	}
}

func (h *OrderHandler) List(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	var statusFilter *order.Status
	if raw := c.Query("status"); raw != "" {
		status, err := order.ParseStatus(raw)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "invalid status filter")
			return
		}
		statusFilter = &status
	}

	views, err := h.orderQueries.List(c.Request.Context(), actor, statusFilter)
	if err != nil {
		h.abortOrderErr(c, err, "failed to list orders")
		return
	}
	c.JSON(http.StatusOK, resdto.Success(views))
}

func (h *OrderHandler) Get(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	view, err := h.orderQueries.GetByID(c.Request.Context(), actor, id)
	if err != nil {
		h.abortOrderErr(c, err, "failed to get order")
		return
	}
	c.JSON(http.StatusOK, resdto.Success(view))
}

// UpdateStatus is the moderation endpoint: only COMPLETED and REJECTED are
// accepted as targets.
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req reqdto.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "invalid request format")
		return
	}

	requested, err := order.ParseStatus(req.Status)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "invalid status value")
		return
	}

	view, err := h.orderCommands.SetStatus(c.Request.Context(), actor, id, requested)
	if err != nil {
		h.abortOrderErr(c, err, "failed to update order status")
		return
	}
	c.JSON(http.StatusOK, resdto.SuccessDetail(view, fmt.Sprintf("order status set to %s", requested)))
}

func (h *OrderHandler) Form(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	view, err := h.orderCommands.Form(c.Request.Context(), actor, id)
	if err != nil {
		h.abortOrderErr(c, err, "failed to form order")
		return
	}
	c.JSON(http.StatusOK, resdto.SuccessDetail(view, "order formed"))
}

func (h *OrderHandler) Delete(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	view, err := h.orderCommands.SoftDelete(c.Request.Context(), actor, id)
	if err != nil {
		h.abortOrderErr(c, err, "failed to delete order")
		return
	}
	c.JSON(http.StatusOK, resdto.SuccessDetail(view, "order deleted"))
}

func (h *OrderHandler) RemoveLine(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	orderID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	offeringID, ok := parseIDParam(c, "offering_id")
	if !ok {
		return
	}

	if err := h.orderCommands.RemoveLine(c.Request.Context(), actor, orderID, offeringID); err != nil {
		if errors.Is(err, errs.ErrOrderLineMissing) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "order line not found")
			return
		}
		h.abortOrderErr(c, err, "failed to remove order line")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *OrderHandler) GetDraft(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	view, err := h.orderQueries.GetDraft(c.Request.Context(), actor.UserID)
	if err != nil {
		if errors.Is(err, errs.ErrDraftNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "draft not found")
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "failed to get draft")
		return
	}
	c.JSON(http.StatusOK, resdto.Success(view))
}

func (h *OrderHandler) AddDraftOffering(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	var req reqdto.AddDraftOfferingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "invalid request format")
		return
	}

	view, err := h.draftCommands.AddOffering(c.Request.Context(), actor, req.OfferingID)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrOfferingNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "offering not found")
		case errors.Is(err, errs.ErrDuplicateLine):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "offering already in draft")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "failed to add offering to draft")
		}
		return
	}
	c.JSON(http.StatusOK, resdto.Success(view))
}

func (h *OrderHandler) abortOrderErr(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, errs.ErrForbidden):
		httperr.AbortWithError(c, http.StatusForbidden, err, "insufficient permissions")
	case errors.Is(err, errs.ErrOrderNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "order not found")
	case errors.Is(err, errs.ErrInvalidStatus):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "invalid status value")
	case errors.Is(err, errs.ErrStatusConflict):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "order already has this status")
	case errors.Is(err, errs.ErrOrderNotDraft):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "order is no longer a draft")
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, fallback)
	}
}
