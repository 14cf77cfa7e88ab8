package api

import (
	"errors"
	"net/http"

	reqdto "vps-rental/internal/handler/dto/request"
	resdto "vps-rental/internal/handler/dto/response"
	"vps-rental/internal/handler/httperr"
	"vps-rental/internal/pkg/errs"
	"vps-rental/internal/usecase/commands"
	"vps-rental/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type OfferingHandler struct {
	commands commands.OfferingCommands
	queries  queries.OfferingQueries
}

func NewOfferingHandler(cmds commands.OfferingCommands, qs queries.OfferingQueries) *OfferingHandler {
	return &OfferingHandler{
		commands: cmds,
		queries:  qs,
	}
}

// List is the one endpoint returning a bare array instead of the envelope.
func (h *OfferingHandler) List(c *gin.Context) {
	items, err := h.queries.List(c.Request.Context(), c.Query("query"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "failed to list offerings")
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *OfferingHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	view, err := h.queries.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, errs.ErrOfferingNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "offering not found")
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "failed to get offering")
		return
	}
	c.JSON(http.StatusOK, resdto.Success(view))
}

func (h *OfferingHandler) Create(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	var req reqdto.SaveOfferingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "invalid request format")
		return
	}

	view, err := h.commands.Create(c.Request.Context(), actor, req)
	if err != nil {
		h.abortOfferingErr(c, err, "failed to create offering")
		return
	}
	c.JSON(http.StatusCreated, resdto.Success(view))
}

func (h *OfferingHandler) Update(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req reqdto.SaveOfferingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "invalid request format")
		return
	}

	view, err := h.commands.Update(c.Request.Context(), actor, id, req)
	if err != nil {
		h.abortOfferingErr(c, err, "failed to update offering")
		return
	}
	c.JSON(http.StatusOK, resdto.Success(view))
}

func (h *OfferingHandler) Delete(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.commands.SoftDelete(c.Request.Context(), actor, id); err != nil {
		switch {
		case errors.Is(err, errs.ErrOfferingAlreadyDeleted):
			httperr.AbortWithError(c, http.StatusGone, err, "offering already deleted")
		case errors.Is(err, errs.ErrOfferingNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "offering not found")
		case errors.Is(err, errs.ErrForbidden):
			httperr.AbortWithError(c, http.StatusForbidden, err, "insufficient permissions")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "failed to delete offering")
		}
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *OfferingHandler) ListSpecifications(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	specs, err := h.queries.ListSpecifications(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, errs.ErrOfferingNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "offering not found")
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "failed to list specifications")
		return
	}
	c.JSON(http.StatusOK, resdto.Success(specs))
}

func (h *OfferingHandler) GetSpecification(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	view, err := h.queries.GetSpecification(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, errs.ErrSpecificationNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "specification not found")
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "failed to get specification")
		return
	}
	c.JSON(http.StatusOK, resdto.Success(view))
}

func (h *OfferingHandler) CreateSpecification(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	offeringID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req reqdto.SaveSpecificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "invalid request format")
		return
	}

	view, err := h.commands.CreateSpecification(c.Request.Context(), actor, offeringID, req)
	if err != nil {
		h.abortSpecificationErr(c, err, "failed to create specification")
		return
	}
	c.JSON(http.StatusCreated, resdto.Success(view))
}

func (h *OfferingHandler) UpdateSpecification(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req reqdto.SaveSpecificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "invalid request format")
		return
	}

	view, err := h.commands.UpdateSpecification(c.Request.Context(), actor, id, req)
	if err != nil {
		h.abortSpecificationErr(c, err, "failed to update specification")
		return
	}
	c.JSON(http.StatusOK, resdto.Success(view))
}

func (h *OfferingHandler) DeleteSpecification(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.commands.DeleteSpecification(c.Request.Context(), actor, id); err != nil {
		h.abortSpecificationErr(c, err, "failed to delete specification")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *OfferingHandler) abortOfferingErr(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, errs.ErrForbidden):
		httperr.AbortWithError(c, http.StatusForbidden, err, "insufficient permissions")
	case errors.Is(err, errs.ErrDomainValidation):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "invalid offering data")
	case errors.Is(err, errs.ErrOfferingNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "offering not found")
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, fallback)
	}
}

func (h *OfferingHandler) abortSpecificationErr(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, errs.ErrForbidden):
		httperr.AbortWithError(c, http.StatusForbidden, err, "insufficient permissions")
	case errors.Is(err, errs.ErrDomainValidation):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "invalid specification data")
	case errors.Is(err, errs.ErrOfferingNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "offering not found")
	case errors.Is(err, errs.ErrSpecificationNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "specification not found")
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, fallback)
	}
}
