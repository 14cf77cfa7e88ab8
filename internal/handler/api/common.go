package api

import (
	"net/http"
	"strconv"

	"vps-rental/internal/domain/order"
	"vps-rental/internal/handler/httperr"
	"vps-rental/internal/handler/middleware"
	"vps-rental/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

func parseIDParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.Newf("invalid %s parameter", name), "invalid "+name+" parameter")
		return 0, false
	}
	return id, true
}

func requireActor(c *gin.Context) (order.Actor, bool) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		// Should not happen behind RequireAuth.
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("missing authenticated actor"), "authentication required")
		return order.Actor{}, false
	}
	return actor, true
}
