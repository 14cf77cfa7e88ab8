package api

import (
	"errors"
	"net/http"
	"time"

	reqdto "vps-rental/internal/handler/dto/request"
	resdto "vps-rental/internal/handler/dto/response"
	"vps-rental/internal/handler/httperr"
	"vps-rental/internal/pkg/config"
	"vps-rental/internal/pkg/cookie"
	"vps-rental/internal/pkg/errs"
	"vps-rental/internal/usecase/commands"
	"vps-rental/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authCommands commands.AuthCommands
	userQueries  queries.UserQueries
	cookieCfg    config.CookieConfig
	tokenTTL     time.Duration
}

func NewAuthHandler(
	authCommands commands.AuthCommands,
	userQueries queries.UserQueries,
	cookieCfg config.CookieConfig,
	tokenTTL time.Duration,
) *AuthHandler {
	return &AuthHandler{
		authCommands: authCommands,
		userQueries:  userQueries,
		cookieCfg:    cookieCfg,
		tokenTTL:     tokenTTL,
	}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "invalid request format")
		return
	}

	result, err := h.authCommands.Login(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, errs.ErrInvalidCredentials) {
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "invalid username or password")
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "failed to login")
		return
	}

	cookie.SetAccessToken(c, h.cookieCfg, result.Token, h.tokenTTL)
	c.JSON(http.StatusOK, resdto.Success(resdto.LoginResponse{
		AccessToken: result.Token,
		IsStaff:     result.IsStaff,
	}))
}

// Logout only clears the cookie; the JWT itself stays valid until expiry.
func (h *AuthHandler) Logout(c *gin.Context) {
	cookie.ClearAccessToken(c, h.cookieCfg)
	c.Status(http.StatusNoContent)
}

func (h *AuthHandler) Me(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	view, err := h.userQueries.GetCurrentUser(c.Request.Context(), actor.UserID)
	if err != nil {
		if errors.Is(err, errs.ErrUserNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "user not found")
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "failed to get current user")
		return
	}
	c.JSON(http.StatusOK, resdto.Success(view))
}
