//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"vps-rental/internal/domain/user"
	"vps-rental/internal/handler/api"
	"vps-rental/internal/pkg/config"
	"vps-rental/internal/pkg/cookie"
	"vps-rental/internal/pkg/errs"
	"vps-rental/internal/usecase/commands"
	"vps-rental/internal/usecase/queries"
	"vps-rental/tests/common/httptest"
	commandsmock "vps-rental/tests/mock/commands"
	queriesmock "vps-rental/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockAuthCommands
	mockQueries  *queriesmock.MockUserQueries
	handler      *api.AuthHandler
}

func (s *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockAuthCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockUserQueries(s.mockCtrl)
	s.handler = api.NewAuthHandler(s.mockCommands, s.mockQueries, config.CookieConfig{SameSite: "Lax"}, time.Hour)

	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"status": "error", "detail": "access token required"})
			return
		}
		c.Set("user_id", int64(10))
		c.Set("user_role", user.RoleCustomer)
		c.Next()
	}

	s.router.POST("/api/auth/login", s.handler.Login)
	s.router.POST("/api/auth/logout", authMiddleware, s.handler.Logout)
	s.router.GET("/api/auth/me", authMiddleware, s.handler.Me)
}

func (s *AuthHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

func (s *AuthHandlerTestSuite) TestLogin() {
	url := "/api/auth/login"
	reqBody := map[string]any{"username": "alice", "password": "correct horse"}

	s.Run("200 sets the access token cookie", func() {
		s.mockCommands.EXPECT().Login(gomock.Any(), gomock.Any()).
			Return(&commands.LoginResult{Token: "signed-jwt", IsStaff: false}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var data map[string]any
		httptest.AssertEnvelope(s.T(), rec, http.StatusOK, &data)
		s.Equal("signed-jwt", data["access_token"])
		s.Equal(false, data["is_staff"])

		c := httptest.ExtractCookie(rec, cookie.AccessTokenCookieName)
		s.Require().NotNil(c)
		s.Equal("signed-jwt", c.Value)
		s.True(c.HttpOnly)
		s.Positive(c.MaxAge)
	})

	s.Run("401 for bad credentials", func() {
		s.mockCommands.EXPECT().Login(gomock.Any(), gomock.Any()).
			Return(nil, errs.ErrInvalidCredentials).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "invalid username or password")

		s.Nil(httptest.ExtractCookie(rec, cookie.AccessTokenCookieName))
	})

	s.Run("400 when fields are missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"username": "alice"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "invalid request format")
	})
}

func (s *AuthHandlerTestSuite) TestLogout() {
	s.Run("204 clears the cookie", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/auth/logout", nil, "bearer-token")

		s.Equal(http.StatusNoContent, rec.Code)
		c := httptest.ExtractCookie(rec, cookie.AccessTokenCookieName)
		s.Require().NotNil(c)
		s.Empty(c.Value)
		s.Negative(c.MaxAge)
	})

	s.Run("401 when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/auth/logout", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "")
	})
}

func (s *AuthHandlerTestSuite) TestMe() {
	s.Run("returns the staff flag", func() {
		s.mockQueries.EXPECT().GetCurrentUser(gomock.Any(), int64(10)).
			Return(&queries.CurrentUserView{IsStaff: true}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/auth/me", nil, "bearer-token")

		var data map[string]any
		httptest.AssertEnvelope(s.T(), rec, http.StatusOK, &data)
		s.Equal(true, data["is_staff"])
	})

	s.Run("404 when the user row is gone", func() {
		s.mockQueries.EXPECT().GetCurrentUser(gomock.Any(), int64(10)).
			Return(nil, errs.ErrUserNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/auth/me", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "user not found")
	})
}
