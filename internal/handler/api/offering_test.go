//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"vps-rental/internal/domain/order"
	"vps-rental/internal/domain/user"
	"vps-rental/internal/handler/api"
	"vps-rental/internal/pkg/errs"
	"vps-rental/internal/usecase/queries"
	"vps-rental/tests/common/builder"
	"vps-rental/tests/common/httptest"
	"vps-rental/tests/common/testutil"
	commandsmock "vps-rental/tests/mock/commands"
	queriesmock "vps-rental/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type OfferingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockOfferingCommands
	mockQueries  *queriesmock.MockOfferingQueries
	handler      *api.OfferingHandler
}

func (s *OfferingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockOfferingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockOfferingQueries(s.mockCtrl)
	s.handler = api.NewOfferingHandler(s.mockCommands, s.mockQueries)

	// Mock authentication middleware for testing
	authMiddleware := func(role user.Role) gin.HandlerFunc {
		return func(c *gin.Context) {
			if c.GetHeader("Authorization") == "" {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"status": "error", "detail": "access token required"})
				return
			}
			c.Set("user_id", int64(99))
			c.Set("user_role", role)
			c.Next()
		}
	}

	s.router.GET("/api/offerings", s.handler.List)
	s.router.GET("/api/offerings/:id", s.handler.Get)
	s.router.GET("/api/offerings/:id/specifications", s.handler.ListSpecifications)
	s.router.POST("/api/offerings", authMiddleware(user.RoleModerator), s.handler.Create)
	s.router.PUT("/api/offerings/:id", authMiddleware(user.RoleModerator), s.handler.Update)
	s.router.DELETE("/api/offerings/:id", authMiddleware(user.RoleModerator), s.handler.Delete)
	s.router.POST("/api/offerings/:id/specifications", authMiddleware(user.RoleModerator), s.handler.CreateSpecification)
	s.router.GET("/api/specifications/:id", s.handler.GetSpecification)
	s.router.PUT("/api/specifications/:id", authMiddleware(user.RoleModerator), s.handler.UpdateSpecification)
	s.router.DELETE("/api/specifications/:id", authMiddleware(user.RoleModerator), s.handler.DeleteSpecification)
}

func (s *OfferingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestOfferingHandlerSuite(t *testing.T) {
	suite.Run(t, new(OfferingHandlerTestSuite))
}

func (s *OfferingHandlerTestSuite) TestList() {
	s.Run("returns bare array, not the envelope", func() {
		items := []*queries.OfferingListItem{
			builder.NewOfferingBuilder().BuildListItem(),
			builder.NewOfferingBuilder().With(func(b *builder.OfferingBuilder) { b.ID = 2; b.Name = "Pro VPS" }).BuildListItem(),
		}
		s.mockQueries.EXPECT().List(gomock.Any(), "").Return(items, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/offerings", nil, "")

		var body []map[string]any
		httptest.AssertBareArray(s.T(), rec, http.StatusOK, &body)
		s.Len(body, 2)
		s.Equal("Basic VPS", body[0]["name"])
		// bare array means no top-level "status" field
		s.NotContains(rec.Body.String(), `"status":"success"`)
	})

	s.Run("passes the search query through", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), "pro").Return([]*queries.OfferingListItem{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/offerings?query=pro", nil, "")

		var body []map[string]any
		httptest.AssertBareArray(s.T(), rec, http.StatusOK, &body)
		s.Empty(body)
	})
}

func (s *OfferingHandlerTestSuite) TestGet() {
	s.Run("success", func() {
		view := builder.NewOfferingBuilder().BuildView()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), int64(1)).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/offerings/1", nil, "")

		var data map[string]any
		httptest.AssertEnvelope(s.T(), rec, http.StatusOK, &data)
		s.Equal("Basic VPS", data["name"])
	})

	s.Run("404 for missing or inactive offering", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), int64(42)).Return(nil, errs.ErrOfferingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/offerings/42", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "offering not found")
	})

	s.Run("400 for malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/offerings/abc", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "invalid id")
	})
}

func (s *OfferingHandlerTestSuite) TestCreate() {
	url := "/api/offerings"
	reqBody := builder.NewOfferingBuilder().BuildSaveRequestDTO()

	s.Run("201 for valid request", func() {
		view := builder.NewOfferingBuilder().BuildView()
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), reqBody).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var data map[string]any
		httptest.AssertEnvelope(s.T(), rec, http.StatusCreated, &data)
		s.Equal("Basic VPS", data["name"])
	})

	s.Run("201 for a free offering", func() {
		freeBody := builder.NewOfferingBuilder().With(func(b *builder.OfferingBuilder) { b.Price = 0 }).BuildSaveRequestDTO()
		view := builder.NewOfferingBuilder().With(func(b *builder.OfferingBuilder) { b.Price = 0 }).BuildView()
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), freeBody).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, freeBody, "bearer-token")

		var data map[string]any
		httptest.AssertEnvelope(s.T(), rec, http.StatusCreated, &data)
		s.EqualValues(0, data["price"])
	})

	s.Run("401 when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "")
	})

	s.Run("400 on validation errors", func() {
		cases := []struct {
			name   string
			mutate func(map[string]any)
		}{
			{name: "missing name", mutate: testutil.Field("name", nil)},
			{name: "missing price", mutate: testutil.Field("price", nil)},
			{name: "negative price", mutate: testutil.Field("price", -1)},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				body := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("403 for non-moderator", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), reqBody).
			Return(nil, errs.ErrForbidden).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "insufficient permissions")
	})
}

func (s *OfferingHandlerTestSuite) TestDelete() {
	s.Run("204 on success", func() {
		s.mockCommands.EXPECT().SoftDelete(gomock.Any(), order.Actor{UserID: 99, Role: user.RoleModerator}, int64(1)).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/api/offerings/1", nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
		s.Empty(rec.Body.String())
	})

	s.Run("410 when already deleted", func() {
		s.mockCommands.EXPECT().SoftDelete(gomock.Any(), gomock.Any(), int64(1)).
			Return(errs.ErrOfferingAlreadyDeleted).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/api/offerings/1", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusGone, "already deleted")
	})

	s.Run("404 when absent", func() {
		s.mockCommands.EXPECT().SoftDelete(gomock.Any(), gomock.Any(), int64(42)).
			Return(errs.ErrOfferingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/api/offerings/42", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "offering not found")
	})
}

func (s *OfferingHandlerTestSuite) TestSpecifications() {
	s.Run("list for offering", func() {
		specs := []*queries.SpecificationView{builder.NewSpecificationBuilder().BuildView()}
		s.mockQueries.EXPECT().ListSpecifications(gomock.Any(), int64(1)).Return(specs, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/offerings/1/specifications", nil, "")

		var data []map[string]any
		httptest.AssertEnvelope(s.T(), rec, http.StatusOK, &data)
		s.Len(data, 1)
		s.Equal("EPYC 7543", data[0]["processor"])
	})

	s.Run("create 201", func() {
		reqBody := builder.NewSpecificationBuilder().BuildSaveRequestDTO()
		view := builder.NewSpecificationBuilder().BuildView()
		s.mockCommands.EXPECT().CreateSpecification(gomock.Any(), gomock.Any(), int64(1), reqBody).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/offerings/1/specifications", reqBody, "bearer-token")

		var data map[string]any
		httptest.AssertEnvelope(s.T(), rec, http.StatusCreated, &data)
	})

	s.Run("get 404 when absent", func() {
		s.mockQueries.EXPECT().GetSpecification(gomock.Any(), int64(9)).
			Return(nil, errs.ErrSpecificationNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/specifications/9", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "specification not found")
	})

	s.Run("delete 204", func() {
		s.mockCommands.EXPECT().DeleteSpecification(gomock.Any(), gomock.Any(), int64(3)).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/api/specifications/3", nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})
}
