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
	commandsmock "vps-rental/tests/mock/commands"
	queriesmock "vps-rental/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type OrderHandlerTestSuite struct {
	suite.Suite
	router            *gin.Engine
	mockCtrl          *gomock.Controller
	mockOrderCommands *commandsmock.MockOrderCommands
	mockDraftCommands *commandsmock.MockDraftCommands
	mockQueries       *queriesmock.MockOrderQueries
	handler           *api.OrderHandler
	role              user.Role
}

func (s *OrderHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.role = user.RoleCustomer

	s.mockCtrl = gomock.NewController(s.T())
	s.mockOrderCommands = commandsmock.NewMockOrderCommands(s.mockCtrl)
	s.mockDraftCommands = commandsmock.NewMockDraftCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockOrderQueries(s.mockCtrl)
	s.handler = api.NewOrderHandler(s.mockOrderCommands, s.mockDraftCommands, s.mockQueries)

	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"status": "error", "detail": "access token required"})
			return
		}
		c.Set("user_id", int64(10))
		c.Set("user_role", s.role)
		c.Next()
	}

	orders := s.router.Group("/api/orders")
	orders.Use(authMiddleware)
	orders.GET("", s.handler.List)
	orders.GET("/draft", s.handler.GetDraft)
	orders.POST("/draft", s.handler.AddDraftOffering)
	orders.GET("/:id", s.handler.Get)
	orders.PUT("/:id", s.handler.UpdateStatus)
	orders.PUT("/:id/formed", s.handler.Form)
	orders.DELETE("/:id", s.handler.Delete)
	orders.DELETE("/:id/lines/:offering_id", s.handler.RemoveLine)
}

func (s *OrderHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestOrderHandlerSuite(t *testing.T) {
	suite.Run(t, new(OrderHandlerTestSuite))
}

func (s *OrderHandlerTestSuite) actor() order.Actor {
	return order.Actor{UserID: 10, Role: s.role}
}

func (s *OrderHandlerTestSuite) TestList() {
	s.Run("moderator lists with status filter", func() {
		s.role = user.RoleModerator
		formed := order.StatusFormed
		views := []*queries.OrderView{
			builder.NewOrderBuilder().With(func(b *builder.OrderBuilder) { b.Status = order.StatusFormed }).BuildView(),
		}
		s.mockQueries.EXPECT().List(gomock.Any(), s.actor(), &formed).Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/orders?status=FORMED", nil, "bearer-token")

		var data []map[string]any
		httptest.AssertEnvelope(s.T(), rec, http.StatusOK, &data)
		s.Len(data, 1)
	})

	s.Run("400 for unknown status filter", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/orders?status=SHIPPED", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "invalid status filter")
	})

	s.Run("403 for non-moderator", func() {
		s.role = user.RoleCustomer
		s.mockQueries.EXPECT().List(gomock.Any(), s.actor(), gomock.Nil()).Return(nil, errs.ErrForbidden).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/orders", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "insufficient permissions")
	})

	s.Run("401 when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/orders", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "")
	})
}

func (s *OrderHandlerTestSuite) TestGet() {
	s.Run("success", func() {
		view := builder.NewOrderBuilder().BuildView()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.actor(), int64(1)).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/orders/1", nil, "bearer-token")

		var data map[string]any
		httptest.AssertEnvelope(s.T(), rec, http.StatusOK, &data)
		s.Equal("DRAFT", data["status"])
	})

	s.Run("403 for another user's order", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.actor(), int64(2)).Return(nil, errs.ErrForbidden).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/orders/2", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "insufficient permissions")
	})

	s.Run("404 when absent", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.actor(), int64(404)).Return(nil, errs.ErrOrderNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/orders/404", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "order not found")
	})
}

func (s *OrderHandlerTestSuite) TestUpdateStatus() {
	s.role = user.RoleModerator
	url := "/api/orders/1"

	s.Run("200 with detail on success", func() {
		view := builder.NewOrderBuilder().With(func(b *builder.OrderBuilder) { b.Status = order.StatusCompleted }).BuildView()
		s.mockOrderCommands.EXPECT().SetStatus(gomock.Any(), s.actor(), int64(1), order.StatusCompleted).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"status": "COMPLETED"}, "bearer-token")

		var data map[string]any
		httptest.AssertEnvelope(s.T(), rec, http.StatusOK, &data)
		s.Contains(rec.Body.String(), "order status set to COMPLETED")
	})

	s.Run("400 for unknown status value", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"status": "SHIPPED"}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "invalid status value")
	})

	s.Run("400 for non-moderation target", func() {
		s.mockOrderCommands.EXPECT().SetStatus(gomock.Any(), s.actor(), int64(1), order.StatusFormed).
			Return(nil, errs.ErrInvalidStatus).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"status": "FORMED"}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "invalid status value")
	})

	s.Run("400 when order already has the status", func() {
		s.mockOrderCommands.EXPECT().SetStatus(gomock.Any(), s.actor(), int64(1), order.StatusCompleted).
			Return(nil, errs.ErrStatusConflict).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"status": "COMPLETED"}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "already has this status")
	})
}

func (s *OrderHandlerTestSuite) TestForm() {
	s.Run("200 with detail", func() {
		view := builder.NewOrderBuilder().With(func(b *builder.OrderBuilder) { b.Status = order.StatusFormed }).BuildView()
		s.mockOrderCommands.EXPECT().Form(gomock.Any(), s.actor(), int64(1)).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/api/orders/1/formed", nil, "bearer-token")

		var data map[string]any
		httptest.AssertEnvelope(s.T(), rec, http.StatusOK, &data)
		s.Contains(rec.Body.String(), "order formed")
	})

	s.Run("400 when already formed", func() {
		s.mockOrderCommands.EXPECT().Form(gomock.Any(), s.actor(), int64(1)).
			Return(nil, errs.ErrStatusConflict).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/api/orders/1/formed", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})
}

func (s *OrderHandlerTestSuite) TestDelete() {
	s.Run("200 envelope with the deleted order", func() {
		view := builder.NewOrderBuilder().With(func(b *builder.OrderBuilder) { b.Status = order.StatusDeleted }).BuildView()
		s.mockOrderCommands.EXPECT().SoftDelete(gomock.Any(), s.actor(), int64(1)).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/api/orders/1", nil, "bearer-token")

		var data map[string]any
		httptest.AssertEnvelope(s.T(), rec, http.StatusOK, &data)
		s.Equal("DELETED", data["status"])
		s.Contains(rec.Body.String(), "order deleted")
	})

	s.Run("400 when already deleted", func() {
		s.mockOrderCommands.EXPECT().SoftDelete(gomock.Any(), s.actor(), int64(1)).
			Return(nil, errs.ErrStatusConflict).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/api/orders/1", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "already has this status")
	})

	s.Run("403 for non-creator", func() {
		s.mockOrderCommands.EXPECT().SoftDelete(gomock.Any(), s.actor(), int64(2)).
			Return(nil, errs.ErrForbidden).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/api/orders/2", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "")
	})
}

func (s *OrderHandlerTestSuite) TestRemoveLine() {
	s.Run("204 on success", func() {
		s.mockOrderCommands.EXPECT().RemoveLine(gomock.Any(), s.actor(), int64(1), int64(5)).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/api/orders/1/lines/5", nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("400 when order is not a draft", func() {
		s.mockOrderCommands.EXPECT().RemoveLine(gomock.Any(), s.actor(), int64(1), int64(5)).
			Return(errs.ErrOrderNotDraft).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/api/orders/1/lines/5", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "no longer a draft")
	})

	s.Run("404 when line absent", func() {
		s.mockOrderCommands.EXPECT().RemoveLine(gomock.Any(), s.actor(), int64(1), int64(7)).
			Return(errs.ErrOrderLineMissing).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/api/orders/1/lines/7", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "order line not found")
	})
}

func (s *OrderHandlerTestSuite) TestDraft() {
	s.Run("get returns the caller's draft", func() {
		view := builder.NewOrderBuilder().BuildView()
		s.mockQueries.EXPECT().GetDraft(gomock.Any(), int64(10)).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/orders/draft", nil, "bearer-token")

		var data map[string]any
		httptest.AssertEnvelope(s.T(), rec, http.StatusOK, &data)
		s.Equal("DRAFT", data["status"])
	})

	s.Run("get 404 when no draft exists", func() {
		s.mockQueries.EXPECT().GetDraft(gomock.Any(), int64(10)).Return(nil, errs.ErrDraftNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/orders/draft", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "draft not found")
	})

	s.Run("add offering 200 with draft view", func() {
		view := builder.NewOrderBuilder().With(func(b *builder.OrderBuilder) {
			b.Offerings = []*queries.OfferingListItem{builder.NewOfferingBuilder().BuildListItem()}
		}).BuildView()
		s.mockDraftCommands.EXPECT().AddOffering(gomock.Any(), s.actor(), int64(5)).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/orders/draft", map[string]any{"offering_id": 5}, "bearer-token")

		var data map[string]any
		httptest.AssertEnvelope(s.T(), rec, http.StatusOK, &data)
	})

	s.Run("add duplicate offering 400", func() {
		s.mockDraftCommands.EXPECT().AddOffering(gomock.Any(), s.actor(), int64(5)).
			Return(nil, errs.ErrDuplicateLine).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/orders/draft", map[string]any{"offering_id": 5}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "already in draft")
	})

	s.Run("add inactive offering 404", func() {
		s.mockDraftCommands.EXPECT().AddOffering(gomock.Any(), s.actor(), int64(9)).
			Return(nil, errs.ErrOfferingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/orders/draft", map[string]any{"offering_id": 9}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "offering not found")
	})

	s.Run("add missing offering_id 400", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/orders/draft", map[string]any{}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})
}
