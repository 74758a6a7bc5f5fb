//go:build unit

package api_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	domorder "crm-service/internal/domain/order"
	"crm-service/internal/handler/api"
	"crm-service/internal/pkg/errs"
	"crm-service/internal/usecase/commands"
	"crm-service/internal/usecase/queries"
	"crm-service/tests/common/builder"
	"crm-service/tests/common/httptest"
	commandsmock "crm-service/tests/mock/commands"
	queriesmock "crm-service/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type OrderHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockOrderCommands
	mockQueries  *queriesmock.MockOrderQueries
	handler      *api.OrderHandler
}

func (s *OrderHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockOrderCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockOrderQueries(s.mockCtrl)
	s.handler = api.NewOrderHandler(s.mockCommands, s.mockQueries)

	s.router.POST("/orders", s.handler.Create)
	s.router.GET("/orders", s.handler.List)
	s.router.GET("/orders/report", s.handler.Report)
}

func (s *OrderHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestOrderHandlerSuite(t *testing.T) {
	suite.Run(t, new(OrderHandlerTestSuite))
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *OrderHandlerTestSuite) TestCreate() {
	url := "/orders"
	reqBody := builder.NewOrderBuilder().BuildCreateRequestDTO()

	s.Run("success: returns 201 Created with computed total", func() {
		orderDate := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(&commands.CreateOrderResult{
				OrderID:     uuid.New(),
				TotalAmount: decimal.RequireFromString("1499.98"),
				OrderDate:   orderDate,
				Status:      domorder.StatusPending,
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)

		var body struct {
			TotalAmount string `json:"total_amount"`
			OrderDate   int64  `json:"order_date"`
			Status      string `json:"status"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal("1499.98", body.TotalAmount)
		s.Equal(orderDate.Unix(), body.OrderDate)
		s.Equal("PENDING", body.Status)
	})

	s.Run("error: 400 Bad Request when customer_id is missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{
			"product_ids": []string{uuid.New().String()},
		})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "customer not found",
				commandsError:  errs.ErrCustomerNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "customer not found",
			},
			{
				name:           "product not found",
				commandsError:  errs.ErrProductNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "product not found",
			},
			{
				name:           "empty product list",
				commandsError:  domorder.ErrEmptyProductList,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "at least one product must be selected",
			},
			{
				name:           "database failure",
				commandsError:  errs.ErrDatabaseOperationFailed,
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Create order failed",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestList
// ================================================================================

func (s *OrderHandlerTestSuite) TestList() {
	url := "/orders"

	s.Run("success: passes filters through to the query side", func() {
		view := builder.NewOrderBuilder().BuildView()

		var captured queries.OrderFilters
		s.mockQueries.EXPECT().List(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, filters queries.OrderFilters) ([]*queries.OrderView, error) {
				captured = filters
				return []*queries.OrderView{&view}, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			url+"?status=PENDING&from=2026-02-23T00:00:00Z&to=2026-03-02T00:00:00Z", nil)

		var body []struct {
			ID            string `json:"id"`
			CustomerEmail string `json:"customer_email"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body, 1)
		s.Equal(view.ID.String(), body[0].ID)

		s.Require().NotNil(captured.Status)
		s.Equal("PENDING", *captured.Status)
		s.Require().NotNil(captured.From)
		s.Equal(time.Date(2026, 2, 23, 0, 0, 0, 0, time.UTC), captured.From.UTC())
		s.Require().NotNil(captured.To)
	})

	s.Run("success: no filters means nil fields", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), queries.OrderFilters{}).
			Return(nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("error: 400 Bad Request on malformed date", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?from=yesterday", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid from date")
	})
}

// ================================================================================
// TestReport
// ================================================================================

func (s *OrderHandlerTestSuite) TestReport() {
	url := "/orders/report"

	s.Run("success: returns count and revenue", func() {
		s.mockQueries.EXPECT().RevenueSummary(gomock.Any()).
			Return(&queries.RevenueSummary{
				TotalOrders:  3,
				TotalRevenue: decimal.RequireFromString("150"),
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)

		var body struct {
			TotalOrders  int64  `json:"total_orders"`
			TotalRevenue string `json:"total_revenue"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(int64(3), body.TotalOrders)
		s.Equal("150", body.TotalRevenue)
	})

	s.Run("error: 500 on query failure", func() {
		s.mockQueries.EXPECT().RevenueSummary(gomock.Any()).
			Return(nil, errs.New("connection refused")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Revenue report failed")
	})
}
