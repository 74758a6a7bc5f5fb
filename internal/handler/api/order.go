package api

import (
	"net/http"
	"time"

	reqdto "crm-service/internal/handler/dto/request"
	resdto "crm-service/internal/handler/dto/response"
	"crm-service/internal/handler/httperr"
	"crm-service/internal/usecase/commands"
	"crm-service/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	cmds commands.OrderCommands
	q    queries.OrderQueries
}

func NewOrderHandler(cmds commands.OrderCommands, q queries.OrderQueries) *OrderHandler {
	return &OrderHandler{cmds: cmds, q: q}
}

// @Summary Create order
// @Description Create an order; the total is the sum of the referenced products' prices at creation time
// @Tags orders
// @Accept json
// @Produce json
// @Param request body reqdto.CreateOrderRequest true "Create order request"
// @Success 201 {object} resdto.OrderResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /orders [post]
func (h *OrderHandler) Create(c *gin.Context) {
	var req reqdto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.cmds.Create(c.Request.Context(), req.ToCommand())
	if err != nil {
		abortDomainError(c, err, "Create order failed")
		return
	}
	c.JSON(http.StatusCreated, resdto.FromCreateOrderResult(result))
}

// @Summary List orders
// @Description List orders filtered by status and inclusive order-date range
// @Tags orders
// @Produce json
// @Param status query string false "Order status"
// @Param from query string false "Range start (RFC3339)"
// @Param to query string false "Range end (RFC3339)"
// @Success 200 {array} resdto.OrderListItemResponse
// @Failure 400 {object} map[string]string
// @Router /orders [get]
func (h *OrderHandler) List(c *gin.Context) {
	var filters queries.OrderFilters

	if status := c.Query("status"); status != "" {
		filters.Status = &status
	}
	if raw := c.Query("from"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid from date", nil)
			return
		}
		filters.From = &t
	}
	if raw := c.Query("to"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid to date", nil)
			return
		}
		filters.To = &t
	}

	views, err := h.q.List(c.Request.Context(), filters)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "List orders failed", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromOrderViews(views))
}

// @Summary Revenue report
// @Description Order count and total revenue across the order book
// @Tags orders
// @Produce json
// @Success 200 {object} resdto.RevenueSummaryResponse
// @Router /orders/report [get]
func (h *OrderHandler) Report(c *gin.Context) {
	summary, err := h.q.RevenueSummary(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Revenue report failed", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRevenueSummary(summary))
}
