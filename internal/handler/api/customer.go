package api

import (
	"net/http"

	reqdto "crm-service/internal/handler/dto/request"
	resdto "crm-service/internal/handler/dto/response"
	"crm-service/internal/handler/httperr"
	"crm-service/internal/usecase/commands"
	"crm-service/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CustomerHandler struct {
	cmds commands.CustomerCommands
	q    queries.CustomerQueries
}

func NewCustomerHandler(cmds commands.CustomerCommands, q queries.CustomerQueries) *CustomerHandler {
	return &CustomerHandler{cmds: cmds, q: q}
}

// @Summary Create customer
// @Description Create a new customer with a unique email
// @Tags customers
// @Accept json
// @Produce json
// @Param request body reqdto.CreateCustomerRequest true "Create customer request"
// @Success 201 {object} resdto.CreateCustomerResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /customers [post]
func (h *CustomerHandler) Create(c *gin.Context) {
	var req reqdto.CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.cmds.Create(c.Request.Context(), req.ToCommand())
	if err != nil {
		abortDomainError(c, err, "Create customer failed")
		return
	}
	c.JSON(http.StatusCreated, resdto.FromCreateCustomerResult(result))
}

// @Summary Bulk create customers
// @Description Create customers best-effort: failures are reported per item, successes commit independently
// @Tags customers
// @Accept json
// @Produce json
// @Param request body reqdto.BulkCreateCustomersRequest true "Bulk create request"
// @Success 200 {object} resdto.BulkCreateCustomersResponse
// @Failure 400 {object} map[string]string
// @Router /customers/bulk [post]
func (h *CustomerHandler) BulkCreate(c *gin.Context) {
	var req reqdto.BulkCreateCustomersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result := h.cmds.BulkCreate(c.Request.Context(), req.ToCommands())
	c.JSON(http.StatusOK, resdto.FromBulkCreateResult(result))
}

// @Summary Customer count
// @Tags customers
// @Produce json
// @Success 200 {object} resdto.CustomerCountResponse
// @Router /customers/count [get]
func (h *CustomerHandler) Count(c *gin.Context) {
	count, err := h.q.Count(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Count customers failed", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.CustomerCountResponse{TotalCustomers: count})
}
