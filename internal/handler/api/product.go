package api

import (
	"net/http"
	"strconv"

	reqdto "crm-service/internal/handler/dto/request"
	resdto "crm-service/internal/handler/dto/response"
	"crm-service/internal/handler/httperr"
	"crm-service/internal/pkg/errs"
	"crm-service/internal/usecase/commands"
	"crm-service/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

const defaultLowStockThreshold = 10

type ProductHandler struct {
	cmds commands.ProductCommands
	q    queries.ProductQueries
}

func NewProductHandler(cmds commands.ProductCommands, q queries.ProductQueries) *ProductHandler {
	return &ProductHandler{cmds: cmds, q: q}
}

// @Summary Create product
// @Description Create a product with a positive price and non-negative stock
// @Tags products
// @Accept json
// @Produce json
// @Param request body reqdto.CreateProductRequest true "Create product request"
// @Success 201 {object} resdto.ProductResponse
// @Failure 400 {object} map[string]string
// @Router /products [post]
func (h *ProductHandler) Create(c *gin.Context) {
	var req reqdto.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.cmds.Create(c.Request.Context(), req.ToCommand())
	if err != nil {
		abortDomainError(c, err, "Create product failed")
		return
	}
	c.JSON(http.StatusCreated, resdto.FromCreateProductResult(result))
}

// @Summary Low-stock products
// @Description List products whose stock is under the threshold
// @Tags products
// @Produce json
// @Param threshold query int false "Stock threshold" default(10)
// @Success 200 {array} resdto.ProductResponse
// @Router /products/low-stock [get]
func (h *ProductHandler) LowStock(c *gin.Context) {
	threshold := int64(defaultLowStockThreshold)
	if raw := c.Query("threshold"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 32)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid threshold", nil)
			return
		}
		if parsed < 0 {
			httperr.AbortWithError(c, http.StatusBadRequest, errs.New("threshold cannot be negative"), "Invalid threshold", nil)
			return
		}
		threshold = parsed
	}

	views, err := h.q.LowStock(c.Request.Context(), int32(threshold))
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "List low-stock products failed", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromProductViews(views))
}
