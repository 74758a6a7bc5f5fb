package api

import (
	"errors"
	"net/http"

	"crm-service/internal/handler/httperr"
	"crm-service/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// abortDomainError maps usecase errors to HTTP statuses. Validation and
// reference errors carry their own message; everything else is opaque.
func abortDomainError(c *gin.Context, err error, fallbackMsg string) {
	switch {
	case errors.Is(err, errs.ErrCustomerNotFound), errors.Is(err, errs.ErrProductNotFound), errors.Is(err, errs.ErrOrderNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, err.Error(), nil)
	case errors.Is(err, errs.ErrDuplicateEmail):
		httperr.AbortWithError(c, http.StatusConflict, err, err.Error(), nil)
	case errors.Is(err, errs.ErrDatabaseOperationFailed):
		httperr.AbortWithError(c, http.StatusInternalServerError, err, fallbackMsg, nil)
	default:
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
	}
}
