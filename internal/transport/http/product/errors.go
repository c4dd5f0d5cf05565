package product

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/murkotick/catalog-admin/internal/app/product/domain"
	shared "github.com/murkotick/catalog-admin/internal/app/product/usecases/shared"
	"github.com/murkotick/catalog-admin/internal/transport/http/response"
)

const (
	msgNotFound = "Product not found"
	msgConflict = "The product was changed by someone else. Reload it and try again."
	msgInvalid  = "The submitted product is not valid"
	msgInternal = "Internal server error"
)

// writeError maps application errors onto HTTP statuses. Rejected forms are
// sent back as data so the caller can show them again.
func writeError(c *gin.Context, err error) {
	var ferr *shared.FormError
	switch {
	case errors.As(err, &ferr):
		if errors.Is(err, domain.ErrPersistence) {
			response.Fail(c, http.StatusInternalServerError, domain.MsgUnableToSave, ferr.Form)
			return
		}
		response.Fail(c, http.StatusUnprocessableEntity, msgInvalid, ferr.Form)
	case errors.Is(err, domain.ErrProductNotFound):
		response.Fail(c, http.StatusNotFound, msgNotFound, nil)
	case errors.Is(err, domain.ErrConcurrencyConflict):
		response.Fail(c, http.StatusConflict, msgConflict, nil)
	case errors.Is(err, domain.ErrPersistence):
		response.Fail(c, http.StatusInternalServerError, domain.MsgUnableToSave, nil)
	case errors.Is(err, context.DeadlineExceeded):
		response.Fail(c, http.StatusGatewayTimeout, "Request timed out", nil)
	default:
		_ = c.Error(err)
		response.Fail(c, http.StatusInternalServerError, msgInternal, nil)
	}
}
