package http

import (
	"errors"
	"net/http"

	"github.com/ManzzyGacor/manzzy-id-backend/internal/store/domain"
	"github.com/gin-gonic/gin"
)

// handleDomainError maps the typed error taxonomy onto HTTP statuses.
// Anything unrecognized is an internal fault and never leaks its message.
func handleDomainError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, &domain.InvalidArgumentsError{}),
		errors.Is(err, &domain.InsufficientBalanceError{}),
		errors.Is(err, &domain.InsufficientStockError{}),
		errors.Is(err, &domain.InsufficientStockItemsError{}):
		c.JSON(http.StatusBadRequest, gin.H{"errors": err.Error()})
	case errors.Is(err, &domain.AccountNotFoundError{}),
		errors.Is(err, &domain.ProductNotFoundError{}),
		errors.Is(err, &domain.OrderNotFoundError{}),
		errors.Is(err, &domain.InvoiceNotFoundError{}),
		errors.Is(err, &domain.ServerNotFoundError{}):
		c.JSON(http.StatusNotFound, gin.H{"errors": err.Error()})
	case errors.Is(err, &domain.DuplicateResourceError{}),
		errors.Is(err, &domain.ResourceInUseError{}):
		c.JSON(http.StatusConflict, gin.H{"errors": err.Error()})
	case errors.Is(err, &domain.ProvisionNotCompletedError{}),
		errors.Is(err, &domain.ExternalServiceError{}):
		c.JSON(http.StatusBadGateway, gin.H{"errors": err.Error()})
	case errors.Is(err, &domain.TransientStoreError{}):
		c.JSON(http.StatusServiceUnavailable, gin.H{"errors": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"errors": "internal server error"})
	}
}
