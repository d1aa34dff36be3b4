package http

import (
	"net/http"

	"github.com/ManzzyGacor/manzzy-id-backend/internal/store/application"
	"github.com/gin-gonic/gin"
)

const (
	InvoiceNumberKey = "invoiceNumber"
)

type purchaseRequestBody struct {
	ProductId int `json:"productId" binding:"required"`
	Quantity  int `json:"quantity" binding:"required,gte=1"`
}

type DashboardHandler struct {
	dashboardCase *application.DashboardCase
	purchaseCase  *application.PurchaseCase
}

func NewDashboardHandler(dashboardCase *application.DashboardCase, purchaseCase *application.PurchaseCase) *DashboardHandler {
	return &DashboardHandler{
		dashboardCase: dashboardCase,
		purchaseCase:  purchaseCase,
	}
}

func (h *DashboardHandler) GetDashboardData(c *gin.Context) {
	data, err := h.dashboardCase.GetDashboardData(c.Request.Context(), requestUserId(c))
	if err != nil {
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"username":     data.Username,
		"saldo":        data.Saldo,
		"transactions": data.Transactions,
		"products":     data.Products,
		"information":  data.Information,
	})
}

func (h *DashboardHandler) Purchase(c *gin.Context) {
	var body purchaseRequestBody

	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": "invalid request body"})
		return
	}

	invoice, err := h.purchaseCase.PurchaseProduct(c.Request.Context(), requestUserId(c), body.ProductId, body.Quantity)
	if err != nil {
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "purchase successful, items delivered via invoice",
		"invoice": gin.H{
			"invoiceNumber": invoice.InvoiceNumber,
			"productName":   invoice.ProductName,
			"totalAmount":   invoice.TotalAmount,
			"quantity":      invoice.Quantity,
		},
	})
}

func (h *DashboardHandler) GetInvoice(c *gin.Context) {
	invoice, err := h.dashboardCase.GetInvoice(c.Request.Context(), requestUserId(c), c.Param(InvoiceNumberKey))
	if err != nil {
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"invoiceNumber":    invoice.InvoiceNumber,
		"productName":      invoice.ProductName,
		"quantity":         invoice.Quantity,
		"totalAmount":      invoice.TotalAmount,
		"status":           invoice.Status,
		"purchaseDate":     invoice.PurchaseDate,
		"distributedItems": invoice.DistributedItems,
	})
}
