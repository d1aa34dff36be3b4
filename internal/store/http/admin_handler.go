package http

import (
	"net/http"
	"strconv"

	"github.com/ManzzyGacor/manzzy-id-backend/internal/store/application"
	"github.com/gin-gonic/gin"
)

const (
	ProductIdKey = "productId"
)

type addSaldoRequestBody struct {
	Username string `json:"username" binding:"required"`
	Amount   int64  `json:"amount" binding:"required,gt=0"`
}

type createProductRequestBody struct {
	Name        string `json:"name" binding:"required"`
	Price       int64  `json:"price" binding:"required,gt=0"`
	Description string `json:"description"`
	UniqueMode  bool   `json:"uniqueMode"`
}

type addStockItemsRequestBody struct {
	ProductId int      `json:"productId" binding:"required"`
	Items     []string `json:"items" binding:"required,min=1"`
}

type postInformationRequestBody struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content" binding:"required"`
}

type AdminHandler struct {
	adminCase *application.AdminCase
}

func NewAdminHandler(adminCase *application.AdminCase) *AdminHandler {
	return &AdminHandler{
		adminCase: adminCase,
	}
}

func (h *AdminHandler) ListUsers(c *gin.Context) {
	accounts, err := h.adminCase.ListAccounts(c.Request.Context())
	if err != nil {
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"users": accounts})
}

func (h *AdminHandler) AddSaldo(c *gin.Context) {
	var body addSaldoRequestBody

	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": "invalid request body"})
		return
	}

	newSaldo, err := h.adminCase.AddSaldo(c.Request.Context(), body.Username, body.Amount)
	if err != nil {
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "saldo added",
		"saldo":   newSaldo,
	})
}

func (h *AdminHandler) CreateProduct(c *gin.Context) {
	var body createProductRequestBody

	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": "invalid request body"})
		return
	}

	product, err := h.adminCase.CreateProduct(c.Request.Context(), body.Name, body.Price, body.Description, body.UniqueMode)
	if err != nil {
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "product created with zero stock",
		"product": product,
	})
}

func (h *AdminHandler) DeleteProduct(c *gin.Context) {
	productId, err := strconv.Atoi(c.Param(ProductIdKey))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": "invalid product id"})
		return
	}

	err = h.adminCase.DeleteProduct(c.Request.Context(), productId)
	if err != nil {
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "product deleted"})
}

func (h *AdminHandler) AddStockItems(c *gin.Context) {
	var body addStockItemsRequestBody

	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": "invalid request body"})
		return
	}

	newStock, err := h.adminCase.AddStockItems(c.Request.Context(), body.ProductId, body.Items)
	if err != nil {
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "stock items added",
		"stock":   newStock,
	})
}

func (h *AdminHandler) PostInformation(c *gin.Context) {
	var body postInformationRequestBody

	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": "invalid request body"})
		return
	}

	info, err := h.adminCase.PostInformation(c.Request.Context(), requestUserId(c), body.Title, body.Content)
	if err != nil {
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "information posted",
		"info":    info,
	})
}
