package http

import (
	"net/http"
	"strconv"

	"github.com/ManzzyGacor/manzzy-id-backend/internal/store/application"
	"github.com/gin-gonic/gin"
)

const (
	ServerIdKey = "serverId"
)

type buyServerRequestBody struct {
	PackageId  string `json:"packageId" binding:"required"`
	ServerName string `json:"serverName" binding:"required"`
}

type powerRequestBody struct {
	Signal string `json:"signal" binding:"required"`
}

type ServerHandler struct {
	serverPurchaseCase *application.ServerPurchaseCase
	serversCase        *application.ServersCase
}

func NewServerHandler(serverPurchaseCase *application.ServerPurchaseCase, serversCase *application.ServersCase) *ServerHandler {
	return &ServerHandler{
		serverPurchaseCase: serverPurchaseCase,
		serversCase:        serversCase,
	}
}

func (h *ServerHandler) BuyServer(c *gin.Context) {
	var body buyServerRequestBody

	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": "invalid request body"})
		return
	}

	server, err := h.serverPurchaseCase.PurchaseServer(c.Request.Context(), requestUserId(c), body.PackageId, body.ServerName)
	if err != nil {
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "server is being installed",
		"server": gin.H{
			"id":          server.Id,
			"productName": server.ProductName,
			"status":      server.Status,
			"renewalDate": server.RenewalDate,
		},
	})
}

func (h *ServerHandler) ListServers(c *gin.Context) {
	servers, err := h.serversCase.ListServers(c.Request.Context(), requestUserId(c))
	if err != nil {
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"servers": servers})
}

func (h *ServerHandler) SendPowerSignal(c *gin.Context) {
	serverId, err := strconv.Atoi(c.Param(ServerIdKey))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": "invalid server id"})
		return
	}

	var body powerRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": "invalid request body"})
		return
	}

	err = h.serversCase.SendPowerSignal(c.Request.Context(), requestUserId(c), serverId, body.Signal)
	if err != nil {
		handleDomainError(c, err)
		return
	}

	c.Status(http.StatusOK)
}
