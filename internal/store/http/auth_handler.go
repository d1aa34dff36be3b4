package http

import (
	"errors"
	"net/http"

	authdomain "github.com/ManzzyGacor/manzzy-id-backend/internal/auth/domain"
	"github.com/ManzzyGacor/manzzy-id-backend/internal/pkg/jwt"
	"github.com/gin-gonic/gin"
)

type authRequestBody struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type AuthHandler struct {
	authenticator jwt.Authenticator
}

func NewAuthHandler(authenticator jwt.Authenticator) *AuthHandler {
	return &AuthHandler{
		authenticator: authenticator,
	}
}

func (h *AuthHandler) Authenticate(c *gin.Context) {
	var body authRequestBody

	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": "invalid request body"})
		return
	}

	token, err := h.authenticator.Authenticate(c.Request.Context(), body.Username, body.Password)
	if err != nil {
		if errors.Is(err, &authdomain.CredentialsMismatchError{}) {
			c.JSON(http.StatusUnauthorized, gin.H{"errors": err.Error()})
			return
		}

		c.JSON(http.StatusInternalServerError, gin.H{"errors": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}
