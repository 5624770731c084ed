package handlers

import (
	"net/http"

	"hotelier/models"
	"hotelier/services/user"
	"hotelier/utils"

	"github.com/gin-gonic/gin"
)

// AuthHandler serves account registration and login.
type AuthHandler struct {
	Service user.UserService
}

func NewAuthHandler(service user.UserService) *AuthHandler {
	return &AuthHandler{Service: service}
}

// RegisterHandler handles POST /api/users/register.
func (h *AuthHandler) RegisterHandler(c *gin.Context) {
	var input models.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, utils.ValidationError("Invalid registration data: %v", err))
		return
	}
	result, err := h.Service.Register(c.Request.Context(), input)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, result)
}

// LoginHandler handles POST /api/users/login.
func (h *AuthHandler) LoginHandler(c *gin.Context) {
	var input models.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, utils.ValidationError("Email and password are required."))
		return
	}
	result, err := h.Service.Authenticate(c.Request.Context(), input)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
