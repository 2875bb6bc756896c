package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/herfando/core-api/internal/service"
)

type AuthHandler struct {
	authService *service.AuthService
	log         *logrus.Logger
}

func NewAuthHandler(authService *service.AuthService, log *logrus.Logger) *AuthHandler {
	return &AuthHandler{authService: authService, log: log}
}

type RegisterRequest struct {
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=8"`
	Name        string `json:"name"`
	PhoneNumber string `json:"phone_number"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, APIResponse{
			Success: false,
			Message: "Invalid request parameters",
			Errors:  gin.H{"validation_error": err.Error()},
			Meta:    meta(c),
		})
		return
	}

	result, err := h.authService.Register(c.Request.Context(), req.Email, req.Password, req.Name, req.PhoneNumber)
	if err != nil {
		if errors.Is(err, service.ErrEmailAlreadyRegistered) {
			c.JSON(http.StatusBadRequest, APIResponse{
				Success: false,
				Message: "Email already registered",
				Meta:    meta(c),
			})
			return
		}
		h.log.WithError(err).Error("registration failed")
		c.JSON(http.StatusInternalServerError, APIResponse{
			Success: false,
			Message: "Server error",
			Meta:    meta(c),
		})
		return
	}

	data := gin.H{
		"id":           result.User.ID,
		"email":        result.User.Email,
		"role":         result.User.Role,
		"name":         result.User.Name,
		"phone_number": result.User.PhoneNumber,
	}
	if result.Token != "" {
		data["token"] = result.Token
	}

	c.JSON(http.StatusCreated, APIResponse{
		Success: true,
		Message: "User registered successfully",
		Data:    data,
		Meta:    meta(c),
	})
}

// Login keeps the flat {token, user} payload its consumers expect instead
// of the standard envelope.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request parameters"})
		return
	}

	result, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmailNotRegistered):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Email not registered"})
		case errors.Is(err, service.ErrInvalidPassword):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid password"})
		default:
			h.log.WithError(err).Error("login failed")
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": result.Token,
		"user":  result.User,
	})
}
