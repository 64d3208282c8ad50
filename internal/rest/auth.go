package rest

import (
	"context"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"sareeMarket/domain"
	"sareeMarket/pkg/logger"
)

type AuthService interface {
	Register(ctx context.Context, name, mobile string) (string, domain.User, error)
	Login(ctx context.Context, mobile string) (string, domain.User, error)
}

type AuthHandler struct {
	authService AuthService
	validator   *validator.Validate
	timeout     time.Duration
}

func NewAuthHandler(authService AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		validator:   validator.New(),
		timeout:     10 * time.Second,
	}
}

type RegisterRequest struct {
	Name   string `json:"name" validate:"required"`
	Mobile string `json:"mobile" validate:"required"`
}

type LoginRequest struct {
	Mobile string `json:"mobile" validate:"required"`
}

func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest

	if err := c.Bind(&req); err != nil {
		logger.Error("Failed to bind register request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validator.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "name and mobile required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	token, user, err := h.authService.Register(ctx, req.Name, req.Mobile)
	if err != nil {
		logger.Error("Failed to register user", err)
		return c.JSON(statusFromError(err), ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "Registered",
		"token":   token,
		"user":    user.Public(),
	})
}

func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest

	if err := c.Bind(&req); err != nil {
		logger.Error("Failed to bind login request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validator.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "mobile required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	token, user, err := h.authService.Login(ctx, req.Mobile)
	if err != nil {
		logger.Error("Failed to login user", err)
		return c.JSON(statusFromError(err), ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "Logged in",
		"token":   token,
		"user":    user.Public(),
	})
}
