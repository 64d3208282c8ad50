package rest

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"sareeMarket/domain"
	"sareeMarket/pkg/logger"
)

type CartService interface {
	AddItem(ctx context.Context, userID, productID string, qty int) (domain.Cart, error)
	GetCart(ctx context.Context, userID string) (domain.CartView, error)
	RemoveItem(ctx context.Context, userID, productID string) (domain.Cart, error)
}

type CartHandler struct {
	cartService CartService
	timeout     time.Duration
}

func NewCartHandler(cartService CartService) *CartHandler {
	return &CartHandler{
		cartService: cartService,
		timeout:     10 * time.Second,
	}
}

type AddToCartRequest struct {
	ProductID string `json:"productId"`
	Qty       Amount `json:"qty"`
}

func (h *CartHandler) AddToCart(c echo.Context) error {
	var req AddToCartRequest

	if err := c.Bind(&req); err != nil {
		logger.Error("Failed to bind add to cart request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	userID, ok := c.Get("user_id").(string)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "unauthorized"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	cart, err := h.cartService.AddItem(ctx, userID, req.ProductID, int(req.Qty.Value))
	if err != nil {
		logger.Error("Failed to add to cart", err)
		return c.JSON(statusFromError(err), ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "Added to cart",
		"cart":    cart,
	})
}

func (h *CartHandler) GetCart(c echo.Context) error {
	userID, ok := c.Get("user_id").(string)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "unauthorized"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	view, err := h.cartService.GetCart(ctx, userID)
	if err != nil {
		logger.Error("Failed to get cart", err)
		return c.JSON(statusFromError(err), ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, view)
}

func (h *CartHandler) RemoveFromCart(c echo.Context) error {
	userID, ok := c.Get("user_id").(string)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "unauthorized"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	cart, err := h.cartService.RemoveItem(ctx, userID, c.Param("productId"))
	if err != nil {
		logger.Error("Failed to remove from cart", err)
		return c.JSON(statusFromError(err), ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "Removed",
		"cart":    cart,
	})
}
