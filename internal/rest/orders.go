package rest

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"sareeMarket/domain"
	"sareeMarket/pkg/logger"
	"sareeMarket/pkg/metrics"
)

type OrdersService interface {
	PlaceOrder(ctx context.Context, userID string, shipping domain.Shipping) (domain.Order, error)
	ListForUser(ctx context.Context, userID string) ([]domain.Order, error)
	ListAll(ctx context.Context) ([]domain.Order, error)
}

type OrdersHandler struct {
	ordersService OrdersService
	timeout       time.Duration
}

func NewOrdersHandler(ordersService OrdersService) *OrdersHandler {
	return &OrdersHandler{
		ordersService: ordersService,
		timeout:       10 * time.Second,
	}
}

type PlaceOrderRequest struct {
	Shipping domain.Shipping `json:"shipping"`
}

func (h *OrdersHandler) PlaceOrder(c echo.Context) error {
	start := time.Now()

	var req PlaceOrderRequest

	if err := c.Bind(&req); err != nil {
		logger.Error("Failed to bind place order request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	userID, ok := c.Get("user_id").(string)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "unauthorized"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	order, err := h.ordersService.PlaceOrder(ctx, userID, req.Shipping)
	if err != nil {
		logger.Error("Failed to place order", err)
		return c.JSON(statusFromError(err), ResponseError{Message: err.Error()})
	}

	metrics.OrdersPlacedTotal.Inc()
	metrics.OrderPlaceLatency.Observe(time.Since(start).Seconds())

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "Order placed",
		"order":   order,
	})
}

func (h *OrdersHandler) ListMyOrders(c echo.Context) error {
	userID, ok := c.Get("user_id").(string)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "unauthorized"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	orders, err := h.ordersService.ListForUser(ctx, userID)
	if err != nil {
		logger.Error("Failed to list user orders", err)
		return c.JSON(statusFromError(err), ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, orders)
}

func (h *OrdersHandler) ListAllOrders(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	orders, err := h.ordersService.ListAll(ctx)
	if err != nil {
		logger.Error("Failed to list all orders", err)
		return c.JSON(statusFromError(err), ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, orders)
}
