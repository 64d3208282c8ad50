package rest

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"sareeMarket/business/catalog"
	"sareeMarket/domain"
	"sareeMarket/pkg/logger"
)

type CatalogService interface {
	List(ctx context.Context, filter catalog.Filter) ([]domain.Product, error)
	Get(ctx context.Context, id string) (domain.Product, error)
	Create(ctx context.Context, input catalog.CreateInput) (domain.Product, error)
	Update(ctx context.Context, id string, patch catalog.Patch) (domain.Product, error)
	Delete(ctx context.Context, id string) error
}

type ProductHandler struct {
	catalogService CatalogService
	timeout        time.Duration
}

func NewProductHandler(catalogService CatalogService) *ProductHandler {
	return &ProductHandler{
		catalogService: catalogService,
		timeout:        10 * time.Second,
	}
}

type CreateProductRequest struct {
	Name     string   `json:"name"`
	Price    Amount   `json:"price"`
	Category string   `json:"category"`
	Color    string   `json:"color"`
	Desc     string   `json:"desc"`
	Images   []string `json:"images"`
	Stock    Amount   `json:"stock"`
}

type UpdateProductRequest struct {
	Name     *string   `json:"name"`
	Price    *Amount   `json:"price"`
	Category *string   `json:"category"`
	Color    *string   `json:"color"`
	Desc     *string   `json:"desc"`
	Images   *[]string `json:"images"`
	Stock    *Amount   `json:"stock"`
}

func (h *ProductHandler) ListProducts(c echo.Context) error {
	filter := catalog.Filter{
		Q:        c.QueryParam("q"),
		Category: c.QueryParam("category"),
		SortBy:   c.QueryParam("sortBy"),
	}

	if raw := c.QueryParam("minPrice"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			filter.MinPrice = &v
		}
	}
	if raw := c.QueryParam("maxPrice"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			filter.MaxPrice = &v
		}
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	products, err := h.catalogService.List(ctx, filter)
	if err != nil {
		logger.Error("Failed to list products", err)
		return c.JSON(statusFromError(err), ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, products)
}

func (h *ProductHandler) GetProduct(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	product, err := h.catalogService.Get(ctx, c.Param("id"))
	if err != nil {
		return c.JSON(statusFromError(err), ResponseError{Message: "Not found"})
	}

	return c.JSON(http.StatusOK, product)
}

func (h *ProductHandler) CreateProduct(c echo.Context) error {
	var req CreateProductRequest

	if err := c.Bind(&req); err != nil {
		logger.Error("Failed to bind create product request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	product, err := h.catalogService.Create(ctx, catalog.CreateInput{
		Name:     req.Name,
		Price:    req.Price.Value,
		HasPrice: req.Price.Set,
		Category: req.Category,
		Color:    req.Color,
		Desc:     req.Desc,
		Images:   req.Images,
		Stock:    int(req.Stock.Value),
	})
	if err != nil {
		logger.Error("Failed to create product", err)
		return c.JSON(statusFromError(err), ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "Product added",
		"product": product,
	})
}

func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	var req UpdateProductRequest

	if err := c.Bind(&req); err != nil {
		logger.Error("Failed to bind update product request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	patch := catalog.Patch{
		Name:     req.Name,
		Category: req.Category,
		Color:    req.Color,
		Desc:     req.Desc,
		Images:   req.Images,
	}
	if req.Price != nil && req.Price.Set {
		patch.Price = &req.Price.Value
	}
	if req.Stock != nil && req.Stock.Set {
		stock := int(req.Stock.Value)
		patch.Stock = &stock
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	product, err := h.catalogService.Update(ctx, c.Param("id"), patch)
	if err != nil {
		logger.Error("Failed to update product", err)
		return c.JSON(statusFromError(err), ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "Updated",
		"product": product,
	})
}

func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	if err := h.catalogService.Delete(ctx, c.Param("id")); err != nil {
		logger.Error("Failed to delete product", err)
		return c.JSON(statusFromError(err), ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "Deleted",
	})
}
