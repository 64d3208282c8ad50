package router

import (
	"github.com/labstack/echo/v4"

	"sareeMarket/internal/rest"
)

func SetupAuthRoutes(api *echo.Group, handler *rest.AuthHandler) {
	auth := api.Group("/auth")

	auth.POST("/register", handler.Register)
	auth.POST("/login", handler.Login)
}

func SetupProductRoutes(api *echo.Group, handler *rest.ProductHandler, adminOnly echo.MiddlewareFunc) {
	products := api.Group("/products")

	products.GET("", handler.ListProducts)
	products.GET("/:id", handler.GetProduct)
	products.POST("", handler.CreateProduct, adminOnly)
	products.PUT("/:id", handler.UpdateProduct, adminOnly)
	products.DELETE("/:id", handler.DeleteProduct, adminOnly)
}

func SetupCartRoutes(api *echo.Group, handler *rest.CartHandler, authRequired echo.MiddlewareFunc) {
	cart := api.Group("/cart", authRequired)

	cart.POST("", handler.AddToCart)
	cart.GET("", handler.GetCart)
	cart.DELETE("/:productId", handler.RemoveFromCart)
}

func SetupOrderRoutes(api *echo.Group, handler *rest.OrdersHandler, authRequired echo.MiddlewareFunc, adminOnly echo.MiddlewareFunc) {
	api.POST("/order", handler.PlaceOrder, authRequired)
	api.GET("/orders", handler.ListMyOrders, authRequired)
	api.GET("/admin/orders", handler.ListAllOrders, adminOnly)
}
