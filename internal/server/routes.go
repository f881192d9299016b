package server

import (
	"net/http"

	"shoppa/internal/handler"

	"github.com/labstack/echo/v4"
)

type Handlers struct {
	Products *handler.ProductHandler
	Sessions *handler.SessionHandler
	Cart     *handler.CartHandler
	Checkout *handler.CheckoutHandler
}

func registerRoutes(e *echo.Echo, h Handlers, auth ...echo.MiddlewareFunc) {
	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	//公開
	h.Products.RegisterRoutes(e)

	//トークン必須
	h.Sessions.RegisterRoutes(e, auth...)
	h.Cart.RegisterRoutes(e, auth...)
	h.Checkout.RegisterRoutes(e, auth...)
}
