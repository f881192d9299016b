package handler

import (
	"net/http"

	"shoppa/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /checkoutのHTTP
type CheckoutHandler struct {
	uc *usecase.CheckoutUsecase
}

// DI
func NewCheckoutHandler(uc *usecase.CheckoutUsecase) *CheckoutHandler {
	return &CheckoutHandler{uc: uc}
}

func (h *CheckoutHandler) RegisterRoutes(e *echo.Echo, auth ...echo.MiddlewareFunc) {
	g := e.Group("/checkout", auth...)

	g.GET("", h.preview)
	g.POST("", h.confirm)
}

func (h *CheckoutHandler) preview(c echo.Context) error {
	sessionID, ok := getSessionIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	out, err := h.uc.Preview(c.Request().Context(), sessionID)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

// 確定してカートを空にする
func (h *CheckoutHandler) confirm(c echo.Context) error {
	sessionID, ok := getSessionIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	out, err := h.uc.Confirm(c.Request().Context(), sessionID)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}
