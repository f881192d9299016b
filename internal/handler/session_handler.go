package handler

import (
	"net/http"

	"shoppa/internal/middleware"
	"shoppa/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /sessions のHTTP
type SessionHandler struct {
	uc *usecase.SessionUsecase
}

// DI
func NewSessionHandler(uc *usecase.SessionUsecase) *SessionHandler {
	return &SessionHandler{uc: uc}
}

// POST /sessions は認証なし、DELETE はトークン必須
func (h *SessionHandler) RegisterRoutes(e *echo.Echo, auth ...echo.MiddlewareFunc) {
	e.POST("/sessions", h.start)
	e.DELETE("/sessions/current", h.end, auth...)
}

func (h *SessionHandler) start(c echo.Context) error {
	out, err := h.uc.StartSession(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, out)
}

func (h *SessionHandler) end(c echo.Context) error {
	sessionID, ok := getSessionIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	if err := h.uc.EndSession(c.Request().Context(), sessionID); err != nil {
		return writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

func getSessionIDFromContext(c echo.Context) (string, bool) {
	v := c.Get(middleware.CtxSessionIDKey)
	if v == nil {
		return "", false
	}

	id, ok := v.(string)
	if !ok || id == "" {
		return "", false
	}

	return id, true
}
