package middleware

import (
	"net/http"

	"shoppa/internal/repository"

	"github.com/labstack/echo/v4"
)

// トークンのセッションがまだ存在するか確認（終了済みなら401）。
func SessionGuard(sessions repository.SessionRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			//SessionJWTが入れたsession_idを取得する
			sessionID, ok := c.Get(CtxSessionIDKey).(string)
			if !ok || sessionID == "" {
				return c.JSON(http.StatusUnauthorized, errorJSON("unauthorized"))
			}

			if _, err := sessions.FindByID(c.Request().Context(), sessionID); err != nil {
				return c.JSON(http.StatusUnauthorized, errorJSON("unauthorized"))
			}

			return next(c)
		}
	}
}
