package middleware

import (
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// 1リクエスト1行のアクセスログ
func RequestLogger(logger *zap.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				// echoのエラーハンドラに書かせてからstatusを読む
				c.Error(err)
			}

			req := c.Request()
			res := c.Response()

			fields := []zap.Field{
				zap.String("method", req.Method),
				zap.String("path", c.Path()),
				zap.String("uri", req.RequestURI),
				zap.Int("status", res.Status),
				zap.Duration("latency", time.Since(start)),
				zap.String("request_id", res.Header().Get(echo.HeaderXRequestID)),
			}
			if sid, ok := c.Get(CtxSessionIDKey).(string); ok && sid != "" {
				fields = append(fields, zap.String("session_id", sid))
			}

			switch {
			case res.Status >= 500:
				logger.Error("request", append(fields, zap.Error(err))...)
			case res.Status >= 400:
				logger.Warn("request", fields...)
			default:
				logger.Info("request", fields...)
			}

			return nil
		}
	}
}
