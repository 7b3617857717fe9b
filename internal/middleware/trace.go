package middleware

import (
	"smartMenu/business/bandit"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const TraceHeader = "X-Trace-Id"

// Trace attaches a per-request trace id to the request context and echoes
// it back in the response headers. Callers may supply their own id.
func Trace() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			traceID := c.Request().Header.Get(TraceHeader)
			if traceID == "" {
				traceID = uuid.NewString()
			}

			ctx := bandit.WithTraceID(c.Request().Context(), traceID)
			c.SetRequest(c.Request().WithContext(ctx))
			c.Response().Header().Set(TraceHeader, traceID)

			return next(c)
		}
	}
}
