package middleware

import (
	"fmt"
	"log/slog"
	"runtime/debug"

	"tag-ledger/internal/errors"
	"tag-ledger/internal/handlers"

	"github.com/labstack/echo/v4"
)

// PanicRecovery turns a panicking handler into a SYSTEM_001 response and logs the stack
func PanicRecovery() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				r := recover()
				if r == nil {
					return
				}

				userID, _ := c.Get("user_id").(string)
				slog.ErrorContext(c.Request().Context(), "Panic recovered",
					"trace_id", GetTraceID(c),
					"user_id", userID,
					"panic", fmt.Sprintf("%v", r),
					"stack_trace", string(debug.Stack()),
					"path", c.Request().URL.Path,
					"method", c.Request().Method,
				)

				if c.Response().Committed {
					return
				}
				err = handlers.SendError(c, errors.SystemInternalError)
			}()

			return next(c)
		}
	}
}
