package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
)

// RequestTimeout sets a deadline on the request context. Handlers pass the
// context down to pgx, so a slow query is cancelled when the deadline fires
// and the request answers 504. Paths ending in one of skipSuffixes
// (spreadsheet exports) run without a deadline.
func RequestTimeout(timeout time.Duration, skipSuffixes ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			path := c.Request().URL.Path
			for _, suffix := range skipSuffixes {
				if strings.HasSuffix(path, suffix) {
					return next(c)
				}
			}

			ctx, cancel := context.WithTimeout(c.Request().Context(), timeout)
			defer cancel()
			c.SetRequest(c.Request().WithContext(ctx))

			err := next(c)
			if errors.Is(ctx.Err(), context.DeadlineExceeded) && !c.Response().Committed {
				return echo.NewHTTPError(http.StatusGatewayTimeout, "Tempo limite da requisição excedido")
			}
			return err
		}
	}
}
