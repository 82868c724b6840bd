package middleware

import (
	"fmt"
	"net/http"
	"runtime"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/clientehm/api/internal/platform/apperr"
)

const maxStackSize = 4 << 10

// Recovery turns a handler panic into an internal error, which the error
// handler renders as the generic 500 envelope. http.ErrAbortHandler is
// re-raised so net/http can abort the connection.
func Recovery(logger zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				r := recover()
				if r == nil {
					return
				}
				if r == http.ErrAbortHandler {
					panic(r)
				}
				err = panicError(logger, c, r)
			}()
			return next(c)
		}
	}
}

func panicError(logger zerolog.Logger, c echo.Context, r interface{}) error {
	cause, ok := r.(error)
	if !ok {
		cause = fmt.Errorf("%v", r)
	}

	stack := make([]byte, maxStackSize)
	stack = stack[:runtime.Stack(stack, false)]

	rid, _ := c.Get("request_id").(string)
	logger.Error().
		Err(cause).
		Str("request_id", rid).
		Str("method", c.Request().Method).
		Str("path", c.Request().URL.Path).
		Bytes("stack", stack).
		Msg("panic recovered")

	return apperr.Wrap(apperr.KindInternal, "", fmt.Errorf("handler panic: %w", cause))
}
