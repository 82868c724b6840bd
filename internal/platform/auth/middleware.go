package auth

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/clientehm/api/internal/platform/apperr"
)

type contextKey string

const principalKey contextKey = "principal"

// Principal is the authenticated administrator attached to a request.
type Principal struct {
	ID    uuid.UUID
	Email string
}

// WithPrincipal returns a copy of ctx carrying p.
func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, principalKey, p)
}

// PrincipalFromContext returns the authenticated administrator, if any.
func PrincipalFromContext(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(principalKey).(Principal)
	return p, ok
}

// Authenticate resolves a bearer token into a Principal. Requests without
// a valid token continue anonymously; RequirePrincipal or the handler
// decides whether that is acceptable.
func Authenticate(tokens *TokenService, logger zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" {
				return next(c)
			}

			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return next(c)
			}

			p, err := tokens.Parse(strings.TrimSpace(parts[1]))
			if err != nil {
				logger.Debug().Err(err).Str("path", c.Request().URL.Path).Msg("bearer token rejected")
				return next(c)
			}

			ctx := WithPrincipal(c.Request().Context(), p)
			c.SetRequest(c.Request().WithContext(ctx))
			c.Set("admin_id", p.ID.String())
			return next(c)
		}
	}
}

// RequirePrincipal rejects anonymous requests with 401.
func RequirePrincipal() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if _, ok := PrincipalFromContext(c.Request().Context()); !ok {
				return apperr.Unauthorized("Autenticação necessária")
			}
			return next(c)
		}
	}
}
