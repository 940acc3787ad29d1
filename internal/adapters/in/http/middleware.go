package http

import (
	"strings"

	"github.com/labstack/echo/v4"

	"jobboard/internal/pkg/errs"
	"jobboard/internal/pkg/token"
)

// TokenVerifier checks a bearer token and returns the claims it carries.
type TokenVerifier interface {
	Verify(tokenString string) (*token.Claims, error)
}

const principalContextKey = "principal"

// Principal returns the claims attached to the request, if any.
func Principal(c echo.Context) (*token.Claims, bool) {
	claims, ok := c.Get(principalContextKey).(*token.Claims)
	return claims, ok && claims != nil
}

// Authenticate extracts a bearer token from the Authorization header and, when
// the token verifies, stores its claims on the request context. It never
// rejects a request: a missing or invalid token leaves the request anonymous
// and the route gates decide what anonymous callers may do.
func Authenticate(verifier TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if raw, ok := bearerToken(header); ok {
				if claims, err := verifier.Verify(raw); err == nil {
					c.Set(principalContextKey, claims)
				}
			}
			return next(c)
		}
	}
}

func bearerToken(header string) (string, bool) {
	if header == "" {
		return "", false
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", false
	}
	raw := strings.TrimSpace(parts[1])
	return raw, raw != ""
}

// RequireLoggedIn rejects requests that carry no principal.
func RequireLoggedIn(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if _, ok := Principal(c); !ok {
			return errs.NewUnauthorizedError("must be logged in")
		}
		return next(c)
	}
}

// RequireAdmin rejects requests whose principal is missing or not an admin.
func RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, ok := Principal(c)
		if !ok || !claims.IsAdmin {
			return errs.NewUnauthorizedError("must be admin")
		}
		return next(c)
	}
}

// RequireAdminOrSelf rejects any authenticated non-admin caller, regardless
// of whether the route parameter names the caller's own account. Requests
// without a principal pass through; stack RequireLoggedIn in front when a
// route must also exclude anonymous callers.
func RequireAdminOrSelf(param string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if claims, ok := Principal(c); ok && !claims.IsAdmin {
				return errs.NewUnauthorizedError("must be admin")
			}
			return next(c)
		}
	}
}
