package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/brightline/tutoring-platform/internal/core/domain"
)

// SessionCookieName is the cookie carrying the JWT for browser flows. API
// clients use the Authorization bearer header instead; both are accepted.
const SessionCookieName = "session"

// principalKey is the echo context key the authenticated user is stored
// under.
const principalKey = "principal"

var errNoToken = errors.New("no token presented")

// Auth validates the JWT and injects the authenticated principal into the
// request context. Requests without a valid token are rejected with 401.
func Auth(jwtSecret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			principal, err := principalFromRequest(c, jwtSecret)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid or missing token")
			}
			c.Set(principalKey, principal)
			return next(c)
		}
	}
}

// Principal returns the authenticated user injected by Auth or Guard, or
// nil when the request is unauthenticated.
func Principal(c echo.Context) *domain.User {
	u, _ := c.Get(principalKey).(*domain.User)
	return u
}

// principalFromRequest extracts and verifies the JWT from the bearer header
// or the session cookie and rebuilds the principal from its claims. Tokens
// are only issued to usable accounts, so the reconstructed user carries
// Active=true for the policy's usability check.
func principalFromRequest(c echo.Context, jwtSecret string) (*domain.User, error) {
	raw := bearerToken(c)
	if raw == "" {
		if cookie, err := c.Cookie(SessionCookieName); err == nil {
			raw = cookie.Value
		}
	}
	if raw == "" {
		return nil, errNoToken
	}

	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(raw, claims, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(jwtSecret), nil
	})
	if err != nil || !tkn.Valid {
		return nil, jwt.ErrTokenSignatureInvalid
	}

	id, _ := claims["sub"].(string)
	email, _ := claims["email"].(string)
	roleStr, _ := claims["role"].(string)

	role, err := domain.ParseRole(roleStr)
	if err != nil {
		return nil, err
	}

	return &domain.User{ID: id, Email: email, Role: role, Active: true}, nil
}

func bearerToken(c echo.Context) string {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return ""
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return parts[1]
}
