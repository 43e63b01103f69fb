package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/marinacaribe/yacht-rental-system/internal/api/metrics"
	"github.com/marinacaribe/yacht-rental-system/internal/core/domain"
	"github.com/marinacaribe/yacht-rental-system/internal/core/ports"
)

// Auth validates the bearer token and the server-side session behind it,
// then injects the session identity into context.
//
// The JWT alone is not enough: logout and the inactivity timeout invalidate
// sessions before the token's exp claim, so every request re-checks the
// session record.
func Auth(jwtSecret string, sessions ports.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims := jwt.MapClaims{}
			tkn, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
				if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return []byte(jwtSecret), nil
			})
			if err != nil || !tkn.Valid {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			sid, _ := claims["sid"].(string)
			sess, err := sessions.CurrentSession(c.Request().Context(), sid)
			if err != nil {
				if errors.Is(err, domain.ErrSessionExpired) {
					metrics.SessionsExpiredTotal.Inc()
					return echo.NewHTTPError(http.StatusUnauthorized, "session expired")
				}
				return err
			}
			if sess == nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "session not found")
			}

			c.Set("session_id", sess.ID)
			c.Set("user_id", sess.UserID)
			c.Set("username", sess.Username)
			c.Set("role", sess.Role)

			return next(c)
		}
	}
}
