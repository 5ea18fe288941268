package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// Context keys set by Auth for the authenticated curator.
const (
	CuratorIDKey   = "user_id"
	CuratorNameKey = "username"
	CuratorRoleKey = "role"
)

var (
	errNoCuratorID   = errors.New("token has no subject")
	errNoCuratorRole = errors.New("token has no role")
)

// CuratorClaims is the payload of the tokens AuthService issues on login.
// The subject is the curator's user id.
type CuratorClaims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// Validate rejects tokens that would leave RBAC with nobody to check.
func (c CuratorClaims) Validate() error {
	if c.Subject == "" {
		return errNoCuratorID
	}
	if c.Role == "" {
		return errNoCuratorRole
	}
	return nil
}

// Auth admits requests carrying a curator bearer token signed with
// jwtSecret. Tokens must be HS256 and must expire. The curator's id, name
// and role are stored on the echo context under the Curator*Key constants.
func Auth(jwtSecret string) echo.MiddlewareFunc {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	key := func(*jwt.Token) (interface{}, error) { return []byte(jwtSecret), nil }

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw, err := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
			if err != nil {
				return err
			}

			var claims CuratorClaims
			if _, err := parser.ParseWithClaims(raw, &claims, key); err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token").SetInternal(err)
			}

			c.Set(CuratorIDKey, claims.Subject)
			c.Set(CuratorNameKey, claims.Username)
			c.Set(CuratorRoleKey, claims.Role)
			return next(c)
		}
	}
}

func bearerToken(header string) (string, error) {
	if header == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
	}
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "bearer") || token == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
	}
	return token, nil
}
