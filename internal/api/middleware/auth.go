package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/stormapp/canteen-api/internal/core/domain"
)

// LoginRedirect is the hint returned with every 401 so browser clients know
// where to reauthenticate.
const LoginRedirect = "/login.html"

// Machine-readable 401 reasons. Clients branch on these, not on the message.
const (
	ReasonNoHeader         = "no_header"
	ReasonMalformed        = "malformed"
	ReasonExpired          = "expired"
	ReasonInvalidSignature = "invalid_signature"
)

type authErrorResponse struct {
	Error    string `json:"error"`
	Reason   string `json:"reason"`
	Redirect string `json:"redirect"`
}

// VerifyToken validates an HS256 token against the server secret and
// returns the identity carried in its claims.
func VerifyToken(jwtSecret, token string) (domain.Identity, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(jwtSecret), nil
	})
	if err != nil {
		return domain.Identity{}, err
	}
	if !tkn.Valid {
		return domain.Identity{}, jwt.ErrTokenInvalidClaims
	}

	return domain.Identity{
		ID:    claimString(claims, "userId"),
		Role:  claimString(claims, "role"),
		Email: claimString(claims, "email"),
		Name:  claimString(claims, "name"),
	}, nil
}

// Auth validates the bearer token and injects the requester identity into
// the context. Every rejection is a 401 with a reason code and a redirect
// hint; the reason distinguishes an expired token from a malformed one.
func Auth(jwtSecret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if jwtSecret == "" {
				return echo.NewHTTPError(http.StatusInternalServerError, "server configuration error")
			}

			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return reject(c, "No valid Authorization header provided", ReasonNoHeader)
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || parts[1] == "" {
				return reject(c, "No valid Authorization header provided", ReasonNoHeader)
			}

			identity, err := VerifyToken(jwtSecret, parts[1])
			if err != nil {
				switch {
				case errors.Is(err, jwt.ErrTokenExpired):
					return reject(c, "Token expired", ReasonExpired)
				case errors.Is(err, jwt.ErrTokenSignatureInvalid):
					return reject(c, "Invalid token signature", ReasonInvalidSignature)
				default:
					return reject(c, "Invalid token", ReasonMalformed)
				}
			}

			c.Set("user_id", identity.ID)
			c.Set("role", identity.Role)
			c.Set("email", identity.Email)
			c.Set("name", identity.Name)

			return next(c)
		}
	}
}

func reject(c echo.Context, msg, reason string) error {
	return c.JSON(http.StatusUnauthorized, authErrorResponse{
		Error:    msg,
		Reason:   reason,
		Redirect: LoginRedirect,
	})
}

func claimString(claims jwt.MapClaims, key string) string {
	s, _ := claims[key].(string)
	return s
}
