package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"sareeMarket/internal/rest"
	"sareeMarket/pkg/logger"
	"sareeMarket/pkg/utils"
)

// HeaderAdminSecret carries the shared administrative secret.
const HeaderAdminSecret = "X-Admin-Secret"

// AuthMiddleware requires a valid bearer token and stores the token
// claims on the request context.
func AuthMiddleware(jwtSecret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, err := claimsFromHeader(c, jwtSecret)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, rest.ResponseError{Message: err.Error()})
			}

			c.Set("user_id", claims.UserID)
			c.Set("user_name", claims.Name)
			c.Set("user_mobile", claims.Mobile)
			c.Set("is_admin", claims.IsAdmin)

			return next(c)
		}
	}
}

// AdminCheck authorizes administrative routes through either of two
// paths: the shared secret header, or a valid bearer token whose
// claims carry the admin flag. It does not require AuthMiddleware to
// have run first.
func AdminCheck(adminSecret, jwtSecret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(HeaderAdminSecret)
			if header != "" && subtle.ConstantTimeCompare([]byte(header), []byte(adminSecret)) == 1 {
				return next(c)
			}

			claims, err := claimsFromHeader(c, jwtSecret)
			if err == nil && claims.IsAdmin {
				c.Set("user_id", claims.UserID)
				c.Set("is_admin", true)
				return next(c)
			}

			if err != nil {
				logger.Debug("Admin check token rejected", err)
			}

			return c.JSON(http.StatusForbidden, rest.ResponseError{Message: "Admin only"})
		}
	}
}

func claimsFromHeader(c echo.Context, jwtSecret string) (*utils.JWTClaims, error) {
	authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
	if authHeader == "" {
		return nil, errMissingToken
	}

	tokenParts := strings.Split(authHeader, " ")
	if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
		return nil, errInvalidToken
	}

	claims, err := utils.ParseJWT(tokenParts[1], jwtSecret)
	if err != nil {
		return nil, errInvalidToken
	}

	return claims, nil
}
