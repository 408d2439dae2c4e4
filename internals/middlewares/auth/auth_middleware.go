// internals/middlewares/auth/auth_middleware.go
package auth

import (
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"skbudget_backend/internals/configs"
	"skbudget_backend/internals/constants"
)

// AuthMiddleware verifies the bearer token issued by the auth service and
// stores the user id and role claims in request locals.
func AuthMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString, err := extractBearerToken(c)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, err.Error())
		}

		secretKey := configs.JWTSecret
		if secretKey == "" {
			log.Println("[ERROR] JWT_SECRET is empty")
			return fiber.NewError(fiber.StatusInternalServerError, "Missing JWT Secret")
		}

		claims := jwt.MapClaims{}
		parser := jwt.Parser{SkipClaimsValidation: true}
		if _, err := parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			return []byte(secretKey), nil
		}); err != nil {
			log.Println("[ERROR] Token parse failed:", err)
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Token parse error")
		}

		if err := validateTokenExpiry(claims, 30*time.Second); err != nil {
			log.Println("[ERROR] Exp validation:", err)
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Token expired")
		}

		storeClaimsToLocals(c, claims)
		return c.Next()
	}
}

// RequireAdmin rejects requests whose role claim is not one of the admin roles.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, _ := c.Locals("role").(string)
		if !constants.IsAdminRole(role) {
			return fiber.NewError(fiber.StatusForbidden, "Access denied")
		}
		return c.Next()
	}
}

func extractBearerToken(c *fiber.Ctx) (string, error) {
	authHeader := c.Get("Authorization")
	if authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") && parts[1] != "" {
			return parts[1], nil
		}
		return "", fiber.NewError(fiber.StatusUnauthorized, "Malformed Authorization header")
	}

	// cookie fallback for the dashboard
	if cookie := c.Cookies("access_token"); cookie != "" {
		return cookie, nil
	}
	return "", fiber.NewError(fiber.StatusUnauthorized, "Missing Authorization header")
}

func validateTokenExpiry(claims jwt.MapClaims, leeway time.Duration) error {
	expRaw, ok := claims["exp"]
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "missing exp claim")
	}
	expFloat, ok := expRaw.(float64)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "invalid exp claim")
	}
	expiry := time.Unix(int64(expFloat), 0)
	if time.Now().After(expiry.Add(leeway)) {
		return fiber.NewError(fiber.StatusUnauthorized, "token expired")
	}
	return nil
}

func storeClaimsToLocals(c *fiber.Ctx, claims jwt.MapClaims) {
	if sub, ok := claims["sub"].(string); ok {
		c.Locals("user_id", sub)
	} else if uid, ok := claims["user_id"].(string); ok {
		c.Locals("user_id", uid)
	}
	if role, ok := claims["role"].(string); ok {
		c.Locals("role", strings.ToUpper(role))
	}
	if name, ok := claims["user_name"].(string); ok {
		c.Locals("user_name", name)
	}
}
