package http

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/Zammmm09/StockMate/internal/application/dto"
	"github.com/Zammmm09/StockMate/pkg/jwt"
	"github.com/Zammmm09/StockMate/pkg/logger"
)

// Locals key for the authenticated shop.
const LocalsShopID = "shop_id"

// AuthMiddleware requires a valid "Authorization: Bearer <token>" header and
// stores the shop id in Locals.
func AuthMiddleware(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, ok := bearerToken(c)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:    "MISSING_TOKEN",
				Message: "Not authorized, no token",
			})
		}
		shopID, err := shopFromToken(secret, token)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:    "INVALID_TOKEN",
				Message: "Not authorized, token failed",
			})
		}
		c.Locals(LocalsShopID, shopID)
		return c.Next()
	}
}

// OptionalAuth sets the shop id when a valid token is present. A missing or
// invalid token leaves the caller anonymous; invalid ones are logged.
func OptionalAuth(secret string, log *logger.Logger) fiber.Handler {
	if log == nil {
		log = logger.Nop()
	}
	return func(c *fiber.Ctx) error {
		token, ok := bearerToken(c)
		if !ok {
			return c.Next()
		}
		shopID, err := shopFromToken(secret, token)
		if err != nil {
			log.Warn().Err(err).Str("path", c.Path()).Msg("ignoring invalid token")
			return c.Next()
		}
		c.Locals(LocalsShopID, shopID)
		return c.Next()
	}
}

// GetShopID returns the shop id set by the auth middlewares, or "".
func GetShopID(c *fiber.Ctx) string {
	if v, ok := c.Locals(LocalsShopID).(string); ok {
		return v
	}
	return ""
}

// shopFromToken parses the token and checks that its id claim is a shop UUID.
func shopFromToken(secret, token string) (string, error) {
	shopID, err := jwt.Parse(secret, token)
	if err != nil {
		return "", err
	}
	if _, err := uuid.Parse(shopID); err != nil {
		return "", fmt.Errorf("id claim %q: %w", shopID, err)
	}
	return shopID, nil
}

func bearerToken(c *fiber.Ctx) (string, bool) {
	auth := c.Get("Authorization")
	if auth == "" {
		return "", false
	}
	const prefix = "Bearer "
	if !strings.HasPrefix(auth, prefix) {
		return "", false
	}
	token := strings.TrimSpace(strings.TrimPrefix(auth, prefix))
	return token, token != ""
}
