package middleware

import (
	"context"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/noah-isme/lms-go-api/internal/models"
	"github.com/noah-isme/lms-go-api/internal/utils"
	"github.com/noah-isme/lms-go-api/pkg/security"
)

// Locals keys populated by JWTProtected.
const (
	LocalUser  = "current_user"
	LocalID    = "user_id"
	LocalEmail = "user_email"
	LocalRole  = "user_role"
)

// UserLoader resolves the account a token subject refers to.
type UserLoader interface {
	GetByEmail(ctx context.Context, email string) (models.User, error)
}

// JWTProtected returns a middleware that validates bearer tokens and loads
// the current user. A valid signature is not enough: the account the token
// was issued for must still exist.
func JWTProtected(tokens *security.TokenManager, users UserLoader) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authorization := c.Get("Authorization")
		if authorization == "" {
			return utils.SendError(c, fiber.StatusUnauthorized, "authorization header missing")
		}

		const bearer = "Bearer "
		if !strings.HasPrefix(strings.ToLower(authorization), strings.ToLower(bearer)) {
			return utils.SendError(c, fiber.StatusUnauthorized, "invalid authorization header")
		}

		tokenString := strings.TrimSpace(authorization[len(bearer):])
		if tokenString == "" {
			return utils.SendError(c, fiber.StatusUnauthorized, "invalid token")
		}

		email, err := tokens.Resolve(tokenString)
		if err != nil {
			return utils.SendError(c, fiber.StatusUnauthorized, "invalid or expired token")
		}

		user, err := users.GetByEmail(c.Context(), email)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.SendError(c, fiber.StatusUnauthorized, "invalid or expired token")
			}
			return utils.SendError(c, fiber.StatusInternalServerError, "internal server error")
		}

		c.Locals(LocalUser, user)
		c.Locals(LocalID, user.ID)
		c.Locals(LocalEmail, user.Email)
		c.Locals(LocalRole, user.Role())

		return c.Next()
	}
}
