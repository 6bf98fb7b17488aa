package middleware_test

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/lms-go-api/internal/middleware"
	"github.com/noah-isme/lms-go-api/internal/models"
)

func newRBACApp(role interface{}, allowed ...string) *fiber.App {
	app := fiber.New()
	app.Get("/guarded", func(c *fiber.Ctx) error {
		if role != nil {
			c.Locals(middleware.LocalRole, role)
		}
		return c.Next()
	}, middleware.RequireRole(allowed...), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	return app
}

func requireStatus(t *testing.T, app *fiber.App, status int) {
	t.Helper()

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/guarded", nil))
	require.NoError(t, err)
	require.Equal(t, status, resp.StatusCode)
	require.NoError(t, resp.Body.Close())
}

func TestRequireRoleAllowsMatchingRole(t *testing.T) {
	requireStatus(t, newRBACApp(models.RoleTeacher, models.RoleTeacher), fiber.StatusOK)
}

func TestRequireRoleNormalizesValue(t *testing.T) {
	requireStatus(t, newRBACApp("  Teacher ", models.RoleTeacher), fiber.StatusOK)
}

func TestRequireRoleRejectsOtherRole(t *testing.T) {
	requireStatus(t, newRBACApp(models.RoleStudent, models.RoleTeacher), fiber.StatusForbidden)
}

func TestRequireRoleRejectsMissingRole(t *testing.T) {
	requireStatus(t, newRBACApp(nil, models.RoleTeacher), fiber.StatusForbidden)
}
