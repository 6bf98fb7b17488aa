package handler_test

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

func TestHealthEndpoint(t *testing.T) {
	app, _, _ := setupApp(t)

	resp := doJSON(t, app, fiber.MethodGet, "/api/health", "", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		Success bool `json:"success"`
		Data    struct {
			Status      string `json:"status"`
			Service     string `json:"service"`
			Environment string `json:"environment"`
		} `json:"data"`
	}
	decodeResponse(t, resp, &body)
	require.True(t, body.Success)
	require.Equal(t, "ok", body.Data.Status)
	require.Equal(t, "Test", body.Data.Service)
	require.Equal(t, "test", body.Data.Environment)
}
