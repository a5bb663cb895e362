package response

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrite(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		handler     fiber.Handler
		wantStatus  int
		wantMessage string
	}{
		{
			name:        "success keeps message",
			handler:     func(c fiber.Ctx) error { return Success(c, fiber.StatusOK, "done", 1) },
			wantStatus:  fiber.StatusOK,
			wantMessage: "done",
		},
		{
			name:        "created default message",
			handler:     func(c fiber.Ctx) error { return Created(c, "", nil) },
			wantStatus:  fiber.StatusCreated,
			wantMessage: MessageCreated,
		},
		{
			name:        "out of range status",
			handler:     func(c fiber.Ctx) error { return Error(c, 42, "", nil) },
			wantStatus:  fiber.StatusInternalServerError,
			wantMessage: MessageInternalServerError,
		},
		{
			name:        "unavailable",
			handler:     func(c fiber.Ctx) error { return Error(c, fiber.StatusServiceUnavailable, "", nil) },
			wantStatus:  fiber.StatusServiceUnavailable,
			wantMessage: MessageServiceUnavailable,
		},
		{
			name:        "other 4xx",
			handler:     func(c fiber.Ctx) error { return Error(c, fiber.StatusTeapot, "", nil) },
			wantStatus:  fiber.StatusTeapot,
			wantMessage: MessageError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			app := fiber.New()
			app.Get("/", tt.handler)

			resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
			require.NoError(t, err)
			defer resp.Body.Close()

			var body SemanticResponse
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
			assert.Equal(t, tt.wantStatus, body.Status)
			assert.Equal(t, tt.wantMessage, body.Message)
		})
	}
}
