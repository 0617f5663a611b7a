package middlewares

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestID(t *testing.T) {
	app := fiber.New()
	app.Use(RequestID(time.Second))
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString(c.Locals(LocalRequestID).(string))
	})

	tests := []struct {
		name   string
		header string
		keep   bool
	}{
		{"missing header", "", false},
		{"client uuid", "7d0f0c36-4a8e-4f53-9a5b-2f1f4b1d2c3e", true},
		{"client token", "edge-01:req.42_a", true},
		{"too long", strings.Repeat("a", maxRequestIDLength+1), false},
		{"longest accepted", strings.Repeat("a", maxRequestIDLength), true},
		{"spaces", "abc def", false},
		{"markup", "<script>", false},
		{"line break", "abc%0d%0aSet-Cookie", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(fiber.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set(HeaderRequestID, tt.header)
			}
			resp, err := app.Test(req, -1)
			require.NoError(t, err)

			got := resp.Header.Get(HeaderRequestID)
			if tt.keep {
				assert.Equal(t, tt.header, got)
				return
			}
			assert.NotEqual(t, tt.header, got)
			_, err = uuid.Parse(got)
			assert.NoError(t, err)
		})
	}
}
