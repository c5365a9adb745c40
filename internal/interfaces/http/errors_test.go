package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrwinner04/graph-ql-warehouse/internal/application/dto"
	"github.com/mrwinner04/graph-ql-warehouse/internal/domain"
)

// respondError debe traducir cada categoría de dominio a su status y código;
// cualquier error sin clasificar sale como 500 INTERNAL.
func TestRespondError_TraduceCategorias(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"not found", domain.NotFound("Product not found"), http.StatusNotFound, "NOT_FOUND"},
		{"conflict", domain.Conflict("Product with this name already exists in your company"), http.StatusConflict, "CONFLICT"},
		{"bad request", domain.BadRequest("Quantity must be a positive integer"), http.StatusBadRequest, "BAD_REQUEST"},
		{"unauthorized", domain.Unauthorized("Invalid credentials"), http.StatusUnauthorized, "UNAUTHORIZED"},
		{"sin clasificar", errors.New("conexión perdida"), http.StatusInternalServerError, "INTERNAL"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/x", func(c *fiber.Ctx) error {
				return respondError(c, tc.err)
			})

			resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/x", nil), -1)
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, tc.wantStatus, resp.StatusCode)

			var body dto.ErrorResponse
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.Equal(t, tc.wantCode, body.Code)
			assert.Equal(t, tc.err.Error(), body.Message)
		})
	}
}
