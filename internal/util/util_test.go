package util

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestTranslateDBError(t *testing.T) {
	assert.NoError(t, TranslateDBError(nil))
	assert.ErrorIs(t, TranslateDBError(gorm.ErrRecordNotFound), ErrNotFound)
	assert.ErrorIs(t, TranslateDBError(fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505", ConstraintName: "idx_applicants_email"})), ErrConflict)

	var formErr *FormError
	require.ErrorAs(t, TranslateDBError(&pgconn.PgError{Code: "23503", ColumnName: "role"}), &formErr)
	assert.Equal(t, "exists", formErr.Errors["role"])

	other := errors.New("connection reset")
	assert.Equal(t, other, TranslateDBError(other))
}

type sample struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"omitempty,email"`
}

func TestValidate(t *testing.T) {
	require.NoError(t, Validate(sample{Name: "Aiko"}))

	var formErr *FormError
	require.ErrorAs(t, Validate(sample{Email: "nope"}), &formErr)
	assert.Equal(t, map[string]string{"name": "required", "email": "email"}, formErr.Errors)
}

func decode(t *testing.T, body io.Reader) Envelope {
	t.Helper()
	var out Envelope
	require.NoError(t, json.NewDecoder(body).Decode(&out))
	return out
}

func TestHandleError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		code    int
		message string
	}{
		{"form error", NewFormError("validation failed", map[string]string{"name": "required"}), fiber.StatusUnprocessableEntity, "validation failed"},
		{"not found", fmt.Errorf("find: %w", ErrNotFound), fiber.StatusNotFound, "failed to get applicant: not found"},
		{"conflict", ErrConflict, fiber.StatusConflict, "failed to get applicant: already exists"},
		{"fiber error", fiber.NewError(fiber.StatusBadRequest, "invalid id"), fiber.StatusBadRequest, "invalid id"},
		{"unknown", errors.New("boom"), fiber.StatusInternalServerError, "failed to get applicant"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/", func(c *fiber.Ctx) error {
				return HandleError(c, tt.err, "failed to get applicant")
			})

			resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
			require.NoError(t, err)
			assert.Equal(t, tt.code, resp.StatusCode)
			body := decode(t, resp.Body)
			assert.False(t, body.Success)
			assert.Equal(t, tt.message, body.Message)
		})
	}
}

func TestErrorResponseTraceOnlyForServerErrors(t *testing.T) {
	app := fiber.New()
	app.Get("/bad", func(c *fiber.Ctx) error {
		return ErrorResponse(c, ErrorResponseFormat{Code: fiber.StatusBadRequest, Message: "bad"}, errors.New("parse"))
	})
	app.Get("/boom", func(c *fiber.Ctx) error {
		return ErrorResponse(c, ErrorResponseFormat{Message: "boom"}, errors.New("db down"))
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/bad", nil))
	require.NoError(t, err)
	body := decode(t, resp.Body)
	assert.Equal(t, "parse", body.DevMessage)
	assert.Empty(t, body.Trace)

	resp, err = app.Test(httptest.NewRequest("GET", "/boom", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	body = decode(t, resp.Body)
	assert.Equal(t, "db down", body.DevMessage)
	assert.NotEmpty(t, body.Trace)
}
