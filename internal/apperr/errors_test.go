package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestStatusFor(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"validation", Validation("missing field"), fiber.StatusBadRequest},
		{"auth", Auth("invalid credentials"), fiber.StatusUnauthorized},
		{"not found", NotFound("object x"), fiber.StatusNotFound},
		{"store", Store("insert users", errors.New("boom")), fiber.StatusInternalServerError},
		{"plain", errors.New("boom"), fiber.StatusInternalServerError},
		{"wrapped not found", fmt.Errorf("listing: %w", NotFound("object x")), fiber.StatusNotFound},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, StatusFor(tc.err))
		})
	}
}

func TestStoreErrorUnwraps(t *testing.T) {
	cause := errors.New("connection reset")
	err := Store("query files", cause)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "query files: connection reset", err.Error())
}

func TestMessages(t *testing.T) {
	assert.Equal(t, "object a/b not found", NotFound("object a/b").Error())
	assert.Equal(t, "unknown kind \"x\"", Validation("unknown kind %q", "x").Error())
}
