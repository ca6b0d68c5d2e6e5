package application

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateEmail(t *testing.T) {
	v := &Validator{}

	assert.NoError(t, v.ValidateEmail("user@example.com"))
	assert.NoError(t, v.ValidateEmail("first.last+tag@sub.example.org"))

	assert.Error(t, v.ValidateEmail(""))
	assert.Error(t, v.ValidateEmail("not-an-email"))
	assert.Error(t, v.ValidateEmail("user@"))
	assert.Error(t, v.ValidateEmail("@example.com"))
}

func TestValidatePhone(t *testing.T) {
	v := &Validator{}

	// Vacío es válido: el teléfono es opcional
	assert.NoError(t, v.ValidatePhone(""))
	assert.NoError(t, v.ValidatePhone("+79001234567"))
	assert.NoError(t, v.ValidatePhone("+7 (900) 123-45-67"))
	assert.NoError(t, v.ValidatePhone("84951234567"))

	assert.Error(t, v.ValidatePhone("12345"))
	assert.Error(t, v.ValidatePhone("not a phone"))
	assert.Error(t, v.ValidatePhone("+7900123456789012345"))
}

func TestValidateName(t *testing.T) {
	v := &Validator{}

	assert.NoError(t, v.ValidateName("Ana", "name"))

	err := v.ValidateName("", "name")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "name is required")

	assert.Error(t, v.ValidateName("  ", "name"))
	assert.Error(t, v.ValidateName("A", "name"))

	long := make([]byte, 101)
	for i := range long {
		long[i] = 'x'
	}
	assert.Error(t, v.ValidateName(string(long), "name"))
}

func TestValidateDateRange(t *testing.T) {
	v := &Validator{}
	start := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)

	assert.NoError(t, v.ValidateDateRange(start, start))
	assert.NoError(t, v.ValidateDateRange(start, start.AddDate(0, 0, 5)))

	assert.Error(t, v.ValidateDateRange(time.Time{}, start))
	assert.Error(t, v.ValidateDateRange(start, time.Time{}))
	assert.Error(t, v.ValidateDateRange(start, start.AddDate(0, 0, -1)))
}

func TestFormatValidationErrors(t *testing.T) {
	v := &Validator{}

	assert.Empty(t, v.FormatValidationErrors(nil))

	msg := v.FormatValidationErrors([]error{
		fmt.Errorf("name is required"),
		fmt.Errorf("email 'x' is not valid"),
	})
	assert.Equal(t, "name is required; email 'x' is not valid", msg)
}
