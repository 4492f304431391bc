package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidMonthToken(t *testing.T) {
	t.Parallel()

	valid := []string{"2025-01-01", "2025-12-01", "1999-06-01"}
	for _, token := range valid {
		assert.True(t, IsValidMonthToken(token), "token %q", token)
	}

	invalid := []string{
		"",
		"2025-07",
		"2025-07-15",
		"2025-13-01",
		"2025-00-01",
		"25-07-01",
		"2025/07/01",
		"july 2025",
	}
	for _, token := range invalid {
		assert.False(t, IsValidMonthToken(token), "token %q", token)
	}
}

func TestIsValidDate(t *testing.T) {
	t.Parallel()

	assert.True(t, IsValidDate("2025-02-28"))
	assert.False(t, IsValidDate("2025-02-30"))
	assert.False(t, IsValidDate("28-02-2025"))
}

func TestIsEmpty(t *testing.T) {
	t.Parallel()

	assert.True(t, IsEmpty(""))
	assert.True(t, IsEmpty("   \t"))
	assert.False(t, IsEmpty(" x "))
}

func TestIsNumeric(t *testing.T) {
	t.Parallel()

	assert.True(t, IsNumeric("42"))
	assert.False(t, IsNumeric("42.5"))
	assert.False(t, IsNumeric(""))
}

func TestValidationErrors(t *testing.T) {
	t.Parallel()

	errs := ValidationErrors{
		{Field: "month", Message: "is required"},
		{Field: "status", Message: "is invalid"},
	}

	assert.Equal(t, "month: is required; status: is invalid", errs.Error())
	assert.Equal(t, map[string]string{
		"month":  "is required",
		"status": "is invalid",
	}, errs.ToMap())
}
