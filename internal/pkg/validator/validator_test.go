package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("jane.doe@example.com"))
	assert.True(t, IsValidEmail("jane+hr@example.co.uk"))
	assert.False(t, IsValidEmail("jane"))
	assert.False(t, IsValidEmail("jane@"))
	assert.False(t, IsValidEmail("@example.com"))
	assert.False(t, IsValidEmail("jane@example"))
}

func TestIsValidLeaveCode(t *testing.T) {
	assert.True(t, IsValidLeaveCode("CL"))
	assert.True(t, IsValidLeaveCode("MATERNITY"))
	assert.False(t, IsValidLeaveCode(""))
	assert.False(t, IsValidLeaveCode("cl"))
	assert.False(t, IsValidLeaveCode("CL1"))
	assert.False(t, IsValidLeaveCode("VERYLONGCODEX"))
}

func TestIsValidHexColor(t *testing.T) {
	assert.True(t, IsValidHexColor("#6366f1"))
	assert.True(t, IsValidHexColor("#FFFFFF"))
	assert.False(t, IsValidHexColor("6366f1"))
	assert.False(t, IsValidHexColor("#fff"))
	assert.False(t, IsValidHexColor("#6366g1"))
}

func TestIsValidDate(t *testing.T) {
	date, ok := IsValidDate("2026-03-02")
	assert.True(t, ok)
	assert.Equal(t, 2026, date.Year())

	_, ok = IsValidDate("2026-02-30")
	assert.False(t, ok)

	_, ok = IsValidDate("02-03-2026")
	assert.False(t, ok)
}

func TestValidationErrorsToMap(t *testing.T) {
	errs := ValidationErrors{
		{Field: "email", Message: "a valid email is required"},
		{Field: "password", Message: "password is required"},
	}

	assert.Equal(t, map[string]string{
		"email":    "a valid email is required",
		"password": "password is required",
	}, errs.ToMap())
	assert.Equal(t, "email: a valid email is required; password: password is required", errs.Error())
}
