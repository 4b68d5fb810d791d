package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swiftticket/swiftticket/internal/shared/errors"
)

type sample struct {
	Slots    int    `json:"category_slots" validate:"min=1,max=35"`
	Timezone string `json:"timezone" validate:"required,timezone"`
}

func TestValidateStruct(t *testing.T) {
	require.NoError(t, ValidateStruct(sample{Slots: 3, Timezone: "Europe/Berlin"}))

	err := ValidateStruct(sample{Slots: 36, Timezone: "Mars/Olympus"})
	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeValidation, appErr.Type)
	assert.Contains(t, appErr.Details, "category_slots must be at most 35")
	assert.Contains(t, appErr.Details, "timezone must be a valid IANA timezone")
}

func TestParseIntInRange(t *testing.T) {
	tests := []struct {
		input   string
		want    int
		wantErr bool
	}{
		{input: "1", want: 1},
		{input: " 35 ", want: 35},
		{input: "0", wantErr: true},
		{input: "36", wantErr: true},
		{input: "abc", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseIntInRange("category_slots", tt.input, 1, 35)
			if tt.wantErr {
				assert.True(t, errors.IsValidationError(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidateSnowflake(t *testing.T) {
	assert.NoError(t, ValidateSnowflake("role", "123456789012345678"))
	assert.Error(t, ValidateSnowflake("role", ""))
	assert.Error(t, ValidateSnowflake("role", "<@&12>"))
}
