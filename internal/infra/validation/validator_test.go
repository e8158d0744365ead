package validation

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name  string `validate:"required" label:"user_name"`
	Kind  string `validate:"required"`
	Notes string
}

func TestValidator_ReportsLabelledFields(t *testing.T) {
	err := New().Validate(context.Background(), sample{})

	verr, ok := AsError(err)
	require.True(t, ok)
	assert.Equal(t, map[string]string{"user_name": "required", "Kind": "required"}, verr.Fields)
	assert.Equal(t, "validation: Kind=required, user_name=required", verr.Error())
}

func TestValidator_Valid(t *testing.T) {
	assert.NoError(t, New().Validate(context.Background(), sample{Name: "Ana", Kind: "suite"}))
}

func TestValidator_NonStruct(t *testing.T) {
	err := New().Validate(context.Background(), 42)

	require.Error(t, err)
	_, ok := AsError(err)
	assert.False(t, ok)
}
