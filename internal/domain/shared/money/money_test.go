package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormat(t *testing.T) {
	assert.Equal(t, "300,000", Format(300000))
	assert.Equal(t, "525,000", Format(525000))
	assert.Equal(t, "270,000.5", Format(270000.5))
	assert.Equal(t, "0", Format(0))
}

func TestMoney_String(t *testing.T) {
	m, err := New(420000, "cop")
	require.NoError(t, err)
	assert.Equal(t, "420,000 COP", m.String())
}

func TestNew_InvalidCurrency(t *testing.T) {
	_, err := New(1, "PESO")
	assert.ErrorIs(t, err, ErrInvalidCurrency)
	assert.Panics(t, func() { Must(1, "") })
}
