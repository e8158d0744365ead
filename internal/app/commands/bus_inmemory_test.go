package commands

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pingCommand struct{ Name string }

func (pingCommand) Key() string { return "test.ping" }

type otherCommand struct{}

func (otherCommand) Key() string { return "test.other" }

func TestInMemoryBus_DispatchTyped(t *testing.T) {
	bus := NewInMemoryBus()
	RegisterHandler[pingCommand, string](bus, HandlerFunc[pingCommand, string](func(_ context.Context, cmd pingCommand) (string, error) {
		return "pong " + cmd.Name, nil
	}))

	got, err := Dispatch[pingCommand, string](context.Background(), bus, pingCommand{Name: "Ana"})

	require.NoError(t, err)
	assert.Equal(t, "pong Ana", got)
}

func TestInMemoryBus_Errors(t *testing.T) {
	bus := NewInMemoryBus()
	RegisterHandler[pingCommand, string](bus, HandlerFunc[pingCommand, string](func(context.Context, pingCommand) (string, error) {
		return "pong", nil
	}))

	_, err := bus.Dispatch(context.Background(), otherCommand{})
	assert.ErrorIs(t, err, ErrHandlerNotFound)

	_, err = bus.Dispatch(context.Background(), nil)
	assert.ErrorIs(t, err, ErrInvalidCommand)

	_, err = Dispatch[pingCommand, int](context.Background(), bus, pingCommand{})
	assert.ErrorIs(t, err, ErrResultType)

	_, err = Dispatch[pingCommand, string](context.Background(), nil, pingCommand{})
	assert.ErrorIs(t, err, ErrNilBus)
}

func TestInMemoryBus_DuplicateRegistrationPanics(t *testing.T) {
	bus := NewInMemoryBus()
	h := HandlerFunc[pingCommand, string](func(context.Context, pingCommand) (string, error) { return "", nil })
	RegisterHandler[pingCommand, string](bus, h)

	assert.Panics(t, func() { RegisterHandler[pingCommand, string](bus, h) })
}
