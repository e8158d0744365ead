package queries

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countQuery struct{ RoomType string }

func (countQuery) Key() string { return "test.count" }

func TestInMemoryBus_Ask(t *testing.T) {
	bus := NewInMemoryBus()
	RegisterHandler[countQuery, int](bus, HandlerFunc[countQuery, int](func(_ context.Context, q countQuery) (int, error) {
		return len(q.RoomType), nil
	}))

	got, err := Ask[countQuery, int](context.Background(), bus, countQuery{RoomType: "suite"})

	require.NoError(t, err)
	assert.Equal(t, 5, got)
}

func TestInMemoryBus_AskErrors(t *testing.T) {
	bus := NewInMemoryBus()

	_, err := Ask[countQuery, int](context.Background(), bus, countQuery{})
	assert.ErrorIs(t, err, ErrHandlerNotFound)

	_, err = bus.Ask(context.Background(), nil)
	assert.ErrorIs(t, err, ErrInvalidQuery)

	_, err = Ask[countQuery, int](context.Background(), nil, countQuery{})
	assert.ErrorIs(t, err, ErrNilBus)
}
