package availability

import (
	"fmt"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotelbooking/internal/domain/rooms"
)

func newLedger(t *testing.T, initial map[rooms.RoomType]int) *Ledger {
	t.Helper()
	l, err := NewLedger(initial)
	require.NoError(t, err)
	return l
}

func TestLedger_BookDecrementsByOne(t *testing.T) {
	l := newLedger(t, DefaultInventory())

	require.True(t, l.CheckAvailability(rooms.TypeSuite))
	assert.True(t, l.BookRoom(rooms.TypeSuite))
	assert.Equal(t, 4, l.Remaining(rooms.TypeSuite))
	assert.Equal(t, 10, l.Remaining(rooms.TypeStandard))
}

func TestLedger_ExhaustedTypeNeverGoesNegative(t *testing.T) {
	l := newLedger(t, map[rooms.RoomType]int{rooms.TypeDeluxe: 2})

	assert.True(t, l.BookRoom(rooms.TypeDeluxe))
	assert.True(t, l.BookRoom(rooms.TypeDeluxe))
	assert.False(t, l.CheckAvailability(rooms.TypeDeluxe))
	assert.False(t, l.BookRoom(rooms.TypeDeluxe))
	assert.Equal(t, 0, l.Remaining(rooms.TypeDeluxe))
}

func TestLedger_ZeroCount(t *testing.T) {
	l := newLedger(t, map[rooms.RoomType]int{rooms.TypeStandard: 0})

	assert.False(t, l.CheckAvailability(rooms.TypeStandard))
	assert.False(t, l.BookRoom(rooms.TypeStandard))
	assert.Equal(t, 0, l.Remaining(rooms.TypeStandard))
}

func TestLedger_UnknownTypeIsUnavailable(t *testing.T) {
	l := newLedger(t, DefaultInventory())

	assert.False(t, l.CheckAvailability("penthouse"))
	assert.False(t, l.BookRoom("penthouse"))
	assert.Equal(t, 0, l.Remaining("penthouse"))
}

func TestNewLedger_RejectsNegativeCounts(t *testing.T) {
	_, err := NewLedger(map[rooms.RoomType]int{rooms.TypeSuite: -1})
	assert.ErrorIs(t, err, ErrNegativeCount)
}

func TestLedger_ConcurrentBookingsNeverOversell(t *testing.T) {
	l := newLedger(t, map[rooms.RoomType]int{rooms.TypeDeluxe: 3, rooms.TypeSuite: 5})

	var deluxe, suite atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < 64; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			if l.BookRoom(rooms.TypeDeluxe) {
				deluxe.Add(1)
			}
		}()
		go func() {
			defer wg.Done()
			if l.BookRoom(rooms.TypeSuite) {
				suite.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(3), deluxe.Load())
	assert.Equal(t, int32(5), suite.Load())
	assert.Equal(t, 0, l.Remaining(rooms.TypeDeluxe))
	assert.Equal(t, 0, l.Remaining(rooms.TypeSuite))
}

func TestLedger_SnapshotIsSorted(t *testing.T) {
	l := newLedger(t, DefaultInventory())
	l.BookRoom(rooms.TypeStandard)

	snap := l.Snapshot()
	assert.Equal(t, []Count{
		{RoomType: rooms.TypeDeluxe, Remaining: 3},
		{RoomType: rooms.TypeStandard, Remaining: 9},
		{RoomType: rooms.TypeSuite, Remaining: 5},
	}, snap)
}

func TestNoAvailabilityError(t *testing.T) {
	err := fmt.Errorf("create reservation: %w", &NoAvailabilityError{RoomType: "penthouse"})

	target, ok := AsNoAvailability(err)
	require.True(t, ok)
	assert.Equal(t, rooms.RoomType("penthouse"), target.RoomType)

	_, ok = AsNoAvailability(fmt.Errorf("other"))
	assert.False(t, ok)
}
