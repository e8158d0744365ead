package availability

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"hotelbooking/internal/domain/rooms"
)

var ErrNegativeCount = errors.New("availability: initial count cannot be negative")

// NoAvailabilityError is returned when a booking is attempted for a room type
// that has no remaining rooms. Unknown room types are reported the same way.
type NoAvailabilityError struct {
	RoomType rooms.RoomType
}

func (e *NoAvailabilityError) Error() string {
	return fmt.Sprintf("availability: no rooms available for type %q", string(e.RoomType))
}

// AsNoAvailability unwraps err into a NoAvailabilityError when possible.
func AsNoAvailability(err error) (*NoAvailabilityError, bool) {
	var target *NoAvailabilityError
	if errors.As(err, &target) {
		return target, true
	}
	return nil, false
}

// DefaultInventory returns the initial counts used when none are configured.
func DefaultInventory() map[rooms.RoomType]int {
	return map[rooms.RoomType]int{
		rooms.TypeStandard: 10,
		rooms.TypeSuite:    5,
		rooms.TypeDeluxe:   3,
	}
}

type slot struct {
	mu    sync.Mutex
	count int
}

// Ledger tracks remaining rooms per type. The set of room types is fixed at
// construction, so each type carries its own lock and no map lock is needed.
type Ledger struct {
	slots map[rooms.RoomType]*slot
}

func NewLedger(initial map[rooms.RoomType]int) (*Ledger, error) {
	slots := make(map[rooms.RoomType]*slot, len(initial))
	for roomType, count := range initial {
		if count < 0 {
			return nil, fmt.Errorf("%w: %s=%d", ErrNegativeCount, roomType, count)
		}
		slots[roomType] = &slot{count: count}
	}
	return &Ledger{slots: slots}, nil
}

// CheckAvailability reports whether at least one room of the type remains.
func (l *Ledger) CheckAvailability(roomType rooms.RoomType) bool {
	s, ok := l.slots[roomType]
	if !ok {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.count > 0
}

// BookRoom takes one room of the given type. It returns false and leaves the
// ledger untouched when nothing is left.
func (l *Ledger) BookRoom(roomType rooms.RoomType) bool {
	s, ok := l.slots[roomType]
	if !ok {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.count <= 0 {
		return false
	}
	s.count--
	return true
}

// Remaining returns the current count for the type, zero when unknown.
func (l *Ledger) Remaining(roomType rooms.RoomType) int {
	s, ok := l.slots[roomType]
	if !ok {
		return 0
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.count
}

type Count struct {
	RoomType  rooms.RoomType
	Remaining int
}

// Snapshot returns every tracked type with its count, ordered by type name.
func (l *Ledger) Snapshot() []Count {
	out := make([]Count, 0, len(l.slots))
	for roomType := range l.slots {
		out = append(out, Count{RoomType: roomType, Remaining: l.Remaining(roomType)})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].RoomType < out[j].RoomType })
	return out
}
