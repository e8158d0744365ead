package rooms

import (
	"errors"
	"fmt"
)

var ErrInvalidRoomType = errors.New("rooms: invalid room type")

type RoomType string

const (
	TypeStandard RoomType = "standard"
	TypeSuite    RoomType = "suite"
	TypeDeluxe   RoomType = "deluxe"
)

// Types lists the closed set of room types in catalog order.
func Types() []RoomType {
	return []RoomType{TypeStandard, TypeSuite, TypeDeluxe}
}

func (t RoomType) String() string { return string(t) }

// Known reports whether the type belongs to the catalog.
func (t RoomType) Known() bool {
	_, ok := descriptions[t]
	return ok
}

var descriptions = map[RoomType]string{
	TypeStandard: "Habitación Estándar",
	TypeSuite:    "Habitación Suite",
	TypeDeluxe:   "Habitación Deluxe",
}

// Room is an immutable room variant. A zero Room is not valid; use CreateRoom.
type Room struct {
	roomType    RoomType
	description string
}

func (r Room) Type() RoomType      { return r.roomType }
func (r Room) Description() string { return r.description }

// CreateRoom builds the variant for t. Reaching it with a type outside the
// catalog means the availability gate was bypassed.
func CreateRoom(t RoomType) (Room, error) {
	desc, ok := descriptions[t]
	if !ok {
		return Room{}, fmt.Errorf("%w: %q", ErrInvalidRoomType, string(t))
	}
	return Room{roomType: t, description: desc}, nil
}
