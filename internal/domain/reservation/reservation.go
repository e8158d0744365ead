package reservation

import (
	"strings"

	"hotelbooking/internal/domain/rooms"
)

// BaseCost is the nightly room rate in COP before any service is added.
const BaseCost int64 = 300000

type Service string

const (
	ServiceBreakfast        Service = "breakfast"
	ServiceAirportTransport Service = "airport_transport"
)

type charge struct {
	amount int64
	suffix string
}

var charges = map[Service]charge{
	ServiceBreakfast:        {amount: 50000, suffix: ", desayuno incluido"},
	ServiceAirportTransport: {amount: 70000, suffix: ", transporte al aeropuerto"},
}

// ParseService resolves a requested service name. Unknown names are reported
// with ok=false and must be ignored by callers.
func ParseService(name string) (Service, bool) {
	s := Service(name)
	_, ok := charges[s]
	return s, ok
}

func (s Service) Charge() int64  { return charges[s].amount }
func (s Service) Suffix() string { return charges[s].suffix }

type layer uint8

const (
	layerBase layer = iota
	layerBreakfast
	layerAirportTransport
)

var serviceLayers = map[Service]layer{
	ServiceBreakfast:        layerBreakfast,
	ServiceAirportTransport: layerAirportTransport,
}

// Reservation is one node of a decoration chain: either the base room or a
// service layer wrapping exactly one inner reservation.
type Reservation struct {
	kind     layer
	room     rooms.Room
	services []string
	inner    *Reservation
}

// New wraps a room into an undecorated reservation.
func New(room rooms.Room) *Reservation {
	return &Reservation{kind: layerBase, room: room}
}

// With returns a new layer adding svc on top of r. r is left unchanged.
func (r *Reservation) With(svc Service) *Reservation {
	kind, ok := serviceLayers[svc]
	if !ok {
		return r
	}
	return &Reservation{kind: kind, inner: r}
}

// Decorate applies the requested services in order, skipping unknown names.
func Decorate(r *Reservation, names []string) *Reservation {
	for _, name := range names {
		svc, ok := ParseService(name)
		if !ok {
			continue
		}
		r = r.With(svc)
	}
	return r
}

func (r *Reservation) Cost() int64 {
	switch r.kind {
	case layerBreakfast:
		return r.inner.Cost() + ServiceBreakfast.Charge()
	case layerAirportTransport:
		return r.inner.Cost() + ServiceAirportTransport.Charge()
	default:
		return BaseCost
	}
}

// Description renders the chain. The base node only describes itself when it
// carries its own service list, which the decorators never fill; an
// undecorated reservation therefore describes itself as "".
func (r *Reservation) Description() string {
	switch r.kind {
	case layerBreakfast:
		return r.inner.Description() + ServiceBreakfast.Suffix()
	case layerAirportTransport:
		return r.inner.Description() + ServiceAirportTransport.Suffix()
	default:
		if len(r.services) == 0 {
			return ""
		}
		return r.room.Description() + " con " + strings.Join(r.services, ", ")
	}
}

// Room returns the room at the bottom of the chain.
func (r *Reservation) Room() rooms.Room {
	for r.kind != layerBase {
		r = r.inner
	}
	return r.room
}

// Services lists the applied services from innermost to outermost, which is
// the order they were requested in.
func (r *Reservation) Services() []Service {
	var out []Service
	for node := r; node.kind != layerBase; node = node.inner {
		switch node.kind {
		case layerBreakfast:
			out = append(out, ServiceBreakfast)
		case layerAirportTransport:
			out = append(out, ServiceAirportTransport)
		}
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}
