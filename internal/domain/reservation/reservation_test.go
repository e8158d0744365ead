package reservation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotelbooking/internal/domain/rooms"
)

func standardRoom(t *testing.T) rooms.Room {
	t.Helper()
	room, err := rooms.CreateRoom(rooms.TypeStandard)
	require.NoError(t, err)
	return room
}

func TestNew_BaseReservation(t *testing.T) {
	r := New(standardRoom(t))

	assert.Equal(t, int64(300000), r.Cost())
	assert.Equal(t, "", r.Description())
	assert.Empty(t, r.Services())
	assert.Equal(t, "Habitación Estándar", r.Room().Description())
}

func TestDecorate_PreservesRequestOrder(t *testing.T) {
	r := Decorate(New(standardRoom(t)), []string{"breakfast", "airport_transport"})

	assert.Equal(t, int64(420000), r.Cost())
	assert.Equal(t, ", desayuno incluido, transporte al aeropuerto", r.Description())
	assert.True(t, strings.HasSuffix(r.Description(), ", desayuno incluido, transporte al aeropuerto"))
	assert.Equal(t, []Service{ServiceBreakfast, ServiceAirportTransport}, r.Services())

	reversed := Decorate(New(standardRoom(t)), []string{"airport_transport", "breakfast"})
	assert.Equal(t, ", transporte al aeropuerto, desayuno incluido", reversed.Description())
	assert.Equal(t, int64(420000), reversed.Cost())
}

func TestDecorate_UnknownServicesAreIgnored(t *testing.T) {
	plain := Decorate(New(standardRoom(t)), []string{"breakfast"})
	noisy := Decorate(New(standardRoom(t)), []string{"spa", "breakfast", "Breakfast", ""})

	assert.Equal(t, plain.Cost(), noisy.Cost())
	assert.Equal(t, plain.Description(), noisy.Description())
	assert.Equal(t, plain.Services(), noisy.Services())
}

func TestDecorate_RepeatedServiceStacks(t *testing.T) {
	r := Decorate(New(standardRoom(t)), []string{"breakfast", "breakfast"})

	assert.Equal(t, int64(400000), r.Cost())
	assert.Equal(t, ", desayuno incluido, desayuno incluido", r.Description())
}

func TestWith_DoesNotMutateInner(t *testing.T) {
	base := New(standardRoom(t))
	decorated := base.With(ServiceAirportTransport)

	assert.Equal(t, int64(300000), base.Cost())
	assert.Equal(t, int64(370000), decorated.Cost())
	assert.Same(t, decorated, decorated.With("minibar"))
	assert.Equal(t, "Habitación Estándar", decorated.Room().Description())
}

func TestBaseDescription_WithOwnServices(t *testing.T) {
	r := New(standardRoom(t))
	r.services = []string{"vista al mar", "cama king"}

	assert.Equal(t, "Habitación Estándar con vista al mar, cama king", r.Description())
	assert.Equal(t, "Habitación Estándar con vista al mar, cama king, desayuno incluido", r.With(ServiceBreakfast).Description())
}

func TestParseService(t *testing.T) {
	svc, ok := ParseService("airport_transport")
	require.True(t, ok)
	assert.Equal(t, int64(70000), svc.Charge())
	assert.Equal(t, ", transporte al aeropuerto", svc.Suffix())

	_, ok = ParseService("laundry")
	assert.False(t, ok)
}
