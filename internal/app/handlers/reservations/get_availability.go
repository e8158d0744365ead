package reservations

import (
	"context"

	"hotelbooking/internal/app/dto"
	"hotelbooking/internal/app/queries"
	reservationsvc "hotelbooking/internal/app/services/reservation"
	domainavailability "hotelbooking/internal/domain/availability"
	domainrooms "hotelbooking/internal/domain/rooms"
)

const (
	checkAvailabilityKey = "availability.check"
	listInventoryKey     = "availability.inventory"
)

type CheckAvailabilityQuery struct {
	RoomType string
}

func (q CheckAvailabilityQuery) Key() string { return checkAvailabilityKey }

type CheckAvailabilityHandler struct {
	Service *reservationsvc.Service
}

// Handle never fails for unknown room types; they are reported unavailable.
func (h *CheckAvailabilityHandler) Handle(ctx context.Context, q CheckAvailabilityQuery) (dto.Availability, error) {
	if h.Service == nil {
		return dto.Availability{}, ErrServiceRequired
	}
	return dto.Availability{
		RoomType:  q.RoomType,
		Available: h.Service.CheckAvailability(domainrooms.RoomType(q.RoomType)),
	}, nil
}

type ListInventoryQuery struct{}

func (q ListInventoryQuery) Key() string { return listInventoryKey }

type ListInventoryHandler struct {
	Ledger *domainavailability.Ledger
}

func (h *ListInventoryHandler) Handle(ctx context.Context, _ ListInventoryQuery) (dto.Inventory, error) {
	if h.Ledger == nil {
		return dto.Inventory{}, ErrServiceRequired
	}
	return dto.MapInventory(h.Ledger.Snapshot()), nil
}

var (
	_ queries.Handler[CheckAvailabilityQuery, dto.Availability] = (*CheckAvailabilityHandler)(nil)
	_ queries.Handler[ListInventoryQuery, dto.Inventory]        = (*ListInventoryHandler)(nil)
)
