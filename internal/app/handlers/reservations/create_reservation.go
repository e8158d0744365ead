package reservations

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"hotelbooking/internal/app/commands"
	"hotelbooking/internal/app/dto"
	"hotelbooking/internal/app/middleware"
	"hotelbooking/internal/app/policies"
	reservationsvc "hotelbooking/internal/app/services/reservation"
	domainavailability "hotelbooking/internal/domain/availability"
	domainnotification "hotelbooking/internal/domain/notification"
	domainpricing "hotelbooking/internal/domain/pricing"
	domainrooms "hotelbooking/internal/domain/rooms"
	"hotelbooking/internal/domain/shared/money"
)

const createReservationKey = "reservations.create"

const errorCodeNoAvailability = "no_availability"

type CreateReservationCommand struct {
	CommandID       string
	GuestName       string   `validate:"required,max=120" label:"user_name"`
	RoomType        string   `validate:"required,max=64" label:"room_type"`
	Services        []string `validate:"max=32" label:"services"`
	PricingStrategy string
	IdempotencyKeyV string
}

func (c CreateReservationCommand) Key() string { return createReservationKey }

func (c CreateReservationCommand) IdempotencyKey() string { return c.IdempotencyKeyV }

func (c CreateReservationCommand) ResultPrototype() any { return &dto.ReservationConfirmation{} }

func (c CreateReservationCommand) ErrorCode(err error) string {
	if _, ok := domainavailability.AsNoAvailability(err); ok {
		return errorCodeNoAvailability
	}
	return ""
}

func (c CreateReservationCommand) RestoreError(code, message string) error {
	if code == errorCodeNoAvailability {
		return &domainavailability.NoAvailabilityError{RoomType: domainrooms.RoomType(c.RoomType)}
	}
	return errors.New(message)
}

type CreateReservationHandler struct {
	Service  *reservationsvc.Service
	Hub      *domainnotification.Hub
	Notifier policies.Notifier
}

var ErrServiceRequired = errors.New("reservations: service required")

// Handle registers the guest as a subscriber and then runs the reservation.
// The registration stays even when the booking is rejected.
func (h *CreateReservationHandler) Handle(ctx context.Context, cmd CreateReservationCommand) (*dto.ReservationConfirmation, error) {
	if h.Service == nil || h.Hub == nil {
		return nil, ErrServiceRequired
	}
	h.Hub.AddObserver(reservationsvc.NewGuest(cmd.GuestName, h.Notifier))

	strategy, _ := domainpricing.ParseStrategy(cmd.PricingStrategy)
	result, err := h.Service.CreateReservation(ctx, reservationsvc.CreateParams{
		Guest:    cmd.GuestName,
		RoomType: domainrooms.RoomType(cmd.RoomType),
		Services: cmd.Services,
		Strategy: strategy,
	})
	if err != nil {
		return nil, err
	}

	res := result.Reservation
	services := make([]string, 0, len(cmd.Services))
	for _, svc := range res.Services() {
		services = append(services, string(svc))
	}
	return &dto.ReservationConfirmation{
		ReservationID:   uuid.NewString(),
		Message:         reservationsvc.ConfirmationMessage(cmd.GuestName, res.Description()),
		FinalPrice:      result.FinalPrice(),
		RoomType:        res.Room().Type().String(),
		Description:     res.Description(),
		Services:        services,
		Subtotal:        result.Price.Subtotal,
		PricingStrategy: result.Price.Strategy.String(),
		Currency:        money.DefaultCurrency,
	}, nil
}

var (
	_ commands.Handler[CreateReservationCommand, *dto.ReservationConfirmation] = (*CreateReservationHandler)(nil)
	_ middleware.IdempotentCommand                                            = CreateReservationCommand{}
	_ middleware.ErrorCoder                                                   = CreateReservationCommand{}
)
