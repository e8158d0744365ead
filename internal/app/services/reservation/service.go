package reservation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	domainavailability "hotelbooking/internal/domain/availability"
	domainnotification "hotelbooking/internal/domain/notification"
	domainpricing "hotelbooking/internal/domain/pricing"
	domainreservation "hotelbooking/internal/domain/reservation"
	domainrooms "hotelbooking/internal/domain/rooms"
	"hotelbooking/internal/domain/shared/money"
)

var ErrServiceNotConfigured = errors.New("reservation: service dependencies missing")

// Service drives a reservation through the availability gate, room
// construction, decoration, pricing and notification.
type Service struct {
	Ledger *domainavailability.Ledger
	Hub    *domainnotification.Hub
	Logger *slog.Logger
}

type CreateParams struct {
	Guest    string
	RoomType domainrooms.RoomType
	Services []string
	Strategy domainpricing.StrategyKind
}

type Result struct {
	Reservation *domainreservation.Reservation
	Price       domainpricing.Breakdown
}

// FinalPrice is the adjusted total the guest pays.
func (r Result) FinalPrice() float64 { return r.Price.Total }

// CheckAvailability reports whether the room type can currently be booked.
func (s *Service) CheckAvailability(roomType domainrooms.RoomType) bool {
	if s.Ledger == nil {
		return false
	}
	return s.Ledger.CheckAvailability(roomType)
}

// CreateReservation books one room and returns the composed reservation with
// its final price. A room taken from the ledger is never given back, even if
// a later step fails.
func (s *Service) CreateReservation(ctx context.Context, params CreateParams) (*Result, error) {
	if s.Ledger == nil || s.Hub == nil {
		return nil, ErrServiceNotConfigured
	}
	logger := s.logger()

	if !s.Ledger.BookRoom(params.RoomType) {
		logger.InfoContext(ctx, "reservation rejected", "room_type", params.RoomType, "guest", params.Guest)
		return nil, &domainavailability.NoAvailabilityError{RoomType: params.RoomType}
	}

	room, err := domainrooms.CreateRoom(params.RoomType)
	if err != nil {
		logger.ErrorContext(ctx, "room booked for a type missing from the catalog", "room_type", params.RoomType, "error", err)
		return nil, fmt.Errorf("build room: %w", err)
	}

	res := domainreservation.Decorate(domainreservation.New(room), params.Services)
	quote := domainpricing.Quote(params.Strategy, res.Cost())

	message := ConfirmationNotice(params.Guest, res.Description(), quote.Total)
	if err := s.Hub.NotifyAll(ctx, message); err != nil {
		return nil, fmt.Errorf("broadcast confirmation: %w", err)
	}

	logger.InfoContext(ctx, "reservation completed",
		"room_type", params.RoomType,
		"guest", params.Guest,
		"subtotal", quote.Subtotal,
		"strategy", quote.Strategy.String(),
		"final_price", quote.Total,
		"remaining", s.Ledger.Remaining(params.RoomType),
	)
	return &Result{Reservation: res, Price: quote}, nil
}

// ConfirmationNotice is the text broadcast to subscribers after a booking.
func ConfirmationNotice(guest, description string, price float64) string {
	return fmt.Sprintf("Reserva confirmada para %s: %s. Precio: %s.", guest, description, money.Must(price, money.DefaultCurrency))
}

// ConfirmationMessage is the text returned to the caller who booked.
func ConfirmationMessage(guest, description string) string {
	return fmt.Sprintf("Reserva confirmada para %s. Descripción: %s", guest, description)
}

func (s *Service) logger() *slog.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return slog.Default()
}
