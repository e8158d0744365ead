package ginserver

import (
	"net/http"

	gin "github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"hotelbooking/internal/app/commands"
	"hotelbooking/internal/app/dto"
	reservationapp "hotelbooking/internal/app/handlers/reservations"
)

type ReservationHandler struct {
	Commands commands.Bus
}

type createReservationRequest struct {
	UserName        string   `json:"user_name"`
	RoomType        string   `json:"room_type"`
	Services        []string `json:"services"`
	PricingStrategy string   `json:"pricing_strategy"`
}

func (h ReservationHandler) Create(c *gin.Context) {
	if h.Commands == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "commands unavailable"})
		return
	}
	var req createReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	cmd := reservationapp.CreateReservationCommand{
		CommandID:       uuid.NewString(),
		GuestName:       req.UserName,
		RoomType:        req.RoomType,
		Services:        req.Services,
		PricingStrategy: req.PricingStrategy,
		IdempotencyKeyV: c.GetHeader("Idempotency-Key"),
	}
	result, err := commands.Dispatch[reservationapp.CreateReservationCommand, *dto.ReservationConfirmation](c.Request.Context(), h.Commands, cmd)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

var _ ReservationHTTP = ReservationHandler{}
