package ginserver

import (
	"errors"
	"fmt"
	"net/http"

	gin "github.com/gin-gonic/gin"

	"hotelbooking/internal/app/commands"
	"hotelbooking/internal/app/queries"
	domainavailability "hotelbooking/internal/domain/availability"
	"hotelbooking/internal/infra/validation"
)

func writeError(c *gin.Context, err error) {
	if noRoom, ok := domainavailability.AsNoAvailability(err); ok {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     fmt.Sprintf("No hay disponibilidad para el tipo de habitación: %s.", noRoom.RoomType),
			"room_type": noRoom.RoomType.String(),
		})
		return
	}
	if verr, ok := validation.AsError(err); ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "fields": verr.Fields})
		return
	}
	switch {
	case errors.Is(err, commands.ErrNilBus), errors.Is(err, queries.ErrNilBus),
		errors.Is(err, commands.ErrHandlerNotFound), errors.Is(err, queries.ErrHandlerNotFound):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
