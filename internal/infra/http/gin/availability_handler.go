package ginserver

import (
	"net/http"

	gin "github.com/gin-gonic/gin"

	"hotelbooking/internal/app/dto"
	reservationapp "hotelbooking/internal/app/handlers/reservations"
	"hotelbooking/internal/app/queries"
)

type AvailabilityHandler struct {
	Queries queries.Bus
}

func (h AvailabilityHandler) Check(c *gin.Context) {
	query := reservationapp.CheckAvailabilityQuery{RoomType: c.Param("room_type")}
	result, err := queries.Ask[reservationapp.CheckAvailabilityQuery, dto.Availability](c.Request.Context(), h.Queries, query)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h AvailabilityHandler) Inventory(c *gin.Context) {
	result, err := queries.Ask[reservationapp.ListInventoryQuery, dto.Inventory](c.Request.Context(), h.Queries, reservationapp.ListInventoryQuery{})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

var _ AvailabilityHTTP = AvailabilityHandler{}
