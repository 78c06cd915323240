package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ReservationController is a placeholder until booking rules exist.
type ReservationController struct{}

func NewReservationController() *ReservationController {
	return &ReservationController{}
}

// New handles GET/POST /reservations/:id. The id is accepted but unused;
// nothing is validated or stored.
func (ctrl *ReservationController) New(c *gin.Context) {
	c.String(http.StatusOK, "new reservation")
}
