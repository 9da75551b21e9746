package controllers

import (
	"net/http"
	"time"

	"hotel-backend/models"
	"hotel-backend/services"
	"hotel-backend/utils"

	"github.com/gin-gonic/gin"
)

type ReservationController struct {
	Hotel        *services.HotelService
	Reservations *services.ReservationService
}

func NewReservationController(hotel *services.HotelService, reservations *services.ReservationService) *ReservationController {
	return &ReservationController{Hotel: hotel, Reservations: reservations}
}

// GetReservations lists every reservation, or those matching ?guest=.
func (ctrl *ReservationController) GetReservations(c *gin.Context) {
	if guest := c.Query("guest"); guest != "" {
		utils.JSONList(c, ctrl.Reservations.SearchByGuest(guest))
		return
	}
	utils.JSONList(c, ctrl.Hotel.ReservationViews())
}

func (ctrl *ReservationController) GetActiveReservations(c *gin.Context) {
	utils.JSONList(c, ctrl.Reservations.Active(time.Now()))
}

func (ctrl *ReservationController) GetReservation(c *gin.Context) {
	r, err := ctrl.Reservations.FindByCode(c.Param("code"))
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, r)
}

// ----------------------------------------------------
// POST /api/reservations
// ----------------------------------------------------

// CreateReservation accepts any of the four variants; "type" selects it and
// only the fields of that variant are read.
func (ctrl *ReservationController) CreateReservation(c *gin.Context) {
	var payload models.ReservationRecord
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBindError(c, err)
		return
	}

	r, err := ctrl.Hotel.CreateReservation(payload)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, services.NewReservationView(r))
}

// ----------------------------------------------------
// DELETE /api/reservations/:code
// ----------------------------------------------------

func (ctrl *ReservationController) CancelReservation(c *gin.Context) {
	code := c.Param("code")
	policy, err := ctrl.Reservations.Cancel(code)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"code":                code,
		"cancellation_policy": policy,
	})
}
