package controllers

import (
	"net/http"

	"hotel-backend/models"
	"hotel-backend/services"
	"hotel-backend/utils"

	"github.com/gin-gonic/gin"
)

type RoomController struct {
	Hotel *services.HotelService
}

func NewRoomController(hotel *services.HotelService) *RoomController {
	return &RoomController{Hotel: hotel}
}

type UpdateRoomStatusPayload struct {
	Status string `json:"status" binding:"required"`
}

// ----------------------------------------------------
// GET /api/rooms?status=&type=
// ----------------------------------------------------

func (ctrl *RoomController) GetRooms(c *gin.Context) {
	var filters []func(models.Room) bool

	if raw := c.Query("status"); raw != "" {
		status, ok := models.ParseRoomStatus(raw)
		if !ok {
			utils.JSONError(c, http.StatusBadRequest, "unknown room status: "+raw)
			return
		}
		filters = append(filters, func(r models.Room) bool { return r.Status() == status })
	}
	if raw := c.Query("type"); raw != "" {
		kind, ok := models.ParseRoomKind(raw)
		if !ok {
			utils.JSONError(c, http.StatusBadRequest, "unknown room type: "+raw)
			return
		}
		filters = append(filters, func(r models.Room) bool { return r.Kind() == kind })
	}

	rooms := ctrl.Hotel.RoomViews(func(r models.Room) bool {
		for _, keep := range filters {
			if !keep(r) {
				return false
			}
		}
		return true
	})
	utils.JSONList(c, rooms)
}

func (ctrl *RoomController) GetAvailableRooms(c *gin.Context) {
	rooms := ctrl.Hotel.RoomViews(func(r models.Room) bool { return r.Status() == models.StatusAvailable })
	utils.JSONList(c, rooms)
}

func (ctrl *RoomController) GetRoom(c *gin.Context) {
	number, ok := intParam(c, "number")
	if !ok {
		return
	}
	room, err := ctrl.Hotel.RoomView(number)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, room)
}

// ----------------------------------------------------
// PATCH /api/rooms/:number/status
// ----------------------------------------------------

func (ctrl *RoomController) UpdateRoomStatus(c *gin.Context) {
	number, ok := intParam(c, "number")
	if !ok {
		return
	}
	var payload UpdateRoomStatusPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBindError(c, err)
		return
	}
	if err := ctrl.Hotel.ChangeRoomStatus(number, payload.Status); err != nil {
		respondError(c, err)
		return
	}
	room, err := ctrl.Hotel.RoomView(number)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, room)
}
