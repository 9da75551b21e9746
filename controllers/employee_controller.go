package controllers

import (
	"net/http"

	"hotel-backend/models"
	"hotel-backend/services"
	"hotel-backend/utils"

	"github.com/gin-gonic/gin"
)

type EmployeeController struct {
	Hotel *services.HotelService
}

func NewEmployeeController(hotel *services.HotelService) *EmployeeController {
	return &EmployeeController{Hotel: hotel}
}

type EvaluationPayload struct {
	Rating  float64 `json:"rating" binding:"required"`
	Comment string  `json:"comment"`
}

type AssignRoomPayload struct {
	RoomNumber int `json:"room_number" binding:"required,gt=0"`
}

func (ctrl *EmployeeController) GetEmployees(c *gin.Context) {
	utils.JSONList(c, ctrl.Hotel.EmployeeViews())
}

func (ctrl *EmployeeController) GetEmployee(c *gin.Context) {
	e, err := ctrl.Hotel.EmployeeView(c.Param("code"))
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, e)
}

func (ctrl *EmployeeController) CreateEmployee(c *gin.Context) {
	var payload models.EmployeeRecord
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBindError(c, err)
		return
	}
	e, err := ctrl.Hotel.CreateEmployee(payload)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, services.NewEmployeeView(e))
}

// AddEvaluation records a 1-5 rating; anything else is a 400.
func (ctrl *EmployeeController) AddEvaluation(c *gin.Context) {
	var payload EvaluationPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBindError(c, err)
		return
	}
	code := c.Param("code")
	if err := ctrl.Hotel.RecordEvaluation(code, payload.Rating, payload.Comment); err != nil {
		respondError(c, err)
		return
	}
	ctrl.respondEmployee(c, code)
}

// AssignRoom adds a room to a housekeeper's list.
func (ctrl *EmployeeController) AssignRoom(c *gin.Context) {
	var payload AssignRoomPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBindError(c, err)
		return
	}
	code := c.Param("code")
	if err := ctrl.Hotel.AssignRoomToHousekeeper(code, payload.RoomNumber); err != nil {
		respondError(c, err)
		return
	}
	ctrl.respondEmployee(c, code)
}

// ApplyOccupancyBonus refreshes every manager's occupancy bonus.
func (ctrl *EmployeeController) ApplyOccupancyBonus(c *gin.Context) {
	pct := ctrl.Hotel.ApplyOccupancyBonus()
	utils.JSONSuccess(c, http.StatusOK, gin.H{"occupancy_pct": pct})
}

func (ctrl *EmployeeController) respondEmployee(c *gin.Context, code string) {
	e, err := ctrl.Hotel.EmployeeView(code)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, e)
}
