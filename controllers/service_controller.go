package controllers

import (
	"net/http"

	"hotel-backend/models"
	"hotel-backend/services"
	"hotel-backend/utils"

	"github.com/gin-gonic/gin"
)

// ServiceController handles guest service requests (restaurant, spa,
// laundry, room service).
type ServiceController struct {
	Hotel *services.HotelService
}

func NewServiceController(hotel *services.HotelService) *ServiceController {
	return &ServiceController{Hotel: hotel}
}

func (ctrl *ServiceController) GetServices(c *gin.Context) {
	utils.JSONList(c, ctrl.Hotel.ServiceViews())
}

func (ctrl *ServiceController) GetService(c *gin.Context) {
	s, err := ctrl.Hotel.ServiceView(c.Param("code"))
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, s)
}

func (ctrl *ServiceController) CreateService(c *gin.Context) {
	var payload models.ServiceRecord
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBindError(c, err)
		return
	}

	s, err := ctrl.Hotel.CreateServiceRequest(payload)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, services.NewServiceView(s))
}
