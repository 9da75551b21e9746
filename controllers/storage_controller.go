package controllers

import (
	"net/http"

	"hotel-backend/services"
	"hotel-backend/storage"
	"hotel-backend/utils"

	"github.com/gin-gonic/gin"
)

type StorageController struct {
	Hotel *services.HotelService
	Store storage.Store
}

func NewStorageController(hotel *services.HotelService, store storage.Store) *StorageController {
	return &StorageController{Hotel: hotel, Store: store}
}

// Save writes the current registry snapshot to the configured store.
func (ctrl *StorageController) Save(c *gin.Context) {
	snap := ctrl.Hotel.Snapshot()
	if err := ctrl.Store.Save(c.Request.Context(), snap); err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"rooms":        len(snap.Rooms),
		"reservations": len(snap.Reservations),
		"services":     len(snap.Services),
		"employees":    len(snap.Employees),
	})
}

func (ctrl *StorageController) Info(c *gin.Context) {
	info, err := ctrl.Store.Info(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, info)
}
