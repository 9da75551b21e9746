package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"hotel-backend/services"
	"hotel-backend/storage"
	"hotel-backend/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// respondError maps registry and store sentinel errors onto HTTP status codes.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		utils.JSONError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrDuplicate):
		utils.JSONError(c, http.StatusConflict, err.Error())
	case errors.Is(err, services.ErrInvalidInput):
		utils.JSONError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, storage.ErrNotLoaded):
		utils.JSONError(c, http.StatusServiceUnavailable, err.Error())
	default:
		requestLogger(c).Error("request failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "internal error")
	}
}

func respondBindError(c *gin.Context, err error) {
	utils.JSONError(c, http.StatusBadRequest, "invalid request body: "+err.Error())
}

// requestLogger returns the logger stored by middleware.Logger.
func requestLogger(c *gin.Context) *zap.Logger {
	if l, ok := c.Get("logger"); ok {
		if logger, ok := l.(*zap.Logger); ok {
			return logger
		}
	}
	return utils.GetLogger()
}

func intParam(c *gin.Context, name string) (int, bool) {
	n, err := strconv.Atoi(c.Param(name))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, name+" must be a number")
		return 0, false
	}
	return n, true
}
