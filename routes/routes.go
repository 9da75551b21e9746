package routes

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"hotel-backend/controllers"
	"hotel-backend/middleware"
)

func parseCorsOrigins(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// SetupRouter wires the controllers onto a gin engine.
func SetupRouter(
	rc *controllers.RoomController,
	resc *controllers.ReservationController,
	sc *controllers.ServiceController,
	ec *controllers.EmployeeController,
	repc *controllers.ReportController,
	stc *controllers.StorageController,
	corsOrigins string,
	log *zap.Logger,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.Logger(log))

	origins := parseCorsOrigins(corsOrigins)
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		rooms := api.Group("/rooms")
		{
			rooms.GET("", rc.GetRooms)
			// static segment before /:number
			rooms.GET("/available", rc.GetAvailableRooms)
			rooms.GET("/:number", rc.GetRoom)
			rooms.PATCH("/:number/status", rc.UpdateRoomStatus)
		}

		reservations := api.Group("/reservations")
		{
			reservations.GET("", resc.GetReservations)
			reservations.GET("/active", resc.GetActiveReservations)
			reservations.GET("/:code", resc.GetReservation)
			reservations.POST("", resc.CreateReservation)
			reservations.DELETE("/:code", resc.CancelReservation)
		}

		svc := api.Group("/services")
		{
			svc.GET("", sc.GetServices)
			svc.GET("/:code", sc.GetService)
			svc.POST("", sc.CreateService)
		}

		employees := api.Group("/employees")
		{
			employees.GET("", ec.GetEmployees)
			employees.POST("", ec.CreateEmployee)
			employees.POST("/occupancy-bonus", ec.ApplyOccupancyBonus)
			employees.GET("/:code", ec.GetEmployee)
			employees.POST("/:code/evaluations", ec.AddEvaluation)
			employees.POST("/:code/rooms", ec.AssignRoom)
		}

		reports := api.Group("/reports")
		{
			reports.GET("/occupancy", repc.Occupancy)
			reports.GET("/occupancy/date", repc.OccupancyByDate)
			reports.GET("/revenue", repc.Revenue)
			reports.GET("/payroll", repc.Payroll)
			reports.GET("/financial", repc.Financial)
			reports.GET("/staff", repc.Staff)
			reports.GET("/services", repc.Services)
			reports.GET("/monthly", repc.Monthly)
		}

		store := api.Group("/storage")
		{
			store.POST("/save", stc.Save)
			store.GET("/info", stc.Info)
		}
	}

	return r
}
