package controllers

import (
	"net/http"
	"strconv"
	"time"

	"hotel-backend/services"
	"hotel-backend/utils"

	"github.com/gin-gonic/gin"
)

type ReportController struct {
	Reports      *services.ReportService
	Reservations *services.ReservationService
}

func NewReportController(reports *services.ReportService, reservations *services.ReservationService) *ReportController {
	return &ReportController{Reports: reports, Reservations: reservations}
}

func (ctrl *ReportController) Occupancy(c *gin.Context) {
	utils.JSONSuccess(c, http.StatusOK, ctrl.Reports.OccupancyDetail())
}

func (ctrl *ReportController) Revenue(c *gin.Context) {
	utils.JSONSuccess(c, http.StatusOK, ctrl.Reports.RevenuePotential())
}

func (ctrl *ReportController) Payroll(c *gin.Context) {
	total := ctrl.Reports.PayrollTotal()
	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"total":     total.Round(2),
		"formatted": utils.FormatMoney(total),
	})
}

func (ctrl *ReportController) Financial(c *gin.Context) {
	utils.JSONSuccess(c, http.StatusOK, ctrl.Reports.FinancialReport())
}

func (ctrl *ReportController) Staff(c *gin.Context) {
	utils.JSONSuccess(c, http.StatusOK, ctrl.Reports.StaffReport())
}

func (ctrl *ReportController) Services(c *gin.Context) {
	utils.JSONSuccess(c, http.StatusOK, ctrl.Reports.ServicesReport())
}

// OccupancyByDate needs ?date=YYYY-MM-DD.
func (ctrl *ReportController) OccupancyByDate(c *gin.Context) {
	report, err := ctrl.Reservations.OccupancyOn(c.Query("date"))
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, report)
}

// Monthly defaults to the current month and year.
func (ctrl *ReportController) Monthly(c *gin.Context) {
	now := time.Now()
	month, year := int(now.Month()), now.Year()

	if raw := c.Query("month"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "month must be a number")
			return
		}
		month = n
	}
	if raw := c.Query("year"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "year must be a number")
			return
		}
		year = n
	}

	report, err := ctrl.Reservations.MonthlyReport(month, year)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, report)
}
