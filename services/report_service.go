package services

import (
	"sort"

	"hotel-backend/models"

	"github.com/shopspring/decimal"
)

// ReportService rolls the registry up into occupancy, revenue, payroll and
// staff figures. Every report reads one consistent snapshot under the read
// lock and never mutates.
type ReportService struct {
	Hotel *HotelService
}

func NewReportService(hotel *HotelService) *ReportService {
	return &ReportService{Hotel: hotel}
}

// OccupancyRow tallies one room variant. Total always equals the sum of
// the four status counts.
type OccupancyRow struct {
	Type        models.RoomKind `json:"type"`
	Total       int             `json:"total"`
	Available   int             `json:"available"`
	Occupied    int             `json:"occupied"`
	Cleaning    int             `json:"cleaning"`
	Maintenance int             `json:"maintenance"`
}

// OccupancyReport groups rooms by variant in the fixed variant order.
// Variants with no rooms are left out.
func (s *ReportService) OccupancyReport() []OccupancyRow {
	s.Hotel.mu.RLock()
	defer s.Hotel.mu.RUnlock()
	return occupancyRows(s.Hotel.rooms)
}

func occupancyRows(rooms []models.Room) []OccupancyRow {
	rows := []OccupancyRow{}
	for _, kind := range models.RoomKinds {
		row := OccupancyRow{Type: kind}
		for _, r := range rooms {
			if r.Kind() != kind {
				continue
			}
			switch r.Status() {
			case models.StatusAvailable:
				row.Available++
			case models.StatusOccupied:
				row.Occupied++
			case models.StatusCleaning:
				row.Cleaning++
			case models.StatusMaintenance:
				row.Maintenance++
			default:
				continue
			}
			row.Total++
		}
		if row.Total > 0 {
			rows = append(rows, row)
		}
	}
	return rows
}

type OccupancyDetailRow struct {
	OccupancyRow
	AvailablePct   decimal.Decimal `json:"available_pct"`
	OccupiedPct    decimal.Decimal `json:"occupied_pct"`
	CleaningPct    decimal.Decimal `json:"cleaning_pct"`
	MaintenancePct decimal.Decimal `json:"maintenance_pct"`
}

// OccupancyDetail adds per-status percentages, rounded to two places.
func (s *ReportService) OccupancyDetail() []OccupancyDetailRow {
	rows := s.OccupancyReport()
	out := make([]OccupancyDetailRow, 0, len(rows))
	for _, row := range rows {
		out = append(out, OccupancyDetailRow{
			OccupancyRow:   row,
			AvailablePct:   percent(row.Available, row.Total),
			OccupiedPct:    percent(row.Occupied, row.Total),
			CleaningPct:    percent(row.Cleaning, row.Total),
			MaintenancePct: percent(row.Maintenance, row.Total),
		})
	}
	return out
}

// TypeAmount is a money figure for one variant.
type TypeAmount struct {
	Type   string          `json:"type"`
	Amount decimal.Decimal `json:"amount"`
}

type RevenueReport struct {
	ByType  []TypeAmount    `json:"by_type"`
	Daily   decimal.Decimal `json:"daily"`
	Monthly decimal.Decimal `json:"monthly"`
}

// RevenuePotential sums the nightly rate of every room per variant,
// regardless of status. Monthly is thirty nights of the daily total.
func (s *ReportService) RevenuePotential() RevenueReport {
	s.Hotel.mu.RLock()
	defer s.Hotel.mu.RUnlock()
	return revenuePotential(s.Hotel.rooms)
}

func revenuePotential(rooms []models.Room) RevenueReport {
	report := RevenueReport{ByType: []TypeAmount{}, Daily: decimal.Zero}
	for _, kind := range models.RoomKinds {
		sum, seen := decimal.Zero, false
		for _, r := range rooms {
			if r.Kind() == kind {
				sum = sum.Add(r.NightlyRate())
				seen = true
			}
		}
		if !seen {
			continue
		}
		report.ByType = append(report.ByType, TypeAmount{Type: string(kind), Amount: sum.Round(2)})
		report.Daily = report.Daily.Add(sum)
	}
	report.Monthly = report.Daily.Mul(decimal.NewFromInt(30)).Round(2)
	report.Daily = report.Daily.Round(2)
	return report
}

// PayrollTotal is the sum of every employee's monthly salary.
func (s *ReportService) PayrollTotal() decimal.Decimal {
	s.Hotel.mu.RLock()
	defer s.Hotel.mu.RUnlock()
	return payrollTotal(s.Hotel.employees)
}

func payrollTotal(employees []models.Employee) decimal.Decimal {
	total := decimal.Zero
	for _, e := range employees {
		total = total.Add(e.MonthlySalary())
	}
	return total
}

type FinancialReport struct {
	PotentialDaily     decimal.Decimal `json:"potential_daily"`
	PotentialMonthly   decimal.Decimal `json:"potential_monthly"`
	ReservationRevenue decimal.Decimal `json:"reservation_revenue"`
	Payroll            decimal.Decimal `json:"payroll"`
	EstimatedMargin    decimal.Decimal `json:"estimated_margin"`
}

// FinancialReport sets the monthly potential against payroll.
func (s *ReportService) FinancialReport() FinancialReport {
	s.Hotel.mu.RLock()
	defer s.Hotel.mu.RUnlock()

	revenue := revenuePotential(s.Hotel.rooms)
	payroll := payrollTotal(s.Hotel.employees)
	booked := decimal.Zero
	for _, r := range s.Hotel.reservations {
		booked = booked.Add(r.TotalCost())
	}
	return FinancialReport{
		PotentialDaily:     revenue.Daily,
		PotentialMonthly:   revenue.Monthly,
		ReservationRevenue: booked.Round(2),
		Payroll:            payroll.Round(2),
		EstimatedMargin:    revenue.Monthly.Sub(payroll).Round(2),
	}
}

type RoleSummary struct {
	Type        string          `json:"type"`
	Count       int             `json:"count"`
	SalaryTotal decimal.Decimal `json:"salary_total"`
}

type ShiftCount struct {
	Shift string `json:"shift"`
	Count int    `json:"count"`
}

type StaffReport struct {
	TotalEmployees int           `json:"total_employees"`
	ByRole         []RoleSummary `json:"by_role"`
	ByShift        []ShiftCount  `json:"by_shift"`
}

// StaffReport counts employees and salaries per role and headcount per
// shift. Shifts appear in order of first occurrence.
func (s *ReportService) StaffReport() StaffReport {
	s.Hotel.mu.RLock()
	defer s.Hotel.mu.RUnlock()

	report := StaffReport{TotalEmployees: len(s.Hotel.employees), ByRole: []RoleSummary{}, ByShift: []ShiftCount{}}
	for _, kind := range models.EmployeeKinds {
		row := RoleSummary{Type: string(kind), SalaryTotal: decimal.Zero}
		for _, e := range s.Hotel.employees {
			if e.Kind() == kind {
				row.Count++
				row.SalaryTotal = row.SalaryTotal.Add(e.MonthlySalary())
			}
		}
		if row.Count > 0 {
			row.SalaryTotal = row.SalaryTotal.Round(2)
			report.ByRole = append(report.ByRole, row)
		}
	}

	index := map[string]int{}
	for _, e := range s.Hotel.employees {
		i, ok := index[e.Shift()]
		if !ok {
			i = len(report.ByShift)
			index[e.Shift()] = i
			report.ByShift = append(report.ByShift, ShiftCount{Shift: e.Shift()})
		}
		report.ByShift[i].Count++
	}
	return report
}

type ServiceTypeSummary struct {
	Type    string          `json:"type"`
	Count   int             `json:"count"`
	Revenue decimal.Decimal `json:"revenue"`
}

type ServiceCost struct {
	Code string          `json:"code"`
	Name string          `json:"name"`
	Cost decimal.Decimal `json:"cost"`
}

type ServicesReport struct {
	TotalServices int                  `json:"total_services"`
	ByType        []ServiceTypeSummary `json:"by_type"`
	MostExpensive []ServiceCost        `json:"most_expensive"`
}

// ServicesReport counts requests and revenue per variant and lists the
// five most expensive requests. Ties keep registration order.
func (s *ReportService) ServicesReport() ServicesReport {
	s.Hotel.mu.RLock()
	defer s.Hotel.mu.RUnlock()

	services := s.Hotel.services
	report := ServicesReport{TotalServices: len(services), ByType: []ServiceTypeSummary{}}
	for _, kind := range models.ServiceKinds {
		row := ServiceTypeSummary{Type: string(kind), Revenue: decimal.Zero}
		for _, sr := range services {
			if sr.Kind() == kind {
				row.Count++
				row.Revenue = row.Revenue.Add(sr.Cost())
			}
		}
		if row.Count > 0 {
			row.Revenue = row.Revenue.Round(2)
			report.ByType = append(report.ByType, row)
		}
	}

	costs := make([]ServiceCost, 0, len(services))
	for _, sr := range services {
		costs = append(costs, ServiceCost{Code: sr.Code(), Name: sr.Name(), Cost: sr.Cost().Round(2)})
	}
	sort.SliceStable(costs, func(i, j int) bool { return costs[i].Cost.GreaterThan(costs[j].Cost) })
	if len(costs) > 5 {
		costs = costs[:5]
	}
	report.MostExpensive = costs
	return report
}
