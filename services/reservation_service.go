package services

import (
	"fmt"
	"strings"
	"time"

	"hotel-backend/models"

	"github.com/shopspring/decimal"
)

// ReservationService answers reservation queries over the shared registry.
type ReservationService struct {
	Hotel *HotelService
}

func NewReservationService(hotel *HotelService) *ReservationService {
	return &ReservationService{Hotel: hotel}
}

func (s *ReservationService) FindByCode(code string) (ReservationView, error) {
	return s.Hotel.ReservationView(code)
}

// SearchByGuest matches name case-insensitively as a substring of any guest,
// the individual guest or the group name.
func (s *ReservationService) SearchByGuest(name string) []ReservationView {
	needle := strings.ToLower(strings.TrimSpace(name))

	s.Hotel.mu.RLock()
	defer s.Hotel.mu.RUnlock()

	out := []ReservationView{}
	for _, r := range s.Hotel.reservations {
		if matchesGuest(r, needle) {
			out = append(out, NewReservationView(r))
		}
	}
	return out
}

func matchesGuest(r models.Reservation, needle string) bool {
	contains := func(s string) bool { return strings.Contains(strings.ToLower(s), needle) }
	for _, g := range r.Guests() {
		if contains(g) {
			return true
		}
	}
	switch v := r.(type) {
	case *models.IndividualReservation:
		return contains(v.Guest)
	case *models.GroupReservation:
		return contains(v.GroupName)
	}
	return false
}

// DateOccupancy is the share of rooms held by reservations covering a date.
type DateOccupancy struct {
	Date          string          `json:"date"`
	OccupiedRooms int             `json:"occupied_rooms"`
	TotalRooms    int             `json:"total_rooms"`
	Percentage    decimal.Decimal `json:"percentage"`
}

// OccupancyOn counts rooms whose reservation runs from start to end
// inclusive of date. Reservations with unparseable dates are ignored.
func (s *ReservationService) OccupancyOn(date string) (DateOccupancy, error) {
	day, err := time.Parse(models.DateLayout, date)
	if err != nil {
		return DateOccupancy{}, fmt.Errorf("date %q: %w", date, ErrInvalidInput)
	}

	s.Hotel.mu.RLock()
	defer s.Hotel.mu.RUnlock()

	occupied := 0
	for _, r := range s.Hotel.reservations {
		if covers(r, day) {
			occupied += len(r.Rooms())
		}
	}
	total := len(s.Hotel.rooms)
	if occupied > total {
		occupied = total
	}
	return DateOccupancy{
		Date:          date,
		OccupiedRooms: occupied,
		TotalRooms:    total,
		Percentage:    percent(occupied, total),
	}, nil
}

func covers(r models.Reservation, day time.Time) bool {
	start, err := time.Parse(models.DateLayout, r.StartDate())
	if err != nil {
		return false
	}
	end, err := time.Parse(models.DateLayout, r.EndDate())
	if err != nil {
		return false
	}
	return !day.Before(start) && !day.After(end)
}

func (s *ReservationService) Cancel(code string) (string, error) {
	return s.Hotel.CancelReservation(code)
}

// MonthlyReport lists the reservations starting in the given month.
type MonthlyReport struct {
	Month        int               `json:"month"`
	Year         int               `json:"year"`
	Count        int               `json:"count"`
	Revenue      decimal.Decimal   `json:"revenue"`
	Reservations []ReservationView `json:"reservations"`
}

func (s *ReservationService) MonthlyReport(month, year int) (MonthlyReport, error) {
	if month < 1 || month > 12 {
		return MonthlyReport{}, fmt.Errorf("month %d: %w", month, ErrInvalidInput)
	}

	s.Hotel.mu.RLock()
	defer s.Hotel.mu.RUnlock()

	report := MonthlyReport{Month: month, Year: year, Revenue: decimal.Zero, Reservations: []ReservationView{}}
	for _, r := range s.Hotel.reservations {
		start, err := time.Parse(models.DateLayout, r.StartDate())
		if err != nil {
			continue
		}
		if int(start.Month()) == month && start.Year() == year {
			report.Reservations = append(report.Reservations, NewReservationView(r))
			report.Revenue = report.Revenue.Add(r.TotalCost())
		}
	}
	report.Count = len(report.Reservations)
	report.Revenue = report.Revenue.Round(2)
	return report, nil
}

// Active lists reservations whose date range contains now.
func (s *ReservationService) Active(now time.Time) []ReservationView {
	today, _ := time.Parse(models.DateLayout, now.Format(models.DateLayout))

	s.Hotel.mu.RLock()
	defer s.Hotel.mu.RUnlock()

	out := []ReservationView{}
	for _, r := range s.Hotel.reservations {
		if covers(r, today) {
			out = append(out, NewReservationView(r))
		}
	}
	return out
}
