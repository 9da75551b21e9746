package services

import (
	"hotel-backend/models"
	"hotel-backend/utils"

	"github.com/shopspring/decimal"
)

// Views are the JSON shapes handed to controllers: the flat record plus
// the derived figures. They are built under the registry lock so callers
// never touch live entities.

type RoomView struct {
	models.RoomRecord
	NightlyRate decimal.Decimal `json:"nightly_rate"`
	Capacity    int             `json:"capacity"`
	Description string          `json:"description"`
}

func NewRoomView(r models.Room) RoomView {
	return RoomView{
		RoomRecord:  models.NewRoomRecord(r),
		NightlyRate: r.NightlyRate().Round(2),
		Capacity:    r.Capacity(),
		Description: r.Describe(),
	}
}

type ReservationView struct {
	models.ReservationRecord
	Nights             int             `json:"nights"`
	TotalCost          decimal.Decimal `json:"total_cost"`
	TotalLabel         string          `json:"total_label"`
	CancellationPolicy string          `json:"cancellation_policy"`
	Summary            string          `json:"summary"`
	Description        string          `json:"description"`
}

func NewReservationView(r models.Reservation) ReservationView {
	return ReservationView{
		ReservationRecord:  models.NewReservationRecord(r),
		Nights:             r.Nights(),
		TotalCost:          r.TotalCost().Round(2),
		TotalLabel:         utils.FormatAmount(r.TotalCost()),
		CancellationPolicy: r.CancellationPolicy(),
		Summary:            models.Summary(r),
		Description:        r.Describe(),
	}
}

type ServiceView struct {
	models.ServiceRecord
	Cost           decimal.Decimal `json:"cost"`
	Duration       string          `json:"duration"`
	AvailableHours string          `json:"available_hours"`
	Description    string          `json:"description"`
}

func NewServiceView(s models.ServiceRequest) ServiceView {
	v := ServiceView{
		ServiceRecord:  models.NewServiceRecord(s),
		Cost:           s.Cost().Round(2),
		Duration:       s.Duration(),
		AvailableHours: s.AvailableHours(),
		Description:    s.Describe(),
	}
	v.RequestedAt = s.RequestedAt()
	return v
}

type EmployeeView struct {
	models.EmployeeRecord
	MonthlySalary decimal.Decimal `json:"monthly_salary"`
	AssignedTask  string          `json:"assigned_task"`
	Description   string          `json:"description"`
	Tools         []string        `json:"tools,omitempty"`
}

func NewEmployeeView(e models.Employee) EmployeeView {
	v := EmployeeView{
		EmployeeRecord: models.NewEmployeeRecord(e),
		MonthlySalary:  e.MonthlySalary().Round(2),
		AssignedTask:   e.AssignedTask(),
		Description:    e.Describe(),
	}
	if m, ok := e.(*models.MaintenanceTech); ok {
		v.Tools = m.Tools()
	}
	return v
}

// ----------------------------------------------------
// Locked view accessors
// ----------------------------------------------------

// RoomViews lists the rooms matching keep; a nil keep lists all.
func (s *HotelService) RoomViews(keep func(models.Room) bool) []RoomView {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rooms := filterRooms(s.rooms, keep)
	out := make([]RoomView, 0, len(rooms))
	for _, r := range rooms {
		out = append(out, NewRoomView(r))
	}
	return out
}

func (s *HotelService) RoomView(number int) (RoomView, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.findRoomLocked(number)
	if !ok {
		return RoomView{}, ErrNotFound
	}
	return NewRoomView(r), nil
}

func (s *HotelService) ReservationViews() []ReservationView {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]ReservationView, 0, len(s.reservations))
	for _, r := range s.reservations {
		out = append(out, NewReservationView(r))
	}
	return out
}

func (s *HotelService) ReservationView(code string) (ReservationView, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.findReservationLocked(code)
	if !ok {
		return ReservationView{}, ErrNotFound
	}
	return NewReservationView(r), nil
}

func (s *HotelService) ServiceViews() []ServiceView {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]ServiceView, 0, len(s.services))
	for _, r := range s.services {
		out = append(out, NewServiceView(r))
	}
	return out
}

func (s *HotelService) ServiceView(code string) (ServiceView, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.findServiceLocked(code)
	if !ok {
		return ServiceView{}, ErrNotFound
	}
	return NewServiceView(r), nil
}

func (s *HotelService) EmployeeViews() []EmployeeView {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]EmployeeView, 0, len(s.employees))
	for _, e := range s.employees {
		out = append(out, NewEmployeeView(e))
	}
	return out
}

func (s *HotelService) EmployeeView(code string) (EmployeeView, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.findEmployeeLocked(code)
	if !ok {
		return EmployeeView{}, ErrNotFound
	}
	return NewEmployeeView(e), nil
}
