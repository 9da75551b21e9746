package services

import (
	"fmt"
	"strings"
	"sync"

	"hotel-backend/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// HotelService owns the in-memory registry of rooms, reservations,
// service requests and employees. Every exported method takes the lock, so
// a single instance can be shared by concurrent HTTP handlers.
type HotelService struct {
	mu sync.RWMutex

	Name string

	rooms        []models.Room
	reservations []models.Reservation
	services     []models.ServiceRequest
	employees    []models.Employee

	log *zap.Logger
}

func NewHotelService(name string, logger *zap.Logger) *HotelService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &HotelService{Name: name, log: logger}
}

// ----------------------------------------------------
// Rooms
// ----------------------------------------------------

func (s *HotelService) AddRoom(room models.Room) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.findRoomLocked(room.Number()); ok {
		return fmt.Errorf("room %d: %w", room.Number(), ErrDuplicate)
	}
	s.rooms = append(s.rooms, room)
	return nil
}

func (s *HotelService) Rooms() []models.Room {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Room(nil), s.rooms...)
}

func (s *HotelService) FindRoom(number int) (models.Room, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.findRoomLocked(number)
}

func (s *HotelService) findRoomLocked(number int) (models.Room, bool) {
	for _, r := range s.rooms {
		if r.Number() == number {
			return r, true
		}
	}
	return nil, false
}

// FilterRooms returns the rooms matching keep, in insertion order.
func (s *HotelService) FilterRooms(keep func(models.Room) bool) []models.Room {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return filterRooms(s.rooms, keep)
}

func filterRooms(rooms []models.Room, keep func(models.Room) bool) []models.Room {
	out := []models.Room{}
	for _, r := range rooms {
		if keep == nil || keep(r) {
			out = append(out, r)
		}
	}
	return out
}

func (s *HotelService) AvailableRooms() []models.Room {
	return s.FilterRooms(func(r models.Room) bool { return r.Status() == models.StatusAvailable })
}

func (s *HotelService) RoomsByKind(kind models.RoomKind) []models.Room {
	return s.FilterRooms(func(r models.Room) bool { return r.Kind() == kind })
}

func (s *HotelService) RoomsByStatus(status models.RoomStatus) []models.Room {
	return s.FilterRooms(func(r models.Room) bool { return r.Status() == status })
}

// ChangeRoomStatus sets the status of an existing room. An unknown room is
// ErrNotFound and an unknown status is ErrInvalidInput; neither mutates.
func (s *HotelService) ChangeRoomStatus(number int, status string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	room, ok := s.findRoomLocked(number)
	if !ok {
		return fmt.Errorf("room %d: %w", number, ErrNotFound)
	}
	if !room.ChangeStatus(status) {
		return fmt.Errorf("status %q: %w", status, ErrInvalidInput)
	}
	s.log.Info("room status changed", zap.Int("room", number), zap.String("status", string(room.Status())))
	return nil
}

// ----------------------------------------------------
// Reservations
// ----------------------------------------------------

func (s *HotelService) Reservations() []models.Reservation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Reservation(nil), s.reservations...)
}

func (s *HotelService) findReservationLocked(code string) (models.Reservation, bool) {
	for _, r := range s.reservations {
		if r.Code() == code {
			return r, true
		}
	}
	return nil, false
}

// CreateReservation builds the requested variant, marks every room it
// holds occupied and appends the primary guest to each room's history. The
// whole operation happens under one lock: a missing room, a taken code or
// a missing required attribute leaves the registry untouched.
func (s *HotelService) CreateReservation(req models.ReservationRecord) (models.Reservation, error) {
	kind, ok := models.ParseReservationKind(req.Type)
	if !ok {
		return nil, fmt.Errorf("reservation type %q: %w", req.Type, ErrInvalidInput)
	}
	req.Type = string(kind)
	if err := validateReservation(kind, req); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if req.Code == "" {
		req.Code = newCode("RES")
	}
	if _, ok := s.findReservationLocked(req.Code); ok {
		return nil, fmt.Errorf("reservation %s: %w", req.Code, ErrDuplicate)
	}
	if kind == models.KindGroup && len(req.RoomNumbers) > 0 {
		req.RoomNumber = req.RoomNumbers[0]
	}
	for _, n := range reservationRoomNumbers(req) {
		if _, ok := s.findRoomLocked(n); !ok {
			return nil, fmt.Errorf("room %d: %w", n, ErrNotFound)
		}
	}

	r, ok := req.Reservation(s.findRoomLocked)
	if !ok {
		return nil, fmt.Errorf("reservation %s: %w", req.Code, ErrInvalidInput)
	}

	primary := r.Guests()[0]
	for _, room := range r.Rooms() {
		room.ChangeStatus(string(models.StatusOccupied))
		room.AddGuestToHistory(primary)
	}
	s.reservations = append(s.reservations, r)

	s.log.Info("reservation created",
		zap.String("code", r.Code()),
		zap.String("type", string(r.Kind())),
		zap.Int("room", r.Room().Number()),
		zap.String("total", r.TotalCost().StringFixed(2)),
	)
	return r, nil
}

func validateReservation(kind models.ReservationKind, req models.ReservationRecord) error {
	missing := func(field string) error {
		return fmt.Errorf("%s is required for %s reservations: %w", field, kind, ErrInvalidInput)
	}
	switch kind {
	case models.KindIndividual:
		if strings.TrimSpace(req.Guest) == "" {
			return missing("guest")
		}
	case models.KindGroup:
		if strings.TrimSpace(req.GroupName) == "" {
			return missing("group_name")
		}
		if len(req.RoomNumbers) == 0 && req.RoomNumber == 0 {
			return missing("room_numbers")
		}
		if d := req.Discount; d != nil && (*d < 0 || *d >= 100) {
			return fmt.Errorf("discount %v outside [0,100): %w", *d, ErrInvalidInput)
		}
		seen := make(map[int]bool, len(req.RoomNumbers))
		for _, n := range req.RoomNumbers {
			if seen[n] {
				return fmt.Errorf("room %d listed twice: %w", n, ErrInvalidInput)
			}
			seen[n] = true
		}
	case models.KindCorporate:
		if strings.TrimSpace(req.Company) == "" {
			return missing("company")
		}
	case models.KindPackage:
		if strings.TrimSpace(req.Tour) == "" {
			return missing("tour")
		}
	}
	return nil
}

func reservationRoomNumbers(req models.ReservationRecord) []int {
	if len(req.RoomNumbers) > 0 {
		return req.RoomNumbers
	}
	return []int{req.RoomNumber}
}

// CancelReservation frees every room the reservation holds, drops it from
// the registry and returns its cancellation policy.
func (s *HotelService) CancelReservation(code string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, r := range s.reservations {
		if r.Code() != code {
			continue
		}
		for _, room := range r.Rooms() {
			room.ChangeStatus(string(models.StatusAvailable))
		}
		s.reservations = append(s.reservations[:i], s.reservations[i+1:]...)
		s.log.Info("reservation cancelled", zap.String("code", code))
		return r.CancellationPolicy(), nil
	}
	return "", fmt.Errorf("reservation %s: %w", code, ErrNotFound)
}

// ----------------------------------------------------
// Service requests
// ----------------------------------------------------

func (s *HotelService) ServiceRequests() []models.ServiceRequest {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.ServiceRequest(nil), s.services...)
}

func (s *HotelService) findServiceLocked(code string) (models.ServiceRequest, bool) {
	for _, r := range s.services {
		if r.Code() == code {
			return r, true
		}
	}
	return nil, false
}

// CreateServiceRequest builds and stamps a service request for an existing
// room. A room service order without a floor is delivered to the room's
// floor.
func (s *HotelService) CreateServiceRequest(req models.ServiceRecord) (models.ServiceRequest, error) {
	kind, ok := models.ParseServiceKind(req.Type)
	if !ok {
		return nil, fmt.Errorf("service type %q: %w", req.Type, ErrInvalidInput)
	}
	req.Type = string(kind)
	if strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("name is required: %w", ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	room, ok := s.findRoomLocked(req.RoomNumber)
	if !ok {
		return nil, fmt.Errorf("room %d: %w", req.RoomNumber, ErrNotFound)
	}
	if req.Code == "" {
		req.Code = newCode("SRV")
	}
	if _, ok := s.findServiceLocked(req.Code); ok {
		return nil, fmt.Errorf("service request %s: %w", req.Code, ErrDuplicate)
	}
	if kind == models.KindRoomService && req.Floor == 0 {
		req.Floor = room.Floor()
	}

	sr, ok := req.ServiceRequest()
	if !ok {
		return nil, fmt.Errorf("service request %s: %w", req.Code, ErrInvalidInput)
	}
	sr.RegisterRequest(req.RequestedAt)
	s.services = append(s.services, sr)

	s.log.Info("service request registered",
		zap.String("code", sr.Code()),
		zap.String("type", string(sr.Kind())),
		zap.Int("room", sr.RoomNumber()),
		zap.String("cost", sr.Cost().StringFixed(2)),
	)
	return sr, nil
}

// ----------------------------------------------------
// Employees
// ----------------------------------------------------

func (s *HotelService) AddEmployee(e models.Employee) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.findEmployeeLocked(e.Code()); ok {
		return fmt.Errorf("employee %s: %w", e.Code(), ErrDuplicate)
	}
	s.employees = append(s.employees, e)
	return nil
}

func (s *HotelService) Employees() []models.Employee {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Employee(nil), s.employees...)
}

func (s *HotelService) FindEmployee(code string) (models.Employee, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.findEmployeeLocked(code)
}

func (s *HotelService) findEmployeeLocked(code string) (models.Employee, bool) {
	for _, e := range s.employees {
		if e.Code() == code {
			return e, true
		}
	}
	return nil, false
}

// CreateEmployee builds and registers an employee from its flat record.
func (s *HotelService) CreateEmployee(req models.EmployeeRecord) (models.Employee, error) {
	kind, ok := models.ParseEmployeeKind(req.Type)
	if !ok {
		return nil, fmt.Errorf("employee type %q: %w", req.Type, ErrInvalidInput)
	}
	req.Type = string(kind)
	if strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("name is required: %w", ErrInvalidInput)
	}
	if req.BaseSalary.IsNegative() {
		return nil, fmt.Errorf("base_salary %s is negative: %w", req.BaseSalary, ErrInvalidInput)
	}
	if req.Code == "" {
		req.Code = newCode("EMP")
	}
	e, ok := req.Employee()
	if !ok {
		return nil, fmt.Errorf("employee %s: %w", req.Code, ErrInvalidInput)
	}
	if err := s.AddEmployee(e); err != nil {
		return nil, err
	}
	s.log.Info("employee registered", zap.String("code", e.Code()), zap.String("type", string(e.Kind())))
	return e, nil
}

// RecordEvaluation appends a 1-5 rating to an employee's history.
func (s *HotelService) RecordEvaluation(code string, rating float64, comment string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.findEmployeeLocked(code)
	if !ok {
		return fmt.Errorf("employee %s: %w", code, ErrNotFound)
	}
	if !e.RecordEvaluation(rating, comment) {
		return fmt.Errorf("rating %v outside 1-5: %w", rating, ErrInvalidInput)
	}
	return nil
}

// AssignRoomToHousekeeper adds an existing room to a housekeeper's list.
func (s *HotelService) AssignRoomToHousekeeper(code string, number int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.findEmployeeLocked(code)
	if !ok {
		return fmt.Errorf("employee %s: %w", code, ErrNotFound)
	}
	hk, ok := e.(*models.Housekeeper)
	if !ok {
		return fmt.Errorf("employee %s is not housekeeping: %w", code, ErrInvalidInput)
	}
	if _, ok := s.findRoomLocked(number); !ok {
		return fmt.Errorf("room %d: %w", number, ErrNotFound)
	}
	hk.AddRoom(number)
	return nil
}

// ApplyOccupancyBonus recomputes every manager's occupancy bonus from the
// current share of occupied rooms and returns that percentage.
func (s *HotelService) ApplyOccupancyBonus() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()

	pct := occupiedPercent(s.rooms)
	for _, e := range s.employees {
		if m, ok := e.(*models.Manager); ok {
			m.UpdateOccupancyBonus(pct)
		}
	}
	return pct
}

func occupiedPercent(rooms []models.Room) decimal.Decimal {
	if len(rooms) == 0 {
		return decimal.Zero
	}
	occupied := 0
	for _, r := range rooms {
		if r.Status() == models.StatusOccupied {
			occupied++
		}
	}
	return percent(occupied, len(rooms))
}

func percent(part, total int) decimal.Decimal {
	if total == 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(part)).Mul(decimal.NewFromInt(100)).
		Div(decimal.NewFromInt(int64(total))).Round(2)
}

func newCode(prefix string) string {
	return prefix + "-" + strings.ToUpper(uuid.NewString()[:8])
}
