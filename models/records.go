package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// Records are the flat persistence shape of the entity model. The Type
// field carries the variant; fields that do not apply to a variant stay
// zero. The same structs are written as JSON files and as MySQL rows.

type RoomRecord struct {
	Number       int                            `json:"number" gorm:"primaryKey;autoIncrement:false"`
	Type         string                         `json:"type" gorm:"type:varchar(20);index"`
	Floor        int                            `json:"floor"`
	Status       string                         `json:"status" gorm:"type:varchar(20)"`
	BaseRate     decimal.Decimal                `json:"base_rate" gorm:"type:decimal(12,2)"`
	Amenities    datatypes.JSONSlice[string]    `json:"amenities"`
	GuestHistory datatypes.JSONSlice[GuestStay] `json:"guest_history"`
	View         string                         `json:"view,omitempty" gorm:"type:varchar(50)"`
	SingleBed    bool                           `json:"single_bed,omitempty"`
	SharedBath   bool                           `json:"shared_bath,omitempty"`
	BedType      string                         `json:"bed_type,omitempty" gorm:"type:varchar(50)"`
	PrivateBath  bool                           `json:"private_bath,omitempty"`
	LivingRoom   bool                           `json:"living_room,omitempty"`
	Kitchen      bool                           `json:"kitchen,omitempty"`
	Jacuzzi      bool                           `json:"jacuzzi,omitempty"`
	Bedrooms     int                            `json:"bedrooms,omitempty"`
	FullFloor    bool                           `json:"full_floor,omitempty"`
	Terrace      bool                           `json:"terrace,omitempty"`
	Butler       bool                           `json:"butler,omitempty"`
}

func (RoomRecord) TableName() string { return "rooms" }

type ReservationRecord struct {
	Code          string                      `json:"code" gorm:"primaryKey;type:varchar(64)"`
	Type          string                      `json:"type" gorm:"type:varchar(20);index" binding:"required"`
	StartDate     string                      `json:"start_date" gorm:"type:varchar(10)" binding:"required"`
	EndDate       string                      `json:"end_date" gorm:"type:varchar(10)" binding:"required"`
	RoomNumber    int                         `json:"room_number" gorm:"index"`
	RoomNumbers   datatypes.JSONSlice[int]    `json:"room_numbers,omitempty"`
	Guests        datatypes.JSONSlice[string] `json:"guests"`
	Guest         string                      `json:"guest,omitempty"`
	Purpose       string                      `json:"purpose,omitempty"`
	Breakfast     *bool                       `json:"breakfast,omitempty"`
	GroupName     string                      `json:"group_name,omitempty"`
	People        int                         `json:"people,omitempty"`
	Discount      *float64                    `json:"discount,omitempty" binding:"omitempty,gte=0,lt=100"`
	Coordinator   string                      `json:"coordinator,omitempty"`
	Company       string                      `json:"company,omitempty"`
	Agreement     *bool                       `json:"agreement,omitempty"`
	DirectBilling *bool                       `json:"direct_billing,omitempty"`
	Tour          string                      `json:"tour,omitempty"`
	Transport     *bool                       `json:"transport,omitempty"`
	Meals         *int                        `json:"meals,omitempty"`
	Guide         *bool                       `json:"guide,omitempty"`
}

func (ReservationRecord) TableName() string { return "reservations" }

type ServiceRecord struct {
	Code         string                      `json:"code" gorm:"primaryKey;type:varchar(64)"`
	Type         string                      `json:"type" gorm:"type:varchar(20);index" binding:"required"`
	Name         string                      `json:"name" binding:"required"`
	RoomNumber   int                         `json:"room_number" gorm:"index" binding:"required,gt=0"`
	RequestedAt  string                      `json:"requested_at,omitempty" gorm:"type:varchar(20)"`
	Guests       int                         `json:"guests,omitempty"`
	Menu         string                      `json:"menu,omitempty"`
	Location     string                      `json:"location,omitempty"`
	Treatment    string                      `json:"treatment,omitempty"`
	Minutes      int                         `json:"minutes,omitempty"`
	Therapist    string                      `json:"therapist,omitempty"`
	Garments     int                         `json:"garments,omitempty"`
	ServiceType  string                      `json:"service_type,omitempty"`
	Urgent       bool                        `json:"urgent,omitempty"`
	Items        datatypes.JSONSlice[string] `json:"items,omitempty"`
	DeliveryHour string                      `json:"delivery_hour,omitempty" gorm:"type:varchar(5)"`
	Floor        int                         `json:"floor,omitempty"`
}

func (ServiceRecord) TableName() string { return "service_requests" }

type EmployeeRecord struct {
	Code           string                          `json:"code" gorm:"primaryKey;type:varchar(64)"`
	Type           string                          `json:"type" gorm:"type:varchar(20);index" binding:"required"`
	Name           string                          `json:"name" binding:"required"`
	Shift          string                          `json:"shift" gorm:"type:varchar(30)"`
	BaseSalary     decimal.Decimal                 `json:"base_salary" gorm:"type:decimal(12,2)"`
	Evaluations    datatypes.JSONSlice[Evaluation] `json:"evaluations"`
	Languages      datatypes.JSONSlice[string]     `json:"languages,omitempty"`
	RotatingShift  *bool                           `json:"rotating_shift,omitempty"`
	AssignedRooms  datatypes.JSONSlice[int]        `json:"assigned_rooms,omitempty"`
	Floor          int                             `json:"floor,omitempty"`
	Supervisor     string                          `json:"supervisor,omitempty"`
	Specialty      string                          `json:"specialty,omitempty"`
	OnCall24h      bool                            `json:"on_call_24h,omitempty"`
	Department     string                          `json:"department,omitempty"`
	Headcount      int                             `json:"headcount,omitempty"`
	OccupancyBonus decimal.Decimal                 `json:"occupancy_bonus" gorm:"type:decimal(12,2)"`
}

func (EmployeeRecord) TableName() string { return "employees" }

func boolPtr(b bool) *bool { return &b }

func boolOr(p *bool, def bool) bool {
	if p == nil {
		return def
	}
	return *p
}

// NewRoomRecord flattens a room.
func NewRoomRecord(r Room) RoomRecord {
	b := r.base()
	rec := RoomRecord{
		Number:       b.number,
		Type:         string(r.Kind()),
		Floor:        b.floor,
		Status:       string(b.status),
		BaseRate:     b.baseRate,
		Amenities:    datatypes.NewJSONSlice(r.Amenities()),
		GuestHistory: datatypes.NewJSONSlice(r.GuestHistory()),
	}
	switch v := r.(type) {
	case *SimpleRoom:
		rec.View, rec.SingleBed, rec.SharedBath = v.View, v.SingleBed, v.SharedBath
	case *DoubleRoom:
		rec.View, rec.BedType, rec.PrivateBath = v.View, v.BedType, v.PrivateBath
	case *Suite:
		rec.LivingRoom, rec.Kitchen, rec.Jacuzzi, rec.Bedrooms = v.LivingRoom, v.Kitchen, v.Jacuzzi, v.Bedrooms
	case *Penthouse:
		rec.FullFloor, rec.Terrace, rec.Butler = v.FullFloor, v.Terrace, v.Butler
	}
	return rec
}

// Room rebuilds the entity. Missing fields take the variant defaults and an
// unknown type or status yields false.
func (rec RoomRecord) Room() (Room, bool) {
	kind, ok := ParseRoomKind(rec.Type)
	if !ok {
		return nil, false
	}
	var r Room
	switch kind {
	case KindSimple:
		r = NewSimpleRoom(rec.Number, rec.Floor, rec.SingleBed, rec.View, rec.SharedBath)
	case KindDouble:
		r = NewDoubleRoom(rec.Number, rec.Floor, rec.BedType, rec.View, rec.PrivateBath)
	case KindSuite:
		r = NewSuite(rec.Number, rec.Floor, rec.LivingRoom, rec.Kitchen, rec.Jacuzzi, rec.Bedrooms)
	case KindPenthouse:
		r = NewPenthouse(rec.Number, rec.Floor, rec.FullFloor, rec.Terrace, rec.Butler)
	}
	b := r.base()
	if rec.Status != "" && !r.ChangeStatus(rec.Status) {
		return nil, false
	}
	if rec.BaseRate.IsPositive() {
		b.baseRate = rec.BaseRate
	}
	b.history = append([]GuestStay(nil), rec.GuestHistory...)
	return r, true
}

// NewReservationRecord flattens a reservation.
func NewReservationRecord(r Reservation) ReservationRecord {
	rec := ReservationRecord{
		Code:       r.Code(),
		Type:       string(r.Kind()),
		StartDate:  r.StartDate(),
		EndDate:    r.EndDate(),
		RoomNumber: r.Room().Number(),
		Guests:     datatypes.NewJSONSlice(r.Guests()),
	}
	switch v := r.(type) {
	case *IndividualReservation:
		rec.Guest, rec.Purpose, rec.Breakfast = v.Guest, v.Purpose, boolPtr(v.Breakfast)
	case *GroupReservation:
		numbers := make([]int, 0, len(v.rooms))
		for _, room := range v.rooms {
			numbers = append(numbers, room.Number())
		}
		discount := v.Discount
		rec.RoomNumbers = datatypes.NewJSONSlice(numbers)
		rec.GroupName, rec.People, rec.Discount, rec.Coordinator = v.GroupName, v.People, &discount, v.Coordinator
	case *CorporateReservation:
		rec.Company, rec.Agreement, rec.DirectBilling = v.Company, boolPtr(v.Agreement), boolPtr(v.DirectBilling)
	case *PackageReservation:
		meals := v.Meals
		rec.Tour, rec.Transport, rec.Meals, rec.Guide = v.Tour, boolPtr(v.Transport), &meals, boolPtr(v.Guide)
	}
	return rec
}

// Reservation rebuilds the entity, resolving room numbers through lookup.
// Unknown types or rooms yield false.
func (rec ReservationRecord) Reservation(lookup func(number int) (Room, bool)) (Reservation, bool) {
	kind, ok := ParseReservationKind(rec.Type)
	if !ok {
		return nil, false
	}
	room, ok := lookup(rec.RoomNumber)
	if !ok && kind != KindGroup {
		return nil, false
	}

	var r Reservation
	switch kind {
	case KindIndividual:
		r = NewIndividualReservation(rec.Code, rec.StartDate, rec.EndDate, room, rec.Guest, rec.Purpose, boolOr(rec.Breakfast, true))
	case KindGroup:
		numbers := []int(rec.RoomNumbers)
		if len(numbers) == 0 {
			numbers = []int{rec.RoomNumber}
		}
		rooms := make([]Room, 0, len(numbers))
		for _, n := range numbers {
			rm, found := lookup(n)
			if !found {
				return nil, false
			}
			rooms = append(rooms, rm)
		}
		discount := DefaultGroupDiscount
		if rec.Discount != nil {
			discount = *rec.Discount
		}
		r = NewGroupReservation(rec.Code, rec.StartDate, rec.EndDate, rooms, rec.GroupName, rec.People, discount, rec.Coordinator)
	case KindCorporate:
		r = NewCorporateReservation(rec.Code, rec.StartDate, rec.EndDate, room, nil, rec.Company, boolOr(rec.Agreement, true), boolOr(rec.DirectBilling, true))
	case KindPackage:
		meals := 3
		if rec.Meals != nil {
			meals = *rec.Meals
		}
		r = NewPackageReservation(rec.Code, rec.StartDate, rec.EndDate, room, nil, rec.Tour, boolOr(rec.Transport, true), meals, boolOr(rec.Guide, true))
	}
	if len(rec.Guests) > 0 {
		r.base().guests = append([]string(nil), rec.Guests...)
	}
	return r, true
}

// NewServiceRecord flattens a service request.
func NewServiceRecord(s ServiceRequest) ServiceRecord {
	b := s.base()
	rec := ServiceRecord{
		Code:        b.code,
		Type:        string(s.Kind()),
		Name:        b.name,
		RoomNumber:  b.roomNumber,
		RequestedAt: b.requestedAt,
	}
	switch v := s.(type) {
	case *RestaurantService:
		rec.Guests, rec.Menu, rec.Location = v.Guests, v.Menu, v.Location
	case *SpaService:
		rec.Treatment, rec.Minutes, rec.Therapist = v.Treatment, v.Minutes, v.Therapist
	case *LaundryService:
		rec.Garments, rec.ServiceType, rec.Urgent = v.Garments, v.ServiceType, v.Urgent
	case *RoomServiceOrder:
		rec.Items, rec.DeliveryHour, rec.Floor = datatypes.NewJSONSlice(v.Items), v.DeliveryHour, v.Floor
	}
	return rec
}

// ServiceRequest rebuilds the entity; an unknown type yields false.
func (rec ServiceRecord) ServiceRequest() (ServiceRequest, bool) {
	kind, ok := ParseServiceKind(rec.Type)
	if !ok {
		return nil, false
	}
	var s ServiceRequest
	switch kind {
	case KindRestaurant:
		s = NewRestaurantService(rec.Code, rec.Name, rec.RoomNumber, rec.Guests, rec.Menu, rec.Location)
	case KindSpa:
		s = NewSpaService(rec.Code, rec.Name, rec.RoomNumber, rec.Treatment, rec.Minutes, rec.Therapist)
	case KindLaundry:
		s = NewLaundryService(rec.Code, rec.Name, rec.RoomNumber, rec.Garments, rec.ServiceType, rec.Urgent)
	case KindRoomService:
		s = NewRoomServiceOrder(rec.Code, rec.Name, rec.RoomNumber, rec.Items, rec.DeliveryHour, rec.Floor)
	}
	s.base().requestedAt = rec.RequestedAt
	return s, true
}

// NewEmployeeRecord flattens an employee.
func NewEmployeeRecord(e Employee) EmployeeRecord {
	b := e.base()
	rec := EmployeeRecord{
		Code:           b.code,
		Type:           string(e.Kind()),
		Name:           b.name,
		Shift:          b.shift,
		BaseSalary:     b.baseSalary,
		Evaluations:    datatypes.NewJSONSlice(e.Evaluations()),
		OccupancyBonus: decimal.Zero,
	}
	switch v := e.(type) {
	case *Receptionist:
		rec.Languages, rec.RotatingShift = datatypes.NewJSONSlice(v.Languages), boolPtr(v.RotatingShift)
	case *Housekeeper:
		rec.AssignedRooms, rec.Floor, rec.Supervisor = datatypes.NewJSONSlice(v.AssignedRooms), v.Floor, v.Supervisor
	case *MaintenanceTech:
		rec.Specialty, rec.OnCall24h = v.Specialty, v.OnCall24h
	case *Manager:
		rec.Department, rec.Headcount, rec.OccupancyBonus = v.Department, v.Headcount, v.OccupancyBonus
	}
	return rec
}

// Employee rebuilds the entity; an unknown type yields false.
func (rec EmployeeRecord) Employee() (Employee, bool) {
	kind, ok := ParseEmployeeKind(rec.Type)
	if !ok {
		return nil, false
	}
	var e Employee
	switch kind {
	case KindReceptionist:
		r := NewReceptionist(rec.Name, rec.Code, rec.Shift, rec.BaseSalary, rec.Languages)
		r.RotatingShift = boolOr(rec.RotatingShift, true)
		e = r
	case KindHousekeeping:
		e = NewHousekeeper(rec.Name, rec.Code, rec.Shift, rec.BaseSalary, rec.AssignedRooms, rec.Floor, rec.Supervisor)
	case KindMaintenance:
		e = NewMaintenanceTech(rec.Name, rec.Code, rec.Shift, rec.BaseSalary, rec.Specialty, rec.OnCall24h)
	case KindManager:
		m := NewManager(rec.Name, rec.Code, rec.Shift, rec.BaseSalary, rec.Department, rec.Headcount)
		m.OccupancyBonus = rec.OccupancyBonus
		e = m
	}
	e.base().evaluations = append([]Evaluation(nil), rec.Evaluations...)
	return e, true
}
