package services

import (
	"errors"
	"strings"
	"sync"
	"testing"

	"hotel-backend/models"

	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func newSeededHotel(t *testing.T) *HotelService {
	t.Helper()
	h := NewHotelService("Test Hotel", nil)
	if err := SeedSampleData(h); err != nil {
		t.Fatalf("SeedSampleData: %v", err)
	}
	return h
}

func boolp(b bool) *bool { return &b }

func floatp(f float64) *float64 { return &f }

func TestSeedSampleData(t *testing.T) {
	h := newSeededHotel(t)

	if n := len(h.Rooms()); n != 12 {
		t.Fatalf("rooms = %d, want 12", n)
	}
	if n := len(h.Employees()); n != 8 {
		t.Fatalf("employees = %d, want 8", n)
	}
	if n := len(h.Reservations()); n != 5 {
		t.Fatalf("reservations = %d, want 5", n)
	}
	if n := len(h.ServiceRequests()); n != 4 {
		t.Fatalf("service requests = %d, want 4", n)
	}
	for _, number := range []int{101, 102, 201, 202, 301, 401} {
		r, _ := h.FindRoom(number)
		if r.Status() != models.StatusOccupied {
			t.Errorf("room %d status = %s, want occupied", number, r.Status())
		}
	}
	if err := SeedSampleData(h); !errors.Is(err, ErrDuplicate) {
		t.Fatalf("second seed err = %v, want ErrDuplicate", err)
	}
}

func TestCreateReservationUnknownRoomLeavesRegistryUnchanged(t *testing.T) {
	h := newSeededHotel(t)
	before := len(h.Reservations())

	_, err := h.CreateReservation(models.ReservationRecord{
		Type: "Individual", StartDate: "2024-03-01", EndDate: "2024-03-03",
		RoomNumber: 999, Guest: "Nobody",
	})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
	if got := len(h.Reservations()); got != before {
		t.Fatalf("reservations = %d, want %d", got, before)
	}
}

func TestCreateGroupReservationWithOneUnknownRoom(t *testing.T) {
	h := newSeededHotel(t)

	_, err := h.CreateReservation(models.ReservationRecord{
		Type: "Group", StartDate: "2024-03-01", EndDate: "2024-03-03",
		RoomNumbers: []int{203, 999}, GroupName: "Choir",
	})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
	if r, _ := h.FindRoom(203); r.Status() != models.StatusAvailable {
		t.Fatalf("room 203 status = %s, want available", r.Status())
	}
}

func TestCreateReservationOccupiesRoomAndRecordsGuest(t *testing.T) {
	h := newSeededHotel(t)

	r, err := h.CreateReservation(models.ReservationRecord{
		Type: "individual", StartDate: "2024-03-01", EndDate: "2024-03-04",
		RoomNumber: 203, Guest: "Ana Ruiz", Purpose: "vacation", Breakfast: boolp(false),
	})
	if err != nil {
		t.Fatalf("CreateReservation: %v", err)
	}
	if !strings.HasPrefix(r.Code(), "RES-") {
		t.Fatalf("generated code = %q", r.Code())
	}
	if r.Kind() != models.KindIndividual {
		t.Fatalf("kind = %s", r.Kind())
	}
	// 142.6 * 3
	if !r.TotalCost().Equal(dec("427.8")) {
		t.Fatalf("TotalCost = %s, want 427.8", r.TotalCost())
	}

	room, _ := h.FindRoom(203)
	if room.Status() != models.StatusOccupied {
		t.Fatalf("room status = %s", room.Status())
	}
	h203 := room.GuestHistory()
	if len(h203) != 1 || h203[0].Guest != "Ana Ruiz" {
		t.Fatalf("history = %+v", h203)
	}
}

func TestCreateReservationValidation(t *testing.T) {
	h := newSeededHotel(t)
	tests := []struct {
		name string
		req  models.ReservationRecord
		want error
	}{
		{"unknown type", models.ReservationRecord{Type: "Timeshare", RoomNumber: 203}, ErrInvalidInput},
		{"individual without guest", models.ReservationRecord{Type: "Individual", RoomNumber: 203}, ErrInvalidInput},
		{"group without name", models.ReservationRecord{Type: "Group", RoomNumbers: []int{203}}, ErrInvalidInput},
		{"corporate without company", models.ReservationRecord{Type: "Corporate", RoomNumber: 203}, ErrInvalidInput},
		{"package without tour", models.ReservationRecord{Type: "Package", RoomNumber: 203}, ErrInvalidInput},
		{"duplicate code", models.ReservationRecord{Code: "RES-001", Type: "Individual", RoomNumber: 203, Guest: "X"}, ErrDuplicate},
		{"group discount above 100", models.ReservationRecord{Type: "Group", RoomNumbers: []int{203}, GroupName: "G", Discount: floatp(150)}, ErrInvalidInput},
		{"group discount of 100", models.ReservationRecord{Type: "Group", RoomNumbers: []int{203}, GroupName: "G", Discount: floatp(100)}, ErrInvalidInput},
		{"negative group discount", models.ReservationRecord{Type: "Group", RoomNumbers: []int{203}, GroupName: "G", Discount: floatp(-5)}, ErrInvalidInput},
		{"group room listed twice", models.ReservationRecord{Type: "Group", RoomNumbers: []int{203, 203}, GroupName: "G"}, ErrInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := h.CreateReservation(tt.req); !errors.Is(err, tt.want) {
				t.Fatalf("err = %v, want %v", err, tt.want)
			}
		})
	}
	if r, _ := h.FindRoom(203); r.Status() != models.StatusAvailable {
		t.Fatalf("rejected requests changed room 203 to %s", r.Status())
	}
}

func TestGroupReservationWithHighestDiscountCostsMoreThanZero(t *testing.T) {
	h := newSeededHotel(t)

	r, err := h.CreateReservation(models.ReservationRecord{
		Type: "Group", StartDate: "2024-03-01", EndDate: "2024-03-02",
		RoomNumbers: []int{203}, GroupName: "G", Discount: floatp(99.5),
	})
	if err != nil {
		t.Fatalf("CreateReservation: %v", err)
	}
	if !r.TotalCost().IsPositive() {
		t.Fatalf("TotalCost = %s, want > 0", r.TotalCost())
	}
}

func TestCreateEmployeeRejectsNegativeSalary(t *testing.T) {
	h := newSeededHotel(t)

	_, err := h.CreateEmployee(models.EmployeeRecord{Type: "Receptionist", Name: "Neg", BaseSalary: dec("-1")})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}
	if n := len(h.Employees()); n != 8 {
		t.Fatalf("employees = %d, want 8", n)
	}
}

func TestChangeRoomStatus(t *testing.T) {
	h := newSeededHotel(t)

	if err := h.ChangeRoomStatus(103, "maintenance"); err != nil {
		t.Fatalf("ChangeRoomStatus: %v", err)
	}
	if n := len(h.RoomsByStatus(models.StatusMaintenance)); n != 1 {
		t.Fatalf("rooms in maintenance = %d", n)
	}
	if err := h.ChangeRoomStatus(103, "haunted"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}
	if r, _ := h.FindRoom(103); r.Status() != models.StatusMaintenance {
		t.Fatalf("invalid status changed room to %s", r.Status())
	}
	if err := h.ChangeRoomStatus(999, "cleaning"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestRoomFilters(t *testing.T) {
	h := newSeededHotel(t)

	if n := len(h.AvailableRooms()); n != 6 {
		t.Fatalf("available rooms = %d, want 6", n)
	}
	suites := h.RoomsByKind(models.KindSuite)
	if len(suites) != 3 || suites[0].Number() != 301 {
		t.Fatalf("suites = %d", len(suites))
	}
	if n := len(h.FilterRooms(nil)); n != 12 {
		t.Fatalf("unfiltered rooms = %d", n)
	}
	if err := h.AddRoom(models.NewSimpleRoom(101, 1, true, "", false)); !errors.Is(err, ErrDuplicate) {
		t.Fatalf("duplicate room err = %v", err)
	}
}

func TestCreateServiceRequest(t *testing.T) {
	h := newSeededHotel(t)

	sr, err := h.CreateServiceRequest(models.ServiceRecord{
		Type: "roomservice", Name: "Breakfast in bed", RoomNumber: 301,
		Items: []string{"coffee", "fruit"}, DeliveryHour: "07:30",
	})
	if err != nil {
		t.Fatalf("CreateServiceRequest: %v", err)
	}
	if !strings.HasPrefix(sr.Code(), "SRV-") || sr.RequestedAt() == models.NotRegistered {
		t.Fatalf("code %q requested at %q", sr.Code(), sr.RequestedAt())
	}
	order := sr.(*models.RoomServiceOrder)
	if order.Floor != 3 {
		t.Fatalf("floor = %d, want the room's floor 3", order.Floor)
	}

	if _, err := h.CreateServiceRequest(models.ServiceRecord{Type: "Spa", Name: "x", RoomNumber: 999}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("unknown room err = %v", err)
	}
	if _, err := h.CreateServiceRequest(models.ServiceRecord{Type: "Karaoke", Name: "x", RoomNumber: 101}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("unknown type err = %v", err)
	}
}

func TestEmployeeOperations(t *testing.T) {
	h := newSeededHotel(t)

	if err := h.RecordEvaluation("HK-001", 5, "spotless"); err != nil {
		t.Fatalf("RecordEvaluation: %v", err)
	}
	if err := h.RecordEvaluation("HK-001", 6, ""); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("out of range err = %v", err)
	}
	if err := h.RecordEvaluation("NOPE", 3, ""); !errors.Is(err, ErrNotFound) {
		t.Fatalf("unknown employee err = %v", err)
	}

	if err := h.AssignRoomToHousekeeper("HK-001", 301); err != nil {
		t.Fatalf("AssignRoomToHousekeeper: %v", err)
	}
	if err := h.AssignRoomToHousekeeper("REC-001", 301); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("non-housekeeper err = %v", err)
	}
	if err := h.AssignRoomToHousekeeper("HK-001", 999); !errors.Is(err, ErrNotFound) {
		t.Fatalf("unknown room err = %v", err)
	}
	e, _ := h.FindEmployee("HK-001")
	if rooms := e.(*models.Housekeeper).AssignedRooms; len(rooms) != 4 {
		t.Fatalf("assigned rooms = %v", rooms)
	}

	created, err := h.CreateEmployee(models.EmployeeRecord{Type: "maintenance", Name: "Iván", Shift: "day", BaseSalary: dec("1300"), Specialty: "carpentry"})
	if err != nil {
		t.Fatalf("CreateEmployee: %v", err)
	}
	if !strings.HasPrefix(created.Code(), "EMP-") {
		t.Fatalf("generated code = %q", created.Code())
	}
}

func TestApplyOccupancyBonus(t *testing.T) {
	h := newSeededHotel(t)

	pct := h.ApplyOccupancyBonus()
	if !pct.Equal(dec("50")) {
		t.Fatalf("occupancy = %s, want 50", pct)
	}
	e, _ := h.FindEmployee("GER-001")
	if got := e.(*models.Manager).OccupancyBonus; !got.Equal(dec("100000")) {
		t.Fatalf("bonus = %s, want 100000", got)
	}
}

func TestConcurrentReservations(t *testing.T) {
	h := newSeededHotel(t)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = h.CreateReservation(models.ReservationRecord{
				Type: "Individual", StartDate: "2024-05-01", EndDate: "2024-05-02",
				RoomNumber: 203, Guest: "Concurrent",
			})
			_ = NewReportService(h).OccupancyReport()
		}()
	}
	wg.Wait()

	if n := len(h.Reservations()); n != 25 {
		t.Fatalf("reservations = %d, want 25", n)
	}
}
