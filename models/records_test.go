package models

import (
	"encoding/json"
	"testing"
)

func TestRoomRecordRestoresState(t *testing.T) {
	room := NewDoubleRoom(203, 2, "king", "mountain", true)
	room.ChangeStatus("cleaning")
	room.AddGuestToHistory("Ana")

	body, err := json.Marshal(NewRoomRecord(room))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var rec RoomRecord
	if err := json.Unmarshal(body, &rec); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	got, ok := rec.Room()
	if !ok {
		t.Fatal("record did not rebuild a room")
	}
	if got.Kind() != KindDouble || got.Status() != StatusCleaning {
		t.Fatalf("kind %s status %s", got.Kind(), got.Status())
	}
	if !got.NightlyRate().Equal(room.NightlyRate()) {
		t.Fatalf("rate %s, want %s", got.NightlyRate(), room.NightlyRate())
	}
	if h := got.GuestHistory(); len(h) != 1 || h[0].Guest != "Ana" {
		t.Fatalf("history = %+v", h)
	}
}

func TestRoomRecordRejectsUnknownValues(t *testing.T) {
	if _, ok := (RoomRecord{Number: 1, Type: "Villa"}).Room(); ok {
		t.Fatal("unknown type accepted")
	}
	if _, ok := (RoomRecord{Number: 1, Type: "Simple", Status: "flooded"}).Room(); ok {
		t.Fatal("unknown status accepted")
	}
}

func TestReservationRecordDefaults(t *testing.T) {
	room := NewPenthouse(401, 4, true, true, true)
	lookup := func(n int) (Room, bool) {
		if n == 401 {
			return room, true
		}
		return nil, false
	}

	// Missing optional flags take the constructor defaults.
	rec := ReservationRecord{Code: "P1", Type: "package", StartDate: "2024-02-10", EndDate: "2024-02-15", RoomNumber: 401, Tour: "City Tour"}
	r, ok := rec.Reservation(lookup)
	if !ok {
		t.Fatal("package record rejected")
	}
	if got := r.TotalCost(); !got.Equal(dec("1512801")) {
		t.Fatalf("TotalCost = %s, want 1512801", got)
	}

	if _, ok := (ReservationRecord{Type: "Individual", RoomNumber: 999}).Reservation(lookup); ok {
		t.Fatal("unknown room accepted")
	}
	if _, ok := (ReservationRecord{Type: "Group", RoomNumbers: []int{401, 999}}).Reservation(lookup); ok {
		t.Fatal("group with an unknown room accepted")
	}
}

func TestReservationRecordRoundTrip(t *testing.T) {
	rooms := []Room{NewDoubleRoom(201, 2, "2 beds", "street", true), NewDoubleRoom(202, 2, "queen", "marina", true)}
	byNumber := map[int]Room{201: rooms[0], 202: rooms[1]}
	lookup := func(n int) (Room, bool) {
		r, ok := byNumber[n]
		return r, ok
	}

	orig := NewGroupReservation("RES-002", "2024-01-25", "2024-01-30", rooms, "González Family", 3, 10, "")
	got, ok := NewReservationRecord(orig).Reservation(lookup)
	if !ok {
		t.Fatal("group record rejected")
	}
	if !got.TotalCost().Equal(orig.TotalCost()) {
		t.Fatalf("TotalCost = %s, want %s", got.TotalCost(), orig.TotalCost())
	}
	if len(got.Rooms()) != 2 || got.Guests()[0] != "Group: González Family" {
		t.Fatalf("rooms %d guests %v", len(got.Rooms()), got.Guests())
	}
}

func TestServiceAndEmployeeRecords(t *testing.T) {
	svc := NewRoomServiceOrder("S1", "Snack", 401, []string{"coffee"}, "23:00", 4)
	svc.RegisterRequest("2024-02-10 22:55")
	gotSvc, ok := NewServiceRecord(svc).ServiceRequest()
	if !ok {
		t.Fatal("service record rejected")
	}
	if !gotSvc.Cost().Equal(svc.Cost()) || gotSvc.RequestedAt() != "2024-02-10 22:55" {
		t.Fatalf("service round trip: cost=%s at=%q", gotSvc.Cost(), gotSvc.RequestedAt())
	}

	m := NewManager("Sofía", "GER-002", "administrative", dec("2500"), "services", 5)
	m.RecordEvaluation(4, "")
	m.UpdateOccupancyBonus(dec("75"))
	gotEmp, ok := NewEmployeeRecord(m).Employee()
	if !ok {
		t.Fatal("employee record rejected")
	}
	if !gotEmp.MonthlySalary().Equal(m.MonthlySalary()) {
		t.Fatalf("salary = %s, want %s", gotEmp.MonthlySalary(), m.MonthlySalary())
	}
	if len(gotEmp.Evaluations()) != 1 {
		t.Fatalf("evaluations = %v", gotEmp.Evaluations())
	}
}
