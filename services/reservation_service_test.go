package services

import (
	"errors"
	"testing"
	"time"
)

func TestSearchByGuest(t *testing.T) {
	rs := NewReservationService(newSeededHotel(t))

	tests := []struct {
		query string
		want  int
	}{
		{"torres", 1},
		{"LAURA MENDOZA", 1},
		{"gonzález family", 1},
		{"mr", 2},
		{"nobody", 0},
	}
	for _, tt := range tests {
		if got := rs.SearchByGuest(tt.query); len(got) != tt.want {
			t.Errorf("SearchByGuest(%q) = %d results, want %d", tt.query, len(got), tt.want)
		}
	}
}

func TestFindByCode(t *testing.T) {
	rs := NewReservationService(newSeededHotel(t))

	v, err := rs.FindByCode("RES-001")
	if err != nil {
		t.Fatalf("FindByCode: %v", err)
	}
	if !v.TotalCost.Equal(dec("71462.04")) || v.Nights != 3 {
		t.Fatalf("view = %+v", v)
	}
	if _, err := rs.FindByCode("RES-999"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestOccupancyOn(t *testing.T) {
	rs := NewReservationService(newSeededHotel(t))

	tests := []struct {
		date     string
		occupied int
		pct      string
	}{
		{"2024-01-16", 1, "8.33"},
		{"2024-01-18", 1, "8.33"},
		{"2024-01-19", 0, "0"},
		{"2024-01-27", 2, "16.67"},
		{"2025-06-01", 0, "0"},
	}
	for _, tt := range tests {
		t.Run(tt.date, func(t *testing.T) {
			got, err := rs.OccupancyOn(tt.date)
			if err != nil {
				t.Fatalf("OccupancyOn: %v", err)
			}
			if got.OccupiedRooms != tt.occupied || got.TotalRooms != 12 {
				t.Fatalf("occupied %d/%d, want %d/12", got.OccupiedRooms, got.TotalRooms, tt.occupied)
			}
			if !got.Percentage.Equal(dec(tt.pct)) {
				t.Fatalf("percentage = %s, want %s", got.Percentage, tt.pct)
			}
		})
	}

	if _, err := rs.OccupancyOn("16/01/2024"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("bad date err = %v", err)
	}
}

func TestOccupancyOnEmptyHotel(t *testing.T) {
	rs := NewReservationService(NewHotelService("Empty", nil))

	got, err := rs.OccupancyOn("2024-01-16")
	if err != nil {
		t.Fatalf("OccupancyOn: %v", err)
	}
	if got.TotalRooms != 0 || !got.Percentage.IsZero() {
		t.Fatalf("got %+v", got)
	}
}

func TestMonthlyReport(t *testing.T) {
	rs := NewReservationService(newSeededHotel(t))

	jan, err := rs.MonthlyReport(1, 2024)
	if err != nil {
		t.Fatalf("MonthlyReport: %v", err)
	}
	if jan.Count != 3 || !jan.Revenue.Equal(dec("172585.79")) {
		t.Fatalf("january = %d / %s, want 3 / 172585.79", jan.Count, jan.Revenue)
	}

	feb, _ := rs.MonthlyReport(2, 2024)
	if feb.Count != 2 {
		t.Fatalf("february count = %d, want 2", feb.Count)
	}

	empty, _ := rs.MonthlyReport(1, 2023)
	if empty.Count != 0 || !empty.Revenue.IsZero() || empty.Reservations == nil {
		t.Fatalf("2023 = %+v", empty)
	}

	for _, m := range []int{0, 13} {
		if _, err := rs.MonthlyReport(m, 2024); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("month %d err = %v", m, err)
		}
	}
}

func TestActive(t *testing.T) {
	rs := NewReservationService(newSeededHotel(t))

	got := rs.Active(time.Date(2024, 2, 12, 15, 0, 0, 0, time.UTC))
	if len(got) != 1 || got[0].Code != "RES-005" {
		t.Fatalf("active = %+v", got)
	}
	if got := rs.Active(time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)); len(got) != 0 {
		t.Fatalf("active in 2030 = %d", len(got))
	}
}

func TestCancelFreesRooms(t *testing.T) {
	h := newSeededHotel(t)
	rs := NewReservationService(h)

	policy, err := rs.Cancel("RES-002")
	if err != nil {
		t.Fatalf("Cancel: %v", err)
	}
	if policy == "" {
		t.Fatal("empty cancellation policy")
	}
	for _, n := range []int{201, 202} {
		if r, _ := h.FindRoom(n); r.Status() != "available" {
			t.Errorf("room %d status = %s", n, r.Status())
		}
	}
	if _, err := rs.Cancel("RES-002"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("second cancel err = %v", err)
	}
	if n := len(h.Reservations()); n != 4 {
		t.Fatalf("reservations = %d, want 4", n)
	}
}
