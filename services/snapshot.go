package services

import (
	"strconv"

	"hotel-backend/models"

	"go.uber.org/zap"
)

// Snapshot is the flat, storable state of the registry.
type Snapshot struct {
	Rooms        []models.RoomRecord        `json:"rooms"`
	Reservations []models.ReservationRecord `json:"reservations"`
	Services     []models.ServiceRecord     `json:"services"`
	Employees    []models.EmployeeRecord    `json:"employees"`
}

// Empty reports whether the snapshot holds no rooms and no employees.
func (s Snapshot) Empty() bool {
	return len(s.Rooms) == 0 && len(s.Employees) == 0
}

// RestoreStats counts what Restore loaded and what it had to skip.
type RestoreStats struct {
	Rooms        int `json:"rooms"`
	Reservations int `json:"reservations"`
	Services     int `json:"services"`
	Employees    int `json:"employees"`
	Skipped      int `json:"skipped"`
}

func (s *HotelService) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := Snapshot{
		Rooms:        make([]models.RoomRecord, 0, len(s.rooms)),
		Reservations: make([]models.ReservationRecord, 0, len(s.reservations)),
		Services:     make([]models.ServiceRecord, 0, len(s.services)),
		Employees:    make([]models.EmployeeRecord, 0, len(s.employees)),
	}
	for _, r := range s.rooms {
		snap.Rooms = append(snap.Rooms, models.NewRoomRecord(r))
	}
	for _, r := range s.reservations {
		snap.Reservations = append(snap.Reservations, models.NewReservationRecord(r))
	}
	for _, r := range s.services {
		snap.Services = append(snap.Services, models.NewServiceRecord(r))
	}
	for _, e := range s.employees {
		snap.Employees = append(snap.Employees, models.NewEmployeeRecord(e))
	}
	return snap
}

// Restore replaces the registry with the snapshot. Rooms load first so
// reservations can resolve their room numbers. Records with an unknown
// type, a missing room or a duplicate key are skipped and logged.
func (s *HotelService) Restore(snap Snapshot) RestoreStats {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.rooms, s.reservations, s.services, s.employees = nil, nil, nil, nil
	var stats RestoreStats

	skip := func(kind, key string) {
		stats.Skipped++
		s.log.Warn("skipping unreadable record", zap.String("kind", kind), zap.String("key", key))
	}

	for _, rec := range snap.Rooms {
		r, ok := rec.Room()
		if _, dup := s.findRoomLocked(rec.Number); !ok || dup {
			skip("room", strconv.Itoa(rec.Number))
			continue
		}
		s.rooms = append(s.rooms, r)
	}
	for _, rec := range snap.Reservations {
		r, ok := rec.Reservation(s.findRoomLocked)
		if _, dup := s.findReservationLocked(rec.Code); !ok || dup {
			skip("reservation", rec.Code)
			continue
		}
		s.reservations = append(s.reservations, r)
	}
	for _, rec := range snap.Services {
		r, ok := rec.ServiceRequest()
		if _, dup := s.findServiceLocked(rec.Code); !ok || dup {
			skip("service", rec.Code)
			continue
		}
		s.services = append(s.services, r)
	}
	for _, rec := range snap.Employees {
		e, ok := rec.Employee()
		if _, dup := s.findEmployeeLocked(rec.Code); !ok || dup {
			skip("employee", rec.Code)
			continue
		}
		s.employees = append(s.employees, e)
	}

	stats.Rooms = len(s.rooms)
	stats.Reservations = len(s.reservations)
	stats.Services = len(s.services)
	stats.Employees = len(s.employees)
	return stats
}
