package services

import (
	"fmt"

	"hotel-backend/models"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// SeedSampleData loads the demo hotel: three rooms of each variant, two
// employees per role, five reservations and one request per service
// variant. Reservations go through CreateReservation, so their rooms end
// up occupied.
func SeedSampleData(h *HotelService) error {
	rooms := []models.Room{
		models.NewSimpleRoom(101, 1, true, "garden", true),
		models.NewSimpleRoom(102, 1, true, "street", false),
		models.NewSimpleRoom(103, 1, true, "interior", true),

		models.NewDoubleRoom(201, 2, "2 beds", "street", true),
		models.NewDoubleRoom(202, 2, "queen", "marina", true),
		models.NewDoubleRoom(203, 2, "king", "mountain", true),

		models.NewSuite(301, 3, true, true, true, 2),
		models.NewSuite(302, 3, true, false, true, 1),
		models.NewSuite(303, 3, true, true, false, 3),

		models.NewPenthouse(401, 4, true, true, true),
		models.NewPenthouse(402, 4, false, true, false),
		models.NewPenthouse(403, 4, true, false, true),
	}
	for _, r := range rooms {
		if err := h.AddRoom(r); err != nil {
			return fmt.Errorf("seed rooms: %w", err)
		}
	}

	salary := decimal.NewFromInt
	employees := []models.Employee{
		models.NewReceptionist("Ana García", "REC-001", "morning", salary(1500), []string{"Spanish", "English"}),
		models.NewReceptionist("Carlos López", "REC-002", "afternoon", salary(1500), []string{"Spanish", "English", "French"}),
		models.NewHousekeeper("María Rodríguez", "HK-001", "morning", salary(1200), []int{101, 102, 103}, 1, ""),
		models.NewHousekeeper("Pedro Sánchez", "HK-002", "afternoon", salary(1200), []int{201, 202, 203}, 2, ""),
		models.NewMaintenanceTech("Juan Martínez", "MT-001", "night", salary(1300), "electrical", true),
		models.NewMaintenanceTech("Laura Fernández", "MT-002", "day", salary(1300), "plumbing", false),
		models.NewManager("Roberto Vargas", "GER-001", "administrative", salary(2500), "reception", 3),
		models.NewManager("Sofía Ramírez", "GER-002", "administrative", salary(2500), "services", 5),
	}
	for _, e := range employees {
		if err := h.AddEmployee(e); err != nil {
			return fmt.Errorf("seed employees: %w", err)
		}
	}

	yes, no := true, false
	discount := models.DefaultGroupDiscount
	meals := 3
	reservations := []models.ReservationRecord{
		{
			Code: "RES-001", Type: string(models.KindIndividual), StartDate: "2024-01-15", EndDate: "2024-01-18",
			RoomNumber: 101, Guest: "Mr. Alejandro Torres", Purpose: "business", Breakfast: &yes,
		},
		{
			Code: "RES-004", Type: string(models.KindIndividual), StartDate: "2024-01-20", EndDate: "2024-01-22",
			RoomNumber: 102, Guest: "Mrs. Laura Mendoza", Purpose: "vacation", Breakfast: &no,
		},
		{
			Code: "RES-002", Type: string(models.KindGroup), StartDate: "2024-01-25", EndDate: "2024-01-30",
			RoomNumbers: datatypes.NewJSONSlice([]int{201, 202}), GroupName: "González Family", People: 3,
			Discount: &discount, Coordinator: "Mrs. González",
		},
		{
			Code: "RES-003", Type: string(models.KindCorporate), StartDate: "2024-02-01", EndDate: "2024-02-05",
			RoomNumber: 301, Guests: datatypes.NewJSONSlice([]string{"Executive 1", "Executive 2"}),
			Company: "Tech Solutions", Agreement: &yes, DirectBilling: &yes,
		},
		{
			Code: "RES-005", Type: string(models.KindPackage), StartDate: "2024-02-10", EndDate: "2024-02-15",
			RoomNumber: 401, Guests: datatypes.NewJSONSlice([]string{"International Group"}),
			Tour: "City Tour", Transport: &yes, Meals: &meals, Guide: &yes,
		},
	}
	for _, rec := range reservations {
		if _, err := h.CreateReservation(rec); err != nil {
			return fmt.Errorf("seed reservations: %w", err)
		}
	}

	requests := []models.ServiceRecord{
		{
			Code: "SRV-001", Type: string(models.KindRestaurant), Name: "Special Dinner", RoomNumber: 101,
			RequestedAt: "2024-01-15 20:00", Guests: 2, Menu: "gourmet", Location: "room",
		},
		{
			Code: "SRV-002", Type: string(models.KindSpa), Name: "Afternoon Relaxation", RoomNumber: 202,
			RequestedAt: "2024-01-26 16:00", Treatment: "relaxing massage", Minutes: 90, Therapist: "Elena",
		},
		{
			Code: "SRV-003", Type: string(models.KindLaundry), Name: "Business Suits", RoomNumber: 301,
			RequestedAt: "2024-02-01 09:30", Garments: 5, ServiceType: "dry clean", Urgent: true,
		},
		{
			Code: "SRV-004", Type: string(models.KindRoomService), Name: "Late Snack", RoomNumber: 401,
			RequestedAt: "2024-02-10 23:15", Items: datatypes.NewJSONSlice([]string{"sandwich", "beer", "dessert"}),
			DeliveryHour: "23:30",
		},
	}
	for _, rec := range requests {
		if _, err := h.CreateServiceRequest(rec); err != nil {
			return fmt.Errorf("seed service requests: %w", err)
		}
	}
	return nil
}
