package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type ServiceKind string

const (
	KindRestaurant  ServiceKind = "Restaurant"
	KindSpa         ServiceKind = "Spa"
	KindLaundry     ServiceKind = "Laundry"
	KindRoomService ServiceKind = "RoomService"
)

// ServiceKinds lists the service variants in report order.
var ServiceKinds = []ServiceKind{KindRestaurant, KindSpa, KindLaundry, KindRoomService}

func ParseServiceKind(s string) (ServiceKind, bool) {
	for _, k := range ServiceKinds {
		if strings.EqualFold(string(k), strings.TrimSpace(s)) {
			return k, true
		}
	}
	return "", false
}

// NotRegistered is reported for requests without a request timestamp.
const NotRegistered = "not registered"

// ServiceRequest is implemented by the four service variants only.
type ServiceRequest interface {
	Code() string
	Name() string
	RoomNumber() int
	RequestedAt() string
	AvailableHours() string
	Kind() ServiceKind

	Cost() decimal.Decimal
	Duration() string
	Describe() string

	// RegisterRequest stamps the request; an empty timestamp means now.
	RegisterRequest(timestamp string)

	base() *serviceBase
}

type serviceBase struct {
	code        string
	name        string
	roomNumber  int
	requestedAt string
	hours       string
}

func (s *serviceBase) Code() string           { return s.code }
func (s *serviceBase) Name() string           { return s.name }
func (s *serviceBase) RoomNumber() int        { return s.roomNumber }
func (s *serviceBase) AvailableHours() string { return s.hours }
func (s *serviceBase) base() *serviceBase     { return s }

func (s *serviceBase) RequestedAt() string {
	if s.requestedAt == "" {
		return NotRegistered
	}
	return s.requestedAt
}

func (s *serviceBase) RegisterRequest(timestamp string) {
	if timestamp == "" {
		timestamp = time.Now().Format(TimestampLayout)
	}
	s.requestedAt = timestamp
}

type RestaurantService struct {
	serviceBase
	Guests   int
	Menu     string
	Location string
}

var restaurantMenu = map[string]int64{
	"basic":     35000,
	"executive": 55000,
	"premium":   85000,
	"gourmet":   120000,
}

var restaurantTimes = map[string]string{
	"basic":     "45 minutes",
	"executive": "1 hour",
	"premium":   "1.5 hours",
	"gourmet":   "2 hours",
}

func NewRestaurantService(code, name string, room, guests int, menu, location string) *RestaurantService {
	if guests < 1 {
		guests = 1
	}
	return &RestaurantService{
		serviceBase: serviceBase{code: code, name: name, roomNumber: room, hours: "06:00-23:00"},
		Guests:      guests,
		Menu:        menu,
		Location:    location,
	}
}

func (s *RestaurantService) Kind() ServiceKind { return KindRestaurant }

func (s *RestaurantService) Cost() decimal.Decimal {
	cost := lookupPrice(restaurantMenu, s.Menu, 35000).Mul(decimal.NewFromInt(int64(s.Guests)))
	switch s.Location {
	case "room":
		cost = cost.Mul(decimal.RequireFromString("1.15"))
	case "terrace":
		cost = cost.Mul(decimal.RequireFromString("1.10"))
	}
	return cost
}

func (s *RestaurantService) Duration() string {
	if d, ok := restaurantTimes[strings.ToLower(s.Menu)]; ok {
		return d
	}
	return "1 hour"
}

func (s *RestaurantService) Describe() string {
	return fmt.Sprintf("Restaurant: %s | %d guests | Menu: %s | Location: %s",
		s.name, s.Guests, s.Menu, s.Location)
}

type SpaService struct {
	serviceBase
	Treatment string
	Minutes   int
	Therapist string
}

var spaTreatments = map[string]int64{
	"relaxing massage":    80000,
	"therapeutic massage": 95000,
	"rejuvenating facial": 120000,
	"swedish massage":     110000,
	"hot stone massage":   150000,
	"body treatment":      180000,
	"day spa":             250000,
}

// NewSpaService builds a spa booking; a non-positive duration means 60 minutes.
func NewSpaService(code, name string, room int, treatment string, minutes int, therapist string) *SpaService {
	if minutes <= 0 {
		minutes = 60
	}
	return &SpaService{
		serviceBase: serviceBase{code: code, name: name, roomNumber: room, hours: "08:00-21:00"},
		Treatment:   treatment,
		Minutes:     minutes,
		Therapist:   therapist,
	}
}

func (s *SpaService) Kind() ServiceKind { return KindSpa }

func (s *SpaService) Cost() decimal.Decimal {
	hourly := lookupPrice(spaTreatments, s.Treatment, 80000)
	cost := hourly.Mul(decimal.NewFromInt(int64(s.Minutes))).Div(decimal.NewFromInt(60))
	if s.Therapist != "" {
		cost = cost.Mul(decimal.RequireFromString("1.20"))
	}
	return cost
}

func (s *SpaService) Duration() string {
	return fmt.Sprintf("%d minutes", s.Minutes)
}

func (s *SpaService) Describe() string {
	therapist := s.Therapist
	if therapist == "" {
		therapist = "To be assigned"
	}
	return fmt.Sprintf("Spa: %s | Treatment: %s | Duration: %d min | Therapist: %s",
		s.name, s.Treatment, s.Minutes, therapist)
}

type LaundryService struct {
	serviceBase
	Garments    int
	ServiceType string
	Urgent      bool
}

var laundryPrices = map[string]int64{
	"wash":          5000,
	"iron":          3000,
	"wash and iron": 7000,
	"dry clean":     12000,
}

var laundryTimes = map[string]string{
	"wash":          "24 hours",
	"iron":          "12 hours",
	"wash and iron": "24 hours",
	"dry clean":     "48 hours",
}

func NewLaundryService(code, name string, room, garments int, serviceType string, urgent bool) *LaundryService {
	if garments < 1 {
		garments = 1
	}
	return &LaundryService{
		serviceBase: serviceBase{code: code, name: name, roomNumber: room, hours: "24 hours"},
		Garments:    garments,
		ServiceType: serviceType,
		Urgent:      urgent,
	}
}

func (s *LaundryService) Kind() ServiceKind { return KindLaundry }

func (s *LaundryService) Cost() decimal.Decimal {
	cost := lookupPrice(laundryPrices, s.ServiceType, 5000).Mul(decimal.NewFromInt(int64(s.Garments)))
	if s.Urgent {
		cost = cost.Mul(decimal.RequireFromString("1.50"))
	}
	return cost
}

func (s *LaundryService) Duration() string {
	if s.Urgent {
		return "4-6 hours"
	}
	if d, ok := laundryTimes[strings.ToLower(s.ServiceType)]; ok {
		return d
	}
	return "24 hours"
}

func (s *LaundryService) Describe() string {
	speed := "Normal"
	if s.Urgent {
		speed = "EXPRESS"
	}
	return fmt.Sprintf("Laundry: %s | %d garments | Service: %s | %s",
		s.name, s.Garments, s.ServiceType, speed)
}

type RoomServiceOrder struct {
	serviceBase
	Items        []string
	DeliveryHour string
	Floor        int
}

var roomServiceMenu = map[string]int64{
	"coffee":   8000,
	"tea":      7000,
	"juice":    9000,
	"sandwich": 15000,
	"salad":    18000,
	"soup":     12000,
	"dessert":  10000,
	"fruit":    8000,
	"bread":    5000,
	"water":    5000,
	"soda":     7000,
	"beer":     12000,
	"wine":     25000,
	"whisky":   35000,
}

func NewRoomServiceOrder(code, name string, room int, items []string, deliveryHour string, floor int) *RoomServiceOrder {
	return &RoomServiceOrder{
		serviceBase:  serviceBase{code: code, name: name, roomNumber: room, hours: "24 hours"},
		Items:        append([]string(nil), items...),
		DeliveryHour: deliveryHour,
		Floor:        floor,
	}
}

func (s *RoomServiceOrder) Kind() ServiceKind { return KindRoomService }

func (s *RoomServiceOrder) Cost() decimal.Decimal {
	cost := decimal.Zero
	for _, item := range s.Items {
		cost = cost.Add(lookupPrice(roomServiceMenu, item, 10000))
	}
	cost = cost.Add(money(5000))
	if s.Floor >= 5 {
		cost = cost.Add(money(2000))
	}
	return ApplyNightSurcharge(cost, s.DeliveryHour)
}

func (s *RoomServiceOrder) Duration() string { return "15-30 minutes" }

func (s *RoomServiceOrder) Describe() string {
	shown := s.Items
	if len(shown) > 3 {
		shown = shown[:3]
	}
	items := strings.Join(shown, ", ")
	if len(s.Items) > 3 {
		items += fmt.Sprintf(" and %d more", len(s.Items)-3)
	}
	return fmt.Sprintf("Room Service: %s | Items: %s | Hour: %s | Floor: %d",
		s.name, items, s.DeliveryHour, s.Floor)
}
