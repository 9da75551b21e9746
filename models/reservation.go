package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type ReservationKind string

const (
	KindIndividual ReservationKind = "Individual"
	KindGroup      ReservationKind = "Group"
	KindCorporate  ReservationKind = "Corporate"
	KindPackage    ReservationKind = "Package"
)

// ReservationKinds lists the reservation variants in report order.
var ReservationKinds = []ReservationKind{KindIndividual, KindGroup, KindCorporate, KindPackage}

func ParseReservationKind(s string) (ReservationKind, bool) {
	for _, k := range ReservationKinds {
		if strings.EqualFold(string(k), strings.TrimSpace(s)) {
			return k, true
		}
	}
	return "", false
}

// DefaultGroupDiscount is the group discount percentage used when none is given.
const DefaultGroupDiscount = 15.0

// Reservation is implemented by the four reservation variants only.
type Reservation interface {
	Code() string
	StartDate() string
	EndDate() string
	// Room is the primary room. Rooms lists every room the reservation holds.
	Room() Room
	Rooms() []Room
	Guests() []string
	Kind() ReservationKind

	Nights() int
	TotalCost() decimal.Decimal
	CancellationPolicy() string
	Describe() string

	AddGuest(guest string)

	base() *reservationBase
}

type reservationBase struct {
	code      string
	startDate string
	endDate   string
	room      Room
	guests    []string
}

func (r *reservationBase) Code() string           { return r.code }
func (r *reservationBase) StartDate() string      { return r.startDate }
func (r *reservationBase) EndDate() string        { return r.endDate }
func (r *reservationBase) Room() Room             { return r.room }
func (r *reservationBase) Rooms() []Room          { return []Room{r.room} }
func (r *reservationBase) AddGuest(guest string)  { r.guests = append(r.guests, guest) }
func (r *reservationBase) base() *reservationBase { return r }

func (r *reservationBase) Guests() []string {
	return append([]string(nil), r.guests...)
}

// Nights is the calendar day difference between the dates. Unparseable
// dates and non-positive differences count as one night.
func (r *reservationBase) Nights() int {
	return CountNights(r.startDate, r.endDate)
}

func (r *reservationBase) summary() string {
	return fmt.Sprintf("Reservation %s | Room %d | %s to %s (%d nights)",
		r.code, r.room.Number(), r.startDate, r.endDate, r.Nights())
}

// CountNights returns the number of nights between two YYYY-MM-DD dates,
// falling back to 1.
func CountNights(start, end string) int {
	s, err := time.Parse(DateLayout, start)
	if err != nil {
		return 1
	}
	e, err := time.Parse(DateLayout, end)
	if err != nil {
		return 1
	}
	days := int(e.Sub(s).Hours() / 24)
	if days < 1 {
		return 1
	}
	return days
}

func roomCost(room Room, nights int) decimal.Decimal {
	return room.NightlyRate().Mul(decimal.NewFromInt(int64(nights)))
}

type IndividualReservation struct {
	reservationBase
	Guest     string
	Purpose   string
	Breakfast bool
}

func NewIndividualReservation(code, start, end string, room Room, guest, purpose string, breakfast bool) *IndividualReservation {
	r := &IndividualReservation{
		reservationBase: reservationBase{code: code, startDate: start, endDate: end, room: room},
		Guest:           guest,
		Purpose:         purpose,
		Breakfast:       breakfast,
	}
	r.guests = append(r.guests, guest)
	return r
}

func (r *IndividualReservation) Kind() ReservationKind { return KindIndividual }

func (r *IndividualReservation) TotalCost() decimal.Decimal {
	nights := r.Nights()
	cost := roomCost(r.room, nights)
	if r.Breakfast {
		cost = cost.Add(money(25000 * int64(nights)))
	}
	if strings.EqualFold(r.Purpose, "business") {
		cost = cost.Mul(decimal.RequireFromString("0.95"))
	}
	return cost
}

func (r *IndividualReservation) CancellationPolicy() string {
	return "Free cancellation up to 48 hours before arrival. 50% penalty within 48 hours."
}

func (r *IndividualReservation) Describe() string {
	return fmt.Sprintf("Individual: %s | Guest: %s | Purpose: %s", r.code, r.Guest, r.Purpose)
}

type GroupReservation struct {
	reservationBase
	rooms       []Room
	GroupName   string
	People      int
	Discount    float64
	Coordinator string
}

// NewGroupReservation uses the first room as the primary room; rooms must
// not be empty.
func NewGroupReservation(code, start, end string, rooms []Room, groupName string, people int, discount float64, coordinator string) *GroupReservation {
	r := &GroupReservation{
		reservationBase: reservationBase{code: code, startDate: start, endDate: end, room: rooms[0]},
		rooms:           append([]Room(nil), rooms...),
		GroupName:       groupName,
		People:          people,
		Discount:        discount,
		Coordinator:     coordinator,
	}
	r.guests = append(r.guests, "Group: "+groupName)
	return r
}

func (r *GroupReservation) Kind() ReservationKind { return KindGroup }

func (r *GroupReservation) Rooms() []Room {
	return append([]Room(nil), r.rooms...)
}

func (r *GroupReservation) AddRoom(room Room) {
	r.rooms = append(r.rooms, room)
}

func (r *GroupReservation) TotalCost() decimal.Decimal {
	nights := r.Nights()
	cost := decimal.Zero
	for _, room := range r.rooms {
		cost = cost.Add(roomCost(room, nights))
	}
	factor := decimal.NewFromInt(1).Sub(decimal.NewFromFloat(r.Discount).Div(decimal.NewFromInt(100)))
	cost = cost.Mul(factor)
	if r.Coordinator != "" {
		cost = cost.Add(money(100000))
	}
	return cost
}

func (r *GroupReservation) CancellationPolicy() string {
	return "Free cancellation up to 1 week before arrival. 30% penalty within the week."
}

func (r *GroupReservation) Describe() string {
	return fmt.Sprintf("Group: %s | Group: %s | %d rooms | %d people",
		r.code, r.GroupName, len(r.rooms), r.People)
}

type CorporateReservation struct {
	reservationBase
	Company       string
	Agreement     bool
	DirectBilling bool
}

func NewCorporateReservation(code, start, end string, room Room, guests []string, company string, agreement, directBilling bool) *CorporateReservation {
	r := &CorporateReservation{
		reservationBase: reservationBase{code: code, startDate: start, endDate: end, room: room},
		Company:         company,
		Agreement:       agreement,
		DirectBilling:   directBilling,
	}
	for _, g := range guests {
		r.AddGuest(g)
	}
	if len(r.guests) == 0 {
		r.AddGuest(company)
	}
	return r
}

func (r *CorporateReservation) Kind() ReservationKind { return KindCorporate }

func (r *CorporateReservation) TotalCost() decimal.Decimal {
	cost := roomCost(r.room, r.Nights())
	if r.Agreement {
		cost = cost.Mul(decimal.RequireFromString("0.80"))
	}
	return cost
}

func (r *CorporateReservation) CancellationPolicy() string {
	return "Flexible cancellation per contract. Usually no penalty with 3 days notice."
}

func (r *CorporateReservation) Describe() string {
	return fmt.Sprintf("Corporate: %s | Company: %s | Agreement: %s | Direct billing: %s",
		r.code, r.Company, yesNo(r.Agreement), yesNo(r.DirectBilling))
}

type PackageReservation struct {
	reservationBase
	Tour      string
	Transport bool
	Meals     int
	Guide     bool
}

func NewPackageReservation(code, start, end string, room Room, guests []string, tour string, transport bool, meals int, guide bool) *PackageReservation {
	if meals < 0 {
		meals = 0
	}
	r := &PackageReservation{
		reservationBase: reservationBase{code: code, startDate: start, endDate: end, room: room},
		Tour:            tour,
		Transport:       transport,
		Meals:           meals,
		Guide:           guide,
	}
	for _, g := range guests {
		r.AddGuest(g)
	}
	if len(r.guests) == 0 {
		r.AddGuest("Package: " + tour)
	}
	return r
}

func (r *PackageReservation) Kind() ReservationKind { return KindPackage }

func (r *PackageReservation) TotalCost() decimal.Decimal {
	nights := int64(r.Nights())
	cost := roomCost(r.room, int(nights))
	cost = cost.Add(money(150000))
	if r.Transport {
		cost = cost.Add(money(80000 * nights))
	}
	cost = cost.Add(money(35000 * int64(r.Meals) * nights))
	if r.Guide {
		cost = cost.Add(money(120000 * nights))
	}
	return cost.Mul(decimal.RequireFromString("0.90"))
}

func (r *PackageReservation) CancellationPolicy() string {
	return "Non-refundable after confirmation. Date changes allowed with a 25% fee."
}

func (r *PackageReservation) Describe() string {
	var extras []string
	if r.Transport {
		extras = append(extras, "Transport")
	}
	if r.Guide {
		extras = append(extras, "Guide")
	}
	return fmt.Sprintf("Package: %s | Tour: %s | Meals/day: %d | Services: %s",
		r.code, r.Tour, r.Meals, strings.Join(extras, ", "))
}

// Summary is the one-line header shared by every reservation variant.
func Summary(r Reservation) string {
	return r.base().summary()
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
