package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type RoomStatus string

const (
	StatusAvailable   RoomStatus = "available"
	StatusOccupied    RoomStatus = "occupied"
	StatusCleaning    RoomStatus = "cleaning"
	StatusMaintenance RoomStatus = "maintenance"
)

// RoomStatuses lists the valid statuses in report order.
var RoomStatuses = []RoomStatus{StatusAvailable, StatusOccupied, StatusCleaning, StatusMaintenance}

// ParseRoomStatus reports whether s is one of the four room statuses.
func ParseRoomStatus(s string) (RoomStatus, bool) {
	for _, st := range RoomStatuses {
		if string(st) == s {
			return st, true
		}
	}
	return "", false
}

type RoomKind string

const (
	KindSimple    RoomKind = "Simple"
	KindDouble    RoomKind = "Double"
	KindSuite     RoomKind = "Suite"
	KindPenthouse RoomKind = "Penthouse"
)

// RoomKinds lists the room variants in report order.
var RoomKinds = []RoomKind{KindSimple, KindDouble, KindSuite, KindPenthouse}

// ParseRoomKind matches a variant name case-insensitively.
func ParseRoomKind(s string) (RoomKind, bool) {
	for _, k := range RoomKinds {
		if strings.EqualFold(string(k), strings.TrimSpace(s)) {
			return k, true
		}
	}
	return "", false
}

// GuestStay is one entry of a room's guest history.
type GuestStay struct {
	Guest     string `json:"guest"`
	Timestamp string `json:"timestamp"`
	Room      string `json:"room"`
}

// Room is implemented by the four room variants only.
type Room interface {
	Number() int
	Floor() int
	Status() RoomStatus
	BaseRate() decimal.Decimal
	Kind() RoomKind
	Amenities() []string
	GuestHistory() []GuestStay

	// NightlyRate is the taxed price of one night.
	NightlyRate() decimal.Decimal
	Capacity() int
	Describe() string

	ChangeStatus(status string) bool
	AddGuestToHistory(guest string)

	base() *roomBase
}

type roomBase struct {
	number    int
	floor     int
	status    RoomStatus
	baseRate  decimal.Decimal
	amenities []string
	history   []GuestStay
}

func newRoomBase(number, floor int, baseRate int64, amenities ...string) roomBase {
	return roomBase{
		number:    number,
		floor:     floor,
		status:    StatusAvailable,
		baseRate:  money(baseRate),
		amenities: amenities,
	}
}

func (r *roomBase) Number() int               { return r.number }
func (r *roomBase) Floor() int                { return r.floor }
func (r *roomBase) Status() RoomStatus        { return r.status }
func (r *roomBase) BaseRate() decimal.Decimal { return r.baseRate }
func (r *roomBase) base() *roomBase           { return r }

func (r *roomBase) Amenities() []string {
	return append([]string(nil), r.amenities...)
}

func (r *roomBase) GuestHistory() []GuestStay {
	return append([]GuestStay(nil), r.history...)
}

// ChangeStatus accepts any of the four statuses regardless of the current one.
func (r *roomBase) ChangeStatus(status string) bool {
	st, ok := ParseRoomStatus(status)
	if !ok {
		return false
	}
	r.status = st
	return true
}

func (r *roomBase) appendHistory(guest string, kind RoomKind) {
	r.history = append(r.history, GuestStay{
		Guest:     guest,
		Timestamp: time.Now().Format(TimestampLayout),
		Room:      fmt.Sprintf("%d (%s)", r.number, kind),
	})
}

type SimpleRoom struct {
	roomBase
	SingleBed  bool
	View       string
	SharedBath bool
}

func NewSimpleRoom(number, floor int, singleBed bool, view string, sharedBath bool) *SimpleRoom {
	return &SimpleRoom{
		roomBase:   newRoomBase(number, floor, 50, "Wi-Fi", "Basic TV", "Air conditioning"),
		SingleBed:  singleBed,
		View:       view,
		SharedBath: sharedBath,
	}
}

func (r *SimpleRoom) Kind() RoomKind { return KindSimple }

func (r *SimpleRoom) NightlyRate() decimal.Decimal {
	rate := r.baseRate
	switch r.View {
	case "street":
		rate = rate.Add(money(10))
	case "garden":
		rate = rate.Add(money(15))
	}
	if r.SharedBath {
		rate = rate.Sub(money(5))
	}
	return ApplyTax(rate)
}

func (r *SimpleRoom) Capacity() int { return 1 }

func (r *SimpleRoom) AddGuestToHistory(guest string) { r.appendHistory(guest, r.Kind()) }

func (r *SimpleRoom) Describe() string {
	bath := "Private"
	if r.SharedBath {
		bath = "Shared"
	}
	return fmt.Sprintf("Simple #%d | Floor %d | View: %s | Bath: %s | %s/night",
		r.number, r.floor, r.View, bath, formatMoney(r.NightlyRate()))
}

type DoubleRoom struct {
	roomBase
	BedType     string
	View        string
	PrivateBath bool
}

func NewDoubleRoom(number, floor int, bedType, view string, privateBath bool) *DoubleRoom {
	return &DoubleRoom{
		roomBase:    newRoomBase(number, floor, 80, "Premium Wi-Fi", `32" TV`, "Minibar", "Air conditioning"),
		BedType:     bedType,
		View:        view,
		PrivateBath: privateBath,
	}
}

func (r *DoubleRoom) Kind() RoomKind { return KindDouble }

func (r *DoubleRoom) NightlyRate() decimal.Decimal {
	rate := r.baseRate
	switch r.View {
	case "marina":
		rate = rate.Add(money(25))
	case "mountain":
		rate = rate.Add(money(20))
	}
	if r.BedType == "king" {
		rate = rate.Add(money(15))
	}
	return ApplyTax(rate)
}

func (r *DoubleRoom) Capacity() int {
	if strings.Contains(r.BedType, "2 beds") {
		return 3
	}
	return 2
}

func (r *DoubleRoom) AddGuestToHistory(guest string) { r.appendHistory(guest, r.Kind()) }

func (r *DoubleRoom) Describe() string {
	return fmt.Sprintf("Double #%d | Floor %d | %s | View: %s | %s/night",
		r.number, r.floor, r.BedType, r.View, formatMoney(r.NightlyRate()))
}

type Suite struct {
	roomBase
	LivingRoom bool
	Kitchen    bool
	Jacuzzi    bool
	Bedrooms   int
}

// NewSuite builds a suite; fewer than one bedroom is treated as one.
func NewSuite(number, floor int, livingRoom, kitchen, jacuzzi bool, bedrooms int) *Suite {
	if bedrooms < 1 {
		bedrooms = 1
	}
	return &Suite{
		roomBase:   newRoomBase(number, floor, 200, "VIP Wi-Fi", `55" TV`, "Minibar", "Jacuzzi"),
		LivingRoom: livingRoom,
		Kitchen:    kitchen,
		Jacuzzi:    jacuzzi,
		Bedrooms:   bedrooms,
	}
}

func (r *Suite) Kind() RoomKind { return KindSuite }

func (r *Suite) NightlyRate() decimal.Decimal {
	rate := r.baseRate
	if r.LivingRoom {
		rate = rate.Add(money(50))
	}
	if r.Kitchen {
		rate = rate.Add(money(30))
	}
	if r.Jacuzzi {
		rate = rate.Add(money(80))
	}
	if r.Bedrooms > 1 {
		rate = rate.Add(money(40 * int64(r.Bedrooms-1)))
	}
	return ApplyTax(rate)
}

func (r *Suite) Capacity() int { return r.Bedrooms*2 + 2 }

func (r *Suite) AddGuestToHistory(guest string) { r.appendHistory(guest, r.Kind()) }

func (r *Suite) Describe() string {
	var features []string
	if r.LivingRoom {
		features = append(features, "Living room")
	}
	if r.Kitchen {
		features = append(features, "Kitchen")
	}
	if r.Jacuzzi {
		features = append(features, "Jacuzzi")
	}
	return fmt.Sprintf("Suite #%d | %d bedrooms | Amenities: %s | %s/night",
		r.number, r.Bedrooms, strings.Join(features, ", "), formatMoney(r.NightlyRate()))
}

type Penthouse struct {
	roomBase
	FullFloor bool
	Terrace   bool
	Butler    bool
}

func NewPenthouse(number, floor int, fullFloor, terrace, butler bool) *Penthouse {
	return &Penthouse{
		roomBase:  newRoomBase(number, floor, 500, "Business Wi-Fi", `65" 4K TV`, "Premium minibar", "Butler"),
		FullFloor: fullFloor,
		Terrace:   terrace,
		Butler:    butler,
	}
}

func (r *Penthouse) Kind() RoomKind { return KindPenthouse }

func (r *Penthouse) NightlyRate() decimal.Decimal {
	rate := r.baseRate
	if r.FullFloor {
		rate = rate.Add(money(200))
	}
	if r.Terrace {
		rate = rate.Add(money(100))
	}
	if r.Butler {
		rate = rate.Add(money(150))
	}
	return ApplyTax(rate)
}

func (r *Penthouse) Capacity() int {
	c := 8
	if r.FullFloor {
		c += 2
	}
	if r.Terrace {
		c += 2
	}
	return c
}

func (r *Penthouse) AddGuestToHistory(guest string) { r.appendHistory(guest, r.Kind()) }

func (r *Penthouse) Describe() string {
	var features []string
	if r.FullFloor {
		features = append(features, "Full floor")
	}
	if r.Terrace {
		features = append(features, "Terrace")
	}
	if r.Butler {
		features = append(features, "Butler")
	}
	return fmt.Sprintf("Penthouse #%d | Floor %d | Features: %s | %s/night",
		r.number, r.floor, strings.Join(features, ", "), formatMoney(r.NightlyRate()))
}
