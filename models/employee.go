package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type EmployeeKind string

const (
	KindReceptionist EmployeeKind = "Receptionist"
	KindHousekeeping EmployeeKind = "Housekeeping"
	KindMaintenance  EmployeeKind = "Maintenance"
	KindManager      EmployeeKind = "Manager"
)

// EmployeeKinds lists the employee roles in report order.
var EmployeeKinds = []EmployeeKind{KindReceptionist, KindHousekeeping, KindMaintenance, KindManager}

func ParseEmployeeKind(s string) (EmployeeKind, bool) {
	for _, k := range EmployeeKinds {
		if strings.EqualFold(string(k), strings.TrimSpace(s)) {
			return k, true
		}
	}
	return "", false
}

// Evaluation is one performance review.
type Evaluation struct {
	Date    string  `json:"date"`
	Rating  float64 `json:"rating"`
	Comment string  `json:"comment"`
}

// Employee is implemented by the four staff roles only.
type Employee interface {
	Code() string
	Name() string
	Shift() string
	BaseSalary() decimal.Decimal
	Evaluations() []Evaluation
	Kind() EmployeeKind

	MonthlySalary() decimal.Decimal
	AssignedTask() string
	Describe() string

	// RecordEvaluation rejects ratings outside 1-5.
	RecordEvaluation(rating float64, comment string) bool

	base() *employeeBase
}

type employeeBase struct {
	code        string
	name        string
	shift       string
	baseSalary  decimal.Decimal
	evaluations []Evaluation
}

func newEmployeeBase(name, code, shift string, baseSalary decimal.Decimal) employeeBase {
	return employeeBase{code: code, name: name, shift: shift, baseSalary: baseSalary}
}

func (e *employeeBase) Code() string                { return e.code }
func (e *employeeBase) Name() string                { return e.name }
func (e *employeeBase) Shift() string               { return e.shift }
func (e *employeeBase) BaseSalary() decimal.Decimal { return e.baseSalary }
func (e *employeeBase) base() *employeeBase         { return e }

func (e *employeeBase) Evaluations() []Evaluation {
	return append([]Evaluation(nil), e.evaluations...)
}

func (e *employeeBase) RecordEvaluation(rating float64, comment string) bool {
	if rating < 1 || rating > 5 {
		return false
	}
	e.evaluations = append(e.evaluations, Evaluation{
		Date:    time.Now().Format(DateLayout),
		Rating:  rating,
		Comment: comment,
	})
	return true
}

func (e *employeeBase) performanceBonus() decimal.Decimal {
	return PerformanceBonus(e.baseSalary, e.evaluations)
}

func (e *employeeBase) shiftIs(s string) bool {
	return strings.EqualFold(strings.TrimSpace(e.shift), s)
}

type Receptionist struct {
	employeeBase
	Languages     []string
	RotatingShift bool
}

func NewReceptionist(name, code, shift string, baseSalary decimal.Decimal, languages []string) *Receptionist {
	return &Receptionist{
		employeeBase:  newEmployeeBase(name, code, shift, baseSalary),
		Languages:     append([]string(nil), languages...),
		RotatingShift: true,
	}
}

func (e *Receptionist) Kind() EmployeeKind { return KindReceptionist }

func (e *Receptionist) MonthlySalary() decimal.Decimal {
	salary := e.baseSalary
	if n := len(e.Languages); n > 1 {
		salary = salary.Add(money(50000 * int64(n-1)))
	}
	if e.RotatingShift {
		salary = salary.Add(money(80000))
	}
	salary = salary.Add(e.performanceBonus())
	return salary.Add(money(150000))
}

func (e *Receptionist) AssignedTask() string {
	switch {
	case e.shiftIs("morning"):
		return "Front desk guest service, Guest check-in and check-out"
	case e.shiftIs("afternoon"):
		return "Phone reservations, Tourist information"
	}
	return "Complaint handling, Coordination with other departments"
}

func (e *Receptionist) Describe() string {
	return fmt.Sprintf("Receptionist: %s | Languages: %s | Shift: %s | Salary: %s",
		e.name, strings.Join(e.Languages, ", "), e.shift, formatMoney(e.MonthlySalary()))
}

type Housekeeper struct {
	employeeBase
	AssignedRooms []int
	Floor         int
	Supervisor    string
}

func NewHousekeeper(name, code, shift string, baseSalary decimal.Decimal, rooms []int, floor int, supervisor string) *Housekeeper {
	return &Housekeeper{
		employeeBase:  newEmployeeBase(name, code, shift, baseSalary),
		AssignedRooms: append([]int(nil), rooms...),
		Floor:         floor,
		Supervisor:    supervisor,
	}
}

func (e *Housekeeper) Kind() EmployeeKind { return KindHousekeeping }

func (e *Housekeeper) MonthlySalary() decimal.Decimal {
	salary := e.baseSalary
	if n := len(e.AssignedRooms); n > 5 {
		salary = salary.Add(money(20000 * int64(n-5)))
	}
	if e.Floor >= 3 {
		salary = salary.Add(money(50000))
	}
	salary = salary.Add(e.performanceBonus())
	return salary.Add(money(100000))
}

func (e *Housekeeper) AssignedTask() string {
	switch {
	case e.shiftIs("morning"):
		return fmt.Sprintf("Cleaning %d rooms on floor %d", len(e.AssignedRooms), e.Floor)
	case e.shiftIs("afternoon"):
		return "Preparing rooms for check-in and additional services"
	}
	return "General cleaning and preparation for the next day"
}

// AddRoom assigns a room once; repeated numbers are ignored.
func (e *Housekeeper) AddRoom(number int) {
	for _, n := range e.AssignedRooms {
		if n == number {
			return
		}
	}
	e.AssignedRooms = append(e.AssignedRooms, number)
}

func (e *Housekeeper) Describe() string {
	return fmt.Sprintf("Housekeeping: %s | Floor %d | %d rooms | Salary: %s",
		e.name, e.Floor, len(e.AssignedRooms), formatMoney(e.MonthlySalary()))
}

type MaintenanceTech struct {
	employeeBase
	Specialty string
	OnCall24h bool
}

var specialtyBonus = map[string]int64{
	"electrical": 100000,
	"plumbing":   80000,
	"carpentry":  70000,
	"general":    50000,
}

var specialtyTools = map[string][]string{
	"electrical": {"multimeter", "pliers", "electrical tape", "screwdrivers"},
	"plumbing":   {"adjustable wrench", "plunger", "teflon tape", "pipe cutter"},
	"carpentry":  {"hammer", "saw", "drill", "level", "tape measure"},
	"general":    {"basic kit", "flashlight", "gloves", "toolbox"},
}

func NewMaintenanceTech(name, code, shift string, baseSalary decimal.Decimal, specialty string, onCall24h bool) *MaintenanceTech {
	return &MaintenanceTech{
		employeeBase: newEmployeeBase(name, code, shift, baseSalary),
		Specialty:    specialty,
		OnCall24h:    onCall24h,
	}
}

func (e *MaintenanceTech) Kind() EmployeeKind { return KindMaintenance }

// Tools lists the toolkit carried for the specialty.
func (e *MaintenanceTech) Tools() []string {
	if tools, ok := specialtyTools[strings.ToLower(e.Specialty)]; ok {
		return append([]string(nil), tools...)
	}
	return []string{"basic kit"}
}

func (e *MaintenanceTech) MonthlySalary() decimal.Decimal {
	salary := e.baseSalary.Add(lookupPrice(specialtyBonus, e.Specialty, 0))
	if e.OnCall24h {
		salary = salary.Add(money(150000))
	}
	salary = salary.Add(e.performanceBonus())
	return salary.Add(money(50000))
}

func (e *MaintenanceTech) AssignedTask() string {
	if e.OnCall24h {
		return "Preventive maintenance and 24h emergencies - Specialty: " + e.Specialty
	}
	return "Scheduled maintenance - Specialty: " + e.Specialty
}

func (e *MaintenanceTech) Describe() string {
	availability := e.shift
	if e.OnCall24h {
		availability = "24h"
	}
	return fmt.Sprintf("Maintenance: %s | %s | Availability: %s | Salary: %s",
		e.name, e.Specialty, availability, formatMoney(e.MonthlySalary()))
}

type Manager struct {
	employeeBase
	Department     string
	Headcount      int
	OccupancyBonus decimal.Decimal
}

var departmentBonus = map[string]int64{
	"reception":   200000,
	"services":    180000,
	"maintenance": 150000,
	"restaurant":  220000,
	"spa":         170000,
}

func NewManager(name, code, shift string, baseSalary decimal.Decimal, department string, headcount int) *Manager {
	return &Manager{
		employeeBase:   newEmployeeBase(name, code, shift, baseSalary),
		Department:     department,
		Headcount:      headcount,
		OccupancyBonus: decimal.Zero,
	}
}

func (e *Manager) Kind() EmployeeKind { return KindManager }

func (e *Manager) MonthlySalary() decimal.Decimal {
	salary := e.baseSalary.Add(lookupPrice(departmentBonus, e.Department, 100000))
	if e.Headcount > 0 {
		salary = salary.Add(money(20000 * int64(e.Headcount)))
	}
	salary = salary.Add(e.OccupancyBonus)
	return salary.Add(e.performanceBonus())
}

func (e *Manager) AssignedTask() string {
	return fmt.Sprintf("Management of the %s department | Supervising %d employees | Coordination meetings | Reports to the board",
		e.Department, e.Headcount)
}

// UpdateOccupancyBonus sets the bonus tier for an occupancy percentage.
func (e *Manager) UpdateOccupancyBonus(occupancyPct decimal.Decimal) {
	switch {
	case occupancyPct.GreaterThanOrEqual(decimal.NewFromInt(85)):
		e.OccupancyBonus = money(300000)
	case occupancyPct.GreaterThanOrEqual(decimal.NewFromInt(70)):
		e.OccupancyBonus = money(200000)
	case occupancyPct.GreaterThanOrEqual(decimal.NewFromInt(50)):
		e.OccupancyBonus = money(100000)
	default:
		e.OccupancyBonus = decimal.Zero
	}
}

func (e *Manager) Describe() string {
	return fmt.Sprintf("Manager: %s | Dept: %s | Staff: %d | Salary: %s",
		e.name, e.Department, e.Headcount, formatMoney(e.MonthlySalary()))
}
