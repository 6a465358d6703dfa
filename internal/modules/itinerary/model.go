// README: Itinerary request/response value objects and the ISO date type they share.
package itinerary

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"
	"time"
)

// DateLayout is the ISO calendar date format used on the wire.
const DateLayout = "2006-01-02"

// DefaultCurrency applies wherever a currency is absent.
const DefaultCurrency = "USD"

// MaxTripDays bounds a single request; one response carries every day.
const MaxTripDays = 365

// Date is a calendar date without time of day, always held at UTC midnight.
type Date struct {
	time.Time
}

// ParseDate parses an ISO calendar date (YYYY-MM-DD).
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return Date{}, fmt.Errorf("%w: date %q is not YYYY-MM-DD", ErrInvalidRequest, s)
	}
	return Date{Time: t}, nil
}

// MustParseDate is ParseDate for literals; it panics on malformed input.
func MustParseDate(s string) Date {
	d, err := ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

func (d Date) String() string {
	return d.Format(DateLayout)
}

// AddDays returns the date n calendar days later.
func (d Date) AddDays(n int) Date {
	return Date{Time: d.Time.AddDate(0, 0, n)}
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("%w: date must be a string", ErrInvalidRequest)
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Request is the caller's trip description.
type Request struct {
	Destination string   `json:"destination"`
	StartDate   Date     `json:"startDate"`
	EndDate     Date     `json:"endDate"`
	Travelers   int      `json:"travelers"`
	Budget      string   `json:"budget"`
	Interests   []string `json:"interests"`
}

// Validate checks the preconditions the pipeline relies on.
func (r Request) Validate() error {
	if strings.TrimSpace(r.Destination) == "" {
		return fmt.Errorf("%w: destination is required", ErrInvalidRequest)
	}
	if r.StartDate.IsZero() || r.EndDate.IsZero() {
		return fmt.Errorf("%w: startDate and endDate are required", ErrInvalidRequest)
	}
	if r.EndDate.Before(r.StartDate.Time) {
		return fmt.Errorf("%w: endDate is before startDate", ErrInvalidRequest)
	}
	if r.Days() > MaxTripDays {
		return fmt.Errorf("%w: trip is longer than %d days", ErrInvalidRequest, MaxTripDays)
	}
	if r.Travelers < 1 {
		return fmt.Errorf("%w: travelers must be at least 1", ErrInvalidRequest)
	}
	return nil
}

// Days is the inclusive number of calendar days between StartDate and EndDate.
// Both dates sit at UTC midnight, so whole-second differences divide evenly.
func (r Request) Days() int {
	return int((r.EndDate.Unix()-r.StartDate.Unix())/secondsPerDay) + 1
}

const secondsPerDay = 24 * 60 * 60

// HasInterest reports whether tag is one of the requested interests (exact match).
func (r Request) HasInterest(tag string) bool {
	return slices.Contains(r.Interests, tag)
}

func (r Request) interests() []string {
	if r.Interests == nil {
		return []string{}
	}
	return slices.Clone(r.Interests)
}

type Activity struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Time        string  `json:"time"`
	Duration    string  `json:"duration"`
	Location    string  `json:"location"`
	Category    string  `json:"category"`
	Cost        float64 `json:"cost"`
	Currency    string  `json:"currency"`
	Icon        string  `json:"icon"`
	BookingURL  string  `json:"bookingUrl"`
	Notes       string  `json:"notes"`
}

type Restaurant struct {
	Name        string  `json:"name"`
	Cuisine     string  `json:"cuisine"`
	Description string  `json:"description"`
	Address     string  `json:"address"`
	Phone       string  `json:"phone"`
	PriceRange  string  `json:"priceRange"`
	Rating      float64 `json:"rating"`
	TimeSlot    string  `json:"timeSlot"`
	BookingURL  string  `json:"bookingUrl"`
	Notes       string  `json:"notes"`
}

type Accommodation struct {
	Name        string  `json:"name"`
	Type        string  `json:"type"`
	Description string  `json:"description"`
	Address     string  `json:"address"`
	Phone       string  `json:"phone"`
	Rating      float64 `json:"rating"`
	PriceRange  string  `json:"priceRange"`
	NightlyRate float64 `json:"nightlyRate"`
	Currency    string  `json:"currency"`
	Amenities   string  `json:"amenities"`
	BookingURL  string  `json:"bookingUrl"`
	CheckIn     string  `json:"checkIn"`
	CheckOut    string  `json:"checkOut"`
}

// Day is one calendar day of the plan.
type Day struct {
	DayNumber           int          `json:"dayNumber"`
	Date                string       `json:"date"`
	DayTitle            string       `json:"dayTitle"`
	MorningActivities   []Activity   `json:"morningActivities"`
	AfternoonActivities []Activity   `json:"afternoonActivities"`
	EveningActivities   []Activity   `json:"eveningActivities"`
	Restaurants         []Restaurant `json:"restaurants"`
	DaySummary          string       `json:"daySummary"`
	// EstimatedCost covers activities only; restaurants are not priced.
	EstimatedCost float64 `json:"estimatedCost"`
}

// Activities returns morning, afternoon and evening activities in order.
func (d Day) Activities() []Activity {
	out := make([]Activity, 0, len(d.MorningActivities)+len(d.AfternoonActivities)+len(d.EveningActivities))
	out = append(out, d.MorningActivities...)
	out = append(out, d.AfternoonActivities...)
	return append(out, d.EveningActivities...)
}

// Itinerary is the full multi-day plan returned to the caller.
type Itinerary struct {
	Destination        string        `json:"destination"`
	StartDate          Date          `json:"startDate"`
	EndDate            Date          `json:"endDate"`
	Travelers          int           `json:"travelers"`
	Budget             string        `json:"budget"`
	Interests          []string      `json:"interests"`
	Days               []Day         `json:"days"`
	Accommodation      Accommodation `json:"accommodation"`
	TotalEstimatedCost float64       `json:"totalEstimatedCost"`
	Currency           string        `json:"currency"`
	TravelTips         []string      `json:"travelTips"`
}

// newItinerary echoes the request fields; the caller fills in the rest.
func newItinerary(req Request) *Itinerary {
	return &Itinerary{
		Destination: req.Destination,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Travelers:   req.Travelers,
		Budget:      req.Budget,
		Interests:   req.interests(),
		Days:        []Day{},
		Currency:    DefaultCurrency,
		TravelTips:  []string{},
	}
}

func sumCosts(activities []Activity) float64 {
	var total float64
	for _, a := range activities {
		total += a.Cost
	}
	return total
}
