// README: Maps untrusted model JSON onto the itinerary model using per-entity field tables.
package itinerary

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// fieldRule says whether a payload key must be present and, if not, what replaces it.
type fieldRule struct {
	Required bool
	Default  string
}

type fieldTable map[string]fieldRule

var (
	required = fieldRule{Required: true}
	blank    = fieldRule{}
)

func defaultsTo(v string) fieldRule {
	return fieldRule{Default: v}
}

// Payload keys follow the example embedded by BuildPrompt.
var activityFields = fieldTable{
	"name":        required,
	"description": required,
	"time":        required,
	"duration":    required,
	"location":    required,
	"category":    required,
	"cost":        required,
	"currency":    defaultsTo(DefaultCurrency),
	"emoji":       defaultsTo("📍"),
	"bookingUrl":  blank,
	"tips":        blank,
}

var restaurantFields = fieldTable{
	"name":        required,
	"cuisine":     required,
	"description": required,
	"address":     required,
	"phone":       required,
	"priceRange":  required,
	"rating":      required,
	"mealType":    required,
	"bookingUrl":  blank,
	"tips":        blank,
}

var accommodationFields = fieldTable{
	"name":        required,
	"type":        required,
	"description": required,
	"address":     required,
	"phone":       required,
	"rating":      required,
	"priceRange":  required,
	"nightlyRate": required,
	"currency":    defaultsTo(DefaultCurrency),
	"amenities":   required,
	"bookingUrl":  blank,
	"checkIn":     defaultsTo("15:00"),
	"checkOut":    defaultsTo("11:00"),
}

var dayFields = fieldTable{
	"dayNumber":           required,
	"date":                required,
	"title":               required,
	"morningActivities":   blank,
	"afternoonActivities": blank,
	"eveningActivities":   blank,
	"restaurants":         blank,
	"summary":             required,
}

var itineraryFields = fieldTable{
	"days":          required,
	"accommodation": blank,
	"totalCost":     required,
	"currency":      defaultsTo(DefaultCurrency),
	"travelTips":    blank,
}

// DefaultAccommodation stands in when the payload omits the accommodation node.
func DefaultAccommodation() Accommodation {
	return Accommodation{
		Name:        "Default Hotel",
		Type:        "Hotel",
		Description: "Comfortable accommodation",
		Address:     "123 Main Street",
		Phone:       "+1-234-567-8900",
		Rating:      4.0,
		PriceRange:  "$$",
		NightlyRate: 100,
		Currency:    DefaultCurrency,
		Amenities:   "WiFi, Pool",
		CheckIn:     "15:00",
		CheckOut:    "11:00",
	}
}

// MapResponse decodes payload and builds an Itinerary. Request fields are never read
// from the payload. Any error aborts the whole mapping.
func MapResponse(payload string, req Request) (*Itinerary, error) {
	dec := json.NewDecoder(strings.NewReader(payload))
	dec.UseNumber()

	var root any
	if err := dec.Decode(&root); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: trailing data after JSON object", ErrMalformedPayload)
	}
	obj, ok := root.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: root is not a JSON object", ErrMalformedPayload)
	}

	top := node{path: "", obj: obj, rules: itineraryFields}
	out := newItinerary(req)

	dayNodes, err := top.objects("days")
	if err != nil {
		return nil, err
	}
	if len(dayNodes) != req.Days() {
		return nil, malformedField("days", fmt.Sprintf("got %d days, want %d", len(dayNodes), req.Days()))
	}
	var activityTotal float64
	for i, dn := range dayNodes {
		day, err := mapDay(dn)
		if err != nil {
			return nil, err
		}
		if day.DayNumber != i+1 {
			return nil, malformedField(dn.at("dayNumber"), fmt.Sprintf("got %d, want %d", day.DayNumber, i+1))
		}
		activityTotal += day.EstimatedCost
		out.Days = append(out.Days, day)
	}

	if out.Accommodation, err = mapAccommodation(top); err != nil {
		return nil, err
	}

	if out.TotalEstimatedCost, err = top.cost("totalCost"); err != nil {
		return nil, err
	}
	if out.TotalEstimatedCost < activityTotal {
		return nil, malformedField("totalCost", "less than the sum of day costs")
	}
	if out.Currency, err = top.str("currency"); err != nil {
		return nil, err
	}
	if out.TravelTips, err = top.stringList("travelTips"); err != nil {
		return nil, err
	}
	return out, nil
}

func mapDay(n node) (Day, error) {
	n.rules = dayFields
	var (
		day Day
		err error
	)
	if day.DayNumber, err = n.integer("dayNumber"); err != nil {
		return Day{}, err
	}
	if day.Date, err = n.str("date"); err != nil {
		return Day{}, err
	}
	if day.DayTitle, err = n.str("title"); err != nil {
		return Day{}, err
	}
	if day.MorningActivities, err = mapActivities(n, "morningActivities"); err != nil {
		return Day{}, err
	}
	if day.AfternoonActivities, err = mapActivities(n, "afternoonActivities"); err != nil {
		return Day{}, err
	}
	if day.EveningActivities, err = mapActivities(n, "eveningActivities"); err != nil {
		return Day{}, err
	}
	if day.Restaurants, err = mapRestaurants(n); err != nil {
		return Day{}, err
	}
	if day.DaySummary, err = n.str("summary"); err != nil {
		return Day{}, err
	}
	// The model's own estimatedCost is not trusted.
	day.EstimatedCost = sumCosts(day.Activities())
	return day, nil
}

func mapActivities(day node, key string) ([]Activity, error) {
	nodes, err := day.objects(key)
	if err != nil {
		return nil, err
	}
	out := make([]Activity, 0, len(nodes))
	for _, n := range nodes {
		n.rules = activityFields
		var a Activity
		for _, f := range []struct {
			key string
			dst *string
		}{
			{"name", &a.Name},
			{"description", &a.Description},
			{"time", &a.Time},
			{"duration", &a.Duration},
			{"location", &a.Location},
			{"category", &a.Category},
			{"currency", &a.Currency},
			{"emoji", &a.Icon},
			{"bookingUrl", &a.BookingURL},
			{"tips", &a.Notes},
		} {
			if *f.dst, err = n.str(f.key); err != nil {
				return nil, err
			}
		}
		if a.Cost, err = n.cost("cost"); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, nil
}

func mapRestaurants(day node) ([]Restaurant, error) {
	nodes, err := day.objects("restaurants")
	if err != nil {
		return nil, err
	}
	out := make([]Restaurant, 0, len(nodes))
	for _, n := range nodes {
		n.rules = restaurantFields
		var r Restaurant
		for _, f := range []struct {
			key string
			dst *string
		}{
			{"name", &r.Name},
			{"cuisine", &r.Cuisine},
			{"description", &r.Description},
			{"address", &r.Address},
			{"phone", &r.Phone},
			{"priceRange", &r.PriceRange},
			{"mealType", &r.TimeSlot},
			{"bookingUrl", &r.BookingURL},
			{"tips", &r.Notes},
		} {
			if *f.dst, err = n.str(f.key); err != nil {
				return nil, err
			}
		}
		if r.Rating, err = n.rating("rating"); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}

func mapAccommodation(top node) (Accommodation, error) {
	n, ok, err := top.object("accommodation")
	if err != nil {
		return Accommodation{}, err
	}
	if !ok {
		return DefaultAccommodation(), nil
	}
	n.rules = accommodationFields

	var a Accommodation
	for _, f := range []struct {
		key string
		dst *string
	}{
		{"name", &a.Name},
		{"type", &a.Type},
		{"description", &a.Description},
		{"address", &a.Address},
		{"phone", &a.Phone},
		{"priceRange", &a.PriceRange},
		{"currency", &a.Currency},
		{"amenities", &a.Amenities},
		{"bookingUrl", &a.BookingURL},
		{"checkIn", &a.CheckIn},
		{"checkOut", &a.CheckOut},
	} {
		if *f.dst, err = n.str(f.key); err != nil {
			return Accommodation{}, err
		}
	}
	if a.Rating, err = n.rating("rating"); err != nil {
		return Accommodation{}, err
	}
	if a.NightlyRate, err = n.cost("nightlyRate"); err != nil {
		return Accommodation{}, err
	}
	return a, nil
}

// node is one JSON object in the payload tree plus the rules for its leaves.
type node struct {
	path  string
	obj   map[string]any
	rules fieldTable
}

func (n node) at(key string) string {
	if n.path == "" {
		return key
	}
	return n.path + "." + key
}

// lookup returns the raw value; null counts as absent.
func (n node) lookup(key string) (any, bool) {
	v, ok := n.obj[key]
	if !ok || v == nil {
		return nil, false
	}
	return v, true
}

func (n node) rule(key string) fieldRule {
	if r, ok := n.rules[key]; ok {
		return r
	}
	return required
}

func (n node) str(key string) (string, error) {
	v, ok := n.lookup(key)
	if !ok {
		r := n.rule(key)
		if r.Required {
			return "", missingField(n.at(key))
		}
		return r.Default, nil
	}
	switch t := v.(type) {
	case string:
		return t, nil
	case json.Number:
		return t.String(), nil
	case bool:
		return strconv.FormatBool(t), nil
	default:
		return "", malformedField(n.at(key), "expected a string")
	}
}

func (n node) number(key string) (float64, error) {
	var raw string
	v, ok := n.lookup(key)
	if !ok {
		r := n.rule(key)
		if r.Required {
			return 0, missingField(n.at(key))
		}
		v = r.Default
	}
	switch t := v.(type) {
	case json.Number:
		raw = t.String()
	case string:
		raw = strings.TrimSpace(t)
	default:
		return 0, malformedField(n.at(key), "expected a number")
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, malformedField(n.at(key), "expected a number")
	}
	return f, nil
}

func (n node) cost(key string) (float64, error) {
	f, err := n.number(key)
	if err != nil {
		return 0, err
	}
	if f < 0 {
		return 0, malformedField(n.at(key), "negative amount")
	}
	return f, nil
}

func (n node) rating(key string) (float64, error) {
	f, err := n.number(key)
	if err != nil {
		return 0, err
	}
	if f < 0 || f > 5 {
		return 0, malformedField(n.at(key), "rating outside 0-5")
	}
	return f, nil
}

func (n node) integer(key string) (int, error) {
	f, err := n.number(key)
	if err != nil {
		return 0, err
	}
	if f != math.Trunc(f) {
		return 0, malformedField(n.at(key), "expected an integer")
	}
	return int(f), nil
}

func (n node) object(key string) (node, bool, error) {
	v, ok := n.lookup(key)
	if !ok {
		if n.rule(key).Required {
			return node{}, false, missingField(n.at(key))
		}
		return node{}, false, nil
	}
	obj, ok := v.(map[string]any)
	if !ok {
		return node{}, false, malformedField(n.at(key), "expected an object")
	}
	return node{path: n.at(key), obj: obj}, true, nil
}

// objects reads an array of objects. An absent optional array is empty.
func (n node) objects(key string) ([]node, error) {
	v, ok := n.lookup(key)
	if !ok {
		if n.rule(key).Required {
			return nil, missingField(n.at(key))
		}
		return nil, nil
	}
	items, ok := v.([]any)
	if !ok {
		return nil, malformedField(n.at(key), "expected an array")
	}
	out := make([]node, 0, len(items))
	for i, item := range items {
		path := fmt.Sprintf("%s[%d]", n.at(key), i)
		obj, ok := item.(map[string]any)
		if !ok {
			return nil, malformedField(path, "expected an object")
		}
		out = append(out, node{path: path, obj: obj})
	}
	return out, nil
}

// stringList reads an array of string leaves; an absent optional array is empty.
func (n node) stringList(key string) ([]string, error) {
	v, ok := n.lookup(key)
	if !ok {
		if n.rule(key).Required {
			return nil, missingField(n.at(key))
		}
		return []string{}, nil
	}
	items, ok := v.([]any)
	if !ok {
		return nil, malformedField(n.at(key), "expected an array")
	}
	out := make([]string, 0, len(items))
	for i, item := range items {
		switch t := item.(type) {
		case string:
			out = append(out, t)
		case json.Number:
			out = append(out, t.String())
		default:
			return nil, malformedField(fmt.Sprintf("%s[%d]", n.at(key), i), "expected a string")
		}
	}
	return out, nil
}
