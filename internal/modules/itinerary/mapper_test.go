// README: Response mapper tests (defaults table, missing fields, malformed payloads).
package itinerary

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func payloadActivity(name string, cost float64) map[string]any {
	return map[string]any{
		"name":        name,
		"description": name + " description",
		"time":        "10:00",
		"duration":    "2 hours",
		"location":    "Centre",
		"category":    "Culture",
		"cost":        cost,
		"currency":    "EUR",
		"emoji":       "🏛️",
		"bookingUrl":  "https://example.com",
		"tips":        "Go early",
	}
}

func payloadDay(n int, date string) map[string]any {
	return map[string]any{
		"dayNumber":           n,
		"date":                date,
		"title":               "Day title",
		"morningActivities":   []any{payloadActivity("Louvre", 20)},
		"afternoonActivities": []any{payloadActivity("Seine Cruise", 15.5)},
		"eveningActivities":   []any{},
		"restaurants": []any{map[string]any{
			"name":        "Chez Nous",
			"cuisine":     "French",
			"description": "Bistro",
			"address":     "1 Rue",
			"phone":       "+33",
			"priceRange":  "$$",
			"rating":      4.6,
			"mealType":    "Dinner",
		}},
		"summary":       "A good day",
		"estimatedCost": 9999,
	}
}

// validPayload matches parisRequest: three days starting 2024-06-01.
func validPayload() map[string]any {
	return map[string]any{
		"destination": "ignored",
		"days": []any{
			payloadDay(1, "2024-06-01"),
			payloadDay(2, "2024-06-02"),
			payloadDay(3, "2024-06-03"),
		},
		"accommodation": map[string]any{
			"name":        "Hotel Lutetia",
			"type":        "Hotel",
			"description": "Left bank",
			"address":     "45 Bd Raspail",
			"phone":       "+33 1",
			"rating":      4.7,
			"priceRange":  "$$$",
			"nightlyRate": 450,
			"currency":    "EUR",
			"amenities":   "Spa",
			"bookingUrl":  "",
			"checkIn":     "14:00",
			"checkOut":    "12:00",
		},
		"totalCost":  1500,
		"currency":   "EUR",
		"travelTips": []any{"Buy a museum pass"},
	}
}

func encode(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}

func TestMapResponse_HappyPath(t *testing.T) {
	got, err := MapResponse(encode(t, validPayload()), parisRequest())
	require.NoError(t, err)

	assert.Equal(t, "Paris", got.Destination)
	assert.Equal(t, 2, got.Travelers)
	require.Len(t, got.Days, 3)

	d := got.Days[0]
	assert.Equal(t, 1, d.DayNumber)
	assert.Equal(t, "Day title", d.DayTitle)
	assert.Equal(t, "A good day", d.DaySummary)
	assert.Equal(t, 35.5, d.EstimatedCost, "day cost is recomputed from activities")
	require.Len(t, d.MorningActivities, 1)
	a := d.MorningActivities[0]
	assert.Equal(t, "Louvre", a.Name)
	assert.Equal(t, "🏛️", a.Icon)
	assert.Equal(t, "Go early", a.Notes)
	assert.Equal(t, "EUR", a.Currency)
	assert.NotNil(t, d.EveningActivities)
	assert.Empty(t, d.EveningActivities)
	require.Len(t, d.Restaurants, 1)
	assert.Equal(t, "Dinner", d.Restaurants[0].TimeSlot)
	assert.Equal(t, 4.6, d.Restaurants[0].Rating)

	assert.Equal(t, "Hotel Lutetia", got.Accommodation.Name)
	assert.Equal(t, 450.0, got.Accommodation.NightlyRate)
	assert.Equal(t, 1500.0, got.TotalEstimatedCost)
	assert.Equal(t, "EUR", got.Currency)
	assert.Equal(t, []string{"Buy a museum pass"}, got.TravelTips)
}

func TestMapResponse_Defaults(t *testing.T) {
	p := validPayload()
	delete(p, "accommodation")
	delete(p, "currency")
	delete(p, "travelTips")
	day := p["days"].([]any)[0].(map[string]any)
	delete(day, "afternoonActivities")
	delete(day, "restaurants")
	act := day["morningActivities"].([]any)[0].(map[string]any)
	delete(act, "currency")
	delete(act, "emoji")
	delete(act, "bookingUrl")
	act["tips"] = nil

	got, err := MapResponse(encode(t, p), parisRequest())
	require.NoError(t, err)

	assert.Equal(t, DefaultAccommodation(), got.Accommodation)
	assert.Equal(t, DefaultCurrency, got.Currency)
	assert.Equal(t, []string{}, got.TravelTips)

	d := got.Days[0]
	assert.Empty(t, d.AfternoonActivities)
	assert.Empty(t, d.Restaurants)
	a := d.MorningActivities[0]
	assert.Equal(t, DefaultCurrency, a.Currency)
	assert.Equal(t, "📍", a.Icon)
	assert.Empty(t, a.BookingURL)
	assert.Empty(t, a.Notes)
	assert.Equal(t, 20.0, d.EstimatedCost)
}

func TestMapResponse_AccommodationDefaults(t *testing.T) {
	p := validPayload()
	acc := p["accommodation"].(map[string]any)
	delete(acc, "checkIn")
	delete(acc, "checkOut")
	delete(acc, "currency")

	got, err := MapResponse(encode(t, p), parisRequest())
	require.NoError(t, err)
	assert.Equal(t, "15:00", got.Accommodation.CheckIn)
	assert.Equal(t, "11:00", got.Accommodation.CheckOut)
	assert.Equal(t, DefaultCurrency, got.Accommodation.Currency)
}

func TestMapResponse_NumericStrings(t *testing.T) {
	p := validPayload()
	p["totalCost"] = "1500.50"
	act := p["days"].([]any)[0].(map[string]any)["morningActivities"].([]any)[0].(map[string]any)
	act["cost"] = " 20 "

	got, err := MapResponse(encode(t, p), parisRequest())
	require.NoError(t, err)
	assert.Equal(t, 1500.5, got.TotalEstimatedCost)
	assert.Equal(t, 20.0, got.Days[0].MorningActivities[0].Cost)
}

func TestMapResponse_MissingFields(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(p map[string]any)
		path   string
	}{
		{"days", func(p map[string]any) { delete(p, "days") }, "days"},
		{"totalCost", func(p map[string]any) { delete(p, "totalCost") }, "totalCost"},
		{"day title", func(p map[string]any) {
			delete(p["days"].([]any)[1].(map[string]any), "title")
		}, "days[1].title"},
		{"activity cost", func(p map[string]any) {
			day := p["days"].([]any)[2].(map[string]any)
			delete(day["afternoonActivities"].([]any)[0].(map[string]any), "cost")
		}, "days[2].afternoonActivities[0].cost"},
		{"null activity name", func(p map[string]any) {
			day := p["days"].([]any)[0].(map[string]any)
			day["morningActivities"].([]any)[0].(map[string]any)["name"] = nil
		}, "days[0].morningActivities[0].name"},
		{"restaurant mealType", func(p map[string]any) {
			day := p["days"].([]any)[0].(map[string]any)
			delete(day["restaurants"].([]any)[0].(map[string]any), "mealType")
		}, "days[0].restaurants[0].mealType"},
		{"accommodation nightlyRate", func(p map[string]any) {
			delete(p["accommodation"].(map[string]any), "nightlyRate")
		}, "accommodation.nightlyRate"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := validPayload()
			tc.mutate(p)

			got, err := MapResponse(encode(t, p), parisRequest())
			assert.Nil(t, got)
			require.ErrorIs(t, err, ErrMissingField)
			var fe *FieldError
			require.True(t, errors.As(err, &fe))
			assert.Equal(t, tc.path, fe.Path)
		})
	}
}

func TestMapResponse_Malformed(t *testing.T) {
	cases := []struct {
		name    string
		payload func(t *testing.T) string
	}{
		{"not json", func(*testing.T) string { return "sorry, no itinerary today" }},
		{"truncated", func(*testing.T) string { return `{"days": [` }},
		{"root array", func(*testing.T) string { return `[1,2,3]` }},
		{"trailing data", func(t *testing.T) string { return encode(t, validPayload()) + ` {"x":1}` }},
		{"days not array", func(t *testing.T) string {
			p := validPayload()
			p["days"] = "three"
			return encode(t, p)
		}},
		{"wrong day count", func(t *testing.T) string {
			p := validPayload()
			p["days"] = p["days"].([]any)[:2]
			return encode(t, p)
		}},
		{"day numbers out of order", func(t *testing.T) string {
			p := validPayload()
			days := p["days"].([]any)
			days[0], days[1] = days[1], days[0]
			return encode(t, p)
		}},
		{"negative cost", func(t *testing.T) string {
			p := validPayload()
			day := p["days"].([]any)[0].(map[string]any)
			day["morningActivities"].([]any)[0].(map[string]any)["cost"] = -5
			return encode(t, p)
		}},
		{"cost not a number", func(t *testing.T) string {
			p := validPayload()
			day := p["days"].([]any)[0].(map[string]any)
			day["morningActivities"].([]any)[0].(map[string]any)["cost"] = "free"
			return encode(t, p)
		}},
		{"rating out of range", func(t *testing.T) string {
			p := validPayload()
			p["accommodation"].(map[string]any)["rating"] = 7
			return encode(t, p)
		}},
		{"total below day costs", func(t *testing.T) string {
			p := validPayload()
			p["totalCost"] = 10
			return encode(t, p)
		}},
		{"fractional day number", func(t *testing.T) string {
			p := validPayload()
			p["days"].([]any)[0].(map[string]any)["dayNumber"] = 1.5
			return encode(t, p)
		}},
		{"name is an object", func(t *testing.T) string {
			p := validPayload()
			day := p["days"].([]any)[0].(map[string]any)
			day["morningActivities"].([]any)[0].(map[string]any)["name"] = map[string]any{"en": "Louvre"}
			return encode(t, p)
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := MapResponse(tc.payload(t), parisRequest())
			assert.Nil(t, got)
			assert.ErrorIs(t, err, ErrMalformedPayload)
		})
	}
}
