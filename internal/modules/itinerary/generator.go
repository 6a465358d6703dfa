// README: Deterministic rule-based itinerary generator (mock mode and fallback path).
package itinerary

import (
	"context"
	"fmt"
)

// Budget tags with a dedicated accommodation tier; anything else is mid-range.
const (
	BudgetLow    = "budget"
	BudgetLuxury = "luxury"
)

// Interest tags the generator reacts to.
const (
	InterestCulture   = "Culture"
	InterestFood      = "Food"
	InterestAdventure = "Adventure"
	InterestNightlife = "Nightlife"
)

var dayTitles = [...]string{
	"Arrival & First Impressions",
	"Cultural Exploration",
	"Local Cuisine & Markets",
	"Historic Sites & Landmarks",
	"Nature & Outdoor Adventures",
	"Art & Museums",
	"Shopping & Local Life",
	"Hidden Gems & Local Secrets",
}

var travelTips = [...]string{
	"Book accommodations in advance, especially during peak season",
	"Download offline maps and translation apps",
	"Carry local currency and a backup payment method",
	"Check visa requirements and travel documents",
	"Pack according to the local climate and culture",
	"Keep emergency contacts and embassy information handy",
}

var (
	airportTransfer = Activity{
		Name:        "Airport Transfer & Hotel Check-in",
		Description: "Transfer from airport to accommodation and check-in process",
		Time:        "09:00",
		Duration:    "2 hours",
		Location:    "Airport to Hotel",
		Category:    "Transportation",
		Cost:        50,
		Currency:    DefaultCurrency,
		Icon:        "🚗",
		Notes:       "Allow extra time for customs and immigration",
	}
	localBreakfast = Activity{
		Name:        "Morning Coffee & Local Breakfast",
		Description: "Start your day with authentic local breakfast and coffee",
		Time:        "08:00",
		Duration:    "1.5 hours",
		Location:    "Local Café",
		Category:    "Food & Drink",
		Cost:        15,
		Currency:    DefaultCurrency,
		Icon:        "☕",
		Notes:       "Try local specialties",
	}
	museumVisit = Activity{
		Name:        "Museum Visit",
		Description: "Explore local history and culture at a renowned museum",
		Time:        "10:00",
		Duration:    "2 hours",
		Location:    "City Museum",
		Category:    "Culture",
		Cost:        25,
		Currency:    DefaultCurrency,
		Icon:        "🏛️",
		Notes:       "Book tickets in advance for popular exhibitions",
	}
	foodTour = Activity{
		Name:        "Food Tour",
		Description: "Guided tour of local food markets and street food",
		Time:        "14:00",
		Duration:    "3 hours",
		Location:    "Local Markets",
		Category:    "Food & Drink",
		Cost:        45,
		Currency:    DefaultCurrency,
		Icon:        "🍜",
		Notes:       "Come hungry and try everything!",
	}
	adventureOuting = Activity{
		Name:        "Adventure Activity",
		Description: "Exciting outdoor adventure based on local geography",
		Time:        "16:00",
		Duration:    "2 hours",
		Location:    "Adventure Location",
		Category:    "Adventure",
		Cost:        80,
		Currency:    DefaultCurrency,
		Icon:        "🏔️",
		Notes:       "Wear appropriate clothing and bring water",
	}
	sunsetViewpoint = Activity{
		Name:        "Sunset Viewpoint",
		Description: "Watch the sunset from a beautiful local viewpoint",
		Time:        "18:30",
		Duration:    "1 hour",
		Location:    "Scenic Viewpoint",
		Category:    "Sightseeing",
		Cost:        0,
		Currency:    DefaultCurrency,
		Icon:        "🌅",
		Notes:       "Bring a camera for amazing photos",
	}
	nightOut = Activity{
		Name:        "Local Bar & Nightlife",
		Description: "Experience the local nightlife scene",
		Time:        "20:00",
		Duration:    "3 hours",
		Location:    "Downtown Area",
		Category:    "Nightlife",
		Cost:        35,
		Currency:    DefaultCurrency,
		Icon:        "🍻",
		Notes:       "Check dress codes and age requirements",
	}
)

// Generator builds an itinerary from the request alone. It never touches the network.
type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

// Generate satisfies Source. The error is always nil.
func (g *Generator) Generate(_ context.Context, req Request) (*Itinerary, error) {
	return g.Build(req), nil
}

// Build is the pure form of Generate.
func (g *Generator) Build(req Request) *Itinerary {
	out := newItinerary(req)

	n := req.Days()
	var activityTotal float64
	for i := 1; i <= n; i++ {
		day := buildDay(req, i)
		activityTotal += day.EstimatedCost
		out.Days = append(out.Days, day)
	}

	out.Accommodation = accommodationFor(req)
	out.TotalEstimatedCost = activityTotal + out.Accommodation.NightlyRate*float64(len(out.Days))
	out.TravelTips = append(out.TravelTips, travelTips[:]...)
	return out
}

func buildDay(req Request, i int) Day {
	morning := morningActivities(req, i)
	afternoon := afternoonActivities(req)
	evening := eveningActivities(req)

	day := Day{
		DayNumber:           i,
		Date:                req.StartDate.AddDays(i - 1).String(),
		DayTitle:            dayTitle(i),
		MorningActivities:   morning,
		AfternoonActivities: afternoon,
		EveningActivities:   evening,
		Restaurants:         []Restaurant{localRestaurant(req.Destination)},
		DaySummary: fmt.Sprintf("Day %d in %s offers a perfect blend of activities. "+
			"Start with %d morning activities, enjoy %d afternoon experiences, "+
			"and end with %d evening activities for a memorable day.",
			i, req.Destination, len(morning), len(afternoon), len(evening)),
	}
	day.EstimatedCost = sumCosts(day.Activities())
	return day
}

func dayTitle(i int) string {
	if i >= 1 && i <= len(dayTitles) {
		return dayTitles[i-1]
	}
	return fmt.Sprintf("Day %d Adventures", i)
}

func morningActivities(req Request, i int) []Activity {
	out := make([]Activity, 0, 2)
	if i == 1 {
		out = append(out, airportTransfer)
	} else {
		out = append(out, localBreakfast)
	}
	if req.HasInterest(InterestCulture) {
		out = append(out, museumVisit)
	}
	return out
}

func afternoonActivities(req Request) []Activity {
	out := make([]Activity, 0, 2)
	if req.HasInterest(InterestFood) {
		out = append(out, foodTour)
	}
	if req.HasInterest(InterestAdventure) {
		out = append(out, adventureOuting)
	}
	return out
}

func eveningActivities(req Request) []Activity {
	out := []Activity{sunsetViewpoint}
	if req.HasInterest(InterestNightlife) {
		out = append(out, nightOut)
	}
	return out
}

func localRestaurant(destination string) Restaurant {
	return Restaurant{
		Name:        "Local Restaurant",
		Cuisine:     "Traditional Local Cuisine",
		Description: "Authentic local dishes with traditional preparation methods",
		Address:     "123 Main Street, " + destination,
		Phone:       "+1-234-567-8900",
		PriceRange:  "$$",
		Rating:      4.5,
		TimeSlot:    "Lunch",
		BookingURL:  "https://example.com/booking",
		Notes:       "Reservations recommended for dinner",
	}
}

// NightlyRate maps a budget tag to the generator's accommodation rate and price symbol.
func NightlyRate(budget string) (rate float64, priceRange string) {
	switch budget {
	case BudgetLow:
		return 80, "$"
	case BudgetLuxury:
		return 300, "$$$"
	default:
		return 150, "$$"
	}
}

func accommodationFor(req Request) Accommodation {
	rate, priceRange := NightlyRate(req.Budget)
	return Accommodation{
		Name:        "Boutique Hotel " + req.Destination,
		Type:        "Hotel",
		Description: "Beautiful boutique hotel in the heart of " + req.Destination,
		Address:     "456 Hotel Street, " + req.Destination,
		Phone:       "+1-234-567-8901",
		Rating:      4.8,
		PriceRange:  priceRange,
		NightlyRate: rate,
		Currency:    DefaultCurrency,
		Amenities:   "WiFi, Pool, Gym, Restaurant, Concierge",
		BookingURL:  "https://example.com/hotel-booking",
		CheckIn:     "15:00",
		CheckOut:    "11:00",
	}
}
