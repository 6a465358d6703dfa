// README: Prompt construction for the chat-completion model.
package itinerary

import (
	"encoding/json"
	"fmt"
	"strings"
)

// BuildPrompt renders the request into an instruction that embeds a literal example
// of the payload shape MapResponse reads. The request must already be validated.
func BuildPrompt(req Request) string {
	interests, _ := json.Marshal(req.interests())

	return fmt.Sprintf(`Generate a detailed travel itinerary for %s from %s to %s (%d days) for %d travelers with %s budget.

Interests: %s

Respond with a single JSON object with exactly this structure and no other text:
{
  "destination": %q,
  "startDate": %q,
  "endDate": %q,
  "travelers": %d,
  "budget": %q,
  "interests": %s,
  "days": [
    {
      "dayNumber": 1,
      "date": %q,
      "title": "Day 1: Arrival and First Impressions",
      "morningActivities": [
        {
          "name": "Airport Transfer",
          "description": "Transfer from airport to hotel",
          "time": "09:00",
          "duration": "2 hours",
          "location": "Airport to Hotel",
          "category": "Transportation",
          "cost": 50.0,
          "currency": "USD",
          "emoji": "🚗",
          "bookingUrl": "",
          "tips": "Allow extra time for customs"
        }
      ],
      "afternoonActivities": [],
      "eveningActivities": [],
      "restaurants": [
        {
          "name": "Local Restaurant",
          "cuisine": "Local Cuisine",
          "description": "Authentic local dishes",
          "address": "123 Main Street",
          "phone": "+1-234-567-8900",
          "priceRange": "$$",
          "rating": 4.5,
          "mealType": "Lunch",
          "bookingUrl": "",
          "tips": "Reservations recommended"
        }
      ],
      "summary": "First day summary",
      "estimatedCost": 50.0
    }
  ],
  "accommodation": {
    "name": "Hotel Name",
    "type": "Hotel",
    "description": "Comfortable hotel",
    "address": "456 Hotel Street",
    "phone": "+1-234-567-8901",
    "rating": 4.5,
    "priceRange": "$$",
    "nightlyRate": 150.0,
    "currency": "USD",
    "amenities": "WiFi, Pool",
    "bookingUrl": "",
    "checkIn": "15:00",
    "checkOut": "11:00"
  },
  "totalCost": 800.0,
  "currency": "USD",
  "travelTips": [
    "Book accommodations in advance",
    "Download offline maps",
    "Carry local currency"
  ]
}

Include exactly %d entries in "days", numbered 1 to %d, one per calendar day starting %s.
Make the itinerary realistic, detailed, and personalized for %s based on the interests and budget.
Include specific locations, times, costs, and practical tips.
`,
		req.Destination, req.StartDate, req.EndDate, req.Days(), req.Travelers, req.Budget,
		strings.Join(req.interests(), ", "),
		req.Destination, req.StartDate.String(), req.EndDate.String(), req.Travelers, req.Budget, interests,
		req.StartDate.String(),
		req.Days(), req.Days(), req.StartDate, req.Destination,
	)
}
