package gateway

// Param describes one parameter of an action: its name, wire type, whether
// the assistant must supply it, and the prompt text explaining it.
type Param struct {
	Name        string `json:"name"`
	Type        string `json:"type"` // "string" or "number"
	Description string `json:"description"`
	Required    bool   `json:"required"`
}

// ActionSpec describes one action the assistant may invoke.
type ActionSpec struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Parameters  []Param `json:"parameters"`
}

// Schema returns the full action manifest. The assistant is prompted against
// this exact schema, so names, types, and required flags are load-bearing:
// changing any of them changes what the assistant sends.
func Schema() []ActionSpec {
	return []ActionSpec{
		{
			Name:        "planTrip",
			Description: "Create a detailed day-by-day trip itinerary. Use when the user asks to plan, create, or suggest a trip. Include real place names, coordinates, activities, and budget estimates. The trip will appear on the map and in the trips panel.",
			Parameters: []Param{
				{Name: "destination", Type: "string", Description: "Main destination city", Required: true},
				{Name: "country", Type: "string", Description: "Country name", Required: true},
				{Name: "lat", Type: "number", Description: "Latitude of the destination", Required: true},
				{Name: "lng", Type: "number", Description: "Longitude of the destination", Required: true},
				{Name: "startDate", Type: "string", Description: "Start date (YYYY-MM-DD)", Required: true},
				{Name: "endDate", Type: "string", Description: "End date (YYYY-MM-DD)", Required: true},
				{Name: "totalBudget", Type: "number", Description: "Estimated total budget in USD", Required: true},
				{Name: "daysJson", Type: "string", Description: `JSON array of itinerary days. Each: {"day":1,"date":"YYYY-MM-DD","title":"Day title","activities":[{"time":"09:00","activity":"Description","location":"Place name","lat":0,"lng":0,"type":"sightseeing|food|transport|hotel|activity"}]}`, Required: true},
			},
		},
		{
			Name:        "searchFlights",
			Description: "Search for flights between two cities. YOU must provide real flight data based on your knowledge: actual airlines that fly this route, realistic prices, real flight durations, and accurate departure/arrival times. Return 4-6 options sorted by price. Use when the user asks about flights, airfare, or how to get somewhere.",
			Parameters: []Param{
				{Name: "from", Type: "string", Description: "Departure city", Required: true},
				{Name: "to", Type: "string", Description: "Arrival city", Required: true},
				{Name: "date", Type: "string", Description: "Travel date (YYYY-MM-DD)", Required: true},
				{Name: "resultsJson", Type: "string", Description: `JSON array of real flights. Each: {"airline":"Delta","from":"NYC","to":"Tokyo","departTime":"14:30","arriveTime":"17:45+1","duration":"14h 15m","stops":0,"price":890,"class":"economy"}. Use REAL airlines that fly this route, realistic prices for the season, and accurate flight times.`, Required: true},
			},
		},
		{
			Name:        "searchHotels",
			Description: "Search for hotels in a city. YOU must provide real hotel data: actual hotel names that exist in that city, real ratings from review sites, realistic prices for the area, and real amenities. Return 4-6 options. Use when the user asks about hotels, accommodation, or where to stay.",
			Parameters: []Param{
				{Name: "location", Type: "string", Description: "City to search hotels in", Required: true},
				{Name: "resultsJson", Type: "string", Description: `JSON array of real hotels. Each: {"name":"Park Hyatt Tokyo","location":"Shinjuku","rating":4.8,"stars":5,"pricePerNight":450,"amenities":["Pool","Spa","Gym","Restaurant","Bar"]}. Use REAL hotel names that exist in this city, accurate star ratings, realistic prices per night in USD, and actual amenities they offer.`, Required: true},
			},
		},
		{
			Name:        "searchRestaurants",
			Description: "Search for restaurants in a city. YOU must provide real restaurant data: actual restaurant names that exist, real cuisine types, accurate ratings, and realistic price levels. Return 4-6 options. Use when the user asks about restaurants, food, where to eat, or dining.",
			Parameters: []Param{
				{Name: "location", Type: "string", Description: "City to search restaurants in", Required: true},
				{Name: "cuisine", Type: "string", Description: "Cuisine type filter (optional, e.g. 'sushi', 'italian')", Required: false},
				{Name: "resultsJson", Type: "string", Description: `JSON array of real restaurants. Each: {"name":"Sukiyabashi Jiro","cuisine":"Sushi","location":"Ginza, Tokyo","rating":4.9,"priceLevel":"$$$$","description":"Legendary 3-Michelin-star sushi counter","mustTry":"Omakase tasting menu"}. Use REAL restaurant names, accurate ratings, and honest descriptions.`, Required: true},
			},
		},
		{
			Name:        "addToBucketList",
			Description: "Add a destination to the user's travel bucket list. Use when the user mentions wanting to visit, save, or bookmark a place.",
			Parameters: []Param{
				{Name: "destination", Type: "string", Description: "Place name", Required: true},
				{Name: "country", Type: "string", Description: "Country", Required: true},
				{Name: "lat", Type: "number", Description: "Latitude", Required: true},
				{Name: "lng", Type: "number", Description: "Longitude", Required: true},
				{Name: "notes", Type: "string", Description: "Short notes or reason", Required: false},
				{Name: "priority", Type: "string", Description: "Priority: dream, next, or someday", Required: true},
			},
		},
		{
			Name:        "bookTrip",
			Description: "Book a flight or hotel. This requires user confirmation before completing (human-in-the-loop). Use when the user wants to book, reserve, or purchase travel.",
			Parameters: []Param{
				{Name: "type", Type: "string", Description: "flight or hotel", Required: true},
				{Name: "itemName", Type: "string", Description: "Name of the flight/hotel", Required: true},
				{Name: "price", Type: "number", Description: "Total price in USD", Required: true},
				{Name: "details", Type: "string", Description: "Booking details summary", Required: true},
			},
		},
		{
			Name:        "createTripCard",
			Description: "Create a visual comparison or summary card. Use for comparing destinations, showing trip summaries, budget breakdowns, or travel tips. Pick the best type: comparison, summary, budget, or tips.",
			Parameters: []Param{
				{Name: "type", Type: "string", Description: "Card type: comparison, summary, budget, or tips", Required: true},
				{Name: "title", Type: "string", Description: "Card title", Required: true},
				{Name: "dataJson", Type: "string", Description: `JSON array of items. Each: {"label":"Name","value":"display value","sublabel":"subtitle","color":"#hex"}`, Required: true},
			},
		},
	}
}
