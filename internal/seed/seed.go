// Package seed holds the reference dataset the application starts with:
// popular destinations for map pins and assistant suggestions, plus a sample
// trip and bucket list so the UI is not empty on first launch.
package seed

import "github.com/cememirsenyurt/tripilot/internal/domain"

// Destinations are the static map pins. They are reference data, never mutated.
var Destinations = []domain.Destination{
	{ID: "d-1", Name: "Paris", Country: "France", Coords: domain.LatLng{Lat: 48.8566, Lng: 2.3522}, Rating: 4.8, Description: "City of Light: art, cuisine, and iconic landmarks"},
	{ID: "d-2", Name: "Tokyo", Country: "Japan", Coords: domain.LatLng{Lat: 35.6762, Lng: 139.6503}, Rating: 4.9, Description: "Where ancient temples meet neon-lit streets"},
	{ID: "d-3", Name: "New York", Country: "USA", Coords: domain.LatLng{Lat: 40.7128, Lng: -74.006}, Rating: 4.7, Description: "The city that never sleeps"},
	{ID: "d-4", Name: "Bali", Country: "Indonesia", Coords: domain.LatLng{Lat: -8.3405, Lng: 115.092}, Rating: 4.8, Description: "Tropical paradise of rice terraces and temples"},
	{ID: "d-5", Name: "Barcelona", Country: "Spain", Coords: domain.LatLng{Lat: 41.3874, Lng: 2.1686}, Rating: 4.7, Description: "Gaudí architecture and Mediterranean vibes"},
	{ID: "d-6", Name: "Cape Town", Country: "South Africa", Coords: domain.LatLng{Lat: -33.9249, Lng: 18.4241}, Rating: 4.6, Description: "Where mountains meet the ocean"},
	{ID: "d-7", Name: "Kyoto", Country: "Japan", Coords: domain.LatLng{Lat: 35.0116, Lng: 135.7681}, Rating: 4.9, Description: "Imperial capital of zen gardens and geisha"},
	{ID: "d-8", Name: "Santorini", Country: "Greece", Coords: domain.LatLng{Lat: 36.3932, Lng: 25.4615}, Rating: 4.8, Description: "Blue domes and sunset views over the caldera"},
	{ID: "d-9", Name: "Machu Picchu", Country: "Peru", Coords: domain.LatLng{Lat: -13.1631, Lng: -72.545}, Rating: 4.9, Description: "Lost city of the Incas above the clouds"},
	{ID: "d-10", Name: "Dubai", Country: "UAE", Coords: domain.LatLng{Lat: 25.2048, Lng: 55.2708}, Rating: 4.5, Description: "Futuristic skyline in the desert"},
	{ID: "d-11", Name: "Rome", Country: "Italy", Coords: domain.LatLng{Lat: 41.9028, Lng: 12.4964}, Rating: 4.8, Description: "Eternal city of history, art, and pasta"},
	{ID: "d-12", Name: "Reykjavik", Country: "Iceland", Coords: domain.LatLng{Lat: 64.1466, Lng: -21.9426}, Rating: 4.7, Description: "Gateway to glaciers, geysers, and northern lights"},
	{ID: "d-13", Name: "Marrakech", Country: "Morocco", Coords: domain.LatLng{Lat: 31.6295, Lng: -7.9811}, Rating: 4.5, Description: "Vibrant souks, palaces, and Sahara excursions"},
	{ID: "d-14", Name: "Sydney", Country: "Australia", Coords: domain.LatLng{Lat: -33.8688, Lng: 151.2093}, Rating: 4.7, Description: "Harbour city of beaches and opera"},
	{ID: "d-15", Name: "Istanbul", Country: "Turkey", Coords: domain.LatLng{Lat: 41.0082, Lng: 28.9784}, Rating: 4.6, Description: "Where East meets West across the Bosphorus"},
}

// Trips returns the sample trips the store is seeded with.
// Returned fresh on every call so callers may mutate their copy.
func Trips() []domain.Trip {
	return []domain.Trip{
		{
			ID:          "trip-1",
			Destination: "Kyoto",
			Country:     "Japan",
			Coords:      domain.LatLng{Lat: 35.0116, Lng: 135.7681},
			StartDate:   "2026-04-10",
			EndDate:     "2026-04-14",
			TotalBudget: 2800,
			Status:      domain.TripPlanned,
			Days: []domain.ItineraryDay{
				{
					Day: 1, Date: "2026-04-10", Title: "Arrival & Eastern Kyoto",
					Activities: []domain.Activity{
						{Time: "10:00", Activity: "Arrive at Kansai Airport, train to Kyoto", Location: "Kyoto Station", Coords: domain.LatLng{Lat: 34.9856, Lng: 135.7585}, Type: domain.ActivityTransport},
						{Time: "14:00", Activity: "Visit Fushimi Inari Shrine (thousands of orange torii gates)", Location: "Fushimi Inari", Coords: domain.LatLng{Lat: 34.9671, Lng: 135.7727}, Type: domain.ActivitySightseeing},
						{Time: "18:00", Activity: "Dinner in Gion district, try kaiseki cuisine", Location: "Gion", Coords: domain.LatLng{Lat: 35.0036, Lng: 135.7747}, Type: domain.ActivityFood},
					},
				},
				{
					Day: 2, Date: "2026-04-11", Title: "Bamboo & Temples",
					Activities: []domain.Activity{
						{Time: "08:00", Activity: "Arashiyama Bamboo Grove (go early to beat crowds)", Location: "Arashiyama", Coords: domain.LatLng{Lat: 35.0094, Lng: 135.6722}, Type: domain.ActivitySightseeing},
						{Time: "11:00", Activity: "Tenryū-ji Temple and garden", Location: "Tenryū-ji", Coords: domain.LatLng{Lat: 35.0155, Lng: 135.6745}, Type: domain.ActivitySightseeing},
						{Time: "13:00", Activity: "Lunch: matcha and soba noodles", Location: "Arashiyama", Coords: domain.LatLng{Lat: 35.0135, Lng: 135.678}, Type: domain.ActivityFood},
						{Time: "15:00", Activity: "Kinkaku-ji (Golden Pavilion)", Location: "Kinkaku-ji", Coords: domain.LatLng{Lat: 35.0394, Lng: 135.7292}, Type: domain.ActivitySightseeing},
					},
				},
				{
					Day: 3, Date: "2026-04-12", Title: "Tea & Culture",
					Activities: []domain.Activity{
						{Time: "09:00", Activity: "Tea ceremony experience in a traditional machiya house", Location: "Higashiyama", Coords: domain.LatLng{Lat: 34.9986, Lng: 135.7809}, Type: domain.ActivityGeneric},
						{Time: "12:00", Activity: "Nishiki Market food tour", Location: "Nishiki Market", Coords: domain.LatLng{Lat: 35.0051, Lng: 135.7649}, Type: domain.ActivityFood},
						{Time: "15:00", Activity: "Philosopher's Path walk", Location: "Philosopher's Path", Coords: domain.LatLng{Lat: 35.027, Lng: 135.7945}, Type: domain.ActivitySightseeing},
					},
				},
				{
					Day: 4, Date: "2026-04-13", Title: "Day Trip to Nara",
					Activities: []domain.Activity{
						{Time: "09:00", Activity: "Train to Nara (45 min)", Location: "Nara", Coords: domain.LatLng{Lat: 34.6851, Lng: 135.8048}, Type: domain.ActivityTransport},
						{Time: "10:30", Activity: "Nara Park, feed the sacred deer", Location: "Nara Park", Coords: domain.LatLng{Lat: 34.6851, Lng: 135.843}, Type: domain.ActivityGeneric},
						{Time: "12:00", Activity: "Tōdai-ji Temple, world's largest bronze Buddha", Location: "Tōdai-ji", Coords: domain.LatLng{Lat: 34.6889, Lng: 135.8398}, Type: domain.ActivitySightseeing},
					},
				},
				{
					Day: 5, Date: "2026-04-14", Title: "Cherry Blossoms & Departure",
					Activities: []domain.Activity{
						{Time: "07:00", Activity: "Morning walk along Kamogawa River (cherry blossoms)", Location: "Kamogawa", Coords: domain.LatLng{Lat: 35, Lng: 135.77}, Type: domain.ActivitySightseeing},
						{Time: "10:00", Activity: "Last-minute souvenir shopping at Teramachi Street", Location: "Teramachi", Coords: domain.LatLng{Lat: 35.0069, Lng: 135.7637}, Type: domain.ActivityGeneric},
						{Time: "14:00", Activity: "Train to Kansai Airport, departure", Location: "Kyoto Station", Coords: domain.LatLng{Lat: 34.9856, Lng: 135.7585}, Type: domain.ActivityTransport},
					},
				},
			},
		},
	}
}

// BucketList returns the sample bucket list items.
// Returned fresh on every call so callers may mutate their copy.
func BucketList() []domain.BucketListItem {
	return []domain.BucketListItem{
		{ID: "bl-1", Destination: "Santorini", Country: "Greece", Coords: domain.LatLng{Lat: 36.3932, Lng: 25.4615}, Notes: "Watch sunset from Oia, blue dome photos", AddedAt: "2026-01-15", Priority: domain.PriorityNext},
		{ID: "bl-2", Destination: "Machu Picchu", Country: "Peru", Coords: domain.LatLng{Lat: -13.1631, Lng: -72.545}, Notes: "Hike the Inca Trail, need to book permits early", AddedAt: "2026-01-20", Priority: domain.PriorityDream},
		{ID: "bl-3", Destination: "Reykjavik", Country: "Iceland", Coords: domain.LatLng{Lat: 64.1466, Lng: -21.9426}, Notes: "Northern lights, Blue Lagoon, Golden Circle", AddedAt: "2026-02-01", Priority: domain.PrioritySomeday},
	}
}
