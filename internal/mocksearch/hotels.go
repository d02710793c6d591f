package mocksearch

import (
	"fmt"
	"math"
	"math/rand"
	"sort"
	"strings"

	"github.com/cememirsenyurt/tripilot/internal/domain"
)

var (
	hotelPrefixes = []string{"Grand", "Royal", "The", "Hotel", "Boutique", "Park", "Azure", "Golden"}
	hotelSuffixes = []string{"Palace", "Inn", "Suites", "Resort", "Lodge", "House", "Gardens", "Residence"}

	amenitiesPool = []string{
		"Free WiFi", "Pool", "Spa", "Gym", "Breakfast", "Restaurant",
		"Bar", "Room Service", "Parking", "Airport Shuttle",
		"Rooftop Terrace", "Ocean View",
	}
)

// Price bounds per star tier, dollars per night.
var hotelPriceTiers = map[int][2]int{
	3: {50, 130},
	4: {100, 250},
	5: {180, 430},
}

// Hotels generates 4 to 6 hotels for the given location, sorted descending
// by review rating. Nightly prices fall within the star tier's bounds and
// amenities are a random 3-6 element subset of the fixed pool.
func Hotels(location string) []domain.Hotel {
	count := 4 + rand.Intn(3)
	out := make([]domain.Hotel, count)
	for i := range out {
		stars := 3 + rand.Intn(3)
		tier := hotelPriceTiers[stars]
		price := tier[0] + rand.Intn(tier[1]-tier[0]+1)

		out[i] = domain.Hotel{
			ID:            fmt.Sprintf("ht-%s-%d", locationKey(location), i),
			Name:          fmt.Sprintf("%s %s %s", hotelPrefixes[rand.Intn(len(hotelPrefixes))], location, hotelSuffixes[rand.Intn(len(hotelSuffixes))]),
			Location:      location,
			Rating:        math.Round((3.5+rand.Float64()*1.5)*10) / 10,
			Stars:         stars,
			PricePerNight: math.Round(float64(price)/5) * 5,
			Amenities:     pickAmenities(3 + rand.Intn(4)),
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Rating > out[j].Rating })
	return out
}

// pickAmenities returns n distinct amenities from the pool in random order.
func pickAmenities(n int) []string {
	shuffled := make([]string, len(amenitiesPool))
	copy(shuffled, amenitiesPool)
	rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return shuffled[:n]
}

// locationKey derives the short id fragment from a location name.
func locationKey(location string) string {
	key := strings.ToLower(location)
	if r := []rune(key); len(r) > 3 {
		return string(r[:3])
	}
	return key
}
