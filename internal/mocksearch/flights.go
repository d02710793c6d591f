// Package mocksearch generates plausible flight and hotel search results.
// It is the offline fallback for the action gateway's normal data path, in
// which the assistant supplies real-world results itself. Values are
// randomized within bounded ranges; callers must rely only on structural
// guarantees (result count, sort order, value ranges), never exact values.
package mocksearch

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/cememirsenyurt/tripilot/internal/domain"
)

var airlines = []string{
	"Delta", "United", "Emirates", "Japan Airlines", "Lufthansa",
	"Turkish Airlines", "Singapore Airlines", "British Airways",
	"Air France", "Qantas",
}

// Flights generates 4 to 6 flights for the given route and date, sorted
// ascending by price. Prices scale with flight duration; itineraries longer
// than 8 hours have a 60% chance of one stop, shorter ones are direct.
func Flights(from, to, date string) []domain.Flight {
	count := 4 + rand.Intn(3)
	out := make([]domain.Flight, count)
	for i := range out {
		depHour := 6 + rand.Intn(14)
		durHours := 2 + rand.Intn(14)
		durMinutes := rand.Intn(60)
		arrHour := (depHour + durHours) % 24

		stops := 0
		if durHours > 8 && rand.Float64() > 0.4 {
			stops = 1
		}

		price := 200 + durHours*60 + rand.Intn(300)

		out[i] = domain.Flight{
			ID:         fmt.Sprintf("fl-%s-%d", date, i),
			Airline:    airlines[rand.Intn(len(airlines))],
			From:       from,
			To:         to,
			DepartTime: fmt.Sprintf("%02d:%02d", depHour, rand.Intn(60)),
			ArriveTime: fmt.Sprintf("%02d:%02d", arrHour, rand.Intn(60)),
			Duration:   fmt.Sprintf("%dh %dm", durHours, durMinutes),
			Stops:      stops,
			Price:      float64((price+5)/10) * 10, // nearest $10
			Class:      domain.ClassEconomy,
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Price < out[j].Price })
	return out
}
