package handler

import "net/http"

// SearchFlights handles GET /api/v1/search/flights?from=&to=&date=.
// This is the offline fallback search: results are generated locally rather
// than supplied by the assistant, and cached per query so a refresh does not
// reshuffle them.
func (s *Server) SearchFlights(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	from, to, date := q.Get("from"), q.Get("to"), q.Get("date")
	if from == "" || to == "" || date == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "from, to, and date are required")
		return
	}

	flights := s.search.Flights(from, to, date)
	writeJSON(w, http.StatusOK, map[string]any{
		"flights": flights,
		"from":    from,
		"to":      to,
		"date":    date,
	})
}

// SearchHotels handles GET /api/v1/search/hotels?location=.
func (s *Server) SearchHotels(w http.ResponseWriter, r *http.Request) {
	location := r.URL.Query().Get("location")
	if location == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "location is required")
		return
	}

	hotels := s.search.Hotels(location)
	writeJSON(w, http.StatusOK, map[string]any{
		"hotels":   hotels,
		"location": location,
	})
}
