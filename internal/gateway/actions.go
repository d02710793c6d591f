package gateway

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/cememirsenyurt/tripilot/internal/domain"
)

// ---- planTrip --------------------------------------------------------------

type planTripArgs struct {
	Destination string  `json:"destination"`
	Country     string  `json:"country"`
	Lat         float64 `json:"lat"`
	Lng         float64 `json:"lng"`
	StartDate   string  `json:"startDate"`
	EndDate     string  `json:"endDate"`
	TotalBudget float64 `json:"totalBudget"`
	DaysJSON    string  `json:"daysJson"`
}

func (a planTripArgs) validate() error {
	for _, f := range [][2]string{
		{"destination", a.Destination},
		{"country", a.Country},
		{"startDate", a.StartDate},
		{"endDate", a.EndDate},
		{"daysJson", a.DaysJSON},
	} {
		if err := required(f[0], f[1]); err != nil {
			return err
		}
	}
	return nil
}

// dayPayload is the wire shape of one itinerary day inside daysJson.
// Activities carry flat lat/lng fields rather than a nested coords object.
type dayPayload struct {
	Day        int               `json:"day"`
	Date       string            `json:"date"`
	Title      string            `json:"title"`
	Activities []activityPayload `json:"activities"`
}

type activityPayload struct {
	Time     string  `json:"time"`
	Activity string  `json:"activity"`
	Location string  `json:"location"`
	Lat      float64 `json:"lat"`
	Lng      float64 `json:"lng"`
	Type     string  `json:"type"`
}

// PlanTripResult reports the trip created by planTrip.
type PlanTripResult struct {
	OK          bool   `json:"ok"`
	TripID      string `json:"tripId"`
	Destination string `json:"destination"`
	Days        int    `json:"days"`
}

func (g *Gateway) planTrip(_ context.Context, raw json.RawMessage) (any, error) {
	var args planTripArgs
	if err := decodeArgs(raw, &args); err != nil {
		return nil, err
	}
	if err := args.validate(); err != nil {
		return nil, err
	}

	var payload []dayPayload
	if err := decodePayload(args.DaysJSON, &payload, "itinerary"); err != nil {
		return nil, err
	}

	trip := domain.Trip{
		Destination: args.Destination,
		Country:     args.Country,
		Coords:      domain.LatLng{Lat: args.Lat, Lng: args.Lng},
		StartDate:   args.StartDate,
		EndDate:     args.EndDate,
		TotalBudget: args.TotalBudget,
		Status:      domain.TripPlanned,
	}
	for _, d := range payload {
		day := domain.ItineraryDay{Day: d.Day, Date: d.Date, Title: d.Title}
		for _, a := range d.Activities {
			day.Activities = append(day.Activities, domain.Activity{
				Time:     a.Time,
				Activity: a.Activity,
				Location: a.Location,
				Coords:   domain.LatLng{Lat: a.Lat, Lng: a.Lng},
				Type:     domain.ActivityType(a.Type),
			})
		}
		trip.Days = append(trip.Days, day)
	}

	if err := trip.Validate(); err != nil {
		return nil, err
	}

	stored := g.store.AddTrip(trip)
	return PlanTripResult{
		OK:          true,
		TripID:      stored.ID,
		Destination: stored.Destination,
		Days:        len(stored.Days),
	}, nil
}

// ---- searchFlights ---------------------------------------------------------

type searchFlightsArgs struct {
	From        string `json:"from"`
	To          string `json:"to"`
	Date        string `json:"date"`
	ResultsJSON string `json:"resultsJson"`
}

func (a searchFlightsArgs) validate() error {
	for _, f := range [][2]string{
		{"from", a.From},
		{"to", a.To},
		{"date", a.Date},
		{"resultsJson", a.ResultsJSON},
	} {
		if err := required(f[0], f[1]); err != nil {
			return err
		}
	}
	return nil
}

// flightPayload is the wire shape of one flight inside resultsJson.
// Stops is a pointer so that an omitted field is distinguishable from an
// explicit zero.
type flightPayload struct {
	Airline    string  `json:"airline"`
	From       string  `json:"from"`
	To         string  `json:"to"`
	DepartTime string  `json:"departTime"`
	ArriveTime string  `json:"arriveTime"`
	Duration   string  `json:"duration"`
	Stops      *int    `json:"stops"`
	Price      float64 `json:"price"`
	Class      string  `json:"class"`
}

// SearchFlightsResult carries the normalized, transient flight list back to
// the caller for rendering. Nothing is stored.
type SearchFlightsResult struct {
	Flights []domain.Flight `json:"flights"`
	From    string          `json:"from"`
	To      string          `json:"to"`
	Date    string          `json:"date"`
}

func (g *Gateway) searchFlights(_ context.Context, raw json.RawMessage) (any, error) {
	var args searchFlightsArgs
	if err := decodeArgs(raw, &args); err != nil {
		return nil, err
	}
	if err := args.validate(); err != nil {
		return nil, err
	}

	var payload []flightPayload
	if err := decodePayload(args.ResultsJSON, &payload, "flight"); err != nil {
		return nil, err
	}

	flights := make([]domain.Flight, len(payload))
	for i, f := range payload {
		stops := 0
		if f.Stops != nil {
			stops = *f.Stops
		}
		if stops < 0 {
			return nil, fmt.Errorf("%w: flight %d: stops must not be negative", domain.ErrValidation, i)
		}
		if f.Price < 0 {
			return nil, fmt.Errorf("%w: flight %d: price must not be negative", domain.ErrValidation, i)
		}
		class := domain.CabinClass(f.Class)
		if f.Class == "" {
			class = domain.ClassEconomy
		}
		flights[i] = domain.Flight{
			ID:         fmt.Sprintf("fl-%d", i),
			Airline:    f.Airline,
			From:       fallback(f.From, args.From),
			To:         fallback(f.To, args.To),
			DepartTime: f.DepartTime,
			ArriveTime: f.ArriveTime,
			Duration:   f.Duration,
			Stops:      stops,
			Price:      f.Price,
			Class:      class,
		}
	}

	return SearchFlightsResult{Flights: flights, From: args.From, To: args.To, Date: args.Date}, nil
}

// ---- searchHotels ----------------------------------------------------------

type searchHotelsArgs struct {
	Location    string `json:"location"`
	ResultsJSON string `json:"resultsJson"`
}

func (a searchHotelsArgs) validate() error {
	if err := required("location", a.Location); err != nil {
		return err
	}
	return required("resultsJson", a.ResultsJSON)
}

type hotelPayload struct {
	Name          string   `json:"name"`
	Location      string   `json:"location"`
	Rating        float64  `json:"rating"`
	Stars         int      `json:"stars"`
	PricePerNight float64  `json:"pricePerNight"`
	Amenities     []string `json:"amenities"`
}

// SearchHotelsResult carries the normalized, transient hotel list back to
// the caller for rendering. Nothing is stored.
type SearchHotelsResult struct {
	Hotels   []domain.Hotel `json:"hotels"`
	Location string         `json:"location"`
}

func (g *Gateway) searchHotels(_ context.Context, raw json.RawMessage) (any, error) {
	var args searchHotelsArgs
	if err := decodeArgs(raw, &args); err != nil {
		return nil, err
	}
	if err := args.validate(); err != nil {
		return nil, err
	}

	var payload []hotelPayload
	if err := decodePayload(args.ResultsJSON, &payload, "hotel"); err != nil {
		return nil, err
	}

	hotels := make([]domain.Hotel, len(payload))
	for i, h := range payload {
		amenities := h.Amenities
		if amenities == nil {
			amenities = []string{}
		}
		hotels[i] = domain.Hotel{
			ID:            fmt.Sprintf("ht-%d", i),
			Name:          h.Name,
			Location:      fallback(h.Location, args.Location),
			Rating:        h.Rating,
			Stars:         h.Stars,
			PricePerNight: h.PricePerNight,
			Amenities:     amenities,
		}
	}

	return SearchHotelsResult{Hotels: hotels, Location: args.Location}, nil
}

// ---- searchRestaurants -----------------------------------------------------

type searchRestaurantsArgs struct {
	Location    string `json:"location"`
	Cuisine     string `json:"cuisine"`
	ResultsJSON string `json:"resultsJson"`
}

func (a searchRestaurantsArgs) validate() error {
	if err := required("location", a.Location); err != nil {
		return err
	}
	return required("resultsJson", a.ResultsJSON)
}

type restaurantPayload struct {
	Name        string  `json:"name"`
	Cuisine     string  `json:"cuisine"`
	Location    string  `json:"location"`
	Rating      float64 `json:"rating"`
	PriceLevel  string  `json:"priceLevel"`
	Description string  `json:"description"`
	MustTry     string  `json:"mustTry"`
}

// SearchRestaurantsResult carries the normalized, transient restaurant list
// back to the caller for rendering. Nothing is stored.
type SearchRestaurantsResult struct {
	Restaurants []domain.Restaurant `json:"restaurants"`
	Location    string              `json:"location"`
}

func (g *Gateway) searchRestaurants(_ context.Context, raw json.RawMessage) (any, error) {
	var args searchRestaurantsArgs
	if err := decodeArgs(raw, &args); err != nil {
		return nil, err
	}
	if err := args.validate(); err != nil {
		return nil, err
	}

	var payload []restaurantPayload
	if err := decodePayload(args.ResultsJSON, &payload, "restaurant"); err != nil {
		return nil, err
	}

	restaurants := make([]domain.Restaurant, len(payload))
	for i, r := range payload {
		level := domain.PriceLevel(r.PriceLevel)
		if r.PriceLevel == "" {
			level = domain.PriceModerate
		}
		restaurants[i] = domain.Restaurant{
			ID:          fmt.Sprintf("rest-%d", i),
			Name:        r.Name,
			Cuisine:     r.Cuisine,
			Location:    fallback(r.Location, args.Location),
			Rating:      r.Rating,
			PriceLevel:  level,
			Description: r.Description,
			MustTry:     r.MustTry,
		}
	}

	return SearchRestaurantsResult{Restaurants: restaurants, Location: args.Location}, nil
}

// ---- addToBucketList -------------------------------------------------------

type addToBucketListArgs struct {
	Destination string  `json:"destination"`
	Country     string  `json:"country"`
	Lat         float64 `json:"lat"`
	Lng         float64 `json:"lng"`
	Notes       string  `json:"notes"`
	Priority    string  `json:"priority"`
}

func (a addToBucketListArgs) validate() error {
	if err := required("destination", a.Destination); err != nil {
		return err
	}
	return required("country", a.Country)
}

// AddToBucketListResult acknowledges the added destination.
type AddToBucketListResult struct {
	OK          bool   `json:"ok"`
	Destination string `json:"destination"`
}

func (g *Gateway) addToBucketList(_ context.Context, raw json.RawMessage) (any, error) {
	var args addToBucketListArgs
	if err := decodeArgs(raw, &args); err != nil {
		return nil, err
	}
	if err := args.validate(); err != nil {
		return nil, err
	}
	coords := domain.LatLng{Lat: args.Lat, Lng: args.Lng}
	if !coords.Valid() {
		return nil, fmt.Errorf("%w: coordinates out of range", domain.ErrValidation)
	}

	item := g.store.AddBucketItem(domain.BucketListItem{
		Destination: args.Destination,
		Country:     args.Country,
		Coords:      coords,
		Notes:       args.Notes,
		Priority:    domain.NormalizePriority(args.Priority),
	})
	return AddToBucketListResult{OK: true, Destination: item.Destination}, nil
}

// ---- bookTrip --------------------------------------------------------------

type bookTripArgs struct {
	Type     string  `json:"type"`
	ItemName string  `json:"itemName"`
	Price    float64 `json:"price"`
	Details  string  `json:"details"`
}

func (a bookTripArgs) validate() error {
	for _, f := range [][2]string{
		{"type", a.Type},
		{"itemName", a.ItemName},
		{"details", a.Details},
	} {
		if err := required(f[0], f[1]); err != nil {
			return err
		}
	}
	return nil
}

// BookTripResult signals that the booking was staged, not committed.
// NeedsApproval is always true: committing money requires the explicit user
// confirmation step, which the assistant cannot trigger itself.
type BookTripResult struct {
	NeedsApproval bool               `json:"needsApproval"`
	Type          domain.BookingType `json:"type"`
	ItemName      string             `json:"itemName"`
	Price         float64            `json:"price"`
}

func (g *Gateway) bookTrip(_ context.Context, raw json.RawMessage) (any, error) {
	var args bookTripArgs
	if err := decodeArgs(raw, &args); err != nil {
		return nil, err
	}
	if err := args.validate(); err != nil {
		return nil, err
	}
	bookingType := domain.BookingType(args.Type)
	if !bookingType.Valid() {
		return nil, fmt.Errorf("%w: type must be flight or hotel, got %q", domain.ErrValidation, args.Type)
	}
	if args.Price < 0 {
		return nil, fmt.Errorf("%w: price must not be negative", domain.ErrValidation)
	}

	g.store.RequestBooking(domain.PendingBooking{
		Type:     bookingType,
		ItemName: args.ItemName,
		Price:    args.Price,
		Details:  args.Details,
	})
	return BookTripResult{
		NeedsApproval: true,
		Type:          bookingType,
		ItemName:      args.ItemName,
		Price:         args.Price,
	}, nil
}

// ---- createTripCard --------------------------------------------------------

type createTripCardArgs struct {
	Type     string `json:"type"`
	Title    string `json:"title"`
	DataJSON string `json:"dataJson"`
}

func (a createTripCardArgs) validate() error {
	if err := required("title", a.Title); err != nil {
		return err
	}
	return required("dataJson", a.DataJSON)
}

// CardItem is one cell of a visual comparison or summary card.
type CardItem struct {
	Label    string `json:"label"`
	Value    string `json:"value"`
	Sublabel string `json:"sublabel,omitempty"`
	Color    string `json:"color,omitempty"`
}

// CreateTripCardResult is a pure pass-through for the UI; the card has no
// store effect.
type CreateTripCardResult struct {
	Type  string     `json:"type"`
	Title string     `json:"title"`
	Items []CardItem `json:"items"`
}

func (g *Gateway) createTripCard(_ context.Context, raw json.RawMessage) (any, error) {
	var args createTripCardArgs
	if err := decodeArgs(raw, &args); err != nil {
		return nil, err
	}
	if err := args.validate(); err != nil {
		return nil, err
	}

	var items []CardItem
	if err := decodePayload(args.DataJSON, &items, "card"); err != nil {
		return nil, err
	}
	return CreateTripCardResult{Type: args.Type, Title: args.Title, Items: items}, nil
}

// fallback returns v, or def when v is empty.
func fallback(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
