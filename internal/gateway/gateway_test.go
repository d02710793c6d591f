package gateway_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cememirsenyurt/tripilot/internal/domain"
	"github.com/cememirsenyurt/tripilot/internal/gateway"
	"github.com/cememirsenyurt/tripilot/internal/store"
)

// ---- fixtures --------------------------------------------------------------

func newGateway() (*gateway.Gateway, *store.Store) {
	st := store.New(nil)
	return gateway.New(st), st
}

func invoke(t *testing.T, g *gateway.Gateway, name string, args map[string]any) (any, error) {
	t.Helper()
	raw, err := json.Marshal(args)
	require.NoError(t, err)
	return g.Invoke(context.Background(), name, raw)
}

// mustJSON serializes a value into the string form the assistant uses for
// structured-data parameters.
func mustJSON(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}

func planTripArgs(t *testing.T) map[string]any {
	t.Helper()
	days := []map[string]any{
		{
			"day": 1, "date": "2026-10-01", "title": "Arrival",
			"activities": []map[string]any{
				{"time": "14:00", "activity": "Check in", "location": "Shinjuku",
					"lat": 35.6938, "lng": 139.7034, "type": "hotel"},
			},
		},
		{
			"day": 2, "date": "2026-10-02", "title": "Old Tokyo",
			"activities": []map[string]any{
				{"time": "09:00", "activity": "Senso-ji Temple", "location": "Asakusa",
					"lat": 35.7148, "lng": 139.7967, "type": "sightseeing"},
				{"time": "13:00", "activity": "Sushi lunch", "location": "Tsukiji",
					"lat": 35.6654, "lng": 139.7707, "type": "food"},
			},
		},
	}
	return map[string]any{
		"destination": "Tokyo",
		"country":     "Japan",
		"lat":         35.6762,
		"lng":         139.6503,
		"startDate":   "2026-10-01",
		"endDate":     "2026-10-02",
		"totalBudget": 2000,
		"daysJson":    mustJSON(t, days),
	}
}

// ---- dispatch tests --------------------------------------------------------

func TestInvoke_unknownAction(t *testing.T) {
	g, _ := newGateway()

	_, err := invoke(t, g, "teleport", map[string]any{})

	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestInvoke_emptyArgs(t *testing.T) {
	g, _ := newGateway()

	_, err := g.Invoke(context.Background(), "planTrip", nil)

	require.ErrorIs(t, err, domain.ErrParse)
}

// ---- planTrip tests --------------------------------------------------------

func TestPlanTrip_createsAndSelectsTrip(t *testing.T) {
	g, st := newGateway()

	result, err := invoke(t, g, "planTrip", planTripArgs(t))

	require.NoError(t, err)
	res, ok := result.(gateway.PlanTripResult)
	require.True(t, ok)
	assert.True(t, res.OK)
	assert.NotEmpty(t, res.TripID)
	assert.Equal(t, "Tokyo", res.Destination)
	assert.Equal(t, 2, res.Days)

	snap := st.State()
	require.Len(t, snap.Trips, 1)
	trip := snap.Trips[0]
	assert.Equal(t, res.TripID, trip.ID)
	assert.Equal(t, domain.TripPlanned, trip.Status)
	assert.Equal(t, float64(2000), trip.TotalBudget)
	require.Len(t, trip.Days, 2)
	assert.Equal(t, "Senso-ji Temple", trip.Days[1].Activities[0].Activity)
	assert.Equal(t, domain.ActivitySightseeing, trip.Days[1].Activities[0].Type)

	require.NotNil(t, snap.SelectedTrip)
	assert.Equal(t, res.TripID, snap.SelectedTrip.ID)
	require.NotNil(t, snap.FlyTo)
	assert.Equal(t, domain.LatLng{Lat: 35.6762, Lng: 139.6503}, *snap.FlyTo)
}

func TestPlanTrip_missingRequiredField(t *testing.T) {
	g, st := newGateway()
	args := planTripArgs(t)
	delete(args, "destination")

	_, err := invoke(t, g, "planTrip", args)

	require.ErrorIs(t, err, domain.ErrValidation)
	assert.Empty(t, st.Trips())
}

func TestPlanTrip_malformedItineraryLeavesStoreUntouched(t *testing.T) {
	g, st := newGateway()
	args := planTripArgs(t)
	args["daysJson"] = `[{"day": 1, "activities": [`

	_, err := invoke(t, g, "planTrip", args)

	require.ErrorIs(t, err, domain.ErrParse)
	assert.Empty(t, st.Trips())
	assert.Nil(t, st.State().FlyTo)
}

func TestPlanTrip_invalidDayNumbering(t *testing.T) {
	g, st := newGateway()
	args := planTripArgs(t)
	args["daysJson"] = mustJSON(t, []map[string]any{
		{"day": 2, "date": "2026-10-01", "title": "Off by one"},
	})

	_, err := invoke(t, g, "planTrip", args)

	require.ErrorIs(t, err, domain.ErrValidation)
	assert.Empty(t, st.Trips())
}

func TestPlanTrip_negativeBudget(t *testing.T) {
	g, st := newGateway()
	args := planTripArgs(t)
	args["totalBudget"] = -500

	_, err := invoke(t, g, "planTrip", args)

	require.ErrorIs(t, err, domain.ErrValidation)
	assert.Empty(t, st.Trips())
}

// ---- search action tests ---------------------------------------------------

func TestSearchFlights_normalizesResults(t *testing.T) {
	g, st := newGateway()

	result, err := invoke(t, g, "searchFlights", map[string]any{
		"from": "San Francisco",
		"to":   "Tokyo",
		"date": "2026-10-01",
		"resultsJson": mustJSON(t, []map[string]any{
			{"airline": "JAL", "departTime": "11:05", "arriveTime": "14:10",
				"duration": "11h 5m", "price": 890, "stops": 1, "class": "business"},
			{"airline": "United", "price": 650},
		}),
	})

	require.NoError(t, err)
	res := result.(gateway.SearchFlightsResult)
	require.Len(t, res.Flights, 2)

	first := res.Flights[0]
	assert.Equal(t, "fl-0", first.ID)
	assert.Equal(t, 1, first.Stops)
	assert.Equal(t, domain.CabinClass("business"), first.Class)
	assert.Equal(t, "San Francisco", first.From)
	assert.Equal(t, "Tokyo", first.To)

	// Omitted fields default: stops to 0, class to economy, route from args.
	second := res.Flights[1]
	assert.Equal(t, 0, second.Stops)
	assert.Equal(t, domain.ClassEconomy, second.Class)
	assert.Equal(t, "San Francisco", second.From)

	// Search results are transient; the store never sees them.
	assert.Empty(t, st.Trips())
	assert.Empty(t, st.Bookings())
}

func TestSearchFlights_rejectsNegativeValues(t *testing.T) {
	tests := []struct {
		name   string
		flight map[string]any
	}{
		{"negative stops", map[string]any{"airline": "JAL", "stops": -1, "price": 890}},
		{"negative price", map[string]any{"airline": "JAL", "stops": 0, "price": -890}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, _ := newGateway()

			_, err := invoke(t, g, "searchFlights", map[string]any{
				"from":        "San Francisco",
				"to":          "Tokyo",
				"date":        "2026-10-01",
				"resultsJson": mustJSON(t, []map[string]any{tt.flight}),
			})

			require.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestSearchHotels_defaultsAmenitiesToEmptySlice(t *testing.T) {
	g, _ := newGateway()

	result, err := invoke(t, g, "searchHotels", map[string]any{
		"location": "Kyoto",
		"resultsJson": mustJSON(t, []map[string]any{
			{"name": "Grand Kyoto Palace", "rating": 4.7, "stars": 5, "pricePerNight": 320},
		}),
	})

	require.NoError(t, err)
	res := result.(gateway.SearchHotelsResult)
	require.Len(t, res.Hotels, 1)
	assert.Equal(t, "Kyoto", res.Hotels[0].Location)
	assert.NotNil(t, res.Hotels[0].Amenities)
	assert.Empty(t, res.Hotels[0].Amenities)
}

func TestSearchRestaurants_defaultsPriceLevel(t *testing.T) {
	g, _ := newGateway()

	result, err := invoke(t, g, "searchRestaurants", map[string]any{
		"location": "Osaka",
		"cuisine":  "japanese",
		"resultsJson": mustJSON(t, []map[string]any{
			{"name": "Mizuno", "cuisine": "Okonomiyaki", "rating": 4.8,
				"description": "Legendary Dotonbori spot", "mustTry": "Yamaimo-yaki"},
		}),
	})

	require.NoError(t, err)
	res := result.(gateway.SearchRestaurantsResult)
	require.Len(t, res.Restaurants, 1)
	assert.Equal(t, domain.PriceModerate, res.Restaurants[0].PriceLevel)
	assert.Equal(t, "Osaka", res.Restaurants[0].Location)
	assert.Equal(t, "Yamaimo-yaki", res.Restaurants[0].MustTry)
}

// All structured-data parameters share the same hard-fail decode policy.
func TestSearchActions_malformedPayload(t *testing.T) {
	tests := []struct {
		action string
		args   map[string]any
	}{
		{"searchFlights", map[string]any{
			"from": "A", "to": "B", "date": "2026-10-01", "resultsJson": "{not json",
		}},
		{"searchHotels", map[string]any{
			"location": "Kyoto", "resultsJson": "[{]",
		}},
		{"searchRestaurants", map[string]any{
			"location": "Osaka", "resultsJson": `{"not": "an array"}`,
		}},
		{"createTripCard", map[string]any{
			"type": "comparison", "title": "Flights", "dataJson": "nope",
		}},
	}
	for _, tt := range tests {
		t.Run(tt.action, func(t *testing.T) {
			g, _ := newGateway()

			_, err := invoke(t, g, tt.action, tt.args)

			require.ErrorIs(t, err, domain.ErrParse)
		})
	}
}

// ---- addToBucketList tests -------------------------------------------------

func TestAddToBucketList(t *testing.T) {
	g, st := newGateway()

	result, err := invoke(t, g, "addToBucketList", map[string]any{
		"destination": "Santorini",
		"country":     "Greece",
		"lat":         36.3932,
		"lng":         25.4615,
		"notes":       "Sunset in Oia",
		"priority":    "next",
	})

	require.NoError(t, err)
	res := result.(gateway.AddToBucketListResult)
	assert.True(t, res.OK)
	assert.Equal(t, "Santorini", res.Destination)

	items := st.BucketList()
	require.Len(t, items, 1)
	assert.Equal(t, domain.PriorityNext, items[0].Priority)
	assert.Equal(t, "Sunset in Oia", items[0].Notes)
	assert.Equal(t, store.TabBucket, st.State().ActiveTab)
}

func TestAddToBucketList_invalidCoords(t *testing.T) {
	g, st := newGateway()

	_, err := invoke(t, g, "addToBucketList", map[string]any{
		"destination": "Nowhere",
		"country":     "Atlantis",
		"lat":         95.0,
		"lng":         0.0,
	})

	require.ErrorIs(t, err, domain.ErrValidation)
	assert.Empty(t, st.BucketList())
}

// ---- bookTrip tests --------------------------------------------------------

func TestBookTrip_stagesWithoutCommitting(t *testing.T) {
	g, st := newGateway()

	result, err := invoke(t, g, "bookTrip", map[string]any{
		"type":     "flight",
		"itemName": "JAL 001 to Tokyo",
		"price":    890,
		"details":  "Nonstop, economy",
	})

	require.NoError(t, err)
	res := result.(gateway.BookTripResult)
	assert.True(t, res.NeedsApproval)
	assert.Equal(t, domain.BookingFlight, res.Type)
	assert.Equal(t, float64(890), res.Price)

	// Staged, not booked: the pending slot is set and bookings stay empty.
	pending, ok := st.PendingBooking()
	require.True(t, ok)
	assert.Equal(t, "JAL 001 to Tokyo", pending.ItemName)
	assert.Empty(t, st.Bookings())
}

func TestBookTrip_rejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		args map[string]any
	}{
		{"unknown type", map[string]any{
			"type": "cruise", "itemName": "QE2", "price": 5000, "details": "7 nights",
		}},
		{"negative price", map[string]any{
			"type": "hotel", "itemName": "Park Hyatt", "price": -1, "details": "2 nights",
		}},
		{"missing details", map[string]any{
			"type": "flight", "itemName": "JAL 001", "price": 890,
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, st := newGateway()

			_, err := invoke(t, g, "bookTrip", tt.args)

			require.ErrorIs(t, err, domain.ErrValidation)
			_, ok := st.PendingBooking()
			assert.False(t, ok)
		})
	}
}

// ---- createTripCard tests --------------------------------------------------

func TestCreateTripCard_passThrough(t *testing.T) {
	g, st := newGateway()
	before := st.State()

	result, err := invoke(t, g, "createTripCard", map[string]any{
		"type":  "comparison",
		"title": "Flight options",
		"dataJson": mustJSON(t, []map[string]any{
			{"label": "JAL 001", "value": "$890", "sublabel": "Nonstop", "color": "#6366F1"},
			{"label": "UA 837", "value": "$650", "sublabel": "1 stop"},
		}),
	})

	require.NoError(t, err)
	res := result.(gateway.CreateTripCardResult)
	assert.Equal(t, "comparison", res.Type)
	assert.Equal(t, "Flight options", res.Title)
	require.Len(t, res.Items, 2)
	assert.Equal(t, "$890", res.Items[0].Value)

	// Cards are render-only; state must be byte-for-byte unchanged.
	assert.Equal(t, before, st.State())
}

// ---- schema tests ----------------------------------------------------------

func TestSchema_coversAllActions(t *testing.T) {
	specs := gateway.Schema()

	names := make([]string, len(specs))
	for i, s := range specs {
		names[i] = s.Name
		assert.NotEmpty(t, s.Description, "action %s needs a description", s.Name)
		assert.NotEmpty(t, s.Parameters, "action %s needs parameters", s.Name)
	}
	assert.ElementsMatch(t, []string{
		"planTrip", "searchFlights", "searchHotels", "searchRestaurants",
		"addToBucketList", "bookTrip", "createTripCard",
	}, names)
}

func TestSchema_everyActionDispatches(t *testing.T) {
	g, _ := newGateway()

	// Invoking each schema action with empty args must reach the action
	// handler (decode or validation error), never the unknown-action branch.
	for _, spec := range gateway.Schema() {
		_, err := g.Invoke(context.Background(), spec.Name, json.RawMessage(`{}`))
		require.Error(t, err)
		require.NotErrorIs(t, err, domain.ErrNotFound, "action %s is not routed", spec.Name)
	}
}
