package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cememirsenyurt/tripilot/internal/domain"
)

func validTrip() domain.Trip {
	return domain.Trip{
		Destination: "Kyoto",
		Country:     "Japan",
		Coords:      domain.LatLng{Lat: 35.0116, Lng: 135.7681},
		StartDate:   "2026-11-15",
		EndDate:     "2026-11-19",
		Days: []domain.ItineraryDay{
			{Day: 1, Date: "2026-11-15", Title: "Arrival", Activities: []domain.Activity{
				{Time: "15:00", Activity: "Check in", Location: "Gion",
					Coords: domain.LatLng{Lat: 35.0037, Lng: 135.7780}, Type: domain.ActivityHotel},
			}},
			{Day: 2, Date: "2026-11-16", Title: "Temples"},
		},
		TotalBudget: 2800,
		Status:      domain.TripPlanned,
	}
}

// ---- Trip.Validate tests ---------------------------------------------------

func TestTripValidate_ok(t *testing.T) {
	require.NoError(t, validTrip().Validate())
}

func TestTripValidate_rejectsBadInput(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*domain.Trip)
	}{
		{"missing destination", func(tr *domain.Trip) { tr.Destination = "" }},
		{"bad start date", func(tr *domain.Trip) { tr.StartDate = "11/15/2026" }},
		{"bad end date", func(tr *domain.Trip) { tr.EndDate = "someday" }},
		{"end before start", func(tr *domain.Trip) { tr.EndDate = "2026-11-01" }},
		{"coords out of range", func(tr *domain.Trip) { tr.Coords.Lng = 181 }},
		{"negative budget", func(tr *domain.Trip) { tr.TotalBudget = -500 }},
		{"days not contiguous", func(tr *domain.Trip) { tr.Days[1].Day = 3 }},
		{"days not 1-based", func(tr *domain.Trip) { tr.Days[0].Day = 0 }},
		{"activity coords out of range", func(tr *domain.Trip) {
			tr.Days[0].Activities[0].Coords.Lat = -91
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			trip := validTrip()
			tt.mutate(&trip)

			require.ErrorIs(t, trip.Validate(), domain.ErrValidation)
		})
	}
}

// ---- LatLng tests ----------------------------------------------------------

func TestLatLngValid(t *testing.T) {
	assert.True(t, domain.LatLng{Lat: 0, Lng: 0}.Valid())
	assert.True(t, domain.LatLng{Lat: -90, Lng: 180}.Valid())
	assert.False(t, domain.LatLng{Lat: 90.1, Lng: 0}.Valid())
	assert.False(t, domain.LatLng{Lat: 0, Lng: -180.5}.Valid())
}

// ---- Priority tests --------------------------------------------------------

func TestNormalizePriority(t *testing.T) {
	assert.Equal(t, domain.PriorityDream, domain.NormalizePriority("dream"))
	assert.Equal(t, domain.PriorityNext, domain.NormalizePriority("next"))
	assert.Equal(t, domain.PrioritySomeday, domain.NormalizePriority("someday"))

	// Anything unrecognized falls back to someday rather than erroring.
	assert.Equal(t, domain.PrioritySomeday, domain.NormalizePriority(""))
	assert.Equal(t, domain.PrioritySomeday, domain.NormalizePriority("urgent"))
}
