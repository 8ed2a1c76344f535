package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVenueHandler_GetVenuesNearby(t *testing.T) {
	h := newHarness(t, scenarioAPI())

	rr := call(h.venues.GetVenuesNearby, http.MethodGet, "/v1/venues/nearby?lat=-37.8038&lon=144.9667&radius=1", nil)

	require.Equal(t, http.StatusOK, rr.Code)
	var resp NearbyVenuesResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.NotNil(t, resp.Date)
	assert.Equal(t, march1, *resp.Date)
	require.Len(t, resp.Venues, 1)
	assert.Equal(t, "v1", resp.Venues[0].ID)
	assert.Equal(t, 2, resp.Venues[0].GigCount)
}

func TestVenueHandler_GetVenuesNearby_FollowsCommittedDay(t *testing.T) {
	h := newHarness(t, scenarioAPI())
	call(h.state.NextDay, http.MethodPost, "/v1/date/next", nil)

	rr := call(h.venues.GetVenuesNearby, http.MethodGet, "/v1/venues/nearby?lat=-37.8038&lon=144.9667&radius=50", nil)

	require.Equal(t, http.StatusOK, rr.Code)
	var resp NearbyVenuesResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, march2, *resp.Date)
	assert.Empty(t, resp.Venues)
}

func TestVenueHandler_GetVenuesNearby_BadArgs(t *testing.T) {
	h := newHarness(t, scenarioAPI())

	tests := []struct {
		name  string
		query string
		want  string
	}{
		{"missing lat", "lon=144.9&radius=1", "Invalid argument lat"},
		{"lat out of range", "lat=-137.8&lon=144.9&radius=1", "Invalid argument lat"},
		{"bad lon", "lat=-37.8&lon=east&radius=1", "Invalid argument lon"},
		{"non-positive radius", "lat=-37.8&lon=144.9&radius=0", "Invalid argument radius"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := call(h.venues.GetVenuesNearby, http.MethodGet, "/v1/venues/nearby?"+tt.query, nil)
			assert.Equal(t, http.StatusBadRequest, rr.Code)
			assert.Contains(t, rr.Body.String(), tt.want)
		})
	}
}

func TestVenueHandler_Ping(t *testing.T) {
	h := newHarness(t, scenarioAPI())

	rr := call(h.venues.Ping, http.MethodGet, "/ping", nil)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status": "pong"}`, rr.Body.String())
}
