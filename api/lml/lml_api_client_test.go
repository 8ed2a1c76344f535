package lml

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lml-server/api"
	"lml-server/models"
)

const gigsBody = `[
  {
    "id": "g1",
    "name": "Late Night Jazz",
    "date": "2024-03-01",
    "ticketing_url": "https://tix.example/g1",
    "start_time": "21:00",
    "start_timestamp": "2024-03-01T21:00:00+11:00",
    "duration": null,
    "finish_time": null,
    "finish_timestamp": null,
    "description": "Trio",
    "status": "active",
    "ticket_status": null,
    "series": null,
    "category": null,
    "information_tags": ["Free"],
    "genre_tags": ["Jazz"],
    "venue": {"id": "v1", "name": "The Curtin", "address": "29 Lygon St", "capacity": 120,
              "website": "https://curtin.example", "postcode": "3053", "vibe": "", "tags": [],
              "location_url": "", "latitude": -37.8, "longitude": 144.96},
    "sets": [{"start": "21:00", "performer": {"name": "Trio"}}],
    "prices": [{"amount": "$10", "description": "door"}]
  }
]`

func TestGetGigs(t *testing.T) {
	var gotRequestID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "GET", r.Method)
		assert.Equal(t, "/gigs/for/melbourne/2024-03-01", r.URL.Path)
		assert.Empty(t, r.URL.RawQuery)
		gotRequestID = r.Header.Get(REQUEST_ID_HEADER)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(gigsBody))
	}))
	defer srv.Close()

	client := NewGigsApiClient(api.NewHTTPClient(srv.URL))
	gigs, err := client.GetGigs(context.Background(), "melbourne", models.Day{Year: 2024, Month: 3, Day: 1})
	require.NoError(t, err)
	require.Len(t, gigs, 1)

	g := gigs[0]
	assert.Equal(t, "g1", g.ID)
	assert.Equal(t, "v1", g.Venue.ID)
	assert.Equal(t, -37.8, g.Venue.Latitude)
	assert.Nil(t, g.FinishTime)
	require.NotNil(t, g.Description)
	assert.Equal(t, "Trio", *g.Description)
	assert.Equal(t, []string{"Jazz"}, g.GenreTags)
	assert.Len(t, g.Sets, 1)
	assert.JSONEq(t, `{"start": "21:00", "performer": {"name": "Trio"}}`, string(g.Sets[0]))
	assert.NotEmpty(t, gotRequestID)
}

func TestGetGigs_EmptyDay(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	client := NewGigsApiClient(api.NewHTTPClient(srv.URL))
	gigs, err := client.GetGigs(context.Background(), "melbourne", models.Day{Year: 2024, Month: 3, Day: 2})
	require.NoError(t, err)
	assert.NotNil(t, gigs)
	assert.Empty(t, gigs)
}

func TestGetGigs_Errors(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			"non-2xx response",
			func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "down", http.StatusServiceUnavailable)
			},
		},
		{
			"malformed body",
			func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"not": "an array"}`))
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			client := NewGigsApiClient(api.NewHTTPClient(srv.URL))
			gigs, err := client.GetGigs(context.Background(), "melbourne", models.Day{Year: 2024, Month: 3, Day: 1})
			assert.Error(t, err)
			assert.Nil(t, gigs)
		})
	}
}
