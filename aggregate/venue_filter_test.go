package aggregate

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"lml-server/models/venue"
)

func ids(venues []venue.Venue) []string {
	out := make([]string, 0, len(venues))
	for _, v := range venues {
		out = append(out, v.ID)
	}
	return out
}

func TestFilterVenues(t *testing.T) {
	agg := AggregateGigs(scenarioGigs())

	tests := []struct {
		name string
		sel  Selection
		want []string
	}{
		{"empty selection shows every venue", Selection{}, []string{"v1", "v2"}},
		{"genre rock", Selection{Genres: []string{"rock"}}, []string{"v1", "v2"}},
		{"genre jazz", Selection{Genres: []string{"jazz"}}, []string{"v1"}},
		{"genre rock and info free", Selection{Genres: []string{"rock"}, InfoTags: []string{"free"}}, []string{"v1"}},
		{"info free only", Selection{InfoTags: []string{"free"}}, []string{"v1"}},
		{"genre jazz and info free needs the same gig", Selection{Genres: []string{"jazz"}, InfoTags: []string{"free"}}, []string{}},
		{"any of several genres", Selection{Genres: []string{"jazz", "metal"}}, []string{"v1"}},
		{"unknown genre", Selection{Genres: []string{"polka"}}, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterVenues(agg.Venues, agg.VenueGigs, tt.sel)
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestFilterVenues_EmptySelectionReturnsInputUnchanged(t *testing.T) {
	agg := AggregateGigs(scenarioGigs())

	got := FilterVenues(agg.Venues, agg.VenueGigs, Selection{Genres: []string{}, InfoTags: nil})

	assert.Equal(t, agg.Venues, got)
}

func TestFilterVenues_GenreMonotonic(t *testing.T) {
	agg := AggregateGigs(scenarioGigs())

	before := FilterVenues(agg.Venues, agg.VenueGigs, Selection{Genres: []string{"jazz"}})
	after := FilterVenues(agg.Venues, agg.VenueGigs, Selection{Genres: []string{"jazz", "rock"}})

	for _, id := range ids(before) {
		assert.Contains(t, ids(after), id)
	}
	assert.GreaterOrEqual(t, len(after), len(before))
}

func TestFilterVenues_KeepsVenueOrder(t *testing.T) {
	agg := AggregateGigs(scenarioGigs())
	reversed := []venue.Venue{agg.Venues[1], agg.Venues[0]}

	got := FilterVenues(reversed, agg.VenueGigs, Selection{Genres: []string{"rock"}})

	assert.Equal(t, []string{"v2", "v1"}, ids(got))
}
