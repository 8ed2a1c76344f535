package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"lml-server/dao/redis"
	"lml-server/db"
	"lml-server/models"
	"lml-server/models/gig"
	services "lml-server/service"
	"lml-server/state"
)

var (
	march1 = models.Day{Year: 2024, Month: 3, Day: 1}
	march2 = models.Day{Year: 2024, Month: 3, Day: 2}
)

// stubGigsAPI serves fixed gigs per day; days missing from the map fail.
type stubGigsAPI map[models.Day][]gig.Gig

func (s stubGigsAPI) GetGigs(ctx context.Context, city string, day models.Day) ([]gig.Gig, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	gigs, ok := s[day]
	if !ok {
		return nil, errors.New("unexpected status code: 500 Internal Server Error")
	}
	return gigs, nil
}

func stubGig(id, venueID string, lat, lng float64, genres, info []string) gig.Gig {
	return gig.Gig{
		ID:              id,
		Name:            "Gig " + id,
		StartTime:       "20:00",
		GenreTags:       genres,
		InformationTags: info,
		Venue:           gig.GigVenue{ID: venueID, Name: "Venue " + venueID, Latitude: lat, Longitude: lng},
	}
}

func scenarioAPI() stubGigsAPI {
	return stubGigsAPI{
		march1: {
			stubGig("g1", "v1", -37.8038, 144.9667, []string{"Jazz"}, []string{}),
			stubGig("g2", "v1", -37.8038, 144.9667, []string{"Rock"}, []string{"Free"}),
			stubGig("g3", "v2", -37.7983, 144.9873, []string{"Rock"}, []string{}),
		},
		march2: {},
	}
}

type harness struct {
	store   *state.Store
	service *services.GigsService
	dao     *redis.RedisVenueDAO
	state   *StateHandler
	venues  *VenueHandler
}

// newHarness returns handlers over a store that already shows 1 March 2024.
func newHarness(t *testing.T, api stubGigsAPI) *harness {
	t.Helper()
	loc, err := time.LoadLocation("Australia/Melbourne")
	require.NoError(t, err)

	store := state.NewStore(state.New(march1))
	dao := redis.NewRedisVenueDAO(db.NewMockRedisClient(context.Background()))
	gs := services.NewGigsService(store, api, dao, "melbourne", loc)
	_, err = gs.SelectDate(context.Background(), march1)
	require.NoError(t, err)

	return &harness{
		store:   store,
		service: gs,
		dao:     dao,
		state:   NewStateHandler(store, gs),
		venues:  NewVenueHandler(dao, "melbourne"),
	}
}

func decodeView(t *testing.T, rr *httptest.ResponseRecorder) models.StateView {
	t.Helper()
	var view models.StateView
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &view))
	return view
}

func markerIDs(view models.StateView) []string {
	out := []string{}
	for _, m := range view.Markers {
		out = append(out, m.VenueID)
	}
	return out
}
