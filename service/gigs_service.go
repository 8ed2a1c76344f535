package services

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"lml-server/aggregate"
	"lml-server/api/lml"
	"lml-server/config"
	"lml-server/dao/redis"
	"lml-server/models"
	"lml-server/state"
)

var ErrFetchFailed = errors.New(config.GIGS_FETCH_FAILED_MESSAGE)
var ErrFetchSuperseded = errors.New("fetch was superseded by a newer date selection")

// GigsService drives the fetch → aggregate → commit pipeline for date changes.
type GigsService struct {
	store    *state.Store
	gigsAPI  lml.GigsAPI
	venueDao *redis.RedisVenueDAO
	city     string
	location *time.Location
	now      func() time.Time

	// snapshotMu serializes geo snapshot writes so they land in commit order.
	snapshotMu sync.Mutex
}

// NewGigsService wires the service. venueDao may be nil, in which case no
// geo snapshot is kept.
func NewGigsService(
	store *state.Store,
	gigsAPI lml.GigsAPI,
	venueDao *redis.RedisVenueDAO,
	city string,
	location *time.Location,
) *GigsService {
	return &GigsService{
		store:    store,
		gigsAPI:  gigsAPI,
		venueDao: venueDao,
		city:     city,
		location: location,
		now:      time.Now,
	}
}

func (gs *GigsService) City() string {
	return gs.city
}

// CurrentDay is today's calendar day in the city's timezone.
func (gs *GigsService) CurrentDay() models.Day {
	return models.Today(gs.now(), gs.location)
}

func (gs *GigsService) SelectDate(ctx context.Context, day models.Day) (state.AppState, error) {
	return gs.navigate(ctx, func(s state.AppState) state.AppState { return s.SelectDate(day) })
}

func (gs *GigsService) PreviousDay(ctx context.Context) (state.AppState, error) {
	return gs.navigate(ctx, state.AppState.PreviousDay)
}

func (gs *GigsService) NextDay(ctx context.Context) (state.AppState, error) {
	return gs.navigate(ctx, state.AppState.NextDay)
}

func (gs *GigsService) Today(ctx context.Context) (state.AppState, error) {
	today := gs.CurrentDay()
	return gs.navigate(ctx, func(s state.AppState) state.AppState { return s.Today(today) })
}

// navigate applies a date transition and performs exactly one fetch for the
// resulting day. Only the latest navigation can commit its result.
func (gs *GigsService) navigate(ctx context.Context, move func(state.AppState) state.AppState) (state.AppState, error) {
	started, fetchCtx := gs.store.BeginFetch(ctx, move)
	day, generation := started.Date, started.Generation

	gigs, err := gs.gigsAPI.GetGigs(fetchCtx, gs.city, day)
	if err != nil {
		log.Printf("[GigsService] Fetch for %s (generation=%d) failed: %v", day, generation, err)
		current, committed := gs.store.Fail(generation, config.GIGS_FETCH_FAILED_MESSAGE)
		if !committed {
			return current, ErrFetchSuperseded
		}
		return current, ErrFetchFailed
	}

	agg := aggregate.AggregateGigs(gigs)
	current, committed := gs.store.Complete(generation, agg)
	if !committed {
		return current, ErrFetchSuperseded
	}
	log.Printf("[GigsService] Committed %d gigs at %d venues for %s (generation=%d)",
		len(gigs), len(agg.Venues), day, generation)

	gs.writeSnapshot(generation, day, agg)
	return current, nil
}

// writeSnapshot replaces the geo snapshot with the committed day's venues,
// unless a newer navigation has started since the commit. Failures are logged
// only; the map does not depend on the snapshot.
func (gs *GigsService) writeSnapshot(generation uint64, day models.Day, agg *models.GigAggregate) {
	if gs.venueDao == nil {
		return
	}
	gs.snapshotMu.Lock()
	defer gs.snapshotMu.Unlock()
	if current := gs.store.Snapshot().Generation; current != generation {
		log.Printf("[GigsService] Skipping venue snapshot for %s, generation %d superseded by %d", day, generation, current)
		return
	}
	if err := gs.venueDao.ReplaceVenues(gs.city, day, agg.Venues); err != nil {
		log.Printf("[GigsService] Failed to replace venue snapshot for %s: %v", day, err)
	}
}
