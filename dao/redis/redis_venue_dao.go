package redis

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"lml-server/db"
	"lml-server/models"
	"lml-server/models/venue"
)

const GIG_VENUES_GEO_KEY_FORMAT_V1 = "gig_venues_geo_v1:%s"
const GIG_VENUES_GEO_MEMBER_FORMAT_V1 = "gig_venues_geo_place_v1:%s:%s"
const GIG_VENUES_DAY_KEY_FORMAT_V1 = "gig_venues_day_v1:%s"

// RedisVenueDAO keeps a geo-indexed snapshot of the venues of the most
// recently committed day, one snapshot per city.
type RedisVenueDAO struct {
	client db.RedisClient
}

// NewRedisVenueDAO initializes a RedisVenueDAO with the Redis client.
func NewRedisVenueDAO(client db.RedisClient) *RedisVenueDAO {
	return &RedisVenueDAO{client: client}
}

// ReplaceVenues drops the city's previous snapshot and stores venues as the
// snapshot for day.
func (dao *RedisVenueDAO) ReplaceVenues(city string, day models.Day, venues []venue.Venue) error {
	if err := dao.dropSnapshot(city); err != nil {
		return err
	}

	ctx := dao.client.GetContext()
	geoKey := fmt.Sprintf(GIG_VENUES_GEO_KEY_FORMAT_V1, city)
	for _, v := range venues {
		member := fmt.Sprintf(GIG_VENUES_GEO_MEMBER_FORMAT_V1, city, v.ID)
		if err := dao.client.AddLocationWithJSON(ctx, geoKey, member, v.Location.Lat, v.Location.Lng, v); err != nil {
			return fmt.Errorf("[RedisVenueDAO] failed to add venue %s: %w", v.ID, err)
		}
	}

	if err := dao.client.Set(fmt.Sprintf(GIG_VENUES_DAY_KEY_FORMAT_V1, city), day.String()); err != nil {
		return fmt.Errorf("[RedisVenueDAO] failed to set snapshot day: %w", err)
	}
	log.Printf("[RedisVenueDAO] Stored %d venues for %s on %s", len(venues), city, day)
	return nil
}

// GetNearbyVenues returns the snapshot's venues within radius km of
// (lat, lon), nearest first, and the day the snapshot belongs to. With no
// snapshot stored it returns no venues and a zero day.
func (dao *RedisVenueDAO) GetNearbyVenues(city string, lat, lon, radius float64) ([]venue.Venue, models.Day, error) {
	dayStr, err := dao.client.Get(fmt.Sprintf(GIG_VENUES_DAY_KEY_FORMAT_V1, city))
	if errors.Is(err, db.ErrKeyNotFound) {
		return []venue.Venue{}, models.Day{}, nil
	}
	if err != nil {
		return nil, models.Day{}, fmt.Errorf("[RedisVenueDAO] failed to get snapshot day: %w", err)
	}
	day, err := models.ParseDay(dayStr)
	if err != nil {
		return nil, models.Day{}, fmt.Errorf("[RedisVenueDAO] corrupt snapshot day: %w", err)
	}

	venuesJSON, err := dao.client.GetLocationsWithinRadius(fmt.Sprintf(GIG_VENUES_GEO_KEY_FORMAT_V1, city), lat, lon, radius)
	if err != nil {
		return nil, models.Day{}, fmt.Errorf("[RedisVenueDAO] failed to get venues: %w", err)
	}

	venues := make([]venue.Venue, len(venuesJSON))
	for i, venueJSON := range venuesJSON {
		if err := json.Unmarshal([]byte(venueJSON), &venues[i]); err != nil {
			return nil, models.Day{}, fmt.Errorf("failed to unmarshal venue JSON: %w", err)
		}
	}
	return venues, day, nil
}

func (dao *RedisVenueDAO) dropSnapshot(city string) error {
	members, err := dao.client.Keys(fmt.Sprintf(GIG_VENUES_GEO_MEMBER_FORMAT_V1, city, "*"))
	if err != nil {
		return fmt.Errorf("[RedisVenueDAO] failed to list venue members: %w", err)
	}
	keys := append(members,
		fmt.Sprintf(GIG_VENUES_GEO_KEY_FORMAT_V1, city),
		fmt.Sprintf(GIG_VENUES_DAY_KEY_FORMAT_V1, city),
	)
	for _, k := range keys {
		if err := dao.client.Del(k); err != nil {
			return fmt.Errorf("[RedisVenueDAO] failed to delete %s: %w", k, err)
		}
	}
	return nil
}
