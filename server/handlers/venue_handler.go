package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"net/url"
	"strconv"

	"lml-server/dao/redis"
	"lml-server/models"
	"lml-server/models/venue"
)

const (
	LAT_QUERY_ARG    = "lat"
	LON_QUERY_ARG    = "lon"
	RADIUS_QUERY_ARG = "radius"
)

// NearbyVenuesResponse lists the snapshot venues around a point.
type NearbyVenuesResponse struct {
	Date   *models.Day   `json:"date"`
	Venues []venue.Venue `json:"venues"`
}

type VenueHandler struct {
	redisVenueDao *redis.RedisVenueDAO
	city          string
}

func NewVenueHandler(redisVenueDao *redis.RedisVenueDAO, city string) *VenueHandler {
	return &VenueHandler{redisVenueDao: redisVenueDao, city: city}
}

// GetVenuesNearby expects ?lat={float}&lon={float}&radius={km, float}.
func (h *VenueHandler) GetVenuesNearby(w http.ResponseWriter, r *http.Request) {
	lat, lon, radius, ok := h.parseArgs(r.URL.Query(), w)
	if !ok {
		return // error already written
	}

	venues, day, err := h.redisVenueDao.GetNearbyVenues(h.city, lat, lon, radius)
	if err != nil {
		log.Println("[VenueHandler] Error loading nearby venues:", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	resp := NearbyVenuesResponse{Venues: venues}
	if !day.IsZero() {
		resp.Date = &day
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *VenueHandler) parseArgs(vals url.Values, w http.ResponseWriter) (
	lat, lon, radius float64, ok bool,
) {
	var err error

	lat, err = parseArgFloat64(vals, LAT_QUERY_ARG)
	if err != nil || lat < -90 || lat > 90 {
		http.Error(w, "Invalid argument "+LAT_QUERY_ARG, http.StatusBadRequest)
		return
	}
	lon, err = parseArgFloat64(vals, LON_QUERY_ARG)
	if err != nil || lon < -180 || lon > 180 {
		http.Error(w, "Invalid argument "+LON_QUERY_ARG, http.StatusBadRequest)
		return
	}
	radius, err = parseArgFloat64(vals, RADIUS_QUERY_ARG)
	if err != nil || radius <= 0 {
		http.Error(w, "Invalid argument "+RADIUS_QUERY_ARG, http.StatusBadRequest)
		return
	}
	ok = true
	return
}

func parseArgFloat64(vals url.Values, name string) (float64, error) {
	s := vals.Get(name)
	return strconv.ParseFloat(s, 64)
}

// Ping handles GET /ping
func (h *VenueHandler) Ping(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"status": "pong"})
}
