package handlers

import (
	"log"
	"net/http"

	"lml-server/config"
	"lml-server/models"
	"lml-server/models/venue"
	services "lml-server/service"
	"lml-server/state"
	"lml-server/util"
)

const MAP_TITLE = "Live Music Locator"

// MapHandler serves the map widget. Without an API key the map cannot
// initialise and every map route answers with the loading message.
type MapHandler struct {
	store  *state.Store
	apiKey string
	city   string
}

func NewMapHandler(store *state.Store, apiKey, city string) *MapHandler {
	return &MapHandler{store: store, apiKey: apiKey, city: city}
}

func (h *MapHandler) GetMapConfig(w http.ResponseWriter, r *http.Request) {
	if !h.ready(w) {
		return
	}
	writeJSON(w, http.StatusOK, models.MapConfig{
		APIKey: h.apiKey,
		Center: venue.Location{Lat: config.MAP_CENTER_LAT, Lng: config.MAP_CENTER_LNG},
		Zoom:   config.MAP_ZOOM,
	})
}

// RenderMap draws the currently visible venues as an HTML page.
func (h *MapHandler) RenderMap(w http.ResponseWriter, r *http.Request) {
	if !h.ready(w) {
		return
	}
	s := h.store.Snapshot()
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	subtitle := h.city + " gigs | " + s.Date.Label()
	if err := util.RenderVenueMap(w, services.BuildMarkers(s.Visible), MAP_TITLE, subtitle); err != nil {
		log.Printf("[MapHandler] %v", err)
	}
}

func (h *MapHandler) ready(w http.ResponseWriter) bool {
	if h.apiKey == "" {
		http.Error(w, config.MAP_LOADING_MESSAGE, http.StatusServiceUnavailable)
		return false
	}
	return true
}
