package server

import (
	"github.com/gorilla/mux"

	"lml-server/server/handlers"
)

type Router struct {
	stateHandler *handlers.StateHandler
	venueHandler *handlers.VenueHandler
	mapHandler   *handlers.MapHandler
	router       *mux.Router
}

// NewRouter creates a router with the app’s routes.
func NewRouter(
	stateHandler *handlers.StateHandler,
	venueHandler *handlers.VenueHandler,
	mapHandler *handlers.MapHandler,
	router *mux.Router) *Router {
	return &Router{
		stateHandler: stateHandler,
		venueHandler: venueHandler,
		mapHandler:   mapHandler,
		router:       router,
	}
}

func (r *Router) RegisterRoutes() {
	r.router.HandleFunc("/ping", r.venueHandler.Ping).Methods("GET")

	r.router.HandleFunc("/v1/state", r.stateHandler.GetState).Methods("GET")
	r.router.HandleFunc("/v1/markers", r.stateHandler.GetMarkers).Methods("GET")

	// Date navigation; each one fetches the gigs of the resulting day.
	r.router.HandleFunc("/v1/date/previous", r.stateHandler.PreviousDay).Methods("POST")
	r.router.HandleFunc("/v1/date/next", r.stateHandler.NextDay).Methods("POST")
	r.router.HandleFunc("/v1/date/today", r.stateHandler.Today).Methods("POST")
	r.router.HandleFunc("/v1/date/{day:[0-9]{4}-[0-9]{2}-[0-9]{2}}", r.stateHandler.SelectDate).Methods("POST")

	// expects ?lat={latitude(float)}&lon={longitude(float)}&radius={km(float)}
	r.router.HandleFunc("/v1/venues/nearby", r.venueHandler.GetVenuesNearby).Methods("GET")
	r.router.HandleFunc("/v1/venues/selected", r.stateHandler.CloseVenue).Methods("DELETE")
	r.router.HandleFunc("/v1/venues/{id}", r.stateHandler.GetVenue).Methods("GET")
	r.router.HandleFunc("/v1/venues/{id}/select", r.stateHandler.SelectVenue).Methods("POST")

	r.router.HandleFunc("/v1/filters", r.stateHandler.GetFilters).Methods("GET")
	r.router.HandleFunc("/v1/filters", r.stateHandler.ClearFilters).Methods("DELETE")
	r.router.HandleFunc("/v1/filters/genres/{tag}", r.stateHandler.ToggleGenre).Methods("POST")
	r.router.HandleFunc("/v1/filters/info-tags/{tag}", r.stateHandler.ToggleInfoTag).Methods("POST")

	r.router.HandleFunc("/v1/panels/header", r.stateHandler.ToggleHeader).Methods("POST")
	r.router.HandleFunc("/v1/panels/filters", r.stateHandler.ToggleFilters).Methods("POST")

	r.router.HandleFunc("/v1/map/config", r.mapHandler.GetMapConfig).Methods("GET")
	r.router.HandleFunc("/map", r.mapHandler.RenderMap).Methods("GET")
}
