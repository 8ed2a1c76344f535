package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"lml-server/models"
	services "lml-server/service"
	"lml-server/state"
)

const (
	DAY_PATH_VAR   = "day"
	VENUE_PATH_VAR = "id"
	TAG_PATH_VAR   = "tag"
)

// StateHandler exposes the map session's state and the user actions on it.
type StateHandler struct {
	store       *state.Store
	gigsService *services.GigsService
}

func NewStateHandler(store *state.Store, gigsService *services.GigsService) *StateHandler {
	return &StateHandler{store: store, gigsService: gigsService}
}

func (h *StateHandler) GetState(w http.ResponseWriter, r *http.Request) {
	h.writeState(w, http.StatusOK, h.store.Snapshot())
}

func (h *StateHandler) GetMarkers(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, services.BuildMarkers(h.store.Snapshot().Visible))
}

func (h *StateHandler) GetFilters(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, services.BuildFilterPanel(h.store.Snapshot()))
}

// GetVenue returns the details panel of any venue listed for the current
// date, without changing the selection.
func (h *StateHandler) GetVenue(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)[VENUE_PATH_VAR]
	s, err := h.store.Snapshot().SelectVenue(id)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, services.BuildVenuePanel(s))
}

func (h *StateHandler) SelectDate(w http.ResponseWriter, r *http.Request) {
	day, err := models.ParseDay(mux.Vars(r)[DAY_PATH_VAR])
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	h.navigate(w, r, func(ctx context.Context) (state.AppState, error) {
		return h.gigsService.SelectDate(ctx, day)
	})
}

func (h *StateHandler) PreviousDay(w http.ResponseWriter, r *http.Request) {
	h.navigate(w, r, h.gigsService.PreviousDay)
}

func (h *StateHandler) NextDay(w http.ResponseWriter, r *http.Request) {
	h.navigate(w, r, h.gigsService.NextDay)
}

func (h *StateHandler) Today(w http.ResponseWriter, r *http.Request) {
	h.navigate(w, r, h.gigsService.Today)
}

func (h *StateHandler) SelectVenue(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)[VENUE_PATH_VAR]
	h.tryUpdate(w, func(s state.AppState) (state.AppState, error) { return s.SelectVenue(id) })
}

func (h *StateHandler) CloseVenue(w http.ResponseWriter, r *http.Request) {
	h.writeState(w, http.StatusOK, h.store.Update(state.AppState.CloseVenue))
}

func (h *StateHandler) ToggleGenre(w http.ResponseWriter, r *http.Request) {
	tag := mux.Vars(r)[TAG_PATH_VAR]
	h.tryUpdate(w, func(s state.AppState) (state.AppState, error) { return s.ToggleGenre(tag) })
}

func (h *StateHandler) ToggleInfoTag(w http.ResponseWriter, r *http.Request) {
	tag := mux.Vars(r)[TAG_PATH_VAR]
	h.tryUpdate(w, func(s state.AppState) (state.AppState, error) { return s.ToggleInfoTag(tag) })
}

func (h *StateHandler) ClearFilters(w http.ResponseWriter, r *http.Request) {
	h.writeState(w, http.StatusOK, h.store.Update(state.AppState.ClearFilters))
}

func (h *StateHandler) ToggleHeader(w http.ResponseWriter, r *http.Request) {
	h.writeState(w, http.StatusOK, h.store.Update(state.AppState.ToggleHeader))
}

func (h *StateHandler) ToggleFilters(w http.ResponseWriter, r *http.Request) {
	h.writeState(w, http.StatusOK, h.store.Update(state.AppState.ToggleFilters))
}

// navigate runs a date change and its fetch. A failed fetch still answers
// with the state view, which carries the error message, under 502.
// Client disconnects do not cancel the fetch; only a newer navigation or the
// gigs client timeout does.
func (h *StateHandler) navigate(w http.ResponseWriter, r *http.Request, move func(context.Context) (state.AppState, error)) {
	s, err := move(context.WithoutCancel(r.Context()))
	switch {
	case err == nil:
		h.writeState(w, http.StatusOK, s)
	case errors.Is(err, services.ErrFetchSuperseded):
		log.Printf("[StateHandler] Navigation superseded, returning current state for %s", s.Date)
		h.writeState(w, http.StatusOK, s)
	case errors.Is(err, services.ErrFetchFailed):
		h.writeState(w, http.StatusBadGateway, s)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *StateHandler) tryUpdate(w http.ResponseWriter, fn func(state.AppState) (state.AppState, error)) {
	s, err := h.store.TryUpdate(fn)
	if err != nil {
		if errors.Is(err, state.ErrUnknownVenue) || errors.Is(err, state.ErrUnknownTag) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	h.writeState(w, http.StatusOK, s)
}

func (h *StateHandler) writeState(w http.ResponseWriter, status int, s state.AppState) {
	writeJSON(w, status, services.BuildStateView(s, h.gigsService.City()))
}
