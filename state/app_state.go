package state

import (
	"errors"
	"fmt"
	"slices"

	"lml-server/aggregate"
	"lml-server/models"
	"lml-server/models/venue"
)

type Status string

const (
	StatusLoading Status = "loading"
	StatusReady   Status = "ready"
	StatusError   Status = "error"
)

var ErrUnknownVenue = errors.New("venue is not listed for the selected date")
var ErrUnknownTag = errors.New("tag is not in the vocabulary for the selected date")

// AppState is the whole state of one map session. Transitions are methods on
// a value receiver that return the next state and never modify shared slices
// in place, so any AppState handed out stays valid.
type AppState struct {
	Date   models.Day
	Status Status
	Error  string

	// Generation identifies the fetch that the current Date is waiting on.
	Generation uint64

	Aggregate *models.GigAggregate
	Visible   []venue.Venue

	SelectedVenueID  string
	SelectedGenres   []string
	SelectedInfoTags []string

	ShowHeader  bool
	ShowFilters bool
}

// New returns the state at load time: today selected, header shown, filters
// hidden, and the first fetch pending.
func New(today models.Day) AppState {
	s := AppState{
		ShowHeader:  true,
		ShowFilters: false,
	}
	return s.SelectDate(today)
}

// SelectDate moves to day and starts a new fetch generation. The previous
// day's data, venue selection and tag filters are all dropped.
func (s AppState) SelectDate(day models.Day) AppState {
	s.Date = day
	s.Status = StatusLoading
	s.Error = ""
	s.Generation++
	s.Aggregate = nil
	s.Visible = nil
	s.SelectedVenueID = ""
	s.SelectedGenres = nil
	s.SelectedInfoTags = nil
	return s
}

func (s AppState) PreviousDay() AppState {
	return s.SelectDate(s.Date.AddDays(-1))
}

func (s AppState) NextDay() AppState {
	return s.SelectDate(s.Date.AddDays(1))
}

func (s AppState) Today(today models.Day) AppState {
	return s.SelectDate(today)
}

// FetchSucceeded commits agg if it answers the current generation. Results
// of superseded fetches are ignored.
func (s AppState) FetchSucceeded(generation uint64, agg *models.GigAggregate) (AppState, bool) {
	if generation != s.Generation || s.Status != StatusLoading {
		return s, false
	}
	s.Status = StatusReady
	s.Error = ""
	s.Aggregate = agg
	return s.refilter(), true
}

// FetchFailed moves to the error state if the failed fetch is current.
func (s AppState) FetchFailed(generation uint64, message string) (AppState, bool) {
	if generation != s.Generation || s.Status != StatusLoading {
		return s, false
	}
	s.Status = StatusError
	s.Error = message
	s.Aggregate = nil
	s.Visible = nil
	return s, true
}

// SelectVenue opens the details panel for one of the day's venues.
func (s AppState) SelectVenue(id string) (AppState, error) {
	if _, ok := s.Aggregate.FindVenue(id); !ok {
		return s, fmt.Errorf("%w: %q", ErrUnknownVenue, id)
	}
	s.SelectedVenueID = id
	return s, nil
}

func (s AppState) CloseVenue() AppState {
	s.SelectedVenueID = ""
	return s
}

// SelectedVenue returns the venue whose panel is open, if any.
func (s AppState) SelectedVenue() (venue.Venue, bool) {
	if s.SelectedVenueID == "" {
		return venue.Venue{}, false
	}
	return s.Aggregate.FindVenue(s.SelectedVenueID)
}

// ToggleGenre adds or removes a genre from the filter.
func (s AppState) ToggleGenre(tag string) (AppState, error) {
	key := models.NormalizeTag(tag)
	if s.Aggregate == nil || !s.Aggregate.Vocabulary.HasGenre(key) {
		return s, fmt.Errorf("%w: genre %q", ErrUnknownTag, tag)
	}
	s.SelectedGenres = toggle(s.SelectedGenres, key)
	return s.refilter(), nil
}

// ToggleInfoTag adds or removes an info tag from the filter.
func (s AppState) ToggleInfoTag(tag string) (AppState, error) {
	key := models.NormalizeTag(tag)
	if s.Aggregate == nil || !s.Aggregate.Vocabulary.HasInfoTag(key) {
		return s, fmt.Errorf("%w: info tag %q", ErrUnknownTag, tag)
	}
	s.SelectedInfoTags = toggle(s.SelectedInfoTags, key)
	return s.refilter(), nil
}

func (s AppState) ClearFilters() AppState {
	s.SelectedGenres = nil
	s.SelectedInfoTags = nil
	return s.refilter()
}

func (s AppState) ToggleFilters() AppState {
	s.ShowFilters = !s.ShowFilters
	return s
}

func (s AppState) ToggleHeader() AppState {
	s.ShowHeader = !s.ShowHeader
	return s
}

// Selection is the active tag filter.
func (s AppState) Selection() aggregate.Selection {
	return aggregate.Selection{
		Genres:   s.SelectedGenres,
		InfoTags: s.SelectedInfoTags,
	}
}

func (s AppState) ActiveFilterCount() int {
	return len(s.SelectedGenres) + len(s.SelectedInfoTags)
}

func (s AppState) refilter() AppState {
	if s.Aggregate == nil {
		s.Visible = nil
		return s
	}
	s.Visible = aggregate.FilterVenues(s.Aggregate.Venues, s.Aggregate.VenueGigs, s.Selection())
	return s
}

// toggle returns a new slice with tag removed if present, appended otherwise.
func toggle(selected []string, tag string) []string {
	if i := slices.Index(selected, tag); i >= 0 {
		return slices.Delete(slices.Clone(selected), i, i+1)
	}
	return append(slices.Clone(selected), tag)
}
