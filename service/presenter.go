package services

import (
	"fmt"

	"lml-server/models"
	"lml-server/models/venue"
	"lml-server/state"
)

const DIRECTIONS_URL_FORMAT = "https://www.google.com/maps/dir/?api=1&destination=%v,%v"

// Markers grow with the gig count up to this many gigs.
const MARKER_MAX_SCALED_GIGS = 5
const MARKER_SCALE_STEP = 0.15

// BuildMarkers returns one marker per venue, in venue order.
func BuildMarkers(venues []venue.Venue) []models.Marker {
	markers := make([]models.Marker, 0, len(venues))
	for _, v := range venues {
		m := models.Marker{
			VenueID:  v.ID,
			Name:     v.Name,
			Position: v.Location,
			GigCount: v.GigCount,
			Scale:    1.0,
		}
		if v.GigCount > 1 {
			m.Label = fmt.Sprint(v.GigCount)
			m.Scale = 1.0 + float64(min(v.GigCount, MARKER_MAX_SCALED_GIGS))*MARKER_SCALE_STEP
		}
		markers = append(markers, m)
	}
	return markers
}

// BuildVenuePanel returns the details panel of the selected venue, or nil
// when no venue is selected.
func BuildVenuePanel(s state.AppState) *models.VenuePanel {
	v, ok := s.SelectedVenue()
	if !ok {
		return nil
	}

	gigs := s.Aggregate.GigsAt(v.ID)
	summaries := make([]models.GigSummary, 0, len(gigs))
	for _, g := range gigs {
		summary := models.GigSummary{
			ID:           g.ID,
			Name:         g.Name,
			StartTime:    g.StartTime,
			FinishTime:   g.FinishTime,
			Description:  g.Description,
			GenreTags:    g.GenreTags,
			TicketingURL: g.TicketingURL,
		}
		if summary.GenreTags == nil {
			summary.GenreTags = []string{}
		}
		if price, ok := g.FirstPrice(); ok {
			summary.Price = &price
		}
		summaries = append(summaries, summary)
	}

	plural := "s"
	if v.GigCount == 1 {
		plural = ""
	}

	return &models.VenuePanel{
		Venue:         v,
		DirectionsURL: fmt.Sprintf(DIRECTIONS_URL_FORMAT, v.Location.Lat, v.Location.Lng),
		GigCountLabel: fmt.Sprintf("%d gig%s on %s", v.GigCount, plural, s.Date.Label()),
		Gigs:          summaries,
	}
}

func BuildFilterPanel(s state.AppState) models.FilterPanel {
	panel := models.FilterPanel{
		Genres:           []string{},
		InfoTags:         []string{},
		SelectedGenres:   nonNil(s.SelectedGenres),
		SelectedInfoTags: nonNil(s.SelectedInfoTags),
		ActiveCount:      s.ActiveFilterCount(),
		CanClear:         s.ActiveFilterCount() > 0,
	}
	if s.Aggregate != nil {
		panel.Genres = nonNil(s.Aggregate.Vocabulary.Genres)
		panel.InfoTags = nonNil(s.Aggregate.Vocabulary.InfoTags)
	}
	return panel
}

// BuildStateView renders the whole screen for the front-end.
func BuildStateView(s state.AppState, city string) models.StateView {
	view := models.StateView{
		Date:          s.Date,
		DateLabel:     s.Date.Label(),
		City:          city,
		Status:        string(s.Status),
		Error:         s.Error,
		ShowHeader:    s.ShowHeader,
		ShowFilters:   s.ShowFilters,
		Markers:       BuildMarkers(s.Visible),
		Filters:       BuildFilterPanel(s),
		SelectedVenue: BuildVenuePanel(s),
	}
	if box, ok := models.BoundingBoxOf(s.Visible); ok {
		view.Bounds = &box
	}
	return view
}

func nonNil(ss []string) []string {
	if ss == nil {
		return []string{}
	}
	return ss
}
