package models

import "lml-server/models/venue"

// Marker is one venue pin on the map.
type Marker struct {
	VenueID  string         `json:"venue_id"`
	Name     string         `json:"name"`
	Position venue.Location `json:"position"`
	GigCount int            `json:"gig_count"`
	Label    string         `json:"label"`
	Scale    float64        `json:"scale"`
}

// GigSummary is the part of a gig shown in the venue details panel.
type GigSummary struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	StartTime    string   `json:"start_time"`
	FinishTime   *string  `json:"finish_time,omitempty"`
	Description  *string  `json:"description,omitempty"`
	GenreTags    []string `json:"genre_tags"`
	Price        *string  `json:"price,omitempty"`
	TicketingURL string   `json:"ticketing_url"`
}

// VenuePanel is the payload of the venue details panel.
type VenuePanel struct {
	Venue         venue.Venue  `json:"venue"`
	DirectionsURL string       `json:"directions_url"`
	GigCountLabel string       `json:"gig_count_label"`
	Gigs          []GigSummary `json:"gigs"`
}

// FilterPanel is the payload of the collapsible filter panel.
type FilterPanel struct {
	Genres           []string `json:"genres"`
	InfoTags         []string `json:"info_tags"`
	SelectedGenres   []string `json:"selected_genres"`
	SelectedInfoTags []string `json:"selected_info_tags"`
	ActiveCount      int      `json:"active_count"`
	CanClear         bool     `json:"can_clear"`
}

// StateView is the whole screen as the front-end needs it.
type StateView struct {
	Date          Day          `json:"date"`
	DateLabel     string       `json:"date_label"`
	City          string       `json:"city"`
	Status        string       `json:"status"`
	Error         string       `json:"error,omitempty"`
	ShowHeader    bool         `json:"show_header"`
	ShowFilters   bool         `json:"show_filters"`
	Markers       []Marker     `json:"markers"`
	Filters       FilterPanel  `json:"filters"`
	SelectedVenue *VenuePanel  `json:"selected_venue,omitempty"`
	Bounds        *BoundingBox `json:"bounds,omitempty"`
}

// MapConfig is what the map widget needs to initialise.
type MapConfig struct {
	APIKey string         `json:"api_key"`
	Center venue.Location `json:"center"`
	Zoom   int            `json:"zoom"`
}
