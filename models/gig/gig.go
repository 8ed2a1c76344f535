package gig

import "encoding/json"

// Price is a single ticket price entry of a gig.
type Price struct {
	Amount      string `json:"amount"`
	Description string `json:"description"`
}

// GigVenue is the venue record embedded in every gig returned by the gigs API.
type GigVenue struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Address     string   `json:"address"`
	Capacity    int      `json:"capacity"`
	Website     string   `json:"website"`
	Postcode    string   `json:"postcode"`
	Vibe        string   `json:"vibe"`
	Tags        []string `json:"tags"`
	LocationURL string   `json:"location_url"`
	Latitude    float64  `json:"latitude"`
	Longitude   float64  `json:"longitude"`
}

// Gig is one scheduled live-music event, kept as received from the API.
type Gig struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Date            string   `json:"date"`
	TicketingURL    string   `json:"ticketing_url"`
	StartTime       string   `json:"start_time"`
	StartTimestamp  string   `json:"start_timestamp"`
	Duration        *string  `json:"duration"`
	FinishTime      *string  `json:"finish_time"`
	FinishTimestamp *string  `json:"finish_timestamp"`
	Description     *string  `json:"description"`
	Status          string   `json:"status"`
	TicketStatus    *string  `json:"ticket_status"`
	Series          *string  `json:"series"`
	Category        *string  `json:"category"`
	InformationTags []string `json:"information_tags"`
	GenreTags       []string `json:"genre_tags"`
	Venue           GigVenue `json:"venue"`
	// Sets is not interpreted, only passed through.
	Sets   []json.RawMessage `json:"sets"`
	Prices []Price           `json:"prices"`

	// Lower-cased tag keys, filled in at ingestion by the aggregator.
	GenreKeys []string `json:"-"`
	InfoKeys  []string `json:"-"`
}

// FirstPrice returns the amount of the first price entry, if the gig has one.
func (g *Gig) FirstPrice() (string, bool) {
	if len(g.Prices) == 0 {
		return "", false
	}
	return g.Prices[0].Amount, true
}
