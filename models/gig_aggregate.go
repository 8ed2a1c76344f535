package models

import (
	"lml-server/models/gig"
	"lml-server/models/venue"
)

// GigAggregate is everything derived from one day's gig list. It is rebuilt
// from scratch on every successful fetch.
type GigAggregate struct {
	Venues     []venue.Venue        `json:"venues"`
	VenueGigs  map[string][]gig.Gig `json:"venue_gigs"`
	Vocabulary TagVocabulary        `json:"vocabulary"`
}

// FindVenue returns the venue with the given id, if present.
func (a *GigAggregate) FindVenue(id string) (venue.Venue, bool) {
	if a == nil {
		return venue.Venue{}, false
	}
	for _, v := range a.Venues {
		if v.ID == id {
			return v, true
		}
	}
	return venue.Venue{}, false
}

// GigsAt returns the gigs of a venue in API order.
func (a *GigAggregate) GigsAt(venueID string) []gig.Gig {
	if a == nil {
		return nil
	}
	return a.VenueGigs[venueID]
}
