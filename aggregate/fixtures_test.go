package aggregate

import "lml-server/models/gig"

func newGig(id, venueID string, genres, infoTags []string) gig.Gig {
	return gig.Gig{
		ID:              id,
		Name:            "Gig " + id,
		StartTime:       "20:00",
		GenreTags:       genres,
		InformationTags: infoTags,
		TicketingURL:    "https://tix.example/" + id,
		Venue: gig.GigVenue{
			ID:        venueID,
			Name:      "Venue " + venueID,
			Address:   venueID + " Street",
			Website:   "https://" + venueID + ".example",
			Latitude:  -37.8,
			Longitude: 144.9,
		},
	}
}

// scenarioGigs is the three-gig, two-venue day used across the tests.
func scenarioGigs() []gig.Gig {
	return []gig.Gig{
		newGig("g1", "v1", []string{"Jazz"}, []string{}),
		newGig("g2", "v1", []string{"Rock"}, []string{"Free"}),
		newGig("g3", "v2", []string{"Rock"}, []string{}),
	}
}
