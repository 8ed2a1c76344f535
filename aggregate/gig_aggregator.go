package aggregate

import (
	"lml-server/models"
	"lml-server/models/gig"
	"lml-server/models/venue"
)

// AggregateGigs turns one day's flat gig list into per-venue structures in a
// single pass. Venues keep first-seen order and each venue's gigs keep API
// order. Tags are lower-cased here, once, so filtering only compares keys.
func AggregateGigs(gigs []gig.Gig) *models.GigAggregate {
	venueIndex := make(map[string]int)
	venues := make([]venue.Venue, 0)
	venueGigs := make(map[string][]gig.Gig)
	genres := models.NewTagSet()
	infoTags := models.NewTagSet()

	for _, g := range gigs {
		g.GenreKeys = normalizeTags(g.GenreTags)
		g.InfoKeys = normalizeTags(g.InformationTags)
		for _, t := range g.GenreKeys {
			genres.Add(t)
		}
		for _, t := range g.InfoKeys {
			infoTags.Add(t)
		}

		venueID := g.Venue.ID
		if i, ok := venueIndex[venueID]; ok {
			venues[i].GigCount++
		} else {
			venueIndex[venueID] = len(venues)
			venues = append(venues, venueFromGig(g))
		}
		venueGigs[venueID] = append(venueGigs[venueID], g)
	}

	return &models.GigAggregate{
		Venues:    venues,
		VenueGigs: venueGigs,
		Vocabulary: models.TagVocabulary{
			Genres:   genres.Sorted(),
			InfoTags: infoTags.Sorted(),
		},
	}
}

func venueFromGig(g gig.Gig) venue.Venue {
	return venue.Venue{
		ID:      g.Venue.ID,
		Name:    g.Venue.Name,
		Address: g.Venue.Address,
		Location: venue.Location{
			Lat: g.Venue.Latitude,
			Lng: g.Venue.Longitude,
		},
		Website:  g.Venue.Website,
		GigCount: 1,
	}
}

// normalizeTags lower-cases tags, dropping blanks and repeats.
func normalizeTags(tags []string) []string {
	if len(tags) == 0 {
		return nil
	}
	seen := models.NewTagSet()
	keys := make([]string, 0, len(tags))
	for _, t := range tags {
		k := models.NormalizeTag(t)
		if k == "" || seen.Contains(k) {
			continue
		}
		seen.Add(k)
		keys = append(keys, k)
	}
	return keys
}
