package aggregate

import (
	"lml-server/models"
	"lml-server/models/gig"
	"lml-server/models/venue"
)

// Selection is the active tag filter. Both lists hold normalised tags.
type Selection struct {
	Genres   []string
	InfoTags []string
}

func (s Selection) IsEmpty() bool {
	return len(s.Genres) == 0 && len(s.InfoTags) == 0
}

// FilterVenues returns the venues having at least one gig that matches the
// selection. Within a category any selected tag matches; both categories
// must match when both are set. An empty selection returns venues as is.
func FilterVenues(venues []venue.Venue, venueGigs map[string][]gig.Gig, sel Selection) []venue.Venue {
	if sel.IsEmpty() {
		return venues
	}

	genres := models.NewTagSet(sel.Genres...)
	infoTags := models.NewTagSet(sel.InfoTags...)

	filtered := make([]venue.Venue, 0, len(venues))
	for _, v := range venues {
		for _, g := range venueGigs[v.ID] {
			if gigMatches(g, genres, infoTags) {
				filtered = append(filtered, v)
				break
			}
		}
	}
	return filtered
}

func gigMatches(g gig.Gig, genres, infoTags models.TagSet) bool {
	genreMatch := len(genres) == 0 || genres.ContainsAny(g.GenreKeys)
	infoMatch := len(infoTags) == 0 || infoTags.ContainsAny(g.InfoKeys)
	return genreMatch && infoMatch
}
