package models

import "lml-server/models/venue"

type BoundingBox struct {
	LatMax float64 `json:"lat_max"`
	LatMin float64 `json:"lat_min"`
	LngMax float64 `json:"lng_max"`
	LngMin float64 `json:"lng_min"`
}

// BoundingBoxOf returns the smallest box holding every venue. ok is false
// for an empty list.
func BoundingBoxOf(venues []venue.Venue) (box BoundingBox, ok bool) {
	for i, v := range venues {
		lat, lng := v.Location.Lat, v.Location.Lng
		if i == 0 {
			box = BoundingBox{LatMax: lat, LatMin: lat, LngMax: lng, LngMin: lng}
			continue
		}
		box.LatMax = max(box.LatMax, lat)
		box.LatMin = min(box.LatMin, lat)
		box.LngMax = max(box.LngMax, lng)
		box.LngMin = min(box.LngMin, lng)
	}
	return box, len(venues) > 0
}
