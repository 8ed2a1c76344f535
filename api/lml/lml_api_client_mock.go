package lml

import (
	"context"
	"log"

	"lml-server/models"
	"lml-server/models/gig"
	"lml-server/util"
)

// GigsApiClientMock serves the same fixture for every city and day.
type GigsApiClientMock struct {
	fixturePath string
}

func NewGigsApiClientMock(fixturePath string) *GigsApiClientMock {
	return &GigsApiClientMock{fixturePath: fixturePath}
}

func (m *GigsApiClientMock) GetGigs(ctx context.Context, city string, day models.Day) ([]gig.Gig, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	log.Printf("[GigsApiClientMock] Reading gigs for %s on %s from %s", city, day, m.fixturePath)
	return util.ReadGigsFromJSON(m.fixturePath)
}
