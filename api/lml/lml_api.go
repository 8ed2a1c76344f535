package lml

import (
	"context"

	"lml-server/models"
	"lml-server/models/gig"
)

// GigsAPI defines the interface for reading gig listings
type GigsAPI interface {
	GetGigs(ctx context.Context, city string, day models.Day) ([]gig.Gig, error)
}
