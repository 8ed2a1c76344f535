package lml

import (
	"context"
	"fmt"
	"log"
	"net/url"

	"github.com/google/uuid"

	"lml-server/api"
	"lml-server/models"
	"lml-server/models/gig"
)

const GIGS_FOR_CITY_ENDPOINT_FORMAT = "/gigs/for/%s/%s"
const REQUEST_ID_HEADER = "X-Request-Id"

// GigsApiClient embeds the common HTTPClient
type GigsApiClient struct {
	*api.HTTPClient
}

// NewGigsApiClient creates a new instance of GigsApiClient
func NewGigsApiClient(httpClient *api.HTTPClient) *GigsApiClient {
	return &GigsApiClient{
		HTTPClient: httpClient,
	}
}

// GetGigs reads every gig of one day in a city in a single request.
func (c *GigsApiClient) GetGigs(ctx context.Context, city string, day models.Day) ([]gig.Gig, error) {
	endpoint := fmt.Sprintf(GIGS_FOR_CITY_ENDPOINT_FORMAT, url.PathEscape(city), day.String())
	requestID := uuid.NewString()
	log.Printf("[GigsApiClient] GET %s request_id=%s", endpoint, requestID)

	var gigs []gig.Gig
	err := c.Request(ctx, "GET", endpoint, map[string]string{REQUEST_ID_HEADER: requestID}, nil, &gigs)
	if err != nil {
		return nil, fmt.Errorf("failed to get gigs for %s on %s (request_id=%s): %w", city, day, requestID, err)
	}
	if gigs == nil {
		gigs = []gig.Gig{}
	}
	log.Printf("[GigsApiClient] Got %d gigs request_id=%s", len(gigs), requestID)
	return gigs, nil
}
