package util

import (
	"encoding/json"
	"fmt"
	"os"

	"lml-server/models/gig"
)

// ReadGigsFromJSON loads a gigs API response (a JSON array of gigs) from disk.
func ReadGigsFromJSON(filePath string) ([]gig.Gig, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var gigs []gig.Gig
	if err := json.Unmarshal(data, &gigs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal gigs: %w", err)
	}
	if gigs == nil {
		gigs = []gig.Gig{}
	}
	return gigs, nil
}
