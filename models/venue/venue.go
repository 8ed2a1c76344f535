package venue

// Location is a geographic coordinate.
type Location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Venue is derived from the gigs of a single day: one per distinct venue id.
type Venue struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Address  string   `json:"address"`
	Location Location `json:"location"`
	Website  string   `json:"website"`
	GigCount int      `json:"gig_count"`
}
