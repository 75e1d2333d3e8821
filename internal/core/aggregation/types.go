package aggregation

// RankedEntry is one row of a ranked tally (genre, director, cast member).
type RankedEntry struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
	Image string `json:"image,omitempty"`
}
