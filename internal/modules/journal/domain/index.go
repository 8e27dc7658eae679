package domain

// IndexEntry is the flat projection row used by history listings, newest
// date first.
type IndexEntry struct {
	ID              string
	Date            string
	GameType        string
	Location        string
	Stakes          string
	NetProfit       float64
	DurationMinutes int
}
