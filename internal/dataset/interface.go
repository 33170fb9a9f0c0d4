package dataset

// Record is one observation: the mean CO concentration for one state in one
// year, in mol/m².
type Record struct {
	State   string  `json:"state"`
	Year    int     `json:"year"`
	COValue float64 `json:"co_value"`
}

// Observation years covered by the dashboard.
const (
	FirstYear = 2020
	LastYear  = 2024
)
