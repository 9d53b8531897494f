package model

import "math"

// Progress summarizes how far through the collection the viewer is.
type Progress struct {
	Watched    int
	Remaining  int
	Total      int
	Percentage float64
}

// ComputeProgress derives progress figures from raw counts. Percentage is
// rounded to one decimal place and is 0.0 for an empty collection.
func ComputeProgress(watched, remaining, total int) Progress {
	p := Progress{Watched: watched, Remaining: remaining, Total: total}
	if total > 0 {
		p.Percentage = math.Round(float64(watched)/float64(total)*1000) / 10
	}
	return p
}
