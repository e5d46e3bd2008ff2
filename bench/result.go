// Package bench runs timing loops over the compared hash functions.
package bench

import "time"

// Result holds the measurement for a single hash function. It is
// immutable once returned by Run.
type Result struct {
	Name       string        `json:"name"`
	Iterations int           `json:"iterations"`
	Total      time.Duration `json:"total_ns"`
	Avg        time.Duration `json:"avg_ns"`
}
