package appointment

import (
	"time"

	"github.com/serenitylabs/medspa-scheduler/internal/models"
)

// Overlaps reports whether the half-open intervals [aStart, aEnd) and
// [bStart, bEnd) intersect. Back-to-back bookings (aEnd == bStart) do not.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && aEnd.After(bStart)
}

// Totals sums price and duration over a service selection. Exact integer
// sums: cents and minutes, no rounding.
func Totals(services []models.Service) (totalPrice, totalDuration int) {
	for _, s := range services {
		totalPrice += s.Price
		totalDuration += s.Duration
	}
	return totalPrice, totalDuration
}

// DedupeIDs drops repeated ids, preserving first occurrence.
func DedupeIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
