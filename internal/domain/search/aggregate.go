package search

import (
	"slices"
	"strings"
	"time"

	"hotel-booking/internal/domain/booking"
)

type CityCount struct {
	City  string `json:"city"`
	Count int64  `json:"count"`
}

// StatusHistogram counts documents whose stay lies within [start, end].
func StatusHistogram(docs []Document, start, end time.Time) map[booking.Status]int64 {
	from, to := booking.DateOf(start), booking.DateOf(end)
	out := make(map[booking.Status]int64)
	for _, d := range docs {
		if d.CheckInDate.Before(from) || d.CheckOutDate.After(to) {
			continue
		}
		out[d.Status]++
	}
	return out
}

// TopDestinations ranks hotel cities by booking count. Documents without a city are ignored.
func TopDestinations(docs []Document, limit int) []CityCount {
	counts := make(map[string]int64)
	for _, d := range docs {
		if city := strings.TrimSpace(d.HotelCity); city != "" {
			counts[city]++
		}
	}

	out := make([]CityCount, 0, len(counts))
	for city, n := range counts {
		out = append(out, CityCount{City: city, Count: n})
	}
	slices.SortFunc(out, func(a, b CityCount) int {
		if a.Count != b.Count {
			return compareInt64(b.Count, a.Count)
		}
		return strings.Compare(a.City, b.City)
	})
	if limit >= 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}
