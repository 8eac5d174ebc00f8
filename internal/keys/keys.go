package keys

import (
	"sort"
	"strconv"
	"strings"
)

// RentalArchetypeCacheKey produces a canonical key for a set of rental
// archetype IDs, order-independent so "1,3" and "3,1" share a cache entry.
// An empty ids slice keys the full catalogue listing.
func RentalArchetypeCacheKey(ids []uint) string {
	if len(ids) == 0 {
		return "all"
	}
	sorted := make([]uint, len(ids))
	copy(sorted, ids)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	parts := make([]string, len(sorted))
	for i, id := range sorted {
		parts[i] = strconv.FormatUint(uint64(id), 10)
	}
	return strings.Join(parts, "_")
}
