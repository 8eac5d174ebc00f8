package dedupe

// Package dedupe provides shared singleflight groups used to deduplicate
// concurrent catalogue loads. Using a centralized singleflight.Group
// ensures that only one database fetch runs for a given key while other
// callers wait for its result, rather than each issuing a redundant query.

import "golang.org/x/sync/singleflight"

// RentalCatalogueGroup deduplicates concurrent rental-archetype catalogue
// loads keyed by keys.RentalArchetypeCacheKey, so a burst of clients
// opening the rental picker at once triggers a single database round trip.
var RentalCatalogueGroup singleflight.Group
