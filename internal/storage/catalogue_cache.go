package storage

import (
	"sync"

	"github.com/bstrimzi/battlefactory/internal/constants"
	"github.com/bstrimzi/battlefactory/internal/dedupe"
	"github.com/bstrimzi/battlefactory/internal/keys"
	"github.com/bstrimzi/battlefactory/internal/logging"
)

// CachedRepository wraps a Repository and caches rental-archetype catalogue
// reads in memory, deduplicating concurrent misses with a singleflight
// group. The fixed rental catalogue is written once at startup (see
// seedDefaultRentalArchetypes) and never mutated afterward, so a cache
// entry is never invalidated once populated.
type CachedRepository struct {
	Repository

	mu        sync.RWMutex
	all       []RentalArchetype
	allLoaded bool
	byIDs     map[string][]RentalArchetype
}

// NewCachedRepository wraps base with catalogue caching. Every other
// Repository method is passed straight through to base.
func NewCachedRepository(base Repository) *CachedRepository {
	return &CachedRepository{Repository: base, byIDs: make(map[string][]RentalArchetype)}
}

func (c *CachedRepository) ListRentalArchetypes() ([]RentalArchetype, error) {
	c.mu.RLock()
	if c.allLoaded {
		defer c.mu.RUnlock()
		return c.all, nil
	}
	c.mu.RUnlock()

	key := keys.RentalArchetypeCacheKey(nil)
	v, err, _ := dedupe.RentalCatalogueGroup.Do(key, func() (interface{}, error) {
		c.mu.RLock()
		if c.allLoaded {
			cached := c.all
			c.mu.RUnlock()
			return cached, nil
		}
		c.mu.RUnlock()

		list, err := c.Repository.ListRentalArchetypes()
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		c.all = list
		c.allLoaded = true
		c.mu.Unlock()
		logging.Info("rental catalogue cache populated", logging.Fields{constants.LogFieldKey: key})
		return list, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]RentalArchetype), nil
}

func (c *CachedRepository) GetRentalArchetypesByIDs(ids []uint) ([]RentalArchetype, error) {
	key := keys.RentalArchetypeCacheKey(ids)

	c.mu.RLock()
	if cached, ok := c.byIDs[key]; ok {
		c.mu.RUnlock()
		return cached, nil
	}
	c.mu.RUnlock()

	v, err, _ := dedupe.RentalCatalogueGroup.Do(key, func() (interface{}, error) {
		c.mu.RLock()
		if cached, ok := c.byIDs[key]; ok {
			c.mu.RUnlock()
			return cached, nil
		}
		c.mu.RUnlock()

		list, err := c.Repository.GetRentalArchetypesByIDs(ids)
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		c.byIDs[key] = list
		c.mu.Unlock()
		logging.Info("rental archetype lookup cache populated", logging.Fields{constants.LogFieldKey: key})
		return list, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]RentalArchetype), nil
}
