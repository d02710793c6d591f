package mocksearch

import (
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/cememirsenyurt/tripilot/internal/domain"
)

// Cache memoizes generated search results per query for a TTL, so repeated
// searches for the same route or city return the same batch instead of a
// fresh random one. Purely in-process; nothing outlives the server.
type Cache struct {
	c *gocache.Cache
}

// NewCache constructs a Cache whose entries expire after ttl.
func NewCache(ttl time.Duration) *Cache {
	return &Cache{c: gocache.New(ttl, 2*ttl)}
}

// Flights returns the cached batch for the route and date, generating and
// caching a new one on miss.
func (c *Cache) Flights(from, to, date string) []domain.Flight {
	key := cacheKey("fl", from, to, date)
	if v, ok := c.c.Get(key); ok {
		return v.([]domain.Flight)
	}
	flights := Flights(from, to, date)
	c.c.SetDefault(key, flights)
	return flights
}

// Hotels returns the cached batch for the location, generating and caching
// a new one on miss.
func (c *Cache) Hotels(location string) []domain.Hotel {
	key := cacheKey("ht", location)
	if v, ok := c.c.Get(key); ok {
		return v.([]domain.Hotel)
	}
	hotels := Hotels(location)
	c.c.SetDefault(key, hotels)
	return hotels
}

// cacheKey builds a case-insensitive lookup key from the query parts.
func cacheKey(kind string, parts ...string) string {
	return kind + "|" + strings.ToLower(strings.Join(parts, "|"))
}
