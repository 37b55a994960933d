package dashboard

import (
	"sync"
	"time"

	"github.com/2beens/befit/internal/realtime"
	"github.com/2beens/befit/internal/screen"
	"github.com/2beens/befit/internal/telemetry/metrics"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
)

const cacheSize = 2 * 1024 * 1024

// Cache keeps rendered dashboard screens per display mode until the TTL runs
// out or any change event arrives.
//
// Every event bumps the generation. A body built before an event carries the
// old generation and is not stored.
type Cache struct {
	mu             sync.Mutex
	generation     uint64
	cache          *freecache.Cache
	ttlSeconds     int
	metricsManager *metrics.Manager
}

func NewCache(ttl time.Duration, metricsManager *metrics.Manager) *Cache {
	return &Cache{
		cache:          freecache.NewCache(cacheSize),
		ttlSeconds:     int(ttl / time.Second),
		metricsManager: metricsManager,
	}
}

func (c *Cache) Enabled() bool {
	return c != nil && c.ttlSeconds > 0
}

func (c *Cache) Get(mode screen.Mode) ([]byte, bool) {
	if !c.Enabled() {
		return nil, false
	}
	val, err := c.cache.Get(cacheKey(mode))
	if err != nil {
		c.count("miss")
		return nil, false
	}
	c.count("hit")
	return val, true
}

// Generation is read before building a body and handed back to Set.
func (c *Cache) Generation() uint64 {
	if !c.Enabled() {
		return 0
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.generation
}

// Set stores body unless an event arrived since generation was read.
func (c *Cache) Set(mode screen.Mode, generation uint64, body []byte) {
	if !c.Enabled() {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if generation != c.generation {
		c.count("outdated")
		return
	}
	if err := c.cache.Set(cacheKey(mode), body, c.ttlSeconds); err != nil {
		log.Errorf("dashboard cache set [%s]: %s", mode, err)
	}
}

// OnEvent drops everything cached; subscribe it to the realtime hub.
func (c *Cache) OnEvent(event realtime.Event) {
	if !c.Enabled() {
		return
	}
	c.mu.Lock()
	c.generation++
	c.cache.Clear()
	c.mu.Unlock()
	c.count("invalidated")
	log.Tracef("dashboard cache cleared on %s", event.Type)
}

func (c *Cache) count(result string) {
	if c.metricsManager != nil {
		c.metricsManager.CounterDashboardCache.WithLabelValues(result).Inc()
	}
}

func cacheKey(mode screen.Mode) []byte {
	return []byte("dashboard::" + string(mode))
}
