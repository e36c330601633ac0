package cache

import (
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/pmurley/link-tracker/internal/view"
)

// Cache keeps one dashboard store per viewer session. Sessions expire after
// duration without being touched.
type Cache struct {
	cache    *gocache.Cache
	mu       sync.Mutex
	duration time.Duration
}

func New(duration time.Duration) *Cache {
	return &Cache{
		cache:    gocache.New(duration, duration*2),
		duration: duration,
	}
}

func sessionKey(id string) string {
	return "session:" + id
}

// Store returns the store for a session, creating it when missing. The
// second result is true when a new store was created. Every lookup pushes
// the expiry forward.
func (c *Cache) Store(sessionID string) (*view.Store, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	key := sessionKey(sessionID)
	if s, found := c.cache.Get(key); found {
		store := s.(*view.Store)
		c.cache.Set(key, store, c.duration)
		return store, false
	}

	store := view.NewStore()
	c.cache.Set(key, store, c.duration)
	return store, true
}

// Drop forgets a session.
func (c *Cache) Drop(sessionID string) {
	c.cache.Delete(sessionKey(sessionID))
}

// Sessions is the number of live sessions, expired ones included until the janitor runs.
func (c *Cache) Sessions() int {
	return c.cache.ItemCount()
}

func (c *Cache) Flush() {
	c.cache.Flush()
}
