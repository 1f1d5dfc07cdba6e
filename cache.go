package folio

import (
	"sync"
	"time"

	"github.com/eringen/folio/content"
)

// ContentCache is an in-memory copy of the portfolio content with TTL.
// When a reload fails the last good copy keeps being served.
type ContentCache struct {
	mu      sync.RWMutex
	dir     string
	ttl     time.Duration
	data    *content.Portfolio
	sources []string
	fetched time.Time
	lastErr error
	now     func() time.Time
}

// NewContentCache creates a cache over the YAML files in dir. An empty dir
// serves the built-in portfolio.
func NewContentCache(dir string, ttl time.Duration) *ContentCache {
	return &ContentCache{dir: dir, ttl: ttl, now: time.Now}
}

func (c *ContentCache) valid() bool {
	if c.data == nil {
		return false
	}
	if c.dir == "" {
		return true
	}
	return c.now().Sub(c.fetched) < c.ttl
}

// load must be called with mu held for writing.
func (c *ContentCache) load() error {
	if c.dir == "" {
		p := content.Default()
		c.data, c.sources, c.lastErr = &p, nil, nil
		c.fetched = c.now()
		return nil
	}
	p, files, err := content.LoadDir(c.dir, content.Portfolio{})
	c.fetched = c.now()
	if err != nil {
		c.lastErr = err
		return err
	}
	c.data, c.sources, c.lastErr = &p, files, nil
	return nil
}

// Get returns the current portfolio, reloading it when stale. An error is
// returned only when no copy has ever loaded.
func (c *ContentCache) Get() (content.Portfolio, error) {
	c.mu.RLock()
	if c.valid() {
		p := *c.data
		c.mu.RUnlock()
		return p, nil
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.valid() {
		if err := c.load(); err != nil && c.data == nil {
			return content.Portfolio{}, err
		}
	}
	return *c.data, nil
}

// Reload loads the content now and reports the outcome.
func (c *ContentCache) Reload() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.load()
}

// Sources lists the files the current copy was loaded from.
func (c *ContentCache) Sources() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]string(nil), c.sources...)
}

// Err returns the error from the most recent load, if it failed.
func (c *ContentCache) Err() error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.lastErr
}
