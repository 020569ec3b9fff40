package cache

import (
	"sync"
	"time"

	"github.com/monbon24/launcher/internal/models"
)

type Cache struct {
	mu         sync.RWMutex
	profile    *models.Profile
	profileExp time.Time
	tiles      []models.Tile
	tilesExp   time.Time
	hub        *models.Hub
	hubExp     time.Time
	status     *models.Status
	statusExp  time.Time
	ttl        time.Duration
}

func NewCache(ttl time.Duration) *Cache {
	return &Cache{ttl: ttl}
}

func (c *Cache) GetProfile() (*models.Profile, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.profile == nil || time.Now().After(c.profileExp) {
		return nil, false
	}
	return c.profile, true
}

func (c *Cache) SetProfile(p models.Profile) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.profile = &p
	c.profileExp = time.Now().Add(c.ttl)
}

func (c *Cache) GetTiles() ([]models.Tile, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.tiles == nil || time.Now().After(c.tilesExp) {
		return nil, false
	}
	return c.tiles, true
}

func (c *Cache) SetTiles(tiles []models.Tile) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.tiles = tiles
	c.tilesExp = time.Now().Add(c.ttl)
}

func (c *Cache) GetHub() (*models.Hub, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.hub == nil || time.Now().After(c.hubExp) {
		return nil, false
	}
	return c.hub, true
}

func (c *Cache) SetHub(h models.Hub) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.hub = &h
	c.hubExp = time.Now().Add(c.ttl)
}

func (c *Cache) GetStatus() (*models.Status, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.status == nil || time.Now().After(c.statusExp) {
		return nil, false
	}
	return c.status, true
}

func (c *Cache) SetStatus(s models.Status) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.status = &s
	c.statusExp = time.Now().Add(c.ttl)
}

// Invalidate drops every cached entry.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.profile = nil
	c.tiles = nil
	c.hub = nil
	c.status = nil
}
