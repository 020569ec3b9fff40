package cache

import (
	"testing"
	"time"

	"github.com/monbon24/launcher/internal/models"
)

func TestNewCache(t *testing.T) {
	c := NewCache(5 * time.Minute)
	if c == nil {
		t.Fatal("NewCache returned nil")
	}
	if c.ttl != 5*time.Minute {
		t.Errorf("expected ttl 5m, got %v", c.ttl)
	}
}

func TestCacheProfile(t *testing.T) {
	c := NewCache(1 * time.Hour)

	p, ok := c.GetProfile()
	if ok || p != nil {
		t.Error("expected empty profile cache")
	}

	c.SetProfile(models.Profile{Title: "Launchpad", Subtitle: "Everything in one place"})

	p, ok = c.GetProfile()
	if !ok {
		t.Fatal("expected profile to be cached")
	}
	if p.Title != "Launchpad" {
		t.Errorf("expected title 'Launchpad', got %q", p.Title)
	}
}

func TestCacheProfileExpiry(t *testing.T) {
	c := NewCache(10 * time.Millisecond)

	c.SetProfile(models.Profile{Title: "Test"})

	_, ok := c.GetProfile()
	if !ok {
		t.Error("expected profile to be cached")
	}

	time.Sleep(20 * time.Millisecond)

	_, ok = c.GetProfile()
	if ok {
		t.Error("expected profile cache to have expired")
	}
}

func TestCacheTilesKeepOrder(t *testing.T) {
	c := NewCache(1 * time.Hour)

	tiles, ok := c.GetTiles()
	if ok || tiles != nil {
		t.Error("expected empty tiles cache")
	}

	c.SetTiles([]models.Tile{
		{Title: "Homeschool Planner", Href: "https://a.test"},
		{Title: "Command Center", Href: "https://b.test"},
	})

	tiles, ok = c.GetTiles()
	if !ok {
		t.Fatal("expected tiles to be cached")
	}
	if len(tiles) != 2 {
		t.Fatalf("expected 2 tiles, got %d", len(tiles))
	}
	if tiles[0].Title != "Homeschool Planner" || tiles[1].Title != "Command Center" {
		t.Errorf("tile order changed: %q, %q", tiles[0].Title, tiles[1].Title)
	}
}

func TestCacheEmptyTileListIsCached(t *testing.T) {
	c := NewCache(1 * time.Hour)

	c.SetTiles([]models.Tile{})

	if _, ok := c.GetTiles(); !ok {
		t.Error("expected an empty, non-nil tile list to be cached")
	}
}

func TestCacheHubAndStatus(t *testing.T) {
	c := NewCache(1 * time.Hour)

	if h, ok := c.GetHub(); ok || h != nil {
		t.Error("expected empty hub cache")
	}
	if s, ok := c.GetStatus(); ok || s != nil {
		t.Error("expected empty status cache")
	}

	c.SetHub(models.Hub{Title: "OneNote Hub", Href: "https://c.test"})
	c.SetStatus(models.Status{State: models.StatusOffline})

	h, ok := c.GetHub()
	if !ok || h.Href != "https://c.test" {
		t.Errorf("expected cached hub, got %+v", h)
	}
	s, ok := c.GetStatus()
	if !ok || s.Online() {
		t.Errorf("expected cached offline status, got %+v", s)
	}

	c.Invalidate()
	if _, ok := c.GetHub(); ok {
		t.Error("expected hub cache to be invalidated")
	}
	if _, ok := c.GetStatus(); ok {
		t.Error("expected status cache to be invalidated")
	}
}

func TestCacheConcurrency(t *testing.T) {
	c := NewCache(1 * time.Hour)

	done := make(chan bool)

	go func() {
		for range 100 {
			c.SetStatus(models.Status{State: models.StatusOnline})
		}
		done <- true
	}()

	go func() {
		for range 100 {
			c.GetStatus()
		}
		done <- true
	}()

	go func() {
		for range 100 {
			c.Invalidate()
		}
		done <- true
	}()

	for range 3 {
		<-done
	}
}
