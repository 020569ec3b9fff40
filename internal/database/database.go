package database

import (
	"context"
	"fmt"
	"time"

	"github.com/monbon24/launcher/internal/cache"
	"github.com/monbon24/launcher/internal/config"
	"github.com/monbon24/launcher/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Database is the source of the launcher descriptors.
type Database interface {
	Close()
	// Invalidate drops cached descriptors so the next read sees current rows.
	Invalidate()
	GetProfile(ctx context.Context) (models.Profile, error)
	GetTiles(ctx context.Context) ([]models.Tile, error)
	GetHub(ctx context.Context) (models.Hub, error)
}

type static struct {
	profile models.Profile
	tiles   []models.Tile
	hub     models.Hub
}

// NewStatic serves the descriptors of an already validated configuration.
func NewStatic(cfg *config.Config) Database {
	tiles := make([]models.Tile, len(cfg.Tiles))
	copy(tiles, cfg.Tiles)
	return &static{
		profile: cfg.Profile,
		tiles:   tiles,
		hub:     cfg.Hub,
	}
}

func (s *static) Close() {}

func (s *static) Invalidate() {}

func (s *static) GetProfile(context.Context) (models.Profile, error) {
	return s.profile, nil
}

func (s *static) GetTiles(context.Context) ([]models.Tile, error) {
	return s.tiles, nil
}

func (s *static) GetHub(context.Context) (models.Hub, error) {
	return s.hub, nil
}

type database struct {
	db        *pgxpool.Pool
	cache     *cache.Cache
	validator *config.Validator
}

// NewDatabase reads descriptors from Postgres. Rows are validated with the
// same rules as the configuration file.
func NewDatabase(ctx context.Context, dbURL string, ttl time.Duration, strictAccents bool) (Database, error) {
	poolConfig, err := pgxpool.ParseConfig(dbURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database URL: %w", err)
	}

	poolConfig.MaxConns = 10
	poolConfig.MinConns = 2
	poolConfig.MaxConnLifetime = 30 * time.Minute
	poolConfig.MaxConnIdleTime = 5 * time.Minute
	poolConfig.HealthCheckPeriod = 1 * time.Minute
	poolConfig.ConnConfig.ConnectTimeout = 10 * time.Second

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create database pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &database{
		db:        pool,
		cache:     cache.NewCache(ttl),
		validator: config.NewValidator(strictAccents),
	}, nil
}

func (d *database) Close() {
	d.db.Close()
}

func (d *database) Invalidate() {
	d.cache.Invalidate()
}

func (d *database) GetProfile(ctx context.Context) (models.Profile, error) {
	if p, ok := d.cache.GetProfile(); ok {
		return *p, nil
	}

	var p models.Profile
	err := d.db.QueryRow(ctx, `SELECT title, subtitle, brand_mark FROM profile WHERE id = 1`).
		Scan(&p.Title, &p.Subtitle, &p.BrandMark)
	if err != nil {
		return p, fmt.Errorf("failed to load profile: %w", err)
	}

	d.cache.SetProfile(p)
	return p, nil
}

func (d *database) GetTiles(ctx context.Context) ([]models.Tile, error) {
	if tiles, ok := d.cache.GetTiles(); ok {
		return tiles, nil
	}

	rows, err := d.db.Query(ctx, `SELECT title, description, icon, href, accent, external FROM tiles ORDER BY sort_order, created_at`)
	if err != nil {
		return nil, fmt.Errorf("failed to query tiles: %w", err)
	}
	defer rows.Close()

	tiles := []models.Tile{}
	for rows.Next() {
		var t models.Tile
		var accent string
		if err := rows.Scan(&t.Title, &t.Description, &t.Icon, &t.Href, &accent, &t.External); err != nil {
			return nil, fmt.Errorf("failed to scan tile: %w", err)
		}
		t.Accent = models.Accent(accent)
		tiles = append(tiles, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := d.validator.Tiles(tiles); err != nil {
		return nil, err
	}

	d.cache.SetTiles(tiles)
	return tiles, nil
}

func (d *database) GetHub(ctx context.Context) (models.Hub, error) {
	if h, ok := d.cache.GetHub(); ok {
		return *h, nil
	}

	var h models.Hub
	err := d.db.QueryRow(ctx, `SELECT title, description, icon, href FROM hub WHERE id = 1`).
		Scan(&h.Title, &h.Description, &h.Icon, &h.Href)
	if err != nil {
		return h, fmt.Errorf("failed to load hub: %w", err)
	}

	if err := d.validator.Hub(h); err != nil {
		return h, err
	}

	d.cache.SetHub(h)
	return h, nil
}
