// Package status supplies the state shown by the status pill. The pill itself
// stays a pure render of whatever a Provider returns.
package status

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/monbon24/launcher/internal/cache"
	"github.com/monbon24/launcher/internal/models"
)

type Provider interface {
	Status(ctx context.Context) models.Status
}

// Static always reports the configured descriptor.
type Static models.Status

func (s Static) Status(context.Context) models.Status {
	return models.Status(s)
}

// Probe reports online when a HEAD request to URL answers with a 2xx or 3xx
// status. The configured text is kept; only the state is probed.
// Concurrent misses share one request, and the request outlives the caller
// that started it so a cancelled page load never caches a false Offline.
type Probe struct {
	url    string
	text   string
	client *http.Client
	cache  *cache.Cache
	group  singleflight.Group
}

func NewProbe(url, text string, timeout, interval time.Duration) *Probe {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &Probe{
		url:  url,
		text: text,
		client: &http.Client{
			Timeout: timeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
		cache: cache.NewCache(interval),
	}
}

func (p *Probe) Status(ctx context.Context) models.Status {
	if s, ok := p.cache.GetStatus(); ok {
		return *s
	}

	detached := context.WithoutCancel(ctx)
	ch := p.group.DoChan("status", func() (any, error) {
		if s, ok := p.cache.GetStatus(); ok {
			return *s, nil
		}
		s := models.Status{State: p.check(detached), Text: p.text}
		p.cache.SetStatus(s)
		return s, nil
	})

	select {
	case res := <-ch:
		return res.Val.(models.Status)
	case <-ctx.Done():
		return models.Status{State: models.StatusOffline, Text: p.text}
	}
}

func (p *Probe) check(ctx context.Context) models.StatusState {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, p.url, nil)
	if err != nil {
		slog.Error("Failed to build status probe request", "error", err)
		return models.StatusOffline
	}

	resp, err := p.client.Do(req)
	if err != nil {
		slog.Warn("Status probe failed", slog.String("url", p.url), "error", err)
		return models.StatusOffline
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 200 && resp.StatusCode < 400 {
		return models.StatusOnline
	}
	slog.Warn("Status probe returned unhealthy status", slog.String("url", p.url), slog.Int("status", resp.StatusCode))
	return models.StatusOffline
}
