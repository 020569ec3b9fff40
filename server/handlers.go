package server

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/monbon24/launcher/internal/models"
)

type manifest struct {
	Name            string        `json:"name"`
	ShortName       string        `json:"short_name,omitempty"`
	Description     string        `json:"description,omitempty"`
	StartURL        string        `json:"start_url"`
	Scope           string        `json:"scope"`
	Display         string        `json:"display"`
	ThemeColor      string        `json:"theme_color,omitempty"`
	BackgroundColor string        `json:"background_color,omitempty"`
	Icons           []models.Icon `json:"icons"`
}

func (s *Server) renderError(w http.ResponseWriter, status int) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := s.tmplFunc(w, "error.html", models.ErrorPageData{Meta: s.meta, Status: status}); err != nil {
		slog.Error("Failed to render error template", "error", err)
	}
}

func (s *Server) HandleIndex(w http.ResponseWriter, r *http.Request) {

	profile, err := s.db.GetProfile(r.Context())
	if err != nil {
		slog.Error("Failed to load profile", "error", err)
		s.renderError(w, http.StatusInternalServerError)
		return
	}

	tiles, err := s.db.GetTiles(r.Context())
	if err != nil {
		slog.Error("Failed to load tiles", "error", err)
		s.renderError(w, http.StatusInternalServerError)
		return
	}

	hub, err := s.db.GetHub(r.Context())
	if err != nil {
		slog.Error("Failed to load hub", "error", err)
		s.renderError(w, http.StatusInternalServerError)
		return
	}

	data := models.IndexPageData{
		Meta:    s.meta,
		Profile: profile,
		Tiles:   tiles,
		Hub:     hub,
		Status:  s.status.Status(r.Context()),
		Shapes:  models.DefaultShapes,
		Version: s.version,
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.tmplFunc(w, "index.html", data); err != nil {
		slog.Error("Failed to render index template", "error", err)
	}
}

func (s *Server) HandleManifest(w http.ResponseWriter, r *http.Request) {
	icons := s.meta.Icons
	if icons == nil {
		icons = []models.Icon{}
	}

	m := manifest{
		Name:            s.meta.Title,
		ShortName:       s.meta.ShortName,
		Description:     s.meta.Description,
		StartURL:        "/",
		Scope:           "/",
		Display:         "standalone",
		ThemeColor:      s.meta.ThemeColor,
		BackgroundColor: s.meta.BackgroundColor,
		Icons:           icons,
	}

	w.Header().Set("Content-Type", "application/manifest+json")
	if err := json.NewEncoder(w).Encode(m); err != nil {
		slog.Error("Failed to encode manifest", "error", err)
	}
}

func (s *Server) HandleVersion(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = io.WriteString(w, FormatBuildVersion(s.version)+"\n")
}

func (s *Server) serveFile(path, contentType string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		file, err := s.assets.Open(path)
		if err != nil {
			http.Error(w, "File not found", http.StatusNotFound)
			return
		}
		defer func() { _ = file.Close() }()
		w.Header().Set("Content-Type", contentType)
		_, _ = io.Copy(w, file)
	}
}

func (s *Server) cacheControl(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/static/") {
			w.Header().Set("Cache-Control", "public, max-age=86400")
			next.ServeHTTP(w, r)
			return
		}
		w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
		next.ServeHTTP(w, r)
	})
}

// securityHeaders keeps the launcher from leaking referrers to the pages it
// opens and from being framed.
func securityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("Referrer-Policy", "no-referrer")
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "DENY")
		h.Set("Cross-Origin-Opener-Policy", "same-origin")
		next.ServeHTTP(w, r)
	})
}
