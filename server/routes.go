package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"
)

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(middleware.Compress(5))
	r.Use(httprate.Limit(s.rateLimit, s.rateWindow))
	r.Use(middleware.Heartbeat("/health"))
	r.Use(securityHeaders)
	r.Use(s.cacheControl)

	r.Mount("/static", http.FileServer(s.assets))

	r.Handle("/robots.txt", s.serveFile("static/robots.txt", "text/plain; charset=utf-8"))
	r.Handle("/favicon.ico", s.serveFile("static/icon.svg", "image/svg+xml"))

	r.Get("/", s.HandleIndex)
	r.Get("/manifest.webmanifest", s.HandleManifest)
	r.Get("/version", s.HandleVersion)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/", http.StatusMovedPermanently)
	})

	return r
}
