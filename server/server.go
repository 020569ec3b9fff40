package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"runtime"
	"time"

	"github.com/monbon24/launcher/internal/config"
	"github.com/monbon24/launcher/internal/database"
	"github.com/monbon24/launcher/internal/models"
	"github.com/monbon24/launcher/internal/status"
)

type ExecuteTemplateFunc func(wr io.Writer, name string, data any) error

type Server struct {
	version    string
	port       string
	server     *http.Server
	assets     http.FileSystem
	tmplFunc   ExecuteTemplateFunc
	db         database.Database
	status     status.Provider
	meta       models.Meta
	rateLimit  int
	rateWindow time.Duration
}

func NewServer(version string, cfg *config.Config, assets http.FileSystem, tmplFunc ExecuteTemplateFunc, db database.Database, sp status.Provider) *Server {

	s := &Server{
		version:    version,
		port:       cfg.Server.Port,
		assets:     assets,
		tmplFunc:   tmplFunc,
		db:         db,
		status:     sp,
		meta:       cfg.Meta,
		rateLimit:  cfg.Server.RateLimit,
		rateWindow: cfg.Server.RateWindow,
	}

	s.server = &http.Server{
		Addr:              ":" + s.port,
		Handler:           s.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	return s
}

// Start blocks until the server stops. A clean shutdown returns nil.
func (s *Server) Start() error {
	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

func FormatBuildVersion(version string) string {
	return fmt.Sprintf("Go Version: %s\nVersion: %s\nOS/Arch: %s/%s", runtime.Version(), version, runtime.GOOS, runtime.GOARCH)
}
