package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"syscall"
	"testing"

	"github.com/monbon24/launcher/internal/config"
	"github.com/monbon24/launcher/internal/database"
)

func writeConfig(t *testing.T, body string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "launcher.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	t.Setenv("LAUNCHER_CONFIG", path)
	t.Setenv("DATABASE_URL", "")
	t.Setenv("LAUNCHER_STRICT_ACCENTS", "")
	t.Setenv("LAUNCHER_LOG_LEVEL", "")
	t.Setenv("PORT", "")
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestVersionCommand(t *testing.T) {
	out, err := run(t, "version")
	if err != nil {
		t.Fatalf("version failed: %v", err)
	}
	if !strings.Contains(out, "Version: dev") {
		t.Errorf("expected build version, got %q", out)
	}
}

func TestCheckCommand(t *testing.T) {
	writeConfig(t, `
tiles:
  - title: Homeschool Planner
    href: https://a.test
    accent: pink
    external: true
  - title: Command Center
    href: https://b.test
    accent: neon
hub:
  title: OneNote Hub
  href: https://c.test
`)

	out, err := run(t, "check")
	if err != nil {
		t.Fatalf("check failed: %v", err)
	}
	if !strings.Contains(out, "2 tiles") {
		t.Errorf("expected tile count, got %q", out)
	}
	if !strings.Contains(out, `unknown accent "neon"`) {
		t.Errorf("expected unknown accent note, got %q", out)
	}
}

func TestCheckCommandRejectsDuplicates(t *testing.T) {
	writeConfig(t, `
tiles:
  - title: Same
    href: https://a.test
  - title: Same
    href: https://b.test
`)

	if _, err := run(t, "check"); err == nil {
		t.Fatal("expected duplicate titles to fail the check")
	}
}

func TestTilesCommand(t *testing.T) {
	writeConfig(t, `
tiles:
  - title: Homeschool Planner
    href: https://a.test
hub:
  title: OneNote Hub
  href: https://c.test
status:
  state: offline
`)

	out, err := run(t, "tiles")
	if err != nil {
		t.Fatalf("tiles failed: %v", err)
	}
	for _, want := range []string{"Homeschool Planner", "OneNote Hub", "Offline"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in preview, got %q", want, out)
		}
	}
}

type countingDatabase struct {
	database.Database
	invalidations int
}

func (c *countingDatabase) Invalidate() {
	c.invalidations++
}

func TestAwaitShutdownReloadsOnHangup(t *testing.T) {
	db := &countingDatabase{Database: database.NewStatic(config.DefaultConfig())}
	si := make(chan os.Signal, 3)
	errCh := make(chan error)

	si <- syscall.SIGHUP
	si <- syscall.SIGHUP
	si <- syscall.SIGTERM

	if err := awaitShutdown(si, errCh, db); err != nil {
		t.Fatalf("expected clean shutdown, got %v", err)
	}
	if db.invalidations != 2 {
		t.Errorf("expected 2 reloads, got %d", db.invalidations)
	}
}

func TestAwaitShutdownServerError(t *testing.T) {
	db := &countingDatabase{Database: database.NewStatic(config.DefaultConfig())}
	errCh := make(chan error, 1)
	errCh <- errors.New("address in use")

	err := awaitShutdown(make(chan os.Signal), errCh, db)
	if err == nil || !strings.Contains(err.Error(), "address in use") {
		t.Fatalf("expected server error, got %v", err)
	}
}

func TestSourceName(t *testing.T) {
	cfg := config.DefaultConfig()
	if got := sourceName(cfg); got != "config" {
		t.Errorf("expected config source, got %q", got)
	}
	cfg.Database.URL = "postgres://localhost/launcher"
	if got := sourceName(cfg); got != "postgres" {
		t.Errorf("expected postgres source, got %q", got)
	}
}
