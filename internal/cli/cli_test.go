package cli

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/preston-bernstein/money-dungeon-web/internal/config"
	"github.com/preston-bernstein/money-dungeon-web/internal/export"
	"github.com/preston-bernstein/money-dungeon-web/internal/testutil"
)

type serveCall struct {
	called bool
	cfg    config.Config
	logger *slog.Logger
}

func testOptions(cfg config.Config, call *serveCall) Options {
	return Options{
		Version:    "test",
		LoadConfig: func() (config.Config, error) { return cfg, nil },
		Serve: func(ctx context.Context, c config.Config, logger *slog.Logger) error {
			call.called = true
			call.cfg = c
			call.logger = logger
			return nil
		},
		Now:       testutil.FixedNow(),
		LogOutput: &bytes.Buffer{},
	}
}

func TestRootDefaultsToServe(t *testing.T) {
	var call serveCall
	cmd := NewRootCommand(testOptions(config.Config{Port: "4000"}, &call))
	cmd.SetArgs([]string{})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !call.called || call.cfg.Port != "4000" || call.logger == nil {
		t.Fatalf("expected serve with loaded config, got %+v", call)
	}
}

func TestServePortFlagOverridesConfig(t *testing.T) {
	var call serveCall
	cmd := NewRootCommand(testOptions(config.Config{Port: "4000"}, &call))
	cmd.SetArgs([]string{"serve", "--port", "8081"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if call.cfg.Port != "8081" {
		t.Fatalf("expected port override, got %s", call.cfg.Port)
	}
}

func TestConfigErrorStopsCommand(t *testing.T) {
	var call serveCall
	opts := testOptions(config.Config{}, &call)
	opts.LoadConfig = func() (config.Config, error) {
		return config.Config{}, errors.New("parse env: bad value")
	}
	cmd := NewRootCommand(opts)
	cmd.SetArgs([]string{"serve"})

	if err := cmd.Execute(); err == nil || !strings.Contains(err.Error(), "parse env") {
		t.Fatalf("expected config error, got %v", err)
	}
	if call.called {
		t.Fatalf("serve should not run after config error")
	}
}

func TestExportWritesToOutFlag(t *testing.T) {
	var call serveCall
	dir := filepath.Join(t.TempDir(), "site")
	cmd := NewRootCommand(testOptions(config.Config{FooterMessage: "Hello", ExportDir: "unused"}, &call))
	var stdout bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetArgs([]string{"export", "--out", dir, "--lang", "fr-FR"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if call.called {
		t.Fatalf("export should not start the server")
	}
	page, err := os.ReadFile(filepath.Join(dir, export.PageFile))
	if err != nil {
		t.Fatalf("expected exported page: %v", err)
	}
	if !strings.Contains(string(page), "Hello") || !strings.Contains(string(page), "Last updated 16/10/2026.") {
		t.Fatalf("expected message and french date in exported page")
	}
	if !strings.Contains(stdout.String(), "exported 2 files to "+dir) {
		t.Fatalf("unexpected output %q", stdout.String())
	}
}

func TestExportDefaultsToConfiguredDir(t *testing.T) {
	var call serveCall
	dir := t.TempDir()
	cmd := NewRootCommand(testOptions(config.Config{ExportDir: dir}, &call))
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"export"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}
	m, err := export.ReadManifest(dir)
	if err != nil {
		t.Fatalf("read manifest: %v", err)
	}
	if m.NowISO != testutil.FixedISO || !m.Fallback {
		t.Fatalf("unexpected manifest %+v", m)
	}
}

func TestExportRejectsArgs(t *testing.T) {
	var call serveCall
	cmd := NewRootCommand(testOptions(config.Config{ExportDir: t.TempDir()}, &call))
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"export", "extra"})

	if err := cmd.Execute(); err == nil {
		t.Fatalf("expected error for positional args")
	}
}
