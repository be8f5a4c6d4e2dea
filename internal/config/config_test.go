package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"jukebox/internal/config"
)

func TestLoadDefaultConfigExpandsPaths(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if resolved == "" {
		t.Fatal("expected resolved path")
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}

	wantManifests := filepath.Join(tempHome, ".local", "share", "jukebox", "manifests")
	if cfg.Paths.ManifestDir != wantManifests {
		t.Fatalf("unexpected manifest dir: got %q want %q", cfg.Paths.ManifestDir, wantManifests)
	}
	wantNongs := filepath.Join(tempHome, ".local", "share", "jukebox", "nongs")
	if cfg.Paths.NongDir != wantNongs {
		t.Fatalf("unexpected nong dir: %q", cfg.Paths.NongDir)
	}
	if cfg.Logging.Format != "console" || cfg.Logging.Level != "info" {
		t.Fatalf("unexpected logging defaults: %+v", cfg.Logging)
	}
}

func TestLoadReadsFileAndNormalizes(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	path := filepath.Join(tempHome, "jukebox.toml")
	content := `
[paths]
manifest_dir = "~/manifests"
nong_dir = "~/nongs"

[logging]
format = "JSON"
level = "Debug"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists {
		t.Fatal("expected config file to exist")
	}
	if resolved != path {
		t.Fatalf("unexpected resolved path: %q", resolved)
	}
	if cfg.Paths.ManifestDir != filepath.Join(tempHome, "manifests") {
		t.Fatalf("tilde not expanded: %q", cfg.Paths.ManifestDir)
	}
	if cfg.Logging.Format != "json" || cfg.Logging.Level != "debug" {
		t.Fatalf("logging values not normalized: %+v", cfg.Logging)
	}
}

func TestLoadRejectsInvalidLogFormat(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	path := filepath.Join(tempHome, "jukebox.toml")
	if err := os.WriteFile(path, []byte("[logging]\nformat = \"xml\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if _, _, _, err := config.Load(path); err == nil {
		t.Fatal("expected validation error for bad log format")
	} else if !strings.Contains(err.Error(), "logging.format") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestLoadRejectsSharedManifestAndNongDir(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	path := filepath.Join(tempHome, "jukebox.toml")
	content := "[paths]\nmanifest_dir = \"~/data\"\nnong_dir = \"~/data\"\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if _, _, _, err := config.Load(path); err == nil {
		t.Fatal("expected validation error for shared directories")
	}
}

func TestEnsureDirectoriesCreatesWritableDirs(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	cfg, _, _, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories returned error: %v", err)
	}
	for _, dir := range []string{cfg.Paths.ManifestDir, cfg.Paths.NongDir} {
		info, err := os.Stat(dir)
		if err != nil || !info.IsDir() {
			t.Fatalf("expected directory at %q: %v", dir, err)
		}
	}
}

func TestCreateSampleWritesParseableTOML(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	path := filepath.Join(tempHome, "nested", "config.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample returned error: %v", err)
	}

	if _, _, exists, err := config.Load(path); err != nil {
		t.Fatalf("sample config does not load: %v", err)
	} else if !exists {
		t.Fatal("expected sample config to exist")
	}
}
