package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.ManifestDir) == "" {
		c.Paths.ManifestDir = defaultManifestDir
	}
	if c.Paths.ManifestDir, err = expandPath(c.Paths.ManifestDir); err != nil {
		return fmt.Errorf("paths.manifest_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.NongDir) == "" {
		c.Paths.NongDir = defaultNongDir
	}
	if c.Paths.NongDir, err = expandPath(c.Paths.NongDir); err != nil {
		return fmt.Errorf("paths.nong_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.LegacyManifest) == "" {
		c.Paths.LegacyManifest = defaultLegacyManifest
	}
	if c.Paths.LegacyManifest, err = expandPath(c.Paths.LegacyManifest); err != nil {
		return fmt.Errorf("paths.legacy_manifest: %w", err)
	}
	if c.Paths.ResourcesDir, err = expandPath(c.Paths.ResourcesDir); err != nil {
		return fmt.Errorf("paths.resources_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
