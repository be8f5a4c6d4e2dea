// Package config loads, normalizes, and validates jukebox configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), and reads TOML files. The Config type centralizes every knob the
// CLI and the manifest manager need: the per-track manifest directory, the
// nong audio directory, the legacy manifest location, and the game resources
// directory used to resolve official track audio.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths and clear validation errors.
package config
