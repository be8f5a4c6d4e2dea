package config

const (
	defaultManifestDir    = "~/.local/share/jukebox/manifests"
	defaultNongDir        = "~/.local/share/jukebox/nongs"
	defaultLegacyManifest = "~/.local/share/jukebox/nong_data.json"
	defaultLogFormat      = "console"
	defaultLogLevel       = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			ManifestDir:    defaultManifestDir,
			NongDir:        defaultNongDir,
			LegacyManifest: defaultLegacyManifest,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
