package main

import (
	"strings"
	"sync"

	"jukebox/internal/config"
	"jukebox/internal/gd"
	"jukebox/internal/logging"
	"jukebox/internal/manager"
)

type commandContext struct {
	configFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

// withManager runs fn against an initialized manager and releases the
// manifest directory lock afterwards.
func (c *commandContext) withManager(fn func(*manager.Manager) error) error {
	cfg, err := c.ensureConfig()
	if err != nil {
		return err
	}

	logger, err := logging.New(logging.Options{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
	})
	if err != nil {
		return err
	}

	mgr := manager.New(cfg, logger, gd.StaticResolver{}, nil)
	if err := mgr.Init(); err != nil {
		return err
	}
	defer mgr.Close()

	return fn(mgr)
}
