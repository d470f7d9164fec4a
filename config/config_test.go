package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milk9111/dayout/discovery"
)

func TestDefaultConfigValid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "hover", cfg.InteractionPolicy().Name())
	assert.Equal(t, discovery.GateGlobal, cfg.Gate())
	assert.Equal(t, 30, cfg.BannerFrames(60))
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name  string
		apply func(*Config)
		err   bool
		check func(*testing.T, Config)
	}{
		{name: "bad policy", apply: func(c *Config) { c.Policy = "tap" }, err: true},
		{name: "bad gate", apply: func(c *Config) { c.GateScope = "world" }, err: true},
		{name: "negative scene", apply: func(c *Config) { c.StartScene = -1 }, err: true},
		{name: "negative delay", apply: func(c *Config) { c.BannerDelay = -time.Second }, err: true},
		{
			name:  "zero values filled",
			apply: func(c *Config) { *c = Config{} },
			check: func(t *testing.T, c Config) {
				assert.Equal(t, 1, c.StartScene)
				assert.Equal(t, 500*time.Millisecond, c.BannerDelay)
				assert.Equal(t, 768, c.MobileBreakpoint)
				assert.Equal(t, "scenes", c.ScenesDir)
			},
		},
		{
			name:  "click scene gating",
			apply: func(c *Config) { c.Policy = "click"; c.GateScope = "scene" },
			check: func(t *testing.T, c Config) {
				assert.Equal(t, "click", c.InteractionPolicy().Name())
				assert.Equal(t, discovery.GateScene, c.Gate())
			},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.apply(&cfg)
			err := cfg.Validate()
			if tc.err {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			if tc.check != nil {
				tc.check(t, cfg)
			}
		})
	}
}
