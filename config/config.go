package config

import (
	"fmt"
	"time"

	"github.com/milk9111/dayout/discovery"
	"github.com/milk9111/dayout/hotspot"
	"github.com/milk9111/dayout/region"
)

// Config controls runtime behavior for the game.
type Config struct {
	Policy           string
	GateScope        string
	StartScene       int
	Dev              bool
	Watch            bool
	Debug            bool
	BaseMonitor      bool
	ScenesDir        string
	BannerDelay      time.Duration
	MobileBreakpoint int
}

func DefaultConfig() Config {
	return Config{
		Policy:           "hover",
		GateScope:        string(discovery.GateGlobal),
		StartScene:       1,
		ScenesDir:        "scenes",
		BannerDelay:      500 * time.Millisecond,
		MobileBreakpoint: region.MobileBreakpoint,
	}
}

// Validate checks enumerations and fills zero values with defaults.
func (c *Config) Validate() error {
	if _, err := hotspot.ParsePolicy(c.Policy); err != nil {
		return err
	}
	if _, err := discovery.ParseGateScope(c.GateScope); err != nil {
		return err
	}
	if c.StartScene < 0 {
		return fmt.Errorf("invalid start scene %d", c.StartScene)
	}
	if c.StartScene == 0 {
		c.StartScene = 1
	}
	if c.BannerDelay < 0 {
		return fmt.Errorf("invalid banner delay %s", c.BannerDelay)
	}
	if c.BannerDelay == 0 {
		c.BannerDelay = 500 * time.Millisecond
	}
	if c.MobileBreakpoint <= 0 {
		c.MobileBreakpoint = region.MobileBreakpoint
	}
	if c.ScenesDir == "" {
		c.ScenesDir = "scenes"
	}
	return nil
}

func (c Config) InteractionPolicy() hotspot.Policy {
	p, err := hotspot.ParsePolicy(c.Policy)
	if err != nil {
		return hotspot.HoverReveal{}
	}
	return p
}

func (c Config) Gate() discovery.GateScope {
	s, err := discovery.ParseGateScope(c.GateScope)
	if err != nil {
		return discovery.GateGlobal
	}
	return s
}

// BannerFrames converts the banner delay to update ticks.
func (c Config) BannerFrames(tps int) int {
	if tps <= 0 {
		tps = 60
	}
	frames := int(c.BannerDelay.Seconds()*float64(tps) + 0.5)
	if frames < 1 {
		frames = 1
	}
	return frames
}
