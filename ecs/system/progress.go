package system

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/milk9111/dayout/discovery"
	"github.com/milk9111/dayout/ecs"
	"github.com/milk9111/dayout/ecs/component"
)

// ProgressSystem refreshes progress counters from the discovery store and
// schedules the completion banner the first time the global counter fills.
type ProgressSystem struct {
	store        *discovery.Store
	bannerFrames int
	schedule     func(w *ecs.World, kind ecs.EventKind, frames int) (ecs.Entity, error)
	logger       *log.Logger
}

func NewProgressSystem(store *discovery.Store, bannerFrames int, logger *log.Logger) *ProgressSystem {
	if logger == nil {
		logger = log.Default()
	}
	return &ProgressSystem{store: store, bannerFrames: bannerFrames, schedule: Schedule, logger: logger}
}

func (s *ProgressSystem) Update(w *ecs.World) {
	if w == nil || s.store == nil {
		return
	}

	ecs.ForEach(w, component.ProgressCounterComponent.Kind(), func(e ecs.Entity, c *component.ProgressCounter) {
		switch c.Scope {
		case component.ProgressSpecies:
			c.Found = s.store.SubDiscoveredCount(c.Parent)
		default:
			c.Found = s.store.DiscoveredCount(c.IDs)
			c.Total = len(c.IDs)
		}
		if c.Found > c.Total {
			c.Found = c.Total
		}
		c.Complete = c.Total > 0 && c.Found == c.Total
		c.Text = progressText(c)

		if c.Scope == component.ProgressGlobal && c.Complete && !c.Celebrated {
			if _, err := s.schedule(w, EventBanner, s.bannerFrames); err != nil {
				s.logger.Error("schedule banner", "err", err)
				return
			}
			c.Celebrated = true
		}
	})
}

func progressText(c *component.ProgressCounter) string {
	switch c.Scope {
	case component.ProgressGlobal:
		return fmt.Sprintf("Discovered: %d/%d", c.Found, c.Total)
	case component.ProgressScene:
		return fmt.Sprintf("Scene Progress: %d/%d", c.Found, c.Total)
	default:
		return fmt.Sprintf("Species Found: %d/%d", c.Found, c.Total)
	}
}

// Counter returns the first counter with the given scope.
func Counter(w *ecs.World, scope component.ProgressScope) (component.ProgressCounter, bool) {
	var (
		out   component.ProgressCounter
		found bool
	)
	ecs.ForEach(w, component.ProgressCounterComponent.Kind(), func(_ ecs.Entity, c *component.ProgressCounter) {
		if !found && c.Scope == scope {
			out, found = *c, true
		}
	})
	return out, found
}
