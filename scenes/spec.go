package scenes

import (
	"encoding/hex"
	"errors"
	"fmt"
	"image/color"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/milk9111/dayout/discovery"
	"github.com/milk9111/dayout/region"
)

var ErrUnknownScene = errors.New("scenes: unknown scene")

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("scenes: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("scenes: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// ImagePair is an image reference with an optional small-screen variant.
type ImagePair struct {
	Desktop string `yaml:"desktop"`
	Mobile  string `yaml:"mobile"`
}

func (p ImagePair) Pick(isMobile bool) string {
	if isMobile && p.Mobile != "" {
		return p.Mobile
	}
	return p.Desktop
}

func (p ImagePair) Empty() bool {
	return p.Desktop == "" && p.Mobile == ""
}

type SizeSpec struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

func (s SizeSpec) Size() region.Size {
	return region.Size{W: s.Width, H: s.Height}
}

type CaptionSpec struct {
	Left  string `yaml:"left"`
	Right string `yaml:"right"`
}

type SceneSpec struct {
	ID          int           `yaml:"id"`
	Title       string        `yaml:"title"`
	NavLabel    string        `yaml:"nav_label"`
	Description string        `yaml:"description"`
	Background  string        `yaml:"background"`
	Size        SizeSpec      `yaml:"size"`
	Captions    CaptionSpec   `yaml:"captions"`
	Elements    []ElementSpec `yaml:"elements"`
}

type ElementSpec struct {
	ID            discovery.ID     `yaml:"id"`
	Name          string           `yaml:"name"`
	Truck         bool             `yaml:"truck"`
	Region        region.Region    `yaml:"region"`
	MobileRegion  *region.Region   `yaml:"mobile_region"`
	OverlayRegion *region.Region   `yaml:"overlay_region"`
	Overlay       string           `yaml:"overlay"`
	Color         *YAMLColor       `yaml:"color"`
	Info          string           `yaml:"info"`
	Popup         ImagePair        `yaml:"popup"`
	MiniGame      *MiniGameSpec    `yaml:"minigame"`
	SubElements   []SubElementSpec `yaml:"sub_elements"`
}

// Composite reports whether discovery goes through the mini-game.
func (e ElementSpec) Composite() bool {
	return len(e.SubElements) > 0
}

// Placement is the overlay region, falling back to the interaction region.
func (e ElementSpec) Placement() region.Region {
	if e.OverlayRegion != nil {
		return *e.OverlayRegion
	}
	return e.Region
}

type MiniGameSpec struct {
	Title      string   `yaml:"title"`
	Background string   `yaml:"background"`
	Size       SizeSpec `yaml:"size"`
}

type SubElementSpec struct {
	ID            int            `yaml:"id"`
	Name          string         `yaml:"name"`
	Region        region.Region  `yaml:"region"`
	MobileRegion  *region.Region `yaml:"mobile_region"`
	OverlayRegion *region.Region `yaml:"overlay_region"`
	Overlay       string         `yaml:"overlay"`
	Color         *YAMLColor     `yaml:"color"`
	Popup         ImagePair      `yaml:"popup"`
}

func (s SubElementSpec) Placement() region.Region {
	if s.OverlayRegion != nil {
		return *s.OverlayRegion
	}
	return s.Region
}

// Table is the read-only scene configuration, ordered by scene id.
type Table struct {
	Scenes []SceneSpec

	byScene   map[int]int
	byElement map[discovery.ID]elementRef
}

type elementRef struct {
	scene int
	index int
}

// NewTable indexes and validates scenes.
func NewTable(specs []SceneSpec) (*Table, error) {
	sorted := append([]SceneSpec(nil), specs...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })

	t := &Table{
		Scenes:    sorted,
		byScene:   make(map[int]int, len(sorted)),
		byElement: make(map[discovery.ID]elementRef),
	}
	if err := t.index(); err != nil {
		return nil, err
	}
	return t, nil
}

// LoadTable reads every scene file and builds the table.
func LoadTable() (*Table, error) {
	names, err := Names()
	if err != nil {
		return nil, fmt.Errorf("scenes: list: %w", err)
	}
	specs := make([]SceneSpec, 0, len(names))
	for _, name := range names {
		spec, err := LoadSpec[SceneSpec](name)
		if err != nil {
			return nil, err
		}
		specs = append(specs, spec)
	}
	return NewTable(specs)
}

func (t *Table) index() error {
	if len(t.Scenes) == 0 {
		return errors.New("scenes: no scenes")
	}
	for si, s := range t.Scenes {
		if _, dup := t.byScene[s.ID]; dup {
			return fmt.Errorf("scenes: duplicate scene id %d", s.ID)
		}
		t.byScene[s.ID] = si
		if s.Size.Width <= 0 || s.Size.Height <= 0 {
			return fmt.Errorf("scenes: scene %d: size must be positive", s.ID)
		}

		for ei, e := range s.Elements {
			if prev, dup := t.byElement[e.ID]; dup {
				return fmt.Errorf("scenes: element id %d in scene %d already used in scene %d", e.ID, s.ID, t.Scenes[prev.scene].ID)
			}
			t.byElement[e.ID] = elementRef{scene: si, index: ei}

			if err := validateRegions(e.Region, e.MobileRegion, e.OverlayRegion); err != nil {
				return fmt.Errorf("scenes: element %d (%s): %w", e.ID, e.Name, err)
			}
			if e.Truck && e.Composite() {
				return fmt.Errorf("scenes: element %d: truck cannot have sub elements", e.ID)
			}
			if e.Composite() && e.MiniGame == nil {
				return fmt.Errorf("scenes: element %d: sub elements need a minigame", e.ID)
			}
			if e.MiniGame != nil && (e.MiniGame.Size.Width <= 0 || e.MiniGame.Size.Height <= 0) {
				return fmt.Errorf("scenes: element %d: minigame size must be positive", e.ID)
			}

			subIDs := make(map[int]struct{}, len(e.SubElements))
			for _, sub := range e.SubElements {
				if _, dup := subIDs[sub.ID]; dup {
					return fmt.Errorf("scenes: element %d: duplicate sub element id %d", e.ID, sub.ID)
				}
				subIDs[sub.ID] = struct{}{}
				if err := validateRegions(sub.Region, sub.MobileRegion, sub.OverlayRegion); err != nil {
					return fmt.Errorf("scenes: element %d sub %d (%s): %w", e.ID, sub.ID, sub.Name, err)
				}
			}
		}
	}
	return nil
}

func validateRegions(def region.Region, optional ...*region.Region) error {
	if err := def.Validate(); err != nil {
		return err
	}
	for _, r := range optional {
		if r == nil {
			continue
		}
		if err := r.Validate(); err != nil {
			return err
		}
	}
	return nil
}

func (t *Table) Scene(id int) (*SceneSpec, error) {
	i, ok := t.byScene[id]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownScene, id)
	}
	return &t.Scenes[i], nil
}

func (t *Table) Element(id discovery.ID) (*ElementSpec, bool) {
	ref, ok := t.byElement[id]
	if !ok {
		return nil, false
	}
	return &t.Scenes[ref.scene].Elements[ref.index], true
}

// SceneOf returns the scene id owning an element.
func (t *Table) SceneOf(elementID discovery.ID) (int, bool) {
	ref, ok := t.byElement[elementID]
	if !ok {
		return 0, false
	}
	return t.Scenes[ref.scene].ID, true
}

func (t *Table) IDs() []int {
	ids := make([]int, len(t.Scenes))
	for i, s := range t.Scenes {
		ids[i] = s.ID
	}
	return ids
}

// NonTruckIDs lists the discoverable element ids of one scene.
func (t *Table) NonTruckIDs(sceneID int) []discovery.ID {
	i, ok := t.byScene[sceneID]
	if !ok {
		return nil
	}
	return nonTruck(t.Scenes[i].Elements, nil)
}

func (t *Table) AllNonTruckIDs() []discovery.ID {
	var ids []discovery.ID
	for _, s := range t.Scenes {
		ids = nonTruck(s.Elements, ids)
	}
	return ids
}

func nonTruck(elements []ElementSpec, dst []discovery.ID) []discovery.ID {
	for _, e := range elements {
		if !e.Truck {
			dst = append(dst, e.ID)
		}
	}
	return dst
}

// YAMLColor is a "#rrggbb" or "#rrggbbaa" overlay colour.
type YAMLColor color.NRGBA

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return fmt.Errorf("color: %w", err)
	}
	b, err := hex.DecodeString(strings.TrimPrefix(raw, "#"))
	if err != nil || (len(b) != 3 && len(b) != 4) {
		return fmt.Errorf("color %q: want #rrggbb or #rrggbbaa", raw)
	}
	*c = YAMLColor{R: b[0], G: b[1], B: b[2], A: 0xff}
	if len(b) == 4 {
		c.A = b[3]
	}
	return nil
}

// RGBA8 returns the colour or a fallback when unset.
func (c *YAMLColor) RGBA8(fallback color.NRGBA) color.NRGBA {
	if c == nil {
		return fallback
	}
	return color.NRGBA(*c)
}
