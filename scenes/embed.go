package scenes

import (
	"embed"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

//go:embed *.yaml
var ScenesFS embed.FS

// Dir is the on-disk directory checked before the embedded copies, so authors
// can edit scenes without rebuilding.
var Dir = "scenes"

func Load(name string) ([]byte, error) {
	clean := cleanScenePath(name)
	if data, err := os.ReadFile(diskScenePath(clean)); err == nil {
		return data, nil
	}
	return ScenesFS.ReadFile(clean)
}

func ModTime(name string) (time.Time, bool) {
	clean := cleanScenePath(name)
	info, err := os.Stat(diskScenePath(clean))
	if err != nil {
		return time.Time{}, false
	}
	return info.ModTime(), true
}

// Names lists the scene files, embedded and on disk, in lexical order.
func Names() ([]string, error) {
	seen := make(map[string]struct{})
	embedded, err := fs.Glob(ScenesFS, "*.yaml")
	if err != nil {
		return nil, err
	}
	for _, n := range embedded {
		seen[n] = struct{}{}
	}
	if onDisk, err := filepath.Glob(filepath.Join(Dir, "*.yaml")); err == nil {
		for _, p := range onDisk {
			seen[filepath.Base(p)] = struct{}{}
		}
	}

	names := make([]string, 0, len(seen))
	for n := range seen {
		names = append(names, n)
	}
	sort.Strings(names)
	return names, nil
}

func cleanScenePath(path string) string {
	if path == "" {
		return ""
	}
	s := filepath.ToSlash(path)
	if after, ok := strings.CutPrefix(s, "scenes/"); ok {
		return after
	}
	return s
}

func diskScenePath(clean string) string {
	return filepath.Join(Dir, filepath.FromSlash(clean))
}
