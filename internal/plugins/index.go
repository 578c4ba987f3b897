// Package plugins reads the Claude Code installed-plugins manifest and
// discovers the skills shipped by installed plugins.
package plugins

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/klauern/skilleval/internal/logging"
	"github.com/klauern/skilleval/internal/util"
)

// Installation is a single plugin installation entry from
// installed_plugins.json.
type Installation struct {
	Enabled      *bool  `json:"enabled,omitempty"` // nil means enabled
	Scope        string `json:"scope"`
	InstallPath  string `json:"installPath"`
	Version      string `json:"version"`
	InstalledAt  string `json:"installedAt"`
	LastUpdated  string `json:"lastUpdated"`
	GitCommitSha string `json:"gitCommitSha"`
}

// IsEnabled returns whether the installation is enabled. An absent
// enabled field defaults to true.
func (i *Installation) IsEnabled() bool {
	return i.Enabled == nil || *i.Enabled
}

// ManifestFile is the structure of installed_plugins.json.
type ManifestFile struct {
	Version int                       `json:"version"`
	Plugins map[string][]Installation `json:"plugins"`
}

// Entry describes one enabled plugin installation.
type Entry struct {
	// Key is the full key from the manifest, e.g. "skill-evaluator@skilleval".
	Key string
	// Name is the plugin name without marketplace.
	Name string
	// Marketplace is the marketplace portion of the key.
	Marketplace string
	// Version is the installed version.
	Version string
	// InstallPath is the cleaned absolute installation path.
	InstallPath string
	// Scope is the install scope from the manifest.
	Scope string
}

// Index is a read-only view of the enabled plugin installations.
type Index struct {
	entries []*Entry
	byPath  map[string]*Entry
}

// LoadIndex loads the installed plugins manifest from path. An empty
// path uses the default location. A missing or malformed manifest
// yields an empty index rather than an error: the hook must keep
// working on machines with no plugins installed.
func LoadIndex(path string) *Index {
	if path == "" {
		path = util.ClaudeInstalledPluginsPath()
	}

	idx := &Index{byPath: make(map[string]*Entry)}

	// #nosec G304 - path is the configured manifest location
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			logging.Debug("failed to read installed plugins manifest",
				logging.Path(path),
				logging.Err(err),
			)
		}
		return idx
	}

	var manifest ManifestFile
	if err := json.Unmarshal(data, &manifest); err != nil {
		logging.Warn("failed to parse installed plugins manifest",
			logging.Path(path),
			logging.Err(err),
		)
		return idx
	}

	for key, installations := range manifest.Plugins {
		name, marketplace := ParsePluginKey(key)
		for _, inst := range installations {
			if !inst.IsEnabled() {
				logging.Debug("skipping disabled plugin",
					logging.Plugin(key),
					logging.Path(inst.InstallPath),
				)
				continue
			}

			installPath := filepath.Clean(inst.InstallPath)
			if _, seen := idx.byPath[installPath]; seen {
				continue
			}

			entry := &Entry{
				Key:         key,
				Name:        name,
				Marketplace: marketplace,
				Version:     inst.Version,
				InstallPath: installPath,
				Scope:       inst.Scope,
			}
			idx.byPath[installPath] = entry
			idx.entries = append(idx.entries, entry)
		}
	}

	sort.Slice(idx.entries, func(a, b int) bool {
		return idx.entries[a].Key < idx.entries[b].Key
	})

	logging.Debug("loaded plugin index", logging.Count(len(idx.entries)))

	return idx
}

// NewIndex builds an index directly from entries, for tests and for
// callers that already resolved installations.
func NewIndex(entries []*Entry) *Index {
	idx := &Index{byPath: make(map[string]*Entry)}
	for _, e := range entries {
		clean := filepath.Clean(e.InstallPath)
		if _, seen := idx.byPath[clean]; seen {
			continue
		}
		copied := *e
		copied.InstallPath = clean
		idx.byPath[clean] = &copied
		idx.entries = append(idx.entries, &copied)
	}
	sort.Slice(idx.entries, func(a, b int) bool {
		return idx.entries[a].Key < idx.entries[b].Key
	})
	return idx
}

// Entries returns the enabled installations in stable key order.
func (idx *Index) Entries() []*Entry {
	return idx.entries
}

// Len returns the number of enabled installations.
func (idx *Index) Len() int {
	return len(idx.entries)
}

// LookupByPath returns the entry installed at the given path, or nil.
func (idx *Index) LookupByPath(installPath string) *Entry {
	return idx.byPath[filepath.Clean(installPath)]
}

// ParsePluginKey splits a key like "skill-evaluator@skilleval" into
// plugin name and marketplace.
func ParsePluginKey(key string) (name, marketplace string) {
	parts := strings.SplitN(key, "@", 2)
	if len(parts) == 2 {
		return parts[0], parts[1]
	}
	return key, ""
}
