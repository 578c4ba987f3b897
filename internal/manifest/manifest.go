// Package manifest defines the plugin artifact set consumed by the
// Claude Code host: the marketplace descriptor, the plugin descriptor,
// the hook bindings, and the project settings fragment that enables
// the plugin.
package manifest

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Well-known artifact locations relative to the repository root.
const (
	MarketplaceFile = ".claude-plugin/marketplace.json"
	PluginDir       = "plugins/skill-evaluator"
	PluginFile      = "plugins/skill-evaluator/.claude-plugin/plugin.json"
	HooksFile       = "plugins/skill-evaluator/hooks/hooks.json"
)

// Owner identifies the marketplace or plugin author.
type Owner struct {
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
}

// Metadata carries optional descriptive fields on the marketplace.
type Metadata struct {
	Description string `json:"description,omitempty"`
	Version     string `json:"version,omitempty"`
}

// PluginRef references a plugin within the marketplace descriptor.
type PluginRef struct {
	Name        string `json:"name"`
	Source      string `json:"source"`
	Description string `json:"description,omitempty"`
}

// Marketplace is the root .claude-plugin/marketplace.json descriptor.
type Marketplace struct {
	Name     string      `json:"name"`
	Owner    Owner       `json:"owner"`
	Metadata Metadata    `json:"metadata,omitempty"`
	Plugins  []PluginRef `json:"plugins"`
}

// Plugin is a plugin's .claude-plugin/plugin.json descriptor.
type Plugin struct {
	Name        string `json:"name"`
	Version     string `json:"version"`
	Description string `json:"description,omitempty"`
	Author      Owner  `json:"author,omitempty"`
}

// LoadMarketplace reads and parses a marketplace.json file.
func LoadMarketplace(path string) (*Marketplace, error) {
	var m Marketplace
	if err := loadJSON(path, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

// LoadPlugin reads and parses a plugin.json file.
func LoadPlugin(path string) (*Plugin, error) {
	var p Plugin
	if err := loadJSON(path, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func loadJSON(path string, v any) error {
	// #nosec G304 - path is a repository artifact location
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %q: %w", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to parse %q: %w", path, err)
	}
	return nil
}

// writeJSON writes v as indented JSON, creating parent directories.
func writeJSON(path string, v any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create directory for %q: %w", path, err)
	}

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal %q: %w", path, err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %q: %w", path, err)
	}
	return nil
}
