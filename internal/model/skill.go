// Package model defines the core types shared across skilleval.
package model

import "time"

// Skill represents a discovered skill description.
type Skill struct {
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Source      Source            `json:"source"`
	Path        string            `json:"path"`
	Metadata    map[string]string `json:"metadata,omitempty"`
	ModifiedAt  time.Time         `json:"modified_at"`

	// Plugin is set for plugin-sourced skills and identifies the
	// owning plugin installation.
	Plugin *PluginInfo `json:"plugin,omitempty"`
}

// SourceLabel returns the grouping label used when rendering skill
// sections: the plugin name for plugin-sourced skills, otherwise the
// source itself.
func (s Skill) SourceLabel() string {
	if s.Source == SourcePlugin && s.Plugin != nil {
		return s.Plugin.Name
	}
	return s.Source.String()
}

// PluginInfo describes the installed plugin a skill came from.
type PluginInfo struct {
	// Key is the full plugin key, e.g. "skill-evaluator@skilleval".
	Key string `json:"key"`
	// Name is the plugin name without marketplace.
	Name string `json:"name"`
	// Marketplace is the marketplace the plugin was installed from.
	Marketplace string `json:"marketplace"`
	// Version is the installed plugin version.
	Version string `json:"version"`
	// InstallPath is the absolute installation path.
	InstallPath string `json:"install_path"`
	// Scope is the install scope, e.g. "user" or "project".
	Scope string `json:"scope,omitempty"`
}
