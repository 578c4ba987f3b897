package manifest

import (
	"encoding/json"
	"fmt"
	"os"
)

// MarketplaceSource locates a marketplace, e.g.
// {"source": "github", "repo": "klauern/skilleval"}.
type MarketplaceSource struct {
	Source string `json:"source"`
	Repo   string `json:"repo"`
}

// KnownMarketplace is one entry under extraKnownMarketplaces.
type KnownMarketplace struct {
	Source MarketplaceSource `json:"source"`
}

// Settings is the subset of .claude/settings.json this tool manages.
type Settings struct {
	ExtraKnownMarketplaces map[string]KnownMarketplace `json:"extraKnownMarketplaces,omitempty"`
	EnabledPlugins         map[string]bool             `json:"enabledPlugins,omitempty"`
}

// MergeSettings merges the marketplace registration and plugin
// enablement into the settings file at path, preserving every
// unrelated key. The file is created if missing. Idempotent.
func MergeSettings(path string, marketplaceName string, source MarketplaceSource, pluginKey string) error {
	raw := map[string]json.RawMessage{}

	// #nosec G304 - path is the caller's project settings file
	if data, err := os.ReadFile(path); err == nil {
		if err := json.Unmarshal(data, &raw); err != nil {
			return fmt.Errorf("failed to parse %q: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("failed to read %q: %w", path, err)
	}

	marketplaces := map[string]KnownMarketplace{}
	if existing, ok := raw["extraKnownMarketplaces"]; ok {
		if err := json.Unmarshal(existing, &marketplaces); err != nil {
			return fmt.Errorf("malformed extraKnownMarketplaces in %q: %w", path, err)
		}
	}
	marketplaces[marketplaceName] = KnownMarketplace{Source: source}

	enabled := map[string]bool{}
	if existing, ok := raw["enabledPlugins"]; ok {
		if err := json.Unmarshal(existing, &enabled); err != nil {
			return fmt.Errorf("malformed enabledPlugins in %q: %w", path, err)
		}
	}
	enabled[pluginKey] = true

	var err error
	if raw["extraKnownMarketplaces"], err = json.Marshal(marketplaces); err != nil {
		return fmt.Errorf("failed to marshal marketplaces: %w", err)
	}
	if raw["enabledPlugins"], err = json.Marshal(enabled); err != nil {
		return fmt.Errorf("failed to marshal enabled plugins: %w", err)
	}

	return writeJSON(path, raw)
}

// LoadSettings reads the managed subset of a settings file.
func LoadSettings(path string) (*Settings, error) {
	var s Settings
	if err := loadJSON(path, &s); err != nil {
		return nil, err
	}
	return &s, nil
}
