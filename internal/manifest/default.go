package manifest

import "path/filepath"

// Defaults for the skilleval artifact set.
const (
	DefaultMarketplaceName = "skilleval"
	DefaultPluginName      = "skill-evaluator"
	DefaultPluginVersion   = "0.1.0"
	DefaultRepo            = "klauern/skilleval"

	// DefaultHookCommand is resolved by the host relative to the plugin
	// installation; the script execs the skilleval binary.
	DefaultHookCommand = "${CLAUDE_PLUGIN_ROOT}/scripts/skill-evaluator"
)

// DefaultPluginKey returns "skill-evaluator@skilleval".
func DefaultPluginKey() string {
	return DefaultPluginName + "@" + DefaultMarketplaceName
}

// DefaultMarketplace returns the marketplace descriptor this
// repository publishes.
func DefaultMarketplace() *Marketplace {
	return &Marketplace{
		Name:  DefaultMarketplaceName,
		Owner: Owner{Name: "klauern"},
		Metadata: Metadata{
			Description: "Forced skill evaluation for Claude Code",
			Version:     DefaultPluginVersion,
		},
		Plugins: []PluginRef{
			{
				Name:        DefaultPluginName,
				Source:      "./" + filepath.ToSlash(PluginDir),
				Description: "Forces explicit skill evaluation before implementation on every prompt",
			},
		},
	}
}

// DefaultPlugin returns the skill-evaluator plugin descriptor.
func DefaultPlugin() *Plugin {
	return &Plugin{
		Name:        DefaultPluginName,
		Version:     DefaultPluginVersion,
		Description: "Lists installed skills and injects a mandatory 3-step evaluation protocol on every user prompt",
		Author:      Owner{Name: "klauern"},
	}
}

// DefaultHooks returns the UserPromptSubmit hook binding.
func DefaultHooks() *Hooks {
	return &Hooks{
		Hooks: map[string][]HookMatcher{
			"UserPromptSubmit": {
				{
					Hooks: []HookCommand{
						{Type: "command", Command: DefaultHookCommand},
					},
				},
			},
		},
	}
}

// DefaultSource returns the marketplace source reference used in
// extraKnownMarketplaces.
func DefaultSource() MarketplaceSource {
	return MarketplaceSource{Source: "github", Repo: DefaultRepo}
}

// WriteArtifacts writes the full default artifact set under root.
// Existing files are overwritten.
func WriteArtifacts(root string) error {
	if err := writeJSON(filepath.Join(root, MarketplaceFile), DefaultMarketplace()); err != nil {
		return err
	}
	if err := writeJSON(filepath.Join(root, PluginFile), DefaultPlugin()); err != nil {
		return err
	}
	return writeJSON(filepath.Join(root, HooksFile), DefaultHooks())
}
