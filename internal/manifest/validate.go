package manifest

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauern/skilleval/internal/parser"
)

// knownEvents are the hook lifecycle events the host recognizes.
var knownEvents = map[string]bool{
	"UserPromptSubmit": true,
	"PreToolUse":       true,
	"PostToolUse":      true,
	"Notification":     true,
	"Stop":             true,
	"SubagentStop":     true,
	"SessionStart":     true,
	"SessionEnd":       true,
	"PreCompact":       true,
}

// Issue is a single validation finding.
type Issue struct {
	Path    string
	Message string
}

func (i Issue) String() string {
	return fmt.Sprintf("%s: %s", i.Path, i.Message)
}

// ValidateRepo validates the plugin artifact set rooted at dir. It
// returns the list of findings; an empty list means the artifacts are
// structurally sound. Only a missing marketplace descriptor is a hard
// error, since nothing else can be resolved without it.
func ValidateRepo(root string) ([]Issue, error) {
	var issues []Issue

	marketplacePath := filepath.Join(root, MarketplaceFile)
	m, err := LoadMarketplace(marketplacePath)
	if err != nil {
		return nil, err
	}

	if m.Name == "" {
		issues = append(issues, Issue{marketplacePath, "marketplace name is required"})
	} else if err := parser.ValidateSkillName(m.Name); err != nil {
		issues = append(issues, Issue{marketplacePath, err.Error()})
	}

	if len(m.Plugins) == 0 {
		issues = append(issues, Issue{marketplacePath, "marketplace declares no plugins"})
	}

	for _, ref := range m.Plugins {
		issues = append(issues, validateRef(root, marketplacePath, ref)...)
	}

	return issues, nil
}

func validateRef(root, marketplacePath string, ref PluginRef) []Issue {
	var issues []Issue

	if ref.Name == "" {
		issues = append(issues, Issue{marketplacePath, "plugin ref missing name"})
		return issues
	}
	if ref.Source == "" {
		issues = append(issues, Issue{marketplacePath, fmt.Sprintf("plugin %q missing source", ref.Name)})
		return issues
	}

	// Remote sources are resolved by the host; only local paths are
	// checked here.
	if !strings.HasPrefix(ref.Source, "./") && !strings.HasPrefix(ref.Source, "../") {
		return issues
	}

	pluginDir := filepath.Join(root, ref.Source)
	pluginPath := filepath.Join(pluginDir, ".claude-plugin", "plugin.json")

	p, err := LoadPlugin(pluginPath)
	if err != nil {
		issues = append(issues, Issue{pluginPath, err.Error()})
		return issues
	}

	if p.Name != ref.Name {
		issues = append(issues, Issue{pluginPath, fmt.Sprintf("plugin name %q does not match marketplace ref %q", p.Name, ref.Name)})
	}
	if p.Version == "" {
		issues = append(issues, Issue{pluginPath, "plugin version is required"})
	}

	hooksPath := filepath.Join(pluginDir, "hooks", "hooks.json")
	if _, err := os.Stat(hooksPath); err == nil {
		issues = append(issues, validateHooks(hooksPath)...)
	}

	return issues
}

func validateHooks(path string) []Issue {
	var issues []Issue

	h, err := LoadHooks(path)
	if err != nil {
		return []Issue{{path, err.Error()}}
	}

	if len(h.Hooks) == 0 {
		issues = append(issues, Issue{path, "hooks file declares no events"})
	}

	for event, matchers := range h.Hooks {
		if !knownEvents[event] {
			issues = append(issues, Issue{path, fmt.Sprintf("unknown hook event %q", event)})
		}
		for _, matcher := range matchers {
			for _, cmd := range matcher.Hooks {
				if cmd.Type != "command" {
					issues = append(issues, Issue{path, fmt.Sprintf("unsupported hook type %q for event %q", cmd.Type, event)})
				}
				if cmd.Command == "" {
					issues = append(issues, Issue{path, fmt.Sprintf("empty hook command for event %q", event)})
				}
			}
		}
	}

	return issues
}

// ValidatePluginKey checks the "<plugin>@<marketplace>" key format used
// by enabledPlugins and the install command.
func ValidatePluginKey(key string) error {
	parts := strings.SplitN(key, "@", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return fmt.Errorf("plugin key must be <plugin>@<marketplace>: %q", key)
	}
	if err := parser.ValidateSkillName(parts[0]); err != nil {
		return fmt.Errorf("invalid plugin name in key %q: %w", key, err)
	}
	if err := parser.ValidateSkillName(parts[1]); err != nil {
		return fmt.Errorf("invalid marketplace name in key %q: %w", key, err)
	}
	return nil
}
