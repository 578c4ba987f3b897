// Package config provides configuration management for skilleval.
// It supports a YAML configuration file, environment variables, and
// sensible defaults.
package config

import (
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/klauern/skilleval/internal/protocol"
	"github.com/klauern/skilleval/internal/util"
)

// Config represents the complete skilleval configuration.
type Config struct {
	// Discovery configures where skills are searched for
	Discovery DiscoveryConfig `yaml:"discovery"`

	// Protocol configures the rendered activation block
	Protocol ProtocolConfig `yaml:"protocol"`

	// Output configures display preferences
	Output OutputConfig `yaml:"output"`
}

// DiscoveryConfig holds skill search settings.
type DiscoveryConfig struct {
	// UserSkillsPath is the user-global skills directory
	UserSkillsPath string `yaml:"user_skills_path"`
	// PluginsManifestPath is the installed plugins manifest location
	PluginsManifestPath string `yaml:"plugins_manifest_path"`
	// ProjectSkills enables scanning the project .claude/skills dir
	ProjectSkills bool `yaml:"project_skills"`
}

// ProtocolConfig holds activation protocol settings.
type ProtocolConfig struct {
	// DescriptionLimit caps rendered description length in runes
	DescriptionLimit int `yaml:"description_limit"`
	// DisabledSkills are skill names excluded from the rendered output
	DisabledSkills []string `yaml:"disabled_skills,omitempty"`
	// Strict makes the hook fail when no skills are installed instead
	// of emitting an empty protocol block
	Strict bool `yaml:"strict"`
}

// OutputConfig holds display preferences.
type OutputConfig struct {
	// Format is the default list output format (table, json)
	Format string `yaml:"format"`
	// Color controls color output (auto, always, never)
	Color string `yaml:"color"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Discovery: DiscoveryConfig{
			UserSkillsPath:      util.ClaudeUserSkillsPath(),
			PluginsManifestPath: util.ClaudeInstalledPluginsPath(),
			ProjectSkills:       true,
		},
		Protocol: ProtocolConfig{
			DescriptionLimit: protocol.DefaultDescriptionLimit,
		},
		Output: OutputConfig{
			Format: "table",
			Color:  "auto",
		},
	}
}

// Load loads the configuration file, merging over defaults. A missing
// file yields defaults with environment overrides applied.
func Load() (*Config, error) {
	return LoadFromPath(util.ConfigPath())
}

// LoadFromPath loads configuration from a specific path.
func LoadFromPath(path string) (*Config, error) {
	cfg := Default()

	// #nosec G304 - path is the configured config file location
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.applyEnvironment()
			return cfg, nil
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	cfg.applyEnvironment()
	return cfg, nil
}

// SaveToPath writes the configuration to a specific path.
func (c *Config) SaveToPath(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	// #nosec G306 - config file should be readable by user
	return os.WriteFile(path, data, 0o644)
}

// DisabledSet returns the disabled skills as a lookup set.
func (c *Config) DisabledSet() map[string]bool {
	if len(c.Protocol.DisabledSkills) == 0 {
		return nil
	}
	out := make(map[string]bool, len(c.Protocol.DisabledSkills))
	for _, name := range c.Protocol.DisabledSkills {
		out[name] = true
	}
	return out
}

// applyEnvironment applies environment variable overrides following
// the pattern SKILLEVAL_<SECTION>_<KEY>.
func (c *Config) applyEnvironment() {
	if v := os.Getenv("SKILLEVAL_DISCOVERY_USER_SKILLS_PATH"); v != "" {
		c.Discovery.UserSkillsPath = v
	}
	if v := os.Getenv("SKILLEVAL_DISCOVERY_PLUGINS_MANIFEST_PATH"); v != "" {
		c.Discovery.PluginsManifestPath = v
	}
	if v := os.Getenv("SKILLEVAL_DISCOVERY_PROJECT_SKILLS"); v != "" {
		c.Discovery.ProjectSkills = parseBool(v)
	}

	if v := os.Getenv("SKILLEVAL_PROTOCOL_DESCRIPTION_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.Protocol.DescriptionLimit = n
		}
	}
	if v := os.Getenv("SKILLEVAL_PROTOCOL_STRICT"); v != "" {
		c.Protocol.Strict = parseBool(v)
	}

	if v := os.Getenv("SKILLEVAL_OUTPUT_FORMAT"); v != "" {
		c.Output.Format = v
	}
	if v := os.Getenv("SKILLEVAL_OUTPUT_COLOR"); v != "" {
		c.Output.Color = v
	}
}

func parseBool(v string) bool {
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false
	}
	return b
}
