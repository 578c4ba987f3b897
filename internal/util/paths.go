package util

import (
	"os"
	"path/filepath"
)

// HomeDir returns the user's home directory
func HomeDir() string {
	home, _ := os.UserHomeDir()
	return home
}

// ClaudeUserSkillsPath returns the user-global Claude Code skills directory
func ClaudeUserSkillsPath() string {
	return filepath.Join(HomeDir(), ".claude", "skills")
}

// ClaudeProjectSkillsPath returns the project-local skills directory
func ClaudeProjectSkillsPath(projectDir string) string {
	return filepath.Join(projectDir, ".claude", "skills")
}

// ClaudeInstalledPluginsPath returns the installed plugins manifest path
func ClaudeInstalledPluginsPath() string {
	return filepath.Join(HomeDir(), ".claude", "plugins", "installed_plugins.json")
}

// ClaudeProjectSettingsPath returns a project's .claude/settings.json path
func ClaudeProjectSettingsPath(projectDir string) string {
	return filepath.Join(projectDir, ".claude", "settings.json")
}

// ConfigPath returns the skilleval configuration file path
func ConfigPath() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "skilleval", "config.yaml")
	}
	return filepath.Join(HomeDir(), ".config", "skilleval", "config.yaml")
}
