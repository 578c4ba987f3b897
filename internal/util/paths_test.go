package util

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestClaudeUserSkillsPath(t *testing.T) {
	got := ClaudeUserSkillsPath()
	if !strings.HasSuffix(got, filepath.Join(".claude", "skills")) {
		t.Errorf("ClaudeUserSkillsPath() = %q", got)
	}
}

func TestClaudeProjectSkillsPath(t *testing.T) {
	got := ClaudeProjectSkillsPath("/work/repo")
	want := filepath.Join("/work/repo", ".claude", "skills")
	if got != want {
		t.Errorf("ClaudeProjectSkillsPath() = %q, want %q", got, want)
	}
}

func TestClaudeInstalledPluginsPath(t *testing.T) {
	got := ClaudeInstalledPluginsPath()
	if !strings.HasSuffix(got, filepath.Join(".claude", "plugins", "installed_plugins.json")) {
		t.Errorf("ClaudeInstalledPluginsPath() = %q", got)
	}
}

func TestClaudeProjectSettingsPath(t *testing.T) {
	got := ClaudeProjectSettingsPath("/work/repo")
	want := filepath.Join("/work/repo", ".claude", "settings.json")
	if got != want {
		t.Errorf("ClaudeProjectSettingsPath() = %q, want %q", got, want)
	}
}

func TestConfigPathRespectsXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/xdg/config")
	got := ConfigPath()
	want := filepath.Join("/xdg/config", "skilleval", "config.yaml")
	if got != want {
		t.Errorf("ConfigPath() = %q, want %q", got, want)
	}
}

func TestConfigPathDefault(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "")
	got := ConfigPath()
	if !strings.HasSuffix(got, filepath.Join(".config", "skilleval", "config.yaml")) {
		t.Errorf("ConfigPath() = %q", got)
	}
}
