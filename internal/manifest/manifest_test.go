package manifest

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestWriteArtifactsAndValidate(t *testing.T) {
	root := t.TempDir()
	if err := WriteArtifacts(root); err != nil {
		t.Fatalf("WriteArtifacts() error = %v", err)
	}

	issues, err := ValidateRepo(root)
	if err != nil {
		t.Fatalf("ValidateRepo() error = %v", err)
	}
	if len(issues) != 0 {
		t.Errorf("ValidateRepo() on defaults = %v, want no issues", issues)
	}
}

// TestShippedArtifactsMatchDefaults pins the artifact files committed
// at the repository root to the generated defaults, so editing one
// side without the other fails fast.
func TestShippedArtifactsMatchDefaults(t *testing.T) {
	repoRoot := filepath.Join("..", "..")

	m, err := LoadMarketplace(filepath.Join(repoRoot, MarketplaceFile))
	if err != nil {
		t.Fatalf("LoadMarketplace() error = %v", err)
	}
	if want := DefaultMarketplace(); !reflect.DeepEqual(m, want) {
		t.Errorf("shipped marketplace.json = %+v, want %+v", m, want)
	}

	p, err := LoadPlugin(filepath.Join(repoRoot, PluginFile))
	if err != nil {
		t.Fatalf("LoadPlugin() error = %v", err)
	}
	if want := DefaultPlugin(); !reflect.DeepEqual(p, want) {
		t.Errorf("shipped plugin.json = %+v, want %+v", p, want)
	}

	h, err := LoadHooks(filepath.Join(repoRoot, HooksFile))
	if err != nil {
		t.Fatalf("LoadHooks() error = %v", err)
	}
	if want := DefaultHooks(); !reflect.DeepEqual(h, want) {
		t.Errorf("shipped hooks.json = %+v, want %+v", h, want)
	}

	s, err := LoadSettings(filepath.Join(repoRoot, "examples", "settings.json"))
	if err != nil {
		t.Fatalf("LoadSettings() error = %v", err)
	}
	if got := s.ExtraKnownMarketplaces[DefaultMarketplaceName].Source; got != DefaultSource() {
		t.Errorf("example settings marketplace source = %+v, want %+v", got, DefaultSource())
	}
	if !s.EnabledPlugins[DefaultPluginKey()] {
		t.Errorf("example settings does not enable %s", DefaultPluginKey())
	}

	issues, err := ValidateRepo(repoRoot)
	if err != nil {
		t.Fatalf("ValidateRepo() error = %v", err)
	}
	if len(issues) != 0 {
		t.Errorf("ValidateRepo() on repository root = %v, want no issues", issues)
	}
}

func TestLoadMarketplace(t *testing.T) {
	root := t.TempDir()
	if err := WriteArtifacts(root); err != nil {
		t.Fatal(err)
	}

	m, err := LoadMarketplace(filepath.Join(root, MarketplaceFile))
	if err != nil {
		t.Fatalf("LoadMarketplace() error = %v", err)
	}
	if m.Name != DefaultMarketplaceName {
		t.Errorf("Name = %q, want %q", m.Name, DefaultMarketplaceName)
	}
	if len(m.Plugins) != 1 || m.Plugins[0].Name != DefaultPluginName {
		t.Errorf("Plugins = %v, want single %q ref", m.Plugins, DefaultPluginName)
	}
}

func TestLoadHooksCommands(t *testing.T) {
	root := t.TempDir()
	if err := WriteArtifacts(root); err != nil {
		t.Fatal(err)
	}

	h, err := LoadHooks(filepath.Join(root, HooksFile))
	if err != nil {
		t.Fatalf("LoadHooks() error = %v", err)
	}

	cmds := h.Commands("UserPromptSubmit")
	if len(cmds) != 1 {
		t.Fatalf("Commands() = %d, want 1", len(cmds))
	}
	if cmds[0].Type != "command" || cmds[0].Command == "" {
		t.Errorf("unexpected hook command: %+v", cmds[0])
	}

	if got := h.Commands("PreToolUse"); len(got) != 0 {
		t.Errorf("Commands() for unbound event = %v, want empty", got)
	}
}

func TestValidateRepoFindings(t *testing.T) {
	tests := map[string]struct {
		mutate     func(t *testing.T, root string)
		wantIssues bool
	}{
		"valid defaults": {
			mutate:     func(t *testing.T, root string) {},
			wantIssues: false,
		},
		"plugin name mismatch": {
			mutate: func(t *testing.T, root string) {
				p := DefaultPlugin()
				p.Name = "wrong-name"
				if err := writeJSON(filepath.Join(root, PluginFile), p); err != nil {
					t.Fatal(err)
				}
			},
			wantIssues: true,
		},
		"missing plugin version": {
			mutate: func(t *testing.T, root string) {
				p := DefaultPlugin()
				p.Version = ""
				if err := writeJSON(filepath.Join(root, PluginFile), p); err != nil {
					t.Fatal(err)
				}
			},
			wantIssues: true,
		},
		"unknown hook event": {
			mutate: func(t *testing.T, root string) {
				h := &Hooks{Hooks: map[string][]HookMatcher{
					"OnPromptMaybe": {{Hooks: []HookCommand{{Type: "command", Command: "run"}}}},
				}}
				if err := writeJSON(filepath.Join(root, HooksFile), h); err != nil {
					t.Fatal(err)
				}
			},
			wantIssues: true,
		},
		"empty hook command": {
			mutate: func(t *testing.T, root string) {
				h := &Hooks{Hooks: map[string][]HookMatcher{
					"UserPromptSubmit": {{Hooks: []HookCommand{{Type: "command"}}}},
				}}
				if err := writeJSON(filepath.Join(root, HooksFile), h); err != nil {
					t.Fatal(err)
				}
			},
			wantIssues: true,
		},
		"unsupported hook type": {
			mutate: func(t *testing.T, root string) {
				h := &Hooks{Hooks: map[string][]HookMatcher{
					"UserPromptSubmit": {{Hooks: []HookCommand{{Type: "script", Command: "x"}}}},
				}}
				if err := writeJSON(filepath.Join(root, HooksFile), h); err != nil {
					t.Fatal(err)
				}
			},
			wantIssues: true,
		},
		"missing plugin manifest": {
			mutate: func(t *testing.T, root string) {
				if err := os.Remove(filepath.Join(root, PluginFile)); err != nil {
					t.Fatal(err)
				}
			},
			wantIssues: true,
		},
		"marketplace with no plugins": {
			mutate: func(t *testing.T, root string) {
				m := DefaultMarketplace()
				m.Plugins = nil
				if err := writeJSON(filepath.Join(root, MarketplaceFile), m); err != nil {
					t.Fatal(err)
				}
			},
			wantIssues: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			root := t.TempDir()
			if err := WriteArtifacts(root); err != nil {
				t.Fatal(err)
			}
			tt.mutate(t, root)

			issues, err := ValidateRepo(root)
			if err != nil {
				t.Fatalf("ValidateRepo() error = %v", err)
			}
			if (len(issues) > 0) != tt.wantIssues {
				t.Errorf("ValidateRepo() issues = %v, wantIssues %v", issues, tt.wantIssues)
			}
		})
	}
}

func TestValidateRepoMissingMarketplace(t *testing.T) {
	if _, err := ValidateRepo(t.TempDir()); err == nil {
		t.Error("ValidateRepo() without marketplace.json should error")
	}
}

func TestValidatePluginKey(t *testing.T) {
	tests := map[string]struct {
		key     string
		wantErr bool
	}{
		"valid":              {key: "skill-evaluator@skilleval"},
		"missing at sign":    {key: "skill-evaluator", wantErr: true},
		"empty plugin":       {key: "@skilleval", wantErr: true},
		"empty marketplace":  {key: "skill-evaluator@", wantErr: true},
		"spaces in name":     {key: "my skill@market", wantErr: true},
		"empty key":          {key: "", wantErr: true},
		"namespaced plugins": {key: "org/tool@market"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			err := ValidatePluginKey(tt.key)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePluginKey(%q) error = %v, wantErr %v", tt.key, err, tt.wantErr)
			}
		})
	}
}
