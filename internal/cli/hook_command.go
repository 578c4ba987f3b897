package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/klauern/skilleval/internal/config"
	"github.com/klauern/skilleval/internal/hook"
	"github.com/klauern/skilleval/internal/protocol"
)

// loadConfig loads configuration, honoring the global --config flag.
func loadConfig(cmd *cli.Command) (*config.Config, error) {
	if path := cmd.String("config"); path != "" {
		cfg, err := config.LoadFromPath(path)
		if err != nil {
			return nil, fmt.Errorf("failed to load config %q: %w", path, err)
		}
		return cfg, nil
	}
	return config.Load()
}

// newRunner builds the hook runner from config plus command flags.
func newRunner(cmd *cli.Command, cfg *config.Config) *hook.Runner {
	r := &hook.Runner{
		UserSkillsPath:      cfg.Discovery.UserSkillsPath,
		PluginsManifestPath: cfg.Discovery.PluginsManifestPath,
		Render: protocol.Options{
			DescriptionLimit: cfg.Protocol.DescriptionLimit,
			Disabled:         cfg.DisabledSet(),
		},
		Strict: cfg.Protocol.Strict,
	}

	if v := cmd.String("user-skills"); v != "" {
		r.UserSkillsPath = v
	}
	if v := cmd.String("plugins-manifest"); v != "" {
		r.PluginsManifestPath = v
	}
	if v := cmd.String("project"); v != "" {
		r.ProjectDir = v
	}
	if cmd.Bool("strict") {
		r.Strict = true
	}

	return r
}

func discoveryFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "user-skills",
			Usage: "Override the user-global skills directory",
		},
		&cli.StringFlag{
			Name:  "plugins-manifest",
			Usage: "Override the installed plugins manifest path",
		},
		&cli.StringFlag{
			Name:  "project",
			Usage: "Project directory to scan for .claude/skills",
		},
	}
}

// hookCommand is the UserPromptSubmit entry point: the host pipes the
// prompt payload to stdin and injects whatever lands on stdout.
func hookCommand() *cli.Command {
	return &cli.Command{
		Name:  "hook",
		Usage: "Run the UserPromptSubmit hook (reads host payload from stdin)",
		Description: `Enumerate installed skills and emit the SKILL-ACTIVATION-PROTOCOL
   block for injection into model context.

   Skills are gathered from:
   - ~/.claude/skills (user global)
   - <cwd>/.claude/skills (project, cwd taken from the host payload)
   - installed plugins listed in ~/.claude/plugins/installed_plugins.json

   Output is deterministic for a fixed skill set. With no skills
   installed the protocol block is still emitted so the prompt
   pipeline never fails; pass --strict to exit non-zero instead.`,
		Flags: append(discoveryFlags(),
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Emit structured hook output (hookSpecificOutput envelope)",
			},
			&cli.BoolFlag{
				Name:  "strict",
				Usage: "Fail with a non-zero exit when no skills are installed",
			},
		),
		Action: func(_ context.Context, cmd *cli.Command) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			payload := hook.ReadPayload(os.Stdin)
			runner := newRunner(cmd, cfg)
			if cfg.Discovery.ProjectSkills && runner.ProjectDir == "" {
				runner.ProjectDir = payload.CWD
			}

			text, err := runner.Run()
			if err != nil {
				if errors.Is(err, hook.ErrNoSkills) {
					return fmt.Errorf("skill-evaluator: %w", err)
				}
				return err
			}

			if cmd.Bool("json") {
				return hook.WriteJSON(os.Stdout, text)
			}
			return hook.WriteText(os.Stdout, text)
		},
	}
}

// previewCommand renders the same output as the hook without needing a
// payload on stdin, for inspecting what gets injected.
func previewCommand() *cli.Command {
	return &cli.Command{
		Name:  "preview",
		Usage: "Print what the hook would inject for this machine",
		Flags: discoveryFlags(),
		Action: func(_ context.Context, cmd *cli.Command) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			runner := newRunner(cmd, cfg)
			runner.Strict = false
			if cfg.Discovery.ProjectSkills && runner.ProjectDir == "" {
				if cwd, err := os.Getwd(); err == nil {
					runner.ProjectDir = cwd
				}
			}

			text, err := runner.Run()
			if err != nil {
				return err
			}
			return hook.WriteText(os.Stdout, text)
		},
	}
}
