package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v3"

	"github.com/klauern/skilleval/internal/manifest"
	"github.com/klauern/skilleval/internal/ui"
	"github.com/klauern/skilleval/internal/util"
)

func manifestCommand() *cli.Command {
	return &cli.Command{
		Name:  "manifest",
		Usage: "Manage the marketplace and plugin artifact set",
		Commands: []*cli.Command{
			manifestValidateCommand(),
			manifestInitCommand(),
		},
	}
}

func manifestValidateCommand() *cli.Command {
	return &cli.Command{
		Name:      "validate",
		Usage:     "Validate marketplace.json, plugin.json, and hooks.json",
		UsageText: "skilleval manifest validate [repo-dir]",
		Action: func(_ context.Context, cmd *cli.Command) error {
			root := cmd.Args().First()
			if root == "" {
				cwd, err := os.Getwd()
				if err != nil {
					return err
				}
				root = cwd
			}

			issues, err := manifest.ValidateRepo(root)
			if err != nil {
				return err
			}

			if len(issues) == 0 {
				fmt.Println(ui.StatusSuccess("plugin artifacts are valid"))
				return nil
			}

			for _, issue := range issues {
				fmt.Println(ui.StatusError(issue.String()))
			}
			return fmt.Errorf("%d validation issue(s)", len(issues))
		},
	}
}

func manifestInitCommand() *cli.Command {
	return &cli.Command{
		Name:      "init",
		Usage:     "Write the default artifact set (marketplace, plugin, hooks)",
		UsageText: "skilleval manifest init [repo-dir]",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "force",
				Usage: "Overwrite existing artifacts",
			},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			root := cmd.Args().First()
			if root == "" {
				cwd, err := os.Getwd()
				if err != nil {
					return err
				}
				root = cwd
			}

			marketplacePath := filepath.Join(root, manifest.MarketplaceFile)
			if _, err := os.Stat(marketplacePath); err == nil && !cmd.Bool("force") {
				return fmt.Errorf("%s already exists (use --force to overwrite)", marketplacePath)
			}

			if err := manifest.WriteArtifacts(root); err != nil {
				return err
			}

			fmt.Println(ui.StatusSuccess("wrote " + manifest.MarketplaceFile))
			fmt.Println(ui.StatusSuccess("wrote " + manifest.PluginFile))
			fmt.Println(ui.StatusSuccess("wrote " + manifest.HooksFile))
			return nil
		},
	}
}

func installCommand() *cli.Command {
	return &cli.Command{
		Name:  "install",
		Usage: "Enable the skill-evaluator plugin in a project's settings",
		Description: `Merge the skilleval marketplace and plugin enablement into a
   project's .claude/settings.json:

   - extraKnownMarketplaces.skilleval → github:klauern/skilleval
   - enabledPlugins["skill-evaluator@skilleval"] → true

   Unrelated settings keys are preserved. Running twice is a no-op.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "project",
				Aliases: []string{"p"},
				Usage:   "Project directory (defaults to the current directory)",
			},
			&cli.StringFlag{
				Name:  "plugin-key",
				Usage: "Plugin key to enable",
				Value: manifest.DefaultPluginKey(),
			},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			projectDir := cmd.String("project")
			if projectDir == "" {
				cwd, err := os.Getwd()
				if err != nil {
					return err
				}
				projectDir = cwd
			}

			pluginKey := cmd.String("plugin-key")
			if err := manifest.ValidatePluginKey(pluginKey); err != nil {
				return err
			}

			settingsPath := util.ClaudeProjectSettingsPath(projectDir)
			err := manifest.MergeSettings(
				settingsPath,
				manifest.DefaultMarketplaceName,
				manifest.DefaultSource(),
				pluginKey,
			)
			if err != nil {
				return err
			}

			fmt.Println(ui.StatusSuccess("enabled " + pluginKey + " in " + settingsPath))
			return nil
		},
	}
}
