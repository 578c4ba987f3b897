package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/klauern/skilleval/internal/model"
	"github.com/klauern/skilleval/internal/ui"
	"github.com/klauern/skilleval/internal/ui/tui"
)

func skillsCommand() *cli.Command {
	return &cli.Command{
		Name:    "skills",
		Aliases: []string{"skill"},
		Usage:   "Inspect the skills the hook will evaluate",
		Commands: []*cli.Command{
			skillsListCommand(),
			skillsBrowseCommand(),
		},
	}
}

func skillsListCommand() *cli.Command {
	return &cli.Command{
		Name:    "list",
		Aliases: []string{"ls"},
		Usage:   "List discovered skills from all sources",
		Flags: append(discoveryFlags(),
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "Output format: table, json",
			},
			&cli.StringFlag{
				Name:    "source",
				Aliases: []string{"s"},
				Usage:   "Filter by source: user, project, plugin",
			},
		),
		Action: func(_ context.Context, cmd *cli.Command) error {
			skills, err := collectSkills(cmd)
			if err != nil {
				return err
			}

			if filter := cmd.String("source"); filter != "" {
				source, err := model.ParseSource(filter)
				if err != nil {
					return err
				}
				var filtered []model.Skill
				for _, s := range skills {
					if s.Source == source {
						filtered = append(filtered, s)
					}
				}
				skills = filtered
			}

			format := cmd.String("format")
			if format == "" {
				cfg, err := loadConfig(cmd)
				if err != nil {
					return err
				}
				format = cfg.Output.Format
			}

			switch format {
			case "json":
				return printSkillsJSON(skills)
			case "table", "":
				printSkillsTable(skills)
				return nil
			default:
				return fmt.Errorf("unsupported format %q (want table or json)", format)
			}
		},
	}
}

func skillsBrowseCommand() *cli.Command {
	return &cli.Command{
		Name:  "browse",
		Usage: "Browse discovered skills interactively",
		Flags: discoveryFlags(),
		Action: func(_ context.Context, cmd *cli.Command) error {
			skills, err := collectSkills(cmd)
			if err != nil {
				return err
			}

			// The browser needs a terminal; fall back to the plain
			// table when stdout is piped.
			if !term.IsTerminal(int(os.Stdout.Fd())) {
				printSkillsTable(skills)
				return nil
			}

			return tui.RunBrowse(skills)
		},
	}
}

// collectSkills runs discovery with the same sources the hook uses.
func collectSkills(cmd *cli.Command) ([]model.Skill, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	runner := newRunner(cmd, cfg)
	projectDir := runner.ProjectDir
	if cfg.Discovery.ProjectSkills && projectDir == "" {
		if cwd, err := os.Getwd(); err == nil {
			projectDir = cwd
		}
	}

	skills := runner.Collect(projectDir)
	sort.Slice(skills, func(i, j int) bool {
		if skills[i].Source != skills[j].Source {
			return skills[i].Source < skills[j].Source
		}
		return skills[i].Name < skills[j].Name
	})
	return skills, nil
}

func printSkillsJSON(skills []model.Skill) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(skills)
}

func printSkillsTable(skills []model.Skill) {
	if len(skills) == 0 {
		fmt.Println("No skills found.")
		return
	}

	nameWidth := len("NAME")
	sourceWidth := len("SOURCE")
	for _, s := range skills {
		if w := runewidth.StringWidth(s.Name); w > nameWidth {
			nameWidth = w
		}
		if w := runewidth.StringWidth(sourceLabel(s)); w > sourceWidth {
			sourceWidth = w
		}
	}

	fmt.Printf("%s  %s  %s\n",
		ui.Header(pad("NAME", nameWidth)),
		ui.Header(pad("SOURCE", sourceWidth)),
		ui.Header("DESCRIPTION"),
	)
	for _, s := range skills {
		desc := s.Description
		if desc == "" {
			desc = ui.Dim("(no description)")
		}
		fmt.Printf("%s  %s  %s\n",
			ui.Bold(pad(s.Name, nameWidth)),
			pad(sourceLabel(s), sourceWidth),
			desc,
		)
	}
	fmt.Printf("\n%d skill(s)\n", len(skills))
}

func sourceLabel(s model.Skill) string {
	if s.Source == model.SourcePlugin && s.Plugin != nil {
		return s.Plugin.Key
	}
	return s.Source.String()
}

// pad right-pads to a display width, so multi-byte names keep the
// table columns aligned.
func pad(s string, width int) string {
	w := runewidth.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}
