package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/mattn/go-runewidth"
	"github.com/urfave/cli/v3"

	"github.com/klauern/skilleval/internal/plugins"
	"github.com/klauern/skilleval/internal/ui"
)

func pluginsCommand() *cli.Command {
	return &cli.Command{
		Name:    "plugins",
		Aliases: []string{"plugin"},
		Usage:   "Inspect installed Claude Code plugins",
		Commands: []*cli.Command{
			pluginsListCommand(),
		},
	}
}

// pluginEntry is the JSON shape for a single plugin installation.
type pluginEntry struct {
	Key         string `json:"key"`
	Name        string `json:"name"`
	Marketplace string `json:"marketplace"`
	Version     string `json:"version"`
	InstallPath string `json:"installPath"`
	Scope       string `json:"scope,omitempty"`
}

func pluginsListCommand() *cli.Command {
	return &cli.Command{
		Name:    "list",
		Aliases: []string{"ls"},
		Usage:   "List enabled plugin installations",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Value:   "table",
				Usage:   "Output format: table, json",
			},
			&cli.StringFlag{
				Name:  "plugins-manifest",
				Usage: "Override the installed plugins manifest path",
			},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			index := plugins.LoadIndex(cmd.String("plugins-manifest"))

			entries := make([]pluginEntry, 0, index.Len())
			for _, e := range index.Entries() {
				entries = append(entries, pluginEntry{
					Key:         e.Key,
					Name:        e.Name,
					Marketplace: e.Marketplace,
					Version:     e.Version,
					InstallPath: e.InstallPath,
					Scope:       e.Scope,
				})
			}

			switch cmd.String("format") {
			case "json":
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(entries)
			case "table":
				printPluginsTable(entries)
				return nil
			default:
				return fmt.Errorf("unsupported format %q (want table or json)", cmd.String("format"))
			}
		},
	}
}

func printPluginsTable(entries []pluginEntry) {
	if len(entries) == 0 {
		fmt.Println("No plugins installed.")
		return
	}

	keyWidth := len("PLUGIN")
	versionWidth := len("VERSION")
	for _, e := range entries {
		if w := runewidth.StringWidth(e.Key); w > keyWidth {
			keyWidth = w
		}
		if w := runewidth.StringWidth(e.Version); w > versionWidth {
			versionWidth = w
		}
	}

	fmt.Printf("%s  %s  %s\n",
		ui.Header(pad("PLUGIN", keyWidth)),
		ui.Header(pad("VERSION", versionWidth)),
		ui.Header("PATH"),
	)
	for _, e := range entries {
		fmt.Printf("%s  %s  %s\n",
			ui.Bold(pad(e.Key, keyWidth)),
			pad(e.Version, versionWidth),
			ui.Dim(e.InstallPath),
		)
	}
	fmt.Printf("\n%d plugin(s)\n", len(entries))
}
