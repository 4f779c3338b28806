package cli

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"storymap-cli/internal/store"
	"storymap-cli/internal/tui"
)

// App carries the persistent flags shared by every command.
type App struct {
	Dir string
}

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:          "storymap",
		Short:        "Map-driven story editor (CLI + TUI)",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Start the interactive TUI
  storymap

  # Scriptable commands
  storymap chapters list
  storymap chapters add "Samarkand" --place Samarkand

  # Serve the JSON preview API with live reload
  storymap serve --addr :8080
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand => interactive TUI.
			if len(args) == 0 {
				return runTUI(app)
			}
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVar(&app.Dir, "dir", envOr("STORYMAP_DIR", ""),
		"Workspace dir (default: the nearest .storymap, discovered upward from the cwd)")

	cmd.AddCommand(newInitCmd(app))
	cmd.AddCommand(newChaptersCmd(app))
	cmd.AddCommand(newServeCmd(app))
	cmd.AddCommand(newImportCmd(app))
	cmd.AddCommand(newExportCmd(app))
	cmd.AddCommand(newVersionCmd(app))

	return cmd
}

func envOr(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func openStore(app *App) (store.Store, error) {
	if app.Dir != "" {
		return store.Store{Dir: app.Dir}, nil
	}
	dir, err := store.DefaultDir()
	if err != nil {
		return store.Store{}, err
	}
	return store.Store{Dir: dir}, nil
}

func runTUI(app *App) error {
	st, err := openStore(app)
	if err != nil {
		return err
	}
	return tui.Run(st)
}
