package cli

import (
	"fmt"
	"runtime/debug"

	"github.com/spf13/cobra"
)

// Version is overridable at link time (-ldflags "-X ...cli.Version=v1.2.3").
var Version = ""

func newVersionCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the storymap version",
		RunE: func(cmd *cobra.Command, args []string) error {
			v := Version
			if v == "" {
				if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
					v = info.Main.Version
				}
			}
			if v == "" {
				v = "(devel)"
			}
			fmt.Fprintln(cmd.OutOrStdout(), "storymap "+v)
			return nil
		},
	}
}
