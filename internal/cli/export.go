package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"storymap-cli/internal/export"
)

func newExportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "export <file.xlsx>",
		Short: "Export the chapters as a spreadsheet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, story, err := loadStory(app)
			if err != nil {
				return err
			}
			if err := export.WriteXLSX(story, args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %d chapters to %s\n", len(story.Chapters), args[0])
			return nil
		},
	}
}
