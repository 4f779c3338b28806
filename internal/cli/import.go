package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"storymap-cli/internal/importer"
)

func newImportCmd(app *App) *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "import <file.html>",
		Short: "Import a story from an HTML export",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := openStore(app)
			if err != nil {
				return err
			}
			if !force {
				if _, err := st.Load(); err == nil {
					return fmt.Errorf("workspace already has a story; pass --force to overwrite")
				}
			}
			story, err := importer.ParseFile(args[0])
			if err != nil {
				return err
			}
			if err := st.Save(story); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "imported %d chapters into %s\n", len(story.Chapters), st.Dir)
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing story")
	return cmd
}
