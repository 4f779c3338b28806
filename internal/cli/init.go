package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"storymap-cli/internal/model"
	"storymap-cli/internal/store"
)

func newInitCmd(app *App) *cobra.Command {
	var title string
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a workspace with an empty story",
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := openStore(app)
			if err != nil {
				return err
			}
			if _, err := st.Load(); err == nil {
				return fmt.Errorf("%s already holds a story", st.Dir)
			} else if !errors.Is(err, store.ErrNoStory) {
				return err
			}
			if err := st.Ensure(); err != nil {
				return err
			}
			story := &model.Story{Properties: model.Chapter{Title: title}}
			if err := st.Save(story); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "initialized %s\n", st.Dir)
			return nil
		},
	}
	cmd.Flags().StringVar(&title, "title", "Untitled story", "Story title")
	return cmd
}
