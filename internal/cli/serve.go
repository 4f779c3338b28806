package cli

import (
	"log"
	"time"

	"github.com/spf13/cobra"

	"storymap-cli/internal/watcher"
	"storymap-cli/internal/web"
)

func newServeCmd(app *App) *cobra.Command {
	var (
		addr       string
		enableCORS bool
		debug      bool
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the story as a JSON preview API with live reload",
		Long:  "Serve the story over HTTP. Connected websocket clients on /ws get a reload event whenever the story file changes on disk.",
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := openStore(app)
			if err != nil {
				return err
			}
			srv, err := web.NewServer(web.Config{
				Store:      st,
				EnableCORS: enableCORS,
				Debug:      debug,
			})
			if err != nil {
				return err
			}

			w, err := watcher.New(st.StoryPath(), 500*time.Millisecond)
			if err != nil {
				return err
			}
			defer w.Close()
			go func() {
				for range w.Events() {
					if err := srv.Reload(); err != nil {
						log.Printf("storymap: reload failed: %v", err)
					}
				}
			}()

			return srv.Run(addr)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", ":8080", "Listen address")
	cmd.Flags().BoolVar(&enableCORS, "cors", false, "Allow cross-origin requests (preview pages on another origin)")
	cmd.Flags().BoolVar(&debug, "debug", false, "Verbose request logging")
	return cmd
}
