package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"storymap-cli/internal/geocode"
	"storymap-cli/internal/model"
	"storymap-cli/internal/nav"
	"storymap-cli/internal/sidebar"
	"storymap-cli/internal/store"
)

func newChaptersCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chapters",
		Short: "List and edit the story's chapters",
	}
	cmd.AddCommand(newChaptersListCmd(app))
	cmd.AddCommand(newChaptersShowCmd(app))
	cmd.AddCommand(newChaptersAddCmd(app))
	cmd.AddCommand(newChaptersMoveCmd(app))
	cmd.AddCommand(newChaptersRemoveCmd(app))
	cmd.AddCommand(newChaptersGotoCmd(app))
	cmd.AddCommand(newChaptersCurrentCmd(app))
	return cmd
}

func loadStory(app *App) (store.Store, *model.Story, error) {
	st, err := openStore(app)
	if err != nil {
		return store.Store{}, nil, err
	}
	story, err := st.Load()
	if err != nil {
		return store.Store{}, nil, err
	}
	return st, story, nil
}

func newChaptersListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List chapters in story order",
		RunE: func(cmd *cobra.Command, args []string) error {
			st, story, err := loadStory(app)
			if err != nil {
				return err
			}
			current := -1
			if params, err := st.Params().Get(); err == nil {
				current = story.ChapterIndex(params[store.ParamChapter])
			}
			for i, ch := range story.Chapters {
				marker := " "
				if i == current {
					marker = "*"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %2d. %s\n", marker, i+1, ch.Title)
			}
			return nil
		},
	}
}

func newChaptersShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <title>",
		Short: "Show one chapter's details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, story, err := loadStory(app)
			if err != nil {
				return err
			}
			idx := story.ChapterIndex(args[0])
			if idx < 0 {
				return fmt.Errorf("no chapter titled %q", args[0])
			}
			ch := story.Chapters[idx]
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Title:  %s\n", ch.Title)
			if ch.Date != "" {
				fmt.Fprintf(out, "Date:   %s\n", ch.Date)
			}
			if ch.Place != "" {
				fmt.Fprintf(out, "Place:  %s\n", ch.Place)
			}
			fmt.Fprintf(out, "Coords: %.4f, %.4f\n", ch.Coords.Lat, ch.Coords.Lon)
			if ch.ImageURL != "" {
				fmt.Fprintf(out, "Image:  %s\n", ch.ImageURL)
			}
			if ch.ImageCredit != "" {
				fmt.Fprintf(out, "Credit: %s\n", ch.ImageCredit)
			}
			if ch.Content != "" {
				fmt.Fprintf(out, "\n%s\n", ch.Content)
			}
			return nil
		},
	}
}

func newChaptersAddCmd(app *App) *cobra.Command {
	var (
		place   string
		lat     float64
		lon     float64
		date    string
		content string
	)
	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Append a chapter",
		Long:  "Append a chapter. --place resolves coordinates through the built-in gazetteer; --lat/--lon override them.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, story, err := loadStory(app)
			if err != nil {
				return err
			}
			ch := model.Chapter{
				Title:   args[0],
				Place:   place,
				Date:    date,
				Content: content,
				Coords:  model.Coordinates{Lat: lat, Lon: lon},
			}
			if place != "" && lat == 0 && lon == 0 {
				if p, ok := geocode.Default().Lookup(place); ok {
					ch.Place = p.Name
					ch.Coords = p.Coords
				}
			}
			story.Chapters = append(story.Chapters, ch)
			if err := st.Save(story); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "added %q (%d chapters)\n", ch.Title, len(story.Chapters))
			return nil
		},
	}
	cmd.Flags().StringVar(&place, "place", "", "Place name (resolved via the gazetteer when --lat/--lon are unset)")
	cmd.Flags().Float64Var(&lat, "lat", 0, "Latitude")
	cmd.Flags().Float64Var(&lon, "lon", 0, "Longitude")
	cmd.Flags().StringVar(&date, "date", "", "Display date")
	cmd.Flags().StringVar(&content, "content", "", "Chapter body (markdown)")
	return cmd
}

func newChaptersMoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "move <title> <position>",
		Short: "Move a chapter to a 1-based position",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, story, err := loadStory(app)
			if err != nil {
				return err
			}
			idx := story.ChapterIndex(args[0])
			if idx < 0 {
				return fmt.Errorf("no chapter titled %q", args[0])
			}
			pos, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("position %q is not a number", args[1])
			}
			if !story.MoveChapter(idx, pos-1) {
				fmt.Fprintln(cmd.OutOrStdout(), "no change")
				return nil
			}
			return st.Save(story)
		},
	}
}

func newChaptersRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <title>",
		Short: "Remove a chapter",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, story, err := loadStory(app)
			if err != nil {
				return err
			}
			editor := &sidebar.StoryEditor{Story: story, Save: st.Save}
			idx := story.ChapterIndex(args[0])
			if idx < 0 {
				return fmt.Errorf("no chapter titled %q", args[0])
			}
			return editor.Handle(sidebar.ActionDelete, idx)
		},
	}
}

// discardSurface satisfies nav.Surface for headless navigation commands.
type discardSurface struct{}

func (discardSurface) SetText(string, string)  {}
func (discardSurface) SetImage(string, string) {}
func (discardSurface) SetEnabled(string, bool) {}
func (discardSurface) SetActive(string, bool)  {}
func (discardSurface) SetIcon(string, string)  {}

func newChaptersGotoCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "goto <title|intro>",
		Short: "Set the current chapter (shared with the TUI via the workspace db)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, story, err := loadStory(app)
			if err != nil {
				return err
			}
			n := nav.New(story, st.Params(), discardSurface{}, nil)
			if args[0] == "intro" {
				return n.ResetToIntro()
			}
			idx := story.ChapterIndex(args[0])
			if idx < 0 {
				return fmt.Errorf("no chapter titled %q", args[0])
			}
			return n.GoTo(idx)
		},
	}
}

func newChaptersCurrentCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "current",
		Short: "Print the current chapter",
		RunE: func(cmd *cobra.Command, args []string) error {
			st, story, err := loadStory(app)
			if err != nil {
				return err
			}
			n := nav.New(story, st.Params(), discardSurface{}, nil)
			idx := n.CurrentIndex()
			if idx < 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "intro")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d. %s\n", idx+1, story.Chapters[idx].Title)
			return nil
		},
	}
}
