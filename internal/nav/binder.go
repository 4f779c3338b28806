package nav

import (
	"fmt"

	"storymap-cli/internal/model"
)

// Binder renders a chapter (or the story's intro properties) onto a Surface.
// Every write is a pure function of the derived chapter index: callers can
// re-render at any time without accumulating state.
type Binder struct {
	Surface Surface
}

// Render paints the story at the given chapter index. Any index outside
// [0, len(chapters)) renders intro mode with the intro panel active.
func (b *Binder) Render(story *model.Story, index int) {
	total := len(story.Chapters)
	ch := story.ChapterAt(index)

	b.Surface.SetText(RegionTitle, story.Properties.Title)

	if ch == nil {
		props := story.Properties
		b.Surface.SetText(RegionHeading, props.Title)
		b.Surface.SetText(RegionContent, props.Content)
		b.Surface.SetText(RegionDate, props.Date)
		b.Surface.SetText(RegionPlace, props.Place)
		b.Surface.SetImage(RegionHero, props.ImageURL)
		b.Surface.SetText(RegionAttribution, props.ImageCredit)
		b.Surface.SetText(RegionCounter, fmt.Sprintf("0 / %d", total))
		b.Surface.SetActive(PanelIntro, true)
		b.Surface.SetActive(PanelDetail, false)
	} else {
		b.Surface.SetText(RegionHeading, ch.Title)
		b.Surface.SetText(RegionContent, ch.Content)
		b.Surface.SetText(RegionDate, ch.Date)
		b.Surface.SetText(RegionPlace, ch.Place)
		b.Surface.SetImage(RegionHero, ch.ImageURL)
		b.Surface.SetText(RegionAttribution, attribution(ch.ImageCredit))
		b.Surface.SetText(RegionCounter, fmt.Sprintf("%d / %d", index+1, total))
		b.Surface.SetActive(PanelIntro, false)
		b.Surface.SetActive(PanelDetail, true)
	}

	// Forward is disabled exactly on the last valid chapter index.
	b.Surface.SetEnabled(ControlForward, total > 0 && index != total-1)
	b.Surface.SetEnabled(ControlBackward, ch != nil)
}

func attribution(credit string) string {
	if credit == "" {
		return ""
	}
	return "Image credit: " + credit
}
