package nav

import (
	"time"

	"storymap-cli/internal/model"
)

// Region identifiers the binder writes through the Surface. A Surface maps
// these to whatever it renders on (TUI panes, JSON fields, a test recorder).
const (
	RegionTitle       = "title"
	RegionHeading     = "heading"
	RegionContent     = "content"
	RegionDate        = "date"
	RegionPlace       = "place"
	RegionHero        = "hero"
	RegionAttribution = "attribution"
	RegionCounter     = "counter"
)

// Control identifiers.
const (
	ControlForward  = "forward"
	ControlBackward = "backward"
	ControlAutoplay = "autoplay"
)

// Panel identifiers. Exactly one of intro/detail is active at a time.
const (
	PanelIntro  = "intro"
	PanelDetail = "detail"
)

// Autoplay affordance icons.
const (
	IconPlay  = "play"
	IconPause = "pause"
)

// Surface is the capability interface the navigator renders through, so the
// navigation logic is testable without a real UI.
type Surface interface {
	SetText(region, value string)
	SetImage(region, url string)
	SetEnabled(control string, enabled bool)
	SetActive(panel string, active bool)
	SetIcon(control, icon string)
}

// FlyOptions carries the camera transition duration.
type FlyOptions struct {
	Duration time.Duration
}

// Camera performs fire-and-forget map transitions.
type Camera interface {
	FlyTo(c model.Coordinates, opts FlyOptions)
}

// NopCamera ignores all transitions (headless embeddings).
type NopCamera struct{}

func (NopCamera) FlyTo(model.Coordinates, FlyOptions) {}
