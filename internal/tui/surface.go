package tui

import (
	"math"
	"time"

	"storymap-cli/internal/model"
	"storymap-cli/internal/nav"
)

// uiSurface is the TUI's nav.Surface: it records the binder's writes and the
// view reads them back, so what's on screen is always the binder's output.
type uiSurface struct {
	text    map[string]string
	images  map[string]string
	enabled map[string]bool
	active  map[string]bool
	icons   map[string]string
}

func newUISurface() *uiSurface {
	return &uiSurface{
		text:    map[string]string{},
		images:  map[string]string{},
		enabled: map[string]bool{},
		active:  map[string]bool{},
		icons:   map[string]string{nav.ControlAutoplay: nav.IconPlay},
	}
}

func (s *uiSurface) SetText(region, value string)        { s.text[region] = value }
func (s *uiSurface) SetImage(region, url string)         { s.images[region] = url }
func (s *uiSurface) SetEnabled(control string, on bool)  { s.enabled[control] = on }
func (s *uiSurface) SetActive(panel string, active bool) { s.active[panel] = active }
func (s *uiSurface) SetIcon(control, icon string)        { s.icons[control] = icon }

func (s *uiSurface) introActive() bool { return s.active[nav.PanelIntro] }

// chapterSpan is the visible longitude span after flying to a chapter.
const chapterSpan = 12.0

// flyCamera is the TUI's nav.Camera: FlyTo records a flight and the app model
// animates it with seq-guarded ticks, interpolating center and zoom.
type flyCamera struct {
	surface *uiSurface
	story   *model.Story

	center model.Coordinates
	span   float64

	flight  *flight
	pending bool
	seq     int
}

type flight struct {
	from     model.Coordinates
	to       model.Coordinates
	fromSpan float64
	toSpan   float64
	start    time.Time
	dur      time.Duration
}

func newFlyCamera(surface *uiSurface, story *model.Story) *flyCamera {
	c := &flyCamera{surface: surface, story: story}
	c.center = story.Overview()
	c.span = overviewSpan(story)
	return c
}

func overviewSpan(story *model.Story) float64 {
	if len(story.Chapters) == 0 {
		return 40
	}
	minLat, maxLat := math.Inf(1), math.Inf(-1)
	minLon, maxLon := math.Inf(1), math.Inf(-1)
	for _, ch := range story.Chapters {
		minLat = math.Min(minLat, ch.Coords.Lat)
		maxLat = math.Max(maxLat, ch.Coords.Lat)
		minLon = math.Min(minLon, ch.Coords.Lon)
		maxLon = math.Max(maxLon, ch.Coords.Lon)
	}
	span := math.Max(maxLon-minLon, (maxLat-minLat)*2) * 1.3
	return math.Max(span, 4)
}

func (c *flyCamera) FlyTo(target model.Coordinates, opts nav.FlyOptions) {
	toSpan := chapterSpan
	if c.surface.introActive() {
		toSpan = overviewSpan(c.story)
	}
	c.flight = &flight{
		from:     c.center,
		to:       target,
		fromSpan: c.span,
		toSpan:   toSpan,
		start:    time.Now(),
		dur:      opts.Duration,
	}
	c.pending = true
	c.seq++
}

// takePending reports a freshly requested flight exactly once, so the app
// model knows to start ticking.
func (c *flyCamera) takePending() (seq int, ok bool) {
	if !c.pending {
		return 0, false
	}
	c.pending = false
	return c.seq, true
}

// step advances the active flight. done=true once the camera has arrived.
func (c *flyCamera) step(now time.Time) (done bool) {
	f := c.flight
	if f == nil {
		return true
	}
	t := 1.0
	if f.dur > 0 {
		t = float64(now.Sub(f.start)) / float64(f.dur)
	}
	if t >= 1 {
		c.center = f.to
		c.span = f.toSpan
		c.flight = nil
		return true
	}
	e := easeInOut(t)
	c.center = model.Coordinates{
		Lat: f.from.Lat + (f.to.Lat-f.from.Lat)*e,
		Lon: f.from.Lon + (f.to.Lon-f.from.Lon)*e,
	}
	c.span = f.fromSpan + (f.toSpan-f.fromSpan)*e
	return false
}

func easeInOut(t float64) float64 {
	if t < 0.5 {
		return 2 * t * t
	}
	return 1 - math.Pow(-2*t+2, 2)/2
}
