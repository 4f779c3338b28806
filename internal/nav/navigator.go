package nav

import (
	"fmt"
	"sync"
	"time"

	"storymap-cli/internal/model"
	"storymap-cli/internal/store"
)

const (
	// AutoplayPeriod is the fixed delay between autoplay steps.
	AutoplayPeriod = 3 * time.Second
	// ChapterFlyDuration is the camera flight to a chapter's coordinates.
	ChapterFlyDuration = 2 * time.Second
	// IntroFlyDuration is the camera flight back to the story overview.
	IntroFlyDuration = time.Second
)

// Navigator owns the current-chapter derivation and all transitions between
// chapters, intro mode, and the autoplay state machine.
//
// The persisted chapter title in the params store is the only durable state;
// the current index is re-derived from it on every read. Autoplay is realized
// as explicit state plus a sequence number: each start/stop bumps the
// sequence, and a tick carrying a stale sequence is dropped, so stopping is
// idempotent and a cancelled timer can never advance the chapter.
type Navigator struct {
	mu     sync.Mutex
	story  *model.Story
	params store.Params
	binder *Binder
	camera Camera

	autoplayOn  bool
	autoplaySeq int
}

func New(story *model.Story, params store.Params, surface Surface, camera Camera) *Navigator {
	if camera == nil {
		camera = NopCamera{}
	}
	return &Navigator{
		story:  story,
		params: params,
		binder: &Binder{Surface: surface},
		camera: camera,
	}
}

// Story returns the navigated story (shared, not a copy).
func (n *Navigator) Story() *model.Story { return n.story }

// CurrentIndex derives the current chapter index from the persisted chapter
// title. A missing, stale, or unreadable parameter yields -1 (intro mode).
func (n *Navigator) CurrentIndex() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.currentIndex()
}

func (n *Navigator) currentIndex() int {
	params, err := n.params.Get()
	if err != nil {
		return -1
	}
	return n.story.ChapterIndex(params[store.ParamChapter])
}

// Render paints the current state (initial paint and external refreshes).
func (n *Navigator) Render() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.binder.Render(n.story, n.currentIndex())
}

// GoTo persists the chapter title at index, re-renders, and flies the camera
// to the chapter. index must be in [0, chapter count).
func (n *Navigator) GoTo(index int) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.goTo(index)
}

func (n *Navigator) goTo(index int) error {
	ch := n.story.ChapterAt(index)
	if ch == nil {
		return fmt.Errorf("chapter index %d out of range", index)
	}
	if err := n.params.Set(store.ParamChapter, ch.Title); err != nil {
		return err
	}
	n.binder.Render(n.story, index)
	n.camera.FlyTo(ch.Coords, FlyOptions{Duration: ChapterFlyDuration})
	return nil
}

// Next advances one chapter. At the last chapter it is a no-op.
func (n *Navigator) Next() error {
	n.mu.Lock()
	defer n.mu.Unlock()
	i := n.currentIndex()
	if i+1 >= len(n.story.Chapters) {
		return nil
	}
	return n.goTo(i + 1)
}

// Previous steps back one chapter; at index 0 (or when no chapter matches)
// it routes to the intro instead of going negative.
func (n *Navigator) Previous() error {
	n.mu.Lock()
	defer n.mu.Unlock()
	i := n.currentIndex()
	if i <= 0 {
		return n.resetToIntro()
	}
	return n.goTo(i - 1)
}

// ResetToIntro clears the persisted chapter, renders the intro, and flies
// the camera to the story overview.
func (n *Navigator) ResetToIntro() error {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.resetToIntro()
}

func (n *Navigator) resetToIntro() error {
	if err := n.params.Delete(store.ParamChapter); err != nil {
		return err
	}
	n.binder.Render(n.story, -1)
	n.camera.FlyTo(n.story.Overview(), FlyOptions{Duration: IntroFlyDuration})
	return nil
}

// AutoplayRunning reports whether autoplay is in the Running state.
func (n *Navigator) AutoplayRunning() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.autoplayOn
}

// StartAutoplay transitions Stopped -> Running and returns the tick sequence
// the caller's timer must present. Starting while running restarts the
// sequence (the old timer's ticks go stale).
func (n *Navigator) StartAutoplay() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.startAutoplay()
}

func (n *Navigator) startAutoplay() int {
	n.autoplayOn = true
	n.autoplaySeq++
	n.binder.Surface.SetIcon(ControlAutoplay, IconPause)
	return n.autoplaySeq
}

// StopAutoplay transitions to Stopped. Calling it while stopped is a no-op.
func (n *Navigator) StopAutoplay() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.stopAutoplay()
}

func (n *Navigator) stopAutoplay() {
	if !n.autoplayOn {
		return
	}
	n.autoplayOn = false
	n.autoplaySeq++
	n.binder.Surface.SetIcon(ControlAutoplay, IconPlay)
}

// ToggleAutoplay flips the autoplay state. When it starts, it returns
// running=true and the sequence for the caller's timer.
func (n *Navigator) ToggleAutoplay() (running bool, seq int) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.autoplayOn {
		n.stopAutoplay()
		return false, n.autoplaySeq
	}
	return true, n.startAutoplay()
}

// AutoplayTick performs one autoplay step. Ticks from cancelled timers
// (stale seq) are dropped. Stepping onto the last chapter, or finding no
// further chapter, forces the transition back to Stopped. The return value
// tells the caller whether to schedule another tick with the same seq.
func (n *Navigator) AutoplayTick(seq int) bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	if !n.autoplayOn || seq != n.autoplaySeq {
		return false
	}
	i := n.currentIndex()
	next := i + 1
	if next >= len(n.story.Chapters) {
		n.stopAutoplay()
		return false
	}
	if err := n.goTo(next); err != nil {
		n.stopAutoplay()
		return false
	}
	if next == len(n.story.Chapters)-1 {
		n.stopAutoplay()
		return false
	}
	return true
}
