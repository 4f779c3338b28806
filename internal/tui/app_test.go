package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"storymap-cli/internal/model"
	"storymap-cli/internal/store"
)

func testStory() *model.Story {
	return &model.Story{
		Properties: model.Chapter{Title: "Silk Road"},
		Chapters: []model.Chapter{
			{Title: "Xi'an", Coords: model.Coordinates{Lat: 34.34, Lon: 108.94}},
			{Title: "Samarkand", Coords: model.Coordinates{Lat: 39.65, Lon: 66.96}},
			{Title: "Istanbul", Coords: model.Coordinates{Lat: 41.01, Lon: 28.98}},
		},
	}
}

func newTestApp(t *testing.T) (appModel, store.Store) {
	t.Helper()
	st := store.Store{Dir: t.TempDir()}
	if err := st.Save(testStory()); err != nil {
		t.Fatalf("save story: %v", err)
	}
	story, err := st.Load()
	if err != nil {
		t.Fatalf("load story: %v", err)
	}
	m := newAppModel(st, story, store.MemParams{})
	m.width, m.height = 80, 24
	return m, st
}

func key(t tea.KeyType) tea.KeyMsg { return tea.KeyMsg{Type: t} }

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func step(t *testing.T, m appModel, msg tea.Msg) appModel {
	t.Helper()
	res, _ := m.Update(msg)
	out, ok := res.(appModel)
	if !ok {
		t.Fatalf("Update returned %T", res)
	}
	return out
}

func TestArrowKeysWalkChapters(t *testing.T) {
	m, _ := newTestApp(t)

	if got := m.navigator.CurrentIndex(); got != -1 {
		t.Fatalf("fresh app should start on the intro, got index %d", got)
	}

	m = step(t, m, key(tea.KeyRight))
	if got := m.navigator.CurrentIndex(); got != 0 {
		t.Fatalf("after right: index = %d, want 0", got)
	}
	m = step(t, m, key(tea.KeyRight))
	if got := m.navigator.CurrentIndex(); got != 1 {
		t.Fatalf("after right right: index = %d, want 1", got)
	}
	m = step(t, m, key(tea.KeyLeft))
	if got := m.navigator.CurrentIndex(); got != 0 {
		t.Fatalf("after left: index = %d, want 0", got)
	}
	m = step(t, m, key(tea.KeyLeft))
	if got := m.navigator.CurrentIndex(); got != -1 {
		t.Fatalf("left from the first chapter should land on the intro, got %d", got)
	}
}

func TestAutoplayToggleAndStaleTick(t *testing.T) {
	m, _ := newTestApp(t)

	m = step(t, m, key(tea.KeySpace))
	if !m.navigator.AutoplayRunning() {
		t.Fatal("space should start autoplay")
	}
	m = step(t, m, key(tea.KeySpace))
	if m.navigator.AutoplayRunning() {
		t.Fatal("second space should stop autoplay")
	}

	// The first start handed out seq 1; its timer is now stale and its tick
	// must not move the chapter.
	m = step(t, m, autoplayTickMsg{seq: 1})
	if got := m.navigator.CurrentIndex(); got != -1 {
		t.Fatalf("stale tick advanced the chapter to %d", got)
	}
}

func TestAutoplayTickAdvances(t *testing.T) {
	m, _ := newTestApp(t)

	m = step(t, m, key(tea.KeySpace))
	seq := 1
	m = step(t, m, autoplayTickMsg{seq: seq})
	if got := m.navigator.CurrentIndex(); got != 0 {
		t.Fatalf("first tick: index = %d, want 0", got)
	}
	m = step(t, m, autoplayTickMsg{seq: seq})
	if got := m.navigator.CurrentIndex(); got != 1 {
		t.Fatalf("second tick: index = %d, want 1", got)
	}
	// Stepping onto the last chapter stops autoplay.
	m = step(t, m, autoplayTickMsg{seq: seq})
	if got := m.navigator.CurrentIndex(); got != 2 {
		t.Fatalf("third tick: index = %d, want 2", got)
	}
	if m.navigator.AutoplayRunning() {
		t.Fatal("autoplay should stop on the last chapter")
	}
}

func TestMenuOpensExclusivelyAndEscapes(t *testing.T) {
	m, _ := newTestApp(t)

	m = step(t, m, runes("e"))
	if m.mode != modeMenu {
		t.Fatalf("mode = %d, want modeMenu", m.mode)
	}
	if got := m.tiles.Dialogs().OpenID(); got != "Xi'an" {
		t.Fatalf("open dialog = %q, want the selected tile's", got)
	}

	m = step(t, m, key(tea.KeyEsc))
	if m.mode != modeBrowse || m.tiles.Dialogs().IsOpen() {
		t.Fatal("escape should close the dialog and return to browsing")
	}
}

func TestMenuMoveDownPersists(t *testing.T) {
	m, st := newTestApp(t)

	m = step(t, m, runes("e"))
	m = step(t, m, key(tea.KeyDown)) // move down
	m = step(t, m, key(tea.KeyEnter))

	if m.tiles.Dialogs().IsOpen() {
		t.Fatal("submitting should close the dialog")
	}
	if got := m.story.Chapters[1].Title; got != "Xi'an" {
		t.Fatalf("in-memory order after move down: %q at 1, want Xi'an", got)
	}
	reloaded, err := st.Load()
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if got := reloaded.Chapters[1].Title; got != "Xi'an" {
		t.Fatalf("persisted order: %q at 1, want Xi'an", got)
	}
}

func TestDeleteKeyRemovesAndPersists(t *testing.T) {
	m, st := newTestApp(t)

	m = step(t, m, runes("x"))
	if len(m.story.Chapters) != 2 {
		t.Fatalf("chapters = %d, want 2", len(m.story.Chapters))
	}
	reloaded, err := st.Load()
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if len(reloaded.Chapters) != 2 || reloaded.Chapters[0].Title != "Samarkand" {
		t.Fatalf("persisted chapters = %+v", reloaded.Chapters)
	}
}

func TestAddFormAppendsChapter(t *testing.T) {
	m, st := newTestApp(t)

	m = step(t, m, runes("a"))
	if m.mode != modeAdd {
		t.Fatalf("mode = %d, want modeAdd", m.mode)
	}
	m = step(t, m, runes("Oasis"))
	m = step(t, m, key(tea.KeyTab))
	m = step(t, m, runes("Samark"))
	if len(m.placeMatches) == 0 {
		t.Fatal("typing a place should produce autocomplete matches")
	}
	m = step(t, m, key(tea.KeyEnter)) // accept the highlighted match
	if got := m.placeInput.Value(); got != "Samarkand" {
		t.Fatalf("accepted place = %q, want Samarkand", got)
	}
	m = step(t, m, key(tea.KeyEnter)) // save

	if m.mode != modeBrowse {
		t.Fatalf("mode after save = %d, want modeBrowse", m.mode)
	}
	reloaded, err := st.Load()
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	last := reloaded.Chapters[len(reloaded.Chapters)-1]
	if last.Title != "Oasis" || last.Place != "Samarkand" {
		t.Fatalf("appended chapter = %+v", last)
	}
	if last.Coords.Lat == 0 && last.Coords.Lon == 0 {
		t.Fatal("a located place should fill coordinates")
	}
}

func TestEditFormRenamesChapter(t *testing.T) {
	m, st := newTestApp(t)

	m = step(t, m, runes("e"))
	m = step(t, m, runes("3")) // edit
	if m.mode != modeEdit {
		t.Fatalf("mode = %d, want modeEdit", m.mode)
	}
	if got := m.titleInput.Value(); got != "Xi'an" {
		t.Fatalf("edit form should prefill the title, got %q", got)
	}
	m = step(t, m, runes(" Gate"))
	m = step(t, m, key(tea.KeyEnter))

	reloaded, err := st.Load()
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if got := reloaded.Chapters[0].Title; got != "Xi'an Gate" {
		t.Fatalf("renamed chapter = %q", got)
	}
}

func TestDragMarkSurvivesModelCopies(t *testing.T) {
	m, _ := newTestApp(t)
	m.tileList.SetSize(30, 10)

	// The runtime hands Update a fresh value copy on every message; the drag
	// mark set through one copy must be visible when any copy renders.
	next := m
	*next.dragging = "Xi'an"
	if view := m.tileList.View(); !strings.Contains(view, "≡") {
		t.Fatalf("dragged tile is not marked in the list view:\n%s", view)
	}

	*next.dragging = ""
	if view := m.tileList.View(); strings.Contains(view, "≡") {
		t.Fatalf("drag mark should clear on drag end:\n%s", view)
	}
}

func TestFormEscapeDiscards(t *testing.T) {
	m, st := newTestApp(t)

	m = step(t, m, runes("a"))
	m = step(t, m, runes("Scratch"))
	m = step(t, m, key(tea.KeyEsc))

	if m.mode != modeBrowse {
		t.Fatalf("mode = %d, want modeBrowse", m.mode)
	}
	reloaded, err := st.Load()
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if len(reloaded.Chapters) != 3 {
		t.Fatalf("escape must not save, chapters = %d", len(reloaded.Chapters))
	}
}
