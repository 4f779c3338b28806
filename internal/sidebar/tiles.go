package sidebar

import (
	"log"

	"storymap-cli/internal/model"
)

// Action is one of the four per-tile menu choices.
type Action string

const (
	ActionMoveUp   Action = "move-up"
	ActionMoveDown Action = "move-down"
	ActionEdit     Action = "edit"
	ActionDelete   Action = "delete"
)

// Actions lists the menu choices in display order.
var Actions = []Action{ActionMoveUp, ActionMoveDown, ActionEdit, ActionDelete}

// ParseAction maps a raw menu value onto an Action.
func ParseAction(raw string) (Action, bool) {
	switch Action(raw) {
	case ActionMoveUp, ActionMoveDown, ActionEdit, ActionDelete:
		return Action(raw), true
	}
	return "", false
}

// ActionHandler receives the resolved (action, chapter index) pair when a
// tile menu submits. Implementations are pluggable; see StoryEditor and
// NoopHandler.
type ActionHandler interface {
	Handle(action Action, chapterIndex int) error
}

// HandlerFunc adapts a function to ActionHandler.
type HandlerFunc func(Action, int) error

func (f HandlerFunc) Handle(a Action, i int) error { return f(a, i) }

// Tile is one sidebar entry. The chapter title is both the label and the
// menu's grouping key, so each tile's choice group is unique.
type Tile struct {
	Title string
	Index int
}

// Manager builds the tile list for a story and runs the per-tile menu
// protocol: choosing an option submits once, resolves the owning chapter by
// title key, dispatches to the handler, and closes the dialog.
type Manager struct {
	story   *model.Story
	handler ActionHandler
	dialogs Controller
}

func NewManager(story *model.Story, handler ActionHandler) *Manager {
	return &Manager{story: story, handler: handler}
}

// Tiles rebuilds the entries from the story's current chapter order.
func (m *Manager) Tiles() []Tile {
	out := make([]Tile, 0, len(m.story.Chapters))
	for i := range m.story.Chapters {
		out = append(out, Tile{Title: m.story.Chapters[i].Title, Index: i})
	}
	return out
}

// Dialogs exposes the exclusivity controller owning the tile menus.
func (m *Manager) Dialogs() *Controller { return &m.dialogs }

// OpenMenu opens the action menu for the tile with the given title, closing
// any other tile's open menu first.
func (m *Manager) OpenMenu(title string) {
	m.dialogs.Open(title)
}

// Submit runs the selection protocol for a raw menu value: resolve the
// action and the owning chapter, dispatch, close the dialog. Unknown actions
// are logged and otherwise ignored; the dialog still closes, since the form
// submitted.
func (m *Manager) Submit(title, raw string) error {
	defer m.dialogs.Close()

	action, ok := ParseAction(raw)
	if !ok {
		log.Printf("storymap: ignoring unknown sidebar action %q", raw)
		return nil
	}
	idx := m.story.ChapterIndex(title)
	if idx < 0 {
		log.Printf("storymap: sidebar action %q for unknown chapter %q", action, title)
		return nil
	}
	return m.handler.Handle(action, idx)
}

// StoryEditor is the default ActionHandler: it applies moves and deletes to
// the story and persists through Save. Edit is delegated to the embedding
// container via OnEdit (the editor UI owns that flow).
type StoryEditor struct {
	Story  *model.Story
	Save   func(*model.Story) error
	OnEdit func(chapterIndex int)
}

func (e *StoryEditor) Handle(action Action, chapterIndex int) error {
	changed := false
	switch action {
	case ActionMoveUp:
		changed = e.Story.MoveChapter(chapterIndex, chapterIndex-1)
	case ActionMoveDown:
		changed = e.Story.MoveChapter(chapterIndex, chapterIndex+1)
	case ActionDelete:
		changed = e.Story.RemoveChapter(chapterIndex)
	case ActionEdit:
		if e.OnEdit != nil {
			e.OnEdit(chapterIndex)
		}
		return nil
	}
	if changed && e.Save != nil {
		return e.Save(e.Story)
	}
	return nil
}

// Reorder commits a full tile order (drag write-back) and persists it.
func (e *StoryEditor) Reorder(titles []string) error {
	if !e.Story.Reorder(titles) {
		return nil
	}
	if e.Save != nil {
		return e.Save(e.Story)
	}
	return nil
}

// NoopHandler mirrors the original stub boundary: move and delete are
// declared placeholders with no observable effect, only edit notifies.
type NoopHandler struct {
	OnEdit func(chapterIndex int)
}

func (h NoopHandler) Handle(action Action, chapterIndex int) error {
	if action == ActionEdit && h.OnEdit != nil {
		h.OnEdit(chapterIndex)
	}
	return nil
}
