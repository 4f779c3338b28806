package tui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"storymap-cli/internal/model"
	"storymap-cli/internal/nav"
	"storymap-cli/internal/sidebar"
)

// cameraFrameInterval is the animation frame period for camera flights.
const cameraFrameInterval = 40 * time.Millisecond

// cameraCmd starts a tick loop for a freshly requested flight, if any.
func (m *appModel) cameraCmd() tea.Cmd {
	seq, ok := m.camera.takePending()
	if !ok {
		return nil
	}
	return tea.Tick(cameraFrameInterval, func(time.Time) tea.Msg {
		return cameraTickMsg{seq: seq}
	})
}

func autoplayCmd(seq int) tea.Cmd {
	return tea.Tick(nav.AutoplayPeriod, func(time.Time) tea.Msg {
		return autoplayTickMsg{seq: seq}
	})
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.tileList.SetSize(m.sidebarWidth(), m.bodyHeight())
		return m, nil

	case cameraTickMsg:
		// A newer flight bumped the sequence; let this loop die.
		if msg.seq != m.camera.seq {
			return m, nil
		}
		if m.camera.step(time.Now()) {
			return m, nil
		}
		return m, tea.Tick(cameraFrameInterval, func(time.Time) tea.Msg {
			return cameraTickMsg{seq: msg.seq}
		})

	case autoplayTickMsg:
		again := m.navigator.AutoplayTick(msg.seq)
		m.refreshTiles()
		m.syncSelection()
		cmds := []tea.Cmd{m.cameraCmd()}
		if again {
			cmds = append(cmds, autoplayCmd(msg.seq))
		}
		return m, tea.Batch(cmds...)

	case tea.KeyMsg:
		switch m.mode {
		case modeMenu:
			return m.updateMenu(msg)
		case modeAdd, modeEdit:
			return m.updateForm(msg)
		default:
			return m.updateBrowse(msg)
		}

	case tea.MouseMsg:
		return m.updateMouse(msg)
	}

	var cmd tea.Cmd
	m.tileList, cmd = m.tileList.Update(msg)
	return m, cmd
}

func (m appModel) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "right", "l", "n":
		if err := m.navigator.Next(); err != nil {
			m.status = err.Error()
		}
		return m.afterNav()

	case "left", "h", "p":
		if err := m.navigator.Previous(); err != nil {
			m.status = err.Error()
		}
		return m.afterNav()

	case "i":
		if err := m.navigator.ResetToIntro(); err != nil {
			m.status = err.Error()
		}
		return m.afterNav()

	case " ":
		running, seq := m.navigator.ToggleAutoplay()
		if running {
			return m, autoplayCmd(seq)
		}
		return m, nil

	case "enter":
		if it, ok := m.selectedTile(); ok {
			if err := m.navigator.GoTo(m.story.ChapterIndex(it.title)); err != nil {
				m.status = err.Error()
			}
		}
		return m.afterNav()

	case "e":
		if it, ok := m.selectedTile(); ok {
			m.openMenu(it.title)
		}
		return m, nil

	case "a":
		m.startAdd()
		return m, nil

	case "K":
		return m.moveSelected(sidebar.ActionMoveUp)

	case "J":
		return m.moveSelected(sidebar.ActionMoveDown)

	case "x":
		if it, ok := m.selectedTile(); ok {
			if err := m.tiles.Submit(it.title, string(sidebar.ActionDelete)); err != nil {
				m.status = err.Error()
			}
		}
		return m.afterNav()

	case "r":
		m.reload()
		return m.afterNav()
	}

	var cmd tea.Cmd
	m.tileList, cmd = m.tileList.Update(msg)
	return m, cmd
}

func (m appModel) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.tiles.Dialogs().HandleEscape()
		m.mode = modeBrowse
		return m, nil

	case "up", "k":
		if m.menuChoice > 0 {
			m.menuChoice--
		}
		return m, nil

	case "down", "j":
		if m.menuChoice < len(sidebar.Actions)-1 {
			m.menuChoice++
		}
		return m, nil

	case "1", "2", "3", "4":
		m.menuChoice = int(msg.String()[0] - '1')
		return m.submitMenu()

	case "enter":
		return m.submitMenu()
	}
	return m, nil
}

// submitMenu runs the dialog's selection protocol; choosing an option always
// closes the dialog, whatever the action did.
func (m appModel) submitMenu() (tea.Model, tea.Cmd) {
	title := m.menuFor
	action := sidebar.Actions[m.menuChoice]
	idx := m.story.ChapterIndex(title)

	if err := m.tiles.Submit(title, string(action)); err != nil {
		m.status = err.Error()
	}
	m.mode = modeBrowse

	if action == sidebar.ActionEdit && idx >= 0 {
		m.startEdit(idx)
		return m, nil
	}

	m.refreshTiles()
	m.selectTileByTitle(title)
	return m.afterNav()
}

func (m appModel) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.closeForm()
		return m, nil

	case "tab", "shift+tab":
		m.placeFocused = !m.placeFocused
		if m.placeFocused {
			m.titleInput.Blur()
			m.placeInput.Focus()
		} else {
			m.placeInput.Blur()
			m.titleInput.Focus()
		}
		return m, nil

	case "up":
		if m.placeFocused && m.matchIdx > 0 {
			m.matchIdx--
		}
		return m, nil

	case "down":
		if m.placeFocused && m.matchIdx < len(m.placeMatches)-1 {
			m.matchIdx++
		}
		return m, nil

	case "enter":
		// In the location field, enter first accepts the highlighted match;
		// a second enter (no matches left) saves.
		if m.placeFocused && len(m.placeMatches) > 0 {
			m.placeInput.SetValue(m.placeMatches[m.matchIdx].Name)
			m.placeInput.CursorEnd()
			m.placeMatches = nil
			m.matchIdx = 0
			return m, nil
		}
		return m.saveForm()
	}

	var cmd tea.Cmd
	if m.placeFocused {
		before := m.placeInput.Value()
		m.placeInput, cmd = m.placeInput.Update(msg)
		if v := m.placeInput.Value(); v != before {
			m.placeMatches = m.gazetteer.Search(v, 5)
			m.matchIdx = 0
		}
	} else {
		m.titleInput, cmd = m.titleInput.Update(msg)
	}
	return m, cmd
}

func (m appModel) saveForm() (tea.Model, tea.Cmd) {
	title := strings.TrimSpace(m.titleInput.Value())
	if title == "" {
		m.status = "a chapter needs a title"
		return m, nil
	}
	placeName := strings.TrimSpace(m.placeInput.Value())
	place, located := m.gazetteer.Lookup(placeName)

	if m.mode == modeEdit && m.editIdx >= 0 && m.editIdx < len(m.story.Chapters) {
		ch := &m.story.Chapters[m.editIdx]
		ch.Title = title
		if placeName != "" {
			ch.Place = placeName
		}
		if located {
			ch.Place = place.Name
			ch.Coords = place.Coords
		}
	} else {
		ch := model.Chapter{Title: title, Place: placeName}
		if located {
			ch.Place = place.Name
			ch.Coords = place.Coords
		}
		m.story.Chapters = append(m.story.Chapters, ch)
	}

	if err := m.store.Save(m.story); err != nil {
		m.status = err.Error()
		return m, nil
	}

	m.closeForm()
	m.refreshTiles()
	m.selectTileByTitle(title)
	return m.afterNav()
}

func (m appModel) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.mode == modeMenu {
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			z := m.zones.Get(dialogZoneID)
			inside := z != nil && !z.IsZero() && z.InBounds(msg)
			if m.tiles.Dialogs().HandleClick(inside) {
				m.mode = modeBrowse
			}
		}
		return m, nil
	}
	if m.mode != modeBrowse {
		return m, nil
	}

	switch {
	case msg.Button == tea.MouseButtonWheelUp || msg.Button == tea.MouseButtonWheelDown:
		var cmd tea.Cmd
		m.tileList, cmd = m.tileList.Update(msg)
		return m, cmd

	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		if title, ok := m.tileAt(msg); ok {
			m.selectTileByTitle(title)
			*m.dragging = title
			m.dragMoved = false
		}
		return m, nil

	case msg.Action == tea.MouseActionMotion && *m.dragging != "":
		m.dragTo(msg)
		return m, nil

	case msg.Action == tea.MouseActionRelease && *m.dragging != "":
		title := *m.dragging
		*m.dragging = ""
		if m.dragMoved {
			if err := m.editor.Reorder(m.order); err != nil {
				m.status = err.Error()
			}
			m.refreshTiles()
			m.selectTileByTitle(title)
			return m.afterNav()
		}
		// A press-release with no motion is a plain click: open the chapter.
		if err := m.navigator.GoTo(m.story.ChapterIndex(title)); err != nil {
			m.status = err.Error()
		}
		return m.afterNav()
	}
	return m, nil
}

// dragTo recomputes the dragged tile's slot from the pointer row: it lands
// before the nearest tile whose midpoint is still below the pointer, or at
// the end when the pointer is past every midpoint.
func (m *appModel) dragTo(msg tea.MouseMsg) {
	rest := make([]string, 0, len(m.order))
	sibs := make([]sidebar.Bounds, 0, len(m.order))
	for _, t := range m.order {
		if t == *m.dragging {
			continue
		}
		z := m.zones.Get(tileZoneID(t))
		if z == nil || z.IsZero() {
			continue
		}
		rest = append(rest, t)
		sibs = append(sibs, sidebar.Bounds{
			Top:    float64(z.StartY),
			Height: float64(z.EndY - z.StartY + 1),
		})
	}

	next := make([]string, 0, len(m.order))
	if idx, ok := sidebar.InsertBefore(sibs, float64(msg.Y)); ok {
		next = append(next, rest[:idx]...)
		next = append(next, *m.dragging)
		next = append(next, rest[idx:]...)
	} else {
		next = append(next, rest...)
		next = append(next, *m.dragging)
	}

	if orderEqual(next, m.order) {
		return
	}
	m.dragMoved = true
	m.order = next
	m.setTilesFromOrder()
}

func (m *appModel) tileAt(msg tea.MouseMsg) (string, bool) {
	for _, t := range m.order {
		z := m.zones.Get(tileZoneID(t))
		if z != nil && !z.IsZero() && z.InBounds(msg) {
			return t, true
		}
	}
	return "", false
}

func (m appModel) moveSelected(action sidebar.Action) (tea.Model, tea.Cmd) {
	it, ok := m.selectedTile()
	if !ok {
		return m, nil
	}
	if err := m.tiles.Submit(it.title, string(action)); err != nil {
		m.status = err.Error()
	}
	m.refreshTiles()
	m.selectTileByTitle(it.title)
	return m.afterNav()
}

func (m *appModel) openMenu(title string) {
	m.tiles.OpenMenu(title)
	m.menuFor = title
	m.menuChoice = 0
	m.mode = modeMenu
}

func (m *appModel) startAdd() {
	m.mode = modeAdd
	m.editIdx = -1
	m.titleInput.SetValue("")
	m.placeInput.SetValue("")
	m.placeMatches = nil
	m.matchIdx = 0
	m.placeFocused = false
	m.placeInput.Blur()
	m.titleInput.Focus()
}

func (m *appModel) startEdit(idx int) {
	ch := m.story.ChapterAt(idx)
	if ch == nil {
		return
	}
	m.mode = modeEdit
	m.editIdx = idx
	m.titleInput.SetValue(ch.Title)
	m.titleInput.CursorEnd()
	m.placeInput.SetValue(ch.Place)
	m.placeInput.CursorEnd()
	m.placeMatches = nil
	m.matchIdx = 0
	m.placeFocused = false
	m.placeInput.Blur()
	m.titleInput.Focus()
}

func (m *appModel) closeForm() {
	m.mode = modeBrowse
	m.editIdx = -1
	m.titleInput.Blur()
	m.placeInput.Blur()
	m.placeMatches = nil
	m.matchIdx = 0
}

func (m *appModel) reload() {
	fresh, err := m.store.Load()
	if err != nil {
		m.status = err.Error()
		return
	}
	*m.story = *fresh
	m.status = "reloaded"
}

// afterNav refreshes everything a chapter change touches: tiles, selection,
// the rendered surface, and a possible camera flight.
func (m appModel) afterNav() (tea.Model, tea.Cmd) {
	m.navigator.Render()
	m.refreshTiles()
	m.syncSelection()
	return m, m.cameraCmd()
}

func (m *appModel) syncSelection() {
	i := m.navigator.CurrentIndex()
	if ch := m.story.ChapterAt(i); ch != nil {
		m.selectTileByTitle(ch.Title)
	}
}

func orderEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
