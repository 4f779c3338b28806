package tui

import (
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"storymap-cli/internal/geocode"
	"storymap-cli/internal/model"
	"storymap-cli/internal/nav"
	"storymap-cli/internal/sidebar"
	"storymap-cli/internal/store"
)

type appModel struct {
	store     store.Store
	story     *model.Story
	surface   *uiSurface
	camera    *flyCamera
	navigator *nav.Navigator
	editor    *sidebar.StoryEditor
	tiles     *sidebar.Manager
	gazetteer *geocode.Gazetteer
	zones     *zone.Manager

	width  int
	height int

	mode     mode
	tileList list.Model
	// order is the visual tile order; during a drag it is the authoritative
	// order and is committed to the story on drop.
	order []string
	// dragging is a shared cell, not a plain field: bubbletea passes the
	// model by value, and the list delegate needs to observe drag state set
	// by later Update calls.
	dragging   *string
	dragMoved  bool
	menuFor    string
	menuChoice int
	editIdx    int

	titleInput   textinput.Model
	placeInput   textinput.Model
	placeFocused bool
	placeMatches []geocode.Place
	matchIdx     int

	status string
}

func newAppModel(st store.Store, story *model.Story, params store.Params) appModel {
	surface := newUISurface()
	camera := newFlyCamera(surface, story)
	m := appModel{
		store:     st,
		story:     story,
		surface:   surface,
		camera:    camera,
		navigator: nav.New(story, params, surface, camera),
		gazetteer: geocode.Default(),
		zones:     zone.New(),
		editIdx:   -1,
	}
	m.editor = &sidebar.StoryEditor{Story: story, Save: st.Save}
	m.tiles = sidebar.NewManager(story, m.editor)

	m.dragging = new(string)
	m.tileList = newTileList(nil, newTileDelegate(m.zones, m.dragging))

	m.titleInput = textinput.New()
	m.titleInput.Placeholder = "Title"
	m.titleInput.CharLimit = 120
	m.titleInput.Width = 32

	m.placeInput = textinput.New()
	m.placeInput.Placeholder = "Place"
	m.placeInput.CharLimit = 80
	m.placeInput.Width = 32

	m.navigator.Render()
	m.refreshTiles()
	return m
}

func (m appModel) Init() tea.Cmd {
	// The initial render already requested a flight to the current chapter
	// (or the overview), so the first frame animates into place.
	return m.cameraCmd()
}

// refreshTiles rebuilds the sidebar from the story's current chapter order.
func (m *appModel) refreshTiles() {
	cur := m.navigator.CurrentIndex()
	m.order = m.order[:0]
	items := make([]list.Item, 0, len(m.story.Chapters))
	for _, t := range m.tiles.Tiles() {
		m.order = append(m.order, t.Title)
		items = append(items, tileItem{title: t.Title, index: t.Index, current: t.Index == cur})
	}
	m.tileList.SetItems(items)
}

// setTilesFromOrder re-renders the list in the given (mid-drag) order.
func (m *appModel) setTilesFromOrder() {
	cur := m.navigator.CurrentIndex()
	items := make([]list.Item, 0, len(m.order))
	for i, title := range m.order {
		items = append(items, tileItem{title: title, index: i, current: m.story.ChapterIndex(title) == cur})
	}
	m.tileList.SetItems(items)
}

func (m *appModel) selectedTile() (tileItem, bool) {
	it, ok := m.tileList.SelectedItem().(tileItem)
	return it, ok
}

func (m *appModel) selectTileByTitle(title string) {
	for i, item := range m.tileList.Items() {
		if it, ok := item.(tileItem); ok && it.title == title {
			m.tileList.Select(i)
			return
		}
	}
}

// Run starts the interactive TUI on the given workspace.
func Run(st store.Store) error {
	story, err := st.Load()
	if err != nil {
		return err
	}
	applyColorProfilePreference()

	m := newAppModel(st, story, st.Params())
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err = p.Run()
	return err
}
