package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
	zone "github.com/lrstanley/bubblezone"
)

// tileItem is one sidebar entry backing a chapter tile.
type tileItem struct {
	title   string
	index   int
	current bool
}

func (i tileItem) FilterValue() string { return i.title }
func (i tileItem) Title() string {
	label := fmt.Sprintf("%d. %s", i.index+1, i.title)
	if i.current {
		return label + " ●"
	}
	return label
}

func tileZoneID(title string) string { return "tile/" + title }

// tileDelegate renders one-line tiles, zone-marked so mouse clicks and drags
// can be resolved back to a tile.
type tileDelegate struct {
	zones    *zone.Manager
	dragging *string

	normal   lipgloss.Style
	selected lipgloss.Style
	dragged  lipgloss.Style
}

func newTileDelegate(zones *zone.Manager, dragging *string) tileDelegate {
	return tileDelegate{
		zones:    zones,
		dragging: dragging,
		normal:   lipgloss.NewStyle(),
		selected: lipgloss.NewStyle().
			Foreground(colorSelectedFg).
			Background(colorSelectedBg).
			Bold(true),
		dragged: lipgloss.NewStyle().Foreground(colorAccent).Bold(true),
	}
}

func (d tileDelegate) Height() int                             { return 1 }
func (d tileDelegate) Spacing() int                            { return 0 }
func (d tileDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d tileDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	contentW := m.Width()
	if contentW < 4 {
		fmt.Fprint(w, "")
		return
	}

	it, ok := item.(tileItem)
	if !ok {
		fmt.Fprint(w, fmt.Sprint(item))
		return
	}

	style := d.normal
	prefix := "  "
	if d.dragging != nil && *d.dragging == it.title {
		style = d.dragged
		prefix = "≡ "
	} else if index == m.Index() {
		style = d.selected
		prefix = "> "
	}

	line := prefix + it.Title()
	lineW := xansi.StringWidth(line)
	if lineW < contentW {
		line += strings.Repeat(" ", contentW-lineW)
	} else if lineW > contentW {
		line = xansi.Cut(line, 0, contentW)
	}

	fmt.Fprint(w, d.zones.Mark(tileZoneID(it.title), style.Render(line)))
}

func newTileList(items []list.Item, delegate list.ItemDelegate) list.Model {
	l := list.New(items, delegate, 0, 0)
	l.Title = "Chapters"
	// The app renders its own header/footer; keep list chrome minimal.
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetShowPagination(false)
	// ESC is "close dialog/back" here, never quit.
	l.SetFilteringEnabled(false)
	l.KeyMap.Quit.SetKeys("q")
	return l
}
