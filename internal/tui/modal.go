package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"storymap-cli/internal/sidebar"
)

const dialogZoneID = "dialog"

var actionLabels = map[sidebar.Action]string{
	sidebar.ActionMoveUp:   "Move up",
	sidebar.ActionMoveDown: "Move down",
	sidebar.ActionEdit:     "Edit",
	sidebar.ActionDelete:   "Delete",
}

// renderActionMenu draws one tile's exclusive-choice menu. Choosing an
// option submits immediately; there is no separate confirm control.
func (m appModel) renderActionMenu(title string, choice int) string {
	var rows []string
	for i, a := range sidebar.Actions {
		radio := "( )"
		st := lipgloss.NewStyle()
		if i == choice {
			radio = "(•)"
			st = st.Foreground(colorSelectedFg).Background(colorSelectedBg).Bold(true)
		}
		rows = append(rows, st.Render(radio+" "+actionLabels[a]))
	}

	help := styleMuted().Render("enter: apply   esc: close")
	content := strings.Join([]string{
		styleHeader().Render(title),
		"",
		strings.Join(rows, "\n"),
		"",
		help,
	}, "\n")

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorAccent).
		Padding(0, 2).
		Render(content)
	return m.zones.Mark(dialogZoneID, box)
}

// renderChapterForm draws the add/edit form with the location autocomplete.
func (m appModel) renderChapterForm() string {
	header := "New chapter"
	if m.mode == modeEdit {
		header = "Edit chapter"
	}

	var matches []string
	for i, p := range m.placeMatches {
		st := lipgloss.NewStyle()
		cursor := "  "
		if i == m.matchIdx {
			st = st.Foreground(colorSelectedFg).Background(colorSelectedBg)
			cursor = "> "
		}
		matches = append(matches, st.Render(cursor+p.Name))
	}
	matchBlock := strings.Join(matches, "\n")
	if matchBlock == "" {
		matchBlock = styleMuted().Render("(type a place to search)")
	}

	content := strings.Join([]string{
		styleHeader().Render(header),
		"",
		"Title:    " + m.titleInput.View(),
		"Location: " + m.placeInput.View(),
		matchBlock,
		"",
		styleMuted().Render("tab: switch field   enter: save   esc: cancel"),
	}, "\n")

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorAccent).
		Padding(0, 2).
		Render(content)
}
