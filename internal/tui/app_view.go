package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"storymap-cli/internal/nav"
)

const (
	headerRows = 2
	footerRows = 2
)

func (m appModel) sidebarWidth() int {
	w := m.width / 3
	if w < 20 {
		w = 20
	}
	if w > 32 {
		w = 32
	}
	return w
}

func (m appModel) bodyHeight() int {
	h := m.height - headerRows - footerRows
	if h < 4 {
		h = 4
	}
	return h
}

func (m appModel) View() string {
	if m.width == 0 {
		return "loading..."
	}

	header := m.renderHeader()
	body := m.renderBody()
	footer := m.renderFooter()
	out := strings.Join([]string{header, body, footer}, "\n")
	// Scan registers every marked zone's on-screen position for mouse lookup.
	return m.zones.Scan(out)
}

func (m appModel) renderHeader() string {
	title := m.surface.text[nav.RegionTitle]
	if title == "" {
		title = "storymap"
	}
	counter := m.surface.text[nav.RegionCounter]

	icon := "▶"
	if m.surface.icons[nav.ControlAutoplay] == nav.IconPause {
		icon = "⏸"
	}
	iconBox := lipgloss.NewStyle().Background(colorControlBg).Render(" " + icon + " ")

	left := styleHeader().Render(title)
	right := styleMuted().Render(counter) + " " + iconBox
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right + "\n"
}

func (m appModel) renderBody() string {
	bodyH := m.bodyHeight()
	sideW := m.sidebarWidth()
	rightW := m.width - sideW - 1
	if rightW < 20 {
		rightW = 20
	}

	sidebar := lipgloss.NewStyle().
		Width(sideW).
		Height(bodyH).
		Render(m.tileList.View())

	mapH := bodyH / 2
	if mapH < 4 {
		mapH = 4
	}
	mapPane := renderMap(m.story, m.camera.center, m.camera.span,
		m.navigator.CurrentIndex(), rightW, mapH)

	detail := m.renderDetail(rightW, bodyH-mapH)

	right := lipgloss.JoinVertical(lipgloss.Left, mapPane, detail)
	body := lipgloss.JoinHorizontal(lipgloss.Top,
		sidebar,
		lipgloss.NewStyle().Width(1).Render(" "),
		right,
	)

	switch m.mode {
	case modeMenu:
		return m.overlay(body, m.renderActionMenu(m.menuFor, m.menuChoice), bodyH)
	case modeAdd, modeEdit:
		return m.overlay(body, m.renderChapterForm(), bodyH)
	}
	return body
}

// overlay centers the modal over the body. Everything outside the modal box
// is "outside the dialog" for click dismissal.
func (m appModel) overlay(_ string, modal string, bodyH int) string {
	return lipgloss.Place(m.width, bodyH, lipgloss.Center, lipgloss.Center, modal)
}

func (m appModel) renderDetail(width, height int) string {
	if height < 2 {
		height = 2
	}

	var lines []string
	heading := m.surface.text[nav.RegionHeading]
	if heading != "" {
		lines = append(lines, styleHeader().Render(heading))
	}

	var meta []string
	if d := m.surface.text[nav.RegionDate]; d != "" {
		meta = append(meta, d)
	}
	if p := m.surface.text[nav.RegionPlace]; p != "" {
		meta = append(meta, p)
	}
	if len(meta) > 0 {
		lines = append(lines, styleMuted().Render(strings.Join(meta, " · ")))
	}

	if content := m.surface.text[nav.RegionContent]; content != "" {
		lines = append(lines, renderMarkdown(content, width))
	}
	if img := m.surface.images[nav.RegionHero]; img != "" {
		lines = append(lines, styleMuted().Render("[image] "+img))
	}
	if attr := m.surface.text[nav.RegionAttribution]; attr != "" {
		lines = append(lines, styleMuted().Render(attr))
	}

	out := strings.Join(lines, "\n")
	return lipgloss.NewStyle().Width(width).MaxHeight(height).Render(out)
}

func (m appModel) renderFooter() string {
	var help string
	switch m.mode {
	case modeMenu:
		help = "↑/↓ choose · enter apply · esc close"
	case modeAdd, modeEdit:
		help = "tab field · ↑/↓ match · enter accept/save · esc cancel"
	default:
		back := "← prev"
		fwd := "→ next"
		if !m.surface.enabled[nav.ControlBackward] {
			back = styleMuted().Render(back)
		}
		if !m.surface.enabled[nav.ControlForward] {
			fwd = styleMuted().Render(fwd)
		}
		help = back + " · " + fwd + " · space autoplay · enter open · a add · e menu · J/K move · x delete · q quit"
	}

	line := styleMuted().Render(help)
	if m.status != "" {
		line += "  " + m.status
	}
	return "\n" + line
}
