package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"storymap-cli/internal/model"
)

// renderMap plots the chapters around the camera center. Terminal cells are
// roughly twice as tall as wide, so the latitude span is halved per cell to
// keep geography from looking squashed.
func renderMap(story *model.Story, center model.Coordinates, spanLon float64, currentIdx, width, height int) string {
	if width < 10 {
		width = 10
	}
	if height < 4 {
		height = 4
	}
	if spanLon <= 0 {
		spanLon = 40
	}
	spanLat := spanLon * float64(height) / float64(width) * 2

	grid := make([][]rune, height)
	for r := range grid {
		grid[r] = make([]rune, width)
		for c := range grid[r] {
			grid[r][c] = ' '
		}
	}

	type mark struct{ row, col int }
	current := mark{-1, -1}
	for i, ch := range story.Chapters {
		col := int((ch.Coords.Lon - (center.Lon - spanLon/2)) / spanLon * float64(width-1))
		row := int(((center.Lat + spanLat/2) - ch.Coords.Lat) / spanLat * float64(height-1))
		if row < 0 || row >= height || col < 0 || col >= width {
			continue
		}
		glyph := '•'
		if i < 9 {
			glyph = rune('1' + i)
		}
		grid[row][col] = glyph
		if i == currentIdx {
			current = mark{row, col}
		}
	}

	markerStyle := lipgloss.NewStyle().Foreground(colorMarker).Bold(true)
	var b strings.Builder
	for r := 0; r < height; r++ {
		if r > 0 {
			b.WriteByte('\n')
		}
		for c := 0; c < width; c++ {
			if r == current.row && c == current.col {
				b.WriteString(markerStyle.Render(string(grid[r][c])))
				continue
			}
			b.WriteRune(grid[r][c])
		}
	}
	return b.String()
}
