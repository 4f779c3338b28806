package model

import "strings"

// Coordinates is a WGS84 point.
type Coordinates struct {
	Lat float64 `json:"lat" yaml:"lat"`
	Lon float64 `json:"lon" yaml:"lon"`
}

// Chapter is one narrative unit of a story map. Title doubles as the lookup
// key: titles must be unique within a story, first match wins.
type Chapter struct {
	Title       string      `json:"title" yaml:"title"`
	Coords      Coordinates `json:"coords" yaml:"coords"`
	Content     string      `json:"content,omitempty" yaml:"content,omitempty"`
	Date        string      `json:"date,omitempty" yaml:"date,omitempty"`
	Place       string      `json:"place,omitempty" yaml:"place,omitempty"`
	ImageURL    string      `json:"imageUrl,omitempty" yaml:"imageUrl,omitempty"`
	ImageCredit string      `json:"imageCredit,omitempty" yaml:"imageCredit,omitempty"`
}

// Story is an introduction (Properties) plus an ordered chapter sequence.
type Story struct {
	Properties Chapter   `json:"properties" yaml:"properties"`
	Chapters   []Chapter `json:"chapters" yaml:"chapters"`
}

// ChapterIndex returns the position of the chapter with the given title,
// or -1 if the title is empty or matches no chapter.
func (s *Story) ChapterIndex(title string) int {
	title = strings.TrimSpace(title)
	if title == "" {
		return -1
	}
	for i := range s.Chapters {
		if s.Chapters[i].Title == title {
			return i
		}
	}
	return -1
}

// ChapterAt returns the chapter at index, or nil when out of range.
func (s *Story) ChapterAt(index int) *Chapter {
	if index < 0 || index >= len(s.Chapters) {
		return nil
	}
	return &s.Chapters[index]
}

// MoveChapter moves the chapter at from so it ends up at index to
// (indexes in the post-removal sequence). Out-of-range moves are no-ops.
func (s *Story) MoveChapter(from, to int) bool {
	if from < 0 || from >= len(s.Chapters) {
		return false
	}
	if to < 0 {
		to = 0
	}
	if to > len(s.Chapters)-1 {
		to = len(s.Chapters) - 1
	}
	if from == to {
		return false
	}
	ch := s.Chapters[from]
	rest := append([]Chapter{}, s.Chapters[:from]...)
	rest = append(rest, s.Chapters[from+1:]...)
	out := append([]Chapter{}, rest[:to]...)
	out = append(out, ch)
	out = append(out, rest[to:]...)
	s.Chapters = out
	return true
}

// RemoveChapter deletes the chapter at index. Out-of-range is a no-op.
func (s *Story) RemoveChapter(index int) bool {
	if index < 0 || index >= len(s.Chapters) {
		return false
	}
	s.Chapters = append(s.Chapters[:index], s.Chapters[index+1:]...)
	return true
}

// Reorder rearranges chapters to match the given title order. Titles that
// match no chapter are ignored; chapters absent from the order keep their
// relative position at the end. Returns false when nothing changed.
func (s *Story) Reorder(titles []string) bool {
	seen := map[int]bool{}
	out := make([]Chapter, 0, len(s.Chapters))
	for _, t := range titles {
		idx := s.ChapterIndex(t)
		if idx < 0 || seen[idx] {
			continue
		}
		seen[idx] = true
		out = append(out, s.Chapters[idx])
	}
	for i := range s.Chapters {
		if !seen[i] {
			out = append(out, s.Chapters[i])
		}
	}
	changed := false
	for i := range out {
		if out[i].Title != s.Chapters[i].Title {
			changed = true
			break
		}
	}
	if !changed {
		return false
	}
	s.Chapters = out
	return true
}

// Overview is the camera target for intro mode: the story's own coordinates
// when set, otherwise the centroid of all chapters.
func (s *Story) Overview() Coordinates {
	zero := Coordinates{}
	if s.Properties.Coords != zero || len(s.Chapters) == 0 {
		return s.Properties.Coords
	}
	var c Coordinates
	for i := range s.Chapters {
		c.Lat += s.Chapters[i].Coords.Lat
		c.Lon += s.Chapters[i].Coords.Lon
	}
	c.Lat /= float64(len(s.Chapters))
	c.Lon /= float64(len(s.Chapters))
	return c
}
