package importer

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"storymap-cli/internal/model"
)

// Parse reads an exported story-map page and rebuilds the story from it.
//
// The export format marks the intro with `<header data-title ...>` and each
// chapter with `<section data-title data-lat data-lon ...>`; content is the
// element's paragraph text, the hero image an `img[src]` child, the credit a
// `data-credit` attribute. Chapters without usable coordinates are skipped.
func Parse(r io.Reader) (*model.Story, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	story := &model.Story{}
	if header := doc.Find("header[data-title]").First(); header.Length() > 0 {
		story.Properties = chapterFromSelection(header)
	}

	doc.Find("section[data-title]").Each(func(_ int, sel *goquery.Selection) {
		ch := chapterFromSelection(sel)
		if ch.Title == "" {
			return
		}
		lat, latOK := parseFloatAttr(sel, "data-lat")
		lon, lonOK := parseFloatAttr(sel, "data-lon")
		if !latOK || !lonOK {
			return
		}
		ch.Coords = model.Coordinates{Lat: lat, Lon: lon}
		story.Chapters = append(story.Chapters, ch)
	})

	if len(story.Chapters) == 0 {
		return nil, fmt.Errorf("no chapters found in document")
	}
	return story, nil
}

// ParseFile is Parse over a file on disk.
func ParseFile(path string) (*model.Story, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f)
}

func chapterFromSelection(sel *goquery.Selection) model.Chapter {
	ch := model.Chapter{
		Title:       strings.TrimSpace(sel.AttrOr("data-title", "")),
		Date:        strings.TrimSpace(sel.AttrOr("data-date", "")),
		Place:       strings.TrimSpace(sel.AttrOr("data-place", "")),
		ImageCredit: strings.TrimSpace(sel.AttrOr("data-credit", "")),
	}
	if img := sel.Find("img").First(); img.Length() > 0 {
		ch.ImageURL = strings.TrimSpace(img.AttrOr("src", ""))
	}
	var paras []string
	sel.Find("p").Each(func(_ int, p *goquery.Selection) {
		if t := strings.TrimSpace(p.Text()); t != "" {
			paras = append(paras, t)
		}
	})
	ch.Content = strings.Join(paras, "\n\n")
	return ch
}

func parseFloatAttr(sel *goquery.Selection, attr string) (float64, bool) {
	raw, ok := sel.Attr(attr)
	if !ok {
		return 0, false
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
