package importer

import (
	"strings"
	"testing"
)

const sampleExport = `<!doctype html>
<html><body>
<header data-title="Grand Tour" data-credit="Estate collection">
  <p>Three cities, one summer.</p>
</header>
<section data-title="Venice" data-lat="45.44" data-lon="12.32" data-date="1887-05-02" data-place="Veneto">
  <img src="https://img.example/venice.jpg">
  <p>Arrival by night train.</p>
  <p>The lagoon at dawn.</p>
</section>
<section data-title="Florence" data-lat="43.77" data-lon="11.26" data-credit="Uffizi">
  <p>A week of galleries.</p>
</section>
<section data-title="Broken" data-lat="not-a-number" data-lon="1.0">
  <p>Should be skipped.</p>
</section>
</body></html>`

func TestParse(t *testing.T) {
	story, err := Parse(strings.NewReader(sampleExport))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	if story.Properties.Title != "Grand Tour" {
		t.Fatalf("intro title = %q", story.Properties.Title)
	}
	if story.Properties.Content != "Three cities, one summer." {
		t.Fatalf("intro content = %q", story.Properties.Content)
	}
	if len(story.Chapters) != 2 {
		t.Fatalf("chapters = %d, want 2 (bad coords skipped)", len(story.Chapters))
	}

	venice := story.Chapters[0]
	if venice.Title != "Venice" || venice.Coords.Lat != 45.44 || venice.Coords.Lon != 12.32 {
		t.Fatalf("venice = %+v", venice)
	}
	if venice.ImageURL != "https://img.example/venice.jpg" {
		t.Fatalf("venice image = %q", venice.ImageURL)
	}
	if !strings.Contains(venice.Content, "lagoon at dawn") {
		t.Fatalf("venice content = %q", venice.Content)
	}
	if story.Chapters[1].ImageCredit != "Uffizi" {
		t.Fatalf("florence credit = %q", story.Chapters[1].ImageCredit)
	}
}

func TestParse_NoChapters(t *testing.T) {
	if _, err := Parse(strings.NewReader("<html><body><p>empty</p></body></html>")); err == nil {
		t.Fatalf("expected an error for a page without chapters")
	}
}
