package store

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"storymap-cli/internal/model"
)

func testStory() *model.Story {
	return &model.Story{
		Properties: model.Chapter{Title: "Expedition", ImageCredit: "Museum"},
		Chapters: []model.Chapter{
			{Title: "Basecamp", Coords: model.Coordinates{Lat: 27.98, Lon: 86.92}, Date: "1953-03-10"},
			{Title: "Summit", Coords: model.Coordinates{Lat: 27.99, Lon: 86.93}},
		},
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := Store{Dir: t.TempDir()}
	if err := s.Save(testStory()); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := s.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.Properties.Title != "Expedition" {
		t.Fatalf("properties title = %q", got.Properties.Title)
	}
	if len(got.Chapters) != 2 || got.Chapters[1].Title != "Summit" {
		t.Fatalf("unexpected chapters: %+v", got.Chapters)
	}
}

func TestLoad_MissingStory(t *testing.T) {
	s := Store{Dir: t.TempDir()}
	if _, err := s.Load(); !errors.Is(err, ErrNoStory) {
		t.Fatalf("expected ErrNoStory, got %v", err)
	}
}

func TestDiscoverDir(t *testing.T) {
	root := t.TempDir()
	ws := filepath.Join(root, ".storymap")
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(ws, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}
	found, ok := DiscoverDir(nested)
	if !ok || found != ws {
		t.Fatalf("DiscoverDir = %q, %v; want %q", found, ok, ws)
	}
	if _, ok := DiscoverDir(string(os.PathSeparator)); ok {
		t.Fatalf("expected no workspace at filesystem root")
	}
}

func TestSQLiteParams_SetGetDelete(t *testing.T) {
	s := Store{Dir: t.TempDir()}
	p := s.Params()

	if err := p.Set(ParamChapter, "Basecamp"); err != nil {
		t.Fatalf("set: %v", err)
	}
	got, err := p.Get()
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got[ParamChapter] != "Basecamp" {
		t.Fatalf("params = %v", got)
	}

	// Overwrite, then delete.
	if err := p.Set(ParamChapter, "Summit"); err != nil {
		t.Fatalf("set: %v", err)
	}
	got, _ = p.Get()
	if got[ParamChapter] != "Summit" {
		t.Fatalf("params after overwrite = %v", got)
	}
	if err := p.Delete(ParamChapter); err != nil {
		t.Fatalf("delete: %v", err)
	}
	got, _ = p.Get()
	if _, ok := got[ParamChapter]; ok {
		t.Fatalf("expected chapter param gone, got %v", got)
	}
	// Deleting an absent key is harmless.
	if err := p.Delete(ParamChapter); err != nil {
		t.Fatalf("repeat delete: %v", err)
	}
}
