package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"storymap-cli/internal/store"
)

func runCLI(t *testing.T, dir string, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(append([]string{"--dir", dir}, args...))
	err := cmd.Execute()
	return buf.String(), err
}

func mustRun(t *testing.T, dir string, args ...string) string {
	t.Helper()
	out, err := runCLI(t, dir, args...)
	if err != nil {
		t.Fatalf("storymap %s: %v\n%s", strings.Join(args, " "), err, out)
	}
	return out
}

func TestInitAddListFlow(t *testing.T) {
	dir := t.TempDir()

	mustRun(t, dir, "init", "--title", "Silk Road")
	mustRun(t, dir, "chapters", "add", "Xi'an", "--lat", "34.34", "--lon", "108.94")
	mustRun(t, dir, "chapters", "add", "Samarkand", "--place", "Samarkand")

	out := mustRun(t, dir, "chapters", "list")
	if !strings.Contains(out, "1. Xi'an") || !strings.Contains(out, "2. Samarkand") {
		t.Fatalf("list output:\n%s", out)
	}

	// --place should have resolved coordinates through the gazetteer.
	show := mustRun(t, dir, "chapters", "show", "Samarkand")
	if !strings.Contains(show, "39.65") {
		t.Fatalf("show output missing resolved latitude:\n%s", show)
	}
}

func TestInitRefusesExistingStory(t *testing.T) {
	dir := t.TempDir()
	mustRun(t, dir, "init")
	if _, err := runCLI(t, dir, "init"); err == nil {
		t.Fatal("second init should fail")
	}
}

func TestMoveAndRemovePersist(t *testing.T) {
	dir := t.TempDir()
	mustRun(t, dir, "init")
	mustRun(t, dir, "chapters", "add", "A")
	mustRun(t, dir, "chapters", "add", "B")
	mustRun(t, dir, "chapters", "add", "C")

	mustRun(t, dir, "chapters", "move", "C", "1")
	story, err := store.Store{Dir: dir}.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if story.Chapters[0].Title != "C" {
		t.Fatalf("order after move = %+v", story.Chapters)
	}

	mustRun(t, dir, "chapters", "remove", "B")
	story, err = store.Store{Dir: dir}.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(story.Chapters) != 2 {
		t.Fatalf("chapters after remove = %+v", story.Chapters)
	}
}

func TestGotoAndCurrentShareState(t *testing.T) {
	dir := t.TempDir()
	mustRun(t, dir, "init")
	mustRun(t, dir, "chapters", "add", "A")
	mustRun(t, dir, "chapters", "add", "B")

	if out := mustRun(t, dir, "chapters", "current"); !strings.Contains(out, "intro") {
		t.Fatalf("fresh workspace should be on the intro, got %q", out)
	}
	mustRun(t, dir, "chapters", "goto", "B")
	if out := mustRun(t, dir, "chapters", "current"); !strings.Contains(out, "2. B") {
		t.Fatalf("current after goto = %q", out)
	}
	mustRun(t, dir, "chapters", "goto", "intro")
	if out := mustRun(t, dir, "chapters", "current"); !strings.Contains(out, "intro") {
		t.Fatalf("current after goto intro = %q", out)
	}
}

func TestExportWritesSpreadsheet(t *testing.T) {
	dir := t.TempDir()
	mustRun(t, dir, "init")
	mustRun(t, dir, "chapters", "add", "A", "--lat", "1", "--lon", "2")

	target := filepath.Join(t.TempDir(), "out.xlsx")
	mustRun(t, dir, "export", target)
	if _, err := os.Stat(target); err != nil {
		t.Fatalf("export file: %v", err)
	}
}

func TestImportFromHTML(t *testing.T) {
	src := filepath.Join(t.TempDir(), "story.html")
	html := `<html><body>
<header data-title="Voyage"></header>
<section data-title="First" data-lat="10.5" data-lon="20.25"><p>hello</p></section>
</body></html>`
	if err := os.WriteFile(src, []byte(html), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	dir := t.TempDir()
	mustRun(t, dir, "import", src)
	story, err := store.Store{Dir: dir}.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(story.Chapters) != 1 || story.Chapters[0].Title != "First" {
		t.Fatalf("imported story = %+v", story)
	}
	if story.Properties.Title != "Voyage" {
		t.Fatalf("story title = %q", story.Properties.Title)
	}

	if _, err := runCLI(t, dir, "import", src); err == nil {
		t.Fatal("import over an existing story should require --force")
	}
	mustRun(t, dir, "import", src, "--force")
}
