package export

import (
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	"storymap-cli/internal/model"
)

func TestWriteXLSX(t *testing.T) {
	story := &model.Story{
		Chapters: []model.Chapter{
			{Title: "Venice", Date: "1887-05-02", Place: "Veneto",
				Coords: model.Coordinates{Lat: 45.44, Lon: 12.32}},
			{Title: "Florence", Coords: model.Coordinates{Lat: 43.77, Lon: 11.26},
				ImageCredit: "Uffizi"},
		},
	}
	path := filepath.Join(t.TempDir(), "chapters.xlsx")
	if err := WriteXLSX(story, path); err != nil {
		t.Fatalf("write: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer f.Close()

	got, err := f.GetCellValue(sheetName, "B2")
	if err != nil {
		t.Fatal(err)
	}
	if got != "Venice" {
		t.Fatalf("B2 = %q", got)
	}
	got, _ = f.GetCellValue(sheetName, "H3")
	if got != "Uffizi" {
		t.Fatalf("H3 = %q", got)
	}
	rows, err := f.GetRows(sheetName)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 3 {
		t.Fatalf("rows = %d, want header + 2 chapters", len(rows))
	}
}
