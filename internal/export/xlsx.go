package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"storymap-cli/internal/model"
)

const sheetName = "Chapters"

// WriteXLSX writes the chapter table to an .xlsx workbook at path.
func WriteXLSX(story *model.Story, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	idx, err := f.NewSheet(sheetName)
	if err != nil {
		return err
	}
	f.SetActiveSheet(idx)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return err
	}

	headers := []string{"#", "Title", "Date", "Place", "Latitude", "Longitude", "Image", "Image credit"}
	for col, h := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheetName, cell, h); err != nil {
			return err
		}
	}

	for row, ch := range story.Chapters {
		values := []any{
			row + 1,
			ch.Title,
			ch.Date,
			ch.Place,
			ch.Coords.Lat,
			ch.Coords.Lon,
			ch.ImageURL,
			ch.ImageCredit,
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheetName, cell, v); err != nil {
				return err
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
