// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package thesaurus

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/pdiddy/thesaurus-engine/pkg/types"
)

// SheetName is the worksheet that holds the thesaurus rows.
const SheetName = "Thesaurus"

// WriteXLSX writes the same rows as Export to a spreadsheet at path, for
// researchers who curate the thesaurus in a spreadsheet before importing it.
func WriteXLSX(path string, records []types.TermRecord) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		return fmt.Errorf("naming sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#D9E1F2"}, Pattern: 1},
	})
	if err != nil {
		return fmt.Errorf("creating header style: %w", err)
	}

	for i, row := range Rows(records) {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		values := make([]interface{}, len(row))
		for j, v := range row {
			values[j] = v
		}
		if err := f.SetSheetRow(SheetName, cell, &values); err != nil {
			return fmt.Errorf("writing row %d: %w", i+1, err)
		}
	}

	if err := f.SetCellStyle(SheetName, "A1", "B1", headerStyle); err != nil {
		return fmt.Errorf("styling header: %w", err)
	}
	if err := f.SetColWidth(SheetName, "A", "B", 40); err != nil {
		return fmt.Errorf("setting column width: %w", err)
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("saving spreadsheet: %w", err)
	}
	return nil
}

// ReadXLSX returns the rows of a thesaurus spreadsheet written by WriteXLSX.
func ReadXLSX(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening spreadsheet: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(SheetName)
	if err != nil {
		return nil, fmt.Errorf("reading rows: %w", err)
	}
	return rows, nil
}
