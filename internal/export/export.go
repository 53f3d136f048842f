// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package export writes formatted bibliographies to spreadsheet files.
package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/pdiddy/citation-engine/internal/format"
	"github.com/pdiddy/citation-engine/pkg/types"
)

// DefaultSheet is the worksheet name used when none is configured.
const DefaultSheet = "Citations"

// header is the first row of the sheet.
var header = []string{"#", "Style", "Type", "Author", "Title", "Year", "Citation"}

// colWidths are the column widths in characters, parallel to header.
var colWidths = []float64{5, 10, 18, 28, 40, 8, 90}

// Row builds the spreadsheet row for rec: its position, identifying
// fields, and the formatted citation.
func Row(n int, rec types.Record) []any {
	author := rec.Author.LastName
	if rec.Author.FirstName != "" && author != "" {
		author += ", " + rec.Author.FirstName
	}
	return []any{
		n,
		string(rec.Style),
		string(rec.DocumentType()),
		author,
		rec.Title,
		rec.Year,
		format.Format(rec),
	}
}

// WriteXLSX formats recs and writes them to an XLSX workbook at path, one
// record per row under a bold header row.
func WriteXLSX(path, sheet string, recs []types.Record) error {
	if sheet == "" {
		sheet = DefaultSheet
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		return fmt.Errorf("naming sheet: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("creating header style: %w", err)
	}

	if err := setRow(f, sheet, 1, toAny(header)); err != nil {
		return err
	}
	last, _ := excelize.CoordinatesToCellName(len(header), 1)
	if err := f.SetCellStyle(sheet, "A1", last, bold); err != nil {
		return fmt.Errorf("styling header: %w", err)
	}

	for i, w := range colWidths {
		col, _ := excelize.ColumnNumberToName(i + 1)
		if err := f.SetColWidth(sheet, col, col, w); err != nil {
			return fmt.Errorf("setting column width: %w", err)
		}
	}

	for i, rec := range recs {
		if err := setRow(f, sheet, i+2, Row(i+1, rec)); err != nil {
			return err
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("saving workbook: %w", err)
	}
	return nil
}

func setRow(f *excelize.File, sheet string, row int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return fmt.Errorf("addressing row %d: %w", row, err)
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("writing row %d: %w", row, err)
	}
	return nil
}

func toAny(ss []string) []any {
	out := make([]any, len(ss))
	for i, s := range ss {
		out[i] = s
	}
	return out
}
