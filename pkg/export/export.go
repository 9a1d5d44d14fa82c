// Package export writes the cleaned passenger table to disk.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/xuri/excelize/v2"

	"github.com/talla-sadhana/PRODIGY-DS-02/pkg/core"
)

const SheetName = "passengers"

// File writes df to path; the extension picks the format (.xlsx or .csv).
func File(path string, df dataframe.DataFrame) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		return XLSX(path, df)
	case ".csv":
		out, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("export: %w", err)
		}
		if err := CSV(out, df); err != nil {
			out.Close()
			return err
		}
		return out.Close()
	}
	return fmt.Errorf("export: unsupported file type %q", filepath.Ext(path))
}

// CSV writes a header row and one record per row. Nulls are empty cells.
func CSV(w io.Writer, df dataframe.DataFrame) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(df.Names()); err != nil {
		return fmt.Errorf("export csv: %w", err)
	}
	cols := columns(df)
	rec := make([]string, len(cols))
	for r := range df.Nrow() {
		for i, c := range cols {
			rec[i] = core.Label(c.Elem(r))
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("export csv: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("export csv: %w", err)
	}
	return nil
}

func columns(df dataframe.DataFrame) []series.Series {
	cols := make([]series.Series, df.Ncol())
	for i, n := range df.Names() {
		cols[i] = df.Col(n)
	}
	return cols
}

// XLSX writes df to a single-sheet workbook. Numeric columns are stored as
// numbers, nulls as blank cells.
func XLSX(path string, df dataframe.DataFrame) error {
	book := excelize.NewFile()
	defer book.Close()

	idx, err := book.NewSheet(SheetName)
	if err != nil {
		return fmt.Errorf("export xlsx: %w", err)
	}
	book.SetActiveSheet(idx)
	if err := book.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("export xlsx: %w", err)
	}

	header := make([]interface{}, df.Ncol())
	for i, n := range df.Names() {
		header[i] = n
	}
	if err := book.SetSheetRow(SheetName, "A1", &header); err != nil {
		return fmt.Errorf("export xlsx: %w", err)
	}

	cols := columns(df)
	for r := range df.Nrow() {
		row := make([]interface{}, len(cols))
		for i, c := range cols {
			e := c.Elem(r)
			switch {
			case core.IsNull(e):
				row[i] = nil
			case core.KindOf(e.Type()) == core.Numeric:
				row[i] = e.Float()
			default:
				row[i] = e.String()
			}
		}
		cell, err := excelize.CoordinatesToCellName(1, r+2)
		if err != nil {
			return fmt.Errorf("export xlsx: %w", err)
		}
		if err := book.SetSheetRow(SheetName, cell, &row); err != nil {
			return fmt.Errorf("export xlsx: %w", err)
		}
	}

	if err := book.SaveAs(path); err != nil {
		return fmt.Errorf("export xlsx: %w", err)
	}
	return nil
}
