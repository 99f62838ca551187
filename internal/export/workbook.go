// Package export writes the dashboard tables as a spreadsheet and a
// markdown summary.
package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"energydash/internal/energy"
)

// Sheet names, one per finished table.
const (
	SheetRPRatio       = "RP_Ratio_Map"
	SheetHydrogen      = "Hydrogen"
	SheetGasReserves   = "Gas_Reserves"
	SheetProductionMap = "Production_Map"
)

// WriteWorkbook encodes the dataset as an .xlsx workbook.
func WriteWorkbook(w io.Writer, ds *energy.Dataset) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetRPRatio); err != nil {
		return fmt.Errorf("failed to rename sheet: %w", err)
	}
	for _, name := range []string{SheetHydrogen, SheetGasReserves, SheetProductionMap} {
		if _, err := f.NewSheet(name); err != nil {
			return fmt.Errorf("failed to create sheet %s: %w", name, err)
		}
	}

	if err := writeTable(f, SheetRPRatio, []string{"iso_alpha", "R/P Ratio"}, countryRows(ds.RPMap)); err != nil {
		return err
	}

	hydrogen := make([][]interface{}, 0, len(ds.Hydrogen))
	for _, r := range ds.Hydrogen {
		hydrogen = append(hydrogen, []interface{}{r.Region, r.Blue, r.Green, r.Total})
	}
	if err := writeTable(f, SheetHydrogen, []string{"Region", "Blue", "Green", "Total"}, hydrogen); err != nil {
		return err
	}

	reserves := make([][]interface{}, 0, len(ds.GasReserves))
	for _, p := range ds.GasReserves {
		reserves = append(reserves, []interface{}{p.Year, p.Reserves})
	}
	if err := writeTable(f, SheetGasReserves, []string{"Year", "Reserves"}, reserves); err != nil {
		return err
	}

	if err := writeTable(f, SheetProductionMap, []string{"iso_alpha", "Production"}, countryRows(ds.ProductionMap)); err != nil {
		return err
	}

	f.SetActiveSheet(0)
	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func countryRows(rows []energy.CountryMetricRow) [][]interface{} {
	out := make([][]interface{}, 0, len(rows))
	for _, r := range rows {
		out = append(out, []interface{}{r.ISOAlpha, r.Value})
	}
	return out
}

// writeTable puts a bold header in row 1 and the rows below it.
func writeTable(f *excelize.File, sheet string, headers []string, rows [][]interface{}) error {
	header, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return fmt.Errorf("%s!%s: %w", sheet, cell, err)
		}
		col, _ := excelize.ColumnNumberToName(i + 1)
		if err := f.SetColWidth(sheet, col, col, 16); err != nil {
			return fmt.Errorf("%s: %w", sheet, err)
		}
	}
	last, _ := excelize.CoordinatesToCellName(len(headers), 1)
	if err := f.SetCellStyle(sheet, "A1", last, header); err != nil {
		return fmt.Errorf("%s: %w", sheet, err)
	}

	for r, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, r+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("%s!%s: %w", sheet, cell, err)
		}
	}
	return nil
}
