package export

import (
	"io"

	"github.com/xuri/excelize/v2"
)

const xlsxSheet = "Report"

func writeXLSX(w io.Writer, t Table) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", xlsxSheet); err != nil {
		return err
	}

	titleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 14},
	})
	if err != nil {
		return err
	}
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return err
	}

	row := 1
	if t.Title != "" {
		if err := f.SetCellValue(xlsxSheet, "A1", t.Title); err != nil {
			return err
		}
		if err := f.SetCellStyle(xlsxSheet, "A1", "A1", titleStyle); err != nil {
			return err
		}
		row++
	}
	for _, line := range t.Subtitle {
		cell, _ := excelize.CoordinatesToCellName(1, row)
		if err := f.SetCellValue(xlsxSheet, cell, line); err != nil {
			return err
		}
		row++
	}
	if row > 1 {
		row++ // blank spacer row
	}

	headerRow := row
	if err := setRow(f, headerRow, t.Headers); err != nil {
		return err
	}
	if len(t.Headers) > 0 {
		first, _ := excelize.CoordinatesToCellName(1, headerRow)
		last, _ := excelize.CoordinatesToCellName(len(t.Headers), headerRow)
		if err := f.SetCellStyle(xlsxSheet, first, last, headerStyle); err != nil {
			return err
		}
		lastCol, _ := excelize.ColumnNumberToName(len(t.Headers))
		if err := f.SetColWidth(xlsxSheet, "A", lastCol, 18); err != nil {
			return err
		}
	}

	for i, r := range t.Rows {
		if err := setRow(f, headerRow+1+i, r); err != nil {
			return err
		}
	}

	return f.Write(w)
}

func setRow(f *excelize.File, row int, values []string) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	cells := make([]interface{}, len(values))
	for i, v := range values {
		cells[i] = v
	}
	return f.SetSheetRow(xlsxSheet, cell, &cells)
}
