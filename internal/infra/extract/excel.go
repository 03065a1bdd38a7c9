package extract

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"insurai/internal/domain/entity"
	"insurai/internal/errors"
)

// extractExcel renders every sheet of a workbook twice: a pipe-separated
// plain-text form joined into the document text, and a CSV form kept as a
// table so the model sees the structure intact.
func extractExcel(path string) (*entity.DocumentContent, error) {
	workbook, err := excelize.OpenFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "open workbook")
	}
	defer workbook.Close()

	var text strings.Builder
	var tables []entity.DocumentTable

	for _, sheetName := range workbook.GetSheetList() {
		rows, err := workbook.GetRows(sheetName)
		if err != nil {
			return nil, errors.Wrapf(err, "read sheet %s", sheetName)
		}

		for _, row := range rows {
			text.WriteString(strings.Join(row, " | "))
			text.WriteString("\n")
		}

		tables = append(tables, entity.DocumentTable{
			SheetName: sheetName,
			CSV:       rowsToCSV(rows),
		})
	}

	return &entity.DocumentContent{Text: text.String(), Tables: tables}, nil
}

// extractCSV treats a CSV file as a single-sheet workbook.
func extractCSV(path string) (*entity.DocumentContent, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open csv")
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, "parse csv")
	}

	var text strings.Builder
	for _, row := range rows {
		text.WriteString(strings.Join(row, " | "))
		text.WriteString("\n")
	}

	sheetName := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	tables := []entity.DocumentTable{{
		SheetName: sheetName,
		CSV:       rowsToCSV(rows),
	}}

	return &entity.DocumentContent{Text: text.String(), Tables: tables}, nil
}

func rowsToCSV(rows [][]string) string {
	var b strings.Builder
	writer := csv.NewWriter(&b)
	for _, row := range rows {
		// Writer errors only surface on flush for an in-memory buffer.
		_ = writer.Write(row)
	}
	writer.Flush()

	return b.String()
}
