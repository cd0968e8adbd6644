package excel

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/AlexandreDecan/pcorr/domain/core"
	"github.com/AlexandreDecan/pcorr/domain/correction"
	"github.com/AlexandreDecan/pcorr/internal"
	"github.com/AlexandreDecan/pcorr/internal/errors"

	"github.com/xuri/excelize/v2"
)

// DataReader loads p-value families from Excel or CSV files. Every column is
// one family named by its header cell; blank cells are skipped.
type DataReader struct {
	filePath string
	fileType string // "xlsx" or "csv"
	sheet    string
	logger   *internal.Logger
}

// NewDataReader creates a reader for filePath, choosing CSV or Excel by extension
func NewDataReader(filePath string, logger *internal.Logger) *DataReader {
	ext := strings.ToLower(filepath.Ext(filePath))
	fileType := "xlsx"
	if ext == ".csv" {
		fileType = "csv"
	}
	if logger == nil {
		logger = internal.DefaultLogger
	}
	return &DataReader{filePath: filePath, fileType: fileType, logger: logger}
}

// WithSheet selects the worksheet for Excel files; the first sheet is used otherwise
func (r *DataReader) WithSheet(sheet string) *DataReader {
	r.sheet = sheet
	return r
}

// ReadFamilies implements ports.FamilyReader
func (r *DataReader) ReadFamilies(ctx context.Context) ([]correction.Family, error) {
	if _, err := os.Stat(r.filePath); os.IsNotExist(err) {
		return nil, errors.InvalidInput(fmt.Sprintf("%s file not found: %s", strings.ToUpper(r.fileType), r.filePath), err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var (
		rows [][]string
		err  error
	)
	switch r.fileType {
	case "csv":
		rows, err = r.readCSVRows()
	default:
		rows, err = r.readExcelRows()
	}
	if err != nil {
		return nil, err
	}
	return r.processRows(rows)
}

// ReadFamily returns the family whose header equals column
func (r *DataReader) ReadFamily(ctx context.Context, column string) (correction.Family, error) {
	families, err := r.ReadFamilies(ctx)
	if err != nil {
		return correction.Family{}, err
	}
	for _, f := range families {
		if string(f.Name) == column {
			return f, nil
		}
	}
	return correction.Family{}, errors.InvalidInput(fmt.Sprintf("column %q not found in %s", column, r.filePath), nil)
}

func (r *DataReader) readExcelRows() ([][]string, error) {
	startTime := time.Now()
	f, err := excelize.OpenFile(r.filePath)
	if err != nil {
		return nil, errors.InvalidInput("failed to open Excel file", err)
	}
	defer f.Close()

	sheet := r.sheet
	if sheet == "" {
		sheet = f.GetSheetName(0)
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, errors.InvalidInput(fmt.Sprintf("failed to read sheet %q", sheet), err)
	}
	r.logger.Debug("[DataReader] sheet %q read in %.2fms (%d rows)", sheet, float64(time.Since(startTime).Nanoseconds())/1e6, len(rows))
	return rows, nil
}

func (r *DataReader) readCSVRows() ([][]string, error) {
	file, err := os.Open(r.filePath)
	if err != nil {
		return nil, errors.InvalidInput("failed to open CSV file", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	startTime := time.Now()
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, errors.InvalidInput("failed to read CSV file", err)
	}
	r.logger.Debug("[DataReader] CSV file read in %.2fms (%d rows)", float64(time.Since(startTime).Nanoseconds())/1e6, len(rows))
	return rows, nil
}

// processRows turns a header row plus data rows into one family per column
func (r *DataReader) processRows(rows [][]string) ([]correction.Family, error) {
	if len(rows) < 2 {
		return nil, errors.InvalidInput(fmt.Sprintf("%s file must have a header row and at least one data row", strings.ToUpper(r.fileType)), core.ErrEmptyFamily)
	}

	// spreadsheets drop trailing empty cells, so the header row may be short
	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}
	families := make([]correction.Family, width)
	for j := range families {
		name := ""
		if j < len(rows[0]) {
			name = strings.TrimSpace(rows[0][j])
		}
		if name == "" {
			name = fmt.Sprintf("column%d", j+1)
		}
		families[j] = correction.Family{Name: core.FamilyName(name)}
	}

	for i := 1; i < len(rows); i++ {
		for j, cell := range rows[i] {
			cell = strings.TrimSpace(cell)
			if cell == "" {
				continue
			}
			p, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return nil, errors.InvalidInput("non-numeric p-value", core.NewPValueError(cellName(j, i), cell))
			}
			families[j].PValues = append(families[j].PValues, p)
		}
	}

	r.logger.Debug("[DataReader] %s file processed (%d families, %d rows)",
		strings.ToUpper(r.fileType), len(families), len(rows)-1)
	return families, nil
}

// cellName formats 0-based coordinates as a spreadsheet reference like B3
func cellName(col, row int) string {
	name, err := excelize.CoordinatesToCellName(col+1, row+1)
	if err != nil {
		return fmt.Sprintf("row %d column %d", row+1, col+1)
	}
	return name
}
