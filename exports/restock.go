// Package exports reads and writes product spreadsheets.
package exports

import (
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/rjsdud322727/smart-store/models"
)

const sheetName = "Sheet1"

// Column order of every spreadsheet this package produces or consumes.
var columns = []string{"barcode", "name", "expiration_date", "quantity", "price"}

// Excel serial dates count days from this epoch (the Lotus-compatible
// 1900 system pandas uses).
var serialEpoch = time.Date(1899, 12, 30, 0, 0, 0, 0, time.UTC)

// Row is one product line in a restock spreadsheet.
type Row struct {
	Barcode        string
	Name           string
	ExpirationDate string
	Quantity       int
	Price          int
}

// WriteRestock writes rows to an xlsx file at path, creating parent
// directories as needed.
func WriteRestock(path string, rows []Row) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create export dir: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	for i, header := range columns {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheetName, cell, header); err != nil {
			return fmt.Errorf("write header: %w", err)
		}
	}

	for i, row := range rows {
		values := []interface{}{row.Barcode, row.Name, row.ExpirationDate, row.Quantity, row.Price}
		for j, v := range values {
			cell, err := excelize.CoordinatesToCellName(j+1, i+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheetName, cell, v); err != nil {
				return fmt.Errorf("write row %d: %w", i+1, err)
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save spreadsheet: %w", err)
	}
	return nil
}

// RowError reports a spreadsheet row that could not be imported.
type RowError struct {
	Row int
	Err error
}

func (e RowError) Error() string {
	return fmt.Sprintf("row %d: %v", e.Row, e.Err)
}

// ReadProducts parses an uploaded product spreadsheet. Malformed rows
// are skipped and reported individually; the rest of the batch
// continues.
func ReadProducts(r io.Reader) ([]models.Product, []RowError, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, nil, fmt.Errorf("open spreadsheet: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, nil, fmt.Errorf("read spreadsheet: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil, fmt.Errorf("spreadsheet is empty")
	}

	// Header row gives column positions
	index := make(map[string]int)
	for i, header := range rows[0] {
		index[strings.ToLower(strings.TrimSpace(header))] = i
	}
	for _, required := range []string{"barcode", "name"} {
		if _, ok := index[required]; !ok {
			return nil, nil, fmt.Errorf("missing %q column", required)
		}
	}

	var (
		products  []models.Product
		rowErrors []RowError
	)
	for i, cells := range rows[1:] {
		rowNum := i + 2

		product, err := parseProduct(cells, index)
		if err != nil {
			rowErrors = append(rowErrors, RowError{Row: rowNum, Err: err})
			continue
		}
		products = append(products, product)
	}
	return products, rowErrors, nil
}

func parseProduct(cells []string, index map[string]int) (models.Product, error) {
	field := func(name string) string {
		i, ok := index[name]
		if !ok || i >= len(cells) {
			return ""
		}
		return strings.TrimSpace(cells[i])
	}

	barcode := field("barcode")
	if barcode == "" {
		return models.Product{}, fmt.Errorf("barcode is required")
	}
	name := field("name")
	if name == "" {
		return models.Product{}, fmt.Errorf("name is required")
	}

	product := models.Product{Barcode: barcode, ProductName: name}

	if raw := field("expiration_date"); raw != "" {
		expiration, err := parseDate(raw)
		if err != nil {
			return models.Product{}, fmt.Errorf("expiration_date %q: %w", raw, err)
		}
		product.ExpirationDate = &expiration
	}

	if raw := field("quantity"); raw != "" {
		quantity, err := strconv.Atoi(raw)
		if err != nil || quantity < 0 {
			return models.Product{}, fmt.Errorf("invalid quantity %q", raw)
		}
		product.Quantity = quantity
	}

	if raw := field("price"); raw != "" {
		price, err := strconv.Atoi(raw)
		if err != nil || price < 0 {
			return models.Product{}, fmt.Errorf("invalid price %q", raw)
		}
		product.Price = price
	}

	return product, nil
}

// parseDate accepts ISO dates and Excel serial day numbers.
func parseDate(raw string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t, nil
	}
	if serial, err := strconv.ParseFloat(raw, 64); err == nil {
		days := math.Floor(serial)
		fraction := serial - days
		return serialEpoch.AddDate(0, 0, int(days)).
			Add(time.Duration(fraction * 24 * float64(time.Hour))), nil
	}
	return time.Time{}, fmt.Errorf("unrecognized date format")
}
