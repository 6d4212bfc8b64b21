package exports

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestWriteRestock_ThenReadBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "restock.xlsx")

	rows := []Row{
		{Barcode: "8801234567893", Name: "Banana Milk 240ml", ExpirationDate: "2025-04-01", Quantity: 20, Price: 1700},
		{Barcode: "8801234567909", Name: "Shin Ramyun Cup", ExpirationDate: "", Quantity: 30, Price: 1200},
	}
	require.NoError(t, WriteRestock(path, rows))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	products, rowErrors, err := ReadProducts(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Empty(t, rowErrors)
	require.Len(t, products, 2)

	assert.Equal(t, "8801234567893", products[0].Barcode)
	assert.Equal(t, "Banana Milk 240ml", products[0].ProductName)
	require.NotNil(t, products[0].ExpirationDate)
	assert.Equal(t, "2025-04-01", products[0].ExpirationDate.Format("2006-01-02"))
	assert.Equal(t, 20, products[0].Quantity)
	assert.Equal(t, 1700, products[0].Price)

	assert.Nil(t, products[1].ExpirationDate)
}

func TestWriteRestock_CreatesParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "restock.xlsx")
	require.NoError(t, WriteRestock(path, nil))

	_, err := os.Stat(path)
	assert.NoError(t, err)
}

// buildSheet builds an xlsx in memory from a header plus rows.
func buildSheet(t *testing.T, rows [][]interface{}) *bytes.Reader {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()
	for r, cells := range rows {
		for c, v := range cells {
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue("Sheet1", cell, v))
		}
	}

	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	return bytes.NewReader(buf.Bytes())
}

func TestReadProducts_SkipsMalformedRows(t *testing.T) {
	sheet := buildSheet(t, [][]interface{}{
		{"barcode", "name", "expiration_date", "quantity", "price"},
		{"8801234567893", "Good Row", "2025-04-01", 5, 1500},
		{"", "Missing Barcode", "2025-04-01", 5, 1500},
		{"8801234567909", "Bad Date", "not-a-date", 5, 1500},
		{"8801234567916", "Also Good", "2025-05-01", 2, 900},
	})

	products, rowErrors, err := ReadProducts(sheet)
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "Good Row", products[0].ProductName)
	assert.Equal(t, "Also Good", products[1].ProductName)

	require.Len(t, rowErrors, 2)
	assert.Equal(t, 3, rowErrors[0].Row)
	assert.Equal(t, 4, rowErrors[1].Row)
}

func TestReadProducts_MissingRequiredColumn(t *testing.T) {
	sheet := buildSheet(t, [][]interface{}{
		{"name", "price"},
		{"No Barcode Column", 1000},
	})

	_, _, err := ReadProducts(sheet)
	assert.Error(t, err)
}

func TestParseDate_SerialNumber(t *testing.T) {
	// 45748 days after 1899-12-30 is 2025-04-01
	parsed, err := parseDate("45748")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC), parsed)
}
