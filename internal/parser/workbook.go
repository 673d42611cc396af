package parser

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/Zaky-dc/shifaa-inventory/internal/model"
)

// ErrNoRows means the workbook opened fine but yielded no usable item:
// no header row, no code column, or every row had a blank code.
var ErrNoRows = errors.New("workbook has no usable rows")

// ParseWorkbook reads the first sheet of an xlsx workbook and normalizes
// its rows into catalog items. Rows whose resolved code is empty after
// trimming are dropped; duplicate codes collapse last-wins, keeping the
// position of the first occurrence.
func ParseWorkbook(r io.Reader) ([]model.Item, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrNoRows
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}
	if len(rows) < 2 {
		return nil, ErrNoRows
	}

	mapping := MapHeaders(rows[0])
	codeCol, ok := mapping[FieldCode]
	if !ok {
		return nil, ErrNoRows
	}
	descCol, expCol := -1, -1
	if idx, ok := mapping[FieldDescription]; ok {
		descCol = idx
	}
	if idx, ok := mapping[FieldExpected]; ok {
		expCol = idx
	}

	var items []model.Item
	seen := make(map[string]int)
	for _, row := range rows[1:] {
		code := strings.TrimSpace(cell(row, codeCol))
		if code == "" {
			continue
		}
		item := model.Item{
			Code:        code,
			Description: strings.TrimSpace(cell(row, descCol)),
			Expected:    ParseQuantity(cell(row, expCol)),
		}
		if idx, dup := seen[code]; dup {
			items[idx] = item
			continue
		}
		seen[code] = len(items)
		items = append(items, item)
	}

	if len(items) == 0 {
		return nil, ErrNoRows
	}
	return items, nil
}

func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}
