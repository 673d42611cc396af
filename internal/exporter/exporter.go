package exporter

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/Zaky-dc/shifaa-inventory/internal/reconcile"
)

// SheetName is the single sheet an export workbook carries.
const SheetName = "Contagem"

// headers are the fixed export columns, in order.
var headers = []string{"Código", "Descrição", "Sistema", "Real", "Diferença"}

// BuildWorkbook materializes the reconciled view as an xlsx workbook:
// one row per item, unset counts already resolved to 0.
func BuildWorkbook(rows []reconcile.Row) (*excelize.File, error) {
	f := excelize.NewFile()
	idx, err := f.NewSheet(SheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(idx)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("failed to drop default sheet: %w", err)
	}

	for col, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := f.SetCellValue(SheetName, cell, h); err != nil {
			return nil, fmt.Errorf("failed to write header: %w", err)
		}
	}

	for i, r := range rows {
		values := []interface{}{r.Code, r.Description, r.Expected, r.Real, r.Difference}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, i+2)
			if err := f.SetCellValue(SheetName, cell, v); err != nil {
				return nil, fmt.Errorf("failed to write row %d: %w", i+1, err)
			}
		}
	}

	return f, nil
}

// Filename derives the deterministic download name from the warehouse
// label and an ISO date: contagem_{armazem|geral}_{data}.xlsx.
func Filename(warehouse, date string) string {
	if strings.TrimSpace(warehouse) == "" {
		warehouse = "geral"
	}
	warehouse = sanitize(warehouse)
	return fmt.Sprintf("contagem_%s_%s.xlsx", warehouse, date)
}

// sanitize keeps the label filesystem-safe.
func sanitize(name string) string {
	replacer := strings.NewReplacer("/", "_", "\\", "_", " ", "_", ":", "_")
	return replacer.Replace(name)
}
