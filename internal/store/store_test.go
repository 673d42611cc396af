package store

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/Zaky-dc/shifaa-inventory/internal/model"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	st, err := New(filepath.Join(t.TempDir(), "shifaa.db"))
	if err != nil {
		t.Fatalf("init store: %v", err)
	}
	t.Cleanup(func() { _ = st.Close() })
	return st
}

func testSnapshot(date, warehouse string) model.Snapshot {
	return model.Snapshot{
		Date:      date,
		Warehouse: warehouse,
		Rows: []model.SnapshotRow{
			{Code: "A1", Description: "Widget", Expected: 10, Real: 12, Difference: 2},
			{Code: "A2", Description: "Gadget", Expected: 5, Real: 0, Difference: -5},
		},
	}
}

func TestReplaceAndGetSnapshot(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)
	if err := st.ReplaceSnapshot(testSnapshot("2026-08-28", "Central")); err != nil {
		t.Fatalf("replace: %v", err)
	}

	rows, err := st.GetSnapshot("2026-08-28", "Central")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(rows))
	}
	if rows[0].Code != "A1" || rows[0].Real != 12 || rows[0].Difference != 2 {
		t.Fatalf("unexpected first row: %+v", rows[0])
	}
	if rows[1].Date != "2026-08-28" || rows[1].Warehouse != "Central" {
		t.Fatalf("identity must ride on every row: %+v", rows[1])
	}
}

func TestGetSnapshot_MissingIdentityIsEmpty(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)
	rows, err := st.GetSnapshot("2026-01-01", "Nada")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(rows) != 0 {
		t.Fatalf("rows = %d, want 0", len(rows))
	}
}

func TestReplaceSnapshot_OverwritesWholeIdentity(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)
	if err := st.ReplaceSnapshot(testSnapshot("2026-08-28", "Central")); err != nil {
		t.Fatalf("first save: %v", err)
	}

	second := model.Snapshot{
		Date:      "2026-08-28",
		Warehouse: "Central",
		Rows: []model.SnapshotRow{
			{Code: "B9", Description: "Novo", Expected: 1, Real: 1},
		},
	}
	if err := st.ReplaceSnapshot(second); err != nil {
		t.Fatalf("second save: %v", err)
	}

	rows, err := st.GetSnapshot("2026-08-28", "Central")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(rows) != 1 || rows[0].Code != "B9" {
		t.Fatalf("save must replace the full snapshot: %+v", rows)
	}
}

func TestSnapshotsAreIsolatedByWarehouse(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)
	if err := st.ReplaceSnapshot(testSnapshot("2026-08-28", "Central")); err != nil {
		t.Fatalf("save central: %v", err)
	}
	if err := st.ReplaceSnapshot(testSnapshot("2026-08-28", "Norte")); err != nil {
		t.Fatalf("save norte: %v", err)
	}

	if _, err := st.DeleteSnapshot("2026-08-28", "Norte"); err != nil {
		t.Fatalf("delete: %v", err)
	}

	rows, err := st.GetSnapshot("2026-08-28", "Central")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("deleting one warehouse must not touch the other")
	}
}

func TestListSnapshotDates_NewestFirst(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)
	for _, id := range []model.SnapshotSummary{
		{Date: "2026-08-26", Warehouse: "Central"},
		{Date: "2026-08-28", Warehouse: "Norte"},
		{Date: "2026-08-27", Warehouse: "Central"},
	} {
		if err := st.ReplaceSnapshot(testSnapshot(id.Date, id.Warehouse)); err != nil {
			t.Fatalf("save %v: %v", id, err)
		}
	}

	summaries, err := st.ListSnapshotDates()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(summaries) != 3 {
		t.Fatalf("summaries = %d, want 3", len(summaries))
	}
	if summaries[0].Date != "2026-08-28" || summaries[2].Date != "2026-08-26" {
		t.Fatalf("dates must be newest first: %+v", summaries)
	}
}

func TestDeleteSnapshot_ReportsMissing(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)
	n, err := st.DeleteSnapshot("2026-01-01", "Nada")
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if n != 0 {
		t.Fatalf("n = %d, want 0", n)
	}
}

func TestWarehouseRegistry(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)
	if err := st.CreateWarehouse("Central"); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := st.CreateWarehouse("Central"); !errors.Is(err, ErrWarehouseExists) {
		t.Fatalf("err = %v, want ErrWarehouseExists", err)
	}
	if err := st.CreateWarehouse("  "); err == nil {
		t.Fatalf("blank name must be rejected")
	}

	names, err := st.ListWarehouses()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(names) != 1 || names[0] != "Central" {
		t.Fatalf("unexpected registry: %v", names)
	}
}
