package store

import (
	"fmt"

	"github.com/Zaky-dc/shifaa-inventory/internal/model"
)

// ReplaceSnapshot deletes whatever is stored under the snapshot's
// identity and inserts the new rows in one transaction, so a save is
// always a full replacement and never a partial overwrite.
func (s *Store) ReplaceSnapshot(snap model.Snapshot) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(
		"DELETE FROM contagens WHERE data = ? AND armazem = ?",
		snap.Date, snap.Warehouse,
	); err != nil {
		return fmt.Errorf("failed to clear previous snapshot: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO contagens (data, armazem, codigo, nome, sistema, "real", diferenca)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer stmt.Close()

	for _, r := range snap.Rows {
		if _, err := stmt.Exec(
			snap.Date, snap.Warehouse,
			r.Code, r.Description, r.Expected, r.Real, r.Difference,
		); err != nil {
			return fmt.Errorf("failed to insert row: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// GetSnapshot returns every row stored under one identity, in insert
// order. A missing snapshot yields an empty slice, not an error.
func (s *Store) GetSnapshot(date, warehouse string) ([]model.SnapshotRow, error) {
	rows, err := s.db.Query(`
		SELECT codigo, nome, sistema, "real", diferenca, data, armazem
		FROM contagens
		WHERE data = ? AND armazem = ?
		ORDER BY id
	`, date, warehouse)
	if err != nil {
		return nil, fmt.Errorf("failed to query snapshot: %w", err)
	}
	defer rows.Close()

	var out []model.SnapshotRow
	for rows.Next() {
		var r model.SnapshotRow
		if err := rows.Scan(&r.Code, &r.Description, &r.Expected, &r.Real, &r.Difference, &r.Date, &r.Warehouse); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// ListSnapshotDates returns the distinct (data, armazem) identities,
// newest date first.
func (s *Store) ListSnapshotDates() ([]model.SnapshotSummary, error) {
	rows, err := s.db.Query(`
		SELECT DISTINCT data, armazem
		FROM contagens
		ORDER BY data DESC, armazem ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query dates: %w", err)
	}
	defer rows.Close()

	var out []model.SnapshotSummary
	for rows.Next() {
		var sum model.SnapshotSummary
		if err := rows.Scan(&sum.Date, &sum.Warehouse); err != nil {
			return nil, fmt.Errorf("failed to scan summary: %w", err)
		}
		out = append(out, sum)
	}
	return out, rows.Err()
}

// DeleteSnapshot removes one identity and reports how many rows went.
func (s *Store) DeleteSnapshot(date, warehouse string) (int64, error) {
	res, err := s.db.Exec(
		"DELETE FROM contagens WHERE data = ? AND armazem = ?",
		date, warehouse,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to delete snapshot: %w", err)
	}
	n, _ := res.RowsAffected()
	return n, nil
}
