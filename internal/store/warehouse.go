package store

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mattn/go-sqlite3"
)

// ErrWarehouseExists signals a duplicate warehouse name.
var ErrWarehouseExists = errors.New("armazém já existe")

// ListWarehouses returns all registered warehouse names, alphabetically.
func (s *Store) ListWarehouses() ([]string, error) {
	rows, err := s.db.Query("SELECT nome FROM armazens ORDER BY nome")
	if err != nil {
		return nil, fmt.Errorf("failed to query warehouses: %w", err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var nome string
		if err := rows.Scan(&nome); err != nil {
			return nil, fmt.Errorf("failed to scan warehouse: %w", err)
		}
		out = append(out, nome)
	}
	return out, rows.Err()
}

// CreateWarehouse registers a new warehouse name.
func (s *Store) CreateWarehouse(nome string) error {
	nome = strings.TrimSpace(nome)
	if nome == "" {
		return errors.New("nome de armazém vazio")
	}
	if _, err := s.db.Exec("INSERT INTO armazens (nome) VALUES (?)", nome); err != nil {
		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && sqliteErr.Code == sqlite3.ErrConstraint {
			return ErrWarehouseExists
		}
		return fmt.Errorf("failed to insert warehouse: %w", err)
	}
	return nil
}
