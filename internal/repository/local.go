package repository

import (
	"context"
	"fmt"

	"github.com/Zaky-dc/shifaa-inventory/internal/model"
	"github.com/Zaky-dc/shifaa-inventory/internal/store"
)

// Local persists snapshots straight into the embedded SQLite store.
// This is the default repository when no backend URL is configured.
type Local struct {
	store *store.Store
}

// NewLocal wraps the given store.
func NewLocal(st *store.Store) *Local {
	return &Local{store: st}
}

// Save replaces the snapshot for its identity.
func (l *Local) Save(_ context.Context, snap model.Snapshot) (string, error) {
	if err := l.store.ReplaceSnapshot(snap); err != nil {
		return "", err
	}
	return fmt.Sprintf("Contagem de %s (%s) guardada com sucesso.", snap.Warehouse, snap.Date), nil
}

// ListSummaries lists the stored identities, newest first.
func (l *Local) ListSummaries(_ context.Context) ([]model.SnapshotSummary, error) {
	return l.store.ListSnapshotDates()
}

// Load returns the rows stored under one identity, possibly empty.
func (l *Local) Load(_ context.Context, date, warehouse string) ([]model.SnapshotRow, error) {
	return l.store.GetSnapshot(date, warehouse)
}

// Delete removes one identity.
func (l *Local) Delete(_ context.Context, date, warehouse string) (string, error) {
	n, err := l.store.DeleteSnapshot(date, warehouse)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Contagem de %s (%s) apagada (%d itens).", warehouse, date, n), nil
}
