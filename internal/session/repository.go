package session

import (
	"context"

	"github.com/Zaky-dc/shifaa-inventory/internal/model"
)

// Repository is the persistence collaborator the session depends on.
// Implementations live in internal/repository: a SQLite-backed local
// one and a resty HTTP client for a remote backend.
type Repository interface {
	// Save replaces the full snapshot for the given identity and
	// returns a human-readable confirmation message.
	Save(ctx context.Context, snap model.Snapshot) (string, error)
	// ListSummaries returns the identities available for reload,
	// newest first.
	ListSummaries(ctx context.Context) ([]model.SnapshotSummary, error)
	// Load returns the full row set for one identity, or an empty
	// slice when nothing is stored under it.
	Load(ctx context.Context, date, warehouse string) ([]model.SnapshotRow, error)
	// Delete removes one snapshot identity.
	Delete(ctx context.Context, date, warehouse string) (string, error)
}
