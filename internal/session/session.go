package session

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Zaky-dc/shifaa-inventory/internal/model"
	"github.com/Zaky-dc/shifaa-inventory/internal/reconcile"
)

// Session is the working state of one count-in-progress: the catalog of
// expected items, the ledger of raw user-entered counts and the
// warehouse label. It is replaced wholesale on import or snapshot load
// and cleared wholesale on successful save; no transition ever leaves
// it half-replaced.
type Session struct {
	mu   sync.Mutex
	repo Repository
	log  *zap.Logger
	now  func() time.Time

	items     []model.Item
	counts    map[string]model.CountValue
	warehouse string

	summaries     []model.SnapshotSummary
	haveSummaries bool

	// busy enforces a single in-flight repository operation; generation
	// bumps on every wholesale replacement so a stale load response can
	// be recognized and discarded.
	busy       bool
	generation uint64
}

// New creates an empty session bound to a repository.
func New(repo Repository, log *zap.Logger) *Session {
	if log == nil {
		log = zap.NewNop()
	}
	return &Session{
		repo:   repo,
		log:    log,
		now:    time.Now,
		counts: make(map[string]model.CountValue),
	}
}

// ReplaceCatalog swaps in a freshly imported catalog and resets the
// ledger. The warehouse label comes from the imported file name.
func (s *Session) ReplaceCatalog(items []model.Item, warehouse string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.replaceLocked(items, warehouse)
}

// Clear empties the session wholesale.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.replaceLocked(nil, "")
}

func (s *Session) replaceLocked(items []model.Item, warehouse string) {
	s.items = items
	s.counts = make(map[string]model.CountValue)
	s.warehouse = warehouse
	s.generation++
}

// SetCount records the raw count string for one catalog item. Any
// string is accepted; an empty string marks the entry as cleared.
func (s *Session) SetCount(code, raw string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.hasItemLocked(code) {
		return ErrUnknownItem
	}
	if raw == "" {
		s.counts[code] = model.Cleared()
		return nil
	}
	s.counts[code] = model.Counted(raw)
	return nil
}

func (s *Session) hasItemLocked(code string) bool {
	for _, it := range s.items {
		if it.Code == code {
			return true
		}
	}
	return false
}

// DisplayValue returns the raw count verbatim, or "" for an item that
// was never counted or was cleared.
func (s *Session) DisplayValue(code string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.counts[code].Display()
}

// Warehouse returns the current warehouse label.
func (s *Session) Warehouse() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.warehouse
}

// Len returns the catalog size.
func (s *Session) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

// Busy reports whether a repository operation is in flight.
func (s *Session) Busy() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.busy
}

// Rows returns the reconciled view of the whole catalog in its current
// order.
func (s *Session) Rows() []reconcile.Row {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rowsLocked()
}

func (s *Session) rowsLocked() []reconcile.Row {
	rows := make([]reconcile.Row, 0, len(s.items))
	for _, it := range s.items {
		rows = append(rows, reconcile.Build(it, s.counts[it.Code]))
	}
	return rows
}

// FilteredRows applies the text predicate AND one status bucket.
// Ordering is the catalog's current order; filtering never re-sorts.
func (s *Session) FilteredRows(query string, bucket reconcile.Bucket) []reconcile.Row {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows := make([]reconcile.Row, 0, len(s.items))
	for _, it := range s.items {
		if !reconcile.MatchesQuery(it, query) {
			continue
		}
		row := reconcile.Build(it, s.counts[it.Code])
		if !bucket.Matches(row) {
			continue
		}
		rows = append(rows, row)
	}
	return rows
}

// beginOp claims the single in-flight slot and returns the generation
// the operation was issued against.
func (s *Session) beginOp() (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.busy {
		return 0, ErrBusy
	}
	s.busy = true
	return s.generation, nil
}

// endOp releases the slot; deferred on every path so the busy flag can
// never leak.
func (s *Session) endOp() {
	s.mu.Lock()
	s.busy = false
	s.mu.Unlock()
}

// Save resolves the current session into a dated snapshot, persists it
// and, on success, clears the session wholesale. Missing warehouse
// label or an empty catalog reject locally, before any repository call.
func (s *Session) Save(ctx context.Context) (string, error) {
	s.mu.Lock()
	if s.warehouse == "" {
		s.mu.Unlock()
		return "", ErrNoWarehouse
	}
	if len(s.items) == 0 {
		s.mu.Unlock()
		return "", ErrEmptyCatalog
	}
	s.mu.Unlock()

	gen, err := s.beginOp()
	if err != nil {
		return "", err
	}
	defer s.endOp()

	snap := s.buildSnapshot()
	opID := uuid.NewString()
	s.log.Info("saving snapshot",
		zap.String("op", opID),
		zap.String("data", snap.Date),
		zap.String("armazem", snap.Warehouse),
		zap.Int("itens", len(snap.Rows)))

	msg, err := s.repo.Save(ctx, snap)
	if err != nil {
		s.log.Warn("save failed", zap.String("op", opID), zap.Error(err))
		return "", err
	}

	s.mu.Lock()
	if s.generation == gen {
		s.replaceLocked(nil, "")
	}
	s.mu.Unlock()

	s.haveSummariesOff()
	return msg, nil
}

func (s *Session) haveSummariesOff() {
	s.mu.Lock()
	s.haveSummaries = false
	s.mu.Unlock()
}

// buildSnapshot resolves every ledger entry to a concrete quantity;
// unset entries become 0, never a blank cell.
func (s *Session) buildSnapshot() model.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	date := s.now().UTC().Format("2006-01-02")
	snap := model.Snapshot{Date: date, Warehouse: s.warehouse}
	for _, it := range s.items {
		real := s.counts[it.Code].Resolve()
		snap.Rows = append(snap.Rows, model.SnapshotRow{
			Code:        it.Code,
			Description: it.Description,
			Expected:    it.Expected,
			Real:        real,
			Difference:  real - it.Expected,
			Date:        date,
			Warehouse:   s.warehouse,
		})
	}
	return snap
}

// Load replaces the session with a stored snapshot. An empty result is
// a strict no-op on session state; a response that resolves after the
// session has already been replaced by a newer action is discarded.
func (s *Session) Load(ctx context.Context, date, warehouse string) (int, error) {
	gen, err := s.beginOp()
	if err != nil {
		return 0, err
	}
	defer s.endOp()

	opID := uuid.NewString()
	s.log.Info("loading snapshot",
		zap.String("op", opID),
		zap.String("data", date),
		zap.String("armazem", warehouse))

	rows, err := s.repo.Load(ctx, date, warehouse)
	if err != nil {
		s.log.Warn("load failed", zap.String("op", opID), zap.Error(err))
		return 0, err
	}
	if len(rows) == 0 {
		return 0, ErrEmptySnapshot
	}

	items := make([]model.Item, 0, len(rows))
	counts := make(map[string]model.CountValue, len(rows))
	label := warehouse
	if rows[0].Warehouse != "" {
		label = rows[0].Warehouse
	}
	for _, r := range rows {
		items = append(items, model.Item{
			Code:        r.Code,
			Description: r.Description,
			Expected:    r.Expected,
		})
		counts[r.Code] = model.Counted(strconv.Itoa(r.Real))
	}
	// Reloaded snapshots come back ordered by description; this order
	// survives all subsequent filtering.
	reconcile.SortByDescription(items)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.generation != gen {
		s.log.Warn("discarding stale load response", zap.String("op", opID))
		return 0, ErrStaleResponse
	}
	s.items = items
	s.counts = counts
	s.warehouse = label
	s.generation++
	return len(items), nil
}

// History returns the cached snapshot summaries, fetching them from the
// repository on first use or when refresh is set.
func (s *Session) History(ctx context.Context, refresh bool) ([]model.SnapshotSummary, error) {
	s.mu.Lock()
	cached, have := s.summaries, s.haveSummaries
	s.mu.Unlock()
	if have && !refresh {
		return cached, nil
	}

	summaries, err := s.repo.ListSummaries(ctx)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.summaries = summaries
	s.haveSummaries = true
	s.mu.Unlock()
	return summaries, nil
}

// DeleteSnapshot removes one identity and drops it from the cached
// summary list without a re-fetch.
func (s *Session) DeleteSnapshot(ctx context.Context, date, warehouse string) (string, error) {
	if _, err := s.beginOp(); err != nil {
		return "", err
	}
	defer s.endOp()

	msg, err := s.repo.Delete(ctx, date, warehouse)
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	if s.haveSummaries {
		kept := s.summaries[:0]
		for _, sum := range s.summaries {
			if sum.Date == date && sum.Warehouse == warehouse {
				continue
			}
			kept = append(kept, sum)
		}
		s.summaries = kept
	}
	s.mu.Unlock()
	return msg, nil
}
