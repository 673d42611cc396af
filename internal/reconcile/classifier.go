package reconcile

import (
	"fmt"
	"strings"

	"github.com/Zaky-dc/shifaa-inventory/internal/model"
)

// Row is one reconciled line: a catalog item joined with its count.
type Row struct {
	model.Item
	Raw        string `json:"contagem"`
	Real       int    `json:"real"`
	Difference int    `json:"diferenca"`
	Counted    bool   `json:"contado"`
}

// Build derives the reconciled view of one item from its ledger entry.
func Build(item model.Item, count model.CountValue) Row {
	real := count.Resolve()
	return Row{
		Item:       item,
		Raw:        count.Display(),
		Real:       real,
		Difference: real - item.Expected,
		Counted:    count.WasCounted(),
	}
}

// Bucket is a named status filter. Buckets are standalone predicates,
// not a mutually exclusive enum: a row may match several of them.
type Bucket string

const (
	BucketAll         Bucket = "todos"
	BucketPending     Bucket = "pendentes"
	BucketDiscrepancy Bucket = "diferencas"
	BucketSurplus     Bucket = "sobras"
	BucketShortage    Bucket = "perdas"
	BucketBalanced    Bucket = "iguais"
)

// ParseBucket validates a wire-format bucket name. The empty string
// selects BucketAll.
func ParseBucket(s string) (Bucket, error) {
	switch Bucket(s) {
	case BucketAll, BucketPending, BucketDiscrepancy, BucketSurplus, BucketShortage, BucketBalanced:
		return Bucket(s), nil
	}
	if s == "" {
		return BucketAll, nil
	}
	return "", fmt.Errorf("unknown status filter %q", s)
}

// Matches evaluates the bucket predicate against one reconciled row.
func (b Bucket) Matches(r Row) bool {
	switch b {
	case BucketPending:
		return !r.Counted
	case BucketDiscrepancy:
		return r.Difference != 0
	case BucketSurplus:
		return r.Difference > 0
	case BucketShortage:
		return r.Difference < 0
	case BucketBalanced:
		return r.Difference == 0 && r.Counted
	default:
		return true
	}
}

// MatchesQuery is the text predicate: a case-insensitive substring
// match against code plus description.
func MatchesQuery(item model.Item, query string) bool {
	if query == "" {
		return true
	}
	haystack := strings.ToLower(item.Code + " " + item.Description)
	return strings.Contains(haystack, strings.ToLower(query))
}
