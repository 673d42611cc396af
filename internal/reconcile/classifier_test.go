package reconcile

import (
	"testing"

	"github.com/Zaky-dc/shifaa-inventory/internal/model"
)

func TestBuild_PendingItem(t *testing.T) {
	t.Parallel()

	item := model.Item{Code: "A1", Description: "Widget", Expected: 10}
	row := Build(item, model.Unset())

	if row.Counted {
		t.Fatalf("unset entry must not count as counted")
	}
	if row.Real != 0 || row.Difference != -10 {
		t.Fatalf("real=%d diff=%d, want 0/-10", row.Real, row.Difference)
	}
	if row.Raw != "" {
		t.Fatalf("display = %q, want empty", row.Raw)
	}
	if !BucketPending.Matches(row) {
		t.Fatalf("pending bucket must match an uncounted item")
	}
}

func TestBuild_Surplus(t *testing.T) {
	t.Parallel()

	item := model.Item{Code: "A1", Description: "Widget", Expected: 10}
	row := Build(item, model.Counted("12"))

	if row.Difference != 2 {
		t.Fatalf("difference = %d, want 2", row.Difference)
	}
	if !BucketSurplus.Matches(row) || !BucketDiscrepancy.Matches(row) {
		t.Fatalf("surplus and discrepancy buckets must match")
	}
	if BucketBalanced.Matches(row) || BucketShortage.Matches(row) || BucketPending.Matches(row) {
		t.Fatalf("balanced/shortage/pending must not match")
	}
}

func TestBuild_ExplicitZeroIsCounted(t *testing.T) {
	t.Parallel()

	item := model.Item{Code: "A2", Description: "Gadget", Expected: 5}
	row := Build(item, model.Counted("0"))

	if !row.Counted {
		t.Fatalf("an explicit \"0\" is a counted entry")
	}
	if row.Raw != "0" {
		t.Fatalf("display = %q, want \"0\"", row.Raw)
	}
	if row.Difference != -5 || !BucketShortage.Matches(row) {
		t.Fatalf("difference = %d, shortage=%v", row.Difference, BucketShortage.Matches(row))
	}
	if BucketPending.Matches(row) {
		t.Fatalf("a counted zero is not pending")
	}
}

func TestBuild_BalancedRequiresCount(t *testing.T) {
	t.Parallel()

	item := model.Item{Code: "A3", Expected: 0}

	// Uncounted with expected 0: difference is 0 but not balanced.
	if BucketBalanced.Matches(Build(item, model.Unset())) {
		t.Fatalf("balanced must require a counted entry")
	}
	if !BucketBalanced.Matches(Build(item, model.Counted("0"))) {
		t.Fatalf("counted zero against expected zero is balanced")
	}
}

// Resolve and Display must never diverge: whenever Display is "",
// Resolve is 0. Regression guard against the phantom-zero bug class.
func TestResolveDisplayNeverDiverge(t *testing.T) {
	t.Parallel()

	values := []model.CountValue{
		model.Unset(),
		model.Cleared(),
		model.Counted(""),
		model.Counted("0"),
		model.Counted("7"),
		model.Counted("abc"),
	}
	for _, v := range values {
		if v.Display() == "" && v.Resolve() != 0 {
			t.Fatalf("empty display with nonzero resolve: %+v", v)
		}
	}
	if model.Counted("").WasCounted() {
		t.Fatalf("Counted(\"\") must degrade to cleared")
	}
}

func TestNonNumericCountResolvesToZero(t *testing.T) {
	t.Parallel()

	row := Build(model.Item{Code: "A1", Expected: 4}, model.Counted("abc"))
	if row.Real != 0 || row.Difference != -4 {
		t.Fatalf("real=%d diff=%d, want 0/-4", row.Real, row.Difference)
	}
	if !row.Counted {
		t.Fatalf("non-numeric input still marks the item as counted")
	}
	if row.Raw != "abc" {
		t.Fatalf("display must keep the raw input verbatim, got %q", row.Raw)
	}
}

func TestParseBucket(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"todos", "pendentes", "diferencas", "sobras", "perdas", "iguais"} {
		if _, err := ParseBucket(name); err != nil {
			t.Fatalf("ParseBucket(%q): %v", name, err)
		}
	}
	if b, err := ParseBucket(""); err != nil || b != BucketAll {
		t.Fatalf("empty bucket should default to todos, got %v %v", b, err)
	}
	if _, err := ParseBucket("whatever"); err == nil {
		t.Fatalf("unknown bucket must be rejected")
	}
}

func TestMatchesQuery(t *testing.T) {
	t.Parallel()

	item := model.Item{Code: "A1", Description: "Widget"}
	if !MatchesQuery(item, "widget") {
		t.Fatalf("case-insensitive description match expected")
	}
	if !MatchesQuery(item, "a1") {
		t.Fatalf("code match expected")
	}
	if MatchesQuery(item, "gadget") {
		t.Fatalf("no match expected")
	}
	if !MatchesQuery(item, "") {
		t.Fatalf("empty query matches everything")
	}
}

func TestSortByDescription_IgnoresCaseAndAccents(t *testing.T) {
	t.Parallel()

	items := []model.Item{
		{Code: "C", Description: "Óleo"},
		{Code: "A", Description: "água"},
		{Code: "B", Description: "Farinha"},
	}
	SortByDescription(items)

	got := items[0].Description + "," + items[1].Description + "," + items[2].Description
	if got != "água,Farinha,Óleo" {
		t.Fatalf("unexpected order: %s", got)
	}
}
