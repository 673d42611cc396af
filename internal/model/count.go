package model

import "strconv"

// CountState distinguishes an entry the user never touched from one
// explicitly cleared and from one carrying a typed-in value.
type CountState int

const (
	CountUnset CountState = iota
	CountCleared
	CountCounted
)

// CountValue is the raw user-entered count for one item. The raw string
// is kept verbatim so "counted as zero" and "not yet counted" never
// collapse into each other.
type CountValue struct {
	state CountState
	raw   string
}

// Unset is the zero value: the item was never counted.
func Unset() CountValue {
	return CountValue{state: CountUnset}
}

// Cleared marks an entry the user emptied after typing something.
func Cleared() CountValue {
	return CountValue{state: CountCleared}
}

// Counted wraps a raw input string. An empty raw string degrades to
// Cleared so the two can never diverge.
func Counted(raw string) CountValue {
	if raw == "" {
		return CountValue{state: CountCleared}
	}
	return CountValue{state: CountCounted, raw: raw}
}

// Display returns the stored raw value verbatim, or "" when the entry
// is unset or cleared. It never substitutes a zero.
func (v CountValue) Display() string {
	if v.state != CountCounted {
		return ""
	}
	return v.raw
}

// Resolve converts the entry to a concrete quantity: unset, cleared and
// non-numeric input all resolve to 0.
func (v CountValue) Resolve() int {
	if v.state != CountCounted {
		return 0
	}
	if n, err := strconv.Atoi(v.raw); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(v.raw, 64); err == nil {
		return int(f)
	}
	return 0
}

// WasCounted reports whether the user entered anything at all,
// including an explicit "0".
func (v CountValue) WasCounted() bool {
	return v.state == CountCounted
}
