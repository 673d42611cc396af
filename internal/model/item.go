package model

// Item is one expected-stock line of the working catalog.
// Identity is Code; items are immutable once loaded from a
// spreadsheet or a reloaded snapshot.
type Item struct {
	Code        string `json:"codigo"`
	Description string `json:"nome"`
	Expected    int    `json:"sistema"`
}
