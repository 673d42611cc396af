package model

// SnapshotRow is the fully-resolved persisted form of one item:
// unset counts have already been resolved to 0.
type SnapshotRow struct {
	Code        string `json:"codigo"`
	Description string `json:"nome"`
	Expected    int    `json:"sistema"`
	Real        int    `json:"real"`
	Difference  int    `json:"diferenca"`
	Date        string `json:"data,omitempty"`
	Warehouse   string `json:"armazem,omitempty"`
}

// Snapshot is one persisted reconciliation. Identity is (Date, Warehouse);
// a save always replaces the whole snapshot for that identity.
type Snapshot struct {
	Date      string        `json:"data"`
	Warehouse string        `json:"armazem"`
	Rows      []SnapshotRow `json:"itens"`
}

// SnapshotSummary identifies one saved snapshot in the history listing.
type SnapshotSummary struct {
	Date      string `json:"data"`
	Warehouse string `json:"armazem"`
}
