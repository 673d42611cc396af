package reconcile

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/Zaky-dc/shifaa-inventory/internal/model"
)

// SortByDescription orders items alphabetically by description using a
// Portuguese collation that ignores case and accents. Applied once when
// a snapshot is reloaded; filtering afterwards never re-sorts.
func SortByDescription(items []model.Item) {
	c := collate.New(language.Portuguese, collate.IgnoreCase, collate.IgnoreDiacritics)
	sort.SliceStable(items, func(i, j int) bool {
		if cmp := c.CompareString(items[i].Description, items[j].Description); cmp != 0 {
			return cmp < 0
		}
		return items[i].Code < items[j].Code
	})
}
