// Package catalog holds the point-in-time snapshot of sellable and
// purchasable products a form looks up while typing. The index is
// immutable once built; refreshing it means fetching a new snapshot.
package catalog

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/pharmadesk/api/internal/document"
)

// Entry is read-only reference data for one product. UnitPrice is the
// selling price on sale catalogs and the purchase cost on purchase-order
// and delivery-note catalogs.
type Entry struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
	StockQuantity int64           `json:"stock_quantity"`
}

// Index answers lookup-while-typing queries over a fixed entry set.
// Safe for concurrent readers: nothing writes after construction.
type Index struct {
	entries []Entry
}

// NewIndex builds an index over a copy of the given entries.
func NewIndex(entries []Entry) *Index {
	snapshot := make([]Entry, len(entries))
	copy(snapshot, entries)
	return &Index{entries: snapshot}
}

// Len returns the number of catalog entries.
func (ix *Index) Len() int { return len(ix.entries) }

// Entries returns a copy of the full entry set.
func (ix *Index) Entries() []Entry {
	out := make([]Entry, len(ix.entries))
	copy(out, ix.entries)
	return out
}

// Search returns the entries whose name contains the query,
// case-insensitively, sorted by name ascending. A blank query returns
// nothing: the lookup is opt-in, not a full listing.
func (ix *Index) Search(query string) []Entry {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}
	var matches []Entry
	for _, e := range ix.entries {
		if strings.Contains(strings.ToLower(e.Name), q) {
			matches = append(matches, e)
		}
	}
	sort.Slice(matches, func(i, j int) bool { return matches[i].Name < matches[j].Name })
	return matches
}

// Select converts a chosen entry into the single patch the orchestrator
// applies to a line item; callers never write the three fields separately.
func Select(e Entry) document.ItemPatch {
	return document.ItemPatch{
		ProductRef:  e.ID,
		DisplayName: e.Name,
		UnitPrice:   e.UnitPrice,
	}
}
