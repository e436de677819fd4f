package document

import (
	"errors"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/pharmadesk/api/internal/enum"
)

// Errors returned by the item store.
var (
	ErrLastItem     = errors.New("cannot remove the last line item")
	ErrItemIndex    = errors.New("line item index out of range")
	ErrUnknownField = errors.New("unknown line item field")
)

// ItemStore owns the ordered line-item list of one document being edited.
// It stores raw, possibly inconsistent inputs and performs no price
// computation; derived fields are written back through SetLineTotal only.
// Single-threaded by contract: one form instance, one writer.
type ItemStore struct {
	items []LineItem
}

// NewItemStore creates a store seeded with the given items. The list is
// never empty: with no initial items it starts with one blank row.
func NewItemStore(initial []LineItem) *ItemStore {
	items := make([]LineItem, len(initial))
	copy(items, initial)
	if len(items) == 0 {
		items = []LineItem{BlankItem()}
	}
	return &ItemStore{items: items}
}

// Len returns the number of line items.
func (s *ItemStore) Len() int { return len(s.items) }

// Items returns a copy of the current ordered sequence.
func (s *ItemStore) Items() []LineItem {
	out := make([]LineItem, len(s.items))
	copy(out, s.items)
	return out
}

// Append adds a blank line item at the end and returns the new sequence.
func (s *ItemStore) Append() []LineItem {
	s.items = append(s.items, BlankItem())
	return s.Items()
}

// RemoveAt deletes the item at index i. Removing the last remaining item is
// refused with ErrLastItem and leaves the list untouched.
func (s *ItemStore) RemoveAt(i int) ([]LineItem, error) {
	if i < 0 || i >= len(s.items) {
		return s.Items(), ErrItemIndex
	}
	if len(s.items) == 1 {
		return s.Items(), ErrLastItem
	}
	s.items = append(s.items[:i], s.items[i+1:]...)
	return s.Items(), nil
}

// Update replaces one scalar field of one item with the coerced value of
// raw. Numeric fields treat unparseable input as zero; validation of
// ranges is the form schema's concern, not the store's.
func (s *ItemStore) Update(i int, field, raw string) ([]LineItem, error) {
	if i < 0 || i >= len(s.items) {
		return s.Items(), ErrItemIndex
	}
	item := &s.items[i]
	switch field {
	case enum.ItemFieldDisplayName:
		item.DisplayName = raw
	case enum.ItemFieldQuantity:
		item.Quantity = parseQuantity(raw)
	case enum.ItemFieldQuantityOrdered:
		item.QuantityOrdered = parseQuantity(raw)
	case enum.ItemFieldQuantityReceived:
		item.QuantityReceived = parseQuantity(raw)
	case enum.ItemFieldUnitPrice:
		item.UnitPrice = parseDecimal(raw)
	case enum.ItemFieldDiscountPercent:
		item.DiscountPercent = parseDecimal(raw)
	case enum.ItemFieldBatchNumber:
		item.BatchNumber = raw
	case enum.ItemFieldExpirationDate:
		item.ExpirationDate = raw
	default:
		return s.Items(), ErrUnknownField
	}
	return s.Items(), nil
}

// ApplyPatch writes a catalog selection into the item at index i as one
// atomic write, so no recompute can observe a half-populated row.
func (s *ItemStore) ApplyPatch(i int, patch ItemPatch) ([]LineItem, error) {
	if i < 0 || i >= len(s.items) {
		return s.Items(), ErrItemIndex
	}
	item := &s.items[i]
	item.ProductRef = patch.ProductRef
	item.DisplayName = patch.DisplayName
	item.UnitPrice = patch.UnitPrice
	return s.Items(), nil
}

// SetLineTotal writes a derived per-line total. Reserved for the totals
// engine's write-back; input handlers must never call it.
func (s *ItemStore) SetLineTotal(i int, total decimal.Decimal) error {
	if i < 0 || i >= len(s.items) {
		return ErrItemIndex
	}
	s.items[i].LineTotal = total
	return nil
}

func parseQuantity(raw string) int64 {
	n, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0
	}
	return n
}

func parseDecimal(raw string) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Zero
	}
	return d
}
