package document

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/pharmadesk/api/internal/enum"
)

func TestNewItemStoreNeverEmpty(t *testing.T) {
	s := NewItemStore(nil)
	if s.Len() != 1 {
		t.Fatalf("Len() = %d, want 1 blank item", s.Len())
	}
	if got := s.Items()[0]; got != BlankItem() {
		t.Errorf("initial item = %+v, want blank", got)
	}
}

func TestNewItemStoreCopiesInitial(t *testing.T) {
	initial := []LineItem{{DisplayName: "Paracetamol 500mg"}}
	s := NewItemStore(initial)

	initial[0].DisplayName = "mutated"
	if got := s.Items()[0].DisplayName; got != "Paracetamol 500mg" {
		t.Errorf("store observed caller mutation: DisplayName = %q", got)
	}
}

func TestAppend(t *testing.T) {
	s := NewItemStore(nil)
	items := s.Append()
	if len(items) != 2 {
		t.Fatalf("Append() returned %d items, want 2", len(items))
	}
	if items[1] != BlankItem() {
		t.Errorf("appended item = %+v, want blank", items[1])
	}
}

func TestRemoveAtRefusesLastItem(t *testing.T) {
	s := NewItemStore(nil)

	items, err := s.RemoveAt(0)
	if !errors.Is(err, ErrLastItem) {
		t.Fatalf("RemoveAt(0) error = %v, want ErrLastItem", err)
	}
	if len(items) != 1 || s.Len() != 1 {
		t.Errorf("store holds %d items after refused removal, want exactly 1", s.Len())
	}
}

func TestRemoveAtPreservesOrder(t *testing.T) {
	s := NewItemStore([]LineItem{
		{DisplayName: "first"},
		{DisplayName: "second"},
		{DisplayName: "third"},
	})

	items, err := s.RemoveAt(1)
	if err != nil {
		t.Fatalf("RemoveAt(1) error = %v", err)
	}
	if len(items) != 2 || items[0].DisplayName != "first" || items[1].DisplayName != "third" {
		t.Errorf("items after removal = %+v", items)
	}
}

func TestRemoveAtIndexOutOfRange(t *testing.T) {
	s := NewItemStore([]LineItem{{}, {}})
	if _, err := s.RemoveAt(5); !errors.Is(err, ErrItemIndex) {
		t.Errorf("RemoveAt(5) error = %v, want ErrItemIndex", err)
	}
	if _, err := s.RemoveAt(-1); !errors.Is(err, ErrItemIndex) {
		t.Errorf("RemoveAt(-1) error = %v, want ErrItemIndex", err)
	}
}

func TestUpdateCoercion(t *testing.T) {
	tests := []struct {
		name  string
		field string
		raw   string
		check func(t *testing.T, item LineItem)
	}{
		{"display name", enum.ItemFieldDisplayName, "Ibuprofen 400mg", func(t *testing.T, item LineItem) {
			if item.DisplayName != "Ibuprofen 400mg" {
				t.Errorf("DisplayName = %q", item.DisplayName)
			}
		}},
		{"quantity", enum.ItemFieldQuantity, "12", func(t *testing.T, item LineItem) {
			if item.Quantity != 12 {
				t.Errorf("Quantity = %d, want 12", item.Quantity)
			}
		}},
		{"quantity unparseable becomes zero", enum.ItemFieldQuantity, "abc", func(t *testing.T, item LineItem) {
			if item.Quantity != 0 {
				t.Errorf("Quantity = %d, want 0", item.Quantity)
			}
		}},
		{"unit price", enum.ItemFieldUnitPrice, "5.25", func(t *testing.T, item LineItem) {
			if !item.UnitPrice.Equal(decimal.RequireFromString("5.25")) {
				t.Errorf("UnitPrice = %s, want 5.25", item.UnitPrice)
			}
		}},
		{"unit price unparseable becomes zero", enum.ItemFieldUnitPrice, "five", func(t *testing.T, item LineItem) {
			if !item.UnitPrice.IsZero() {
				t.Errorf("UnitPrice = %s, want 0", item.UnitPrice)
			}
		}},
		{"discount with whitespace", enum.ItemFieldDiscountPercent, " 15 ", func(t *testing.T, item LineItem) {
			if !item.DiscountPercent.Equal(decimal.RequireFromString("15")) {
				t.Errorf("DiscountPercent = %s, want 15", item.DiscountPercent)
			}
		}},
		{"quantity received", enum.ItemFieldQuantityReceived, "80", func(t *testing.T, item LineItem) {
			if item.QuantityReceived != 80 {
				t.Errorf("QuantityReceived = %d, want 80", item.QuantityReceived)
			}
		}},
		{"batch number", enum.ItemFieldBatchNumber, "LOT-2219", func(t *testing.T, item LineItem) {
			if item.BatchNumber != "LOT-2219" {
				t.Errorf("BatchNumber = %q", item.BatchNumber)
			}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewItemStore(nil)
			items, err := s.Update(0, tt.field, tt.raw)
			if err != nil {
				t.Fatalf("Update error = %v", err)
			}
			tt.check(t, items[0])
		})
	}
}

func TestUpdateUnknownField(t *testing.T) {
	s := NewItemStore(nil)
	if _, err := s.Update(0, "line_total", "99"); !errors.Is(err, ErrUnknownField) {
		t.Errorf("Update(line_total) error = %v, want ErrUnknownField", err)
	}
}

func TestUpdateDoesNotComputeTotals(t *testing.T) {
	s := NewItemStore(nil)
	s.Update(0, enum.ItemFieldQuantity, "3")
	s.Update(0, enum.ItemFieldUnitPrice, "10.00")

	if got := s.Items()[0].LineTotal; !got.IsZero() {
		t.Errorf("LineTotal = %s after raw updates, want 0 (store never computes)", got)
	}
}

func TestApplyPatchAtomic(t *testing.T) {
	s := NewItemStore(nil)
	patch := ItemPatch{
		ProductRef:  "3",
		DisplayName: "Ibuprofen 400mg",
		UnitPrice:   decimal.RequireFromString("5.25"),
	}

	items, err := s.ApplyPatch(0, patch)
	if err != nil {
		t.Fatalf("ApplyPatch error = %v", err)
	}

	got := items[0]
	if got.ProductRef != "3" || got.DisplayName != "Ibuprofen 400mg" || !got.UnitPrice.Equal(patch.UnitPrice) {
		t.Errorf("patched item = %+v", got)
	}
}

func TestSetLineTotal(t *testing.T) {
	s := NewItemStore(nil)
	if err := s.SetLineTotal(0, decimal.RequireFromString("30.00")); err != nil {
		t.Fatalf("SetLineTotal error = %v", err)
	}
	if got := s.Items()[0].LineTotal; !got.Equal(decimal.RequireFromString("30.00")) {
		t.Errorf("LineTotal = %s, want 30.00", got)
	}
	if err := s.SetLineTotal(9, decimal.Zero); !errors.Is(err, ErrItemIndex) {
		t.Errorf("SetLineTotal(9) error = %v, want ErrItemIndex", err)
	}
}
