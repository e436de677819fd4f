package document

import (
	"github.com/shopspring/decimal"

	"github.com/pharmadesk/api/internal/enum"
)

// LineItem is one row of an order document. Raw input fields hold whatever
// the user typed, possibly inconsistent; LineTotal is derived and written
// only by the totals engine.
type LineItem struct {
	ProductRef       string          `json:"product_ref"` // catalog entry ID, empty until a product is selected
	DisplayName      string          `json:"display_name"`
	Quantity         int64           `json:"quantity"`
	QuantityOrdered  int64           `json:"quantity_ordered,omitempty"`  // delivery notes, informational
	QuantityReceived int64           `json:"quantity_received,omitempty"` // delivery notes, priced
	UnitPrice        decimal.Decimal `json:"unit_price"`
	DiscountPercent  decimal.Decimal `json:"discount_percent"`
	BatchNumber      string          `json:"batch_number,omitempty"`
	ExpirationDate   string          `json:"expiration_date,omitempty"` // calendar date, YYYY-MM-DD
	LineTotal        decimal.Decimal `json:"line_total"`
}

// Adjustments are order-level modifiers applied after summing line items.
type Adjustments struct {
	TaxRatePercent decimal.Decimal `json:"tax_rate_percent"`
	ShippingCost   decimal.Decimal `json:"shipping_cost"` // purchase orders only
}

// Totals is fully derived and never written by input handlers.
type Totals struct {
	Subtotal     decimal.Decimal `json:"subtotal"`
	TaxAmount    decimal.Decimal `json:"tax_amount"`
	ShippingCost decimal.Decimal `json:"shipping_cost"`
	GrandTotal   decimal.Decimal `json:"grand_total"`
}

// Header carries the pass-through fields of a document. The engine never
// computes on these; which fields are meaningful depends on the kind.
type Header struct {
	// Sales
	CustomerName       string `json:"customer_name,omitempty"`
	CustomerPhone      string `json:"customer_phone,omitempty"`
	CustomerEmail      string `json:"customer_email,omitempty"`
	SaleDate           string `json:"sale_date,omitempty"`
	PaymentMethod      string `json:"payment_method,omitempty"`
	PrescriptionNumber string `json:"prescription_number,omitempty"`

	// Purchase orders; delivery notes reference the PO via PurchaseOrderNumber.
	PurchaseOrderNumber  string `json:"purchase_order_number,omitempty"`
	SupplierName         string `json:"supplier_name,omitempty"`
	SupplierContact      string `json:"supplier_contact,omitempty"`
	SupplierEmail        string `json:"supplier_email,omitempty"`
	OrderDate            string `json:"order_date,omitempty"`
	ExpectedDeliveryDate string `json:"expected_delivery_date,omitempty"`
	Priority             string `json:"priority,omitempty"`

	// Delivery notes
	DeliveryNoteNumber string `json:"delivery_note_number,omitempty"`
	DeliveryDate       string `json:"delivery_date,omitempty"`
	ReceivedBy         string `json:"received_by,omitempty"`

	Status string `json:"status,omitempty"`
	Notes  string `json:"notes,omitempty"`
}

// Document is one complete order document: header, line items, adjustments
// and derived totals. ID is assigned by the submission sink on receipt.
type Document struct {
	ID          string      `json:"id,omitempty"`
	Kind        string      `json:"kind"`
	Header      Header      `json:"header"`
	Items       []LineItem  `json:"items"`
	Adjustments Adjustments `json:"adjustments"`
	Totals      Totals      `json:"totals"`
}

// ItemPatch populates one line item from a catalog entry as a single
// logical write, never three independent field updates.
type ItemPatch struct {
	ProductRef  string
	DisplayName string
	UnitPrice   decimal.Decimal
}

// BlankItem returns a fresh zero-valued line item.
func BlankItem() LineItem {
	return LineItem{}
}

// New creates an empty document of the given kind with a single blank line
// item and default adjustments, ready for editing.
func New(kind string) Document {
	doc := Document{Kind: kind, Items: []LineItem{BlankItem()}}
	if kind == enum.DocKindPurchaseOrder {
		doc.Header.Status = enum.PurchaseStatusDraft
		doc.Header.Priority = enum.PurchasePriorityMedium
	}
	if kind == enum.DocKindDeliveryNote {
		doc.Header.Status = enum.DeliveryStatusPending
	}
	return doc
}
