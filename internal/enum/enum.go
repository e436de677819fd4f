package enum

// ── Document kinds (select the derived-total formula) ──

const (
	DocKindSale          = "SALE"
	DocKindPurchaseOrder = "PURCHASE_ORDER"
	DocKindDeliveryNote  = "DELIVERY_NOTE"
)

// DocKinds lists every valid document kind, in routing order.
var DocKinds = []string{DocKindSale, DocKindPurchaseOrder, DocKindDeliveryNote}

// IsDocKind reports whether s names a known document kind.
func IsDocKind(s string) bool {
	switch s {
	case DocKindSale, DocKindPurchaseOrder, DocKindDeliveryNote:
		return true
	}
	return false
}

// ── Line-item fields (ItemStore.Update targets) ──

const (
	ItemFieldDisplayName      = "display_name"
	ItemFieldQuantity         = "quantity"
	ItemFieldQuantityOrdered  = "quantity_ordered"
	ItemFieldQuantityReceived = "quantity_received"
	ItemFieldUnitPrice        = "unit_price"
	ItemFieldDiscountPercent  = "discount_percent"
	ItemFieldBatchNumber      = "batch_number"
	ItemFieldExpirationDate   = "expiration_date"
)

// ── Order-level adjustment fields ──

const (
	AdjustmentFieldTaxRate      = "tax_rate_percent"
	AdjustmentFieldShippingCost = "shipping_cost"
)

// ── Lookup dropdown states (per line item) ──

const (
	LookupIdle      = "IDLE"
	LookupSearching = "SEARCHING"
	LookupSelected  = "SELECTED"
)

// ── Configurable labels (pass-through header values, no computation) ──

const (
	PaymentMethodCash      = "CASH"
	PaymentMethodCard      = "CARD"
	PaymentMethodInsurance = "INSURANCE"
	PaymentMethodCheck     = "CHECK"
	PaymentMethodDigital   = "DIGITAL"
)

const (
	PurchaseStatusDraft     = "DRAFT"
	PurchaseStatusPending   = "PENDING"
	PurchaseStatusApproved  = "APPROVED"
	PurchaseStatusSent      = "SENT"
	PurchaseStatusReceived  = "RECEIVED"
	PurchaseStatusCancelled = "CANCELLED"
)

const (
	PurchasePriorityLow    = "LOW"
	PurchasePriorityMedium = "MEDIUM"
	PurchasePriorityHigh   = "HIGH"
	PurchasePriorityUrgent = "URGENT"
)

const (
	DeliveryStatusPending   = "PENDING"
	DeliveryStatusPartial   = "PARTIAL"
	DeliveryStatusComplete  = "COMPLETE"
	DeliveryStatusCancelled = "CANCELLED"
)
