// Package totals recomputes the derived monetary fields of an order
// document. Compute is a pure function of its inputs: it reads the current
// line items and order-level adjustments and produces every derived value
// from scratch on each call. There is no incremental update path; bounded
// list sizes make a full recompute cheaper than getting deltas right.
package totals

import (
	"github.com/shopspring/decimal"

	"github.com/pharmadesk/api/internal/document"
	"github.com/pharmadesk/api/internal/enum"
)

var hundred = decimal.NewFromInt(100)

// LineTotal computes the derived total of one line item under the given
// document kind. Sales and purchase orders price quantity at unit price
// less a percentage discount; delivery notes price the received quantity
// at unit cost, with the ordered quantity informational only. The result
// is clamped to zero so a discount over 100 or a negative quantity that
// slipped past upstream validation never produces a negative total.
func LineTotal(kind string, item document.LineItem) decimal.Decimal {
	var line decimal.Decimal
	switch kind {
	case enum.DocKindDeliveryNote:
		line = item.UnitPrice.Mul(decimal.NewFromInt(item.QuantityReceived))
	default:
		raw := item.UnitPrice.Mul(decimal.NewFromInt(item.Quantity))
		discount := raw.Mul(item.DiscountPercent).Div(hundred)
		line = raw.Sub(discount)
	}
	if line.IsNegative() {
		return decimal.Zero
	}
	return line
}

// Compute derives the order totals from the line items and adjustments.
// All accumulation runs at full precision; rounding to two fractional
// digits happens only where a value is displayed, never here, so repeated
// recomputation cannot compound rounding error.
func Compute(kind string, items []document.LineItem, adj document.Adjustments) document.Totals {
	subtotal := decimal.Zero
	for _, item := range items {
		subtotal = subtotal.Add(LineTotal(kind, item))
	}

	taxAmount := subtotal.Mul(adj.TaxRatePercent).Div(hundred)
	if taxAmount.IsNegative() {
		taxAmount = decimal.Zero
	}

	// Shipping applies to purchase orders only; other kinds carry zero.
	shipping := decimal.Zero
	if kind == enum.DocKindPurchaseOrder && adj.ShippingCost.IsPositive() {
		shipping = adj.ShippingCost
	}

	grand := subtotal.Add(taxAmount).Add(shipping)
	if grand.IsNegative() {
		grand = decimal.Zero
	}

	return document.Totals{
		Subtotal:     subtotal,
		TaxAmount:    taxAmount,
		ShippingCost: shipping,
		GrandTotal:   grand,
	}
}
