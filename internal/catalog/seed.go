package catalog

import (
	"github.com/shopspring/decimal"

	"github.com/pharmadesk/api/internal/enum"
)

// Seed returns the built-in pharmacy catalog for a document kind. Sale
// catalogs carry selling prices and shelf stock; purchase-order and
// delivery-note catalogs carry supplier costs. Serves as the catalog
// source's data set until a real inventory feed replaces it.
func Seed(kind string) []Entry {
	switch kind {
	case enum.DocKindPurchaseOrder:
		return []Entry{
			{ID: "1", Name: "Paracetamol 500mg", UnitPrice: decimal.RequireFromString("3.50"), StockQuantity: 50},
			{ID: "2", Name: "Amoxicillin 250mg", UnitPrice: decimal.RequireFromString("8.75"), StockQuantity: 25},
			{ID: "3", Name: "Ibuprofen 400mg", UnitPrice: decimal.RequireFromString("5.25"), StockQuantity: 30},
			{ID: "4", Name: "Cetirizine 10mg", UnitPrice: decimal.RequireFromString("4.50"), StockQuantity: 15},
			{ID: "5", Name: "Vitamin C 1000mg", UnitPrice: decimal.RequireFromString("12.99"), StockQuantity: 40},
		}
	case enum.DocKindDeliveryNote:
		return []Entry{
			{ID: "1", Name: "Paracetamol 500mg", UnitPrice: decimal.RequireFromString("3.50")},
			{ID: "2", Name: "Amoxicillin 250mg", UnitPrice: decimal.RequireFromString("8.75")},
			{ID: "3", Name: "Ibuprofen 400mg", UnitPrice: decimal.RequireFromString("5.25")},
			{ID: "4", Name: "Cetirizine 10mg", UnitPrice: decimal.RequireFromString("4.50")},
			{ID: "5", Name: "Vitamin C 1000mg", UnitPrice: decimal.RequireFromString("12.99")},
		}
	default:
		return []Entry{
			{ID: "1", Name: "Paracetamol 500mg", UnitPrice: decimal.RequireFromString("5.99"), StockQuantity: 150},
			{ID: "2", Name: "Amoxicillin 250mg", UnitPrice: decimal.RequireFromString("12.50"), StockQuantity: 80},
			{ID: "3", Name: "Ibuprofen 400mg", UnitPrice: decimal.RequireFromString("8.75"), StockQuantity: 120},
			{ID: "4", Name: "Cetirizine 10mg", UnitPrice: decimal.RequireFromString("6.25"), StockQuantity: 95},
			{ID: "5", Name: "Vitamin C 1000mg", UnitPrice: decimal.RequireFromString("15.99"), StockQuantity: 200},
		}
	}
}
