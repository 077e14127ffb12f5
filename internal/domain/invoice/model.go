package invoice

import (
	"github.com/shopspring/decimal"

	"github.com/vidinfra/salesdocs/internal/types"
)

// Invoice is the model entity for quantities billed against an order. A
// freshly prepared invoice is a draft owned by the caller until submitted.
type Invoice struct {
	ID            string             `json:"id"`
	InvoiceNumber string             `json:"invoice_number"`
	OrderID       string             `json:"order_id"`
	State         types.InvoiceState `json:"state"`
	Currency      string             `json:"currency"`

	LineItems []*InvoiceLineItem `json:"line_items"`
	TotalQty  decimal.Decimal    `json:"total_qty"`

	BaseShippingAmount decimal.Decimal `json:"base_shipping_amount"`
	Subtotal           decimal.Decimal `json:"subtotal"`
	GrandTotal         decimal.Decimal `json:"grand_total"`

	Metadata types.Metadata `json:"metadata,omitempty"`
}

// InvoiceLineItem references one order item and carries its billed quantity.
type InvoiceLineItem struct {
	ID          string          `json:"id"`
	InvoiceID   string          `json:"invoice_id"`
	OrderItemID string          `json:"order_item_id"`
	Sku         string          `json:"sku"`
	DisplayName string          `json:"display_name"`
	Qty         decimal.Decimal `json:"qty"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Amount      decimal.Decimal `json:"amount"`
}

// AddLineItem appends a line to the invoice.
func (i *Invoice) AddLineItem(item *InvoiceLineItem) {
	item.InvoiceID = i.ID
	i.LineItems = append(i.LineItems, item)
}
