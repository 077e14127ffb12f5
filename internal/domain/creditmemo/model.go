package creditmemo

import (
	"github.com/shopspring/decimal"

	"github.com/vidinfra/salesdocs/internal/types"
)

// CreditMemo is the model entity for quantities refunded, either against an
// order directly or against one specific invoice.
type CreditMemo struct {
	ID               string                `json:"id"`
	CreditMemoNumber string                `json:"credit_memo_number"`
	OrderID          string                `json:"order_id"`
	InvoiceID        *string               `json:"invoice_id,omitempty"`
	State            types.CreditMemoState `json:"state"`
	Currency         string                `json:"currency"`

	LineItems []*CreditMemoLineItem `json:"line_items"`
	TotalQty  decimal.Decimal       `json:"total_qty"`

	AdjustmentPositive decimal.Decimal `json:"adjustment_positive"`
	AdjustmentNegative decimal.Decimal `json:"adjustment_negative"`
	BaseShippingAmount decimal.Decimal `json:"base_shipping_amount"`
	Subtotal           decimal.Decimal `json:"subtotal"`
	GrandTotal         decimal.Decimal `json:"grand_total"`

	Metadata types.Metadata `json:"metadata,omitempty"`
}

// CreditMemoLineItem references one order item and carries its refunded
// quantity.
type CreditMemoLineItem struct {
	ID           string          `json:"id"`
	CreditMemoID string          `json:"credit_memo_id"`
	OrderItemID  string          `json:"order_item_id"`
	Sku          string          `json:"sku"`
	DisplayName  string          `json:"display_name"`
	Qty          decimal.Decimal `json:"qty"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	Amount       decimal.Decimal `json:"amount"`
}

// AddLineItem appends a line to the credit memo.
func (c *CreditMemo) AddLineItem(item *CreditMemoLineItem) {
	item.CreditMemoID = c.ID
	c.LineItems = append(c.LineItems, item)
}

// IsCanceled reports whether the credit memo is excluded from refund
// aggregation.
func (c *CreditMemo) IsCanceled() bool {
	return c.State == types.CreditMemoStateCanceled
}
