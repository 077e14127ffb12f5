package service

import (
	"github.com/shopspring/decimal"

	"github.com/vidinfra/salesdocs/internal/domain/creditmemo"
	"github.com/vidinfra/salesdocs/internal/domain/invoice"
	"github.com/vidinfra/salesdocs/internal/domain/order"
	"github.com/vidinfra/salesdocs/internal/types"
)

// Convertor builds empty draft documents and draft line items from an order.
// The preparers decide which items appear and with what quantity; the
// convertor only shapes the records.
type Convertor interface {
	ToInvoice(o *order.Order) *invoice.Invoice
	ItemToInvoiceItem(item *order.OrderItem) *invoice.InvoiceLineItem
	ToCreditMemo(o *order.Order) *creditmemo.CreditMemo
	ItemToCreditMemoItem(item *order.OrderItem) *creditmemo.CreditMemoLineItem
}

type draftConvertor struct{}

// NewConvertor returns the default document convertor
func NewConvertor() Convertor {
	return &draftConvertor{}
}

func (c *draftConvertor) ToInvoice(o *order.Order) *invoice.Invoice {
	return &invoice.Invoice{
		ID:            types.GenerateUUIDWithPrefix(types.UUID_PREFIX_INVOICE),
		InvoiceNumber: types.GenerateShortIDWithPrefix(types.SHORT_ID_PREFIX_INVOICE),
		OrderID:       o.ID,
		State:         types.InvoiceStateDraft,
		Currency:      o.Currency,
		LineItems:     make([]*invoice.InvoiceLineItem, 0),
		TotalQty:      decimal.Zero,
	}
}

func (c *draftConvertor) ItemToInvoiceItem(item *order.OrderItem) *invoice.InvoiceLineItem {
	return &invoice.InvoiceLineItem{
		ID:          types.GenerateUUIDWithPrefix(types.UUID_PREFIX_INVOICE_LINE_ITEM),
		OrderItemID: item.ID,
		Sku:         item.Sku,
		DisplayName: item.DisplayName,
		UnitPrice:   item.UnitPrice,
		Qty:         decimal.Zero,
	}
}

func (c *draftConvertor) ToCreditMemo(o *order.Order) *creditmemo.CreditMemo {
	return &creditmemo.CreditMemo{
		ID:               types.GenerateUUIDWithPrefix(types.UUID_PREFIX_CREDIT_MEMO),
		CreditMemoNumber: types.GenerateShortIDWithPrefix(types.SHORT_ID_PREFIX_CREDIT_MEMO),
		OrderID:          o.ID,
		State:            types.CreditMemoStateDraft,
		Currency:         o.Currency,
		LineItems:        make([]*creditmemo.CreditMemoLineItem, 0),
		TotalQty:         decimal.Zero,
	}
}

func (c *draftConvertor) ItemToCreditMemoItem(item *order.OrderItem) *creditmemo.CreditMemoLineItem {
	return &creditmemo.CreditMemoLineItem{
		ID:          types.GenerateUUIDWithPrefix(types.UUID_PREFIX_CREDIT_MEMO_LINE_ITEM),
		OrderItemID: item.ID,
		Sku:         item.Sku,
		DisplayName: item.DisplayName,
		UnitPrice:   item.UnitPrice,
		Qty:         decimal.Zero,
	}
}
