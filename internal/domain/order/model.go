package order

import (
	"github.com/shopspring/decimal"

	"github.com/vidinfra/salesdocs/internal/types"
)

// Order is the model entity for a placed commerce order. It owns its items
// for the lifetime of the order; invoicing and refund flows decrement the
// per-item allowance counters as documents are submitted.
type Order struct {
	ID          string       `json:"id"`
	OrderNumber string       `json:"order_number"`
	StoreID     string       `json:"store_id"`
	CustomerID  string       `json:"customer_id"`
	Currency    string       `json:"currency"`
	Items       []*OrderItem `json:"items"`

	BaseShippingAmount      decimal.Decimal `json:"base_shipping_amount"`
	BaseShippingInclTax     decimal.Decimal `json:"base_shipping_incl_tax"`
	BaseShippingRefunded    decimal.Decimal `json:"base_shipping_refunded"`
	BaseShippingTaxRefunded decimal.Decimal `json:"base_shipping_tax_refunded"`

	Metadata types.Metadata `json:"metadata,omitempty"`
}

// OrderItem is one ordered line. Exactly one of the three shapes holds per
// item: plain, dummy parent (composite placeholder billed through its plain
// children), or dummy child (composite member billed through its plain
// parent).
type OrderItem struct {
	ID          string              `json:"id"`
	OrderID     string              `json:"order_id"`
	Sku         string              `json:"sku"`
	DisplayName string              `json:"display_name"`
	Role        types.OrderItemRole `json:"role"`

	QtyOrdered   decimal.Decimal `json:"qty_ordered"`
	QtyToInvoice decimal.Decimal `json:"qty_to_invoice"`
	QtyToRefund  decimal.Decimal `json:"qty_to_refund"`
	IsQtyDecimal bool            `json:"is_qty_decimal"`

	LockedDoInvoice bool `json:"locked_do_invoice"`
	LockedDoShip    bool `json:"locked_do_ship"`

	UnitPrice decimal.Decimal `json:"unit_price"`

	// Children nests member items under their parent line for tree
	// traversal; Parent is the matching back-reference. The eligibility
	// rules only consult Children on dummy parents and Parent on dummy
	// children. Neither link is serialized.
	Parent   *OrderItem   `json:"-"`
	Children []*OrderItem `json:"-"`
}

// IsDummy reports whether the item is a composite placeholder with no
// independently billable quantity of its own.
func (i *OrderItem) IsDummy() bool {
	return i.Role != types.OrderItemRolePlain
}

// HasChildren reports whether the item has member items nested under it.
func (i *OrderItem) HasChildren() bool {
	return len(i.Children) > 0
}

// AllItems returns the flattened item list, each bundle parent immediately
// followed by its children.
func (o *Order) AllItems() []*OrderItem {
	items := make([]*OrderItem, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, item)
		items = append(items, item.Children...)
	}
	return items
}

// ItemByID looks up an order item anywhere in the composite tree.
func (o *Order) ItemByID(id string) (*OrderItem, bool) {
	for _, item := range o.AllItems() {
		if item.ID == id {
			return item, true
		}
	}
	return nil, false
}
