package service

import (
	"context"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"github.com/vidinfra/salesdocs/internal/api/dto"
	"github.com/vidinfra/salesdocs/internal/domain/creditmemo"
	"github.com/vidinfra/salesdocs/internal/domain/invoice"
	"github.com/vidinfra/salesdocs/internal/domain/order"
	ierr "github.com/vidinfra/salesdocs/internal/errors"
	"github.com/vidinfra/salesdocs/internal/types"
)

// FulfillmentService decides how much of each ordered line item may currently
// be invoiced or refunded and materializes that decision into draft
// documents. It never decrements the order's allowance counters itself; that
// happens when the returned draft is submitted.
//
// The service performs no locking: callers must serialize concurrent
// preparation and submission for the same order or invoice, otherwise two
// preparations could both pass the eligibility checks and jointly
// over-allocate.
type FulfillmentService interface {
	// PrepareInvoice builds a draft invoice for the order. An empty request
	// invoices every eligible item for its full remaining quantity.
	PrepareInvoice(ctx context.Context, orderID string, req *dto.PrepareInvoiceRequest) (*invoice.Invoice, error)

	// PrepareCreditMemo builds a draft credit memo directly against the
	// order, with no invoice reference.
	PrepareCreditMemo(ctx context.Context, orderID string, req *dto.PrepareCreditMemoRequest) (*creditmemo.CreditMemo, error)

	// PrepareInvoiceCreditMemo builds a draft credit memo tied to one
	// existing invoice, capping each line by what that invoice billed minus
	// what prior non-canceled credit memos already refunded against it.
	PrepareInvoiceCreditMemo(ctx context.Context, invoiceID string, req *dto.PrepareCreditMemoRequest) (*creditmemo.CreditMemo, error)
}

type fulfillmentService struct {
	ServiceParams
}

func NewFulfillmentService(params ServiceParams) FulfillmentService {
	return &fulfillmentService{
		ServiceParams: params,
	}
}

func (s *fulfillmentService) PrepareInvoice(ctx context.Context, orderID string, req *dto.PrepareInvoiceRequest) (*invoice.Invoice, error) {
	if req == nil {
		req = &dto.PrepareInvoiceRequest{}
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	o, err := s.OrderRepo.Get(ctx, orderID)
	if err != nil {
		return nil, err
	}

	s.Logger.Infow("preparing invoice",
		"order_id", o.ID,
		"requested_items", len(req.Qtys))

	inv := s.Convertor.ToInvoice(o)
	totalQty := decimal.Zero

	for _, orderItem := range o.AllItems() {
		if !s.canInvoiceItem(orderItem, nil) {
			continue
		}
		item := s.Convertor.ItemToInvoiceItem(orderItem)

		var qty decimal.Decimal
		if orderItem.IsDummy() {
			// Dummy lines are driven by their children or parent; once
			// included they are always fully represented.
			if orderItem.QtyOrdered.IsPositive() {
				qty = orderItem.QtyOrdered
			} else {
				qty = decimal.NewFromInt(1)
			}
		} else if requested, ok := req.Qtys[orderItem.ID]; ok {
			qty = requested
		} else {
			qty = orderItem.QtyToInvoice
		}

		qty, err = s.setInvoiceItemQty(item, orderItem, qty)
		if err != nil {
			return nil, err
		}
		totalQty = totalQty.Add(qty)
		inv.AddLineItem(item)
	}

	inv.TotalQty = totalQty
	if err := s.TotalsCollector.CollectInvoiceTotals(inv); err != nil {
		return nil, err
	}

	s.Logger.Infow("invoice prepared",
		"order_id", o.ID,
		"invoice_id", inv.ID,
		"line_items", len(inv.LineItems),
		"total_qty", inv.TotalQty)

	return inv, nil
}

// setInvoiceItemQty normalizes and validates the candidate quantity for one
// invoice line. Items that do not permit fractional quantities are truncated
// to whole units, negatives floor to zero, and non-dummy items must not
// exceed their remaining invoiceable quantity. The comparison is numeric;
// dummy items are exempt because their counters are not authoritative.
func (s *fulfillmentService) setInvoiceItemQty(item *invoice.InvoiceLineItem, orderItem *order.OrderItem, qty decimal.Decimal) (decimal.Decimal, error) {
	if !orderItem.IsQtyDecimal {
		qty = qty.Truncate(0)
	}
	if qty.IsNegative() {
		qty = decimal.Zero
	}

	if qty.GreaterThan(orderItem.QtyToInvoice) && !orderItem.IsDummy() {
		return decimal.Zero, ierr.NewError("invalid quantity to invoice").
			WithHintf("We found an invalid quantity to invoice item %q.", item.DisplayName).
			WithReportableDetails(map[string]any{
				"order_item_id":  orderItem.ID,
				"requested_qty":  qty,
				"qty_to_invoice": orderItem.QtyToInvoice,
			}).
			Mark(ierr.ErrValidation)
	}

	item.Qty = qty
	return qty, nil
}

func (s *fulfillmentService) PrepareCreditMemo(ctx context.Context, orderID string, req *dto.PrepareCreditMemoRequest) (*creditmemo.CreditMemo, error) {
	if req == nil {
		req = &dto.PrepareCreditMemoRequest{}
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	o, err := s.OrderRepo.Get(ctx, orderID)
	if err != nil {
		return nil, err
	}

	s.Logger.Infow("preparing credit memo",
		"order_id", o.ID,
		"requested_items", len(req.Qtys))

	cm := s.Convertor.ToCreditMemo(o)
	totalQty := decimal.Zero

	for _, orderItem := range o.AllItems() {
		if !s.canRefundItem(orderItem, req.Qtys, nil) {
			continue
		}
		item := s.Convertor.ItemToCreditMemoItem(orderItem)

		var qty decimal.Decimal
		if orderItem.IsDummy() {
			qty = decimal.NewFromInt(1)
			// The shipment subsystem must not ship a composite whose
			// members are being refunded.
			orderItem.LockedDoShip = true
		} else if requested, ok := req.Qtys[orderItem.ID]; ok {
			qty = requested
		} else if len(req.Qtys) == 0 {
			qty = orderItem.QtyToRefund
		} else {
			continue
		}

		if qty.IsNegative() {
			qty = decimal.Zero
		}
		totalQty = totalQty.Add(qty)
		item.Qty = qty
		cm.AddLineItem(item)
	}

	cm.TotalQty = totalQty
	s.initCreditMemoData(cm, req)

	if err := s.TotalsCollector.CollectCreditMemoTotals(cm); err != nil {
		return nil, err
	}

	s.Logger.Infow("credit memo prepared",
		"order_id", o.ID,
		"credit_memo_id", cm.ID,
		"line_items", len(cm.LineItems),
		"total_qty", cm.TotalQty)

	return cm, nil
}

func (s *fulfillmentService) PrepareInvoiceCreditMemo(ctx context.Context, invoiceID string, req *dto.PrepareCreditMemoRequest) (*creditmemo.CreditMemo, error) {
	if req == nil {
		req = &dto.PrepareCreditMemoRequest{}
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	inv, err := s.InvoiceRepo.Get(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	if inv.State == types.InvoiceStateCanceled {
		return nil, ierr.NewError("invoice is canceled").
			WithHint("Credit memos cannot be issued against a canceled invoice.").
			WithReportableDetails(map[string]any{
				"invoice_id": inv.ID,
				"state":      inv.State,
			}).
			Mark(ierr.ErrInvalidOperation)
	}

	o, err := s.OrderRepo.Get(ctx, inv.OrderID)
	if err != nil {
		return nil, err
	}

	s.Logger.Infow("preparing credit memo for invoice",
		"order_id", o.ID,
		"invoice_id", inv.ID,
		"requested_items", len(req.Qtys))

	refundedSoFar, err := s.refundedQtysForInvoice(ctx, inv)
	if err != nil {
		return nil, err
	}

	refundLimits := make(map[string]decimal.Decimal, len(inv.LineItems))
	for _, line := range inv.LineItems {
		refundLimits[line.OrderItemID] = line.Qty.Sub(refundedSoFar[line.OrderItemID])
	}

	cm := s.Convertor.ToCreditMemo(o)
	cm.InvoiceID = lo.ToPtr(inv.ID)
	totalQty := decimal.Zero

	for _, invLine := range inv.LineItems {
		orderItem, ok := o.ItemByID(invLine.OrderItemID)
		if !ok {
			continue
		}
		if !s.canRefundItem(orderItem, req.Qtys, refundLimits) {
			continue
		}
		item := s.Convertor.ItemToCreditMemoItem(orderItem)

		var qty decimal.Decimal
		if orderItem.IsDummy() {
			qty = decimal.NewFromInt(1)
		} else {
			if requested, ok := req.Qtys[orderItem.ID]; ok {
				qty = requested
			} else if len(req.Qtys) == 0 {
				qty = orderItem.QtyToRefund
			} else {
				continue
			}
			if limit, ok := refundLimits[orderItem.ID]; ok {
				qty = decimal.Min(qty, limit)
			}
		}
		// Never refund more than this invoice line billed.
		qty = decimal.Min(qty, invLine.Qty)
		if qty.IsNegative() {
			qty = decimal.Zero
		}

		totalQty = totalQty.Add(qty)
		item.Qty = qty
		cm.AddLineItem(item)
	}

	cm.TotalQty = totalQty
	s.initCreditMemoData(cm, req)

	if req.ShippingAmount == nil {
		cm.BaseShippingAmount = s.shippingRefundCap(o, inv)
	}

	if err := s.TotalsCollector.CollectCreditMemoTotals(cm); err != nil {
		return nil, err
	}

	s.Logger.Infow("credit memo prepared for invoice",
		"order_id", o.ID,
		"invoice_id", inv.ID,
		"credit_memo_id", cm.ID,
		"line_items", len(cm.LineItems),
		"total_qty", cm.TotalQty,
		"base_shipping_amount", cm.BaseShippingAmount)

	return cm, nil
}

// refundedQtysForInvoice sums, per order item, the quantities already
// refunded against the given invoice by prior non-canceled credit memos.
func (s *fulfillmentService) refundedQtysForInvoice(ctx context.Context, inv *invoice.Invoice) (map[string]decimal.Decimal, error) {
	memos, err := s.CreditMemoRepo.ListByOrder(ctx, inv.OrderID)
	if err != nil {
		return nil, err
	}

	refunded := make(map[string]decimal.Decimal)
	for _, memo := range memos {
		if memo.IsCanceled() {
			continue
		}
		if memo.InvoiceID == nil || *memo.InvoiceID != inv.ID {
			continue
		}
		for _, line := range memo.LineItems {
			refunded[line.OrderItemID] = refunded[line.OrderItemID].Add(line.Qty)
		}
	}

	s.Logger.Debugw("aggregated prior refunds for invoice",
		"invoice_id", inv.ID,
		"credit_memos", len(memos),
		"order_items_refunded", len(refunded))

	return refunded, nil
}

// initCreditMemoData applies caller-supplied adjustment and shipping fields.
// A supplied shipping amount overrides the computed shipping refund cap;
// adjustment validity is an external policy concern.
func (s *fulfillmentService) initCreditMemoData(cm *creditmemo.CreditMemo, req *dto.PrepareCreditMemoRequest) {
	if req.ShippingAmount != nil {
		cm.BaseShippingAmount = *req.ShippingAmount
	}
	if req.AdjustmentPositive != nil {
		cm.AdjustmentPositive = *req.AdjustmentPositive
	}
	if req.AdjustmentNegative != nil {
		cm.AdjustmentNegative = *req.AdjustmentNegative
	}
}

// shippingRefundCap computes the maximum base shipping amount refundable by
// a credit memo tied to the given invoice.
func (s *fulfillmentService) shippingRefundCap(o *order.Order, inv *invoice.Invoice) decimal.Decimal {
	if s.TaxDisplay.ShippingPriceInclTax(o.StoreID) {
		return o.BaseShippingInclTax.
			Sub(o.BaseShippingRefunded).
			Sub(o.BaseShippingTaxRefunded)
	}
	allowed := o.BaseShippingAmount.Sub(o.BaseShippingRefunded)
	return decimal.Min(allowed, inv.BaseShippingAmount)
}

// canInvoiceItem decides whether a quantity may be drawn from the item for a
// new invoice. A dummy parent qualifies through any eligible child, a dummy
// child through its parent; with an empty qtys map the remaining invoiceable
// quantity decides, otherwise only strictly positive explicit entries count.
func (s *fulfillmentService) canInvoiceItem(item *order.OrderItem, qtys map[string]decimal.Decimal) bool {
	if item.LockedDoInvoice {
		return false
	}

	switch item.Role {
	case types.OrderItemRoleDummyParent:
		for _, child := range item.Children {
			if len(qtys) == 0 {
				if child.QtyToInvoice.IsPositive() {
					return true
				}
			} else if qty, ok := qtys[child.ID]; ok && qty.IsPositive() {
				return true
			}
		}
		return false
	case types.OrderItemRoleDummyChild:
		parent := item.Parent
		if parent == nil {
			return false
		}
		if len(qtys) == 0 {
			return parent.QtyToInvoice.IsPositive()
		}
		qty, ok := qtys[parent.ID]
		return ok && qty.IsPositive()
	default:
		return item.QtyToInvoice.IsPositive()
	}
}

// canRefundItem decides whether a quantity may be drawn from the item for a
// new credit memo. refundLimits carries per-item remaining refundable caps
// against one specific invoice and is nil when refunding against the order
// directly.
func (s *fulfillmentService) canRefundItem(item *order.OrderItem, qtys map[string]decimal.Decimal, refundLimits map[string]decimal.Decimal) bool {
	switch item.Role {
	case types.OrderItemRoleDummyParent:
		for _, child := range item.Children {
			if len(qtys) == 0 {
				if s.canRefundPlainItem(child, refundLimits) {
					return true
				}
			} else if qty, ok := qtys[child.ID]; ok && qty.IsPositive() {
				return true
			}
		}
		return false
	case types.OrderItemRoleDummyChild:
		parent := item.Parent
		if parent == nil {
			return false
		}
		if len(qtys) == 0 {
			return s.canRefundPlainItem(parent, refundLimits)
		}
		qty, ok := qtys[parent.ID]
		return ok && qty.IsPositive()
	default:
		return s.canRefundPlainItem(item, refundLimits)
	}
}

// canRefundPlainItem checks a non-dummy item's own counters: the order-level
// refundable quantity must not be negative, and a present refund-limit entry
// must be strictly positive. A present but exhausted cap forces
// ineligibility even when the order-level counter still looks refundable.
func (s *fulfillmentService) canRefundPlainItem(item *order.OrderItem, refundLimits map[string]decimal.Decimal) bool {
	if item.QtyToRefund.IsNegative() {
		return false
	}
	if limit, ok := refundLimits[item.ID]; ok {
		return limit.IsPositive()
	}
	return true
}
