package service

import (
	"github.com/shopspring/decimal"

	"github.com/vidinfra/salesdocs/internal/domain/creditmemo"
	"github.com/vidinfra/salesdocs/internal/domain/invoice"
)

// TotalsCollector computes monetary totals for a fully quantified draft
// document. The preparers invoke it exactly once, as the last step before
// returning the draft. Tax, price, and discount aggregation belong to richer
// implementations outside this module.
type TotalsCollector interface {
	CollectInvoiceTotals(inv *invoice.Invoice) error
	CollectCreditMemoTotals(cm *creditmemo.CreditMemo) error
}

type totalsCollector struct{}

// NewTotalsCollector returns the default totals collector, which prices each
// line at qty times unit price and folds in shipping and adjustments.
func NewTotalsCollector() TotalsCollector {
	return &totalsCollector{}
}

func (t *totalsCollector) CollectInvoiceTotals(inv *invoice.Invoice) error {
	subtotal := decimal.Zero
	for _, line := range inv.LineItems {
		line.Amount = line.Qty.Mul(line.UnitPrice)
		subtotal = subtotal.Add(line.Amount)
	}
	inv.Subtotal = subtotal
	inv.GrandTotal = subtotal.Add(inv.BaseShippingAmount)
	return nil
}

func (t *totalsCollector) CollectCreditMemoTotals(cm *creditmemo.CreditMemo) error {
	subtotal := decimal.Zero
	for _, line := range cm.LineItems {
		line.Amount = line.Qty.Mul(line.UnitPrice)
		subtotal = subtotal.Add(line.Amount)
	}
	cm.Subtotal = subtotal
	cm.GrandTotal = subtotal.
		Add(cm.BaseShippingAmount).
		Add(cm.AdjustmentPositive).
		Sub(cm.AdjustmentNegative)
	return nil
}
