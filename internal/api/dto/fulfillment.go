package dto

import (
	"github.com/shopspring/decimal"

	ierr "github.com/vidinfra/salesdocs/internal/errors"
	"github.com/vidinfra/salesdocs/internal/validator"
)

// PrepareInvoiceRequest selects the quantities to bill per order item. An
// empty Qtys map means "invoice everything still invoiceable".
type PrepareInvoiceRequest struct {
	Qtys map[string]decimal.Decimal `json:"qtys"`
}

func (r *PrepareInvoiceRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	return validateQtyKeys(r.Qtys)
}

// PrepareCreditMemoRequest selects the quantities to refund per order item
// plus optional adjustment and shipping overrides. An empty Qtys map means
// "refund everything still refundable"; a non-empty map restricts the credit
// memo to the listed items. ShippingAmount, when set, overrides the computed
// shipping refund cap verbatim; validity of adjustments is an external
// policy concern.
type PrepareCreditMemoRequest struct {
	Qtys               map[string]decimal.Decimal `json:"qtys"`
	ShippingAmount     *decimal.Decimal           `json:"shipping_amount,omitempty"`
	AdjustmentPositive *decimal.Decimal           `json:"adjustment_positive,omitempty"`
	AdjustmentNegative *decimal.Decimal           `json:"adjustment_negative,omitempty"`
}

func (r *PrepareCreditMemoRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	return validateQtyKeys(r.Qtys)
}

// validateQtyKeys rejects quantity entries not keyed by an order item ID.
// Unknown IDs are ignored downstream, but an empty key is always a malformed
// request.
func validateQtyKeys(qtys map[string]decimal.Decimal) error {
	for id := range qtys {
		if id == "" {
			return ierr.NewError("qtys contains an empty order item id").
				WithHint("Quantities must be keyed by order item ID.").
				Mark(ierr.ErrValidation)
		}
	}
	return nil
}
