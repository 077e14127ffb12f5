package types

import (
	"github.com/samber/lo"

	ierr "github.com/vidinfra/salesdocs/internal/errors"
)

type InvoiceState string

const (
	// InvoiceStateDraft indicates the invoice is a freshly prepared draft and
	// has not been submitted yet
	InvoiceStateDraft InvoiceState = "DRAFT"
	// InvoiceStateOpen indicates the invoice has been submitted and awaits payment
	InvoiceStateOpen InvoiceState = "OPEN"
	// InvoiceStatePaid indicates the invoice has been captured in full
	InvoiceStatePaid InvoiceState = "PAID"
	// InvoiceStateCanceled indicates the invoice has been canceled
	InvoiceStateCanceled InvoiceState = "CANCELED"
)

func (s InvoiceState) String() string {
	return string(s)
}

func (s InvoiceState) Validate() error {

	allowed := []InvoiceState{
		InvoiceStateDraft,
		InvoiceStateOpen,
		InvoiceStatePaid,
		InvoiceStateCanceled,
	}

	if !lo.Contains(allowed, s) {
		return ierr.NewError("invalid invoice state").
			WithHint("Please provide a valid invoice state").
			WithReportableDetails(map[string]any{
				"allowed": allowed,
			}).
			Mark(ierr.ErrValidation)
	}

	return nil
}
