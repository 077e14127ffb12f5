package types

import (
	"github.com/samber/lo"

	ierr "github.com/vidinfra/salesdocs/internal/errors"
)

type CreditMemoState string

const (
	// CreditMemoStateDraft indicates the credit memo is a freshly prepared
	// draft and has not been submitted yet
	CreditMemoStateDraft CreditMemoState = "DRAFT"
	// CreditMemoStateOpen indicates the credit memo has been submitted
	CreditMemoStateOpen CreditMemoState = "OPEN"
	// CreditMemoStateRefunded indicates the credit memo has been paid out
	CreditMemoStateRefunded CreditMemoState = "REFUNDED"
	// CreditMemoStateCanceled indicates the credit memo has been canceled.
	// Canceled credit memos do not count against refund allowances.
	CreditMemoStateCanceled CreditMemoState = "CANCELED"
)

func (s CreditMemoState) String() string {
	return string(s)
}

func (s CreditMemoState) Validate() error {

	allowed := []CreditMemoState{
		CreditMemoStateDraft,
		CreditMemoStateOpen,
		CreditMemoStateRefunded,
		CreditMemoStateCanceled,
	}

	if !lo.Contains(allowed, s) {
		return ierr.NewError("invalid credit memo state").
			WithHint("Please provide a valid credit memo state").
			WithReportableDetails(map[string]any{
				"allowed": allowed,
			}).
			Mark(ierr.ErrValidation)
	}

	return nil
}
