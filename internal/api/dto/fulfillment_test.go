package dto

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	ierr "github.com/vidinfra/salesdocs/internal/errors"
)

func TestPrepareInvoiceRequestValidate(t *testing.T) {
	assert.NoError(t, (&PrepareInvoiceRequest{}).Validate())

	req := &PrepareInvoiceRequest{
		Qtys: map[string]decimal.Decimal{
			"ord_item_1": decimal.NewFromInt(2),
		},
	}
	assert.NoError(t, req.Validate())

	req.Qtys[""] = decimal.NewFromInt(1)
	err := req.Validate()
	assert.Error(t, err)
	assert.True(t, ierr.IsValidation(err))
}

func TestPrepareCreditMemoRequestValidate(t *testing.T) {
	assert.NoError(t, (&PrepareCreditMemoRequest{}).Validate())

	req := &PrepareCreditMemoRequest{
		Qtys: map[string]decimal.Decimal{
			"": decimal.NewFromInt(1),
		},
	}
	err := req.Validate()
	assert.Error(t, err)
	assert.True(t, ierr.IsValidation(err))
}
