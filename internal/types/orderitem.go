package types

import (
	"github.com/samber/lo"

	ierr "github.com/vidinfra/salesdocs/internal/errors"
)

// OrderItemRole describes an item's position in the composite-product tree.
// Dummy items are composite placeholders with no independently billable
// quantity of their own: a dummy parent is billed through its (plain)
// children, a dummy child through its (plain) parent.
type OrderItemRole string

const (
	// OrderItemRolePlain is an item billed by its own allowance counters
	OrderItemRolePlain OrderItemRole = "PLAIN"
	// OrderItemRoleDummyParent is a composite placeholder whose billable
	// quantity is derived from its children
	OrderItemRoleDummyParent OrderItemRole = "DUMMY_PARENT"
	// OrderItemRoleDummyChild is a composite member whose billing is driven
	// by its parent
	OrderItemRoleDummyChild OrderItemRole = "DUMMY_CHILD"
)

func (r OrderItemRole) String() string {
	return string(r)
}

func (r OrderItemRole) Validate() error {

	allowed := []OrderItemRole{
		OrderItemRolePlain,
		OrderItemRoleDummyParent,
		OrderItemRoleDummyChild,
	}

	if !lo.Contains(allowed, r) {
		return ierr.NewError("invalid order item role").
			WithHint("Please provide a valid order item role").
			WithReportableDetails(map[string]any{
				"allowed": allowed,
			}).
			Mark(ierr.ErrValidation)
	}

	return nil
}
