package tax

// DisplayConfig answers how a store displays shipping prices. The shipping
// refund cap branches on this: tax-inclusive stores refund against the
// tax-inclusive shipping total.
type DisplayConfig interface {
	ShippingPriceInclTax(storeID string) bool
}
