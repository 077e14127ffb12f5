package config

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vidinfra/salesdocs/internal/types"
)

func TestTaxConfigShippingPriceInclTax(t *testing.T) {
	cfg := TaxConfig{
		ShippingInclTax: false,
		ShippingInclTaxOverrides: map[string]bool{
			"store_incl": true,
		},
	}

	assert.True(t, cfg.ShippingPriceInclTax("store_incl"))
	assert.False(t, cfg.ShippingPriceInclTax("store_other"))

	cfg.ShippingInclTax = true
	assert.True(t, cfg.ShippingPriceInclTax("store_other"))
}

func TestDefaultConfigValidates(t *testing.T) {
	cfg := GetDefaultConfig()
	assert.NoError(t, cfg.Validate())
	assert.Equal(t, types.LogLevelInfo, cfg.Logging.Level)
}
