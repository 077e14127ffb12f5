package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/vidinfra/salesdocs/internal/types"
)

type Configuration struct {
	Logging LoggingConfig `validate:"required"`
	Tax     TaxConfig
}

type LoggingConfig struct {
	Level types.LogLevel `validate:"required"`
}

// TaxConfig controls how shipping prices are displayed per store, which in
// turn drives the shipping refund cap calculation. Stores not present in the
// override map fall back to ShippingInclTax.
type TaxConfig struct {
	ShippingInclTax          bool
	ShippingInclTaxOverrides map[string]bool
}

func NewConfig() (*Configuration, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./internal/config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/salesdocs")

	// Set up environment variables support
	v.SetEnvPrefix("SALESDOCS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("logging.level", string(types.LogLevelInfo))
	v.SetDefault("tax.shippingincltax", false)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		// No config file is fine, defaults and env vars apply
	}

	var cfg Configuration
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.Logging.Level = cfg.Logging.Level.Normalize()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c Configuration) Validate() error {
	return validator.New().Struct(c)
}

// ShippingPriceInclTax reports whether the given store displays shipping
// prices tax-inclusive.
func (c TaxConfig) ShippingPriceInclTax(storeID string) bool {
	if inclTax, ok := c.ShippingInclTaxOverrides[storeID]; ok {
		return inclTax
	}
	return c.ShippingInclTax
}

// GetDefaultConfig returns a configuration suitable for tests and scripts
func GetDefaultConfig() *Configuration {
	return &Configuration{
		Logging: LoggingConfig{Level: types.LogLevelInfo},
		Tax:     TaxConfig{ShippingInclTax: false},
	}
}
