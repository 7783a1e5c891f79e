package services

import (
	"log"
	"os"

	"github.com/shopspring/decimal"
)

// Pricing defaults, overridable via env (see PricingFromEnv).
const (
	defaultFreeDeliveryThreshold = "30"
	defaultDeliveryFee           = "5"
	defaultTaxRate               = "0.0875"
	defaultMinimumOrder          = "0"
)

type PricingConfig struct {
	FreeDeliveryThreshold decimal.Decimal
	DeliveryFee           decimal.Decimal
	TaxRate               decimal.Decimal
	// MinimumOrder of zero disables the minimum-order check.
	MinimumOrder decimal.Decimal
}

func DefaultPricing() PricingConfig {
	return PricingConfig{
		FreeDeliveryThreshold: decimal.RequireFromString(defaultFreeDeliveryThreshold),
		DeliveryFee:           decimal.RequireFromString(defaultDeliveryFee),
		TaxRate:               decimal.RequireFromString(defaultTaxRate),
		MinimumOrder:          decimal.RequireFromString(defaultMinimumOrder),
	}
}

func PricingFromEnv() PricingConfig {
	cfg := DefaultPricing()
	cfg.FreeDeliveryThreshold = envDecimal("FREE_DELIVERY_THRESHOLD", cfg.FreeDeliveryThreshold)
	cfg.DeliveryFee = envDecimal("DELIVERY_FEE", cfg.DeliveryFee)
	cfg.TaxRate = envDecimal("TAX_RATE", cfg.TaxRate)
	cfg.MinimumOrder = envDecimal("MINIMUM_ORDER", cfg.MinimumOrder)
	return cfg
}

func envDecimal(key string, fallback decimal.Decimal) decimal.Decimal {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	value, err := decimal.NewFromString(raw)
	if err != nil {
		log.Printf("Invalid %s value %q, using default %s", key, raw, fallback)
		return fallback
	}
	return value
}

// PricedLine is a cart line after its price has been re-read from the
// menu catalog. Client-supplied prices are never used.
type PricedLine struct {
	MenuItemID string
	Name       string
	Price      decimal.Decimal
	Quantity   int
	Subtotal   decimal.Decimal
}

type Quote struct {
	Subtotal    decimal.Decimal
	DeliveryFee decimal.Decimal
	Tax         decimal.Decimal
	Total       decimal.Decimal
}

// Quote computes the monetary breakdown for a set of priced lines.
// Delivery is free at or above the threshold; tax is applied to the
// subtotal only. All figures are rounded to cents.
func (c PricingConfig) Quote(lines []PricedLine) Quote {
	subtotal := decimal.Zero
	for _, line := range lines {
		subtotal = subtotal.Add(line.Subtotal)
	}
	subtotal = subtotal.Round(2)

	deliveryFee := c.DeliveryFee.Round(2)
	if subtotal.GreaterThanOrEqual(c.FreeDeliveryThreshold) {
		deliveryFee = decimal.Zero
	}

	tax := subtotal.Mul(c.TaxRate).Round(2)

	return Quote{
		Subtotal:    subtotal,
		DeliveryFee: deliveryFee,
		Tax:         tax,
		Total:       subtotal.Add(deliveryFee).Add(tax).Round(2),
	}
}
