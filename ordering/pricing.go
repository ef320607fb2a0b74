package ordering

import (
	"drinkshop/lib"
	"drinkshop/structs"
	"fmt"

	"github.com/shopspring/decimal"
)

// Default menu prices. Override them through a Pricing built with NewPricing.
var (
	DefaultSizePrices = map[structs.Size]decimal.Decimal{
		structs.SizeSmall:  decimal.RequireFromString("1.50"),
		structs.SizeMedium: decimal.RequireFromString("1.75"),
		structs.SizeLarge:  decimal.RequireFromString("2.05"),
		structs.SizeMega:   decimal.RequireFromString("2.15"),
	}
	DefaultFlavorPrice = decimal.RequireFromString("0.15")
	DefaultTaxRate     = decimal.RequireFromString("0.0725")
)

// Pricing is the price table drinks and orders are computed against
type Pricing struct {
	SizePrices  map[structs.Size]decimal.Decimal
	FlavorPrice decimal.Decimal
	TaxRate     decimal.Decimal
}

// DefaultPricing returns a price table built from the current Default values
func DefaultPricing() *Pricing {
	sizes := make(map[structs.Size]decimal.Decimal, len(DefaultSizePrices))
	for size, price := range DefaultSizePrices {
		sizes[size] = price
	}
	return &Pricing{
		SizePrices:  sizes,
		FlavorPrice: DefaultFlavorPrice,
		TaxRate:     DefaultTaxRate,
	}
}

// NewPricing builds a validated price table from config
func NewPricing(cfg *structs.PricingConfig) (*Pricing, error) {
	if cfg == nil {
		return DefaultPricing(), nil
	}
	if err := lib.ValidateStruct(cfg); err != nil {
		return nil, fmt.Errorf("invalid pricing config: %w", err)
	}

	p := &Pricing{
		SizePrices: map[structs.Size]decimal.Decimal{
			structs.SizeSmall:  decimal.NewFromFloat(cfg.Small),
			structs.SizeMedium: decimal.NewFromFloat(cfg.Medium),
			structs.SizeLarge:  decimal.NewFromFloat(cfg.Large),
			structs.SizeMega:   decimal.NewFromFloat(cfg.Mega),
		},
		FlavorPrice: decimal.NewFromFloat(cfg.Flavor),
		TaxRate:     decimal.NewFromFloat(cfg.TaxRate),
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// Validate checks that every size has a price and that no amount is negative
func (p *Pricing) Validate() error {
	for _, size := range structs.Sizes {
		price, ok := p.SizePrices[size]
		if !ok {
			return fmt.Errorf("%w: no price for size %s", lib.ErrInvalidArgument, size)
		}
		if price.IsNegative() {
			return fmt.Errorf("%w: negative price for size %s", lib.ErrInvalidArgument, size)
		}
	}
	if p.FlavorPrice.IsNegative() {
		return fmt.Errorf("%w: negative flavor price", lib.ErrInvalidArgument)
	}
	if p.TaxRate.IsNegative() || p.TaxRate.GreaterThan(decimal.NewFromInt(1)) {
		return fmt.Errorf("%w: tax rate %s outside [0, 1]", lib.ErrInvalidArgument, p.TaxRate)
	}
	return nil
}

// SizePrice returns the unit price of a size
func (p *Pricing) SizePrice(size structs.Size) decimal.Decimal {
	return p.SizePrices[size]
}
