package ordering

import (
	"drinkshop/lib"
	"drinkshop/structs"
	"fmt"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

// Drink is a single configurable beverage. The base is fixed at construction,
// the size is stored lowercase and flavors never repeat.
type Drink struct {
	base    structs.Base
	size    structs.Size
	flavors []structs.Flavor
	pricing *Pricing
	owner   *Order
}

// NewDrink creates a drink priced with DefaultPricing
func NewDrink(base structs.Base, size structs.Size) (*Drink, error) {
	return DefaultPricing().NewDrink(base, size)
}

// NewDrink creates a drink priced with p
func (p *Pricing) NewDrink(base structs.Base, size structs.Size) (*Drink, error) {
	if !base.IsValid() {
		return nil, fmt.Errorf("%w: invalid base: %s", lib.ErrInvalidArgument, base)
	}
	normalized, err := normalizeSize(size)
	if err != nil {
		return nil, err
	}

	return &Drink{
		base:    base,
		size:    normalized,
		flavors: []structs.Flavor{},
		pricing: p,
	}, nil
}

func normalizeSize(size structs.Size) (structs.Size, error) {
	normalized := structs.Size(strings.ToLower(string(size)))
	if !normalized.IsValid() {
		return "", fmt.Errorf("%w: invalid size: %s", lib.ErrInvalidArgument, size)
	}
	return normalized, nil
}

func (d *Drink) Base() structs.Base {
	return d.base
}

func (d *Drink) Size() structs.Size {
	return d.size
}

// Flavors returns a copy of the flavors in the order they were added
func (d *Drink) Flavors() []structs.Flavor {
	return slices.Clone(d.flavors)
}

func (d *Drink) NumFlavors() int {
	return len(d.flavors)
}

// SetSize replaces the size. Matching is case-insensitive.
func (d *Drink) SetSize(size structs.Size) error {
	normalized, err := normalizeSize(size)
	if err != nil {
		return err
	}
	d.size = normalized
	return nil
}

// HasFlavor reports whether flavor was already added
func (d *Drink) HasFlavor(flavor structs.Flavor) bool {
	return slices.Contains(d.flavors, flavor)
}

// AddFlavor appends a flavor. Adding a flavor that is already present is not
// an error: the drink is left unchanged and added is false.
func (d *Drink) AddFlavor(flavor structs.Flavor) (added bool, err error) {
	if !flavor.IsValid() {
		return false, fmt.Errorf("%w: invalid flavor: %s", lib.ErrInvalidArgument, flavor)
	}
	if d.HasFlavor(flavor) {
		return false, nil
	}
	d.flavors = append(d.flavors, flavor)
	return true, nil
}

// SetFlavors replaces all flavors. Every flavor is validated before the drink
// is touched; duplicates collapse onto their first occurrence.
func (d *Drink) SetFlavors(flavors []structs.Flavor) error {
	for _, flavor := range flavors {
		if !flavor.IsValid() {
			return fmt.Errorf("%w: invalid flavor: %s", lib.ErrInvalidArgument, flavor)
		}
	}

	unique := make([]structs.Flavor, 0, len(flavors))
	for _, flavor := range flavors {
		if !slices.Contains(unique, flavor) {
			unique = append(unique, flavor)
		}
	}
	d.flavors = unique
	return nil
}

// Cost is the size price plus the flavor price for every flavor. No rounding.
func (d *Drink) Cost() decimal.Decimal {
	p := d.prices()
	flavors := p.FlavorPrice.Mul(decimal.NewFromInt(int64(len(d.flavors))))
	return p.SizePrice(d.size).Add(flavors)
}

// Total is an alias of Cost
func (d *Drink) Total() decimal.Decimal {
	return d.Cost()
}

// String renders e.g. "Hill fog (Medium) with lemon - $1.90"
func (d *Drink) String() string {
	var sb strings.Builder
	sb.WriteString(capitalize(string(d.base)))
	sb.WriteString(" (")
	sb.WriteString(capitalize(string(d.size)))
	sb.WriteString(")")
	if len(d.flavors) > 0 {
		sb.WriteString(" with ")
		sb.WriteString(joinFlavors(d.flavors))
	}
	sb.WriteString(" - ")
	sb.WriteString(lib.FormatPrice(d.Cost()))
	return sb.String()
}

func (d *Drink) valid() bool {
	return d != nil && d.base.IsValid() && d.size.IsValid()
}

// prices falls back to DefaultPricing for a zero Drink
func (d *Drink) prices() *Pricing {
	if d.pricing == nil {
		return DefaultPricing()
	}
	return d.pricing
}

// capitalize upper-cases the first letter and lower-cases the rest
func capitalize(s string) string {
	first, size := utf8.DecodeRuneInString(s)
	if first == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(first)) + strings.ToLower(s[size:])
}

func joinFlavors(flavors []structs.Flavor) string {
	names := make([]string, len(flavors))
	for i, f := range flavors {
		names[i] = string(f)
	}
	return strings.Join(names, ", ")
}
