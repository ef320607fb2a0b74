package ordering

import (
	"drinkshop/lib"
	"fmt"
	"slices"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Order is an ordered list of drinks. A drink belongs to at most one order.
// An Order is not safe for concurrent use.
type Order struct {
	id      uuid.UUID
	number  string
	items   []*Drink
	pricing *Pricing
}

// NewOrder creates an empty order taxed with DefaultPricing
func NewOrder() *Order {
	return DefaultPricing().NewOrder()
}

// NewOrder creates an empty order taxed with p
func (p *Pricing) NewOrder() *Order {
	id := uuid.New()
	return &Order{
		id:      id,
		number:  lib.OrderNumber(id),
		items:   []*Drink{},
		pricing: p,
	}
}

func (o *Order) ID() uuid.UUID {
	return o.id
}

func (o *Order) Number() string {
	return o.number
}

// Items returns a copy of the drink list in insertion order
func (o *Order) Items() []*Drink {
	return slices.Clone(o.items)
}

func (o *Order) NumItems() int {
	return len(o.items)
}

// AddItem appends drink to the order
func (o *Order) AddItem(drink *Drink) error {
	if !drink.valid() {
		return fmt.Errorf("%w: item must be a drink", lib.ErrInvalidArgument)
	}
	if drink.owner != nil {
		return fmt.Errorf("%w: drink already belongs to an order", lib.ErrInvalidArgument)
	}
	drink.owner = o
	o.items = append(o.items, drink)
	return nil
}

// RemoveItem removes the drink at index, shifting the following drinks down
func (o *Order) RemoveItem(index int) error {
	if index < 0 || index >= len(o.items) {
		return fmt.Errorf("%w: item index %d, order has %d items", lib.ErrIndexOutOfRange, index, len(o.items))
	}
	o.items[index].owner = nil
	o.items = slices.Delete(o.items, index, index+1)
	return nil
}

// Subtotal is the sum of the drink costs before tax
func (o *Order) Subtotal() decimal.Decimal {
	total := decimal.Zero
	for _, drink := range o.items {
		total = total.Add(drink.Cost())
	}
	return total
}

// Total is the subtotal including tax. No intermediate rounding.
func (o *Order) Total() decimal.Decimal {
	return o.Subtotal().Mul(decimal.NewFromInt(1).Add(o.prices().TaxRate))
}

// prices falls back to DefaultPricing for a zero Order
func (o *Order) prices() *Pricing {
	if o.pricing == nil {
		return DefaultPricing()
	}
	return o.pricing
}
