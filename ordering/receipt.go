package ordering

import (
	"drinkshop/lib"
	"fmt"
	"strings"
)

const receiptHeader = "Receipt:\n"

// Receipt renders one line per drink followed by the tax-inclusive total:
//
//	Receipt:
//	Drink 1: Base = hill fog, Size = medium, Flavors = lemon, Cost: $1.90
//
//	Total Order Cost (including tax): $2.04
func (o *Order) Receipt() string {
	var sb strings.Builder
	sb.WriteString(receiptHeader)
	for i, drink := range o.items {
		fmt.Fprintf(&sb, "Drink %d: Base = %s, Size = %s, Flavors = %s, Cost: %s\n",
			i+1,
			drink.Base(),
			drink.Size(),
			joinFlavors(drink.flavors),
			lib.FormatPrice(drink.Cost()),
		)
	}
	fmt.Fprintf(&sb, "\nTotal Order Cost (including tax): %s", lib.FormatPrice(o.Total()))
	return sb.String()
}
