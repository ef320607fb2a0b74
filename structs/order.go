package structs

type DrinkRequest struct {
	Base    string   `json:"base" validate:"required"`
	Size    string   `json:"size" validate:"required"`
	Flavors []string `json:"flavors,omitempty"`
}

type OrderRequest struct {
	Drinks []DrinkRequest `json:"drinks" validate:"dive"`
}

// DrinkSummary is a priced drink line. Money is rendered with 2 decimals.
type DrinkSummary struct {
	Base    string   `json:"base"`
	Size    string   `json:"size"`
	Flavors []string `json:"flavors"`
	Cost    string   `json:"cost"`
}

type OrderSummary struct {
	ID          string         `json:"id"`
	OrderNumber string         `json:"order_number"`
	Drinks      []DrinkSummary `json:"drinks"`
	Subtotal    string         `json:"subtotal"`
	Total       string         `json:"total"` // including tax
}

type SizePrice struct {
	Size  Size   `json:"size"`
	Price string `json:"price"`
}

type Menu struct {
	Bases       []Base      `json:"bases"`
	Sizes       []SizePrice `json:"sizes"`
	Flavors     []Flavor    `json:"flavors"`
	FlavorPrice string      `json:"flavor_price"`
	TaxRate     string      `json:"tax_rate"`
}
