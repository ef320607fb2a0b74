package structs

type Config struct {
	App     *AppConfig
	Pricing *PricingConfig
	Orders  *OrdersConfig
}

type AppConfig struct {
	AppName     string // drinkshop
	Environment string // development, production
	LogLevel    string // debug, info, warn, error
	ShowCaller  bool
}

type OrdersConfig struct {
	MaxDrinks int // per order, 0 means unlimited
}

// PricingConfig holds the menu prices in currency units
type PricingConfig struct {
	Small   float64 `validate:"gte=0"`
	Medium  float64 `validate:"gte=0"`
	Large   float64 `validate:"gte=0"`
	Mega    float64 `validate:"gte=0"`
	Flavor  float64 `validate:"gte=0"`
	TaxRate float64 `validate:"gte=0,lte=1"` // 0.0725 = 7.25%
}
