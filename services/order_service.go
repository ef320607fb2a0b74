package services

import (
	"drinkshop/lib"
	"drinkshop/ordering"
	"drinkshop/structs"
	"fmt"
	"slices"

	"github.com/MonkyMars/gecho"
)

type OrderService struct {
	logger  *gecho.Logger
	cfg     *structs.Config
	pricing *ordering.Pricing
}

func NewOrderService(logger *gecho.Logger, cfg *structs.Config, pricing *ordering.Pricing) *OrderService {
	return &OrderService{
		logger:  logger,
		cfg:     cfg,
		pricing: pricing,
	}
}

// CreateDrink builds a drink from a request, adding flavors in request order
func (os *OrderService) CreateDrink(req *structs.DrinkRequest) (*ordering.Drink, error) {
	drink, err := os.pricing.NewDrink(structs.Base(req.Base), structs.Size(req.Size))
	if err != nil {
		os.logger.Debug("Rejected drink",
			gecho.Field("base", req.Base),
			gecho.Field("size", req.Size),
			gecho.Field("error", err))
		return nil, err
	}

	for _, flavor := range req.Flavors {
		added, err := drink.AddFlavor(structs.Flavor(flavor))
		if err != nil {
			os.logger.Debug("Rejected flavor", gecho.Field("flavor", flavor), gecho.Field("error", err))
			return nil, err
		}
		if !added {
			os.logger.Warn(fmt.Sprintf("Flavor '%s' is already added", flavor),
				gecho.Field("base", drink.Base()),
				gecho.Field("flavor", flavor))
		}
	}

	return drink, nil
}

// CreateOrderFromRequest validates the request and builds an order from its drinks
func (os *OrderService) CreateOrderFromRequest(req *structs.OrderRequest) (*ordering.Order, error) {
	os.logger.Debug("CreateOrderFromRequest started", gecho.Field("drinks_count", len(req.Drinks)))

	if err := lib.ValidateStruct(req); err != nil {
		os.logger.Warn("Invalid order request", gecho.Field("error", err))
		return nil, err
	}

	if limit := os.maxDrinks(); limit > 0 && len(req.Drinks) > limit {
		return nil, fmt.Errorf("%w: an order holds at most %d drinks, got %d", lib.ErrInvalidArgument, limit, len(req.Drinks))
	}

	order := os.pricing.NewOrder()
	for i := range req.Drinks {
		drink, err := os.CreateDrink(&req.Drinks[i])
		if err != nil {
			return nil, fmt.Errorf("drinks[%d]: %w", i, err)
		}
		if err := order.AddItem(drink); err != nil {
			return nil, fmt.Errorf("drinks[%d]: %w", i, err)
		}
	}

	os.logger.Info("Order created",
		gecho.Field("order_id", order.ID()),
		gecho.Field("order_number", order.Number()),
		gecho.Field("items", order.NumItems()),
		gecho.Field("total", lib.FormatAmount(order.Total())))
	return order, nil
}

// Summarize returns a JSON friendly view of the order
func (os *OrderService) Summarize(order *ordering.Order) *structs.OrderSummary {
	items := order.Items()
	summary := &structs.OrderSummary{
		ID:          order.ID().String(),
		OrderNumber: order.Number(),
		Drinks:      make([]structs.DrinkSummary, 0, len(items)),
		Subtotal:    lib.FormatAmount(order.Subtotal()),
		Total:       lib.FormatAmount(order.Total()),
	}

	for _, drink := range items {
		flavors := drink.Flavors()
		names := make([]string, len(flavors))
		for i, f := range flavors {
			names[i] = string(f)
		}
		summary.Drinks = append(summary.Drinks, structs.DrinkSummary{
			Base:    string(drink.Base()),
			Size:    string(drink.Size()),
			Flavors: names,
			Cost:    lib.FormatAmount(drink.Cost()),
		})
	}

	return summary
}

// Menu lists everything a drink can be made of, with prices
func (os *OrderService) Menu() *structs.Menu {
	menu := &structs.Menu{
		Bases:       slices.Clone(structs.Bases),
		Sizes:       make([]structs.SizePrice, 0, len(structs.Sizes)),
		Flavors:     slices.Clone(structs.Flavors),
		FlavorPrice: lib.FormatAmount(os.pricing.FlavorPrice),
		TaxRate:     os.pricing.TaxRate.String(),
	}
	for _, size := range structs.Sizes {
		menu.Sizes = append(menu.Sizes, structs.SizePrice{
			Size:  size,
			Price: lib.FormatAmount(os.pricing.SizePrice(size)),
		})
	}
	return menu
}

func (os *OrderService) maxDrinks() int {
	if os.cfg == nil || os.cfg.Orders == nil {
		return 0
	}
	return os.cfg.Orders.MaxDrinks
}
