package services

import (
	"drinkshop/ordering"
	"drinkshop/structs"
	"fmt"

	"github.com/MonkyMars/gecho"
)

type ServiceManager struct {
	Logger       *gecho.Logger
	OrderService *OrderService
}

func NewServiceManager(logger *gecho.Logger, cfg *structs.Config) (*ServiceManager, error) {
	pricing, err := ordering.NewPricing(cfg.Pricing)
	if err != nil {
		logger.Error("Failed to load pricing", gecho.Field("error", err))
		return nil, fmt.Errorf("load pricing: %w", err)
	}

	orderService := NewOrderService(logger, cfg, pricing)

	return &ServiceManager{
		Logger:       logger,
		OrderService: orderService,
	}, nil
}
