package config

import (
	"drinkshop/structs"
	"sync"
)

var (
	configInstance *structs.Config
	configOnce     sync.Once
)

func GetConfig() *structs.Config {
	configOnce.Do(func() {
		configInstance = Load()
	})
	return configInstance
}

// Load reads the configuration from the environment, applying defaults
func Load() *structs.Config {
	return &structs.Config{
		App: &structs.AppConfig{
			AppName:     getEnvAsString("APP_NAME", "drinkshop"),
			Environment: getEnvAsString("APP_ENV", "development"),
			LogLevel:    getEnvAsString("LOG_LEVEL", ""),
			ShowCaller:  getEnvAsBool("LOG_SHOW_CALLER", false),
		},
		Pricing: &structs.PricingConfig{
			Small:   getEnvAsFloat("PRICE_SMALL", 1.50),
			Medium:  getEnvAsFloat("PRICE_MEDIUM", 1.75),
			Large:   getEnvAsFloat("PRICE_LARGE", 2.05),
			Mega:    getEnvAsFloat("PRICE_MEGA", 2.15),
			Flavor:  getEnvAsFloat("PRICE_FLAVOR", 0.15),
			TaxRate: getEnvAsFloat("TAX_RATE", 0.0725),
		},
		Orders: &structs.OrdersConfig{
			MaxDrinks: getEnvAsInt("ORDER_MAX_DRINKS", 50),
		},
	}
}

// logLevelFor returns LOG_LEVEL when set, otherwise a level derived from APP_ENV
func logLevelFor(app *structs.AppConfig) string {
	if app.LogLevel != "" {
		return app.LogLevel
	}
	if app.Environment == "production" {
		return "info"
	}
	return "debug"
}

func IsProduction() bool {
	return GetConfig().App.Environment == "production"
}
