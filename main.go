package main

import (
	"drinkshop/cli"
	"drinkshop/config"
	"drinkshop/services"
	"drinkshop/structs"

	"github.com/MonkyMars/gecho"
	"github.com/joho/godotenv"
)

var logger *gecho.Logger
var cfg *structs.Config

// init function to load environment variables and initialize the logger
func init() {
	envErr := godotenv.Load()

	cfg = config.GetConfig()
	logger = config.InitializeLogger()

	if envErr != nil && !config.IsProduction() {
		logger.Warn("No .env file found or error loading .env file, proceeding with system environment variables")
	}
}

func main() {
	sm, err := services.NewServiceManager(logger, cfg)
	if err != nil {
		logger.Fatal("Failed to initialize services", gecho.Field("error", err))
	}

	logger.Debug("Starting "+cfg.App.AppName, gecho.Field("environment", cfg.App.Environment))

	cli.Execute(sm)
}
