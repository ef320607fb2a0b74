package config

import (
	"drinkshop/structs"

	"github.com/MonkyMars/gecho"
)

// InitializeLogger builds the application logger from GetConfig
func InitializeLogger() *gecho.Logger {
	return NewLogger(GetConfig().App)
}

// NewLogger builds a logger for the given app settings
func NewLogger(app *structs.AppConfig) *gecho.Logger {
	logLevel := gecho.ParseLogLevel(logLevelFor(app))
	return gecho.NewLogger(gecho.NewConfig(gecho.WithShowCaller(app.ShowCaller), gecho.WithLogLevel(logLevel)))
}
