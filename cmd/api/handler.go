package api

import (
	"log/slog"

	"github.com/jimmyyyly/CPU-Scheduler-Simulation/utils/config"
	"github.com/jimmyyyly/CPU-Scheduler-Simulation/utils/log"
)

type Handler struct {
	Log    *slog.Logger
	Config *Config
}

func NewHandler(configFile string) *Handler {
	c := config.Load(configFile, &Config{})
	if c == nil {
		panic("Error loading configuration")
	}

	// Cast the configuration to the specific type
	configStruct, ok := c.(*Config)
	if !ok {
		panic("Error casting configuration")
	}

	return &Handler{
		Config: configStruct,
		Log:    log.BuildLogger(configStruct.LogLevel),
	}
}
