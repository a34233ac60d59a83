package config

import (
	"encoding/json"
	"log/slog"
	"os"
)

// Load decodes the JSON file at filePath into config and returns it.
// A missing or malformed config file is a startup defect, so it panics.
func Load(filePath string, config interface{}) interface{} {
	configFile, err := os.Open(filePath)
	if err != nil {
		slog.Error("failed to open config file",
			slog.Attr{Key: "filePath", Value: slog.StringValue(filePath)},
			slog.Attr{Key: "error", Value: slog.StringValue(err.Error())},
		)
		panic(err)
	}
	defer func() {
		_ = configFile.Close()
	}()

	jsonParser := json.NewDecoder(configFile)
	err = jsonParser.Decode(&config)
	if err != nil {
		slog.Error("failed to decode config file",
			slog.Attr{Key: "filePath", Value: slog.StringValue(filePath)},
			slog.Attr{Key: "error", Value: slog.StringValue(err.Error())},
		)
		panic(err)
	}

	return config
}
