package main

import (
	"ecourts-scraper/internal/components/chrono"
	"ecourts-scraper/internal/components/telemetry"
	"ecourts-scraper/lib/configutil"
)

const configName = "ecourts-web.json5"

type Config struct {
	Port int `json:"port" yaml:"port"`
	// IANA timezone zip bundle names are stamped in
	Timezone  string           `json:"timezone" yaml:"timezone"`
	Telemetry telemetry.Config `json:"telemetry" yaml:"telemetry"`
}

func defaultConfig() Config {
	return Config{
		Port:     8000,
		Timezone: chrono.DefaultLocation,
		Telemetry: telemetry.Config{
			Level:  "info",
			Format: "json",
		},
	}
}

func readConfig(path string) (Config, error) {
	if path == "" {
		path = configName
	}
	return configutil.ReadOrDefault(path, defaultConfig())
}
