package commands

import (
	"time"

	"ecourts-scraper/internal/components/chrono"
	"ecourts-scraper/internal/components/telemetry"
	"ecourts-scraper/internal/scrapers/ecourts"
	"ecourts-scraper/lib/configutil"
)

const defaultConfigName = "ecourts.json5"

type PortalConfig struct {
	BaseUrl   string `json:"base_url" yaml:"base_url"`
	UserAgent string `json:"user_agent" yaml:"user_agent"`
	// requests per second, 0 disables pacing
	RequestsPerSecond float64 `json:"requests_per_second" yaml:"requests_per_second"`
	CloudflareBypass  bool    `json:"cloudflare_bypass" yaml:"cloudflare_bypass"`
	// timeout of case status queries
	StatusTimeoutSeconds int `json:"status_timeout_seconds" yaml:"status_timeout_seconds"`
	// timeout of cause list downloads
	DownloadTimeoutSeconds int `json:"download_timeout_seconds" yaml:"download_timeout_seconds"`
	// directory raw http exchanges are dumped to, empty disables dumping
	DumpDir string `json:"dump_dir" yaml:"dump_dir"`
}

type Config struct {
	Portal PortalConfig `json:"portal" yaml:"portal"`
	// directory results are written to
	OutputDir string `json:"output_dir" yaml:"output_dir"`
	// IANA timezone "today" is computed in
	Timezone  string           `json:"timezone" yaml:"timezone"`
	Telemetry telemetry.Config `json:"telemetry" yaml:"telemetry"`
}

func defaultConfig() Config {
	return Config{
		Portal: PortalConfig{
			BaseUrl:                ecourts.DefaultBaseUrl,
			UserAgent:              ecourts.DefaultUserAgent,
			RequestsPerSecond:      1,
			StatusTimeoutSeconds:   15,
			DownloadTimeoutSeconds: 20,
		},
		OutputDir: ".",
		Timezone:  chrono.DefaultLocation,
		Telemetry: telemetry.Config{
			Level:  "info",
			Format: "text",
		},
	}
}

func readConfig(path string) (Config, error) {
	if path == "" {
		path = defaultConfigName
	}
	return configutil.ReadOrDefault(path, defaultConfig())
}

func seconds(n int) time.Duration {
	return time.Duration(n) * time.Second
}
