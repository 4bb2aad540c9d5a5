package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"ecourts-scraper/internal/components/chrono"
	"ecourts-scraper/internal/components/telemetry"
	"ecourts-scraper/internal/middleware"
	"ecourts-scraper/internal/selector"
	"ecourts-scraper/lib/configutil"
	"ecourts-scraper/lib/serviceutil"

	"github.com/gin-gonic/gin"
)

func main() {
	verbose := flag.Bool("v", false, "Enable verbose logging/instrumentation.")
	configPath := flag.String("config", "", "Config file, defaults to the nearest "+configName)
	flag.Parse()

	ctx, cancel := serviceutil.SignalContext()
	defer cancel()

	cfg, err := readConfig(*configPath)
	if err != nil {
		serviceutil.Fatal("read config", err)
	}
	if *verbose {
		cfg, err = configutil.Override(cfg, Config{Telemetry: telemetry.Config{Level: "debug"}})
		if err != nil {
			serviceutil.Fatal("apply flags", err)
		}
	}

	telemetry.InitSlog(os.Stderr, cfg.Telemetry.Level, cfg.Telemetry.Format)
	otel, err := telemetry.Setup(ctx, "ecourts-web", cfg.Telemetry)
	if err != nil {
		serviceutil.Fatal("setup telemetry", err)
	}
	defer otel.Shutdown(context.Background())

	tel := telemetry.SlogAPI{}
	telemetry.InstrumentPerfStats(ctx, tel)

	clock, err := chrono.NewStandardImpl(cfg.Timezone)
	if err != nil {
		serviceutil.Fatal("load timezone", err)
	}

	if !*verbose {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := selector.NewEngine(
		selector.NewServer(clock, tel),
		middleware.NewMetrics("ecourts-web"),
		tel,
	)

	err = serviceutil.ServeHttp(ctx, cfg.Port, engine)
	if err != nil {
		slog.Error("serve http", "err", err)
	}
}
