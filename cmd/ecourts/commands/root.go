package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"ecourts-scraper/internal/cases"
	"ecourts-scraper/internal/components/chrono"
	"ecourts-scraper/internal/components/telemetry"
	"ecourts-scraper/internal/pipeline"
	"ecourts-scraper/internal/scrapers/ecourts"
	"ecourts-scraper/lib/configutil"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

type flags struct {
	cnr        string
	caseType   string
	caseNumber string
	caseYear   string

	today    bool
	tomorrow bool
	date     string

	causeList bool

	configPath string
	outputDir  string
	dumpDir    string
	verbose    bool
}

func (f flags) selector() cases.DateSelector {
	switch {
	case f.date != "":
		return cases.Explicit(f.date)
	case f.tomorrow:
		return cases.Tomorrow
	default:
		return cases.Today
	}
}

// applyFlags lays the flags that were given over `cfg`, flags left empty keep
// the value from the config file.
func applyFlags(cfg Config, f flags) (Config, error) {
	set := Config{
		OutputDir: f.outputDir,
		Portal:    PortalConfig{DumpDir: f.dumpDir},
	}
	if f.verbose {
		set.Telemetry.Level = "debug"
	}
	return configutil.Override(cfg, set)
}

// newRootCmd is a constructor instead of a package level command so every
// execution gets a fresh set of flags.
func newRootCmd() *cobra.Command {
	f := &flags{}

	cmd := &cobra.Command{
		Use:   "ecourts [--cnr <cnr> | --type <type> --number <number> --year <year>] [--today | --tomorrow | --date <dd-mm-yyyy>] [--causelist]",
		Short: "ecourts checks whether a case is listed on the eCourts portal and downloads cause lists.",
		Args:  cobra.NoArgs,
		// usage is printed by hand for input errors only
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, f)
		},
	}

	fl := cmd.Flags()
	fl.StringVar(&f.cnr, "cnr", "", "CNR number of the case")
	fl.StringVar(&f.caseType, "type", "", "Case type (if no CNR)")
	fl.StringVar(&f.caseNumber, "number", "", "Case number (if no CNR)")
	fl.StringVar(&f.caseYear, "year", "", "Case year (if no CNR)")
	fl.BoolVar(&f.today, "today", false, "Check listings for today (default)")
	fl.BoolVar(&f.tomorrow, "tomorrow", false, "Check listings for tomorrow")
	fl.StringVar(&f.date, "date", "", "Check listings for an explicit DD-MM-YYYY date")
	fl.BoolVar(&f.causeList, "causelist", false, "Download the cause list instead of checking a case")
	fl.StringVar(&f.configPath, "config", "", "Config file, defaults to the nearest ecourts.json5")
	fl.StringVarP(&f.outputDir, "output", "o", "", "Directory results are written to")
	fl.StringVar(&f.dumpDir, "dump-http", "", "Directory every raw portal exchange is written to")
	fl.BoolVarP(&f.verbose, "verbose", "v", false, "Enable debug logging")

	cmd.MarkFlagsMutuallyExclusive("today", "tomorrow", "date")
	cmd.MarkFlagsMutuallyExclusive("causelist", "cnr")
	cmd.MarkFlagsMutuallyExclusive("causelist", "type")
	cmd.MarkFlagsMutuallyExclusive("causelist", "number")
	cmd.MarkFlagsMutuallyExclusive("causelist", "year")

	return cmd
}

func ExecuteContext(ctx context.Context) {
	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newService(cfg Config, tel telemetry.API) (pipeline.Service, error) {
	clock, err := chrono.NewStandardImpl(cfg.Timezone)
	if err != nil {
		return pipeline.Service{}, fmt.Errorf("load timezone: %w", err)
	}

	client, err := ecourts.NewClient(ecourts.ClientOptions{
		BaseUrl:           cfg.Portal.BaseUrl,
		UserAgent:         cfg.Portal.UserAgent,
		RequestsPerSecond: cfg.Portal.RequestsPerSecond,
		CloudflareBypass:  cfg.Portal.CloudflareBypass,
		DumpDir:           cfg.Portal.DumpDir,
	}, tel)
	if err != nil {
		return pipeline.Service{}, fmt.Errorf("create portal client: %w", err)
	}

	return pipeline.NewService(client, clock, tel, pipeline.Options{
		OutputDir:       cfg.OutputDir,
		StatusTimeout:   seconds(cfg.Portal.StatusTimeoutSeconds),
		DownloadTimeout: seconds(cfg.Portal.DownloadTimeoutSeconds),
	}), nil
}

func run(cmd *cobra.Command, f *flags) error {
	var query cases.CaseQuery
	if !f.causeList {
		var err error
		query, err = cases.ParseCaseQuery(f.cnr, f.caseType, f.caseNumber, f.caseYear)
		if err != nil {
			cmd.PrintErrln(cmd.UsageString())
			return err
		}
	}

	cfg, err := readConfig(f.configPath)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	cfg, err = applyFlags(cfg, *f)
	if err != nil {
		return err
	}

	telemetry.InitSlog(cmd.ErrOrStderr(), cfg.Telemetry.Level, cfg.Telemetry.Format)
	tel, err := telemetry.Setup(cmd.Context(), "ecourts", cfg.Telemetry)
	if err != nil {
		return fmt.Errorf("setup telemetry: %w", err)
	}
	defer tel.Shutdown(context.Background())

	service, err := newService(cfg, telemetry.SlogAPI{})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	selector := f.selector()
	date := service.ResolveDate(selector)

	if f.causeList {
		fmt.Fprintf(out, "Downloading cause list for %s...\n", date)
		path, err := service.DownloadCauseList(cmd.Context(), selector)
		if err != nil {
			return fmt.Errorf("failed to download cause list: %w", err)
		}
		fmt.Fprintf(out, "Cause list saved as %s\n", path)
		return nil
	}

	fmt.Fprintf(out, "Checking case status for %s...\n", date)
	report, err := service.CheckCaseStatus(cmd.Context(), query, selector)
	if errors.Is(err, cases.ErrNoTableFound) {
		fmt.Fprintln(out, "No case details found. Please check your inputs.")
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to fetch case status: %w", err)
	}

	printReport(out, report)
	return nil
}

func printReport(out io.Writer, report pipeline.CaseReport) {
	if report.Found {
		fmt.Fprintf(out, "Case listed on %s\n", report.Result.CheckedOn)

		t := table.NewWriter()
		t.SetStyle(table.StyleRounded)
		t.SetOutputMirror(out)
		t.AppendHeader(table.Row{"Hearing date", "Court", "Serial no."})
		for _, listing := range report.Matches {
			t.AppendRow(table.Row{listing.HearingDate, listing.CourtName, listing.SerialNumber})
		}
		t.Render()
	} else {
		fmt.Fprintf(out, "Case not listed on %s (%d listings found).\n", report.Result.CheckedOn, len(report.Result.Listings))
	}
	fmt.Fprintf(out, "Results saved to %s\n", report.Path)
}
