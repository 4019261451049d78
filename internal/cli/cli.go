package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/shinichi-ohki/maker-events/internal/calendar"
	"github.com/shinichi-ohki/maker-events/internal/config"
	"github.com/shinichi-ohki/maker-events/internal/enrich"
	"github.com/shinichi-ohki/maker-events/internal/event"
	"github.com/shinichi-ohki/maker-events/internal/fontpack"
	"github.com/shinichi-ohki/maker-events/internal/logger"
	"github.com/shinichi-ohki/maker-events/internal/ogpcard"
	"github.com/shinichi-ohki/maker-events/internal/publish"
	"github.com/shinichi-ohki/maker-events/internal/region"
	"github.com/shinichi-ohki/maker-events/internal/render"
	"github.com/shinichi-ohki/maker-events/internal/sheet"
	"github.com/shinichi-ohki/maker-events/internal/site"
)

const (
	ExitSuccess = 0
	ExitError   = 1
)

var (
	flagSheetURL       string
	flagOut            string
	flagBaseURL        string
	flagDaysAhead      int
	flagDelay          time.Duration
	flagSkipImages     bool
	flagCountryMapping string
	flagFormat         string
	flagAutoPush       bool
	flagVerbose        bool
)

// NewRootCmd creates the root command. Flag defaults come from the
// environment-backed config, so flags always win over MAKER_EVENTS_*
// variables.
func NewRootCmd() *cobra.Command {
	cfg := config.Load()

	cmd := &cobra.Command{
		Use:   "maker-events",
		Short: "Generate the maker events listing site",
		Long: `Generates the static maker events listing from the public spreadsheet:
fetches and classifies the event rows, scrapes thumbnail images from each
event's website, and writes the HTML page, the OGP timeline image, and the
JSON and iCalendar feeds into the output directory.`,
		RunE: runGenerate,
	}

	// Define flags
	cmd.Flags().StringVar(&flagSheetURL, "sheet-url", cfg.SheetURL, "Google Sheets URL of the event spreadsheet")
	cmd.Flags().StringVar(&flagOut, "out", cfg.OutputDir, "Output directory for the generated site")
	cmd.Flags().StringVar(&flagBaseURL, "base-url", cfg.BaseURL, "Public base URL the site is served from")
	cmd.Flags().IntVar(&flagDaysAhead, "days-ahead", cfg.DaysAhead, "Only list events starting within N days")
	cmd.Flags().DurationVar(&flagDelay, "delay", cfg.ScrapeDelay, "Pause between thumbnail scrape requests")
	cmd.Flags().BoolVar(&flagSkipImages, "skip-images", false, "Skip thumbnail scraping")
	cmd.Flags().StringVar(&flagCountryMapping, "country-mapping", cfg.CountryMapping, "YAML file with extra country name mappings")
	cmd.Flags().StringVar(&flagFormat, "format", "text", "Summary format: text or json")
	cmd.Flags().BoolVar(&flagAutoPush, "auto-push", false, "Commit and push the artifacts after generating")
	cmd.Flags().BoolVar(&flagVerbose, "verbose", false, "Enable debug logging and metrics output")

	return cmd
}

// runGenerate runs the whole pipeline:
// fetch → classify/filter → enrich → render → write.
func runGenerate(cmd *cobra.Command, args []string) error {
	cfg := config.Load()
	cfg.SheetURL = flagSheetURL
	cfg.OutputDir = flagOut
	cfg.BaseURL = flagBaseURL
	cfg.DaysAhead = flagDaysAhead
	cfg.ScrapeDelay = flagDelay
	cfg.CountryMapping = flagCountryMapping

	if err := cfg.Validate(); err != nil {
		return err
	}

	format := OutputFormat(strings.ToLower(flagFormat))
	if format != FormatText && format != FormatJSON {
		return fmt.Errorf("invalid format: %s (must be 'text' or 'json')", flagFormat)
	}

	if flagVerbose {
		logger.SetDefault(logger.New(logger.LevelDebug, os.Stderr))
	}

	classifier := region.New()
	if cfg.CountryMapping != "" {
		if err := classifier.LoadMapping(cfg.CountryMapping); err != nil {
			return fmt.Errorf("loading country mapping: %w", err)
		}
	}

	out, err := site.New(cfg.OutputDir)
	if err != nil {
		return fmt.Errorf("preparing output directory: %w", err)
	}

	// Fetch the spreadsheet rows
	start := time.Now()
	events, err := sheet.New(cfg.SheetURL, classifier).FetchEvents()
	if err != nil {
		return fmt.Errorf("fetching events: %w", err)
	}
	logger.RecordTiming("phase.fetch", time.Since(start))
	logger.Info("fetched spreadsheet", logger.Fields{"rows": len(events)})

	now := time.Now()
	upcoming := event.FilterUpcoming(events, now, cfg.DaysAhead)
	event.SortByDate(upcoming)
	japan, international := event.Split(upcoming)
	logger.SetGauge("events.upcoming", float64(len(upcoming)))
	logger.SetGauge("events.japan", float64(len(japan)))
	logger.SetGauge("events.international", float64(len(international)))

	// Scrape thumbnail images, sequentially and best-effort
	imagesFound := 0
	if !flagSkipImages {
		start = time.Now()
		imagesFound = enrich.New(cfg.ScrapeDelay, cfg.UserAgent).EnrichAll(upcoming)
		logger.RecordTiming("phase.enrich", time.Since(start))
	}

	html, err := render.New(cfg.BaseURL).RenderIndex(upcoming)
	if err != nil {
		return fmt.Errorf("rendering page: %w", err)
	}

	// Compose the OGP timeline image; font problems degrade to the
	// bundled faces inside the loader
	start = time.Now()
	fonts := fontpack.NewLoader(out.Dir()).Load()
	card, err := ogpcard.New(fonts).Render(upcoming)
	if err != nil {
		return fmt.Errorf("composing timeline image: %w", err)
	}
	logger.RecordTiming("phase.image", time.Since(start))

	ics := calendar.Generate(upcoming, now)

	artifacts := make(map[string]string, 4)
	indexPath, err := out.WriteIndex(html)
	if err != nil {
		return err
	}
	artifacts[site.IndexFile] = indexPath

	imagePath, err := out.WriteImage(card)
	if err != nil {
		return err
	}
	artifacts[site.ImageFile] = imagePath

	eventsPath, err := out.WriteEvents(upcoming)
	if err != nil {
		return err
	}
	artifacts[site.EventsFile] = eventsPath

	icsPath, err := out.WriteCalendar(ics)
	if err != nil {
		return err
	}
	artifacts[site.CalendarFile] = icsPath

	result := &Summary{
		GeneratedAt:         now,
		TotalEvents:         len(upcoming),
		JapanEvents:         len(japan),
		InternationalEvents: len(international),
		ImagesFound:         imagesFound,
		ImagesSkipped:       flagSkipImages,
		Artifacts:           artifacts,
	}
	if err := WriteOutput(os.Stdout, result, format, flagVerbose); err != nil {
		return fmt.Errorf("writing summary: %w", err)
	}

	if flagAutoPush {
		files := []string{site.IndexFile, site.ImageFile, site.EventsFile, site.CalendarFile, fontpack.FontFileName}
		committed, err := publish.New(out.Dir()).AutoCommit(files, now)
		if err != nil {
			return fmt.Errorf("publishing artifacts: %w", err)
		}
		if committed {
			logger.Info("pushed updated artifacts", logger.Fields{"dir": out.Dir()})
		} else {
			logger.Info("no artifact changes to publish", nil)
		}
	}

	if flagVerbose {
		logger.Debug("run metrics", logger.Fields(logger.GetMetricsSnapshot()))
	}

	return nil
}

// Execute runs the CLI
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
}
