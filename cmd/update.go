package cmd

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/fringe-watch/edfringe-parser/internal"
	"github.com/fringe-watch/edfringe-parser/internal/email"
	"github.com/fringe-watch/edfringe-parser/internal/log"
	"github.com/fringe-watch/edfringe-parser/internal/parser"
	"github.com/fringe-watch/edfringe-parser/internal/scraper"
	"github.com/fringe-watch/edfringe-parser/internal/snapshot"
	"github.com/fringe-watch/edfringe-parser/internal/store"
)

const (
	canonicalPerformancesFile = "performances.csv"
	canonicalShowInfoFile     = "show-info.csv"
	venueCacheFile            = "venues.csv"
)

var defaultGenres = []string{"comedy", "theatre", "music", "cabaret"}

var (
	updateFull   bool
	updateGenres []string
	updateDry    bool
	updateEmail  bool
)

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Scrape listings, merge into the canonical tables and report changes",
	RunE:  runUpdate,
}

func init() {
	updateCmd.Flags().BoolVar(&updateFull, "full", false, "full mode: scraped genres replace their whole partition")
	updateCmd.Flags().StringSliceVar(&updateGenres, "genres", defaultGenres, "genres to scrape")
	updateCmd.Flags().BoolVar(&updateDry, "dry", false, "scrape and diff without writing files or sending email")
	updateCmd.Flags().BoolVar(&updateEmail, "email", false, "email the change report when there are changes")
	rootCmd.AddCommand(updateCmd)
}

func runUpdate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	logger := log.GetLogger()

	if updateDry {
		logger = log.AddGlobalField("DryRun", true)
	}

	mode := "recent"
	if updateFull {
		mode = "full"
	}
	logger = log.AddGlobalField("Mode", mode)

	tasks, err := internal.BuildTasks(config.BaseUrl.Value, updateGenres)
	if err != nil {
		return err
	}
	logger.WithField("TaskCount", len(tasks)).Info("built scrape tasks")

	client, err := scraper.NewClient(config)
	if err != nil {
		return err
	}
	p := parser.New(config.BaseUrl.Value, config.DefaultYear.Int(2026))

	results, err := scraper.Start(ctx, client, p, tasks)
	if err != nil {
		return err
	}

	var failed int
	var shows []*internal.ScrapedShow
	for _, result := range results {
		failed += len(result.FailedUrls)
		shows = append(shows, result.Shows...)
	}
	logger.WithField("ShowCount", len(shows)).WithField("FailedCount", failed).Info("scrape finished")

	perfBatch := internal.PerformanceRows(results)
	infoBatch := internal.ShowInfoRows(results)

	venueCachePath := filepath.Join(config.CurrentDir.Value, venueCacheFile)
	cachedVenues, err := internal.LoadVenueCache(venueCachePath)
	if err != nil {
		return err
	}
	observedVenues := internal.CollectVenues(shows)
	missingCodes := internal.MissingVenueCodes(cachedVenues, observedVenues)
	enrichedVenues := scraper.EnrichVenues(ctx, client, observedVenues, missingCodes)
	mergedVenues := internal.MergeVenueCache(cachedVenues, enrichedVenues)

	canonicalPath := filepath.Join(config.CurrentDir.Value, canonicalPerformancesFile)
	existing, err := store.Load(canonicalPath, store.PerformanceColumns)
	if err != nil {
		return err
	}
	mergedPerformances := store.MergePerformances(existing, perfBatch, updateFull)

	showInfoPath := filepath.Join(config.CurrentDir.Value, canonicalShowInfoFile)
	existingInfo, err := store.Load(showInfoPath, store.ShowInfoColumns)
	if err != nil {
		return err
	}
	mergedInfo := store.MergeShowInfo(existingInfo, infoBatch)

	now := time.Now()
	snapshotPath := snapshot.SnapshotPath(config.SnapshotDir.Value, mode, now)
	priorPath, err := snapshot.FindLatest(config.SnapshotDir.Value, now.Format("2006-01-02"))
	if err != nil {
		return err
	}

	if updateDry {
		logger.Info("dry run, skipping file writes")
	} else {
		files := runFiles{
			raw:          filepath.Join(config.OutputDir.Value, fmt.Sprintf("%s-%s-raw.csv", now.Format("2006-01-02"), mode)),
			canonical:    canonicalPath,
			showInfo:     showInfoPath,
			venueCache:   venueCachePath,
			snapshot:     snapshotPath,
			infoSnapshot: snapshot.ShowInfoPath(config.SnapshotDir.Value, mode, now),
		}
		if err := persistRun(files, perfBatch, infoBatch, mergedPerformances, mergedInfo, mergedVenues); err != nil {
			return err
		}
		logger.WithField("SnapshotPath", snapshotPath).Info("wrote canonical tables and snapshot")
	}

	if priorPath == "" {
		logger.Info("no prior snapshot, no comparison possible")
		return nil
	}

	prior, err := snapshot.Load(priorPath)
	if err != nil {
		return err
	}
	diff := snapshot.Compare(prior, perfBatch)
	cmd.Println(snapshot.FormatText(diff))

	if updateEmail && !updateDry && diff.HasChanges() {
		sendReport(diff, now)
	}

	return nil
}

// runFiles lists every path a non-dry run writes to.
type runFiles struct {
	raw          string
	canonical    string
	showInfo     string
	venueCache   string
	snapshot     string
	infoSnapshot string
}

// persistRun writes the canonical tables plus the per-run captures. The
// snapshot pair records the scrape batch verbatim rather than the merged
// tables, so diffing consecutive snapshots can still see shows the newer
// batch no longer carries.
func persistRun(files runFiles, perfBatch, infoBatch, mergedPerformances, mergedInfo *store.Table, venues map[string]*internal.VenueInfo) error {
	if err := perfBatch.Save(files.raw); err != nil {
		return err
	}
	if err := mergedPerformances.Save(files.canonical); err != nil {
		return err
	}
	if err := mergedInfo.Save(files.showInfo); err != nil {
		return err
	}
	if err := internal.SaveVenueCache(venues, files.venueCache); err != nil {
		return err
	}
	if err := snapshot.Write(perfBatch, files.snapshot); err != nil {
		return err
	}
	return snapshot.Write(infoBatch, files.infoSnapshot)
}

func sendReport(diff *snapshot.SnapshotDiff, at time.Time) {
	logger := log.GetLogger()

	if config.EmailTo.Value == "" {
		logger.Warn("email requested but EDFRINGE_EMAIL_TO is not set")
		return
	}

	settings := email.Settings{
		To:       config.EmailTo.Value,
		From:     config.EmailFrom.Value,
		SmtpHost: config.SmtpHost.Value,
		SmtpPort: config.SmtpPort.Int(587),
		SmtpUser: config.SmtpUser.Value,
		Password: config.SmtpPassword.Value,
	}
	subject := fmt.Sprintf("Edinburgh Fringe Update - %d changes (%s)", diff.TotalChanges(), at.Format("2006-01-02"))

	if !email.Send(settings, subject, snapshot.FormatText(diff), snapshot.FormatHTML(diff)) {
		logger.Warn("change report email was not delivered")
	}
}
