package cmd

import (
	"github.com/spf13/cobra"

	"github.com/fringe-watch/edfringe-parser/internal"
	"github.com/fringe-watch/edfringe-parser/internal/log"
	"github.com/fringe-watch/edfringe-parser/internal/scraper"
)

var discoverGenre string

var discoverCmd = &cobra.Command{
	Use:   "discover",
	Short: "Check whether the site's internal JSON endpoints answer",
	Long:  "Fetch one search page, extract the Next.js build id and report whether the /_next/data JSON endpoint answers for the genre.",
	RunE:  runDiscover,
}

func init() {
	discoverCmd.Flags().StringVar(&discoverGenre, "genre", "comedy", "genre to check with")
	rootCmd.AddCommand(discoverCmd)
}

func runDiscover(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	logger := log.GetLogger()

	task, err := internal.NewScrapeTask(config.BaseUrl.Value, discoverGenre)
	if err != nil {
		return err
	}

	client, err := scraper.NewClient(config)
	if err != nil {
		return err
	}

	logger.WithField("Url", task.SearchUrl).Info("fetching search page")
	page, err := client.FetchPage(ctx, task.SearchUrl)
	if err != nil {
		return err
	}

	buildId, ok := scraper.DiscoverBuildId(page.Html)
	if !ok {
		cmd.Println("No Next.js build id found, rendered scraping is the only option")
		return nil
	}
	cmd.Printf("Build id: %s\n", buildId)

	if data, ok := scraper.TryApiEndpoint(ctx, client, config.BaseUrl.Value, task.Genre, buildId); ok {
		cmd.Printf("JSON endpoint answered with %d top-level keys\n", len(data))
	} else {
		cmd.Println("JSON endpoint did not answer, rendered scraping stays in place")
	}

	return nil
}
