package cmd

import (
	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show configuration information",
	Run:   runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) {
	cmd.Printf("Environment: %s\n", config.Environment.Value)
	cmd.Printf("Base URL: %s\n", config.BaseUrl.Value)
	cmd.Printf("Output dir: %s\n", config.OutputDir.Value)
	cmd.Printf("Snapshot dir: %s\n", config.SnapshotDir.Value)
	cmd.Printf("Current dir: %s\n", config.CurrentDir.Value)
	cmd.Printf("Default year: %d\n", config.DefaultYear.Int(2026))
	cmd.Printf("Request delay: %dms\n", config.RequestDelayMs.Int(2000))
	cmd.Printf("JS wait: %dms\n", config.JsWaitMs.Int(15000))
	cmd.Printf("Scraping Dog key configured: %t\n", config.ScrapingdogApiKey.Value != "")
	cmd.Printf("Email configured: %t\n", config.SmtpUser.Value != "" && config.EmailTo.Value != "")
}
