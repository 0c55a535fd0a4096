package cmd

import (
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fringe-watch/edfringe-parser/internal/convert"
	"github.com/fringe-watch/edfringe-parser/internal/log"
	"github.com/fringe-watch/edfringe-parser/internal/store"
)

var (
	convertOutputDir string
	convertFormats   []string
)

var convertCmd = &cobra.Command{
	Use:   "convert <raw-csv>",
	Short: "Convert a raw scrape CSV into cleaned, summary and wide formats",
	Args:  cobra.ExactArgs(1),
	RunE:  runConvert,
}

func init() {
	convertCmd.Flags().StringVar(&convertOutputDir, "output-dir", "", "directory for converted files (defaults to the input file's directory)")
	convertCmd.Flags().StringSliceVar(&convertFormats, "formats", convert.AllFormats, "formats to produce")
	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	raw, err := store.Load(inputPath, store.PerformanceColumns)
	if err != nil {
		return err
	}
	log.GetLogger().WithField("Rows", raw.Len()).Infof("loaded %s", inputPath)

	outputDir := convertOutputDir
	if outputDir == "" {
		outputDir = filepath.Dir(inputPath)
	}

	base := filepath.Base(inputPath)
	base = strings.TrimSuffix(base, filepath.Ext(base))

	results, err := convert.SaveAllFormats(raw, outputDir, base, convertFormats, config.DefaultYear.Int(2026))
	if err != nil {
		return err
	}

	for format, path := range results {
		cmd.Printf("%s: %s\n", format, path)
	}

	return nil
}
