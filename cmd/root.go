package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/fringe-watch/edfringe-parser/internal/util"
)

var config *util.Config

var rootCmd = &cobra.Command{
	Use:           "edfringe-parser",
	Short:         "Scrapes show, performer and performance listings from the Edinburgh Fringe website",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute(ctx context.Context, cfg *util.Config) error {
	config = cfg
	return rootCmd.ExecuteContext(ctx)
}
