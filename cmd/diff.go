package cmd

import (
	"errors"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/fringe-watch/edfringe-parser/internal/log"
	"github.com/fringe-watch/edfringe-parser/internal/snapshot"
)

var (
	diffOld  string
	diffNew  string
	diffHtml bool
)

var diffCmd = &cobra.Command{
	Use:   "diff",
	Short: "Compare two snapshots and print the change report",
	Long:  "Compare two snapshots and print the change report. Without --old/--new the two most recent snapshots are compared.",
	RunE:  runDiff,
}

func init() {
	diffCmd.Flags().StringVar(&diffOld, "old", "", "path to the older snapshot")
	diffCmd.Flags().StringVar(&diffNew, "new", "", "path to the newer snapshot")
	diffCmd.Flags().BoolVar(&diffHtml, "html", false, "print the HTML report instead of plain text")
	rootCmd.AddCommand(diffCmd)
}

func runDiff(cmd *cobra.Command, args []string) error {
	logger := log.GetLogger()

	oldPath, newPath := diffOld, diffNew
	if oldPath == "" || newPath == "" {
		var err error
		oldPath, newPath, err = latestSnapshotPair(config.SnapshotDir.Value)
		if err != nil {
			return err
		}
	}
	logger.WithField("Old", oldPath).WithField("New", newPath).Debug("comparing snapshots")

	oldTable, err := snapshot.Load(oldPath)
	if err != nil {
		return err
	}
	newTable, err := snapshot.Load(newPath)
	if err != nil {
		return err
	}

	diff := snapshot.Compare(oldTable, newTable)
	if diffHtml {
		cmd.Println(snapshot.FormatHTML(diff))
	} else {
		cmd.Println(snapshot.FormatText(diff))
	}

	return nil
}

// latestSnapshotPair picks the newest snapshot and the newest one from an
// earlier date.
func latestSnapshotPair(dir string) (oldPath, newPath string, err error) {
	newPath, err = snapshot.FindLatest(dir, "")
	if err != nil {
		return "", "", err
	}
	if newPath == "" {
		return "", "", errors.New("no snapshots found, no comparison possible")
	}

	newDate := filepath.Base(newPath)
	if len(newDate) >= 10 {
		newDate = newDate[:10]
	}

	oldPath, err = snapshot.FindLatest(dir, newDate)
	if err != nil {
		return "", "", err
	}
	if oldPath == "" {
		return "", "", errors.New("only one snapshot found, no comparison possible")
	}

	return oldPath, newPath, nil
}
