package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jhenriksen/edir/pkg/edir/config"
	"github.com/jhenriksen/edir/pkg/edir/history"
	"github.com/jhenriksen/edir/pkg/edir/output"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "View past runs",
	Long: `View the history of edit runs.

Each completed run is recorded with the renames and deletions it
performed, so earlier sessions can be inspected after the fact.`,
	RunE: runHistory,
}

var historyShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show details of a specific run",
	Long:  `Display the full record of a run by its ID or an unambiguous ID prefix.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryShow,
}

var historyCleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Clean up old history entries",
	Long:  `Remove run records older than the retention period.`,
	RunE:  runHistoryClean,
}

var historyLimit int

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "l", 20, "maximum number of runs to show")

	historyCmd.AddCommand(historyShowCmd)
	historyCmd.AddCommand(historyCleanCmd)
	rootCmd.AddCommand(historyCmd)
}

// getStore returns the history store at the configured directory.
func getStore() (*history.Store, error) {
	dir := viper.GetString("history.path")
	if dir == "" {
		dir = config.HistoryDir()
	}
	return history.NewStore(dir)
}

// runHistory lists recent runs.
func runHistory(cmd *cobra.Command, args []string) error {
	store, err := getStore()
	if err != nil {
		return fmt.Errorf("failed to open history: %w", err)
	}

	records, err := store.List(historyLimit)
	if err != nil {
		return fmt.Errorf("failed to list history: %w", err)
	}

	if len(records) == 0 {
		fmt.Println("No history entries found.")
		fmt.Println("Run 'edir [path]' to edit a directory.")
		return nil
	}

	if err := output.RenderHistory(os.Stdout, records); err != nil {
		return fmt.Errorf("failed to render history: %w", err)
	}
	fmt.Println("\nUse 'edir history show <id>' for details on a specific run.")
	return nil
}

// runHistoryShow displays one run record.
func runHistoryShow(cmd *cobra.Command, args []string) error {
	store, err := getStore()
	if err != nil {
		return fmt.Errorf("failed to open history: %w", err)
	}

	rec, err := store.Get(args[0])
	if err != nil {
		return fmt.Errorf("failed to get record: %w", err)
	}

	output.RenderRecord(os.Stdout, rec)
	return nil
}

// runHistoryClean removes records older than the retention period.
func runHistoryClean(cmd *cobra.Command, args []string) error {
	store, err := getStore()
	if err != nil {
		return fmt.Errorf("failed to open history: %w", err)
	}

	days := viper.GetInt("history.retention_days")
	if days <= 0 {
		days = config.DefaultHistoryRetentionDays
	}

	fmt.Printf("Cleaning history entries older than %d days...\n", days)

	removed, err := store.Prune(time.Duration(days) * 24 * time.Hour)
	if err != nil {
		return fmt.Errorf("failed to clean history: %w", err)
	}

	fmt.Printf("Removed %d entries.\n", removed)
	return nil
}
