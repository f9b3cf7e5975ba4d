package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/boxpush/internal/levels"
	"github.com/vovakirdan/boxpush/internal/platform/tui"
	"github.com/vovakirdan/boxpush/internal/storage"
)

var recordsCmd = &cobra.Command{
	Use:   "records [level]",
	Short: "Show best completions",
	Long: `Display the ten fewest-step completions for a level, given by ID or
number. Without a level, opens the interactive records board.

Examples:
  boxpush records
  boxpush records tower
  boxpush records 2`,
	Args: cobra.MaximumNArgs(1),
	Run:  runRecords,
}

func runRecords(_ *cobra.Command, args []string) {
	a := setup(false)
	defer a.close()

	// Open records storage
	store, err := storage.Open(a.cfg.Storage.Path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening records database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if len(args) == 0 {
		rt := runtimeConfig()
		if err := tui.RunRecords(a.catalog, store, a.theme, 0, rt.ScreenW, rt.ScreenH); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		return
	}

	idx, ok := resolveLevel(a.catalog, args[0])
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown level %q\n", args[0])
		fmt.Fprintln(os.Stderr, "Run 'boxpush levels' to see available levels.")
		return
	}
	lvl := a.catalog.At(idx)

	completions, err := store.TopCompletions(lvl.ID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving records: %v\n", err)
		return
	}

	fmt.Printf("Best completions - %d. %s\n", idx+1, lvl.Name)
	fmt.Println()

	if len(completions) == 0 {
		fmt.Println("No completions recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'boxpush play --level %d' to set the first record!\n", idx+1)
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-6s  %-12s  %s\n", "Rank", "Steps", "Player", "Date")
	fmt.Printf("  %-4s  %-6s  %-12s  %s\n", "----", "-----", "------", "----")

	for i, c := range completions {
		dateStr := c.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-6d  %-12s  %s\n", i+1, c.Steps, c.Player, dateStr)
	}

	if stats, statsErr := store.LevelStats(lvl.ID); statsErr == nil {
		fmt.Println()
		fmt.Printf("Best: %d steps  Average: %.1f  Clears: %d\n", stats.BestSteps, stats.AvgSteps, stats.Clears)
	}
}

// resolveLevel accepts a level ID or a 1-based level number.
func resolveLevel(catalog *levels.Catalog, arg string) (int, bool) {
	if idx, ok := catalog.Index(arg); ok {
		return idx, true
	}
	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 || n > catalog.Len() {
		return 0, false
	}
	return n - 1, true
}
