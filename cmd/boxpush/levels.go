package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List the level catalog",
	Long:  `Shows every level in play order, with its size and box count.`,
	Args:  cobra.NoArgs,
	Run:   runLevels,
}

func runLevels(_ *cobra.Command, _ []string) {
	a := setup(false)
	defer a.close()

	lvls := a.catalog.Levels()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, l := range lvls {
		if len(l.ID) > maxIDLen {
			maxIDLen = len(l.ID)
		}
	}

	fmt.Println("Levels:")
	fmt.Println()

	// Print header
	fmt.Printf("  %-3s  %-*s  %-7s  %-5s  %s\n", "#", maxIDLen, "ID", "Size", "Boxes", "Name")
	fmt.Printf("  %-3s  %-*s  %-7s  %-5s  %s\n", "-", maxIDLen, "--", "----", "-----", "----")

	for i, l := range lvls {
		size := fmt.Sprintf("%dx%d", l.Layout.Width(), l.Layout.Height())
		fmt.Printf("  %-3d  %-*s  %-7s  %-5d  %s\n", i+1, maxIDLen, l.ID, size, countBoxes(l.Layout), l.Name)
	}

	fmt.Println()
	fmt.Println("Run 'boxpush play --level <#>' to start on a level.")
}

// countBoxes counts boxes on and off targets.
func countBoxes(rows []string) int {
	n := 0
	for _, row := range rows {
		n += strings.Count(row, "B") + strings.Count(row, "*")
	}
	return n
}
