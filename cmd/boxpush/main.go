// boxpush is a terminal box-pushing puzzle with synthesized sound.
//
// Usage:
//
//	boxpush play              - Play from the first level
//	boxpush play --level 3    - Start on level 3
//	boxpush play --pick       - Choose the level from a list
//	boxpush levels            - List the level catalog
//	boxpush records [level]   - Show best completions
//	boxpush serve             - Start SSH server for remote play
//
// Global flags:
//
//	--config <path>     - Config file (default search: ~/.boxpush, ./configs)
//	--db <path>         - Records database (default: ~/.boxpush/records.db)
//	--levels <path>     - Level catalog YAML (default: built-in levels)
//	--mute              - Start with sound muted
//	--log-level <level> - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig     string
	flagDBPath     string
	flagLevelsPath string
	flagMute       bool
	flagLogLevel   string
	flagSeed       int64
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "boxpush",
	Short: "Boxpush - push boxes onto targets in your terminal",
	Long: `Boxpush is a terminal box-pushing puzzle. Walk the warehouse and
push every box onto a target to clear the level. Every move, push and
bump has its own synthesized tone, with a quiet melody in the background.

Available commands:
  play     - Play the puzzle
  levels   - Show the level catalog
  records  - View best completions
  serve    - Start SSH server for remote play

Examples:
  boxpush play
  boxpush play --level 2 --mute
  boxpush levels
  boxpush records tower
  boxpush serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to records database (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagLevelsPath, "levels", "", "Path to level catalog YAML (overrides config)")
	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "Start with sound muted")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error (overrides config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed for the background melody (0 = random based on time)")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(recordsCmd)
	rootCmd.AddCommand(serveCmd)
}
