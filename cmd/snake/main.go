// snake is the classic snake game for the terminal.
//
// Usage:
//
//	snake               - Play (same as "snake play")
//	snake play          - Play a game
//	snake config        - Print the effective configuration as YAML
//	snake keys          - List the controls
//
// Global flags:
//
//	--config <path>     - Custom config YAML
//	--seed <value>      - RNG seed for reproducible games
//	--ui <tea|raw>      - Terminal backend (default: tea)
//	--log-file <path>   - Write logs to a file
//	--log-level <level> - debug, info, warn or error (default: warn)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagUI       string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - the classic game in your terminal",
	Long: `Snake is the classic game played on a bordered grid in your terminal.
Steer the snake to the food, grow, and avoid the border and your own tail.

Available commands:
  play     - Play a game (default)
  config   - Print the effective configuration
  keys     - List the controls

Examples:
  snake
  snake play --seed 42
  snake play --ui raw
  snake config --config ./my-snake.yaml > ~/.termsnake/snake.yaml`,
	Run: runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagUI, "ui", uiTea, "Terminal backend: tea or raw")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file instead of stderr")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(keysCmd)
}
