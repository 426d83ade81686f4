// starcatch is a terminal arcade game: steer a paddle to catch falling
// stars while dodging meteors.
//
// Usage:
//
//	starcatch play            - Play in the current terminal
//	starcatch scores          - Show the high score table
//	starcatch serve           - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.starcatch/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "starcatch",
	Short: "Catch falling stars, dodge meteors, in your terminal",
	Long: `starcatch is a terminal arcade game. Move the paddle along the bottom
of the screen to catch falling stars for points. Meteors fall faster as
your score grows; touching one ends the session.

Available commands:
  play     - Play in the current terminal
  scores   - View the high score table
  serve    - Start SSH server for remote play

Examples:
  starcatch play
  starcatch play --seed 42
  starcatch scores
  starcatch serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.starcatch/scores.db", "Path to scores database")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
