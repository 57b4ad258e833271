// Command solitaire is a CLI front end for the Klondike solver: solve a
// single deal, batch-solve many random deals, or serve the HTTP/WebSocket
// API.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "solitaire",
	Short: "Solve Klondike solitaire deals with exhaustive depth-first search",
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(batchCmd)
	rootCmd.AddCommand(serveCmd)
}
