package main

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/yourusername/klondikesolver/pkg/api"
	"github.com/yourusername/klondikesolver/pkg/solitaire"
)

const version = "0.1.0"

var (
	serveHost           string
	servePort           int
	serveMaxFastWorkers int
	serveMaxSlowWorkers int
	serveDefaultTimeout time.Duration
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP/WebSocket solver API",
	RunE:  runServe,
}

func init() {
	defaults := api.DefaultConfig()
	serveCmd.Flags().StringVar(&serveHost, "host", defaults.Host, "host to bind to (use 0.0.0.0 for all interfaces)")
	serveCmd.Flags().IntVar(&servePort, "port", defaults.Port, "port to listen on")
	serveCmd.Flags().IntVar(&serveMaxFastWorkers, "max-fast-workers", defaults.MaxFastWorkers, "max concurrent health/validate requests")
	serveCmd.Flags().IntVar(&serveMaxSlowWorkers, "max-slow-workers", defaults.MaxSlowWorkers, "max concurrent solves")
	serveCmd.Flags().DurationVar(&serveDefaultTimeout, "default-timeout", 30*time.Second, "solve timeout used when a request omits one")
}

func runServe(cmd *cobra.Command, args []string) error {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).With().Timestamp().Logger()

	config := api.DefaultConfig()
	config.Host = serveHost
	config.Port = servePort
	config.MaxFastWorkers = serveMaxFastWorkers
	config.MaxSlowWorkers = serveMaxSlowWorkers

	solverOpts := solitaire.DefaultSolverOptions()
	solverOpts.Timeout = serveDefaultTimeout

	server := api.NewServer(config, solverOpts, version, logger)

	if err := server.ListenAndServeWithGracefulShutdown(); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}
