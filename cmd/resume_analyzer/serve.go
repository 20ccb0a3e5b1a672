package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-analyzer/internal/config"
	"github.com/jonathan/resume-analyzer/internal/server"
)

var serveCommand = &cobra.Command{
	Use:   "serve",
	Short: "Start the resume analyzer HTTP API server",
	Long:  "Starts the REST API for uploading extracted resume text, running analyses, and retrieving analysis records. Configuration comes from the environment (PORT, DATABASE_URL, GEMINI_API_KEY, LANGUAGETOOL_URL).",
	RunE:  runServeCmd,
}

var servePort int

func init() {
	serveCommand.Flags().IntVarP(&servePort, "port", "p", 0, "HTTP listen port (overrides PORT env var)")

	rootCmd.AddCommand(serveCommand)
}

func runServeCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if cmd.Flags().Changed("port") {
		cfg.Port = servePort
	}

	s, err := server.New(context.Background(), cfg)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return s.Start()
}
