package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/misbah/resumeai/internal/config"
	"github.com/misbah/resumeai/internal/llm"
	"github.com/misbah/resumeai/internal/server"
	"github.com/misbah/resumeai/internal/transform"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the web UI server",
	Long:  `Start an HTTP server that serves the two-pane resume form, the preview API and the PDF download.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides PORT)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if servePort != 0 {
		cfg.Port = servePort
	}

	client, err := llm.NewClient(cmd.Context(), llm.DefaultConfig().WithModel(cfg.Model), cfg.APIKey)
	if err != nil {
		return fmt.Errorf("failed to create backend client: %w", err)
	}
	defer func() { _ = client.Close() }()

	transformer := transform.NewCached(transform.New(client))

	srv := server.New(server.Config{Port: cfg.Port}, transformer)
	return srv.Start()
}
