package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/misbah/resumeai/internal/config"
	"github.com/misbah/resumeai/internal/llm"
)

var modelsCmd = &cobra.Command{
	Use:   "models",
	Short: "List the generative models available to the configured credential",
	Long:  `Diagnostic connectivity check: lists the model identifiers the configured API key can access. Uses the same credential loading as the rest of the application.`,
	RunE:  runModels,
}

func init() {
	rootCmd.AddCommand(modelsCmd)
}

func runModels(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	client, err := llm.NewClient(cmd.Context(), llm.DefaultConfig().WithModel(cfg.Model), cfg.APIKey)
	if err != nil {
		return fmt.Errorf("failed to create backend client: %w", err)
	}
	defer func() { _ = client.Close() }()

	names, err := client.ListModels(cmd.Context())
	if err != nil {
		return err
	}

	for _, name := range names {
		fmt.Println(name)
	}
	return nil
}
