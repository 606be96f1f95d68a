package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/misbah/resumeai/internal/config"
	"github.com/misbah/resumeai/internal/llm"
	"github.com/misbah/resumeai/internal/render"
	"github.com/misbah/resumeai/internal/transform"
	"github.com/misbah/resumeai/internal/types"
)

var (
	generateNotesPath string
	generateStyle     string
	generateOutput    string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a resume PDF from a notes file",
	Long:  `Run the notes-to-resume pipeline once without the web surface: read free-text notes from a file, call the generative backend, and write the rendered PDF.`,
	RunE:  runGenerate,
}

func init() {
	generateCmd.Flags().StringVar(&generateNotesPath, "notes", "", "Path to the free-text notes file (required)")
	generateCmd.Flags().StringVar(&generateStyle, "style", string(types.StyleCorporate), "Resume style: corporate, creative-modern or technical-engineering")
	generateCmd.Flags().StringVarP(&generateOutput, "output", "o", "", "Output PDF path (default: derived from the resume name)")
	_ = generateCmd.MarkFlagRequired("notes")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	style, err := types.ParseStyle(generateStyle)
	if err != nil {
		return err
	}

	notes, err := os.ReadFile(generateNotesPath)
	if err != nil {
		return fmt.Errorf("failed to read notes file: %w", err)
	}
	if len(notes) == 0 {
		return fmt.Errorf("notes file %s is empty", generateNotesPath)
	}

	client, err := llm.NewClient(cmd.Context(), llm.DefaultConfig().WithModel(cfg.Model), cfg.APIKey)
	if err != nil {
		return fmt.Errorf("failed to create backend client: %w", err)
	}
	defer func() { _ = client.Close() }()

	doc, err := transform.New(client).Transform(cmd.Context(), string(notes), style)
	if err != nil {
		return err
	}

	pdf, err := render.PDF(doc)
	if err != nil {
		return err
	}

	out := generateOutput
	if out == "" {
		out = doc.Filename()
	}
	if err := os.WriteFile(out, pdf, 0o644); err != nil {
		return fmt.Errorf("failed to write PDF: %w", err)
	}

	fmt.Printf("Wrote %s (%d bytes)\n", out, len(pdf))
	return nil
}
