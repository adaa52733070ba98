package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"cv-generator/internal/config"
	"cv-generator/internal/cv"
	"cv-generator/internal/export"
	"cv-generator/internal/llm"
	"cv-generator/internal/rendering"
	"cv-generator/internal/translation"
)

var (
	exportInput      string
	exportOutput     string
	exportLanguage   string
	exportScale      float64
	exportConfigPath string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a CV document to PDF",
	Long: `Render a CV document JSON file to a PDF without starting the server.
With --language other than English the document is translated first, which
requires GEMINI_API_KEY. Without --input the built-in sample document is used.`,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportInput, "input", "", "Path to a CV document JSON file (default: built-in sample)")
	exportCmd.Flags().StringVar(&exportOutput, "output", "", "Path to write the PDF (default: {fullName}_CV.pdf)")
	exportCmd.Flags().StringVar(&exportLanguage, "language", export.SourceLanguage, "Target language (English, Malay, Tamil)")
	exportCmd.Flags().Float64Var(&exportScale, "scale", 0, "Rasterization scale factor")
	exportCmd.Flags().StringVar(&exportConfigPath, "config", "", "Path to a JSON config file")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, _ []string) error {
	cfg := config.Config{
		APIKey:     os.Getenv("GEMINI_API_KEY"),
		Model:      os.Getenv("GEMINI_MODEL"),
		ChromePath: os.Getenv("CHROME_PATH"),
		Language:   exportLanguage,
		Scale:      exportScale,
		Input:      exportInput,
		Output:     exportOutput,
	}

	if exportConfigPath != "" {
		fileCfg, err := config.LoadConfig(exportConfigPath)
		if err != nil {
			return err
		}
		cfg = fileCfg.MergeWithDefaults(cfg)
	}
	if cfg.Language == "" {
		cfg.Language = export.SourceLanguage
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	doc, err := loadDocument(cfg.Input)
	if err != nil {
		return err
	}

	renderer, err := rendering.NewRenderer()
	if err != nil {
		return fmt.Errorf("failed to create renderer: %w", err)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	var translator export.Translator
	if cfg.Language != export.SourceLanguage {
		if cfg.APIKey == "" {
			return fmt.Errorf("GEMINI_API_KEY environment variable is required for %s export", cfg.Language)
		}
		client, err := llm.NewGeminiClient(ctx, cfg.APIKey, cfg.Model)
		if err != nil {
			return fmt.Errorf("failed to create translation client: %w", err)
		}
		defer client.Close() //nolint:errcheck
		translator = translation.New(client)
	}

	orchestrator := export.NewOrchestrator(translator, renderer, export.NewChromeRasterizer(cfg.ChromePath))
	orchestrator.SetScale(cfg.Scale)

	result, err := orchestrator.Export(ctx, doc, cfg.Language)
	if err != nil {
		return fmt.Errorf("export failed: %w", err)
	}

	output := cfg.Output
	if output == "" {
		output = result.Filename
	}
	if err := os.WriteFile(output, result.PDF, 0o644); err != nil {
		return fmt.Errorf("failed to write PDF: %w", err)
	}

	fmt.Printf("Wrote %s (%d bytes)\n", output, len(result.PDF))
	return nil
}

// loadDocument reads a document from a JSON file, falling back to the
// built-in sample when no path is given.
func loadDocument(path string) (cv.Document, error) {
	if path == "" {
		return cv.DefaultDocument(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cv.Document{}, fmt.Errorf("failed to read document file: %w", err)
	}

	var doc cv.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return cv.Document{}, fmt.Errorf("failed to parse document JSON: %w", err)
	}
	return doc, nil
}
