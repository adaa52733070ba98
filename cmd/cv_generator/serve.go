package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"cv-generator/internal/config"
	"cv-generator/internal/server"
)

var (
	servePort       int
	serveConfigPath string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the CV editor server",
	Long:  `Start an HTTP server that serves the CV editing form, a live preview, and the PDF export endpoint.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	serveCmd.Flags().StringVar(&serveConfigPath, "config", "", "Path to a JSON config file")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg := config.Config{
		Port:       servePort,
		APIKey:     os.Getenv("GEMINI_API_KEY"),
		Model:      os.Getenv("GEMINI_MODEL"),
		ChromePath: os.Getenv("CHROME_PATH"),
	}

	if serveConfigPath != "" {
		fileCfg, err := config.LoadConfig(serveConfigPath)
		if err != nil {
			return err
		}
		cfg = fileCfg.MergeWithDefaults(cfg)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	if cfg.APIKey == "" {
		fmt.Fprintln(os.Stderr, "Warning: GEMINI_API_KEY not set; translation is disabled, English exports still work")
	}

	srv, err := server.New(server.Config{
		Port:       cfg.Port,
		APIKey:     cfg.APIKey,
		Model:      cfg.Model,
		ChromePath: cfg.ChromePath,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
