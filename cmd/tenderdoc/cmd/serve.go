package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/rezonia/tenderdoc/internal/server"
)

var (
	serverAddr       string
	serverContentDir string
	serverDebug      bool
	readTimeout      time.Duration
	writeTimeout     time.Duration
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long: `Start an HTTP API server for document generation and inspection.

The API provides endpoints for:
  - POST /api/v1/generate      - Run a pipeline from a JSON configuration
  - POST /api/v1/inspect       - Report a document's placeholders
  - POST /api/v1/steps/detect  - Classify a process PDF (21 or 23 steps)
  - GET  /health               - Health check

Examples:
  # Start server on default port
  tenderdoc serve

  # Start on custom port with API key
  tenderdoc serve --address :8080 --api-key <key>

  # Start in debug mode
  tenderdoc serve --debug`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serverAddr, "address", ":8080", "Server listen address")
	serveCmd.Flags().StringVar(&serverContentDir, "content-dir", "", "Default directory for pre-built content documents")
	serveCmd.Flags().BoolVar(&serverDebug, "debug", false, "Enable debug mode")
	serveCmd.Flags().DurationVar(&readTimeout, "read-timeout", 30*time.Second, "HTTP read timeout")
	serveCmd.Flags().DurationVar(&writeTimeout, "write-timeout", 15*time.Minute, "HTTP write timeout")
}

func runServe(cmd *cobra.Command, args []string) error {
	config := &server.Config{
		Address:      serverAddr,
		APIKey:       apiKey,
		LLMBaseURL:   llmBaseURL,
		LLMModel:     llmModel,
		ContentDir:   serverContentDir,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		Debug:        serverDebug,
	}

	srv := server.NewServer(config)

	// Handle graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		fmt.Println("\nShutting down server...")
		os.Exit(0)
	}()

	fmt.Printf("Starting server on %s\n", serverAddr)
	if apiKey != "" {
		fmt.Println("LLM extraction enabled")
	} else {
		fmt.Println("LLM extraction disabled (no API key)")
	}

	return srv.Run()
}
