package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rezonia/tenderdoc/internal/llm"
	pdfparser "github.com/rezonia/tenderdoc/internal/parser/pdf"
)

var (
	version = "1.0.0"

	// Global flags
	verbose    bool
	apiKey     string
	llmBaseURL string
	llmModel   string
)

var rootCmd = &cobra.Command{
	Use:   "tenderdoc",
	Short: "Generate Vietnam procurement documents from tender PDFs",
	Long: `Tenderdoc assembles a finished procurement document by filling the
{{placeholder}} markers of a DOCX template with content extracted from the
tender's source PDFs (TBMT, CHUONG_V, BMMT and related files).

Examples:
  # Run a full generation described by a pipeline config
  tenderdoc generate --config pipeline.yaml --api-key <openrouter-key>

  # Splice one pre-built content document into a template
  tenderdoc splice template.docx pham_vi_cung_cap table.docx -o out.docx

  # Classify a process PDF as 21 or 23 steps
  tenderdoc detect CHUONG_V.pdf --api-key <key>

  # List the placeholders a document still carries
  tenderdoc inspect template.docx`,
	Version: version,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVar(&apiKey, "api-key", "", "API key for LLM provider (env: LLM_API_KEY)")
	rootCmd.PersistentFlags().StringVar(&llmBaseURL, "llm-base-url", "", "LLM API base URL (env: LLM_BASE_URL)")
	rootCmd.PersistentFlags().StringVar(&llmModel, "llm-model", "", "LLM model for extraction (env: LLM_MODEL)")

	// Load from environment variables if not set via flags
	cobra.OnInitialize(initConfig)
}

func initConfig() {
	if apiKey == "" {
		apiKey = os.Getenv("LLM_API_KEY")
	}
	if llmBaseURL == "" {
		llmBaseURL = os.Getenv("LLM_BASE_URL")
	}
	if llmModel == "" {
		llmModel = os.Getenv("LLM_MODEL")
	}
}

// buildExtractors wires the PDF text extractor plus, when an API key is
// available, the LLM extractor
func buildExtractors() (*pdfparser.Extractor, *llm.Extractor) {
	pdfExtractor := pdfparser.NewExtractor()

	var llmExtractor *llm.Extractor
	if apiKey != "" {
		var clientOpts []llm.ClientOption
		if llmBaseURL != "" {
			clientOpts = append(clientOpts, llm.WithBaseURL(llmBaseURL))
		}
		client := llm.NewClient(apiKey, clientOpts...)

		var extractorOpts []llm.ExtractorOption
		if llmModel != "" {
			extractorOpts = append(extractorOpts, llm.WithModel(llmModel))
		}
		llmExtractor = llm.NewExtractor(client, extractorOpts...)
		printVerbose("LLM extraction enabled (model: %s)\n", llmModel)
	}

	return pdfExtractor, llmExtractor
}

func printVerbose(format string, args ...interface{}) {
	if verbose {
		fmt.Fprintf(os.Stderr, format, args...)
	}
}
