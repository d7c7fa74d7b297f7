package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/rezonia/tenderdoc/internal/steps"
)

var detectTimeout time.Duration

var detectCmd = &cobra.Command{
	Use:   "detect <chuong_v.pdf>",
	Short: "Classify a process PDF as a 21-step or 23-step procedure",
	Long: `Extract the text of a CHUONG_V process description and ask the LLM
whether it describes the 21-step or the 23-step procurement procedure.
Requires an LLM API key.

Examples:
  tenderdoc detect CHUONG_V.pdf --api-key <key>
  LLM_API_KEY=<key> tenderdoc detect CHUONG_V.pdf`,
	Args: cobra.ExactArgs(1),
	RunE: runDetect,
}

func init() {
	rootCmd.AddCommand(detectCmd)

	detectCmd.Flags().DurationVar(&detectTimeout, "timeout", 2*time.Minute, "Detection timeout")
}

func runDetect(cmd *cobra.Command, args []string) error {
	pdfExtractor, llmExtractor := buildExtractors()
	if llmExtractor == nil {
		return fmt.Errorf("step detection requires an LLM API key (--api-key or LLM_API_KEY)")
	}

	ctx, cancel := context.WithTimeout(context.Background(), detectTimeout)
	defer cancel()

	count, err := steps.NewDetector(pdfExtractor, llmExtractor).Detect(ctx, args[0])
	if err != nil {
		return err
	}

	fmt.Println(count)
	return nil
}
