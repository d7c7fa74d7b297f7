package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/rezonia/tenderdoc/internal/pipeline"
)

var (
	generateConfig  string
	generateTimeout time.Duration
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Run a full document generation pipeline",
	Long: `Run every placeholder substitution described by a pipeline
configuration file against the configured template, producing the final
document.

Substitutions run in configured order against one accumulating document.
The configured output path only ever receives a complete document; when a
placeholder fails, the partial result is saved under a *.provisional.docx
name instead and the command exits non-zero naming the failing placeholder.

Example pipeline.yaml:

  template: TEMPLATE.docx
  output: out/final.docx
  content_dir: content
  sources:
    tbmt: pdfs/TBMT.pdf
    chuong_v: pdfs/CHUONG_V.pdf
    bmmt: pdfs/BMMT.pdf
  placeholders:
    - name: ten_goi_thau
      producer: field
      source: tbmt
    - name: pham_vi_cung_cap
      producer: table
      source: bmmt
    - name: cac_buoc_thuc_hien
      producer: step_premade
      source: chuong_v

Examples:
  tenderdoc generate --config pipeline.yaml --api-key <key>
  tenderdoc generate -c pipeline.yaml --llm-model openai/gpt-4o`,
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringVarP(&generateConfig, "config", "c", "pipeline.yaml", "Pipeline configuration file")
	generateCmd.Flags().DurationVar(&generateTimeout, "timeout", 15*time.Minute, "Total generation timeout")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := pipeline.LoadConfig(generateConfig)
	if err != nil {
		return err
	}

	pdfExtractor, llmExtractor := buildExtractors()
	built, err := cfg.BuildSteps(pdfExtractor, llmExtractor)
	if err != nil {
		return err
	}

	printVerbose("Running %d placeholder steps against %s\n", len(built), cfg.Template)

	ctx, cancel := context.WithTimeout(context.Background(), generateTimeout)
	defer cancel()

	report, runErr := pipeline.New(built...).Run(ctx, cfg.Template, cfg.Output)

	if report != nil {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(report); err != nil {
			return err
		}
	}

	if runErr != nil {
		if report != nil && report.Provisional {
			fmt.Fprintf(os.Stderr, "Partial document saved to %s\n", report.Output)
		}
		return runErr
	}

	printVerbose("Document written to %s\n", report.Output)
	return nil
}
