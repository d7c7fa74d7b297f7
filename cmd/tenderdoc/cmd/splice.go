package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rezonia/tenderdoc/internal/docx"
	"github.com/rezonia/tenderdoc/internal/normalize"
	"github.com/rezonia/tenderdoc/internal/splice"
	"github.com/rezonia/tenderdoc/internal/steps"
)

var (
	spliceOutput    string
	spliceInline    bool
	spliceNoFormat  bool
	spliceStepTable bool
)

var spliceCmd = &cobra.Command{
	Use:   "splice <template.docx> <placeholder> <content.docx|text>",
	Short: "Splice one content document into a template placeholder",
	Long: `Replace the first paragraph containing {{placeholder}} in the
template with the body blocks of a content document, normalized to the
template's house formatting. With --inline the third argument is literal
text substituted in place inside the paragraph instead.

Examples:
  tenderdoc splice TEMPLATE.docx pham_vi_cung_cap table.docx -o out.docx
  tenderdoc splice TEMPLATE.docx cac_buoc_thuc_hien 21_BUOC.docx --steps -o out.docx
  tenderdoc splice TEMPLATE.docx ten_goi_thau "Mua sắm thiết bị" --inline -o out.docx`,
	Args: cobra.ExactArgs(3),
	RunE: runSplice,
}

func init() {
	rootCmd.AddCommand(spliceCmd)

	spliceCmd.Flags().StringVarP(&spliceOutput, "output", "o", "", "Output file (required)")
	spliceCmd.Flags().BoolVar(&spliceInline, "inline", false, "Treat the third argument as literal replacement text")
	spliceCmd.Flags().BoolVar(&spliceNoFormat, "no-format", false, "Insert content blocks without formatting normalization")
	spliceCmd.Flags().BoolVar(&spliceStepTable, "steps", false, "Apply step-table formatting (sub-step italics)")
	spliceCmd.MarkFlagRequired("output")
}

func runSplice(cmd *cobra.Command, args []string) error {
	templatePath, placeholder, content := args[0], args[1], args[2]
	marker := "{{" + placeholder + "}}"

	target, err := docx.Open(templatePath)
	if err != nil {
		return err
	}

	if spliceInline {
		if !splice.ReplaceInline(target, marker, content) {
			return fmt.Errorf("placeholder %s not found in %s", marker, templatePath)
		}
		printVerbose("Replaced %s inline\n", marker)
		return target.Save(spliceOutput)
	}

	source, err := docx.Open(content)
	if err != nil {
		return err
	}

	var blocks []docx.Block
	if spliceNoFormat {
		for _, blk := range source.Blocks() {
			blocks = append(blocks, blk.Clone())
		}
	} else {
		override := normalize.Default()
		if spliceStepTable {
			override.ItalicPredicate = steps.IsSubStep
		}
		blocks = normalize.Blocks(source, override)
	}

	result, err := splice.Splice(target, marker, blocks)
	if err != nil {
		return err
	}
	if !result.Found {
		return fmt.Errorf("placeholder %s not found in %s", marker, templatePath)
	}

	if err := target.Save(spliceOutput); err != nil {
		return err
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}
