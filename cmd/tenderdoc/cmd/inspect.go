package cmd

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"github.com/rezonia/tenderdoc/internal/inspect"
)

var inspectPlaceholdersOnly bool

var inspectCmd = &cobra.Command{
	Use:   "inspect <document.docx>",
	Short: "Report a document's placeholders and structure",
	Long: `Read a document and report the {{placeholder}} markers it still
carries, its paragraph and table counts, and a short text preview. Useful
for checking a template before generation and an output after.

Examples:
  tenderdoc inspect TEMPLATE.docx
  tenderdoc inspect out/final.docx --placeholders`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)

	inspectCmd.Flags().BoolVar(&inspectPlaceholdersOnly, "placeholders", false, "Print only the placeholder names, one per line")
}

func runInspect(cmd *cobra.Command, args []string) error {
	report, err := inspect.File(args[0])
	if err != nil {
		return err
	}

	if inspectPlaceholdersOnly {
		for _, name := range report.Placeholders {
			if _, err := os.Stdout.WriteString(name + "\n"); err != nil {
				return err
			}
		}
		return nil
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(report)
}
