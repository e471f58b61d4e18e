package cli

import (
	"fmt"
	"os"
	"strings"

	"subsplice/internal/script"

	"github.com/spf13/cobra"
)

var formatCmd = &cobra.Command{
	Use:   "format [script_file]",
	Short: "Reflow a script so chosen punctuation marks end each line",
	Long: `Join the script into one stream and break it into lines at the selected
punctuation marks. Existing line breaks are treated as spaces, so the
script is fully reflowed.

Examples:
  subsplice format script.txt --period --question
  subsplice format script.txt --comma -o reflowed.txt`,
	Args: cobra.ExactArgs(1),
	RunE: runFormat,
}

func init() {
	rootCmd.AddCommand(formatCmd)

	formatCmd.Flags().Bool("period", false, "Break after periods")
	formatCmd.Flags().Bool("question", false, "Break after question marks")
	formatCmd.Flags().Bool("exclamation", false, "Break after exclamation marks")
	formatCmd.Flags().Bool("comma", false, "Break after commas")
}

func runFormat(cmd *cobra.Command, args []string) error {
	scriptPath := args[0]

	data, err := os.ReadFile(scriptPath)
	if err != nil {
		return fmt.Errorf("failed to read script: %w", err)
	}

	opts := script.AutoFormatOptions{}
	opts.Period, _ = cmd.Flags().GetBool("period")
	opts.Question, _ = cmd.Flags().GetBool("question")
	opts.Exclamation, _ = cmd.Flags().GetBool("exclamation")
	opts.Comma, _ = cmd.Flags().GetBool("comma")

	if !opts.Period && !opts.Question && !opts.Exclamation && !opts.Comma {
		return fmt.Errorf("select at least one punctuation mark (--period, --question, --exclamation, --comma)")
	}

	lines := strings.Split(strings.ReplaceAll(string(data), "\r\n", "\n"), "\n")
	reflowed := script.AutoFormat(lines, opts)

	outPath := scriptPath
	if out, _ := cmd.Flags().GetString("output"); out != "" {
		outPath = out
	}
	content := strings.Join(reflowed, "\n") + "\n"
	if err := os.WriteFile(outPath, []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to write script: %w", err)
	}

	logger.Infow("Script reflowed", "path", outPath, "lines", len(reflowed))
	return nil
}
