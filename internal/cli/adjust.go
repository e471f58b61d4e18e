package cli

import (
	"fmt"
	"os"

	"subsplice/internal/srt"

	"github.com/spf13/cobra"
)

var adjustCmd = &cobra.Command{
	Use:   "adjust [srt_file]",
	Short: "Close the gaps between consecutive subtitle cues",
	Long: `Retime each cue so it ends one millisecond before the next begins,
pulling overlapping ends back where needed. A cue is never inverted: its
end always stays after its own start.

Examples:
  subsplice adjust take.srt
  subsplice adjust take.srt -o take.tight.srt`,
	Args: cobra.ExactArgs(1),
	RunE: runAdjust,
}

func init() {
	rootCmd.AddCommand(adjustCmd)
}

func runAdjust(cmd *cobra.Command, args []string) error {
	srtPath := args[0]

	data, err := os.ReadFile(srtPath)
	if err != nil {
		return fmt.Errorf("failed to read subtitles: %w", err)
	}
	lines := srt.Parse(string(data))
	if len(lines) == 0 {
		return fmt.Errorf("no subtitle lines in %s", srtPath)
	}

	adjusted := srt.AdjustGaps(lines)

	outPath := srtPath
	if out, _ := cmd.Flags().GetString("output"); out != "" {
		outPath = out
	}
	if err := os.WriteFile(outPath, []byte(srt.Stringify(adjusted)), 0o644); err != nil {
		return fmt.Errorf("failed to write subtitles: %w", err)
	}

	logger.Infow("Gaps adjusted", "path", outPath, "lines", len(adjusted))
	return nil
}
