package cli

import (
	"fmt"
	"os"

	"subsplice/internal/srt"
	"subsplice/internal/timeline"

	"github.com/spf13/cobra"
)

var shiftCmd = &cobra.Command{
	Use:   "shift [srt_file]",
	Short: "Shift every subtitle cue by a fixed offset",
	Long: `Move all cues earlier or later by the given number of milliseconds.
Shifting earlier clamps at zero; cue durations never change sign.

Examples:
  subsplice shift take.srt --ms 250
  subsplice shift take.srt --ms -1000 -o earlier.srt`,
	Args: cobra.ExactArgs(1),
	RunE: runShift,
}

func init() {
	rootCmd.AddCommand(shiftCmd)

	shiftCmd.Flags().Int("ms", 0, "Offset in milliseconds (negative shifts earlier)")
	_ = shiftCmd.MarkFlagRequired("ms")
}

func runShift(cmd *cobra.Command, args []string) error {
	srtPath := args[0]
	offsetMs, _ := cmd.Flags().GetInt("ms")

	data, err := os.ReadFile(srtPath)
	if err != nil {
		return fmt.Errorf("failed to read subtitles: %w", err)
	}
	lines := srt.Parse(string(data))
	if len(lines) == 0 {
		return fmt.Errorf("no subtitle lines in %s", srtPath)
	}

	ed := timeline.NewEditor(lines)
	ed.BulkShift(offsetMs)

	outPath := srtPath
	if out, _ := cmd.Flags().GetString("output"); out != "" {
		outPath = out
	}
	if err := os.WriteFile(outPath, []byte(srt.Stringify(ed.Lines())), 0o644); err != nil {
		return fmt.Errorf("failed to write subtitles: %w", err)
	}

	logger.Infow("Cues shifted", "path", outPath, "offset_ms", offsetMs)
	return nil
}
