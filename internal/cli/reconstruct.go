package cli

import (
	"fmt"
	"os"

	"subsplice/internal/audio"
	"subsplice/internal/srt"

	"github.com/spf13/cobra"
)

var reconstructCmd = &cobra.Command{
	Use:   "reconstruct [audio_file] [srt_file]",
	Short: "Rebuild audio to match edited subtitle timings",
	Long: `Cut the time range of every subtitle line out of the audio and join the
pieces back to back. The rewritten SRT has contiguous cues starting at zero,
so the new audio and subtitles line up exactly.

With --original pointing at the pre-edit SRT, the command refuses to run
when no timestamp actually changed.

Examples:
  subsplice reconstruct take.wav edited.srt
  subsplice reconstruct take.wav edited.srt --original take.srt -o tight.wav`,
	Args: cobra.ExactArgs(2),
	RunE: runReconstruct,
}

func init() {
	rootCmd.AddCommand(reconstructCmd)

	reconstructCmd.Flags().String("original", "", "Pre-edit SRT file, used to verify timestamps changed")
}

func runReconstruct(cmd *cobra.Command, args []string) error {
	audioPath, srtPath := args[0], args[1]

	wavData, err := os.ReadFile(audioPath)
	if err != nil {
		return fmt.Errorf("failed to read audio: %w", err)
	}
	buf, err := audio.DecodeWAV(wavData)
	if err != nil {
		return fmt.Errorf("failed to decode audio: %w", err)
	}

	srtData, err := os.ReadFile(srtPath)
	if err != nil {
		return fmt.Errorf("failed to read subtitles: %w", err)
	}
	lines := srt.Parse(string(srtData))
	if len(lines) == 0 {
		return fmt.Errorf("no subtitle lines in %s", srtPath)
	}

	if originalPath, _ := cmd.Flags().GetString("original"); originalPath != "" {
		originalData, err := os.ReadFile(originalPath)
		if err != nil {
			return fmt.Errorf("failed to read original subtitles: %w", err)
		}
		if !timestampsDiffer(srt.Parse(string(originalData)), lines) {
			return fmt.Errorf("timestamps are unchanged from %s; nothing to reconstruct", originalPath)
		}
	}

	logger.Infow("Splicing audio",
		"input", audioPath,
		"lines", len(lines),
		"duration_ms", buf.DurationMs(),
	)

	result, err := audio.Splice(buf, lines)
	if err != nil {
		return err
	}

	outPath := resolveOutputPath(cmd, audioPath, ".spliced.wav")
	if err := os.WriteFile(outPath, audio.EncodeWAV(result.Buffer), 0o644); err != nil {
		return fmt.Errorf("failed to write audio: %w", err)
	}

	outSRT := withExt(outPath, ".srt")
	if err := os.WriteFile(outSRT, []byte(srt.Stringify(result.Lines)), 0o644); err != nil {
		return fmt.Errorf("failed to write subtitles: %w", err)
	}

	logger.Infow("Reconstruction complete",
		"audio", outPath,
		"subtitles", outSRT,
		"duration_ms", result.Buffer.DurationMs(),
	)
	return nil
}

// reports whether any line's time range differs between the two sequences.
// Text edits alone don't count.
func timestampsDiffer(original, edited []srt.Line) bool {
	if len(original) != len(edited) {
		return true
	}
	for i := range edited {
		if edited[i].StartTime != original[i].StartTime ||
			edited[i].EndTime != original[i].EndTime {
			return true
		}
	}
	return false
}
