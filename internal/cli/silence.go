package cli

import (
	"fmt"
	"os"

	"subsplice/internal/audio"

	"github.com/spf13/cobra"
)

var silenceCmd = &cobra.Command{
	Use:   "silence [audio_file]",
	Short: "Detect (and optionally remove) silent stretches in audio",
	Long: `Scan a WAV file for stretches where the signal stays below the amplitude
threshold for at least the minimum duration, and list them.

With --remove the silent stretches are cut out and the trimmed audio is
written next to the input.

Examples:
  subsplice silence take.wav
  subsplice silence take.wav --threshold 0.02 --min-duration 0.5
  subsplice silence take.wav --remove -o trimmed.wav`,
	Args: cobra.ExactArgs(1),
	RunE: runSilence,
}

func init() {
	rootCmd.AddCommand(silenceCmd)

	silenceCmd.Flags().Float64("threshold", 0, "Amplitude below which a sample counts as silent")
	silenceCmd.Flags().Float64("min-duration", 0, "Minimum silence length in seconds")
	silenceCmd.Flags().Bool("remove", false, "Cut the detected stretches out of the audio")
}

func runSilence(cmd *cobra.Command, args []string) error {
	audioPath := args[0]

	wavData, err := os.ReadFile(audioPath)
	if err != nil {
		return fmt.Errorf("failed to read audio: %w", err)
	}
	buf, err := audio.DecodeWAV(wavData)
	if err != nil {
		return fmt.Errorf("failed to decode audio: %w", err)
	}

	threshold, _ := cmd.Flags().GetFloat64("threshold")
	minDuration, _ := cmd.Flags().GetFloat64("min-duration")
	if threshold == 0 {
		threshold = cfg.Silence.Threshold
	}
	if minDuration == 0 {
		minDuration = cfg.Silence.MinDuration
	}

	segments := audio.DetectSilence(buf, threshold, minDuration)
	if len(segments) == 0 {
		fmt.Println("No silence found.")
		return nil
	}

	for i, seg := range segments {
		fmt.Printf("%2d  %8.3fs - %8.3fs  (%.3fs)\n", i+1, seg.Start, seg.End, seg.End-seg.Start)
	}

	if remove, _ := cmd.Flags().GetBool("remove"); !remove {
		return nil
	}

	trimmed, err := audio.RemoveSegments(buf, segments)
	if err != nil {
		return err
	}

	outPath := resolveOutputPath(cmd, audioPath, ".trimmed.wav")
	if err := os.WriteFile(outPath, audio.EncodeWAV(trimmed), 0o644); err != nil {
		return fmt.Errorf("failed to write audio: %w", err)
	}

	logger.Infow("Silence removed",
		"path", outPath,
		"segments", len(segments),
		"duration_ms", trimmed.DurationMs(),
	)
	return nil
}
