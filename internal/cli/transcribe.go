package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	"subsplice/internal/audio"
	"subsplice/internal/srt"

	"github.com/spf13/cobra"
)

var transcribeCmd = &cobra.Command{
	Use:   "transcribe [media_file]",
	Short: "Generate an SRT file for an existing audio or video file",
	Long: `Transcribe the audio track of a media file into SRT subtitles.

Video files have their audio extracted first. With --script the given text
is treated as the exact transcript and only the timings are inferred.

Examples:
  subsplice transcribe narration.wav
  subsplice transcribe clip.mp4 --script script.txt
  subsplice transcribe take.wav --split-chars 30 -o take.srt`,
	Args: cobra.ExactArgs(1),
	RunE: runTranscribe,
}

func init() {
	rootCmd.AddCommand(transcribeCmd)

	transcribeCmd.Flags().
		StringP("api-key", "k", "", "Provider API key (or set GEMINI_API_KEY / OPENAI_API_KEY)")
	transcribeCmd.Flags().String("provider", "", "Speech provider (gemini, openai)")
	transcribeCmd.Flags().String("voice", "", "Ignored for transcription; accepted for symmetry")
	transcribeCmd.Flags().String("model", "", "Model override for transcription")
	transcribeCmd.Flags().Int("split-chars", 0, "Max characters per subtitle line")
	transcribeCmd.Flags().String("script", "", "Reference script file for forced alignment")
}

func runTranscribe(cmd *cobra.Command, args []string) error {
	mediaPath := args[0]

	if _, err := os.Stat(mediaPath); os.IsNotExist(err) {
		return fmt.Errorf("file not found: %s", mediaPath)
	}
	if !audio.IsMediaFile(mediaPath) {
		return fmt.Errorf("unsupported file type: %s (expected audio or video file)", filepath.Ext(mediaPath))
	}

	referenceScript := ""
	if scriptPath, _ := cmd.Flags().GetString("script"); scriptPath != "" {
		data, err := os.ReadFile(scriptPath)
		if err != nil {
			return fmt.Errorf("failed to read script: %w", err)
		}
		referenceScript = string(data)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	svc, err := newSpeechService(ctx, cmd)
	if err != nil {
		return err
	}

	if dur, err := audio.ProbeDuration(ctx, mediaPath); err == nil {
		logger.Infow("Importing media", "input", mediaPath, "duration_ms", dur.Milliseconds())
	} else {
		logger.Infow("Importing media", "input", mediaPath)
	}
	buf, err := audio.ImportMedia(ctx, mediaPath, cfg.Speech.SampleRate)
	if err != nil {
		return fmt.Errorf("failed to import media: %w", err)
	}

	logger.Infow("Transcribing",
		"duration_ms", buf.DurationMs(),
		"forced_alignment", referenceScript != "",
	)
	lines, err := svc.Transcribe(ctx, buf, referenceScript)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			logger.Infow("Transcription cancelled")
			return nil
		}
		return err
	}

	outPath := resolveOutputPath(cmd, mediaPath, ".srt")
	content := srt.Stringify(srt.AdjustGaps(lines))
	if err := os.WriteFile(outPath, []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to write subtitles: %w", err)
	}

	logger.Infow("Subtitles written", "path", outPath, "lines", len(lines))
	return nil
}
