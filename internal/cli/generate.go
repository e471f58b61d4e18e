package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"subsplice/internal/audio"
	"subsplice/internal/srt"

	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate [script_file]",
	Short: "Synthesize a narration script into audio with aligned subtitles",
	Long: `Synthesize the script into speech and write a WAV file alongside an SRT
file whose cues are force-aligned to the generated audio.

The script itself is sent to the transcription model as the ground truth,
so the subtitle text matches the script verbatim and only the timings are
inferred from the waveform.

Examples:
  subsplice generate script.txt
  subsplice generate script.txt --voice Kore -o narration.wav
  subsplice generate script.txt --provider gemini --split-chars 30`,
	Args: cobra.ExactArgs(1),
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().
		StringP("api-key", "k", "", "Provider API key (or set GEMINI_API_KEY / OPENAI_API_KEY)")
	generateCmd.Flags().String("provider", "", "Speech provider (gemini, openai)")
	generateCmd.Flags().String("voice", "", "Prebuilt voice name")
	generateCmd.Flags().String("model", "", "Model override for synthesis")
	generateCmd.Flags().Int("split-chars", 0, "Max characters per subtitle line")
	generateCmd.Flags().Bool("no-subtitles", false, "Skip transcription, write audio only")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	scriptPath := args[0]

	scriptBytes, err := os.ReadFile(scriptPath)
	if err != nil {
		return fmt.Errorf("failed to read script: %w", err)
	}
	script := string(scriptBytes)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	svc, err := newSpeechService(ctx, cmd)
	if err != nil {
		return err
	}

	wavPath := resolveOutputPath(cmd, scriptPath, ".wav")

	logger.Infow("Synthesizing narration",
		"script", scriptPath,
		"output", wavPath,
	)

	buf, err := svc.Synthesize(ctx, script)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			logger.Infow("Generation cancelled")
			return nil
		}
		return err
	}

	if err := os.WriteFile(wavPath, audio.EncodeWAV(buf), 0o644); err != nil {
		return fmt.Errorf("failed to write audio: %w", err)
	}
	logger.Infow("Audio written",
		"path", wavPath,
		"duration_ms", buf.DurationMs(),
	)

	if skip, _ := cmd.Flags().GetBool("no-subtitles"); skip {
		return nil
	}

	logger.Infow("Aligning subtitles to audio")
	lines, err := svc.Transcribe(ctx, buf, script)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			logger.Infow("Generation cancelled")
			return nil
		}
		return err
	}

	srtPath := withExt(wavPath, ".srt")
	content := srt.Stringify(srt.AdjustGaps(lines))
	if err := os.WriteFile(srtPath, []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to write subtitles: %w", err)
	}

	logger.Infow("Subtitles written",
		"path", srtPath,
		"lines", len(lines),
	)
	return nil
}
