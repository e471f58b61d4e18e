package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"subsplice/internal/speech"

	"github.com/spf13/cobra"
)

// builds the configured speech service, resolving the API key from the
// flag or the provider's environment variable
func newSpeechService(ctx context.Context, cmd *cobra.Command) (speech.Service, error) {
	apiKey, _ := cmd.Flags().GetString("api-key")
	providerStr, _ := cmd.Flags().GetString("provider")
	voice, _ := cmd.Flags().GetString("voice")
	model, _ := cmd.Flags().GetString("model")
	splitChars, _ := cmd.Flags().GetInt("split-chars")

	if providerStr == "" {
		providerStr = cfg.Speech.Provider
	}
	provider := speech.Provider(strings.ToLower(providerStr))

	if apiKey == "" {
		switch provider {
		case speech.ProviderGemini:
			apiKey = os.Getenv("GEMINI_API_KEY")
		case speech.ProviderOpenAI:
			apiKey = os.Getenv("OPENAI_API_KEY")
		}
	}
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required: use --api-key or set the provider's environment variable")
	}

	if voice == "" {
		voice = cfg.Speech.Voice
	}
	if model == "" {
		model = cfg.Speech.Model
	}
	if splitChars <= 0 {
		splitChars = cfg.Speech.SplitCharCount
	}

	return speech.Factory(ctx, provider, apiKey, speech.Options{
		Voice:          voice,
		Model:          model,
		LanguageCode:   cfg.Speech.LanguageCode,
		SampleRate:     cfg.Speech.SampleRate,
		SplitCharCount: splitChars,
	})
}

// resolves the output path from --output, falling back to the input path
// with its extension swapped
func resolveOutputPath(cmd *cobra.Command, inputPath, newExt string) string {
	if out, _ := cmd.Flags().GetString("output"); out != "" {
		return out
	}
	return strings.TrimSuffix(inputPath, filepath.Ext(inputPath)) + newExt
}

// swaps the extension of a path
func withExt(path, newExt string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + newExt
}
