package cli

import (
	"fmt"
	"os"
	"strings"

	"subsplice/internal/script"

	"github.com/spf13/cobra"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [script_file]",
	Short: "Print statistics for a narration script",
	Long: `Analyze a script: character, word, sentence, and paragraph counts,
character composition, estimated read time, and the most frequent words
and phrases.

With --chunks the script is also split into synthesis-sized chunks and
the chunk boundaries are printed.

Examples:
  subsplice analyze script.txt
  subsplice analyze script.txt --chunks`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().Bool("chunks", false, "Also print synthesis chunk boundaries")
	analyzeCmd.Flags().Int("chunk-size", 0, "Max characters per chunk (defaults to split_char_count)")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read script: %w", err)
	}
	text := string(data)

	a := script.Analyze(text)

	fmt.Printf("Characters:        %d (%d without spaces)\n", a.CharCount, a.CharCountNoSpaces)
	fmt.Printf("Words:             %d (%d unique)\n", a.WordCount, a.UniqueWordCount)
	fmt.Printf("Sentences:         %d\n", a.SentenceCount)
	fmt.Printf("Lines:             %d\n", a.LineCount)
	fmt.Printf("Paragraphs:        %d\n", a.ParagraphCount)
	fmt.Printf("Read time:         %ds\n", a.ReadTimeSeconds)
	fmt.Printf("Est. speech time:  %.1fs\n", script.EstimateSpeechSeconds(text))

	c := a.Composition
	fmt.Printf("Composition:       hangul %d, english %d, digits %d, spaces %d, symbols %d\n",
		c.Hangul, c.English, c.Digits, c.Spaces, c.Symbols)

	printFrequencies := func(label string, counts []script.WordCount) {
		if len(counts) == 0 {
			return
		}
		parts := make([]string, len(counts))
		for i, wc := range counts {
			parts[i] = fmt.Sprintf("%s (%d)", wc.Word, wc.Count)
		}
		fmt.Printf("%-18s %s\n", label+":", strings.Join(parts, ", "))
	}
	printFrequencies("Top words", a.TopWords)
	printFrequencies("Top bigrams", a.TopBigrams)
	printFrequencies("Top trigrams", a.TopTrigrams)

	if showChunks, _ := cmd.Flags().GetBool("chunks"); showChunks {
		size, _ := cmd.Flags().GetInt("chunk-size")
		if size <= 0 {
			size = cfg.Speech.SplitCharCount
		}
		chunks := script.SplitIntoChunks(text, size)
		fmt.Printf("\nChunks (max %d chars):\n", size)
		for i, chunk := range chunks {
			fmt.Printf("%3d  %s\n", i+1, chunk)
		}
	}
	return nil
}
