package cli

import (
	"subsplice/internal/config"
	"subsplice/internal/logging"

	"github.com/spf13/cobra"
)

var (
	verbose bool
	cfgPath string
	logger  *logging.Logger
	cfg     *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "subsplice",
	Short: "AI narration studio: synthesize, align, edit, and splice",
	Long: `Subsplice turns narration scripts into speech, aligns subtitles to the
audio, and rebuilds the audio after timeline edits.

A typical session synthesizes a script into a WAV take, transcribes it into
an SRT file, and later splices the audio to match edited subtitle timings.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logger = logging.NewLogger(verbose)

		var err error
		cfg, err = config.Load(cfgPath)
		return err
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().
		BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringP("output", "o", "", "Output file path")
	rootCmd.PersistentFlags().
		StringVarP(&cfgPath, "config", "c", "", "Path to config file (TOML)")
}
