// SPDX-License-Identifier: EPL-2.0

package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ik5/opusdec"
	"github.com/ik5/opusdec/internal/config"
	"github.com/ik5/opusdec/internal/log"
)

type options struct {
	cfgFile  string
	verbose  bool
	settings *config.Config
}

// NewRootCmd builds the opusdec command.
func NewRootCmd() *cobra.Command {
	cmd, _ := newRootCmd()
	return cmd
}

func newRootCmd() (*cobra.Command, *options) {
	opts := &options{settings: config.Default()}

	cmd := &cobra.Command{
		Use:   "opusdec [flags] <input.opus> <output.wav>",
		Short: "Decode Ogg Opus to 16-bit stereo WAV",
		Long: `opusdec decodes an Ogg Opus file into a 16-bit stereo WAV file.

The audio is resampled to --rate and noise-shaped down to 16 bits. The output
length follows the granule positions of the stream, with the encoder delay
removed.

Settings are read from --config (YAML), OPUSDEC_* environment variables and a
.env file, then the flags.

Examples:
  opusdec in.opus out.wav
  opusdec --rate 48000 --quality high in.opus out.wav
`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, args[0], args[1])
		},
	}

	d := opts.settings
	flags := cmd.Flags()
	flags.StringVar(&opts.cfgFile, "config", "", "YAML config file")
	flags.IntVar(&d.Rate, "rate", d.Rate, "output sample rate in Hz")
	flags.StringVar(&d.Quality, "quality", d.Quality, "resampler quality: cubic or high")
	flags.Uint32Var(&d.Seed, "seed", d.Seed, "dither seed")
	flags.IntVar(&d.Chunk, "chunk", d.Chunk, "output frames per resampler call")
	flags.IntVar(&d.ReadSize, "read-size", d.ReadSize, "input bytes read per iteration")
	flags.IntVar(&d.ResyncBudget, "resync-budget", d.ResyncBudget, "garbage bytes skipped before giving up")
	flags.BoolVar(&d.Strict, "strict", d.Strict, "fail on the first undecodable packet")
	flags.StringVar(&d.LogLevel, "log-level", d.LogLevel, "log level: debug, info, warn, error")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "verbose output (same as --log-level debug)")

	return cmd, opts
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}

func run(cmd *cobra.Command, opts *options, inPath, outPath string) error {
	settings, err := resolve(cmd, opts)
	if err != nil {
		return err
	}

	if err := log.SetLevel(settings.LogLevel); err != nil {
		return err
	}

	pc := opusdec.DefaultConfig()
	if err := settings.Apply(&pc); err != nil {
		return err
	}
	pc.Logger = log.With().Str("input", inPath).Logger()

	stats, err := opusdec.ConvertFile(inPath, outPath, pc)
	if err != nil {
		return err
	}

	log.Info().
		Int("streams", stats.Streams).
		Int("pages", stats.Pages).
		Int("lost", stats.LostPackets).
		Int("decode_errors", stats.DecodeErrors).
		Int64("frames", stats.Frames).
		Msg("done")
	fmt.Fprintln(cmd.ErrOrStderr(), "Decoding complete.")

	return nil
}

// resolve layers the config file and the environment under the flags that
// were set explicitly.
func resolve(cmd *cobra.Command, opts *options) (*config.Config, error) {
	settings, err := config.Load(opts.cfgFile)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	f := opts.settings
	if flags.Changed("rate") {
		settings.Rate = f.Rate
	}
	if flags.Changed("quality") {
		settings.Quality = f.Quality
	}
	if flags.Changed("seed") {
		settings.Seed = f.Seed
	}
	if flags.Changed("chunk") {
		settings.Chunk = f.Chunk
	}
	if flags.Changed("read-size") {
		settings.ReadSize = f.ReadSize
	}
	if flags.Changed("resync-budget") {
		settings.ResyncBudget = f.ResyncBudget
	}
	if flags.Changed("strict") {
		settings.Strict = f.Strict
	}
	if flags.Changed("log-level") {
		settings.LogLevel = f.LogLevel
	}
	if opts.verbose {
		settings.LogLevel = "debug"
	}

	if err := settings.Validate(); err != nil {
		return nil, err
	}

	return settings, nil
}
