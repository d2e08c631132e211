package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/oshokin/landing-motion/internal/config"
	"github.com/oshokin/landing-motion/internal/service/preview"
	"github.com/oshokin/landing-motion/internal/version"
)

var (
	// options collects the flag values passed to the preview.
	options preview.Options

	// rootCmd represents the base command for running the terminal preview.
	rootCmd = &cobra.Command{
		Use:   "landing-preview",
		Short: "Preview the landing page in the terminal.",
		Long: `Shows the landing page in the terminal with its scroll reveals, counting
statistics, project gallery and testimonial slider.

Content comes from a YAML file or the embedded default page. The reader's scroll
position and carousel positions are saved on exit and restored on the next run.
Logs are written to --log-file because the screen is in use.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			// Setup graceful shutdown handling.
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
			defer stop()

			return preview.Run(ctx, &options)
		},
	}
)

// Execute runs the landing-preview CLI and exits with non-zero status on error.
func Execute() {
	version.AttachCobraVersionCommand(rootCmd)
	rootCmd.AddCommand(newFramesCommand())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	flags := rootCmd.Flags()

	flags.StringVarP(&options.ConfigPath, "config", "c", "",
		"path to configuration file (default "+config.DefaultConfigFilename+" when present)")
	flags.StringVar(&options.ContentFile, "content", "", "path to landing content YAML (default: embedded page)")
	flags.StringVarP(&options.SnapshotFile, "snapshot", "s", "",
		"path to persist the reader's position (default "+config.DefaultSnapshotFilename+")")
	flags.StringVar(&options.LogFile, "log-file", "", "file receiving log output (default: discard)")
	flags.StringVar(&options.LogLevel, "log-level", "", "minimum log level: debug, info, warn, error")
	flags.BoolVar(&options.Sound, "sound", false, "play a chime with every notification")
	flags.BoolVarP(&options.Watch, "watch", "w", false, "reload the content file when it changes")
}
