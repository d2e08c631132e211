package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/oshokin/landing-motion/internal/counter"
)

// newFramesCommand builds the `frames` subcommand that prints the frames of one
// statistic counter without animating it.
func newFramesCommand() *cobra.Command {
	var (
		steps    int
		diameter float64
		stroke   float64
	)

	command := &cobra.Command{
		Use:   "frames <display>",
		Short: "Print every frame of a statistic counter.",
		Long: `Parses a statistic such as "1,200+" or "98%" and prints the displayed text,
the progress and the ring dash offset of every counter frame.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			spec, err := counter.Parse(args[0])
			if err != nil {
				return err
			}

			ring := counter.Ring{Diameter: diameter, StrokeWidth: stroke}
			out := cmd.OutOrStdout()

			_, _ = fmt.Fprintf(out, "%-5s %-14s %8s %10s\n", "step", "display", "progress", "offset")

			for frame := range spec.Frames(steps) {
				_, _ = fmt.Fprintf(out, "%-5d %-14s %7.1f%% %10.2f\n",
					frame.Step, frame.Display, frame.Progress, ring.DashOffset(frame.Progress))
			}

			return nil
		},
	}

	command.Flags().IntVar(&steps, "steps", counter.DefaultSteps, "number of counter steps")
	command.Flags().Float64Var(&diameter, "diameter", counter.DefaultRing.Diameter, "ring diameter")
	command.Flags().Float64Var(&stroke, "stroke", counter.DefaultRing.StrokeWidth, "ring stroke width")

	return command
}
