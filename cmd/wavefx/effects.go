package main

import (
	"log/slog"

	"github.com/example/wavefile"
	"github.com/example/wavefile/effects"
	"github.com/spf13/cobra"
)

// loadSamples decodes a file to normalized samples, surfacing decoder
// warnings through the logger.
func loadSamples(path string) ([]float64, error) {
	f := wavefile.New()

	err := f.Load(path)
	if err != nil {
		return nil, err
	}

	for _, w := range f.Warnings {
		slog.Warn("decoder warning", "path", path, "detail", w.String())
	}

	return f.PCMBuffer().Data, nil
}

// transformFile loads input, applies fn and writes the result to output.
func transformFile(input, output string, fn func([]float64) []float64) error {
	samples, err := loadSamples(input)
	if err != nil {
		return err
	}

	result := fn(samples)

	err = wavefile.SaveSamples(output, result)
	if err != nil {
		return err
	}

	slog.Info("wrote output", "path", output, "samples", len(result))

	return nil
}

func newFasterCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "faster <input> <output>",
		Short: "Double the speed by dropping every other sample",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			return transformFile(args[0], args[1], effects.Faster)
		},
	}
}

func newSlowerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "slower <input> <output>",
		Short: "Halve the speed by duplicating every sample",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			return transformFile(args[0], args[1], effects.Slower)
		},
	}
}

func newEchoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "echo <input> <output>",
		Short: "Add an echo with the configured delay and intensity",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			cfg, err := requireConfig()
			if err != nil {
				return err
			}

			return transformFile(args[0], args[1], func(s []float64) []float64 {
				return effects.Echo(s, cfg.Echo.DelaySamples, cfg.Echo.Intensity)
			})
		},
	}
}

func newReverseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reverse <input> <output>",
		Short: "Reverse the samples",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			return transformFile(args[0], args[1], effects.Reverse)
		},
	}
}

func newGainCmd() *cobra.Command {
	var factor float64

	cmd := &cobra.Command{
		Use:   "gain <input> <output>",
		Short: "Scale the volume by a factor",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := requireConfig()
			if err != nil {
				return err
			}

			if !cmd.Flags().Changed("factor") {
				factor = cfg.Gain.Up
			}

			return transformFile(args[0], args[1], func(s []float64) []float64 {
				return effects.Gain(s, factor)
			})
		},
	}

	cmd.Flags().Float64Var(&factor, "factor", 0, "Gain factor (defaults to the configured volume-up factor)")

	return cmd
}

func newMixCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mix <input1> <input2> <output>",
		Short: "Mix two WAV files, looping the shorter one",
		Args:  cobra.ExactArgs(3),
		RunE: func(_ *cobra.Command, args []string) error {
			a, err := loadSamples(args[0])
			if err != nil {
				return err
			}

			b, err := loadSamples(args[1])
			if err != nil {
				return err
			}

			result := effects.Mix(a, b)

			err = wavefile.SaveSamples(args[2], result)
			if err != nil {
				return err
			}

			slog.Info("wrote output", "path", args[2], "samples", len(result))

			return nil
		},
	}
}
