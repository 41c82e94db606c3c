package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/example/wavefile"
	"github.com/example/wavefile/effects"
	"github.com/example/wavefile/internal/config"
	"github.com/spf13/cobra"
)

const shellUsage = `Usage: <mode> <input WAV(s)> <output WAV>
Where mode can be one of the following:
	 f : Faster.
	 s : Slower.
	 e : Echo.
	 r : Reverse.
	 + : Plus volume.
	 - : Minus volume.
	 m : Mix two .WAV files together. Takes an extra filename argument.
	 q : Quit.
`

func newShellCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Interactive loop for manipulating WAV files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := requireConfig()
			if err != nil {
				return err
			}

			return runShell(cmd.InOrStdin(), cmd.OutOrStdout(), cfg)
		},
	}
}

func runShell(in io.Reader, out io.Writer, cfg config.Config) error {
	fmt.Fprintln(out, "This here is an interactive program for manipulating MS Wave files.")
	fmt.Fprintln(out, shellUsage)

	scanner := bufio.NewScanner(in)

	for {
		fmt.Fprint(out, "> ")

		if !scanner.Scan() {
			return scanner.Err()
		}

		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		mode := fields[0]
		if mode == "q" {
			fmt.Fprintln(out, "Exiting.")
			return nil
		}

		err := runShellCommand(out, cfg, mode, fields[1:])
		if err != nil {
			fmt.Fprintf(out, "Error: %v\n", err)
		}

		fmt.Fprintln(out)
	}
}

func runShellCommand(out io.Writer, cfg config.Config, mode string, args []string) error {
	wantArgs := 2
	if mode == "m" {
		wantArgs = 3
	}

	transform, message, ok := shellTransform(cfg, mode)
	if !ok {
		fmt.Fprintf(out, "Unknown mode: %s\nUse 'q' to quit.\n", mode)
		return nil
	}

	if len(args) != wantArgs {
		return fmt.Errorf("mode %s takes %d file arguments, got %d", mode, wantArgs, len(args))
	}

	fmt.Fprintln(out, message)

	if mode == "m" {
		a, err := loadSamples(args[0])
		if err != nil {
			return err
		}

		b, err := loadSamples(args[1])
		if err != nil {
			return err
		}

		return wavefile.SaveSamples(args[2], effects.Mix(a, b))
	}

	return transformFile(args[0], args[1], transform)
}

// shellTransform maps a one-letter mode to its transform. Mix is handled
// separately since it takes two inputs.
func shellTransform(cfg config.Config, mode string) (func([]float64) []float64, string, bool) {
	switch mode {
	case "f":
		return effects.Faster, "Faster!", true
	case "s":
		return effects.Slower, "Slower!", true
	case "e":
		return func(s []float64) []float64 {
			return effects.Echo(s, cfg.Echo.DelaySamples, cfg.Echo.Intensity)
		}, "Echo!", true
	case "r":
		return effects.Reverse, "Reverse!", true
	case "+":
		return func(s []float64) []float64 {
			return effects.Gain(s, cfg.Gain.Up)
		}, "Increase volume!", true
	case "-":
		return func(s []float64) []float64 {
			return effects.Gain(s, cfg.Gain.Down)
		}, "Decrease volume!", true
	case "m":
		return nil, "Mix!", true
	default:
		return nil, "", false
	}
}
