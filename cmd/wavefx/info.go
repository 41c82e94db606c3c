package main

import (
	"fmt"

	"github.com/example/wavefile"
	"github.com/spf13/cobra"
)

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info <input>",
		Short: "Print a WAV file's header summary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f := wavefile.New()

			err := f.LoadMetadata(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()

			fmt.Fprint(out, f.String())
			fmt.Fprintf(out, "\tSamples: %d\n", f.SampleCount())

			for _, c := range f.Extra {
				fmt.Fprintf(out, "\tExtra chunk %q: %d bytes\n", c.ID[:], c.Size)
			}

			for _, w := range f.Warnings {
				fmt.Fprintf(out, "\tWarning: %s\n", w)
			}

			return nil
		},
	}
}
