package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"os"

	"github.com/example/wavefile"
)

func main() {
	err := run(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}
}

func run(args []string) error {
	flagSet := flag.NewFlagSet("gen-sine", flag.ContinueOnError)

	output := flagSet.String("output", "output.wav", "filename to write to")
	frequency := flagSet.Float64("frequency", 440, "frequency in hertz to generate")
	length := flagSet.Float64("length", 5, "length in seconds of output file")
	rate := flagSet.Int("rate", 48000, "sample rate in hertz")

	err := flagSet.Parse(args)
	if err != nil {
		return err
	}

	log.Printf("generating a %f sec sine wav at %f hz", *length, *frequency)

	f := wavefile.New()
	f.Fmt.SampleRate = uint32(*rate)

	numSamples := int(float64(*rate) * *length)
	f.Resize(numSamples)

	for i := 0; i < numSamples; i++ {
		f.SetSample(i, math.Sin(float64(i)/float64(*rate)*(*frequency)*2*math.Pi))
	}

	err = f.Save(*output)
	if err != nil {
		return fmt.Errorf("error writing %s: %w", *output, err)
	}

	return nil
}
