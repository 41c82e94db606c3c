// This tool converts a wav file into an aiff file carrying the same
// audio and stores it in the same folder as the source. Multi-channel
// input is folded down to a single averaged channel.
package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"os/user"
	"path/filepath"
	"strings"

	"github.com/example/wavefile"
	"github.com/go-audio/aiff"
	"github.com/go-audio/audio"
)

var flagPath = flag.String("path", "", "The path to the wav file to convert to aiff")

func main() {
	flag.Parse()

	if *flagPath == "" {
		fmt.Println("You must set the -path flag")
		os.Exit(1)
	}

	sourcePath := *flagPath
	if strings.HasPrefix(sourcePath, "~/") {
		usr, err := user.Current()
		if err != nil {
			log.Println("Failed to get the user home directory")
			os.Exit(1)
		}
		sourcePath = strings.Replace(sourcePath, "~", usr.HomeDir, 1)
	}

	outPath, err := convert(sourcePath)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	fmt.Printf("Wav file converted to %s\n", outPath)
}

func convert(sourcePath string) (string, error) {
	f := wavefile.New()
	if err := f.Load(sourcePath); err != nil {
		return "", fmt.Errorf("reading %s: %w", sourcePath, err)
	}

	outPath := sourcePath[:len(sourcePath)-len(filepath.Ext(sourcePath))] + ".aif"

	outFile, err := os.Create(outPath)
	if err != nil {
		return "", fmt.Errorf("creating %s: %w", outPath, err)
	}
	defer outFile.Close()

	bitDepth := int(f.Fmt.BitsPerSample)
	encoder := aiff.NewEncoder(outFile, int(f.Fmt.SampleRate), bitDepth, 1)

	buf := f.PCMBuffer()
	if err := encoder.Write(floatToIntBuffer(buf, bitDepth)); err != nil {
		return "", fmt.Errorf("writing %s: %w", outPath, err)
	}

	if err := encoder.Close(); err != nil {
		return "", fmt.Errorf("finalizing %s: %w", outPath, err)
	}

	return outPath, nil
}

func floatToIntBuffer(buf *audio.FloatBuffer, bitDepth int) *audio.IntBuffer {
	intBuf := &audio.IntBuffer{
		Format:         buf.Format,
		SourceBitDepth: bitDepth,
		Data:           make([]int, len(buf.Data)),
	}
	for i, v := range buf.Data {
		intBuf.Data[i] = floatToPCMInt(v, bitDepth)
	}

	return intBuf
}

func floatToPCMInt(value float64, bitDepth int) int {
	value = clampFloat(value, -1, 1)

	switch bitDepth {
	case 8:
		return int(floatToPCMUint8(value))
	case 16:
		return int(floatToPCMInt32(value, 16))
	case 24:
		return int(floatToPCMInt32(value, 24))
	case 32:
		return int(floatToPCMInt32(value, 32))
	default:
		return 0
	}
}

func floatToPCMUint8(value float64) uint8 {
	scaled := int(math.Round((value + 1.0) * 127.5))
	if scaled < 0 {
		return 0
	}

	if scaled > 255 {
		return 255
	}

	return uint8(scaled)
}

func floatToPCMInt32(value float64, bitDepth int) int32 {
	switch bitDepth {
	case 16:
		return clampScaledPCM(value, 32768.0, 32767)
	case 24:
		return clampScaledPCM(value, 8388608.0, 8388607)
	case 32:
		return clampScaledPCM(value, 2147483648.0, 2147483647)
	default:
		return 0
	}
}

func clampScaledPCM(value float64, scale float64, max int64) int32 {
	sample := min(int64(math.Round(value*scale)), max)

	min := int64(-scale)
	if sample < min {
		sample = min
	}

	return int32(sample)
}

func clampFloat(value, min, max float64) float64 {
	if value < min {
		return min
	}

	if value > max {
		return max
	}

	return value
}
