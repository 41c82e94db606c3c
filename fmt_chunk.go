package wavefile

import (
	"fmt"
	"io"

	"github.com/go-audio/riff"
)

// CompressionNone is the format code for uncompressed linear PCM, the only
// encoding the sample codec understands.
const CompressionNone = 1

// Format defaults used by New and taken by a container whose decode failed.
const (
	DefaultNumChannels   = 1
	DefaultSampleRate    = 22050
	DefaultBitsPerSample = 16
)

// FmtChunk describes how the data chunk's samples are encoded.
type FmtChunk struct {
	Compression   uint16
	NumChannels   uint16
	SampleRate    uint32
	BytesPerSec   uint32
	BlockAlign    uint16
	BitsPerSample uint16
}

func defaultFmtChunk() FmtChunk {
	c := FmtChunk{
		Compression:   CompressionNone,
		NumChannels:   DefaultNumChannels,
		SampleRate:    DefaultSampleRate,
		BitsPerSample: DefaultBitsPerSample,
	}
	c.UpdateDerived()

	return c
}

// UpdateDerived recomputes the fields implied by sample rate, channel count
// and bit depth. Encode calls this before writing so a stale value read
// from a previous file is never trusted.
func (c *FmtChunk) UpdateDerived() {
	bytesPerChannel := c.BitsPerSample / 8
	c.BlockAlign = c.NumChannels * bytesPerChannel
	c.BytesPerSec = c.SampleRate * uint32(c.NumChannels) * uint32(bytesPerChannel)
}

// decode reads the six typed fields in wire order. Payload bytes beyond the
// fixed 16 (extended fmt chunks) are drained so the stream stays aligned.
func (c *FmtChunk) decode(chunk *riff.Chunk) error {
	err := chunk.ReadLE(&c.Compression)
	if err != nil {
		return fmt.Errorf("failed to read compression code: %w", err)
	}

	err = chunk.ReadLE(&c.NumChannels)
	if err != nil {
		return fmt.Errorf("failed to read channels: %w", err)
	}

	err = chunk.ReadLE(&c.SampleRate)
	if err != nil {
		return fmt.Errorf("failed to read sample rate: %w", err)
	}

	err = chunk.ReadLE(&c.BytesPerSec)
	if err != nil {
		return fmt.Errorf("failed to read avg bytes/sec: %w", err)
	}

	err = chunk.ReadLE(&c.BlockAlign)
	if err != nil {
		return fmt.Errorf("failed to read block align: %w", err)
	}

	err = chunk.ReadLE(&c.BitsPerSample)
	if err != nil {
		return fmt.Errorf("failed to read bit depth: %w", err)
	}

	chunk.Drain()

	return nil
}

// encode writes the chunk with the fixed 16-byte payload layout.
func (c *FmtChunk) encode(w io.Writer) error {
	err := writeID(w, riff.FmtID)
	if err != nil {
		return err
	}

	err = writeLE(w, uint32(fmtPayloadSize))
	if err != nil {
		return fmt.Errorf("error encoding the fmt chunk size - %w", err)
	}

	err = writeLE(w, c.Compression)
	if err != nil {
		return fmt.Errorf("error encoding the compression code - %w", err)
	}

	err = writeLE(w, c.NumChannels)
	if err != nil {
		return fmt.Errorf("error encoding the number of channels - %w", err)
	}

	err = writeLE(w, c.SampleRate)
	if err != nil {
		return fmt.Errorf("error encoding the sample rate - %w", err)
	}

	err = writeLE(w, c.BytesPerSec)
	if err != nil {
		return fmt.Errorf("error encoding the avg bytes per sec - %w", err)
	}

	err = writeLE(w, c.BlockAlign)
	if err != nil {
		return fmt.Errorf("error encoding the block align - %w", err)
	}

	err = writeLE(w, c.BitsPerSample)
	if err != nil {
		return fmt.Errorf("error encoding bits per sample - %w", err)
	}

	return nil
}
