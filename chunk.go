package wavefile

import (
	"encoding/binary"
	"fmt"
	"io"
)

const (
	chunkHeaderSize = 8
	riffTypeSize    = 4
	fmtPayloadSize  = 16
)

// paddedSize rounds a chunk payload size up to word alignment. The pad
// byte, when present, is zero and is not counted in the chunk's size field.
func paddedSize(size uint32) uint32 {
	return size + size%2
}

// RawChunk stores an unrecognized chunk verbatim for round-trip writing.
type RawChunk struct {
	ID [4]byte
	// Size mirrors len(Data); the on-disk alignment pad is not counted.
	Size uint32
	Data []byte
}

func (c RawChunk) Clone() RawChunk {
	out := c
	out.Data = append([]byte(nil), c.Data...)

	return out
}

func cloneRawChunks(chunks []RawChunk) []RawChunk {
	if len(chunks) == 0 {
		return nil
	}

	out := make([]RawChunk, len(chunks))
	for i := range chunks {
		out[i] = chunks[i].Clone()
	}

	return out
}

// DataChunk owns the raw audio payload.
type DataChunk struct {
	// Size is the payload length in bytes, excluding the alignment pad.
	Size uint32

	// data is the padded backing buffer, len = Size + Size%2.
	data []byte
}

// Realloc resizes the backing buffer for a payload of size bytes plus word
// alignment, zero-filling the pad byte when size is odd. Previous content
// is discarded, not preserved.
func (c *DataChunk) Realloc(size uint32) {
	c.Size = size
	c.data = make([]byte, paddedSize(size))
}

// Bytes returns the padded backing buffer.
func (c *DataChunk) Bytes() []byte {
	return c.data
}

func (c *DataChunk) Clone() DataChunk {
	out := *c
	out.data = append([]byte(nil), c.data...)

	return out
}

func writeID(w io.Writer, id [4]byte) error {
	_, err := w.Write(id[:])
	if err != nil {
		return fmt.Errorf("failed to write chunk ID %s: %w", id[:], err)
	}

	return nil
}

// writeLE serializes the passed fixed-width value using little endian, the
// container format's only byte order.
func writeLE(w io.Writer, src any) error {
	err := binary.Write(w, binary.LittleEndian, src)
	if err != nil {
		return fmt.Errorf("failed to write little endian: %w", err)
	}

	return nil
}
