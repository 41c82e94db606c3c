package wavefile

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-audio/riff"
)

var (
	// ErrNotRIFF is returned when the stream does not start with a RIFF tag.
	ErrNotRIFF = errors.New("not a RIFF container")
	// ErrNotWAVE is returned when the RIFF type is not WAVE.
	ErrNotWAVE = errors.New("RIFF container does not hold WAVE content")
)

// Warning is a non-fatal diagnostic collected during decode, such as an
// unsupported compression code. Warnings never abort a decode.
type Warning struct {
	ChunkID [4]byte
	Message string
}

func (w Warning) String() string {
	return fmt.Sprintf("%s: %s", w.ChunkID[:], w.Message)
}

// File is an in-memory WAV container: one fmt chunk, one data chunk, and an
// ordered list of unrecognized chunks preserved verbatim. A File is not
// safe for concurrent mutation.
type File struct {
	Fmt  FmtChunk
	Data DataChunk

	// Extra holds unrecognized chunks in their original order for lossless
	// round trips.
	Extra []RawChunk

	// Warnings collects non-fatal diagnostics from the last decode.
	Warnings []Warning

	// RiffSize is the RIFF chunk size read by the last decode or computed
	// by the last encode.
	RiffSize uint32
}

// New returns a container with the format defaults: mono, 22050 Hz, 16-bit
// linear PCM, empty data chunk.
func New() *File {
	return &File{Fmt: defaultFmtChunk()}
}

// Decode reads a complete WAV stream, audio payload included. On failure
// the container is reset to its default state.
func (f *File) Decode(r io.Reader) error {
	return f.decodeReset(r, true)
}

// DecodeMetadata reads the stream like Decode but skips over the audio
// payload without storing it. SampleCount still reflects the skipped data
// chunk afterwards.
func (f *File) DecodeMetadata(r io.Reader) error {
	return f.decodeReset(r, false)
}

func (f *File) decodeReset(r io.Reader, loadData bool) error {
	tmp := New()

	err := tmp.decode(r, loadData)
	if err != nil {
		*f = *New()
		return err
	}

	*f = *tmp

	return nil
}

func (f *File) decode(r io.Reader, loadData bool) error {
	parser := riff.New(r)

	id, size, err := parser.IDnSize()
	if err != nil {
		return fmt.Errorf("failed to read RIFF header: %w", err)
	}

	if id != riff.RiffID {
		return ErrNotRIFF
	}

	f.RiffSize = size

	var riffType [4]byte
	if _, err := io.ReadFull(r, riffType[:]); err != nil {
		return fmt.Errorf("failed to read RIFF type: %w", err)
	}

	if riffType != riff.WavFormatID {
		return ErrNotWAVE
	}

	for {
		id, size, err := parser.IDnSize()
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				return nil
			}

			return fmt.Errorf("failed to read chunk header: %w", err)
		}

		// All chunks are word aligned; the pad byte is consumed with the
		// payload but reported sizes keep the unpadded value.
		padded := paddedSize(size)
		chunk := &riff.Chunk{
			ID:   id,
			Size: int(padded),
			R:    io.LimitReader(r, int64(padded)),
		}

		switch id {
		case riff.FmtID:
			err = f.decodeFmt(chunk)
		case riff.DataFormatID:
			err = f.decodeData(chunk, size, loadData)
		default:
			err = f.decodeExtra(chunk, size)
		}

		if err != nil {
			return err
		}
	}
}

func (f *File) decodeFmt(chunk *riff.Chunk) error {
	var fc FmtChunk

	err := fc.decode(chunk)
	if err != nil {
		return err
	}

	f.Fmt = fc

	if fc.Compression != CompressionNone {
		f.Warnings = append(f.Warnings, Warning{
			ChunkID: chunk.ID,
			Message: fmt.Sprintf("compression code %d is not linear PCM; sample decoding is unspecified", fc.Compression),
		})
	}

	return nil
}

func (f *File) decodeData(chunk *riff.Chunk, size uint32, loadData bool) error {
	if !loadData {
		// Advance the stream exactly like a full read, without allocating.
		chunk.Drain()
		f.Data.data = nil
		f.Data.Size = size

		return nil
	}

	f.Data.Realloc(size)

	_, err := io.ReadFull(chunk, f.Data.data)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return fmt.Errorf("failed to read data chunk: %w", err)
	}

	return nil
}

func (f *File) decodeExtra(chunk *riff.Chunk, size uint32) error {
	data, err := io.ReadAll(chunk)
	if err != nil {
		return fmt.Errorf("failed to read %s chunk: %w", chunk.ID[:], err)
	}

	// Drop the alignment pad so Data holds exactly the declared payload.
	if uint32(len(data)) > size {
		data = data[:size]
	}

	f.Extra = append(f.Extra, RawChunk{
		ID:   chunk.ID,
		Size: uint32(len(data)),
		Data: data,
	})

	return nil
}

// Load reads the WAV file at path, audio payload included.
func (f *File) Load(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer file.Close()

	return f.Decode(file)
}

// LoadMetadata reads the WAV file at path without materializing the audio
// payload. Callers probing for a file's existence should treat a
// fs.ErrNotExist result as an expected condition.
func (f *File) LoadMetadata(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer file.Close()

	return f.DecodeMetadata(file)
}

// Encode writes the container in wire order: RIFF header, fmt chunk, extra
// chunks in their original order, data chunk. Derived fmt fields and the
// RIFF size are recomputed first.
func (f *File) Encode(w io.Writer) error {
	f.Fmt.UpdateDerived()
	f.RiffSize = f.riffSize()

	err := writeID(w, riff.RiffID)
	if err != nil {
		return err
	}

	err = writeLE(w, f.RiffSize)
	if err != nil {
		return fmt.Errorf("error encoding the RIFF chunk size - %w", err)
	}

	err = writeID(w, riff.WavFormatID)
	if err != nil {
		return err
	}

	err = f.Fmt.encode(w)
	if err != nil {
		return err
	}

	for _, chunk := range f.Extra {
		err = writeRawChunk(w, chunk)
		if err != nil {
			return err
		}
	}

	return f.encodeData(w)
}

// riffSize computes the RIFF chunk size: the 4-byte WAVE type plus every
// sub-chunk's 8-byte header and padded payload.
func (f *File) riffSize() uint32 {
	total := uint32(riffTypeSize)
	total += chunkHeaderSize + fmtPayloadSize

	for _, chunk := range f.Extra {
		total += chunkHeaderSize + paddedSize(chunk.Size)
	}

	total += chunkHeaderSize + paddedSize(f.Data.Size)

	return total
}

func (f *File) encodeData(w io.Writer) error {
	err := writeID(w, riff.DataFormatID)
	if err != nil {
		return err
	}

	err = writeLE(w, f.Data.Size)
	if err != nil {
		return fmt.Errorf("error encoding the data chunk size - %w", err)
	}

	if len(f.Data.data) > 0 {
		_, err = w.Write(f.Data.data)
		if err != nil {
			return fmt.Errorf("failed to write data chunk payload: %w", err)
		}
	}

	return nil
}

func writeRawChunk(w io.Writer, chunk RawChunk) error {
	err := writeID(w, chunk.ID)
	if err != nil {
		return err
	}

	err = writeLE(w, uint32(len(chunk.Data)))
	if err != nil {
		return fmt.Errorf("failed to write raw chunk size %s: %w", chunk.ID[:], err)
	}

	if len(chunk.Data) > 0 {
		_, err = w.Write(chunk.Data)
		if err != nil {
			return fmt.Errorf("failed to write raw chunk payload %s: %w", chunk.ID[:], err)
		}
	}

	if len(chunk.Data)%2 == 1 {
		_, err = w.Write([]byte{0})
		if err != nil {
			return fmt.Errorf("failed to write raw chunk padding %s: %w", chunk.ID[:], err)
		}
	}

	return nil
}

// Save writes the container to path, truncating any existing file. The only
// harm of truncate-then-fail is an empty file; no partially stale file is
// ever left behind.
func (f *File) Save(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to open %s for writing: %w", path, err)
	}

	err = f.Encode(file)
	if err != nil {
		file.Close()
		return err
	}

	err = file.Close()
	if err != nil {
		return fmt.Errorf("failed to close %s: %w", path, err)
	}

	return nil
}

// Resize reallocates the data chunk to hold sampleCount samples under the
// current format. Existing audio content is discarded, not preserved.
func (f *File) Resize(sampleCount int) {
	f.Fmt.UpdateDerived()
	f.Data.Realloc(uint32(sampleCount) * uint32(f.Fmt.BlockAlign))
}

// SampleCount returns the number of multi-channel samples in the data
// chunk. A zero block align reports zero samples rather than dividing by
// zero.
func (f *File) SampleCount() int {
	bytesPerSample := int(f.Fmt.BlockAlign)
	if f.Data.Size == 0 || bytesPerSample == 0 {
		return 0
	}

	return int(f.Data.Size) / bytesPerSample
}

// Sample returns the channel-averaged normalized value of the sample at
// offset. Out-of-range offsets return 0.
func (f *File) Sample(offset int) float64 {
	if offset < 0 || offset >= f.SampleCount() {
		return 0
	}

	start, width, channels, ok := f.sampleSlice(offset)
	if !ok {
		return 0
	}

	return channelAverage(f.Data.data[start:], channels, width, width != 1)
}

// SetSample writes the normalized value identically into every channel slot
// of the sample at offset. Out-of-range offsets are a silent no-op.
func (f *File) SetSample(offset int, value float64) {
	if offset < 0 || offset >= f.SampleCount() {
		return
	}

	start, width, channels, ok := f.sampleSlice(offset)
	if !ok {
		return
	}

	broadcastValue(value, f.Data.data[start:], channels, width, width != 1)
}

// sampleSlice locates one sample's bytes, rejecting access that would run
// past the buffer (a metadata-only load, or a block align inconsistent with
// the channel count and bit depth).
func (f *File) sampleSlice(offset int) (start, width, channels int, ok bool) {
	width = int(f.Fmt.BitsPerSample) / 8
	channels = int(f.Fmt.NumChannels)
	start = offset * int(f.Fmt.BlockAlign)

	if width == 0 || channels == 0 || start+width*channels > len(f.Data.data) {
		return 0, 0, 0, false
	}

	return start, width, channels, true
}

// String implements the Stringer interface with a header summary.
func (f *File) String() string {
	return fmt.Sprintf("WAV file info:\n"+
		"\tFile size: %d\n"+
		"\tCompression: %d\n"+
		"\tChannels: %d\n"+
		"\tSample rate: %d\n"+
		"\tBytes per second: %d\n"+
		"\tBlock align: %d\n"+
		"\tBits per sample: %d\n"+
		"\tData size: %d\n",
		f.RiffSize+chunkHeaderSize,
		f.Fmt.Compression,
		f.Fmt.NumChannels,
		f.Fmt.SampleRate,
		f.Fmt.BytesPerSec,
		f.Fmt.BlockAlign,
		f.Fmt.BitsPerSample,
		f.Data.Size,
	)
}
