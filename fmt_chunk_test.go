package wavefile

import (
	"bytes"
	"encoding/binary"
	"io"
	"testing"

	"github.com/go-audio/riff"
)

func TestUpdateDerived(t *testing.T) {
	tests := []struct {
		name            string
		channels        uint16
		sampleRate      uint32
		bitsPerSample   uint16
		wantBlockAlign  uint16
		wantBytesPerSec uint32
	}{
		{"mono 16-bit 22050", 1, 22050, 16, 2, 44100},
		{"stereo 16-bit 44100", 2, 44100, 16, 4, 176400},
		{"mono 8-bit 8000", 1, 8000, 8, 1, 8000},
		{"stereo 24-bit 48000", 2, 48000, 24, 6, 288000},
		{"zero bit depth", 2, 44100, 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := FmtChunk{
				NumChannels:   tt.channels,
				SampleRate:    tt.sampleRate,
				BitsPerSample: tt.bitsPerSample,
				// stale values that must be overwritten
				BlockAlign:  999,
				BytesPerSec: 999999,
			}

			c.UpdateDerived()

			if c.BlockAlign != tt.wantBlockAlign {
				t.Errorf("BlockAlign=%d, want %d", c.BlockAlign, tt.wantBlockAlign)
			}

			if c.BytesPerSec != tt.wantBytesPerSec {
				t.Errorf("BytesPerSec=%d, want %d", c.BytesPerSec, tt.wantBytesPerSec)
			}
		})
	}
}

func TestDefaultFmtChunk(t *testing.T) {
	c := defaultFmtChunk()

	if c.Compression != CompressionNone {
		t.Errorf("Compression=%d, want %d", c.Compression, CompressionNone)
	}

	if c.NumChannels != 1 || c.SampleRate != 22050 || c.BitsPerSample != 16 {
		t.Errorf("unexpected defaults: %+v", c)
	}

	if c.BlockAlign != 2 || c.BytesPerSec != 44100 {
		t.Errorf("derived defaults not computed: %+v", c)
	}
}

func fmtPayload(t *testing.T, c FmtChunk, extra []byte) []byte {
	t.Helper()

	var buf bytes.Buffer
	for _, v := range []any{c.Compression, c.NumChannels, c.SampleRate, c.BytesPerSec, c.BlockAlign, c.BitsPerSample} {
		if err := binary.Write(&buf, binary.LittleEndian, v); err != nil {
			t.Fatal(err)
		}
	}

	buf.Write(extra)

	return buf.Bytes()
}

func TestFmtChunkDecode(t *testing.T) {
	want := FmtChunk{
		Compression:   CompressionNone,
		NumChannels:   2,
		SampleRate:    44100,
		BytesPerSec:   176400,
		BlockAlign:    4,
		BitsPerSample: 16,
	}

	tests := []struct {
		name  string
		extra []byte
	}{
		{"plain 16-byte payload", nil},
		{"extended payload is drained", []byte{0x02, 0x00, 0xAA, 0xBB}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload := fmtPayload(t, want, tt.extra)
			chunk := &riff.Chunk{
				ID:   riff.FmtID,
				Size: len(payload),
				R:    io.LimitReader(bytes.NewReader(payload), int64(len(payload))),
			}

			var got FmtChunk
			if err := got.decode(chunk); err != nil {
				t.Fatalf("decode: %v", err)
			}

			if got != want {
				t.Fatalf("decode mismatch:\ngot  %+v\nwant %+v", got, want)
			}
		})
	}
}

func TestFmtChunkEncodeRoundTrip(t *testing.T) {
	in := FmtChunk{
		Compression:   CompressionNone,
		NumChannels:   1,
		SampleRate:    8000,
		BytesPerSec:   16000,
		BlockAlign:    2,
		BitsPerSample: 16,
	}

	var buf bytes.Buffer
	if err := in.encode(&buf); err != nil {
		t.Fatalf("encode: %v", err)
	}

	raw := buf.Bytes()
	if len(raw) != chunkHeaderSize+fmtPayloadSize {
		t.Fatalf("encoded %d bytes, want %d", len(raw), chunkHeaderSize+fmtPayloadSize)
	}

	if !bytes.Equal(raw[:4], riff.FmtID[:]) {
		t.Fatalf("chunk ID %q, want %q", raw[:4], riff.FmtID[:])
	}

	if size := binary.LittleEndian.Uint32(raw[4:8]); size != fmtPayloadSize {
		t.Fatalf("chunk size %d, want %d", size, fmtPayloadSize)
	}

	chunk := &riff.Chunk{
		ID:   riff.FmtID,
		Size: fmtPayloadSize,
		R:    bytes.NewReader(raw[8:]),
	}

	var out FmtChunk
	if err := out.decode(chunk); err != nil {
		t.Fatalf("decode: %v", err)
	}

	if out != in {
		t.Fatalf("round trip mismatch:\ngot  %+v\nwant %+v", out, in)
	}
}
