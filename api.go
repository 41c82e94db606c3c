package wavefile

import (
	"errors"
	"io/fs"

	"github.com/go-audio/audio"
)

// LoadSamples decodes the WAV file at path into normalized samples, one
// float64 in [-1, 1] per multi-channel sample.
func LoadSamples(path string) ([]float64, error) {
	f := New()

	err := f.Load(path)
	if err != nil {
		return nil, err
	}

	samples := make([]float64, f.SampleCount())
	for i := range samples {
		samples[i] = f.Sample(i)
	}

	return samples, nil
}

// SampleCount probes the number of samples in the file at path without
// materializing the audio payload. A missing file reports zero samples and
// no error, so callers can use it as a cheap existence check.
func SampleCount(path string) (int, error) {
	f := New()

	err := f.LoadMetadata(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return 0, nil
		}

		return 0, err
	}

	return f.SampleCount(), nil
}

// SaveSamples writes the normalized samples to path, creating or
// overwriting the file. Recoverable metadata (format fields, extra chunks)
// of an existing file at path is carried over; the channel count is forced
// to mono since the sample codec would only mirror one value across every
// channel anyway.
func SaveSamples(path string, samples []float64) error {
	f := New()

	// Best effort: a missing or foreign file just means there is no
	// metadata to carry over.
	_ = f.LoadMetadata(path)

	f.Fmt.NumChannels = 1
	f.Resize(len(samples))

	for i, s := range samples {
		f.SetSample(i, s)
	}

	return f.Save(path)
}

// PCMBuffer exposes the decoded, channel-averaged samples as a go-audio
// float buffer. The buffer is mono by construction.
func (f *File) PCMBuffer() *audio.FloatBuffer {
	buf := &audio.FloatBuffer{
		Format: &audio.Format{
			NumChannels: 1,
			SampleRate:  int(f.Fmt.SampleRate),
		},
		Data: make([]float64, f.SampleCount()),
	}

	for i := range buf.Data {
		buf.Data[i] = f.Sample(i)
	}

	return buf
}
