// Package wavefile reads and writes RIFF/WAVE containers holding
// uncompressed linear PCM audio and exposes the sample data as normalized
// float64 values.
//
// A File owns the three mandatory chunks (RIFF, fmt, data) plus an ordered
// list of unrecognized chunks that round-trip verbatim through load and
// save. Samples are accessed one multi-channel slice at a time: reading
// averages all channels into a single value in [-1, 1], writing broadcasts
// one value into every channel slot. Arbitrary byte widths are supported,
// with 8-bit samples treated as unsigned and wider samples as signed
// two's complement, matching the WAV convention.
//
// Compressed formats are detected and reported through File.Warnings but
// not decoded. The package level helpers LoadSamples, SampleCount and
// SaveSamples cover the common whole-file workflows.
package wavefile
