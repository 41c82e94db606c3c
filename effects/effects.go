// Package effects implements signal transformations over normalized
// samples. Every function is pure: it takes and returns plain []float64
// slices of values in [-1, 1] and knows nothing about the container format
// they came from.
package effects

// Faster doubles the playback speed by dropping every other sample.
func Faster(samples []float64) []float64 {
	out := make([]float64, len(samples)/2)
	for i := range out {
		out[i] = samples[i*2]
	}

	return out
}

// Slower halves the playback speed by duplicating every sample.
func Slower(samples []float64) []float64 {
	out := make([]float64, len(samples)*2)
	for i := range out {
		out[i] = samples[i/2]
	}

	return out
}

// Echo mixes each sample with the sample delay positions earlier, scaled by
// intensity, extending the output by delay samples so the tail rings out.
func Echo(samples []float64, delay int, intensity float64) []float64 {
	if delay < 0 {
		delay = 0
	}

	out := make([]float64, len(samples)+delay)
	for i := range out {
		switch {
		case i >= delay && i < len(samples):
			// body: average the dry sample with its delayed copy
			out[i] = (samples[i] + intensity*samples[i-delay]) / 2
		case i >= delay:
			// tail: only the echo remains
			out[i] = intensity * samples[i-delay]
		default:
			// lead-in: nothing to echo yet
			out[i] = samples[i]
		}
	}

	return out
}

// Gain scales every sample by factor. Values are not clamped.
func Gain(samples []float64, factor float64) []float64 {
	out := make([]float64, len(samples))
	for i, s := range samples {
		out[i] = factor * s
	}

	return out
}

// Reverse returns the samples in reverse order.
func Reverse(samples []float64) []float64 {
	out := make([]float64, len(samples))
	for i := range out {
		out[i] = samples[len(samples)-1-i]
	}

	return out
}

// Mix averages two sample sequences. The result is as long as the longer
// input; the shorter input is looped to cover the difference. Mixing
// anything with an empty sequence returns a copy of the other operand.
func Mix(a, b []float64) []float64 {
	longest, shortest := a, b
	if len(b) > len(a) {
		longest, shortest = b, a
	}

	out := make([]float64, len(longest))

	if len(shortest) == 0 {
		copy(out, longest)
		return out
	}

	for i := range out {
		out[i] = (longest[i] + shortest[i%len(shortest)]) / 2
	}

	return out
}
