package wavefile

// The sample codec converts between raw per-channel little-endian integers
// and one normalized float64 per multi-channel sample slice. Decoding
// averages every channel into a single value; encoding broadcasts a single
// value into every channel slot. The representation is deliberately lossy
// for multi-channel audio.

// maxUnsignedValue returns the all-ones value for a channel width in bytes.
func maxUnsignedValue(width int) uint64 {
	var v uint64
	for i := 0; i < width; i++ {
		v |= 0xff << (8 * uint(i))
	}

	return v
}

// maxSignedValue returns maxUnsignedValue with the sign bit cleared.
func maxSignedValue(width int) uint64 {
	return maxUnsignedValue(width) &^ (1 << (uint(width)*8 - 1))
}

// toggleSignRange shifts a value across the signed/unsigned midpoint for
// the given width. The same transform maps two's-complement samples into
// offset-binary space and back.
func toggleSignRange(v uint64, width int) uint64 {
	half := maxSignedValue(width) + 1
	if v > maxSignedValue(width) {
		return v - half
	}

	return v + half
}

// decodeValue reads one channel's raw bytes as an unsigned little-endian
// integer, mapped into offset-binary space when the samples are signed.
func decodeValue(raw []byte, width int, signed bool) uint64 {
	var v uint64
	for i := 0; i < width; i++ {
		v |= uint64(raw[i]) << (8 * uint(i))
	}

	if signed {
		v = toggleSignRange(v, width)
	}

	return v
}

// channelAverage decodes one sample slice into a single normalized value in
// [-1, 1]. The running total is unsigned and allowed to wrap for wide
// samples, which reproduces the format's historical arithmetic.
func channelAverage(slice []byte, channels, width int, signed bool) float64 {
	var total uint64
	for i := 0; i < channels; i++ {
		total += decodeValue(slice[i*width:], width, signed)
	}

	average := float64(total) / float64(channels)

	return average/float64(maxUnsignedValue(width))*2 - 1
}

// broadcastValue encodes a normalized value identically into every channel
// slot of a sample slice.
func broadcastValue(value float64, slice []byte, channels, width int, signed bool) {
	v := uint64((value + 1) / 2 * float64(maxUnsignedValue(width)))
	if signed {
		v = toggleSignRange(v, width)
	}

	for i := 0; i < channels; i++ {
		for j := 0; j < width; j++ {
			slice[j+i*width] = byte(v >> (8 * uint(j)))
		}
	}
}
