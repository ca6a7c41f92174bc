package dds

import "math/bits"

// channelMask describes one channel's bit position within a packed
// pixel: shift is the position of its lowest set bit, width is how many
// contiguous set bits it has.
type channelMask struct {
	shift, width int
}

// canonicalizeMask decomposes a bitmask into (shift, width), rejecting
// non-contiguous masks. The rule is count trailing zeros to find the
// shift, then count trailing ones (on the shifted value) to find the
// width; if any set bit remains above that run, the mask is rejected.
func canonicalizeMask(mask uint32) (channelMask, bool) {
	if mask == 0 {
		return channelMask{}, true
	}
	shift := bits.TrailingZeros32(mask)
	shifted := mask >> uint(shift)
	width := bits.TrailingZeros32(^shifted)
	if shifted>>uint(width) != 0 {
		return channelMask{}, false
	}
	return channelMask{shift: shift, width: width}, true
}
