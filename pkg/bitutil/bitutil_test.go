package bitutil

import "testing"

func TestSignExtend(t *testing.T) {
	tests := []struct {
		x    uint32
		n    int
		want int32
	}{
		{0b1011, 4, -5},
		{0b0011, 4, 3},
		{0x7f, 8, 127},
		{0x80, 8, -128},
	}
	for _, tt := range tests {
		if got := SignExtend(tt.x, tt.n); got != tt.want {
			t.Errorf("SignExtend(%#x, %d) = %d, want %d", tt.x, tt.n, got, tt.want)
		}
	}
}

func TestExtractBitsAcrossWordBoundary(t *testing.T) {
	words := []uint32{0xEEEEEEEE, 0x00000011}
	got := ExtractBits(words, 30, 4)
	want := uint32(0b0111)
	if got != want {
		t.Errorf("ExtractBits = %#b, want %#b", got, want)
	}
}

func TestExtractBitsContained(t *testing.T) {
	words := []uint32{0b1010_1100}
	got := ExtractBits(words, 2, 4)
	want := uint32(0b1011)
	if got != want {
		t.Errorf("ExtractBits = %#b, want %#b", got, want)
	}
}

func TestExtractBits64(t *testing.T) {
	lo := uint64(0xEEEEEEEEEEEEEEEE)
	hi := uint64(0x11)
	got := ExtractBits64(lo, hi, 62, 4)
	want := (lo>>62)&0x3 | ((hi & 0x3) << 2)
	if got != want {
		t.Errorf("ExtractBits64 = %#x, want %#x", got, want)
	}
}

func TestHalfToFloat(t *testing.T) {
	tests := []struct {
		h    uint16
		want float32
	}{
		{0x3C00, 1.0},
		{0xBC00, -1.0},
		{0x0000, 0.0},
		{0x8000, -0.0},
	}
	for _, tt := range tests {
		if got := HalfToFloat(tt.h); got != tt.want {
			t.Errorf("HalfToFloat(%#x) = %v, want %v", tt.h, got, tt.want)
		}
	}
}

func TestSRGBRoundTrip(t *testing.T) {
	for x := 0; x <= 255; x++ {
		got := SRGBFromLinear(LinearFromSRGB(uint8(x)))
		if int(got) != x {
			t.Errorf("round trip failed for %d: got %d", x, got)
		}
	}
}

func TestExpandChannelTo8Identity(t *testing.T) {
	for v := uint32(0); v < 256; v++ {
		if got := ExpandChannelTo8(v, 8); got != uint8(v) {
			t.Errorf("ExpandChannelTo8(%d, 8) = %d, want %d", v, got, v)
		}
	}
}

func TestReverseBits(t *testing.T) {
	tests := []struct {
		v     uint32
		width int
		want  uint32
	}{
		{0b1000, 4, 0b0001},
		{0b1011, 4, 0b1101},
		{0, 5, 0},
		{0b11111, 5, 0b11111},
	}
	for _, tt := range tests {
		if got := ReverseBits(tt.v, tt.width); got != tt.want {
			t.Errorf("ReverseBits(%#b, %d) = %#b, want %#b", tt.v, tt.width, got, tt.want)
		}
	}
}

func TestExpandChannelTo8Replication(t *testing.T) {
	// 5-bit max value expands to 8-bit max value.
	if got := ExpandChannelTo8(0x1F, 5); got != 0xFF {
		t.Errorf("ExpandChannelTo8(0x1F, 5) = %#x, want 0xff", got)
	}
	if got := ExpandChannelTo8(0, 5); got != 0 {
		t.Errorf("ExpandChannelTo8(0, 5) = %#x, want 0", got)
	}
}
