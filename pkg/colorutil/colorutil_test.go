package colorutil

import "testing"

func TestDecodeRGB565White(t *testing.T) {
	c := DecodeRGB565(0xFFFF)
	if c != (RGBA8{255, 255, 255, 255}) {
		t.Errorf("DecodeRGB565(0xffff) = %+v, want all-255", c)
	}
}

func TestDecodeRGB565Black(t *testing.T) {
	c := DecodeRGB565(0x0000)
	if c != (RGBA8{0, 0, 0, 255}) {
		t.Errorf("DecodeRGB565(0) = %+v, want rgb 0 alpha 255", c)
	}
}

func TestInterpolate3(t *testing.T) {
	white := RGBA8{255, 255, 255, 255}
	black := RGBA8{0, 0, 0, 255}

	twoThirds := Interpolate3(white, black, 1)
	if twoThirds.R != 170 { // (2*255+0+1)/3 = 170
		t.Errorf("Interpolate3 2/3 white = %d, want 170", twoThirds.R)
	}

	oneThird := Interpolate3(white, black, 2)
	if oneThird.R != 85 { // (255+0+1)/3 = 85
		t.Errorf("Interpolate3 1/3 white = %d, want 85", oneThird.R)
	}
}

func TestInterpolate2Midpoint(t *testing.T) {
	white := RGBA8{255, 255, 255, 255}
	black := RGBA8{0, 0, 0, 255}
	mid := Interpolate2(white, black, 1)
	if mid.R != 127 {
		t.Errorf("Interpolate2 midpoint = %d, want 127", mid.R)
	}
}

func TestInterpolate64Endpoints(t *testing.T) {
	a := RGBA8{10, 20, 30, 40}
	b := RGBA8{200, 210, 220, 230}
	if got := Interpolate64(a, b, 0); got != a {
		t.Errorf("Interpolate64 factor=0 = %+v, want %+v", got, a)
	}
	if got := Interpolate64(a, b, 64); got != b {
		t.Errorf("Interpolate64 factor=64 = %+v, want %+v", got, b)
	}
}
