package colormap

import (
	"math"
	"testing"

	"github.com/san-kum/ndviplay/internal/frame"
)

func TestEncodeBreakpoints(t *testing.T) {
	tests := []struct {
		v       float64
		a, b, c uint8
	}{
		{0.0, 0, 255, 0},
		{0.25, 0, 255, 127},
		{0.5, 0, 255, 255},
		{0.75, 0, 127, 255},
		{1.0, 0, 0, 255},
		{2.0, 0, 0, 255},
		{-0.25, 127, 255, 0},
		{-0.5, 255, 255, 0},
		{-0.75, 255, 127, 0},
		{-1.0, 255, 0, 0},
		{-3.0, 255, 0, 0},
	}

	for _, tt := range tests {
		a, b, c := Encode(tt.v)
		if a != tt.a || b != tt.b || c != tt.c {
			t.Errorf("v=%.2f: expected (%d,%d,%d), got (%d,%d,%d)", tt.v, tt.a, tt.b, tt.c, a, b, c)
		}
	}
}

func TestEncodeNaN(t *testing.T) {
	a, b, c := Encode(math.NaN())
	if a != 0 || b != 255 || c != 0 {
		t.Errorf("expected NaN to encode like zero, got (%d,%d,%d)", a, b, c)
	}
}

func TestEncodeMonotonicSegments(t *testing.T) {
	var prevA, prevC uint8 = 255, 0
	for v := -1.0; v <= 1.0; v += 0.01 {
		a, _, c := Encode(v)
		if a > prevA {
			t.Fatalf("channel A increased at v=%.2f", v)
		}
		if c < prevC {
			t.Fatalf("channel C decreased at v=%.2f", v)
		}
		prevA, prevC = a, c
	}

	var prevB uint8
	for v := -1.0; v <= -0.5; v += 0.01 {
		_, b, _ := Encode(v)
		if b < prevB {
			t.Fatalf("channel B decreased on rising ramp at v=%.2f", v)
		}
		prevB = b
	}
	prevB = 255
	for v := 0.5; v <= 1.0; v += 0.01 {
		_, b, _ := Encode(v)
		if b > prevB {
			t.Fatalf("channel B increased on falling ramp at v=%.2f", v)
		}
		prevB = b
	}
}

func TestApply(t *testing.T) {
	f := frame.NewField(3, 2)
	f.Set(0, 0, -1)
	f.Set(2, 1, 1)

	img := Apply(f)
	if img.Width != 3 || img.Height != 2 {
		t.Fatalf("expected 3x2, got %dx%d", img.Width, img.Height)
	}
	if a, b, c := img.At(0, 0); a != 255 || b != 0 || c != 0 {
		t.Errorf("expected pure cool at (0,0), got (%d,%d,%d)", a, b, c)
	}
	if a, b, c := img.At(1, 0); a != 0 || b != 255 || c != 0 {
		t.Errorf("expected neutral at (1,0), got (%d,%d,%d)", a, b, c)
	}
	if a, b, c := img.At(2, 1); a != 0 || b != 0 || c != 255 {
		t.Errorf("expected pure warm at (2,1), got (%d,%d,%d)", a, b, c)
	}
}
