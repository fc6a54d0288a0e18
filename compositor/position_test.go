package compositor

import (
	"errors"
	"testing"
)

func TestToVertexPixelCenter(t *testing.T) {
	dims := WindowDimensions{Width: 500, Height: 300}

	v, err := ToVertex(Pixel(250, 150), dims)
	if err != nil {
		t.Fatal(err)
	}
	if v.X() != 0.0 || v.Y() != 0.0 {
		t.Errorf("Pixel(250,150) = (%v, %v), want (0, 0)", v.X(), v.Y())
	}
}

func TestToVertexEnd(t *testing.T) {
	dims := WindowDimensions{Width: 500, Height: 300}

	v, err := ToVertex(End(300), dims)
	if err != nil {
		t.Fatal(err)
	}
	if v.X() != 1.0 || v.Y() != 1.0 {
		t.Errorf("End(300) = (%v, %v), want (1, 1)", v.X(), v.Y())
	}
}

func TestMapAxisPiecewise(t *testing.T) {
	tests := []struct {
		v    uint32
		mid  float32
		want float32
	}{
		{0, 100, 0}, // left branch at zero is 0, not -1
		{50, 100, -0.5},
		{99, 100, -0.99},
		{100, 100, 0},
		{150, 100, 0.5},
		{200, 100, 1},
		{300, 100, 2},
	}
	for _, tt := range tests {
		if got := mapAxis(tt.v, tt.mid); got != tt.want {
			t.Errorf("mapAxis(%d, %v) = %v, want %v", tt.v, tt.mid, got, tt.want)
		}
	}
}

func TestToVertexPixelMatchesFormula(t *testing.T) {
	dims := WindowDimensions{Width: 640, Height: 480}
	for _, p := range []Position{Pixel(0, 0), Pixel(10, 470), Pixel(320, 240), Pixel(639, 1)} {
		v, err := ToVertex(p, dims)
		if err != nil {
			t.Fatal(err)
		}
		if wx := mapAxis(p.X, 320); v.X() != wx {
			t.Errorf("%s x = %v, want %v", p, v.X(), wx)
		}
		if wy := mapAxis(p.Y, 240); v.Y() != wy {
			t.Errorf("%s y = %v, want %v", p, v.Y(), wy)
		}
	}
}

func TestToVertexUnsupported(t *testing.T) {
	dims := NewWindowDimensions(100, 100)
	for _, p := range []Position{Start(10), Top(10), Bottom(10)} {
		_, err := ToVertex(p, dims)
		if !errors.Is(err, ErrUnsupportedPosition) {
			t.Errorf("ToVertex(%s) err = %v, want ErrUnsupportedPosition", p, err)
		}
	}
}

func TestZeroDimensionsAreFloored(t *testing.T) {
	d := NewWindowDimensions(0, 0)
	if d.Width != 1 || d.Height != 1 {
		t.Fatalf("NewWindowDimensions(0,0) = %+v, want 1x1", d)
	}

	// An unfloored literal must still not divide by zero.
	v, err := ToVertex(Pixel(1, 1), WindowDimensions{})
	if err != nil {
		t.Fatal(err)
	}
	if v.X() != 1 || v.Y() != 1 {
		t.Errorf("Pixel(1,1) on 0x0 = (%v, %v), want (1, 1)", v.X(), v.Y())
	}
}

func TestExtent(t *testing.T) {
	w, h := Extent(100, 30, WindowDimensions{Width: 400, Height: 300})
	if w != 0.5 || h != 0.2 {
		t.Errorf("Extent = (%v, %v), want (0.5, 0.2)", w, h)
	}
}

func TestPositionKindRoundTrip(t *testing.T) {
	for k := PositionPixel; k <= PositionBottom; k++ {
		got, err := ParsePositionKind(k.String())
		if err != nil {
			t.Fatal(err)
		}
		if got != k {
			t.Errorf("ParsePositionKind(%q) = %v, want %v", k.String(), got, k)
		}
	}
	if _, err := ParsePositionKind("middle"); err == nil {
		t.Error("expected error for unknown kind")
	}
}
