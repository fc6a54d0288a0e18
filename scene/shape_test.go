package scene

import "testing"

func TestRectangleData(t *testing.T) {
	rect := Rectangle(0, 0, 10, 4)

	want := [][2]float32{{-2, -5}, {2, -5}, {-2, 5}, {2, 5}}
	got := rect.Data()
	if len(got) != len(want) {
		t.Fatalf("len(Data()) = %d, want %d", len(got), len(want))
	}
	for i, v := range got {
		if v.X() != want[i][0] || v.Y() != want[i][1] {
			t.Errorf("Data()[%d] = (%v, %v), want (%v, %v)", i, v.X(), v.Y(), want[i][0], want[i][1])
		}
		if v.Position[2] != 0 {
			t.Errorf("Data()[%d].z = %v, want 0", i, v.Position[2])
		}
	}

	wantIdx := []uint32{0, 1, 3, 0, 3, 2}
	gotIdx := rect.Indices()
	if len(gotIdx) != len(wantIdx) {
		t.Fatalf("len(Indices()) = %d, want %d", len(gotIdx), len(wantIdx))
	}
	for i := range wantIdx {
		if gotIdx[i] != wantIdx[i] {
			t.Errorf("Indices()[%d] = %d, want %d", i, gotIdx[i], wantIdx[i])
		}
	}
}

func TestSquareIsEqualSidedRectangle(t *testing.T) {
	sq := Square(1, 2, 6)
	rect := Rectangle(1, 2, 6, 6)

	a, b := sq.Data(), rect.Data()
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("corner %d: square %+v, rectangle %+v", i, a[i], b[i])
		}
	}
}

func TestSquareIgnoresHeight(t *testing.T) {
	sq := Square(0, 0, 2)
	sq.Height = 100

	v := sq.Data()
	if v[0].Y() != -1 || v[3].Y() != 1 {
		t.Errorf("square corners y = %v..%v, want -1..1", v[0].Y(), v[3].Y())
	}
}

func TestShapeIndicesAreLocal(t *testing.T) {
	for _, s := range []Shape{Rectangle(3, 4, 1, 2), Square(-1, -1, 0.5)} {
		vertices, indices := Extract(s)
		for _, i := range indices {
			if int(i) >= len(vertices) {
				t.Errorf("%v: index %d out of %d vertices", s.Kind, i, len(vertices))
			}
		}
	}
}

func TestShapeIndicesNotShared(t *testing.T) {
	a := Rectangle(0, 0, 1, 1).Indices()
	a[0] = 99

	b := Rectangle(0, 0, 1, 1).Indices()
	if b[0] != 0 {
		t.Errorf("Indices() returned shared storage: b[0] = %d", b[0])
	}
}

func TestShapeWithColor(t *testing.T) {
	green := Color{G: 0.5}
	base := Rectangle(0, 0, 1, 1)
	colored := base.WithColor(green)

	for i, v := range colored.Data() {
		if v.Color != [3]float32{0, 0.5, 0} {
			t.Errorf("vertex %d color = %v, want green", i, v.Color)
		}
	}
	// Value transform: the original is untouched.
	for i, v := range base.Data() {
		if v.Color != [3]float32{1, 1, 1} {
			t.Errorf("base vertex %d color = %v, want white", i, v.Color)
		}
	}
}

func TestShapeKindString(t *testing.T) {
	tests := []struct {
		kind ShapeKind
		want string
	}{
		{KindRectangle, "rectangle"},
		{KindSquare, "square"},
		{ShapeKind(9), "ShapeKind(9)"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("%d.String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestParseShapeKind(t *testing.T) {
	for _, k := range []ShapeKind{KindRectangle, KindSquare} {
		got, err := ParseShapeKind(k.String())
		if err != nil || got != k {
			t.Errorf("ParseShapeKind(%q) = %v, %v", k.String(), got, err)
		}
	}
	if got, err := ParseShapeKind("rect"); err != nil || got != KindRectangle {
		t.Errorf("ParseShapeKind(rect) = %v, %v", got, err)
	}
	if _, err := ParseShapeKind("circle"); err == nil {
		t.Error("expected error for circle")
	}
}
