package noise

import (
	"bufio"
	"bytes"
	"errors"
	"image/png"
	"path/filepath"
	"strconv"
	"testing"
)

func fieldOf(width, height int, values ...float64) *HeightField {
	return &HeightField{Width: width, Height: height, Values: values}
}

func TestHeightFieldAt(t *testing.T) {
	f := fieldOf(3, 2, 0, 0.1, 0.2, 0.3, 0.4, 0.5)
	v, err := f.At(2, 1)
	if err != nil || v != 0.5 {
		t.Errorf("At(2,1) = %f, %v; want 0.5", v, err)
	}
	for _, p := range [][2]int{{-1, 0}, {0, -1}, {3, 0}, {0, 2}} {
		if _, err := f.At(p[0], p[1]); !errors.Is(err, ErrInvalidDimensions) {
			t.Errorf("At(%d,%d): Expected ErrInvalidDimensions, got %v", p[0], p[1], err)
		}
	}
}

func TestHeightFieldSlice(t *testing.T) {
	f := fieldOf(4, 3,
		0, 1, 2, 3,
		4, 5, 6, 7,
		8, 9, 10, 11)
	s, err := f.Slice(1, 1, 2, 2)
	if err != nil {
		t.Fatalf("Slice: %v", err)
	}
	want := []float64{5, 6, 9, 10}
	for i := range want {
		if s.Values[i] != want[i] {
			t.Errorf("slice[%d] = %f, want %f", i, s.Values[i], want[i])
		}
	}
	if _, err := f.Slice(3, 0, 2, 1); !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("Expected ErrInvalidDimensions for overflowing slice, got %v", err)
	}
}

func TestRescale(t *testing.T) {
	f := fieldOf(4, 1, 0, 0.5, 0.999, 1)
	got := f.Rescale(128)
	want := []uint8{0, 63, 126, 127}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Rescale[%d] = %d, want %d", i, got[i], want[i])
		}
	}
	if f.Min() != 0 || f.Max() != 1 {
		t.Errorf("Min/Max = %f/%f, want 0/1", f.Min(), f.Max())
	}
}

func TestEncodeFieldGrayscale(t *testing.T) {
	f := fieldOf(3, 2, 0, 0.5, 1, 0.25, 0.75, 0.125)
	var buf bytes.Buffer
	if err := EncodeField(&buf, f, false); err != nil {
		t.Fatalf("EncodeField: %v", err)
	}
	want := "P2\n3 2\n128\n0 64 128\n32 96 16\n"
	if buf.String() != want {
		t.Errorf("EncodeField = %q, want %q", buf.String(), want)
	}
}

func TestEncodeFieldColor(t *testing.T) {
	f := fieldOf(2, 1, 0, 0.9)
	var buf bytes.Buffer
	if err := EncodeField(&buf, f, true); err != nil {
		t.Fatalf("EncodeField: %v", err)
	}
	want := "P3\n2 1\n255\n0 0 128 255 255 255\n"
	if buf.String() != want {
		t.Errorf("EncodeField = %q, want %q", buf.String(), want)
	}
}

func TestFieldColorBands(t *testing.T) {
	cases := []struct {
		v       float64
		r, g, b uint8
	}{
		{0.0, 0, 0, 128},
		{0.25, 0, 0, 255},
		{0.40, 240, 240, 64},
		{0.45, 32, 160, 0},
		{0.60, 128, 128, 128},
		{0.75, 255, 255, 255},
		{1.5, 255, 255, 255},
	}
	for _, tc := range cases {
		c := FieldColor(tc.v)
		if c.R != tc.r || c.G != tc.g || c.B != tc.b {
			t.Errorf("FieldColor(%f) = %v, want {%d %d %d}", tc.v, c, tc.r, tc.g, tc.b)
		}
	}
}

func TestWriteFieldFileRoundTrip(t *testing.T) {
	f := generate(t, 0xDEADBEEF, Dimension{16, 12}, DefaultParams())
	var buf bytes.Buffer
	if err := EncodeField(&buf, f, false); err != nil {
		t.Fatal(err)
	}

	sc := bufio.NewScanner(&buf)
	sc.Split(bufio.ScanWords)
	var tokens []string
	for sc.Scan() {
		tokens = append(tokens, sc.Text())
	}
	if tokens[0] != "P2" {
		t.Fatalf("magic = %q, want P2", tokens[0])
	}
	w, _ := strconv.Atoi(tokens[1])
	h, _ := strconv.Atoi(tokens[2])
	if w != f.Width || h != f.Height {
		t.Errorf("header %dx%d, want %dx%d", w, h, f.Width, f.Height)
	}
	if pixels := len(tokens) - 4; pixels != w*h {
		t.Errorf("pixel count %d, want %d", pixels, w*h)
	}
}

func TestWriteFieldFileUnwritable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "field.pgm")
	err := WriteFieldFile(path, fieldOf(1, 1, 0), false)
	if !errors.Is(err, ErrFileNotFound) {
		t.Errorf("Expected ErrFileNotFound, got %v", err)
	}
}

func TestWriteFieldFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "field.ppm")
	if err := WriteFieldFile(path, fieldOf(2, 2, 0, 0.3, 0.5, 0.8), true); err != nil {
		t.Fatalf("WriteFieldFile: %v", err)
	}
}

func TestEncodeFieldPNG(t *testing.T) {
	f := fieldOf(2, 2, 0, 0.3, 0.5, 0.8)
	var buf bytes.Buffer
	if err := EncodeFieldPNG(&buf, f, 4, true); err != nil {
		t.Fatalf("EncodeFieldPNG: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("png.Decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 8 || b.Dy() != 8 {
		t.Errorf("Expected 8x8 preview, got %v", b)
	}
	r, g, bl, _ := img.At(7, 7).RGBA()
	want := FieldColor(0.8)
	if uint8(r>>8) != want.R || uint8(g>>8) != want.G || uint8(bl>>8) != want.B {
		t.Errorf("bottom-right pixel = %d,%d,%d; want %v", r>>8, g>>8, bl>>8, want)
	}
}
