package noise

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"strconv"

	"golang.org/x/image/draw"
)

// GrayMax is the max value declared in grayscale (P2) exports.
const GrayMax = 128

// colorBand linearly blends from..to over [lo, hi).
type colorBand struct {
	lo, hi   float64
	from, to color.RGBA
}

var fieldBands = []colorBand{
	{0.00, 0.25, color.RGBA{0, 0, 128, 255}, color.RGBA{0, 0, 255, 255}},
	{0.25, 0.40, color.RGBA{0, 0, 255, 255}, color.RGBA{0, 128, 255, 255}},
	{0.40, 0.45, color.RGBA{240, 240, 64, 255}, color.RGBA{200, 180, 80, 255}},
	{0.45, 0.60, color.RGBA{32, 160, 0, 255}, color.RGBA{16, 96, 0, 255}},
	{0.60, 0.75, color.RGBA{128, 128, 128, 255}, color.RGBA{200, 200, 200, 255}},
}

var peakColor = color.RGBA{255, 255, 255, 255}

// FieldColor maps a normalized sample onto the terrain gradient.
func FieldColor(v float64) color.RGBA {
	v = clamp01(v)
	for _, b := range fieldBands {
		if v < b.hi {
			t := (v - b.lo) / (b.hi - b.lo)
			return color.RGBA{
				R: blend(b.from.R, b.to.R, t),
				G: blend(b.from.G, b.to.G, t),
				B: blend(b.from.B, b.to.B, t),
				A: 255,
			}
		}
	}
	return peakColor
}

func blend(a, b uint8, t float64) uint8 {
	return uint8(float64(a) + (float64(b)-float64(a))*t)
}

// grayLevel maps a normalized sample onto [0, GrayMax].
func grayLevel(v float64) int {
	return int(clamp01(v) * GrayMax)
}

// EncodeField writes f as an ASCII raster: P2 grayscale (max GrayMax), or
// P3 through FieldColor when colorize is set.
func EncodeField(w io.Writer, f *HeightField, colorize bool) error {
	bw := bufio.NewWriter(w)
	if colorize {
		fmt.Fprintf(bw, "P3\n%d %d\n255\n", f.Width, f.Height)
	} else {
		fmt.Fprintf(bw, "P2\n%d %d\n%d\n", f.Width, f.Height, GrayMax)
	}

	buf := make([]byte, 0, 16*f.Width)
	for y := 0; y < f.Height; y++ {
		buf = buf[:0]
		for x := 0; x < f.Width; x++ {
			if x > 0 {
				buf = append(buf, ' ')
			}
			v := f.Values[y*f.Width+x]
			if colorize {
				c := FieldColor(v)
				buf = strconv.AppendInt(buf, int64(c.R), 10)
				buf = append(buf, ' ')
				buf = strconv.AppendInt(buf, int64(c.G), 10)
				buf = append(buf, ' ')
				buf = strconv.AppendInt(buf, int64(c.B), 10)
			} else {
				buf = strconv.AppendInt(buf, int64(grayLevel(v)), 10)
			}
		}
		buf = append(buf, '\n')
		if _, err := bw.Write(buf); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteFieldFile writes f to path with EncodeField.
func WriteFieldFile(path string, f *HeightField, colorize bool) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrFileNotFound, path, err)
	}
	if err := EncodeField(file, f, colorize); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

// FieldImage renders f at one pixel per sample.
func FieldImage(f *HeightField, colorize bool) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, f.Width, f.Height))
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			v := f.Values[y*f.Width+x]
			if colorize {
				img.SetRGBA(x, y, FieldColor(v))
				continue
			}
			g := uint8(grayLevel(v) * 255 / GrayMax)
			img.SetRGBA(x, y, color.RGBA{g, g, g, 255})
		}
	}
	return img
}

// EncodeFieldPNG writes a PNG preview of f upscaled by scale with
// nearest-neighbour sampling.
func EncodeFieldPNG(w io.Writer, f *HeightField, scale int, colorize bool) error {
	if scale < 1 {
		scale = 1
	}
	src := FieldImage(f, colorize)
	dst := image.NewRGBA(image.Rect(0, 0, f.Width*scale, f.Height*scale))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return png.Encode(w, dst)
}

// WriteFieldPNG writes the PNG preview of f to path.
func WriteFieldPNG(path string, f *HeightField, scale int, colorize bool) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrFileNotFound, path, err)
	}
	if err := EncodeFieldPNG(file, f, scale, colorize); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
