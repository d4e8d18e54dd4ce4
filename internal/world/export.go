package world

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
)

// EncodeChunk writes c as an ASCII P3 raster of stacked slices. The
// horizontal layout stacks one X×Z slice per row from the top down; the
// vertical layout stacks one X×Y slice (top row first) per z.
func EncodeChunk(w io.Writer, c *Chunk, vertical bool) error {
	dim := c.dimension
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "P3\n%d %d\n255\n", dim.X, dim.Y*dim.Z)

	buf := make([]byte, 0, 12*dim.X)
	row := func(y, z int) error {
		buf = buf[:0]
		for x := 0; x < dim.X; x++ {
			if x > 0 {
				buf = append(buf, ' ')
			}
			col := c.blocks[c.blockIndex(x, y, z)].Color()
			buf = strconv.AppendInt(buf, int64(col.R), 10)
			buf = append(buf, ' ')
			buf = strconv.AppendInt(buf, int64(col.G), 10)
			buf = append(buf, ' ')
			buf = strconv.AppendInt(buf, int64(col.B), 10)
		}
		buf = append(buf, '\n')
		_, err := bw.Write(buf)
		return err
	}

	if vertical {
		for z := 0; z < dim.Z; z++ {
			for y := dim.Y - 1; y >= 0; y-- {
				if err := row(y, z); err != nil {
					return err
				}
			}
		}
	} else {
		for y := dim.Y - 1; y >= 0; y-- {
			for z := 0; z < dim.Z; z++ {
				if err := row(y, z); err != nil {
					return err
				}
			}
		}
	}
	return bw.Flush()
}

// WriteChunkFile writes c to path with EncodeChunk.
func WriteChunkFile(path string, c *Chunk, vertical bool) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrFileNotFound, path, err)
	}
	if err := EncodeChunk(file, c, vertical); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
