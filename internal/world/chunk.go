package world

import (
	"errors"
	"fmt"

	"craftgen/internal/random"

	"github.com/go-gl/mathgl/mgl32"
)

// MaxChunkHeight bounds Dimension.Y so column heights fit in a byte.
const MaxChunkHeight = 256

var (
	ErrInvalidDimension = errors.New("world: invalid dimension")
	ErrInvalidHeightMap = errors.New("world: invalid height map")
	ErrInvalidPosition  = errors.New("world: invalid position")
	ErrInvalidType      = errors.New("world: invalid block type")
	ErrInvalidLayers    = errors.New("world: invalid layers")
	ErrDuplicateChunk   = errors.New("world: duplicate chunk")
	ErrFileNotFound     = errors.New("world: file not found")
)

// ChunkPos is a chunk's position on the chunk grid.
type ChunkPos struct {
	X, Z int
}

// Dimension is a chunk's extent in blocks.
type Dimension struct {
	X, Y, Z int
}

func (d Dimension) volume() int {
	return d.X * d.Y * d.Z
}

// Chunk is a column-major block volume with a per-column height map.
// Blocks are stored top row first.
type Chunk struct {
	position  ChunkPos
	dimension Dimension
	blocks    []BlockType
	heights   []uint8
	dirty     bool
}

// NewChunk validates its inputs and fills the chunk from heights, drawing
// layer thicknesses from rng.
func NewChunk(position ChunkPos, dim Dimension, heights []uint8, layers Layers, rng *random.Random) (*Chunk, error) {
	if position.X < 0 || position.Z < 0 {
		return nil, fmt.Errorf("%w: {%d, %d}", ErrInvalidPosition, position.X, position.Z)
	}
	if dim.X <= 0 || dim.Y <= 0 || dim.Z <= 0 || dim.Y > MaxChunkHeight {
		return nil, fmt.Errorf("%w: {%d, %d, %d}", ErrInvalidDimension, dim.X, dim.Y, dim.Z)
	}
	if len(heights) != dim.X*dim.Z {
		return nil, fmt.Errorf("%w: %d entries, want %d", ErrInvalidHeightMap, len(heights), dim.X*dim.Z)
	}
	for i, h := range heights {
		if int(h) >= dim.Y {
			return nil, fmt.Errorf("%w: height[%d] = %d exceeds %d", ErrInvalidHeightMap, i, h, dim.Y-1)
		}
	}
	if err := layers.Validate(); err != nil {
		return nil, err
	}
	if rng == nil || !rng.IsInitialized() {
		return nil, random.ErrUninitialized
	}

	c := &Chunk{
		position:  position,
		dimension: dim,
		blocks:    make([]BlockType, dim.volume()),
		heights:   append([]uint8(nil), heights...),
		dirty:     true,
	}
	if err := c.generateBlocks(layers, rng); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Chunk) generateBlocks(layers Layers, rng *random.Random) error {
	vmin, vmax := uint32(layers.LayerVariationMin), uint32(layers.LayerVariationMax)
	for y := c.dimension.Y - 1; y >= 0; y-- {
		for z := 0; z < c.dimension.Z; z++ {
			for x := 0; x < c.dimension.X; x++ {
				h := int(c.heights[c.columnIndex(x, z)])
				var b BlockType
				switch {
				case y == 0:
					b = BlockBoundary
				case y > h:
					if y <= layers.WaterLevel {
						b = BlockWater
					} else {
						b = BlockAir
					}
				case y == h:
					b = layers.surface(h)
				default:
					variation, err := rng.Unsigned(vmin, vmax)
					if err != nil {
						return err
					}
					if h-y <= int(variation) {
						b = layers.subsurface(h)
					} else {
						b = BlockStone
					}
				}
				c.blocks[c.blockIndex(x, y, z)] = b
			}
		}
	}
	return nil
}

func (c *Chunk) blockIndex(x, y, z int) int {
	return ((c.dimension.Y-1-y)*c.dimension.Z+z)*c.dimension.X + x
}

func (c *Chunk) columnIndex(x, z int) int {
	return z*c.dimension.X + x
}

func (c *Chunk) inBounds(x, y, z int) bool {
	return x >= 0 && x < c.dimension.X &&
		y >= 0 && y < c.dimension.Y &&
		z >= 0 && z < c.dimension.Z
}

func (c *Chunk) checkPosition(x, y, z int) error {
	if !c.inBounds(x, y, z) {
		return fmt.Errorf("%w: {%d, %d, %d} outside {%d, %d, %d}", ErrInvalidPosition,
			x, y, z, c.dimension.X, c.dimension.Y, c.dimension.Z)
	}
	return nil
}

// At returns the block at local coordinates.
func (c *Chunk) At(x, y, z int) (BlockType, error) {
	if err := c.checkPosition(x, y, z); err != nil {
		return BlockAir, err
	}
	return c.blocks[c.blockIndex(x, y, z)], nil
}

// HeightAt returns the recorded surface row of column (x, z).
func (c *Chunk) HeightAt(x, z int) (uint8, error) {
	if err := c.checkPosition(x, 0, z); err != nil {
		return 0, err
	}
	return c.heights[c.columnIndex(x, z)], nil
}

func (c *Chunk) IsEmpty(x, y, z int) (bool, error) {
	b, err := c.At(x, y, z)
	return b == BlockAir, err
}

// Set writes t at local coordinates and keeps the column height in step:
// replacing the surface block with Air or Water settles the height down to
// the next solid block, placing a solid block above the surface raises it.
func (c *Chunk) Set(x, y, z int, t BlockType) error {
	if !t.Valid() {
		return fmt.Errorf("%w: 0x%02x", ErrInvalidType, uint8(t))
	}
	if err := c.checkPosition(x, y, z); err != nil {
		return err
	}

	c.blocks[c.blockIndex(x, y, z)] = t
	c.dirty = true

	col := c.columnIndex(x, z)
	h := int(c.heights[col])
	switch {
	case !t.IsSolid() && y == h:
		for h > 0 && !c.blocks[c.blockIndex(x, h, z)].IsSolid() {
			h--
		}
		c.heights[col] = uint8(h)
	case t.IsSolid() && y > h:
		c.heights[col] = uint8(y)
	}
	return nil
}

func (c *Chunk) Dimension() Dimension {
	return c.dimension
}

func (c *Chunk) Position() ChunkPos {
	return c.position
}

// IsDirty reports whether the chunk changed since the last SetClean.
func (c *Chunk) IsDirty() bool {
	return c.dirty
}

func (c *Chunk) SetClean() {
	c.dirty = false
}

// Origin returns the world block coordinates of local (0, 0, 0).
func (c *Chunk) Origin() (x, z int) {
	return c.position.X * c.dimension.X, c.position.Z * c.dimension.Z
}

// ActiveBlocks returns the world positions of all non-Air blocks.
func (c *Chunk) ActiveBlocks() []mgl32.Vec3 {
	ox, oz := c.Origin()
	var positions []mgl32.Vec3
	for y := 0; y < c.dimension.Y; y++ {
		for z := 0; z < c.dimension.Z; z++ {
			for x := 0; x < c.dimension.X; x++ {
				if c.blocks[c.blockIndex(x, y, z)] != BlockAir {
					positions = append(positions, mgl32.Vec3{float32(ox + x), float32(y), float32(oz + z)})
				}
			}
		}
	}
	return positions
}

// Counts tallies blocks by type.
func (c *Chunk) Counts() map[BlockType]int {
	counts := make(map[BlockType]int)
	for _, b := range c.blocks {
		counts[b]++
	}
	return counts
}

func (c *Chunk) String() string {
	return fmt.Sprintf("<CHUNK> (POS. {%d, %d}, DIM. {%d, %d, %d})",
		c.position.X, c.position.Z, c.dimension.X, c.dimension.Y, c.dimension.Z)
}
