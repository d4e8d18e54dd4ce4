package world

import (
	"fmt"
	"sort"
	"sync"

	"github.com/go-gl/mathgl/mgl32"
)

// ChunkStore holds the chunks of one world. All chunks share a dimension,
// which lets it translate world block coordinates.
type ChunkStore struct {
	dim      Dimension
	chunks   map[ChunkPos]*Chunk
	mu       sync.RWMutex
	modCount uint64 // Increases on any chunk add
}

func NewChunkStore(dim Dimension) *ChunkStore {
	return &ChunkStore{
		dim:    dim,
		chunks: make(map[ChunkPos]*Chunk),
	}
}

// Dimension returns the shared chunk dimension.
func (cs *ChunkStore) Dimension() Dimension {
	return cs.dim
}

// AddChunk inserts c. A chunk already stored at the same position is an error.
func (cs *ChunkStore) AddChunk(c *Chunk) error {
	if c.dimension != cs.dim {
		return fmt.Errorf("%w: chunk {%d, %d, %d}, store {%d, %d, %d}", ErrInvalidDimension,
			c.dimension.X, c.dimension.Y, c.dimension.Z, cs.dim.X, cs.dim.Y, cs.dim.Z)
	}
	cs.mu.Lock()
	defer cs.mu.Unlock()
	if _, ok := cs.chunks[c.position]; ok {
		return fmt.Errorf("%w: {%d, %d}", ErrDuplicateChunk, c.position.X, c.position.Z)
	}
	cs.chunks[c.position] = c
	cs.modCount++
	return nil
}

// Chunk returns the chunk at pos, or nil.
func (cs *ChunkStore) Chunk(pos ChunkPos) *Chunk {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	return cs.chunks[pos]
}

func (cs *ChunkStore) Len() int {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	return len(cs.chunks)
}

// ModCount returns a counter that increases whenever the chunk set changes.
func (cs *ChunkStore) ModCount() uint64 {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	return cs.modCount
}

// Chunks returns every chunk ordered by Z, then X.
func (cs *ChunkStore) Chunks() []*Chunk {
	cs.mu.RLock()
	out := make([]*Chunk, 0, len(cs.chunks))
	for _, c := range cs.chunks {
		out = append(out, c)
	}
	cs.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i].position, out[j].position
		if a.Z != b.Z {
			return a.Z < b.Z
		}
		return a.X < b.X
	})
	return out
}

// chunkFromBlockCoords returns the chunk holding world column (x, z)
// and the local coordinates within it.
func (cs *ChunkStore) chunkFromBlockCoords(x, z int) (*Chunk, int, int, error) {
	pos := ChunkPos{X: floorDiv(x, cs.dim.X), Z: floorDiv(z, cs.dim.Z)}
	c := cs.Chunk(pos)
	if c == nil {
		return nil, 0, 0, fmt.Errorf("%w: no chunk at block {%d, %d}", ErrInvalidPosition, x, z)
	}
	return c, mod(x, cs.dim.X), mod(z, cs.dim.Z), nil
}

// Get returns the block at world coordinates.
func (cs *ChunkStore) Get(x, y, z int) (BlockType, error) {
	c, lx, lz, err := cs.chunkFromBlockCoords(x, z)
	if err != nil {
		return BlockAir, err
	}
	return c.At(lx, y, lz)
}

// Set writes the block at world coordinates.
func (cs *ChunkStore) Set(x, y, z int, t BlockType) error {
	c, lx, lz, err := cs.chunkFromBlockCoords(x, z)
	if err != nil {
		return err
	}
	return c.Set(lx, y, lz, t)
}

// HeightAt returns the surface row of world column (x, z).
func (cs *ChunkStore) HeightAt(x, z int) (int, error) {
	c, lx, lz, err := cs.chunkFromBlockCoords(x, z)
	if err != nil {
		return 0, err
	}
	h, err := c.HeightAt(lx, lz)
	return int(h), err
}

// ActiveBlocks returns the world positions of all non-Air blocks.
func (cs *ChunkStore) ActiveBlocks() []mgl32.Vec3 {
	var positions []mgl32.Vec3
	for _, c := range cs.Chunks() {
		positions = append(positions, c.ActiveBlocks()...)
	}
	return positions
}

// DirtyChunks returns the chunks modified since their last SetClean.
func (cs *ChunkStore) DirtyChunks() []*Chunk {
	var out []*Chunk
	for _, c := range cs.Chunks() {
		if c.IsDirty() {
			out = append(out, c)
		}
	}
	return out
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func mod(a, b int) int {
	m := a % b
	if m < 0 {
		m += b
	}
	return m
}
