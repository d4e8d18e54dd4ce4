package world

import (
	"context"
	"fmt"
	"log/slog"

	"craftgen/internal/noise"
	"craftgen/internal/profiling"
	"craftgen/internal/random"

	"golang.org/x/sync/errgroup"
)

// Params describes a square world of Size×Size columns cut into
// ChunkWidth×ChunkWidth chunks.
type Params struct {
	Seed        uint32
	Size        int
	ChunkWidth  int
	ChunkHeight int
	Noise       noise.Params
	Layers      Layers
	Workers     int
}

func DefaultParams() Params {
	return Params{
		Seed:        0xDEADBEEF,
		Size:        64,
		ChunkWidth:  16,
		ChunkHeight: 128,
		Noise:       noise.DefaultParams(),
		Layers:      DefaultLayers(),
		Workers:     1,
	}
}

func (p Params) Validate() error {
	if p.ChunkWidth <= 0 || p.ChunkHeight <= 0 || p.ChunkHeight > MaxChunkHeight {
		return fmt.Errorf("%w: chunk {%d, %d}", ErrInvalidDimension, p.ChunkWidth, p.ChunkHeight)
	}
	if p.Size <= 0 || p.Size%p.ChunkWidth != 0 {
		return fmt.Errorf("%w: size %d is not a positive multiple of %d", ErrInvalidDimension, p.Size, p.ChunkWidth)
	}
	if err := p.Noise.Validate(); err != nil {
		return err
	}
	return p.Layers.Validate()
}

func (p Params) chunkDimension() Dimension {
	return Dimension{X: p.ChunkWidth, Y: p.ChunkHeight, Z: p.ChunkWidth}
}

// World is a generated height field and the chunks built from it.
type World struct {
	params Params
	rng    *random.Random
	field  *noise.HeightField
	store  *ChunkStore
}

type chunkJob struct {
	pos     ChunkPos
	heights []uint8
}

// Build synthesizes the height field for p and builds one chunk per tile.
// Each chunk draws its layers from its own SubSeed stream, so the result
// does not depend on p.Workers.
func Build(ctx context.Context, p Params, log *slog.Logger) (*World, error) {
	defer profiling.Track("world.Build")()
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	rng := random.New(p.Seed)
	field, err := noise.NewGenerator(rng).Generate(noise.Dimension{Width: p.Size, Height: p.Size}, noise.Point{}, noise.Point{}, p.Noise)
	if err != nil {
		return nil, fmt.Errorf("generate height field: %w", err)
	}
	log.Debug("height field generated", "size", p.Size, "min", field.Min(), "max", field.Max())

	tiles := p.Size / p.ChunkWidth
	jobs := make([]chunkJob, 0, tiles*tiles)
	for cz := 0; cz < tiles; cz++ {
		for cx := 0; cx < tiles; cx++ {
			tile, err := field.Slice(cx*p.ChunkWidth, cz*p.ChunkWidth, p.ChunkWidth, p.ChunkWidth)
			if err != nil {
				return nil, err
			}
			jobs = append(jobs, chunkJob{pos: ChunkPos{X: cx, Z: cz}, heights: tile.Rescale(p.ChunkHeight)})
		}
	}

	w := &World{
		params: p,
		rng:    rng,
		field:  field,
		store:  NewChunkStore(p.chunkDimension()),
	}

	workers := max(p.Workers, 1)
	if workers == 1 {
		for _, j := range jobs {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			if err := w.buildChunk(j, log); err != nil {
				return nil, err
			}
		}
	} else {
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(workers)
		for _, j := range jobs {
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				return w.buildChunk(j, log)
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
	}

	log.Info("world built",
		"seed", fmt.Sprintf("0x%08x", p.Seed),
		"size", p.Size,
		"chunks", w.store.Len(),
		"workers", workers)
	return w, nil
}

func (w *World) buildChunk(j chunkJob, log *slog.Logger) error {
	defer profiling.Track("world.buildChunk")()
	rng := random.New(SubSeed(w.params.Seed, j.pos.X, j.pos.Z))
	c, err := NewChunk(j.pos, w.params.chunkDimension(), j.heights, w.params.Layers, rng)
	if err != nil {
		return fmt.Errorf("chunk {%d, %d}: %w", j.pos.X, j.pos.Z, err)
	}
	if err := w.store.AddChunk(c); err != nil {
		return err
	}
	log.Debug("chunk built", "cx", j.pos.X, "cz", j.pos.Z)
	return nil
}

func (w *World) Seed() uint32 {
	return w.params.Seed
}

func (w *World) Params() Params {
	return w.params
}

// Field returns the normalized height field the chunks were cut from.
func (w *World) Field() *noise.HeightField {
	return w.field
}

func (w *World) Store() *ChunkStore {
	return w.store
}

// Random returns the world RNG, positioned after height field synthesis.
func (w *World) Random() *random.Random {
	return w.rng
}

// Chunk returns the chunk at grid position (cx, cz), or nil.
func (w *World) Chunk(cx, cz int) *Chunk {
	return w.store.Chunk(ChunkPos{X: cx, Z: cz})
}

// Block returns the block at world block coordinates.
func (w *World) Block(x, y, z int) (BlockType, error) {
	return w.store.Get(x, y, z)
}

func (w *World) SetBlock(x, y, z int, t BlockType) error {
	return w.store.Set(x, y, z, t)
}

// SurfaceHeight returns the surface row of world column (x, z).
func (w *World) SurfaceHeight(x, z int) (int, error) {
	return w.store.HeightAt(x, z)
}
