package config

import (
	"errors"
	"fmt"
	"math"
	"os"

	"craftgen/internal/noise"
	"craftgen/internal/world"

	"gopkg.in/yaml.v3"
)

var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config holds the generator configuration.
type Config struct {
	Seed        uint32  `yaml:"seed"`
	WorldSize   int     `yaml:"world_size"`
	ChunkWidth  int     `yaml:"chunk_width"`
	ChunkHeight int     `yaml:"chunk_height"`
	Octaves     uint    `yaml:"octaves"`
	Amplitude   float64 `yaml:"amplitude"`
	Persistence float64 `yaml:"persistence"`
	Kernel      string  `yaml:"kernel"` // "linear", "cosine" or "smoothstep"
	Workers     int     `yaml:"workers"`
	Layers      Layers  `yaml:"layers"`
}

// Default returns a Config matching world.DefaultParams.
func Default() *Config {
	p := world.DefaultParams()
	return &Config{
		Seed:        p.Seed,
		WorldSize:   p.Size,
		ChunkWidth:  p.ChunkWidth,
		ChunkHeight: p.ChunkHeight,
		Octaves:     p.Noise.Octaves,
		Amplitude:   p.Noise.Amplitude,
		Persistence: p.Noise.Persistence,
		Kernel:      p.Noise.Kernel.String(),
		Workers:     p.Workers,
		Layers:      layersFrom(p.Layers),
	}
}

// Load reads a YAML file over the defaults, so omitted keys keep their
// default values.
func Load(path string) (*Config, error) {
	cfg := Default()
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Merge applies file-loaded config values into cfg, but only for fields
// that were NOT explicitly set via CLI flags. explicitFlags contains the
// flag names that were explicitly provided on the command line.
func Merge(cfg *Config, fromFile *Config, explicitFlags map[string]bool) {
	if !explicitFlags["seed"] {
		cfg.Seed = fromFile.Seed
	}
	if !explicitFlags["size"] {
		cfg.WorldSize = fromFile.WorldSize
	}
	if !explicitFlags["chunk-width"] {
		cfg.ChunkWidth = fromFile.ChunkWidth
	}
	if !explicitFlags["chunk-height"] {
		cfg.ChunkHeight = fromFile.ChunkHeight
	}
	if !explicitFlags["octaves"] {
		cfg.Octaves = fromFile.Octaves
	}
	if !explicitFlags["amplitude"] {
		cfg.Amplitude = fromFile.Amplitude
	}
	if !explicitFlags["persistence"] {
		cfg.Persistence = fromFile.Persistence
	}
	if !explicitFlags["kernel"] {
		cfg.Kernel = fromFile.Kernel
	}
	if !explicitFlags["workers"] {
		cfg.Workers = fromFile.Workers
	}
	cfg.Layers = fromFile.Layers
}

// ParseSeed narrows a command-line seed to the 32-bit world seed.
func ParseSeed(v uint64) (uint32, error) {
	if v > math.MaxUint32 {
		return 0, fmt.Errorf("%w: seed %d exceeds %d", ErrInvalidConfig, v, uint64(math.MaxUint32))
	}
	return uint32(v), nil
}

// WorldParams converts cfg into world build parameters.
func (cfg *Config) WorldParams() (world.Params, error) {
	kernel, err := noise.ParseKernel(cfg.Kernel)
	if err != nil {
		return world.Params{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	p := world.Params{
		Seed:        cfg.Seed,
		Size:        cfg.WorldSize,
		ChunkWidth:  cfg.ChunkWidth,
		ChunkHeight: cfg.ChunkHeight,
		Noise: noise.Params{
			Octaves:     cfg.Octaves,
			Amplitude:   cfg.Amplitude,
			Persistence: cfg.Persistence,
			Kernel:      kernel,
		},
		Layers:  cfg.Layers.toWorld(),
		Workers: cfg.Workers,
	}
	if err := p.Validate(); err != nil {
		return world.Params{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return p, nil
}

// Validate reports whether cfg describes a buildable world.
func (cfg *Config) Validate() error {
	if cfg.Workers < 0 {
		return fmt.Errorf("%w: workers %d", ErrInvalidConfig, cfg.Workers)
	}
	_, err := cfg.WorldParams()
	return err
}
