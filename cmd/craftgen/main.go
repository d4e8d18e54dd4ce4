package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"craftgen/internal/config"
	"craftgen/internal/noise"
	"craftgen/internal/profiling"
	"craftgen/internal/world"

	"github.com/xlab/closer"
)

type outputOptions struct {
	dir      string
	colorize bool
	vertical bool
	pngScale int
	chunkX   int
	chunkZ   int
}

func main() {
	cfg := config.Default()
	var (
		configPath string
		verbose    bool
		seed       = uint64(cfg.Seed)
		out        outputOptions
	)

	flag.StringVar(&configPath, "config", "", "YAML config file")
	flag.Uint64Var(&seed, "seed", seed, "world seed (32-bit)")
	flag.IntVar(&cfg.WorldSize, "size", cfg.WorldSize, "world size in blocks (multiple of chunk-width)")
	flag.IntVar(&cfg.ChunkWidth, "chunk-width", cfg.ChunkWidth, "chunk width and depth in blocks")
	flag.IntVar(&cfg.ChunkHeight, "chunk-height", cfg.ChunkHeight, "chunk height in blocks (max 256)")
	flag.UintVar(&cfg.Octaves, "octaves", cfg.Octaves, "noise octaves")
	flag.Float64Var(&cfg.Amplitude, "amplitude", cfg.Amplitude, "first octave amplitude")
	flag.Float64Var(&cfg.Persistence, "persistence", cfg.Persistence, "per-octave amplitude factor in (0,1)")
	flag.StringVar(&cfg.Kernel, "kernel", cfg.Kernel, "interpolation kernel: linear, cosine, smoothstep")
	flag.IntVar(&cfg.Workers, "workers", cfg.Workers, "concurrent chunk builders")
	flag.StringVar(&out.dir, "out", "out", "output directory")
	flag.BoolVar(&out.colorize, "color", false, "write the height field as a colored P3 raster")
	flag.BoolVar(&out.vertical, "vertical", false, "export chunk slices along z instead of y")
	flag.IntVar(&out.pngScale, "png-scale", 4, "PNG preview upscale factor (0 disables)")
	flag.IntVar(&out.chunkX, "chunk-x", 0, "x position of the exported chunk")
	flag.IntVar(&out.chunkZ, "chunk-z", 0, "z position of the exported chunk")
	flag.BoolVar(&verbose, "v", false, "debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))

	parsed, err := config.ParseSeed(seed)
	if err != nil {
		log.Error("invalid flag", "flag", "seed", "error", err)
		os.Exit(2)
	}
	cfg.Seed = parsed

	if configPath != "" {
		fromFile, err := config.Load(configPath)
		if err != nil {
			log.Error("load config", "path", configPath, "error", err)
			os.Exit(1)
		}
		explicit := make(map[string]bool)
		flag.Visit(func(f *flag.Flag) { explicit[f.Name] = true })
		config.Merge(cfg, fromFile, explicit)
	}

	ctx, cancel := context.WithCancel(context.Background())
	closer.Bind(cancel)
	closer.Bind(func() {
		if top := profiling.TopN(5); top != "" {
			log.Info("profile", "top", top)
		}
	})

	closer.Checked(func() error {
		if err := run(ctx, cfg, out, log); err != nil {
			log.Error("craftgen failed", "error", err)
			return err
		}
		return nil
	}, false)
	closer.Close()
}

func run(ctx context.Context, cfg *config.Config, out outputOptions, log *slog.Logger) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	params, err := cfg.WorldParams()
	if err != nil {
		return err
	}

	w, err := world.Build(ctx, params, log)
	if err != nil {
		return err
	}
	log.Debug("world parameters",
		"workers", w.Params().Workers,
		"kernel", w.Params().Noise.Kernel.String(),
		"rng", w.Random().String())

	if err := os.MkdirAll(out.dir, 0o755); err != nil {
		return err
	}
	return writeOutputs(w, out, log)
}

func writeOutputs(w *world.World, out outputOptions, log *slog.Logger) error {
	defer profiling.Track("export")()

	ext := ".pgm"
	if out.colorize {
		ext = ".ppm"
	}
	fieldPath := filepath.Join(out.dir, "field"+ext)
	if err := noise.WriteFieldFile(fieldPath, w.Field(), out.colorize); err != nil {
		return err
	}
	log.Info("height field written", "path", fieldPath)

	if out.pngScale > 0 {
		pngPath := filepath.Join(out.dir, "field.png")
		if err := noise.WriteFieldPNG(pngPath, w.Field(), out.pngScale, true); err != nil {
			return err
		}
		log.Info("preview written", "path", pngPath, "scale", out.pngScale)
	}

	c := w.Chunk(out.chunkX, out.chunkZ)
	if c == nil {
		return fmt.Errorf("%w: no chunk at {%d, %d}", world.ErrInvalidPosition, out.chunkX, out.chunkZ)
	}
	layout := "horizontal"
	if out.vertical {
		layout = "vertical"
	}
	chunkPath := filepath.Join(out.dir, fmt.Sprintf("chunk_%d_%d_%s.ppm", out.chunkX, out.chunkZ, layout))
	if err := world.WriteChunkFile(chunkPath, c, out.vertical); err != nil {
		return err
	}
	counts := c.Counts()
	log.Info("chunk written",
		"path", chunkPath,
		"chunk", c.String(),
		"active", len(c.ActiveBlocks()),
		"water", counts[world.BlockWater],
		"stone", counts[world.BlockStone])
	return nil
}
