package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/OCharnyshevich/chunkstore/internal/config"
	"github.com/OCharnyshevich/chunkstore/pkg/chunk"
	"github.com/OCharnyshevich/chunkstore/pkg/gen"
)

func main() {
	cfg := config.DefaultConfig()
	configPath := flag.String("config", "chunkgen.yaml", "path to YAML config file")

	flag.Int64Var(&cfg.Seed, "seed", cfg.Seed, "world seed")
	flag.StringVar(&cfg.Generator, "generator", cfg.Generator, "terrain generator: flat or noise")
	flag.Int64Var(&cfg.ChunkX, "x", cfg.ChunkX, "chunk X coordinate")
	flag.Int64Var(&cfg.ChunkZ, "z", cfg.ChunkZ, "chunk Z coordinate")
	flag.StringVar(&cfg.Preset, "preset", cfg.Preset, "flat layer preset file")
	flag.BoolVar(&cfg.Checked, "checked", cfg.Checked, "verify every column through the validating accessors")
	flag.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level: debug, info, warn, error")
	flag.Parse()

	explicit := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { explicit[f.Name] = true })

	fromFile := *cfg
	if err := config.Load(*configPath, &fromFile); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	config.Merge(cfg, &fromFile, explicit)

	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	level, _ := cfg.Level()
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if err := run(cfg, log, os.Stdout); err != nil {
		log.Error("chunkgen failed", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, log *slog.Logger, out io.Writer) error {
	preset, err := cfg.LoadPreset()
	if err != nil {
		return fmt.Errorf("load preset: %w", err)
	}
	generator, err := gen.New(cfg.Generator, cfg.Seed, preset, log)
	if err != nil {
		return fmt.Errorf("create generator: %w", err)
	}

	c := chunk.New(cfg.ChunkX, cfg.ChunkZ)
	generator.Populate(c)

	if cfg.Checked {
		if err := verifyColumns(c); err != nil {
			return fmt.Errorf("verify chunk: %w", err)
		}
		log.Debug("columns verified")
	}

	s := summarize(c)
	x, z := c.Position()
	log.Info("chunk generated",
		"chunkX", x,
		"chunkZ", z,
		"generator", cfg.Generator,
		"seed", cfg.Seed,
		"origin", c.Origin(),
		"solid", s.Solid,
		"minHeight", s.MinHeight,
		"maxHeight", s.MaxHeight,
	)

	return printHeightmap(out, c)
}

// Summary holds aggregate statistics of one chunk.
type Summary struct {
	Solid     int
	MinHeight uint8
	MaxHeight uint8
}

func summarize(c *chunk.Chunk) Summary {
	s := Summary{MinHeight: 255}
	for i := 0; i < chunk.Volume; i++ {
		if gen.IsSolid(c.Block(uint16(i))) {
			s.Solid++
		}
	}
	for i := 0; i < chunk.Columns; i++ {
		h := c.Height(uint8(i))
		s.MinHeight = min(s.MinHeight, h)
		s.MaxHeight = max(s.MaxHeight, h)
	}
	return s
}

// verifyColumns cross-checks every stored height against a fresh scan of
// the column, reading through the validating accessors.
func verifyColumns(c *chunk.Chunk) error {
	v := c.Checked()
	for x := uint8(0); x < chunk.SizeX; x++ {
		for z := uint8(0); z < chunk.SizeZ; z++ {
			h, err := v.Height(x, z)
			if err != nil {
				return err
			}
			top, ok := c.TopBlock(x, z, gen.IsSolid)
			want := uint8(0)
			if ok {
				want = top + 1
			}
			if h != want {
				return fmt.Errorf("column (%d,%d): heightmap %d, scan %d", x, z, h, want)
			}
			if h == 0 {
				continue
			}
			b, err := v.Block(x, h-1, z)
			if err != nil {
				return err
			}
			if !gen.IsSolid(b) {
				return fmt.Errorf("column (%d,%d): block %d under height %d is not solid", x, z, b, h)
			}
		}
	}
	return nil
}

// printHeightmap writes the heightmap as a 16x16 grid, one row per z.
func printHeightmap(w io.Writer, c *chunk.Chunk) error {
	var sb strings.Builder
	for z := uint8(0); z < chunk.SizeZ; z++ {
		for x := uint8(0); x < chunk.SizeX; x++ {
			if x > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(&sb, "%3d", c.HeightAt(x, z))
		}
		sb.WriteByte('\n')
	}
	_, err := io.WriteString(w, sb.String())
	return err
}
