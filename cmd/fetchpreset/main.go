package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	get "github.com/hashicorp/go-getter"

	"github.com/OCharnyshevich/chunkstore/pkg/gen"
)

func main() {
	var (
		src = flag.String("src", "", "go-getter source of the preset directory, e.g. git::https://example.com/presets.git//flat")
		out = flag.String("o", "./presets", "output dir path")
	)
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	if *src == "" {
		log.Error("source required")
		os.Exit(2)
	}
	if *out == "" {
		log.Error("output dir path required")
		os.Exit(2)
	}

	if err := os.RemoveAll(*out); err != nil {
		log.Error("clear output dir", "path", *out, "error", err)
		os.Exit(1)
	}

	log.Info("start downloading presets", "src", *src, "path", *out)
	if err := get.Get(*out, *src); err != nil {
		log.Error("download presets", "error", err)
		os.Exit(1)
	}

	presets, err := checkPresets(*out)
	if err != nil {
		log.Error("invalid presets", "error", err)
		os.Exit(1)
	}
	for name, p := range presets {
		log.Info("preset ready", "file", name, "name", p.Name, "layers", len(p.Layers), "surface", p.SurfaceHeight())
	}
	log.Info("done downloading presets", "path", *out, "count", len(presets))
}

// checkPresets parses every .yaml/.yml file in dir and fails on the first
// preset that does not fit in a chunk.
func checkPresets(dir string) (map[string]gen.Preset, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read preset dir: %w", err)
	}
	presets := make(map[string]gen.Preset)
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(e.Name()))
		if ext != ".yaml" && ext != ".yml" {
			continue
		}
		p, err := gen.LoadPreset(filepath.Join(dir, e.Name()))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", e.Name(), err)
		}
		presets[e.Name()] = p
	}
	return presets, nil
}
