// parkload imports legacy SC6/SV6 files into the world model, records their
// required objects in the object index, and optionally archives a snapshot
// of each imported world.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"parklegacy.dev/internal/config"
	"parklegacy.dev/internal/importer"
	"parklegacy.dev/internal/objects"
	"parklegacy.dev/internal/snapshot"
	"parklegacy.dev/internal/world"
)

func main() {
	var (
		configPath = flag.String("config", "", "path to config.yaml (optional)")
		jobs       = flag.Int("jobs", 4, "max files imported concurrently")
		verbose    = flag.Bool("v", false, "log per-file details")
	)
	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: parkload [flags] file.SC6|file.SV6 ...")
		os.Exit(2)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	index, err := objects.Open(cfg.ObjectIndexPath)
	if err != nil {
		log.Fatalf("object index: %v", err)
	}
	defer index.Close()

	var g errgroup.Group
	g.SetLimit(*jobs)
	for _, path := range flag.Args() {
		path := path
		g.Go(func() error {
			return importOne(cfg, index, path, *verbose)
		})
	}
	if err := g.Wait(); err != nil {
		log.Fatalf("import: %v", err)
	}
}

// importOne runs one file through the full pipeline. Each file gets its own
// importer and world, so files import concurrently without shared state
// beyond the object index.
func importOne(cfg config.Config, index *objects.Index, path string, verbose bool) error {
	im := importer.New(importer.Options{
		AllowIncorrectChecksum: cfg.AllowLoadingWithIncorrectChecksum,
		Objects:                index,
	})

	required, err := im.Load(path)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	// Resolve the requirements against what the index already holds before
	// this file's own entries are recorded into it.
	missing, err := index.Missing(required)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	if err := index.Record(filepath.Base(path), required); err != nil {
		return fmt.Errorf("%s: record objects: %w", path, err)
	}
	if verbose && len(missing) > 0 {
		names := make([]string, len(missing))
		for i, e := range missing {
			names[i] = e.Identifier()
		}
		log.Printf("%s: %d objects not in index: %s", path, len(missing), strings.Join(names, ", "))
	}

	w := world.New()
	result, err := im.Import(w)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	for _, warn := range result.Warnings {
		log.Printf("%s: %s", path, warn)
	}
	if verbose {
		log.Printf("%s: park rating %d, %d guests, %d spawns, ticks %d",
			path, w.Park.Rating, w.Park.GuestsInPark, len(w.PeepSpawns), w.GameTicks)
	}

	if cfg.SnapshotDir == "" {
		return nil
	}
	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	snapPath := filepath.Join(cfg.SnapshotDir, base+".snap.zst")
	snap := snapshot.SnapshotV1{
		Header: snapshot.Header{
			Version:    1,
			SourceFile: filepath.Base(path),
			ParkName:   w.Scenario.Name,
			GameTicks:  w.GameTicks,
		},
		World:    w,
		Warnings: result.Warnings,
	}
	if err := snapshot.WriteSnapshot(snapPath, snap); err != nil {
		return fmt.Errorf("%s: snapshot: %w", path, err)
	}
	if verbose {
		log.Printf("%s: snapshot written to %s", path, snapPath)
	}
	return nil
}
