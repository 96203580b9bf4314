// Command bike is a terminal front end for the bike simulation.
//
//	bike [flags] level...
//
// Levels are Tiled maps (.tmj, .json) or ASCII maps (anything else).
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/setanarut/bike"
	"github.com/setanarut/bike/utils/records"
	"github.com/setanarut/bike/utils/tiled"
	"github.com/setanarut/bike/utils/tilemap"
)

type options struct {
	levels   []string
	tuning   bike.Tuning
	records  string
	logPath  string
	mute     bool
	headless float64
	cellSize float64
	smooth   bool
}

func main() {
	var (
		level      = flag.String("level", "", "level file, in addition to the positional arguments")
		tuningPath = flag.String("tuning", "", "YAML file overriding the physics constants")
		recordPath = flag.String("records", defaultRecordsPath(), "YAML file storing the best times")
		logPath    = flag.String("log", "", "JSON log file, logging is off when empty")
		mute       = flag.Bool("mute", false, "disable sound")
		headless   = flag.Float64("headless", 0, "run each level this many seconds with the accelerator held and print the outcome")
		cellSize   = flag.Float64("cell", 32, "world size of an ASCII map cell")
		smooth     = flag.Bool("smooth", false, "cut the corners of ASCII map walls into ramps")
	)
	flag.Parse()

	opts := options{
		levels:   flag.Args(),
		records:  *recordPath,
		logPath:  *logPath,
		mute:     *mute,
		headless: *headless,
		cellSize: *cellSize,
		smooth:   *smooth,
	}
	if *level != "" {
		opts.levels = append([]string{*level}, opts.levels...)
	}
	if len(opts.levels) == 0 {
		fmt.Fprintln(os.Stderr, "usage: bike [flags] level...")
		flag.PrintDefaults()
		os.Exit(2)
	}

	tuning, err := readTuning(*tuningPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "bike: %v\n", err)
		os.Exit(1)
	}
	opts.tuning = tuning

	if err := run(context.Background(), opts); err != nil {
		fmt.Fprintf(os.Stderr, "bike: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, opts options) error {
	store, err := records.Open(opts.records)
	if err != nil {
		return err
	}
	if opts.headless > 0 {
		return runHeadless(ctx, opts, store, os.Stdout)
	}
	g, err := newGame(opts, store)
	if err != nil {
		return err
	}
	defer g.close()
	return g.run(ctx)
}

func readTuning(path string) (bike.Tuning, error) {
	if path == "" {
		return bike.DefaultTuning(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return bike.Tuning{}, err
	}
	defer f.Close()
	return bike.LoadTuning(f)
}

func defaultRecordsPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "bike-records.yaml"
	}
	return filepath.Join(dir, "bike", "records.yaml")
}

// loadLevel reads the level at path, choosing the format by extension.
func loadLevel(path string, opts options) (*bike.Level, error) {
	var src bike.LevelSource
	switch strings.ToLower(filepath.Ext(path)) {
	case ".tmj", ".json":
		src = tiled.Source{Path: path}
	default:
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		m, err := tilemap.Parse(f, name, opts.cellSize)
		if err != nil {
			return nil, err
		}
		m.Smooth = opts.smooth
		src = m
	}
	level, err := bike.LoadLevel(src, opts.tuning.StarRadius)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return level, nil
}
