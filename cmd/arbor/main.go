package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/gekko3d/arbor"
)

type options struct {
	paramsPath   string
	seed         int64
	seedSet      bool
	objPath      string
	previewPath  string
	previewSize  int
	variants     int
	workers      int
	watch        bool
	debug        bool
	dumpDefaults string
}

func main() {
	var opts options
	flag.StringVar(&opts.paramsPath, "params", "", "tree parameters file (.json, .yaml, .yml or .toml); defaults are used when empty")
	flag.Int64Var(&opts.seed, "seed", 0, "override the seed from the parameters file")
	flag.StringVar(&opts.objPath, "obj", "", "write the tree as Wavefront OBJ to this path")
	flag.StringVar(&opts.previewPath, "preview", "", "write a PNG silhouette preview to this path")
	flag.IntVar(&opts.previewSize, "preview-size", 512, "preview width and height in pixels")
	flag.IntVar(&opts.variants, "variants", 1, "number of trees to grow from consecutive seeds")
	flag.IntVar(&opts.workers, "workers", 0, "maximum concurrent trees when -variants > 1 (0 = unlimited)")
	flag.BoolVar(&opts.watch, "watch", false, "regenerate whenever the parameters file changes")
	flag.BoolVar(&opts.debug, "debug", false, "enable debug logging")
	flag.StringVar(&opts.dumpDefaults, "dump-defaults", "", "write the default parameters to this path and exit")
	flag.Parse()
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			opts.seedSet = true
		}
	})

	logger := arbor.NewDefaultLogger("arbor", opts.debug)
	if err := opts.validate(); err != nil {
		logger.Errorf("%v", err)
		os.Exit(2)
	}

	if opts.dumpDefaults != "" {
		if err := arbor.SaveParams(opts.dumpDefaults, arbor.DefaultParams()); err != nil {
			logger.Errorf("write defaults: %v", err)
			os.Exit(1)
		}
		logger.Infof("wrote default parameters to %s", opts.dumpDefaults)
		return
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, opts, logger); err != nil {
		if !opts.watch {
			logger.Errorf("%v", err)
			os.Exit(1)
		}
		// The file may be mid-edit; the next save triggers another attempt.
		logger.Warnf("%v", err)
	}

	if opts.watch {
		if err := watchParams(ctx, opts.paramsPath, logger, func() error {
			return run(ctx, opts, logger)
		}); err != nil {
			logger.Errorf("watch: %v", err)
			os.Exit(1)
		}
	}
}

// validate rejects flag combinations before any work is done.
func (o options) validate() error {
	if o.watch && o.paramsPath == "" {
		return errors.New("-watch needs -params")
	}
	if o.variants < 1 {
		return fmt.Errorf("-variants must be at least 1, got %d", o.variants)
	}
	if o.previewSize <= 0 {
		return fmt.Errorf("-preview-size must be positive, got %d", o.previewSize)
	}
	return nil
}

func loadParams(opts options) (arbor.Params, error) {
	params := arbor.DefaultParams()
	if opts.paramsPath != "" {
		var err error
		if params, err = arbor.LoadParams(opts.paramsPath); err != nil {
			return arbor.Params{}, err
		}
	}
	if opts.seedSet {
		params.Seed = opts.seed
	}
	return params, nil
}

func run(ctx context.Context, opts options, logger arbor.Logger) error {
	params, err := loadParams(opts)
	if err != nil {
		return err
	}

	if opts.variants <= 1 {
		tree := arbor.NewTree(params, arbor.WithLogger(logger))
		if err := tree.Generate(); err != nil {
			return err
		}
		return emit(tree, opts.objPath, opts.previewPath, opts.previewSize, logger)
	}

	seeds := make([]int64, opts.variants)
	for i := range seeds {
		seeds[i] = params.Seed + int64(i)
	}
	trees, err := arbor.GenerateForest(ctx, params, seeds, opts.workers, arbor.WithLogger(logger))
	if err != nil {
		return err
	}
	for i, tree := range trees {
		if err := emit(tree, variantPath(opts.objPath, i), variantPath(opts.previewPath, i), opts.previewSize, logger); err != nil {
			return err
		}
	}
	return nil
}

func emit(tree *arbor.Tree, objPath, previewPath string, previewSize int, logger arbor.Logger) error {
	logger.Infof("seed %d: Vertex Count: %d | Triangle Count: %d", tree.Params.Seed, tree.VertexCount(), tree.TriangleCount())

	if objPath != "" {
		if err := writeFile(objPath, func(f *os.File) error { return arbor.WriteOBJ(f, tree) }); err != nil {
			return fmt.Errorf("write %s: %w", objPath, err)
		}
		logger.Infof("wrote %s", objPath)
	}
	if previewPath != "" {
		popts := arbor.DefaultPreviewOptions()
		popts.Width, popts.Height = previewSize, previewSize
		if err := writeFile(previewPath, func(f *os.File) error { return arbor.WritePreviewPNG(f, tree, popts) }); err != nil {
			return fmt.Errorf("write %s: %w", previewPath, err)
		}
		logger.Infof("wrote %s", previewPath)
	}
	return nil
}

func writeFile(path string, fn func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := fn(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// variantPath turns tree.obj into tree_3.obj for the fourth variant.
func variantPath(path string, i int) string {
	if path == "" {
		return ""
	}
	ext := filepath.Ext(path)
	return fmt.Sprintf("%s_%d%s", strings.TrimSuffix(path, ext), i, ext)
}
