package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/davecgh/go-spew/spew"
	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"
	"github.com/tobybellwood/govcms-composer-test/pkg/cmd"
	"github.com/tobybellwood/govcms-composer-test/pkg/config"
	"github.com/tobybellwood/govcms-composer-test/pkg/ops"
	"github.com/tobybellwood/govcms-composer-test/pkg/runlock"
)

func main() {
	c := cli.NewCLI("lockmake", "0.1.0")
	c.Args = os.Args[1:]
	c.Commands = map[string]cli.CommandFactory{
		"generate": func() (cli.Command, error) {
			return cmd.New(
				"generate",
				"Generate the drupal-org make files from the lock snapshot",
				generateF,
			), nil
		},
		"inspect": func() (cli.Command, error) {
			return cmd.New(
				"inspect",
				"Show how the lock snapshot translates into make documents",
				inspectF,
			), nil
		},
	}

	exitStatus, err := c.Run()
	if err != nil {
		log.Println(err)
	}

	os.Exit(exitStatus)
}

func generateF(ctx context.Context, opts struct {
	Lock     string `short:"l" long:"lock" description:"path to the lock snapshot"`
	Manifest string `short:"m" long:"manifest" description:"path to the manifest declaring requirements"`
	Out      string `short:"o" long:"out" description:"directory to write the make files into"`
	Debug    bool   `long:"debug" description:"log classification decisions"`
}) error {
	cfg, err := loadConfig(opts.Lock, opts.Manifest, opts.Out)
	if err != nil {
		return err
	}

	level := hclog.Info

	if opts.Debug {
		level = hclog.Debug
	}

	L := hclog.New(&hclog.LoggerOptions{
		Name:  "lockmake",
		Level: level,
	})

	var lr ops.LockRead
	lr.SetLogger(L)
	lr.LockPath = cfg.LockPath
	lr.ManifestPath = cfg.ManifestPath

	lock, required, err := lr.Read()
	if err != nil {
		return err
	}

	var mg ops.MakeGenerate
	mg.SetLogger(L)

	full, core, err := mg.Generate(lock, required)
	if err != nil {
		return err
	}

	var showLock bool
	cleanup, err := runlock.Acquire(ctx, filepath.Join(cfg.OutputDir, ".lockmake-lock"), func() {
		if !showLock {
			fmt.Printf("Lock detected, waiting...\n")
			showLock = true
		}
	})
	if err != nil {
		return err
	}

	defer cleanup()

	var mw ops.MakeWrite
	mw.SetLogger(L)
	mw.Dir = cfg.OutputDir

	err = mw.Write(full, core)
	if err != nil {
		return err
	}

	fmt.Printf("Wrote %s and %s (%d projects, %d libraries)\n",
		filepath.Join(cfg.OutputDir, ops.FullManifest),
		filepath.Join(cfg.OutputDir, ops.CoreManifest),
		full.Projects.Len(),
		full.Libraries.Len(),
	)

	return nil
}

func inspectF(ctx context.Context, opts struct {
	Lock     string `short:"l" long:"lock" description:"path to the lock snapshot"`
	Manifest string `short:"m" long:"manifest" description:"path to the manifest declaring requirements"`
	Package  string `short:"p" long:"package" description:"dump the named locked package instead of the documents"`
	Trace    bool   `long:"trace" description:"log in trace mode"`
}) error {
	cfg, err := loadConfig(opts.Lock, opts.Manifest, "")
	if err != nil {
		return err
	}

	level := hclog.Debug

	if opts.Trace {
		level = hclog.Trace
	}

	L := hclog.New(&hclog.LoggerOptions{
		Name:  "lockmake-inspect",
		Level: level,
	})

	var lr ops.LockRead
	lr.SetLogger(L)
	lr.LockPath = cfg.LockPath
	lr.ManifestPath = cfg.ManifestPath

	lock, required, err := lr.Read()
	if err != nil {
		return err
	}

	if opts.Package != "" {
		for _, pkg := range lock.Packages {
			if pkg.Name == opts.Package {
				spew.Dump(pkg)
				return nil
			}
		}

		fmt.Printf("package not present in lock: %s\n", opts.Package)
		return nil
	}

	var mg ops.MakeGenerate
	mg.SetLogger(L)

	full, core, err := mg.Generate(lock, required)
	if err != nil {
		return err
	}

	spew.Dump(full)
	spew.Dump(core)

	return nil
}

func loadConfig(lock, manifest, out string) (*config.Config, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}

	if lock != "" {
		cfg.LockPath = lock
	}

	if manifest != "" {
		cfg.ManifestPath = manifest
	}

	if out != "" {
		cfg.OutputDir = out
	}

	return cfg, nil
}
