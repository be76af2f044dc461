package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/philipparndt/meshcompare/internal/compare"
	"github.com/philipparndt/meshcompare/internal/config"
	"github.com/philipparndt/meshcompare/internal/loader"
	"github.com/philipparndt/meshcompare/version"
	"github.com/spf13/cobra"
)

var opts = config.Options{Width: config.DefaultWidth}

// logOutput receives load progress and errors unless --quiet is set
var logOutput io.Writer = os.Stderr

var rootCmd = &cobra.Command{
	Use:   "meshcompare",
	Short: "Compare original and repaired meshes side by side",
	Long: `meshcompare shows every test case as a row of two synchronized 3D views:
the original mesh with its self-intersecting faces highlighted in red, and
the repaired mesh. Each row has a clipping plane to look inside the meshes.`,
	Version:       version.GetFullVersion(),
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&opts.ConfigFile, "config", "c", "", "test case manifest (YAML); built-in cases when empty")
	flags.StringVarP(&opts.DataFolder, "data", "d", "", "folder or http(s) URL holding the case files")
	flags.IntVarP(&opts.Width, "width", "w", config.DefaultWidth, "surface width in pixels")
	flags.BoolVarP(&opts.Quiet, "quiet", "q", false, "do not log load progress and errors")
}

// setup loads the manifest and starts fetching every case
func setup() (*compare.Viewer, loader.Source, error) {
	if opts.Width < 1 {
		return nil, nil, fmt.Errorf("width must be positive, got %d", opts.Width)
	}

	manifest, err := config.Load(opts)
	if err != nil {
		return nil, nil, err
	}
	source, err := loader.NewSource(manifest.Folder, nil)
	if err != nil {
		return nil, nil, err
	}

	v, err := compare.New(manifest)
	if err != nil {
		return nil, nil, err
	}
	out := logOutput
	if opts.Quiet {
		out = io.Discard
	}
	v.SetLogger(log.New(out, "meshcompare: ", log.LstdFlags))
	v.Load(source)
	return v, source, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
