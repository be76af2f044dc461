package main

import (
	"fmt"
	"time"

	"github.com/philipparndt/meshcompare/internal/app"
	"github.com/philipparndt/meshcompare/internal/compare"
	"github.com/philipparndt/meshcompare/internal/gui"
	"github.com/philipparndt/meshcompare/internal/loader"
	"github.com/spf13/cobra"
)

const watchDebounce = 500 * time.Millisecond

var viewCmd = &cobra.Command{
	Use:   "view",
	Short: "Open the comparison window (raylib)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runWindow(app.Run)
	},
}

var guiCmd = &cobra.Command{
	Use:   "gui",
	Short: "Open the comparison window (fyne, software rendering)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runWindow(gui.Run)
	},
}

func init() {
	for _, cmd := range []*cobra.Command{viewCmd, guiCmd} {
		cmd.Flags().BoolVar(&opts.Watch, "watch", false, "reload a case when one of its files changes")
		rootCmd.AddCommand(cmd)
	}
}

func runWindow(run func(*compare.Viewer, int) error) error {
	v, source, err := setup()
	if err != nil {
		return err
	}
	defer v.Close()

	if opts.Watch {
		if fs, ok := source.(loader.FileSource); ok {
			fw, err := v.Watch(fs, watchDebounce)
			if err != nil {
				fmt.Printf("Warning: Failed to set up file watching: %v\n", err)
			} else {
				defer fw.Close()
			}
		} else {
			fmt.Println("Warning: --watch only works for local folders")
		}
	}

	return run(v, opts.Width)
}
