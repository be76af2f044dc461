// Package compare ties the comparison grid together: it owns the slots,
// clip planes and cameras, applies load results as they arrive and drives
// one frame of synchronization and composition at a time.
package compare

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/philipparndt/meshcompare/internal/compose"
	"github.com/philipparndt/meshcompare/internal/config"
	"github.com/philipparndt/meshcompare/internal/highlight"
	"github.com/philipparndt/meshcompare/internal/layout"
	"github.com/philipparndt/meshcompare/internal/loader"
	"github.com/philipparndt/meshcompare/internal/scene"
	"github.com/philipparndt/meshcompare/pkg/mesh"
	"github.com/philipparndt/meshcompare/pkg/watcher"
)

// queueSize bounds the results waiting for the next frame
const queueSize = 64

// RowState tracks what has arrived for one test case.
type RowState struct {
	// Settled is set once the intersection data finished loading,
	// successfully or not.
	Settled       bool
	Intersections highlight.Set
	Original      *scene.Mesh
	Repaired      *scene.Mesh
}

// Viewer is the state shared by every frontend.
type Viewer struct {
	Manifest   config.Manifest
	Grid       layout.Grid
	Clip       *scene.ClipController
	Registry   *scene.Registry
	Controls   *scene.OrbitControls
	Sync       *scene.Synchronizer
	Compositor *compose.Compositor
	Queue      *loader.Queue

	rows   []RowState
	loader *loader.Loader
	logger *log.Logger
	dirty  bool
}

// New builds every slot for manifest's cases
func New(manifest config.Manifest) (*Viewer, error) {
	rows := len(manifest.Cases)
	grid := layout.NewGrid(rows)
	clip := scene.NewClipController(rows)

	registry, err := scene.NewRegistry(rows, grid.Columns, clip)
	if err != nil {
		return nil, fmt.Errorf("failed to create slots: %w", err)
	}

	controls := scene.NewOrbitControls(registry.Master())
	controls.EnableDamping = true

	return &Viewer{
		Manifest:   manifest,
		Grid:       grid,
		Clip:       clip,
		Registry:   registry,
		Controls:   controls,
		Sync:       scene.NewSynchronizer(registry, controls),
		Compositor: compose.New(grid, registry),
		Queue:      loader.NewQueue(queueSize),
		rows:       make([]RowState, rows),
		logger:     log.New(os.Stderr, "meshcompare: ", log.LstdFlags),
		dirty:      true,
	}, nil
}

// SetLogger replaces the logger, including the one of a running loader
func (v *Viewer) SetLogger(logger *log.Logger) {
	v.logger = logger
	if v.loader != nil {
		v.loader.SetLogger(logger)
	}
}

// Load starts fetching every row from source
func (v *Viewer) Load(source loader.Source) *loader.Loader {
	v.loader = loader.New(source, v.Queue, v, v.Manifest.Cases)
	v.loader.SetLogger(v.logger)
	v.loader.Start()
	return v.loader
}

// Watch reloads a row whenever one of its files changes on disk. It needs
// a FileSource and a running loader.
func (v *Viewer) Watch(source loader.FileSource, debounce time.Duration) (*watcher.FileWatcher, error) {
	if v.loader == nil {
		return nil, fmt.Errorf("nothing is loading yet")
	}

	fw, err := watcher.NewFileWatcher(debounce)
	if err != nil {
		return nil, err
	}
	fw.OnError(func(err error) { v.logger.Printf("Watcher error: %v", err) })

	for row, c := range v.Manifest.Cases {
		files := []string{
			source.Location(c.Original),
			source.Location(c.Repaired),
			source.Location(c.Intersections),
		}
		row := row
		err := fw.Watch(files, func(path string) {
			v.logger.Printf("File changed: %s", path)
			v.loader.LoadRow(row)
		})
		if err != nil {
			fw.Close()
			return nil, fmt.Errorf("failed to watch case %s: %w", c.Name, err)
		}
		v.logger.Printf("Watching files of %s for changes", c.Name)
	}

	fw.Start()
	return fw, nil
}

// Close stops loading
func (v *Viewer) Close() {
	if v.loader != nil {
		v.loader.Close()
	}
}

// Rows returns the number of test cases
func (v *Viewer) Rows() int {
	return len(v.rows)
}

// Row returns what has been loaded for row so far
func (v *Viewer) Row(row int) RowState {
	return v.rows[row]
}

// IntersectionsLoaded settles a row's intersection data. A failed load
// settles with an empty set. An original mesh that is already shown is
// recolored.
func (v *Viewer) IntersectionsLoaded(row int, set highlight.Set, err error) {
	if err != nil || set == nil {
		set = highlight.NewSet()
	}

	state := &v.rows[row]
	state.Settled = true
	state.Intersections = set

	if state.Original != nil {
		v.colorOriginal(row)
	}
	v.dirty = true
}

// MeshLoaded installs a mesh into its slot. Failed loads leave the slot
// as it is.
func (v *Viewer) MeshLoaded(row, col int, model *mesh.Model, err error) {
	if err != nil {
		return
	}

	m, err := scene.NewMesh(model, highlight.Plain(model.FaceCount()))
	if err != nil {
		v.logger.Printf("Error preparing %s: %v", model.Name, err)
		return
	}
	v.Registry.Slot(row, col).Scene.Replace(m)

	state := &v.rows[row]
	if col == loader.OriginalColumn {
		state.Original = m
		if state.Settled {
			v.colorOriginal(row)
		}
	} else {
		state.Repaired = m
	}
	v.dirty = true
}

func (v *Viewer) colorOriginal(row int) {
	state := &v.rows[row]
	faces := state.Original.Model.FaceCount()
	if err := state.Original.SetColors(highlight.Colorize(faces, state.Intersections)); err != nil {
		v.logger.Printf("Error coloring row %d: %v", row+1, err)
		return
	}
	v.logger.Printf("Case %d: %d of %d faces intersect", row+1, state.Intersections.CountIn(faces), faces)
}

// SetClip moves row's clipping plane; see scene.ClipController.Set
func (v *Viewer) SetClip(row int, value float64) bool {
	if !v.Clip.Set(row, value) {
		return false
	}
	v.dirty = true
	return true
}

// ResetView puts the camera back where it started
func (v *Viewer) ResetView() {
	v.Controls.Reset()
	v.dirty = true
}

// Invalidate forces the next Update to report a redraw, e.g. after a resize
func (v *Viewer) Invalidate() {
	v.dirty = true
}

// Update runs the per-frame work on the UI thread: apply queued load
// results, then advance the controls and copy the master camera to every
// slot. It reports whether the frame needs to be drawn again.
func (v *Viewer) Update() bool {
	v.Queue.Drain()
	if v.Sync.Sync() {
		v.dirty = true
	}
	return v.dirty
}

// Render composes all slots onto surface and clears the redraw flag
func (v *Viewer) Render(surface compose.Surface, width float64) []layout.Rect {
	v.dirty = false
	return v.Compositor.Render(surface, width)
}

// Heading returns the title of row
func (v *Viewer) Heading(row int) string {
	return fmt.Sprintf("Case %d", row+1)
}

// WaitLoaded applies load results until every fetch issued by Load has
// completed. It is meant for headless use; frontends drain through Update.
func (v *Viewer) WaitLoaded(poll time.Duration) {
	if v.loader == nil {
		return
	}
	done := make(chan struct{})
	go func() {
		v.loader.Wait()
		close(done)
	}()

	ticker := time.NewTicker(poll)
	defer ticker.Stop()
	for {
		select {
		case <-done:
			v.Update()
			return
		case <-ticker.C:
			v.Queue.Drain()
		}
	}
}
