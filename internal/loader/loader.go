// Package loader fetches the meshes and intersection data of every test
// case in the background and hands the results to the UI thread.
package loader

import (
	"context"
	"log"
	"os"
	"sync"

	"github.com/philipparndt/meshcompare/internal/config"
	"github.com/philipparndt/meshcompare/internal/highlight"
	"github.com/philipparndt/meshcompare/pkg/mesh"
)

// Columns of a row
const (
	OriginalColumn = 0
	RepairedColumn = 1
)

// Sink receives load results. Its methods are only ever called from
// Queue.Drain.
type Sink interface {
	IntersectionsLoaded(row int, set highlight.Set, err error)
	MeshLoaded(row, col int, model *mesh.Model, err error)
}

// Loader runs the fetches of all rows.
type Loader struct {
	source Source
	queue  *Queue
	sink   Sink
	cases  []config.Case
	logger *log.Logger

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// New creates a loader for cases
func New(source Source, queue *Queue, sink Sink, cases []config.Case) *Loader {
	ctx, cancel := context.WithCancel(context.Background())
	return &Loader{
		source: source,
		queue:  queue,
		sink:   sink,
		cases:  cases,
		logger: log.New(os.Stderr, "meshcompare: ", log.LstdFlags),
		ctx:    ctx,
		cancel: cancel,
	}
}

// SetLogger replaces the logger used for load failures
func (l *Loader) SetLogger(logger *log.Logger) {
	l.logger = logger
}

// Start issues the loads of every row
func (l *Loader) Start() {
	for row := range l.cases {
		l.LoadRow(row)
	}
}

// LoadRow fetches the intersection data of row and, without waiting for it,
// both of its meshes.
func (l *Loader) LoadRow(row int) {
	c := l.cases[row]
	l.fetchIntersections(row, c.Intersections)
	l.fetchMesh(row, OriginalColumn, c.Original)
	l.fetchMesh(row, RepairedColumn, c.Repaired)
}

func (l *Loader) fetchIntersections(row int, name string) {
	l.wg.Add(1)
	go func() {
		defer l.wg.Done()

		set, err := l.readIntersections(name)
		if err != nil {
			l.logger.Printf("Error loading intersections %s: %v", l.source.Location(name), err)
		}
		l.post(func() { l.sink.IntersectionsLoaded(row, set, err) })
	}()
}

func (l *Loader) readIntersections(name string) (highlight.Set, error) {
	data, err := l.source.Fetch(l.ctx, name)
	if err != nil {
		return nil, err
	}
	return highlight.ParseSet(data)
}

func (l *Loader) fetchMesh(row, col int, name string) {
	l.wg.Add(1)
	go func() {
		defer l.wg.Done()

		var model *mesh.Model
		data, err := l.source.Fetch(l.ctx, name)
		if err == nil {
			model, err = mesh.Decode(name, data)
		}
		if err != nil {
			l.logger.Printf("Error loading mesh %s: %v", l.source.Location(name), err)
		} else {
			l.logger.Printf("Loaded %s (%d faces)", l.source.Location(name), model.FaceCount())
		}
		l.post(func() { l.sink.MeshLoaded(row, col, model, err) })
	}()
}

func (l *Loader) post(task func()) {
	if err := l.queue.Post(l.ctx, task); err != nil {
		l.logger.Printf("Dropped load result: %v", err)
	}
}

// Wait blocks until every fetch issued so far has posted its result
func (l *Loader) Wait() {
	l.wg.Wait()
}

// Close cancels in-flight fetches. Results that are still queued are
// dropped by the caller simply by not draining again.
func (l *Loader) Close() {
	l.cancel()
}
