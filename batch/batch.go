package batch

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/ik5/wavpeaks/audio"
	"github.com/ik5/wavpeaks/waveform"
	"golang.org/x/sync/errgroup"
)

// Result is the outcome for one input path. Exactly one of Waveform and
// Err is set.
type Result struct {
	Path     string
	Filename string
	Waveform waveform.Waveform
	Err      error
}

// OK reports whether the file produced a waveform.
func (r Result) OK() bool { return r.Err == nil }

// Processor runs decode and peak extraction for many files.
type Processor struct {
	registry *audio.Registry
	workers  int
}

// NewProcessor returns a Processor that picks decoders from registry by
// file extension and runs at most workers files at once. workers < 1 means
// runtime.GOMAXPROCS(0).
func NewProcessor(registry *audio.Registry, workers int) *Processor {
	if workers < 1 {
		workers = runtime.GOMAXPROCS(0)
	}

	return &Processor{
		registry: registry,
		workers:  workers,
	}
}

// Workers returns the concurrency limit used by ProcessAll.
func (p *Processor) Workers() int { return p.workers }

// ProcessFile decodes the file at path and extracts its waveform.
func (p *Processor) ProcessFile(path string) (waveform.Waveform, error) {
	dec, err := p.registry.Lookup(Extension(path))
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	defer f.Close()

	pcm, err := dec.Decode(f)
	if err != nil {
		return nil, err
	}

	return waveform.Extract(pcm.Samples, pcm.Spec)
}

// ProcessAll processes every path and returns the results in the order of
// paths, regardless of completion order. It never stops early.
func (p *Processor) ProcessAll(paths []string) []Result {
	results := make([]Result, len(paths))

	var g errgroup.Group
	g.SetLimit(p.workers)

	for i, path := range paths {
		g.Go(func() error {
			results[i] = p.process(path)
			return nil
		})
	}

	// Workers report failures through results, never through the group.
	_ = g.Wait()

	return results
}

func (p *Processor) process(path string) Result {
	wf, err := p.ProcessFile(path)
	if err != nil {
		return Result{Path: path, Err: &FileError{Path: path, Err: err}}
	}

	return Result{
		Path:     path,
		Filename: filepath.Base(path),
		Waveform: wf,
	}
}
