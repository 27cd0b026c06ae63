// Command wavpeaks prints JSON peak waveforms for one or more WAV files.
//
// Usage:
//
//	wavpeaks <file1.wav> [file2.wav] ...
//
// With one file the output is {"word_wf":[...]}; with several it is
// {"results":[{"filename":...,"word_wf":[...]}, ...]} and files that fail
// to decode are reported on stderr instead. Every path must exist and end
// in ".wav", otherwise nothing is processed.
//
// WAVPEAKS_WORKERS caps how many files are decoded at once (default: the
// number of usable CPUs).
package main

import (
	"errors"
	"io"
	"log"
	"os"

	"github.com/ik5/wavpeaks"
	"github.com/ik5/wavpeaks/batch"
	"github.com/ik5/wavpeaks/internal/config"
	"github.com/ik5/wavpeaks/render"
)

func main() {
	os.Exit(run(os.Args, os.Stdout, os.Stderr, config.Load()))
}

func run(args []string, stdout, stderr io.Writer, cfg config.Config) int {
	logger := log.New(stderr, "", 0)

	if len(args) < 2 {
		name := "wavpeaks"
		if len(args) == 1 {
			name = args[0]
		}
		logger.Println("Please specify one or more paths to WAV audio files as arguments.")
		logger.Printf("Usage: %s <file1.wav> [file2.wav] [file3.wav] ...", name)
		return 1
	}

	paths := args[1:]

	if err := batch.ValidateAll(paths); err != nil {
		var ipe *batch.InvalidPathError
		if errors.As(err, &ipe) {
			logger.Printf("Error with file %s: %v", ipe.Path, ipe.Err)
		} else {
			logger.Printf("Error: %v", err)
		}
		return 1
	}

	results := batch.NewProcessor(wavpeaks.NewRegistry(), cfg.Workers).ProcessAll(paths)

	if len(paths) == 1 {
		r := results[0]
		if r.Err != nil {
			logger.Printf("Error generating waveform: %v", r.Err)
			return 1
		}
		if err := render.WriteSingle(stdout, r.Waveform); err != nil {
			logger.Printf("Error: %v", err)
			return 1
		}
		return 0
	}

	for _, r := range results {
		if r.Err != nil {
			logger.Printf("Error: %v", r.Err)
		}
	}

	if err := render.WriteBatch(stdout, results); err != nil {
		logger.Printf("Error: %v", err)
		return 1
	}

	return 0
}
