// SPDX-License-Identifier: EPL-2.0

// Package batch turns many WAV files into waveforms concurrently.
//
// Processor.ProcessAll decodes and reduces every path on a bounded worker
// pool and returns one Result per path, in input order. A file that cannot
// be opened or decoded yields a Result whose Err is a *FileError; the other
// files are unaffected.
//
// ValidateAll is a separate, stricter check meant to run before a batch:
// it stops at the first path that does not exist or does not end in ".wav"
// and returns an *InvalidPathError for it.
//
//	if err := batch.ValidateAll(paths); err != nil {
//	    return err
//	}
//	for _, r := range batch.NewProcessor(registry, 0).ProcessAll(paths) {
//	    if r.Err != nil {
//	        log.Println(r.Err)
//	        continue
//	    }
//	    fmt.Println(r.Filename, r.Waveform)
//	}
package batch
