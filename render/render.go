// SPDX-License-Identifier: EPL-2.0

// Package render writes waveforms as JSON.
//
// A single file is written as
//
//	{"word_wf":[-12,12,-127,127]}
//
// and a batch as
//
//	{"results":[{"filename":"a.wav","word_wf":[...]}, ...]}
//
// Failed batch results are left out; reporting them is up to the caller.
package render

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/ik5/wavpeaks/batch"
	"github.com/ik5/wavpeaks/waveform"
)

// Single is the document for one input file.
type Single struct {
	WordWF waveform.Waveform `json:"word_wf"`
}

// Entry is one successful file in a Batch document.
type Entry struct {
	Filename string            `json:"filename"`
	WordWF   waveform.Waveform `json:"word_wf"`
}

// Batch is the document for several input files.
type Batch struct {
	Results []Entry `json:"results"`
}

// NewBatch keeps the successful results, in order.
func NewBatch(results []batch.Result) Batch {
	doc := Batch{Results: make([]Entry, 0, len(results))}
	for _, r := range results {
		if !r.OK() {
			continue
		}
		doc.Results = append(doc.Results, Entry{
			Filename: r.Filename,
			WordWF:   nonNil(r.Waveform),
		})
	}

	return doc
}

// WriteSingle writes wf as a Single document followed by a newline.
func WriteSingle(w io.Writer, wf waveform.Waveform) error {
	return write(w, Single{WordWF: nonNil(wf)})
}

// WriteBatch writes the successful results as a Batch document followed by
// a newline.
func WriteBatch(w io.Writer, results []batch.Result) error {
	return write(w, NewBatch(results))
}

func write(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)

	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding waveform JSON: %w", err)
	}

	return nil
}

// nonNil keeps empty waveforms encoding as [] instead of null.
func nonNil(wf waveform.Waveform) waveform.Waveform {
	if wf == nil {
		return waveform.Waveform{}
	}

	return wf
}
