// SPDX-License-Identifier: MIT

package tensor

import "strconv"

// TempIndexFactory hands out fresh slot names for intermediate contractions
// ("t0", "t1", ...). It is stateful: CloneForWorker returns an independent
// allocator whose names carry the worker number, so workers never share a
// counter nor collide on names.
type TempIndexFactory struct {
	prefix string
	next   int
}

// NewTempIndexFactory returns an allocator producing prefix0, prefix1, ...
func NewTempIndexFactory(prefix string) *TempIndexFactory {
	return &TempIndexFactory{prefix: prefix}
}

// Next returns a name not returned before by this allocator.
func (f *TempIndexFactory) Next() string {
	name := f.prefix + strconv.Itoa(f.next)
	f.next++

	return name
}

// Issued returns how many names have been handed out.
func (f *TempIndexFactory) Issued() int { return f.next }

// CloneForWorker returns a fresh allocator with its own counter.
func (f *TempIndexFactory) CloneForWorker(worker int) *TempIndexFactory {
	return &TempIndexFactory{prefix: f.prefix + "w" + strconv.Itoa(worker) + "_"}
}
