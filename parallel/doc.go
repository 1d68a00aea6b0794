// SPDX-License-Identifier: MIT

// Package parallel fans ring computations out over a fixed pool of
// goroutines.
//
// The algebra packages are single-threaded and share nothing, but some of
// their values (index allocators, symbolic caches, mutators holding either)
// carry mutable state. Map therefore clones a shared working set once per
// worker, before any evaluation starts, through the CloneForWorker
// capability, and gives each worker a disjoint stride of the inputs.
// Values without state return themselves from CloneForWorker, so cloning
// them costs nothing.
//
// Determinism:
//   - Output order equals input order regardless of scheduling.
//   - Input i is always handled by worker i mod workers.
package parallel
