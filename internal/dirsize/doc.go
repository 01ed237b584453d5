// Package dirsize computes the total storage footprint of a set of paths.
//
// It walks every root concurrently over a bounded pool of workers, funnels
// per-entry sizes into a single collector that counts hard-linked files once
// across the whole run, and records inaccessible entries as errors instead of
// aborting the walk.
package dirsize
