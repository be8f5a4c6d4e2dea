// Package manager owns the process-wide registry of per-track manifests.
//
// A Manager is constructed once by the host-integration layer and injected
// into every call site; there is no hidden global. Init scans the manifest
// directory, quarantines files it cannot read, runs the one-shot legacy
// migration, and acquires a directory lock so only one process writes
// manifests at a time. Every mutating operation locates the track's manifest,
// delegates the mutation, and re-persists the affected file, so callers see
// mutation and persistence as one step.
package manager
