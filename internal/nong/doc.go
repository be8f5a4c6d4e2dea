// Package nong owns the per-track manifest: the default song, the list of
// user-added alternates, and which variant is active.
//
// A Nongs value enforces the manifest invariants (unique IDs are unique
// within the manifest, the active selection always references an existing
// record, the default song is never deleted) and persists itself to one JSON
// document per song ID via atomic temp-file-and-rename writes.
//
// Mutation and persistence are separate concerns: Add, SetActive, DeleteSong,
// and Merge only touch memory; Commit writes the backing file. The manager
// package composes the two.
package nong
