package nong

import "errors"

// Sentinel errors for manifest operations. Callers classify failures with
// errors.Is; contextual detail (IDs, filenames) travels in the wrapping
// message so formatting stays at the boundary.
var (
	// ErrNotInitialized marks operations on a manager whose Init was never run.
	ErrNotInitialized = errors.New("manager not initialized")

	// ErrSongNotInitialized marks operations on a song ID with no manifest.
	ErrSongNotInitialized = errors.New("song not initialized in manifest")

	// ErrDuplicateID marks an insert whose unique ID is already present.
	ErrDuplicateID = errors.New("duplicate unique ID")

	// ErrUnknownID marks a lookup for a unique ID no record carries.
	ErrUnknownID = errors.New("unknown unique ID")

	// ErrActiveRecordProtected marks an attempt to delete the default song.
	ErrActiveRecordProtected = errors.New("default song cannot be deleted")

	// ErrIDMismatch marks a merge between manifests of different song IDs.
	ErrIDMismatch = errors.New("song ID mismatch")

	// ErrParse marks malformed JSON or a schema violation in a manifest file.
	ErrParse = errors.New("manifest parse error")

	// ErrInvalidFilename marks a manifest filename whose stem is not a
	// nonzero song ID.
	ErrInvalidFilename = errors.New("invalid manifest filename")
)
