package acidlist

import "errors"

// Sentinel errors returned by [Create] and [Open].
//
// Callers should use [errors.Is] to check error types.
var (
	// ErrAlreadyExists is returned by [Create] when the target path already
	// exists.
	ErrAlreadyExists = errors.New("acidlist: already exists")

	// ErrNotInitialized indicates the file is too short, structurally
	// malformed, or its length doesn't match what the header implies.
	ErrNotInitialized = errors.New("acidlist: not initialized")

	// ErrWrongArchitecture indicates the header magic doesn't match, the
	// file is larger than this platform's addressable range, or the
	// computed layout exceeds maxFileSizeBytes. The magic mismatch case is
	// also the common symptom of an endianness mismatch between the host
	// that created the file and the host opening it.
	ErrWrongArchitecture = errors.New("acidlist: wrong architecture")

	// ErrWrongDataType indicates the file's recorded payload size doesn't
	// match sizeof(T) for the type [Open] was instantiated with.
	ErrWrongDataType = errors.New("acidlist: wrong data type")
)
