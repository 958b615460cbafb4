package rematch

import "unsafe"

// stringToBytesUnsafe returns a byte slice that points at the string's
// data without copying. The conversion is safe only because the engines
// never modify the returned slice.
func stringToBytesUnsafe(s string) []byte {
	return unsafe.Slice(unsafe.StringData(s), len(s))
}

// ptr aliases [unsafe.Pointer].
type ptr = unsafe.Pointer
