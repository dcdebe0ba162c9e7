package cbrsa

import "runtime"

// Zeroize overwrites the provided slice with zeros and prevents compiler
// dead store elimination using runtime.KeepAlive.
//
// This cannot guarantee complete memory sanitization: math/big keeps its own
// copies of values passed through it, and the garbage collector may have
// moved older backing arrays. It clears what this library owns.
func Zeroize[T ~uint | ~byte](buf []T) {
	for i := range buf {
		buf[i] = 0
	}
	// Prevent dead store elimination per golang/go#33325
	runtime.KeepAlive(buf)
}
