package rsaprim

import (
	"math/big"
	"runtime"
)

// ZeroizeBytes overwrites the provided slice with zeros and prevents compiler
// dead store elimination using runtime.KeepAlive.
//
// This follows the pattern recommended in golang/go#33325 and used by
// security-focused libraries. It cannot guarantee complete memory
// sanitization: the garbage collector may have moved the backing array, and
// math/big operations allocate intermediates outside the caller's control.
func ZeroizeBytes(buf []byte) {
	for i := range buf {
		buf[i] = 0
	}
	// Prevent dead store elimination per golang/go#33325
	runtime.KeepAlive(buf)
}

// ZeroizeBigInt overwrites n's word slice and resets the value to zero. The
// same caveats as ZeroizeBytes apply; intermediates produced while computing
// n are out of reach.
func ZeroizeBigInt(n *big.Int) {
	if n == nil {
		return
	}
	words := n.Bits()
	for i := range words {
		words[i] = 0
	}
	runtime.KeepAlive(words)
	n.SetInt64(0)
}
