// Package constants holds default values shared between the root package
// and the Buffered driver.
package constants

// DefaultInitialBufferSize is the Buffered driver's default scratch buffer
// size when the caller doesn't specify one.
const DefaultInitialBufferSize = 4096
