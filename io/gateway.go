// Package io provides the console gateway for the TOY machine.
//
// Every load from or store to memory address 0xFF is routed through a
// Gateway instead of plain storage. Console talks to a terminal or any
// line oriented stream; Script replays queued values for harnesses that
// must not block.
package io

// Gateway defines the interface for memory-mapped console I/O.
type Gateway interface {
	// Receive blocks until an input word is available.
	Receive() (value uint16, err error)
	// Send emits an output word.
	Send(value uint16) error
}
