package cpu

import (
	"iter"
)

// Entry is one memory word defined by a program listing.
type Entry struct {
	LineNo  int    // Listing line number.
	Address uint8  // Memory address.
	Word    Word   // Initial memory value.
	Comment string // Listing text after the word.
}

// Program is a loaded program image.
type Program struct {
	Entries []Entry
	Pc      int // Entry point.
}

// Debug returns the listing entry that defined an address.
func (prog *Program) Debug(addr uint8) (entry Entry, ok bool) {
	for _, e := range prog.Entries {
		if e.Address == addr {
			entry = e
			ok = true
		}
	}

	return
}

// Image returns the initial memory contents.
func (prog *Program) Image() (image [MEMORY_SIZE]Word) {
	for addr, word := range prog.Words() {
		image[addr] = word
	}

	return
}

// Words iterates over the defined addresses, in listing order.
// Later definitions of an address override earlier ones.
func (prog *Program) Words() iter.Seq2[uint8, Word] {
	return func(yield func(addr uint8, word Word) bool) {
		for _, e := range prog.Entries {
			if !yield(e.Address, e.Word) {
				return
			}
		}
	}
}
