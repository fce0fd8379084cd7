package cpu

import (
	"fmt"
)

const (
	WORD_MIN = -32768 // Smallest signed word value.
	WORD_MAX = 32767  // Largest signed word value.
)

// Word is a 16-bit machine word, stored as its unsigned magnitude.
type Word uint16

// MakeWord normalizes a signed or unsigned integer to a 16-bit magnitude.
func MakeWord(value int) Word {
	return Word(uint16(value))
}

// Signed returns the two's-complement interpretation of the word.
func (w Word) Signed() int {
	return int(int16(w))
}

// String returns the 4-hex-digit form of the word.
func (w Word) String() string {
	return fmt.Sprintf("%04X", uint16(w))
}

// InRange returns true if the value is representable as a signed word.
func InRange(value int) bool {
	return value >= WORD_MIN && value <= WORD_MAX
}
