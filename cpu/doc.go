// Package cpu implements the TOY machine and its program loader.
//
// The machine has sixteen 16-bit registers (R0-RF, with R0 reserved as a
// constant zero), 256 words of memory, and a program counter. Memory
// address 0xFF is mapped to a console Gateway: loads from it read the
// console, and stores to it print.
//
// Arithmetic uses the two's-complement view of a word, and any result
// outside of -32768..32767 is a fault rather than a wrap around. Faults
// are detected before the instruction modifies any state.
//
// The loader reads program listings of `AA: WWWW` lines, such as:
//
//	program Echo
//	10: 81FF   read R[1]
//	11: 91FF   write R[1]
//	12: 0000   halt
package cpu
