// Package amount contains the pure parsing, formatting and bounds logic behind
// the amount field.
//
// Allowed here:
// - text to number conversion for typed and pasted input
// - canonical display formatting (comma decimal marker, two fraction digits)
// - clamping, step quantization and step arithmetic
//
// Not allowed here:
// - event handling, listener wiring or any mutable field state
package amount
