// Package instructions defines the instruction set and decodes 16-bit
// instruction words into Instruction values.
//
// Decoding dispatches on the most significant nibble of the word. Where the
// nibble is shared by more than one form (0x0, 0x8, 0xE and 0xF) the low
// nibble or low byte selects the form. A word that matches no form is not an
// error; Decode() returns false and it is for the caller to decide what to do.
package instructions
