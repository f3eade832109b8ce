// Package cpu emulates the execution engine of the machine. The CPU type owns
// the sixteen general purpose registers, the index register, the program
// counter, the call stack and the two countdown timers.
//
// Memory, the display and the keypad are reached through the interfaces
// defined in this package. The CPU executes exactly one instruction for every
// call to Step(). It has no sense of time; the host is responsible for calling
// Step() and TickTimers() at the appropriate rates.
//
// The sixteenth register (VF) doubles as the flag register. It is written as a
// side effect of the arithmetic, shift and draw instructions.
package cpu
