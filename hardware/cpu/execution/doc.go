// Package execution tracks the result of instruction execution on the CPU.
// The Result type is used by the debugger and the disassembly package to
// report what happened during the most recent instruction.
package execution
