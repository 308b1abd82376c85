// Package vm implements a three-register 3-bit virtual machine and a search
// that inverts it.
//
// What
//
//   - Registers A, B and C hold int64 values; the instruction pointer starts
//     at 0 and advances by 2 unless a jump fires.
//   - A program is a list of 3-bit numbers read as (opcode, operand) pairs.
//     Execution halts when the pointer runs past the end.
//   - Operands are literal or combo depending on the opcode:
//
//     opcode  name  operand  effect
//     0       adv   combo    A = A >> op
//     1       bxl   literal  B = B ^ op
//     2       bst   combo    B = op % 8
//     3       jnz   literal  if A != 0 { ip = op }
//     4       bxc   ignored  B = B ^ C
//     5       out   combo    emit op % 8
//     6       bdv   combo    B = A >> op
//     7       cdv   combo    C = A >> op
//
//     Combo operands 0-3 are literal, 4/5/6 read A/B/C and 7 is reserved.
//
// Inversion
//
//	Inverse finds the smallest A (with B = C = 0) for which the program
//	prints itself. Programs of this family consume three bits of A per
//	loop iteration, so the search fixes A one octal digit at a time from the
//	most significant end and checks, by full simulation, that the output
//	equals the matching suffix of the target. Branches that fail are
//	abandoned; digits are tried in ascending order, so the first complete
//	candidate is the minimum.
//
// Usage
//
//	regs, prog, err := vm.ParseProgram(input)
//	out, err := vm.Run(regs, prog)
//	a, err := vm.Inverse(prog)
package vm
