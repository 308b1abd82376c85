package vm_test

import (
	"testing"

	"github.com/katalvlaran/gridsearch/vm"
)

// mixer is a typical 3-bit mixing loop: one output per octal digit of A.
var mixer = vm.Program{2, 4, 1, 1, 7, 5, 1, 5, 4, 0, 5, 5, 0, 3, 3, 0}

// BenchmarkRun executes the mixing loop over a 16-digit register value.
func BenchmarkRun(b *testing.B) {
	regs := vm.Registers{A: 0o1234567012345670}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = vm.Run(regs, mixer)
	}
}

// BenchmarkInverse finds the self-printing register of the sample program.
func BenchmarkInverse(b *testing.B) {
	prog := vm.Program{0, 3, 5, 4, 3, 0}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = vm.Inverse(prog)
	}
}

// BenchmarkInverseFor recovers a 16-digit register from the mixing loop's
// output.
// Complexity: O(8 × depth) trial runs on the usual path, depth = output length
func BenchmarkInverseFor(b *testing.B) {
	out, err := vm.Run(vm.Registers{A: 0o1234567012345670}, mixer)
	if err != nil {
		b.Fatalf("setup Run failed: %v", err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = vm.InverseFor(mixer, out)
	}
}
