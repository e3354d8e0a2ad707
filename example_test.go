package bfloat16_test

import (
	"fmt"

	bfloat16 "github.com/biovault/biovault-bfloat"
)

// Example demonstrates the lossy narrowing conversion: float32 values keep
// their exponent but only the top 7 mantissa bits, rounded to nearest.
func Example() {
	b := bfloat16.FromFloat32(0.3)

	fmt.Printf("%#04x\n", b.Bits())
	fmt.Println(b.Float32())
	// Output:
	// 0x3e9a
	// 0.30078125
}

// ExampleFromBits constructs a value from a literal bit pattern, bypassing
// numeric conversion.
func ExampleFromBits() {
	one := bfloat16.FromBits(0x3f80)
	inf := bfloat16.FromBits(0x7f80)

	fmt.Println(one.Float32())
	fmt.Println(inf.IsInf(1))
	// Output:
	// 1
	// true
}

// ExampleFromInt converts integers through the float32 path. Whole numbers
// up to 256 in magnitude are exact; beyond that the mantissa rounds.
func ExampleFromInt() {
	fmt.Println(bfloat16.FromInt(256).Float32())
	fmt.Println(bfloat16.FromInt(301).Float32())
	// Output:
	// 256
	// 300
}
