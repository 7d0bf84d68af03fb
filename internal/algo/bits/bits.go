// Package bits animates bit manipulation tricks on words of up to 32 bits.
package bits

import (
	"fmt"

	"github.com/san-kum/stepviz/internal/step"
)

func snap(value uint32, width, bit int, mask uint32, result int, line int, msg string) *step.BitStep {
	return &step.BitStep{
		Meta:   step.Meta{Message: msg, Line: line},
		Value:  value,
		Width:  width,
		Bit:    bit,
		Mask:   mask,
		Result: result,
	}
}

func check(value uint32, width int) (step.Producer, bool) {
	if width < 1 || width > 32 {
		return step.Single(snap(value, 0, -1, 0, 0, 0, fmt.Sprintf("Width must be between 1 and 32, got %d.", width))), false
	}
	if width < 32 && value>>width != 0 {
		return step.Single(snap(value, width, -1, 0, 0, 0, fmt.Sprintf("%d does not fit in %d bits.", value, width))), false
	}
	return nil, true
}

func lowest(v uint32) int {
	for i := 0; i < 32; i++ {
		if v&(1<<i) != 0 {
			return i
		}
	}
	return -1
}

var CountSetBitsCode = []string{
	"count := 0",
	"for v != 0 {",
	"    v &= v - 1  // clear lowest set bit",
	"    count++",
	"return count",
}

// CountSetBits uses Kernighan's trick: each iteration clears the lowest set bit.
func CountSetBits(value uint32, width int) step.Producer {
	if p, ok := check(value, width); !ok {
		return p
	}
	return func(yield func(step.Step) bool) {
		v, count := value, 0
		if !step.Emit(yield, snap(v, width, -1, 0, 0, 1, fmt.Sprintf("Count the set bits of %0*b.", width, v))) {
			return
		}
		for v != 0 {
			b := lowest(v)
			if !step.Emit(yield, snap(v, width, b, v-1, count, 3, fmt.Sprintf("v & (v-1) clears bit %d.", b))) {
				return
			}
			v &= v - 1
			count++
			if !step.Emit(yield, snap(v, width, -1, 0, count, 4, fmt.Sprintf("Count is now %d; v = %0*b.", count, width, v))) {
				return
			}
		}
		step.Emit(yield, snap(value, width, -1, 0, count, 5, fmt.Sprintf("%d has %d set bits.", value, count)))
	}
}

// PowerOfTwo tests v & (v-1) == 0 for non-zero v.
func PowerOfTwo(value uint32, width int) step.Producer {
	if p, ok := check(value, width); !ok {
		return p
	}
	return func(yield func(step.Step) bool) {
		if value == 0 {
			step.Emit(yield, snap(0, width, -1, 0, 0, 0, "0 is not a power of two."))
			return
		}
		mask := value - 1
		if !step.Emit(yield, snap(value, width, lowest(value), mask, 0, 0, fmt.Sprintf("v - 1 = %0*b flips the lowest set bit and everything below it.", width, mask))) {
			return
		}
		and := value & mask
		res, verdict := 0, "is not"
		if and == 0 {
			res, verdict = 1, "is"
		}
		step.Emit(yield, snap(and, width, -1, mask, res, 0, fmt.Sprintf("v & (v-1) = %0*b, so %d %s a power of two.", width, and, value, verdict)))
	}
}

// Reverse mirrors the low width bits of value.
func Reverse(value uint32, width int) step.Producer {
	if p, ok := check(value, width); !ok {
		return p
	}
	return func(yield func(step.Step) bool) {
		var out uint32
		for i := 0; i < width; i++ {
			bit := (value >> i) & 1
			out |= bit << (width - 1 - i)
			msg := fmt.Sprintf("Copy bit %d (%d) to position %d.", i, bit, width-1-i)
			if !step.Emit(yield, snap(out, width, width-1-i, value, int(out), 0, msg)) {
				return
			}
		}
		step.Emit(yield, snap(out, width, -1, value, int(out), 0, fmt.Sprintf("Reversed: %0*b = %d.", width, out, out)))
	}
}
