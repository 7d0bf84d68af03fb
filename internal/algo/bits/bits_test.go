package bits

import (
	mathbits "math/bits"
	"testing"

	"github.com/san-kum/stepviz/internal/step"
)

func lastBit(p step.Producer) *step.BitStep {
	return step.Materialize(p).Last().(*step.BitStep)
}

func TestCountSetBits(t *testing.T) {
	for _, v := range []uint32{0, 1, 0b1011, 0xff, 0xdeadbeef} {
		got := lastBit(CountSetBits(v, 32))
		if got.Result != mathbits.OnesCount32(v) {
			t.Errorf("CountSetBits(%d) = %d, want %d", v, got.Result, mathbits.OnesCount32(v))
		}
	}
}

func TestPowerOfTwo(t *testing.T) {
	tests := []struct {
		v    uint32
		want int
	}{
		{0, 0}, {1, 1}, {2, 1}, {6, 0}, {64, 1}, {100, 0},
	}
	for _, tt := range tests {
		if got := lastBit(PowerOfTwo(tt.v, 8)).Result; got != tt.want {
			t.Errorf("PowerOfTwo(%d) = %d, want %d", tt.v, got, tt.want)
		}
	}
}

func TestReverse(t *testing.T) {
	if got := lastBit(Reverse(0b0011, 4)); got.Value != 0b1100 {
		t.Errorf("Reverse(0011) = %04b", got.Value)
	}
	if got := lastBit(Reverse(1, 32)); got.Value != mathbits.Reverse32(1) {
		t.Errorf("Reverse(1, 32) = %x", got.Value)
	}
}

func TestInvalidWidth(t *testing.T) {
	for _, p := range []step.Producer{CountSetBits(1, 0), Reverse(1, 33), PowerOfTwo(300, 8)} {
		seq := step.Materialize(p)
		if seq.Len() != 1 {
			t.Errorf("expected a single terminal step, got %v", seq.Messages())
		}
	}
}
