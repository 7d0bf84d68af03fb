package searching

import (
	"fmt"
	"slices"
	"strings"
	"testing"

	"github.com/san-kum/stepviz/internal/step"
)

func TestLinear(t *testing.T) {
	tests := []struct {
		name   string
		input  []int
		target int
		found  int
	}{
		{"first", []int{7, 1, 3}, 7, 0},
		{"last", []int{7, 1, 3}, 3, 2},
		{"missing", []int{7, 1, 3}, 9, -1},
		{"empty", []int{}, 1, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seq := step.Materialize(Linear(tt.input, tt.target))
			got := seq.Last().(*step.ArrayStep)
			if got.Found != tt.found {
				t.Errorf("found = %d, want %d (%q)", got.Found, tt.found, got.Message)
			}
		})
	}
}

func TestBinary(t *testing.T) {
	in := []int{1, 3, 5, 7, 9, 11, 13}
	for want, v := range in {
		seq := step.Materialize(Binary(in, v))
		got := seq.Last().(*step.ArrayStep)
		if got.Found != want {
			t.Errorf("search %d: found = %d, want %d", v, got.Found, want)
		}
		if seq.Len() > 2*4+2 {
			t.Errorf("search %d took %d steps", v, seq.Len())
		}
	}

	got := step.Materialize(Binary(in, 4)).Last()
	if got.(*step.ArrayStep).Found != -1 || !strings.Contains(got.Info().Message, "not in") {
		t.Errorf("absent value: %q", got.Info().Message)
	}
}

func TestBinary_Unsorted(t *testing.T) {
	in := []int{3, 1, 2}
	seq := step.Materialize(Binary(in, 1))
	if seq.Len() != 1 {
		t.Fatalf("expected 1 step, got %d", seq.Len())
	}
	if !slices.Equal(seq.Last().(*step.ArrayStep).Array, in) {
		t.Error("array not preserved")
	}
}

func TestArrayLimit(t *testing.T) {
	long := make([]int, step.MaxArray+1)
	for i := range long {
		long[i] = i
	}
	want := fmt.Sprintf("Arrays are limited to %d elements, got %d.", step.MaxArray, len(long))

	tests := []struct {
		name string
		p    step.Producer
	}{
		{"linear", Linear(long, 3)},
		{"binary", Binary(long, 3)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seq := step.Materialize(tt.p)
			if seq.Len() != 1 {
				t.Fatalf("expected 1 step, got %d", seq.Len())
			}
			if msg := seq.Last().Info().Message; msg != want {
				t.Errorf("message %q, want %q", msg, want)
			}
		})
	}

	got := step.Materialize(Binary(long[:step.MaxArray], 3)).Last().Info().Message
	if got != "Found 3 at index 3." {
		t.Errorf("array at the limit: %q", got)
	}
}
