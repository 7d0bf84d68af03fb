package catalog

import (
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/san-kum/stepviz/internal/algo/backtracking"
	"github.com/san-kum/stepviz/internal/step"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_List(t *testing.T) {
	r := NewRegistry()
	names := r.List()

	assert.True(t, slices.IsSorted(names))
	for _, want := range []string{"bubble", "merge", "binary-search", "hash-insert", "bfs", "scc", "lcs", "nqueens", "kmp", "count-bits", "reverse-list"} {
		assert.Contains(t, names, want)
	}
}

func TestRegistry_UnknownAlgorithm(t *testing.T) {
	r := NewRegistry()

	_, err := r.Get("bogo")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownAlgorithm))
	assert.Contains(t, err.Error(), "bogo")

	_, err = r.Run("bogo", Input{})
	assert.ErrorIs(t, err, ErrUnknownAlgorithm)

	_, err = r.Describe("bogo")
	assert.ErrorIs(t, err, ErrUnknownAlgorithm)
}

func TestRegistry_SamplesProduceSteps(t *testing.T) {
	r := NewRegistry()
	for _, name := range r.List() {
		t.Run(name, func(t *testing.T) {
			e, err := r.Get(name)
			require.NoError(t, err)

			seq, err := r.Run(name, e.Sample)
			require.NoError(t, err)
			require.GreaterOrEqual(t, seq.Len(), 2, "sample should animate more than one step")

			for i := 0; i < seq.Len(); i++ {
				s := seq.At(i)
				assert.Equal(t, e.Family, s.Kind(), "step %d", i)
				if line := s.Info().Line; line != 0 && e.Code != nil {
					assert.LessOrEqual(t, line, len(e.Code), "step %d line", i)
				}
			}
		})
	}
}

func TestRegistry_RunBubbleScenario(t *testing.T) {
	r := NewRegistry()
	seq, err := r.Run("bubble", Input{Values: []int{5, 3, 1, 4, 2}})
	require.NoError(t, err)

	last, ok := seq.Last().(*step.ArrayStep)
	require.True(t, ok)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, last.Array)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, last.Sorted)
}

func TestRegistry_BadParametersAreSteps(t *testing.T) {
	r := NewRegistry()

	seq, err := r.Run("nqueens", Input{Size: 3})
	require.NoError(t, err)
	assert.Contains(t, seq.Last().Info().Message, "No solution")

	seq, err = r.Run("hash-search", Input{Size: 0, Target: 1})
	require.NoError(t, err)
	assert.Equal(t, 1, seq.Len())
}

func TestRegistry_NQueensSolutionStep(t *testing.T) {
	r := NewRegistry()
	seq, err := r.Run("nqueens", Input{Size: 4})
	require.NoError(t, err)

	last := seq.Last().(*step.GridStep)
	assert.Equal(t, backtracking.SolutionMessage, last.Message)
	assert.Len(t, last.Solution, 4)
}

func TestRegistry_Describe(t *testing.T) {
	r := NewRegistry()
	text, err := r.Describe("bubble")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(text, "bubble (array)"))
	assert.Contains(t, text, " 1 | ")
}

func TestRegistry_ByFamily(t *testing.T) {
	r := NewRegistry()
	for _, e := range r.ByFamily(step.FamilyGraph) {
		assert.Equal(t, step.FamilyGraph, e.Family)
	}
	assert.Len(t, r.ByFamily(step.FamilyList), 2)
}

func TestRegistry_Register(t *testing.T) {
	r := NewRegistry()
	r.Register(Entry{
		Name:   "one",
		Family: step.FamilyBit,
		Factory: func(in Input) step.Producer {
			return step.Single(&step.BitStep{Meta: step.Meta{Message: "only"}, Width: in.Width})
		},
	})

	seq, err := r.Run("one", Input{Width: 4})
	require.NoError(t, err)
	assert.Equal(t, 1, seq.Len())
	assert.Equal(t, "only", seq.At(0).Info().Message)
}
