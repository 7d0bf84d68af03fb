package strmatch

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/san-kum/stepviz/internal/step"
)

func reference(text, pattern string) []int {
	var out []int
	for i := 0; i+len(pattern) <= len(text); i++ {
		if text[i:i+len(pattern)] == pattern {
			out = append(out, i)
		}
	}
	return out
}

func TestMatchers(t *testing.T) {
	cases := []struct{ text, pattern string }{
		{"abababcab", "abab"},
		{"aaaaa", "aa"},
		{"hello world", "xyz"},
		{"short", "longer pattern"},
		{"abcabcabd", "abcabd"},
	}
	matchers := map[string]func(string, string) step.Producer{"naive": Naive, "kmp": KMP}

	for name, match := range matchers {
		for _, c := range cases {
			last := step.Materialize(match(c.text, c.pattern)).Last().(*step.StringStep)
			if diff := cmp.Diff(reference(c.text, c.pattern), last.Matches); diff != "" {
				t.Errorf("%s(%q, %q) (-want +got):\n%s", name, c.text, c.pattern, diff)
			}
		}
	}
}

func TestKMP_FailureTable(t *testing.T) {
	last := step.Materialize(KMP("x", "aabaaab")).Last().(*step.StringStep)
	if diff := cmp.Diff([]int{0, 1, 0, 1, 2, 2, 3}, last.Failure); diff != "" {
		t.Error(diff)
	}
}

func TestEmptyPattern(t *testing.T) {
	for _, p := range []step.Producer{Naive("abc", ""), KMP("abc", "")} {
		seq := step.Materialize(p)
		if seq.Len() != 1 || !strings.Contains(seq.Last().Info().Message, "empty") {
			t.Errorf("unexpected %v", seq.Messages())
		}
	}
}
