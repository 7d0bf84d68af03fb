// Package strmatch animates substring search.
package strmatch

import (
	"fmt"

	"github.com/san-kum/stepviz/internal/step"
)

// MaxText bounds the text length.
const MaxText = 256

type matcher struct {
	text, pattern string
	t, p          []rune
	matches       []int
	failure       []int
}

func (m *matcher) snap(line int, msg string, i, j int, hl ...step.Span) *step.StringStep {
	return &step.StringStep{
		Meta:      step.Meta{Message: msg, Line: line},
		Text:      m.text,
		Pattern:   m.pattern,
		I:         i,
		J:         j,
		Matches:   m.matches,
		Highlight: hl,
		Failure:   m.failure,
	}
}

func validate(text, pattern string) (step.Producer, bool) {
	var msg string
	switch {
	case pattern == "":
		msg = "Pattern is empty; there is nothing to search for."
	case len([]rune(text)) > MaxText:
		msg = fmt.Sprintf("Text is limited to %d characters.", MaxText)
	default:
		return nil, true
	}
	return step.Single(&step.StringStep{Meta: step.Meta{Message: msg}, Text: text, Pattern: pattern, I: -1, J: -1}), false
}

func (m *matcher) summary() string {
	if len(m.matches) == 0 {
		return fmt.Sprintf("%q does not occur in the text.", m.pattern)
	}
	return fmt.Sprintf("%q occurs at %v.", m.pattern, m.matches)
}

var NaiveCode = []string{
	"for s := 0; s <= n-m; s++ {",
	"    j := 0",
	"    for j < m && t[s+j] == p[j] { j++ }",
	"    if j == m { report s }",
	"done",
}

// Naive checks every alignment of the pattern against the text.
func Naive(text, pattern string) step.Producer {
	if p, ok := validate(text, pattern); !ok {
		return p
	}
	return func(yield func(step.Step) bool) {
		m := &matcher{text: text, pattern: pattern, t: []rune(text), p: []rune(pattern)}
		n, k := len(m.t), len(m.p)
		for s := 0; s+k <= n; s++ {
			if !step.Emit(yield, m.snap(1, fmt.Sprintf("Align the pattern at %d.", s), s, 0, step.Span{Start: s, End: s + k})) {
				return
			}
			j := 0
			for j < k {
				same := m.t[s+j] == m.p[j]
				msg := fmt.Sprintf("text[%d]=%q vs pattern[%d]=%q: ", s+j, m.t[s+j], j, m.p[j])
				if same {
					msg += "match."
				} else {
					msg += "mismatch."
				}
				if !step.Emit(yield, m.snap(3, msg, s+j, j, step.Span{Start: s, End: s + j + 1})) {
					return
				}
				if !same {
					break
				}
				j++
			}
			if j == k {
				m.matches = append(m.matches, s)
				if !step.Emit(yield, m.snap(4, fmt.Sprintf("Match at %d.", s), s, -1, step.Span{Start: s, End: s + k})) {
					return
				}
			}
		}
		step.Emit(yield, m.snap(5, m.summary(), -1, -1))
	}
}

var KMPCode = []string{
	"build failure table for p",
	"i, j := 0, 0",
	"for i < n {",
	"    if t[i] == p[j] { i++; j++; if j == m { report i-m; j = fail[j-1] } }",
	"    else if j > 0 { j = fail[j-1] } else { i++ }",
	"done",
}

// KMP builds the failure table first, then scans the text without moving
// backwards.
func KMP(text, pattern string) step.Producer {
	if p, ok := validate(text, pattern); !ok {
		return p
	}
	return func(yield func(step.Step) bool) {
		m := &matcher{text: text, pattern: pattern, t: []rune(text), p: []rune(pattern)}
		k := len(m.p)
		m.failure = make([]int, k)

		if !step.Emit(yield, m.snap(1, "failure[0] = 0.", -1, 0)) {
			return
		}
		length := 0
		for q := 1; q < k; {
			if m.p[q] == m.p[length] {
				length++
				m.failure[q] = length
				if !step.Emit(yield, m.snap(1, fmt.Sprintf("pattern[%d] extends a border: failure[%d] = %d.", q, q, length), -1, q, step.Span{Start: 0, End: length})) {
					return
				}
				q++
			} else if length > 0 {
				length = m.failure[length-1]
				if !step.Emit(yield, m.snap(1, fmt.Sprintf("pattern[%d] breaks the border; fall back to length %d.", q, length), -1, q)) {
					return
				}
			} else {
				m.failure[q] = 0
				if !step.Emit(yield, m.snap(1, fmt.Sprintf("No border ends at %d: failure[%d] = 0.", q, q), -1, q)) {
					return
				}
				q++
			}
		}

		n := len(m.t)
		i, j := 0, 0
		for i < n {
			if m.t[i] == m.p[j] {
				if !step.Emit(yield, m.snap(4, fmt.Sprintf("text[%d]=%q matches pattern[%d].", i, m.t[i], j), i, j, step.Span{Start: i - j, End: i + 1})) {
					return
				}
				i++
				j++
				if j == k {
					m.matches = append(m.matches, i-k)
					if !step.Emit(yield, m.snap(4, fmt.Sprintf("Match at %d.", i-k), i-1, -1, step.Span{Start: i - k, End: i})) {
						return
					}
					j = m.failure[j-1]
				}
				continue
			}
			if j > 0 {
				next := m.failure[j-1]
				if !step.Emit(yield, m.snap(5, fmt.Sprintf("Mismatch at text[%d]; shift pattern so j = failure[%d] = %d.", i, j-1, next), i, j)) {
					return
				}
				j = next
				continue
			}
			if !step.Emit(yield, m.snap(5, fmt.Sprintf("Mismatch at text[%d] with j = 0; advance i.", i), i, j)) {
				return
			}
			i++
		}
		step.Emit(yield, m.snap(6, m.summary(), -1, -1))
	}
}
