package step

import "iter"

// Producer is a lazy, finite Step stream. Ranging over it twice replays the
// algorithm from scratch.
type Producer = iter.Seq[Step]

// Emit deep-copies s and hands it to yield, so producers can build a Step over
// their scratch buffers without leaking them.
func Emit(yield func(Step) bool, s Step) bool {
	return yield(s.Clone())
}

// Single is a producer that emits exactly one Step. Producers use it for
// terminal explanations of invalid input.
func Single(s Step) Producer {
	return func(yield func(Step) bool) {
		Emit(yield, s)
	}
}

// Sequence is the materialized, read-only output of one producer run.
type Sequence struct {
	steps []Step
}

const emptyMessage = "No steps were produced."

// Materialize drains p eagerly. It performs no termination check of its own;
// producers must bound their own work.
func Materialize(p Producer) Sequence {
	steps := make([]Step, 0, 64)
	for s := range p {
		steps = append(steps, s)
	}
	if len(steps) == 0 {
		steps = append(steps, &ArrayStep{Meta: Meta{Message: emptyMessage}, Pivot: -1, Found: -1})
	}
	return Sequence{steps: steps}
}

// FromSteps builds a Sequence from existing Steps, copying each one.
func FromSteps(steps ...Step) Sequence {
	return Materialize(func(yield func(Step) bool) {
		for _, s := range steps {
			if !Emit(yield, s) {
				return
			}
		}
	})
}

func (q Sequence) Len() int { return len(q.steps) }

// At returns the Step at i. It panics when i is out of range, like a slice.
func (q Sequence) At(i int) Step { return q.steps[i] }

func (q Sequence) Last() Step {
	if len(q.steps) == 0 {
		return nil
	}
	return q.steps[len(q.steps)-1]
}

func (q Sequence) IsZero() bool { return len(q.steps) == 0 }

func (q Sequence) All() iter.Seq2[int, Step] {
	return func(yield func(int, Step) bool) {
		for i, s := range q.steps {
			if !yield(i, s) {
				return
			}
		}
	}
}

// Messages lists each Step's message in order.
func (q Sequence) Messages() []string {
	out := make([]string, len(q.steps))
	for i, s := range q.steps {
		out[i] = s.Info().Message
	}
	return out
}
