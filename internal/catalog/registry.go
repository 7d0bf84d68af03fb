// Package catalog maps algorithm names to step producers.
package catalog

import (
	"errors"
	"fmt"
	"slices"

	"github.com/san-kum/stepviz/internal/step"
	"go.uber.org/zap"
)

var ErrUnknownAlgorithm = errors.New("unknown algorithm")

// Entry describes one runnable algorithm.
type Entry struct {
	Name    string
	Family  step.Family
	Summary string
	// Code is the pseudo-code that Step.Info().Line indexes into (1-based).
	Code []string
	// Sample is a small input that makes a good demonstration.
	Sample  Input
	Factory func(Input) step.Producer
}

type Registry struct {
	entries map[string]Entry
	log     *zap.Logger
}

type Option func(*Registry)

func WithLogger(l *zap.Logger) Option {
	return func(r *Registry) { r.log = l }
}

// NewRegistry returns a registry holding every built-in algorithm.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{entries: make(map[string]Entry), log: zap.NewNop()}
	for _, opt := range opts {
		opt(r)
	}
	for _, e := range builtins() {
		r.Register(e)
	}
	return r
}

// Register adds or replaces an entry.
func (r *Registry) Register(e Entry) {
	r.entries[e.Name] = e
}

func (r *Registry) Get(name string) (Entry, error) {
	e, ok := r.entries[name]
	if !ok {
		r.log.Warn("unknown algorithm requested", zap.String("name", name))
		return Entry{}, fmt.Errorf("%w: %s", ErrUnknownAlgorithm, name)
	}
	return e, nil
}

// List returns all algorithm names in ascending order.
func (r *Registry) List() []string {
	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// ByFamily returns entries of one family ordered by name.
func (r *Registry) ByFamily(f step.Family) []Entry {
	var out []Entry
	for _, name := range r.List() {
		if e := r.entries[name]; e.Family == f {
			out = append(out, e)
		}
	}
	return out
}

// Describe renders a short human-readable description with numbered code.
func (r *Registry) Describe(name string) (string, error) {
	e, err := r.Get(name)
	if err != nil {
		return "", err
	}
	s := fmt.Sprintf("%s (%s)\n  %s\n", e.Name, e.Family, e.Summary)
	for i, line := range e.Code {
		s += fmt.Sprintf("  %2d | %s\n", i+1, line)
	}
	return s, nil
}

// Producer returns the lazy producer for name over in.
func (r *Registry) Producer(name string, in Input) (step.Producer, error) {
	e, err := r.Get(name)
	if err != nil {
		return nil, err
	}
	return e.Factory(in), nil
}

// Run materializes the producer for name. An unknown name is the only
// error; bad parameters surface as explanatory Steps.
func (r *Registry) Run(name string, in Input) (step.Sequence, error) {
	p, err := r.Producer(name, in)
	if err != nil {
		return step.Sequence{}, err
	}
	seq := step.Materialize(p)
	r.log.Debug("materialized sequence", zap.String("name", name), zap.Int("steps", seq.Len()))
	return seq, nil
}
