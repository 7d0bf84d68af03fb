package store

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/san-kum/stepviz/internal/step"
)

var ErrUnknownKind = errors.New("unknown step kind")

// Envelope tags an encoded Step with its family so it can be decoded back
// into the right variant.
type Envelope struct {
	Kind string          `json:"kind"`
	Step json.RawMessage `json:"step"`
}

func Encode(s step.Step) (Envelope, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return Envelope{}, fmt.Errorf("encode %s step: %w", s.Kind(), err)
	}
	return Envelope{Kind: s.Kind().String(), Step: data}, nil
}

func Decode(env Envelope) (step.Step, error) {
	f, ok := step.ParseFamily(env.Kind)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, env.Kind)
	}
	var s step.Step
	switch f {
	case step.FamilyArray:
		s = &step.ArrayStep{}
	case step.FamilyList:
		s = &step.ListStep{}
	case step.FamilyGrid:
		s = &step.GridStep{}
	case step.FamilyGraph:
		s = &step.GraphStep{}
	case step.FamilyString:
		s = &step.StringStep{}
	case step.FamilyBit:
		s = &step.BitStep{}
	case step.FamilyHash:
		s = &step.HashStep{}
	}
	if err := json.Unmarshal(env.Step, s); err != nil {
		return nil, fmt.Errorf("decode %s step: %w", env.Kind, err)
	}
	return s, nil
}

func encodeAll(seq step.Sequence) ([]Envelope, error) {
	out := make([]Envelope, 0, seq.Len())
	for _, s := range seq.All() {
		env, err := Encode(s)
		if err != nil {
			return nil, err
		}
		out = append(out, env)
	}
	return out, nil
}

func decodeAll(envs []Envelope) (step.Sequence, error) {
	steps := make([]step.Step, 0, len(envs))
	for i, env := range envs {
		s, err := Decode(env)
		if err != nil {
			return step.Sequence{}, fmt.Errorf("step %d: %w", i, err)
		}
		steps = append(steps, s)
	}
	return step.FromSteps(steps...), nil
}
