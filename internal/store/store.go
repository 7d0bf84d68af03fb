// Package store exports materialized step sequences as JSON traces and
// reads them back. Only the steps are kept; a player's cursor, speed and
// state are never written.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/san-kum/stepviz/internal/step"
)

var ErrTraceNotFound = errors.New("trace not found")

const (
	metadataFile = "metadata.json"
	stepsFile    = "steps.json"
)

type Store struct {
	baseDir string
	now     func() time.Time
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir, now: time.Now}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type TraceMetadata struct {
	ID        string             `json:"id"`
	Algorithm string             `json:"algorithm"`
	Family    string             `json:"family"`
	Timestamp time.Time          `json:"timestamp"`
	Steps     int                `json:"steps"`
	Metrics   map[string]float64 `json:"metrics,omitempty"`
}

// Trace is a loaded export.
type Trace struct {
	Meta     TraceMetadata
	Sequence step.Sequence
}

// document is the single-file form written by Export.
type document struct {
	TraceMetadata
	Trace []Envelope `json:"trace"`
}

// Save writes seq under a new trace directory and returns its ID.
func (s *Store) Save(algorithm string, seq step.Sequence, metrics map[string]float64) (string, error) {
	ts := s.now()
	id := fmt.Sprintf("%s_%d", algorithm, ts.UnixNano())
	dir := filepath.Join(s.baseDir, id)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}

	envs, err := encodeAll(seq)
	if err != nil {
		return "", err
	}
	meta := metadataFor(id, algorithm, ts, seq, metrics)
	if err := writeJSON(filepath.Join(dir, metadataFile), meta); err != nil {
		return "", err
	}
	if err := writeJSON(filepath.Join(dir, stepsFile), envs); err != nil {
		return "", err
	}
	return id, nil
}

// List returns the metadata of every readable trace, oldest first.
func (s *Store) List() ([]TraceMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []TraceMetadata{}, nil
		}
		return nil, err
	}

	traces := make([]TraceMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		var meta TraceMetadata
		if err := readJSON(filepath.Join(s.baseDir, entry.Name(), metadataFile), &meta); err != nil {
			continue
		}
		traces = append(traces, meta)
	}
	slices.SortFunc(traces, func(a, b TraceMetadata) int { return a.Timestamp.Compare(b.Timestamp) })
	return traces, nil
}

func (s *Store) Load(id string) (*Trace, error) {
	dir := filepath.Join(s.baseDir, id)
	var meta TraceMetadata
	if err := readJSON(filepath.Join(dir, metadataFile), &meta); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrTraceNotFound, id)
		}
		return nil, err
	}
	var envs []Envelope
	if err := readJSON(filepath.Join(dir, stepsFile), &envs); err != nil {
		return nil, err
	}
	seq, err := decodeAll(envs)
	if err != nil {
		return nil, fmt.Errorf("trace %s: %w", id, err)
	}
	return &Trace{Meta: meta, Sequence: seq}, nil
}

// Export writes seq and its metadata as one indented JSON document.
func Export(w io.Writer, algorithm string, seq step.Sequence, metrics map[string]float64) error {
	envs, err := encodeAll(seq)
	if err != nil {
		return err
	}
	doc := document{
		TraceMetadata: metadataFor("", algorithm, time.Now(), seq, metrics),
		Trace:         envs,
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(doc)
}

// Import reads a document written by Export.
func Import(r io.Reader) (*Trace, error) {
	var doc document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, err
	}
	seq, err := decodeAll(doc.Trace)
	if err != nil {
		return nil, err
	}
	return &Trace{Meta: doc.TraceMetadata, Sequence: seq}, nil
}

func metadataFor(id, algorithm string, ts time.Time, seq step.Sequence, metrics map[string]float64) TraceMetadata {
	meta := TraceMetadata{
		ID:        id,
		Algorithm: algorithm,
		Timestamp: ts,
		Steps:     seq.Len(),
		Metrics:   metrics,
	}
	if seq.Len() > 0 {
		meta.Family = seq.At(0).Kind().String()
	}
	return meta
}

func writeJSON(path string, v any) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(v); err != nil {
		file.Close()
		return err
	}
	// a failed close can mean the data never reached disk
	return file.Close()
}

func readJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}
