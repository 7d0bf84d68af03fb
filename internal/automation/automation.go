package automation

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"slices"
	"sync"
	"time"

	"github.com/san-kum/stepviz/internal/catalog"
	"github.com/san-kum/stepviz/internal/config"
	"github.com/san-kum/stepviz/internal/metrics"
	"github.com/san-kum/stepviz/internal/step"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Scenario is a scripted batch of algorithm runs
type Scenario struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Runs        []Run  `yaml:"runs"`
}

// Run is a single entry in a scenario. Input fields override the preset,
// which overrides the algorithm's sample input.
type Run struct {
	Name      string             `yaml:"name"`
	Algorithm string             `yaml:"algorithm"`
	Preset    string             `yaml:"preset"`
	Input     config.InputConfig `yaml:"input"`
}

// Result is one materialized run.
type Result struct {
	Name      string
	Algorithm string
	Sequence  step.Sequence
	Metrics   map[string]float64
}

// LoadScenario loads a scenario from a YAML file
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var scenario Scenario
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if len(scenario.Runs) == 0 {
		return nil, fmt.Errorf("%s: scenario has no runs", path)
	}
	for i, r := range scenario.Runs {
		if r.Algorithm == "" {
			return nil, fmt.Errorf("%s: run %d has no algorithm", path, i+1)
		}
	}
	return &scenario, nil
}

func (r Run) input(entry catalog.Entry) (catalog.Input, error) {
	in := entry.Sample
	if r.Preset != "" {
		cfg := config.GetPreset(entry.Name, r.Preset)
		if cfg == nil {
			return in, fmt.Errorf("unknown preset %q for %s", r.Preset, entry.Name)
		}
		in = cfg.Apply(in)
	}
	overlay := config.Config{Input: r.Input}
	return overlay.Apply(in), nil
}

// RunScenario materializes every run concurrently. Results keep the
// scenario's order; the first failing run's error is returned.
func RunScenario(ctx context.Context, sc *Scenario, reg *catalog.Registry, log *zap.Logger) ([]Result, error) {
	if log == nil {
		log = zap.NewNop()
	}
	results := make([]Result, len(sc.Runs))
	errs := make([]error, len(sc.Runs))

	var wg sync.WaitGroup
	for i, r := range sc.Runs {
		wg.Add(1)
		go func(idx int, r Run) {
			defer wg.Done()
			if err := ctx.Err(); err != nil {
				errs[idx] = err
				return
			}

			entry, err := reg.Get(r.Algorithm)
			if err != nil {
				errs[idx] = fmt.Errorf("run %d: %w", idx+1, err)
				return
			}
			in, err := r.input(entry)
			if err != nil {
				errs[idx] = fmt.Errorf("run %d: %w", idx+1, err)
				return
			}
			seq := step.Materialize(entry.Factory(in))
			name := r.Name
			if name == "" {
				name = entry.Name
			}
			results[idx] = Result{
				Name:      name,
				Algorithm: entry.Name,
				Sequence:  seq,
				Metrics:   metrics.Summarize(seq),
			}
			log.Debug("scenario run finished", zap.String("name", name), zap.Int("steps", seq.Len()))
		}(i, r)
	}

	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return results, nil
}

// Sweep runs one array algorithm over random inputs of growing length.
// Inputs stay sorted when the algorithm's sample is sorted.
type Sweep struct {
	Algorithm string
	MinSize   int
	MaxSize   int
	Points    int
	Seed      int64
}

// SweepResult holds one point of a sweep
type SweepResult struct {
	Size    int
	Steps   int
	Metrics map[string]float64
}

func (s *Sweep) sizes() ([]int, error) {
	if s.MinSize < 1 || s.MaxSize < s.MinSize {
		return nil, fmt.Errorf("invalid size range [%d, %d]", s.MinSize, s.MaxSize)
	}
	if s.MaxSize > step.MaxArray {
		return nil, fmt.Errorf("max size %d exceeds the %d-element array limit", s.MaxSize, step.MaxArray)
	}
	if s.Points < 1 {
		return nil, fmt.Errorf("points must be at least 1, got %d", s.Points)
	}
	if s.Points == 1 || s.MinSize == s.MaxSize {
		return []int{s.MinSize}, nil
	}
	points := min(s.Points, s.MaxSize-s.MinSize+1)
	sizes := make([]int, 0, points)
	span := float64(s.MaxSize - s.MinSize)
	for i := 0; i < points; i++ {
		n := s.MinSize + int(span*float64(i)/float64(points-1)+0.5)
		if len(sizes) > 0 && sizes[len(sizes)-1] == n {
			continue
		}
		sizes = append(sizes, n)
	}
	return sizes, nil
}

// RunSweep executes a sweep. A zero seed draws one from the clock.
func RunSweep(ctx context.Context, sw *Sweep, reg *catalog.Registry) ([]SweepResult, error) {
	entry, err := reg.Get(sw.Algorithm)
	if err != nil {
		return nil, err
	}
	if entry.Sample.Values == nil {
		return nil, fmt.Errorf("%s does not take an input array", entry.Name)
	}
	sizes, err := sw.sizes()
	if err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewSource(sw.Seed))
	if sw.Seed == 0 {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	results := make([]SweepResult, 0, len(sizes))
	for _, n := range sizes {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		in := entry.Sample
		in.Values = make([]int, n)
		for i := range in.Values {
			in.Values[i] = rng.Intn(100)
		}
		if slices.IsSorted(entry.Sample.Values) {
			slices.Sort(in.Values)
		}
		if entry.Sample.Target != 0 {
			in.Target = in.Values[rng.Intn(n)]
		}
		seq := step.Materialize(entry.Factory(in))
		results = append(results, SweepResult{
			Size:    n,
			Steps:   seq.Len(),
			Metrics: metrics.Summarize(seq),
		})
	}
	return results, nil
}
