package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/san-kum/stepviz/internal/algo/dp"
	"github.com/san-kum/stepviz/internal/algo/graph"
	"github.com/san-kum/stepviz/internal/algo/hashing"
	"github.com/san-kum/stepviz/internal/catalog"
	"github.com/san-kum/stepviz/internal/step"
	"gopkg.in/yaml.v3"
)

const (
	DefaultAlgorithm = "bubble"
	DefaultSpeedMs   = 500
	DefaultLogLevel  = "info"
	DefaultDataDir   = "traces"
)

type Config struct {
	Algorithm string      `yaml:"algorithm"`
	SpeedMs   int         `yaml:"speed_ms"`
	LogLevel  string      `yaml:"log_level"`
	DataDir   string      `yaml:"data_dir"`
	Input     InputConfig `yaml:"input"`
}

// InputConfig mirrors catalog.Input. Nil or empty fields are left to the
// algorithm's sample input.
type InputConfig struct {
	Values   []int        `yaml:"values,omitempty"`
	Target   *int         `yaml:"target,omitempty"`
	Size     *int         `yaml:"size,omitempty"`
	Text     string       `yaml:"text,omitempty"`
	Pattern  string       `yaml:"pattern,omitempty"`
	Graph    *graph.Graph `yaml:"graph,omitempty"`
	Start    *int         `yaml:"start,omitempty"`
	Grid     [][]int      `yaml:"grid,omitempty"`
	From     *step.Cell   `yaml:"from,omitempty"`
	To       *step.Cell   `yaml:"to,omitempty"`
	Ops      []hashing.Op `yaml:"ops,omitempty"`
	Items    []dp.Item    `yaml:"items,omitempty"`
	Capacity *int         `yaml:"capacity,omitempty"`
	Bits     *uint32      `yaml:"bits,omitempty"`
	Width    *int         `yaml:"width,omitempty"`
	Tail     *int         `yaml:"tail,omitempty"`
}

func DefaultConfig() *Config {
	return &Config{
		Algorithm: DefaultAlgorithm,
		SpeedMs:   DefaultSpeedMs,
		LogLevel:  DefaultLogLevel,
		DataDir:   DefaultDataDir,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if c.Algorithm == "" {
		return errors.New("algorithm must be set")
	}
	if c.SpeedMs <= 0 {
		return fmt.Errorf("speed_ms must be positive, got %d", c.SpeedMs)
	}
	return nil
}

func (c *Config) Speed() time.Duration {
	return time.Duration(c.SpeedMs) * time.Millisecond
}

// Apply overlays every field set in the config onto base.
func (c *Config) Apply(base catalog.Input) catalog.Input {
	in := base
	ic := c.Input
	if ic.Values != nil {
		in.Values = ic.Values
	}
	if ic.Target != nil {
		in.Target = *ic.Target
	}
	if ic.Size != nil {
		in.Size = *ic.Size
	}
	if ic.Text != "" {
		in.Text = ic.Text
	}
	if ic.Pattern != "" {
		in.Pattern = ic.Pattern
	}
	if ic.Graph != nil {
		in.Graph = *ic.Graph
	}
	if ic.Start != nil {
		in.Start = *ic.Start
	}
	if ic.Grid != nil {
		in.Grid = ic.Grid
	}
	if ic.From != nil {
		in.From = *ic.From
	}
	if ic.To != nil {
		in.To = *ic.To
	}
	if ic.Ops != nil {
		in.Ops = ic.Ops
	}
	if ic.Items != nil {
		in.Items = ic.Items
	}
	if ic.Capacity != nil {
		in.Capacity = *ic.Capacity
	}
	if ic.Bits != nil {
		in.Bits = *ic.Bits
	}
	if ic.Width != nil {
		in.Width = *ic.Width
	}
	if ic.Tail != nil {
		in.Tail = *ic.Tail
	}
	return in
}
