package config

import (
	"slices"

	"github.com/san-kum/stepviz/internal/algo/graph"
	"github.com/san-kum/stepviz/internal/algo/hashing"
	"github.com/san-kum/stepviz/internal/step"
)

func ptr[T any](v T) *T { return &v }

func newPreset(algo string, in InputConfig) *Config {
	return &Config{Algorithm: algo, SpeedMs: DefaultSpeedMs, LogLevel: DefaultLogLevel, DataDir: DefaultDataDir, Input: in}
}

var Presets = map[string]map[string]*Config{
	"bubble": {
		"reversed":   newPreset("bubble", InputConfig{Values: []int{9, 8, 7, 6, 5, 4, 3, 2, 1}}),
		"sorted":     newPreset("bubble", InputConfig{Values: []int{1, 2, 3, 4, 5, 6}}),
		"duplicates": newPreset("bubble", InputConfig{Values: []int{3, 1, 3, 2, 1, 2}}),
	},
	"quick": {
		"worst-case": newPreset("quick", InputConfig{Values: []int{1, 2, 3, 4, 5, 6, 7, 8}}),
		"random":     newPreset("quick", InputConfig{Values: []int{38, 27, 43, 3, 9, 82, 10}}),
	},
	"merge": {
		"classic": newPreset("merge", InputConfig{Values: []int{38, 27, 43, 3, 9, 82, 10}}),
	},
	"counting": {
		"negative": newPreset("counting", InputConfig{Values: []int{3, -1, 2}}),
		"classic":  newPreset("counting", InputConfig{Values: []int{4, 2, 2, 8, 3, 3, 1}}),
	},
	"binary-search": {
		"absent":   newPreset("binary-search", InputConfig{Values: []int{2, 4, 6, 8, 10, 12}, Target: ptr(7)}),
		"unsorted": newPreset("binary-search", InputConfig{Values: []int{5, 1, 4}, Target: ptr(4)}),
	},
	"hash-insert": {
		"full":      newPreset("hash-insert", InputConfig{Size: ptr(3), Values: []int{1, 2, 3}, Target: ptr(4)}),
		"clustered": newPreset("hash-insert", InputConfig{Size: ptr(7), Values: []int{7, 14, 21}, Target: ptr(28)}),
	},
	"hash-script": {
		"tombstones": newPreset("hash-script", InputConfig{Size: ptr(5), Ops: []hashing.Op{
			{Kind: hashing.OpInsert, Key: 1}, {Kind: hashing.OpInsert, Key: 6},
			{Kind: hashing.OpInsert, Key: 11}, {Kind: hashing.OpDelete, Key: 6},
			{Kind: hashing.OpSearch, Key: 11}, {Kind: hashing.OpInsert, Key: 16},
			{Kind: hashing.OpSearch, Key: 6},
		}}),
	},
	"topo-sort": {
		"cycle": newPreset("topo-sort", InputConfig{Graph: &graph.Graph{N: 3, Directed: true, Edges: []step.Edge{
			{From: 0, To: 1}, {From: 1, To: 2}, {From: 2, To: 0},
		}}}),
	},
	"dfs": {
		"disconnected": newPreset("dfs", InputConfig{Graph: &graph.Graph{N: 5, Edges: []step.Edge{
			{From: 0, To: 1}, {From: 1, To: 2}, {From: 3, To: 4},
		}}}),
	},
	"dijkstra": {
		"negative": newPreset("dijkstra", InputConfig{Graph: &graph.Graph{N: 3, Directed: true, Edges: []step.Edge{
			{From: 0, To: 1, Weight: 2}, {From: 1, To: 2, Weight: -1},
		}}}),
	},
	"nqueens": {
		"eight":      newPreset("nqueens", InputConfig{Size: ptr(8)}),
		"unsolvable": newPreset("nqueens", InputConfig{Size: ptr(3)}),
	},
	"maze": {
		"no-path": newPreset("maze", InputConfig{
			Grid: [][]int{{0, 1, 0}, {0, 1, 0}, {0, 1, 0}},
			From: &step.Cell{}, To: &step.Cell{Row: 2, Col: 2},
		}),
	},
	"kmp": {
		"repetitive": newPreset("kmp", InputConfig{Text: "AAAAAAAAAB", Pattern: "AAAB"}),
	},
	"detect-cycle": {
		"acyclic": newPreset("detect-cycle", InputConfig{Values: []int{1, 2, 3, 4}, Tail: ptr(-1)}),
	},
	"fibonacci": {
		"large": newPreset("fibonacci", InputConfig{Size: ptr(30)}),
	},
}

func GetPreset(algorithm, preset string) *Config {
	algoPresets, ok := Presets[algorithm]
	if !ok {
		return nil
	}
	cfg, ok := algoPresets[preset]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets(algorithm string) []string {
	algoPresets, ok := Presets[algorithm]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(algoPresets))
	for name := range algoPresets {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Algorithms lists every algorithm that has presets.
func Algorithms() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
