package catalog

import (
	"github.com/san-kum/stepviz/internal/algo/dp"
	"github.com/san-kum/stepviz/internal/algo/graph"
	"github.com/san-kum/stepviz/internal/algo/hashing"
	"github.com/san-kum/stepviz/internal/step"
)

// Input is the union of parameters any algorithm in the catalog reads.
// Each factory picks the fields it needs and ignores the rest. Callers
// usually start from an Entry's Sample and overwrite what they set.
type Input struct {
	Values []int
	Target int
	Size   int

	Text    string
	Pattern string

	Graph graph.Graph
	Start int

	Grid [][]int
	From step.Cell
	To   step.Cell

	Ops      []hashing.Op
	Items    []dp.Item
	Capacity int

	Bits  uint32
	Width int

	// Tail is the index the last list node links back to; -1 for none.
	Tail int
}
