package step

import "slices"

// MaxArray bounds the arrays and lists a producer accepts. Every Step holds a
// full copy of its structure, so larger inputs end in one explanatory Step.
const MaxArray = 64

type Family int

const (
	FamilyArray Family = iota
	FamilyList
	FamilyGrid
	FamilyGraph
	FamilyString
	FamilyBit
	FamilyHash
)

var familyNames = [...]string{"array", "list", "grid", "graph", "string", "bit", "hash"}

func (f Family) String() string {
	if f < 0 || int(f) >= len(familyNames) {
		return "unknown"
	}
	return familyNames[f]
}

// ParseFamily is the inverse of Family.String.
func ParseFamily(s string) (Family, bool) {
	for i, name := range familyNames {
		if name == s {
			return Family(i), true
		}
	}
	return 0, false
}

// Meta holds the fields every Step carries. Line is 1-based; 0 means no line.
type Meta struct {
	Message string `json:"message"`
	Line    int    `json:"line,omitempty"`
}

// Step is an immutable snapshot of everything a renderer needs at one instant.
type Step interface {
	Kind() Family
	Info() Meta
	Clone() Step
	sealed()
}

// ArrayStep covers sorting and searching. Index sets are kept ascending.
// Pivot and Found are -1 when unset; Range is nil or a [lo, hi] pair.
type ArrayStep struct {
	Meta
	Array     []int  `json:"array"`
	Comparing []int  `json:"comparing,omitempty"`
	Swapping  []int  `json:"swapping,omitempty"`
	Sorted    []int  `json:"sorted,omitempty"`
	Pivot     int    `json:"pivot"`
	Found     int    `json:"found"`
	Range     []int  `json:"range,omitempty"`
	Aux       []int  `json:"aux,omitempty"`
	AuxLabel  string `json:"aux_label,omitempty"`
}

func (s *ArrayStep) Kind() Family { return FamilyArray }
func (s *ArrayStep) Info() Meta   { return s.Meta }
func (s *ArrayStep) sealed()      {}

func (s *ArrayStep) Clone() Step {
	c := *s
	c.Array = slices.Clone(s.Array)
	c.Comparing = slices.Clone(s.Comparing)
	c.Swapping = slices.Clone(s.Swapping)
	c.Sorted = slices.Clone(s.Sorted)
	c.Range = slices.Clone(s.Range)
	c.Aux = slices.Clone(s.Aux)
	return &c
}

// ListStep is a singly linked list laid out as parallel arrays: node i holds
// Values[i] and points at Next[i] (-1 for nil). Prev, Curr and Ahead are node
// cursors, -1 when unset.
type ListStep struct {
	Meta
	Values    []int `json:"values"`
	Next      []int `json:"next"`
	Head      int   `json:"head"`
	Prev      int   `json:"prev"`
	Curr      int   `json:"curr"`
	Ahead     int   `json:"ahead"`
	Highlight []int `json:"highlight,omitempty"`
}

func (s *ListStep) Kind() Family { return FamilyList }
func (s *ListStep) Info() Meta   { return s.Meta }
func (s *ListStep) sealed()      {}

func (s *ListStep) Clone() Step {
	c := *s
	c.Values = slices.Clone(s.Values)
	c.Next = slices.Clone(s.Next)
	c.Highlight = slices.Clone(s.Highlight)
	return &c
}

// Cell addresses a grid position.
type Cell struct {
	Row int `json:"row" yaml:"row"`
	Col int `json:"col" yaml:"col"`
}

// GridStep covers DP tables and board puzzles. Active is nil when no cell is
// being computed. Backtrack marks a Step that undoes an earlier placement.
type GridStep struct {
	Meta
	Grid      [][]int  `json:"grid"`
	Active    *Cell    `json:"active,omitempty"`
	Compared  []Cell   `json:"compared,omitempty"`
	Path      []Cell   `json:"path,omitempty"`
	RowLabels []string `json:"row_labels,omitempty"`
	ColLabels []string `json:"col_labels,omitempty"`
	Solution  []int    `json:"solution,omitempty"`
	Result    *int     `json:"result,omitempty"`
	Backtrack bool     `json:"backtrack,omitempty"`
}

func (s *GridStep) Kind() Family { return FamilyGrid }
func (s *GridStep) Info() Meta   { return s.Meta }
func (s *GridStep) sealed()      {}

func (s *GridStep) Clone() Step {
	c := *s
	c.Grid = CloneGrid(s.Grid)
	if s.Active != nil {
		a := *s.Active
		c.Active = &a
	}
	if s.Result != nil {
		r := *s.Result
		c.Result = &r
	}
	c.Compared = slices.Clone(s.Compared)
	c.Path = slices.Clone(s.Path)
	c.RowLabels = slices.Clone(s.RowLabels)
	c.ColLabels = slices.Clone(s.ColLabels)
	c.Solution = slices.Clone(s.Solution)
	return &c
}

// Edge is a directed, optionally weighted edge.
type Edge struct {
	From   int `json:"from" yaml:"from"`
	To     int `json:"to" yaml:"to"`
	Weight int `json:"weight,omitempty" yaml:"weight,omitempty"`
}

// GraphStep covers traversals and graph algorithms. Nodes are 0..N-1. Frontier
// is the DFS stack or BFS queue in its natural order. Distances uses -1 for
// unreachable.
type GraphStep struct {
	Meta
	N          int     `json:"n"`
	Edges      []Edge  `json:"edges"`
	Directed   bool    `json:"directed"`
	Transposed bool    `json:"transposed,omitempty"`
	Current    int     `json:"current"`
	Visited    []int   `json:"visited,omitempty"`
	Frontier   []int   `json:"frontier,omitempty"`
	Order      []int   `json:"order,omitempty"`
	Active     *Edge   `json:"active,omitempty"`
	Components [][]int `json:"components,omitempty"`
	Distances  []int   `json:"distances,omitempty"`
	Backtrack  bool    `json:"backtrack,omitempty"`
}

func (s *GraphStep) Kind() Family { return FamilyGraph }
func (s *GraphStep) Info() Meta   { return s.Meta }
func (s *GraphStep) sealed()      {}

func (s *GraphStep) Clone() Step {
	c := *s
	c.Edges = slices.Clone(s.Edges)
	c.Visited = slices.Clone(s.Visited)
	c.Frontier = slices.Clone(s.Frontier)
	c.Order = slices.Clone(s.Order)
	c.Distances = slices.Clone(s.Distances)
	if s.Active != nil {
		e := *s.Active
		c.Active = &e
	}
	if s.Components != nil {
		c.Components = make([][]int, len(s.Components))
		for i, comp := range s.Components {
			c.Components[i] = slices.Clone(comp)
		}
	}
	return &c
}

// Span is a half-open [Start, End) range over a string.
type Span struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// StringStep covers pattern matching. I indexes Text, J indexes Pattern; -1
// hides a pointer.
type StringStep struct {
	Meta
	Text      string `json:"text"`
	Pattern   string `json:"pattern"`
	I         int    `json:"i"`
	J         int    `json:"j"`
	Matches   []int  `json:"matches,omitempty"`
	Highlight []Span `json:"highlight,omitempty"`
	Failure   []int  `json:"failure,omitempty"`
}

func (s *StringStep) Kind() Family { return FamilyString }
func (s *StringStep) Info() Meta   { return s.Meta }
func (s *StringStep) sealed()      {}

func (s *StringStep) Clone() Step {
	c := *s
	c.Matches = slices.Clone(s.Matches)
	c.Highlight = slices.Clone(s.Highlight)
	c.Failure = slices.Clone(s.Failure)
	return &c
}

// BitStep shows a Width-bit word. Bit is the highlighted position (0 = least
// significant) or -1.
type BitStep struct {
	Meta
	Value  uint32 `json:"value"`
	Width  int    `json:"width"`
	Bit    int    `json:"bit"`
	Mask   uint32 `json:"mask,omitempty"`
	Result int    `json:"result"`
}

func (s *BitStep) Kind() Family { return FamilyBit }
func (s *BitStep) Info() Meta   { return s.Meta }
func (s *BitStep) sealed()      {}

func (s *BitStep) Clone() Step {
	c := *s
	return &c
}

// SlotState distinguishes never-used slots from deleted ones.
type SlotState int

const (
	SlotEmpty SlotState = iota
	SlotOccupied
	SlotTombstone
)

func (s SlotState) String() string {
	switch s {
	case SlotOccupied:
		return "occupied"
	case SlotTombstone:
		return "tombstone"
	default:
		return "empty"
	}
}

type Slot struct {
	State SlotState `json:"state"`
	Key   int       `json:"key"`
}

// HashStep covers open addressing and separate chaining. Probe is the slot
// under inspection (-1 when none); Probes counts attempts so far for the
// current operation. Chains is only set for separate chaining.
type HashStep struct {
	Meta
	Slots  []Slot  `json:"slots,omitempty"`
	Chains [][]int `json:"chains,omitempty"`
	Key    int     `json:"key"`
	Hash   int     `json:"hash"`
	Probe  int     `json:"probe"`
	Probes int     `json:"probes"`
	Found  bool    `json:"found,omitempty"`
}

func (s *HashStep) Kind() Family { return FamilyHash }
func (s *HashStep) Info() Meta   { return s.Meta }
func (s *HashStep) sealed()      {}

func (s *HashStep) Clone() Step {
	c := *s
	c.Slots = slices.Clone(s.Slots)
	if s.Chains != nil {
		c.Chains = make([][]int, len(s.Chains))
		for i, ch := range s.Chains {
			c.Chains[i] = slices.Clone(ch)
		}
	}
	return &c
}

func CloneGrid(g [][]int) [][]int {
	if g == nil {
		return nil
	}
	c := make([][]int, len(g))
	for i, row := range g {
		c[i] = slices.Clone(row)
	}
	return c
}

// Indices returns [lo, hi] inclusive, or nil when lo > hi.
func Indices(lo, hi int) []int {
	if lo > hi {
		return nil
	}
	out := make([]int, 0, hi-lo+1)
	for i := lo; i <= hi; i++ {
		out = append(out, i)
	}
	return out
}
