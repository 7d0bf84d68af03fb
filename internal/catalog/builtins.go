package catalog

import (
	"github.com/san-kum/stepviz/internal/algo/backtracking"
	"github.com/san-kum/stepviz/internal/algo/bits"
	"github.com/san-kum/stepviz/internal/algo/dp"
	"github.com/san-kum/stepviz/internal/algo/graph"
	"github.com/san-kum/stepviz/internal/algo/hashing"
	"github.com/san-kum/stepviz/internal/algo/linkedlist"
	"github.com/san-kum/stepviz/internal/algo/searching"
	"github.com/san-kum/stepviz/internal/algo/sorting"
	"github.com/san-kum/stepviz/internal/algo/strmatch"
	"github.com/san-kum/stepviz/internal/step"
)

var (
	sampleArray = []int{5, 3, 8, 1, 9, 2, 7}
	sampleGraph = graph.Graph{
		N: 6,
		Edges: []step.Edge{
			{From: 0, To: 1, Weight: 4}, {From: 0, To: 2, Weight: 1}, {From: 2, To: 1, Weight: 2},
			{From: 1, To: 3, Weight: 5}, {From: 2, To: 4, Weight: 8}, {From: 3, To: 5, Weight: 3},
			{From: 4, To: 5, Weight: 1},
		},
		Directed: true,
	}
	sampleCyclic = graph.Graph{
		N: 6,
		Edges: []step.Edge{
			{From: 0, To: 1}, {From: 1, To: 2}, {From: 2, To: 0},
			{From: 2, To: 3}, {From: 3, To: 4}, {From: 4, To: 3}, {From: 4, To: 5},
		},
		Directed: true,
	}
	sampleMaze = [][]int{
		{0, 0, 1, 0, 0},
		{1, 0, 1, 0, 1},
		{0, 0, 0, 0, 0},
		{0, 1, 1, 1, 0},
		{0, 0, 0, 1, 0},
	}
	sampleSudoku = [][]int{
		{1, 0, 0, 4},
		{0, 0, 1, 0},
		{0, 1, 0, 0},
		{4, 0, 0, 1},
	}
)

func sorter(name, summary string, code []string, fn func([]int) step.Producer) Entry {
	return Entry{
		Name: name, Family: step.FamilyArray, Summary: summary, Code: code,
		Sample:  Input{Values: sampleArray},
		Factory: func(in Input) step.Producer { return fn(in.Values) },
	}
}

func builtins() []Entry {
	return []Entry{
		sorter("bubble", "Bubble sort with early exit on a pass without swaps.", sorting.BubbleCode, sorting.Bubble),
		sorter("selection", "Selection sort: swap the minimum of the unsorted suffix into place.", sorting.SelectionCode, sorting.Selection),
		sorter("insertion", "Insertion sort: grow a sorted prefix one element at a time.", sorting.InsertionCode, sorting.Insertion),
		sorter("merge", "Top-down merge sort.", sorting.MergeCode, sorting.Merge),
		sorter("quick", "Quicksort with the Lomuto partition scheme.", sorting.QuickCode, sorting.Quick),
		sorter("heap", "Heapsort over an implicit binary max-heap.", sorting.HeapCode, sorting.Heap),
		{
			Name: "counting", Family: step.FamilyArray,
			Summary: "Counting sort for small non-negative integers.",
			Code:    sorting.CountingCode,
			Sample:  Input{Values: []int{4, 2, 2, 8, 3, 3, 1}},
			Factory: func(in Input) step.Producer { return sorting.Counting(in.Values) },
		},
		{
			Name: "linear-search", Family: step.FamilyArray,
			Summary: "Scan left to right for the target.",
			Code:    searching.LinearCode,
			Sample:  Input{Values: sampleArray, Target: 9},
			Factory: func(in Input) step.Producer { return searching.Linear(in.Values, in.Target) },
		},
		{
			Name: "binary-search", Family: step.FamilyArray,
			Summary: "Halve the search range of a sorted array.",
			Code:    searching.BinaryCode,
			Sample:  Input{Values: []int{1, 3, 5, 7, 9, 11, 13, 15}, Target: 11},
			Factory: func(in Input) step.Producer { return searching.Binary(in.Values, in.Target) },
		},
		{
			Name: "hash-insert", Family: step.FamilyHash,
			Summary: "Insert into an open-addressing table with linear probing.",
			Code:    hashing.InsertCode,
			Sample:  Input{Size: 7, Values: []int{10, 3, 17}, Target: 24},
			Factory: func(in Input) step.Producer {
				return hashing.Insert(hashing.Build(in.Size, in.Values...), in.Target)
			},
		},
		{
			Name: "hash-search", Family: step.FamilyHash,
			Summary: "Search an open-addressing table; empty slots stop the probe.",
			Code:    hashing.SearchCode,
			Sample:  Input{Size: 7, Values: []int{10, 3, 17, 24}, Target: 31},
			Factory: func(in Input) step.Producer {
				return hashing.Search(hashing.Build(in.Size, in.Values...), in.Target)
			},
		},
		{
			Name: "hash-delete", Family: step.FamilyHash,
			Summary: "Delete from an open-addressing table by leaving a tombstone.",
			Code:    hashing.SearchCode,
			Sample:  Input{Size: 7, Values: []int{10, 3, 17, 24}, Target: 17},
			Factory: func(in Input) step.Producer {
				return hashing.Delete(hashing.Build(in.Size, in.Values...), in.Target)
			},
		},
		{
			Name: "hash-script", Family: step.FamilyHash,
			Summary: "Replay a list of insert, search and delete operations on one table.",
			Code:    hashing.InsertCode,
			Sample: Input{Size: 5, Ops: []hashing.Op{
				{Kind: hashing.OpInsert, Key: 5}, {Kind: hashing.OpInsert, Key: 10},
				{Kind: hashing.OpInsert, Key: 15}, {Kind: hashing.OpDelete, Key: 10},
				{Kind: hashing.OpSearch, Key: 15}, {Kind: hashing.OpInsert, Key: 20},
			}},
			Factory: func(in Input) step.Producer {
				return hashing.Script(hashing.Build(in.Size, in.Values...), in.Ops)
			},
		},
		{
			Name: "hash-chaining", Family: step.FamilyHash,
			Summary: "Separate chaining: each bucket holds a list of keys.",
			Code:    hashing.ChainingCode,
			Sample:  Input{Size: 5, Values: []int{12, 7, 22, 3, 17}, Target: 17},
			Factory: func(in Input) step.Producer { return hashing.Chaining(in.Size, in.Values, in.Target) },
		},
		{
			Name: "bfs", Family: step.FamilyGraph,
			Summary: "Breadth-first search with a FIFO frontier.",
			Code:    graph.BFSCode,
			Sample:  Input{Graph: sampleGraph},
			Factory: func(in Input) step.Producer { return graph.BFS(in.Graph, in.Start) },
		},
		{
			Name: "dfs", Family: step.FamilyGraph,
			Summary: "Recursive depth-first search with explicit backtracking.",
			Code:    graph.DFSCode,
			Sample:  Input{Graph: sampleGraph},
			Factory: func(in Input) step.Producer { return graph.DFS(in.Graph, in.Start) },
		},
		{
			Name: "topo-sort", Family: step.FamilyGraph,
			Summary: "Topological order by reverse DFS finish time.",
			Code:    graph.TopologicalSortCode,
			Sample:  Input{Graph: sampleGraph},
			Factory: func(in Input) step.Producer { return graph.TopologicalSort(in.Graph) },
		},
		{
			Name: "dijkstra", Family: step.FamilyGraph,
			Summary: "Single-source shortest paths with non-negative weights.",
			Code:    graph.DijkstraCode,
			Sample:  Input{Graph: sampleGraph},
			Factory: func(in Input) step.Producer { return graph.Dijkstra(in.Graph, in.Start) },
		},
		{
			Name: "scc", Family: step.FamilyGraph,
			Summary: "Strongly connected components with Kosaraju's two passes.",
			Code:    graph.SCCCode,
			Sample:  Input{Graph: sampleCyclic},
			Factory: func(in Input) step.Producer { return graph.SCC(in.Graph) },
		},
		{
			Name: "fibonacci", Family: step.FamilyGrid,
			Summary: "Bottom-up Fibonacci table.",
			Code:    dp.FibonacciCode,
			Sample:  Input{Size: 10},
			Factory: func(in Input) step.Producer { return dp.Fibonacci(in.Size) },
		},
		{
			Name: "lcs", Family: step.FamilyGrid,
			Summary: "Longest common subsequence of text and pattern.",
			Code:    dp.LCSCode,
			Sample:  Input{Text: "ABCBDAB", Pattern: "BDCABA"},
			Factory: func(in Input) step.Producer { return dp.LCS(in.Text, in.Pattern) },
		},
		{
			Name: "knapsack", Family: step.FamilyGrid,
			Summary: "0/1 knapsack over item weights and values.",
			Code:    dp.KnapsackCode,
			Sample: Input{
				Items:    []dp.Item{{Weight: 1, Value: 1}, {Weight: 3, Value: 4}, {Weight: 4, Value: 5}, {Weight: 5, Value: 7}},
				Capacity: 7,
			},
			Factory: func(in Input) step.Producer { return dp.Knapsack(in.Items, in.Capacity) },
		},
		{
			Name: "edit-distance", Family: step.FamilyGrid,
			Summary: "Levenshtein distance between text and pattern.",
			Code:    dp.EditDistanceCode,
			Sample:  Input{Text: "kitten", Pattern: "sitting"},
			Factory: func(in Input) step.Producer { return dp.EditDistance(in.Text, in.Pattern) },
		},
		{
			Name: "nqueens", Family: step.FamilyGrid,
			Summary: "Place N queens so none attack each other.",
			Code:    backtracking.NQueensCode,
			Sample:  Input{Size: 4},
			Factory: func(in Input) step.Producer { return backtracking.NQueens(in.Size) },
		},
		{
			Name: "maze", Family: step.FamilyGrid,
			Summary: "Depth-first maze solving with dead-end backtracking.",
			Sample:  Input{Grid: sampleMaze, From: step.Cell{}, To: step.Cell{Row: 4, Col: 4}},
			Factory: func(in Input) step.Producer { return backtracking.SolveMaze(in.Grid, in.From, in.To) },
		},
		{
			Name: "sudoku", Family: step.FamilyGrid,
			Summary: "Backtracking Sudoku solver for 4x4 and 9x9 boards.",
			Sample:  Input{Grid: sampleSudoku},
			Factory: func(in Input) step.Producer { return backtracking.Sudoku(in.Grid) },
		},
		{
			Name: "naive-match", Family: step.FamilyString,
			Summary: "Try the pattern at every shift of the text.",
			Code:    strmatch.NaiveCode,
			Sample:  Input{Text: "ABABDABACDABABCABAB", Pattern: "ABABCABAB"},
			Factory: func(in Input) step.Producer { return strmatch.Naive(in.Text, in.Pattern) },
		},
		{
			Name: "kmp", Family: step.FamilyString,
			Summary: "Knuth-Morris-Pratt matching with a failure table.",
			Code:    strmatch.KMPCode,
			Sample:  Input{Text: "ABABDABACDABABCABAB", Pattern: "ABABCABAB"},
			Factory: func(in Input) step.Producer { return strmatch.KMP(in.Text, in.Pattern) },
		},
		{
			Name: "count-bits", Family: step.FamilyBit,
			Summary: "Count set bits by clearing the lowest one each round.",
			Code:    bits.CountSetBitsCode,
			Sample:  Input{Bits: 0b10110110, Width: 8},
			Factory: func(in Input) step.Producer { return bits.CountSetBits(in.Bits, in.Width) },
		},
		{
			Name: "power-of-two", Family: step.FamilyBit,
			Summary: "Test v & (v-1) == 0.",
			Sample:  Input{Bits: 64, Width: 8},
			Factory: func(in Input) step.Producer { return bits.PowerOfTwo(in.Bits, in.Width) },
		},
		{
			Name: "reverse-bits", Family: step.FamilyBit,
			Summary: "Mirror the low width bits.",
			Sample:  Input{Bits: 0b00010110, Width: 8},
			Factory: func(in Input) step.Producer { return bits.Reverse(in.Bits, in.Width) },
		},
		{
			Name: "reverse-list", Family: step.FamilyList,
			Summary: "Reverse a singly linked list in place.",
			Code:    linkedlist.ReverseCode,
			Sample:  Input{Values: []int{1, 2, 3, 4, 5}, Tail: -1},
			Factory: func(in Input) step.Producer { return linkedlist.Reverse(in.Values) },
		},
		{
			Name: "detect-cycle", Family: step.FamilyList,
			Summary: "Floyd's tortoise and hare.",
			Sample:  Input{Values: []int{3, 1, 4, 1, 5, 9}, Tail: 2},
			Factory: func(in Input) step.Producer { return linkedlist.DetectCycle(in.Values, in.Tail) },
		},
	}
}
