package hashing

import (
	"fmt"

	"github.com/san-kum/stepviz/internal/step"
)

func chainSnap(chains [][]int, key, bucket int, line int, msg string) *step.HashStep {
	return &step.HashStep{
		Meta:   step.Meta{Message: msg, Line: line},
		Chains: chains,
		Key:    key,
		Hash:   bucket,
		Probe:  bucket,
	}
}

var ChainingCode = []string{
	"append key to bucket hash(key) mod size",
	"search: b = hash(q) mod size",
	"    compare q with each entry of bucket b",
	"not found",
}

// Chaining inserts keys into size buckets and then looks up query, walking
// the target bucket's chain.
func Chaining(size int, keys []int, query int) step.Producer {
	if p, bad := checkSize(size); bad {
		return p
	}
	if len(keys) > MaxTableSize {
		return rejectStep(fmt.Sprintf("Chaining is limited to %d keys, got %d.", MaxTableSize, len(keys)))
	}
	return func(yield func(step.Step) bool) {
		chains := make([][]int, size)
		for _, k := range keys {
			b := hashOf(k, size)
			chains[b] = append(chains[b], k)
			if !step.Emit(yield, chainSnap(chains, k, b, 1, fmt.Sprintf("Append %d to bucket %d.", k, b))) {
				return
			}
		}

		b := hashOf(query, size)
		if !step.Emit(yield, chainSnap(chains, query, b, 2, fmt.Sprintf("Search %d: bucket %d.", query, b))) {
			return
		}
		for i, k := range chains[b] {
			st := chainSnap(chains, query, b, 3, fmt.Sprintf("Compare %d with chain entry %d.", query, k))
			st.Probes = i + 1
			if k == query {
				st.Message = fmt.Sprintf("Found %d in bucket %d at position %d.", query, b, i)
				st.Found = true
				step.Emit(yield, st)
				return
			}
			if !step.Emit(yield, st) {
				return
			}
		}
		st := chainSnap(chains, query, b, 4, fmt.Sprintf("End of chain; %d not found.", query))
		st.Probes = len(chains[b])
		step.Emit(yield, st)
	}
}
