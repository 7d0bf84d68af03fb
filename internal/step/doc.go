// Package step provides the snapshot primitives shared by every algorithm producer
// and by the playback controller.
//
// The package defines:
//
//   - [Step]: a sealed sum type over the per-family snapshot records
//     ([ArrayStep], [ListStep], [GridStep], [GraphStep], [StringStep], [BitStep], [HashStep])
//   - [Producer]: a lazy, restartable iterator of Steps
//   - [Sequence]: the materialized, randomly indexable result of draining a Producer
//
// # Example
//
//	seq := step.Materialize(sorting.Bubble([]int{5, 3, 1, 4, 2}))
//	last := seq.Last().(*step.ArrayStep)
//	fmt.Println(last.Array, last.Sorted)
//
// # Ownership
//
// A Step never shares storage with another Step. Producers keep one mutable scratch
// buffer and send snapshots through [Emit], which deep-copies before handing the Step
// to the consumer. Steps obtained from a Sequence must be treated as read-only.
package step
