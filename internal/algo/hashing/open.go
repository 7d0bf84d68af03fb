package hashing

import (
	"fmt"
	"slices"

	"github.com/san-kum/stepviz/internal/step"
)

// MaxTableSize bounds both the slot count and the number of keys or
// operations a producer accepts.
const MaxTableSize = 64

type OpKind string

const (
	OpInsert OpKind = "insert"
	OpSearch OpKind = "search"
	OpDelete OpKind = "delete"
)

type Op struct {
	Kind OpKind `yaml:"kind" json:"kind"`
	Key  int    `yaml:"key" json:"key"`
}

// Table is an open-addressing table used as the initial state of a producer.
// Producers never modify it.
type Table struct {
	Slots []step.Slot
	// requested keeps a size NewTable refused, so producers can report it.
	requested int
}

// NewTable allocates size empty slots. An out-of-range size yields a table
// with no slots on which every producer emits a single explanatory Step.
func NewTable(size int) Table {
	if size <= 0 || size > MaxTableSize {
		return Table{requested: size}
	}
	return Table{Slots: make([]step.Slot, size)}
}

// Build inserts keys without emitting Steps. Keys that do not fit are dropped.
func Build(size int, keys ...int) Table {
	t := NewTable(size)
	for _, k := range keys {
		p := &prober{slots: t.Slots}
		p.insertQuiet(k)
	}
	return t
}

func (t Table) Len() int { return len(t.Slots) }

// rejected returns the explanatory producer when t cannot be probed.
func (t Table) rejected() (step.Producer, bool) {
	size := t.Len()
	if size == 0 {
		size = t.requested
	}
	return checkSize(size)
}

func hashOf(key, size int) int {
	h := key % size
	if h < 0 {
		h += size
	}
	return h
}

type prober struct {
	slots []step.Slot
	key   int
}

func (p *prober) snap(line int, msg string, probe, probes int) *step.HashStep {
	return &step.HashStep{
		Meta:   step.Meta{Message: msg, Line: line},
		Slots:  p.slots,
		Key:    p.key,
		Hash:   hashOf(p.key, len(p.slots)),
		Probe:  probe,
		Probes: probes,
	}
}

func (p *prober) insertQuiet(key int) {
	n := len(p.slots)
	tomb := -1
	for i := 0; i < n; i++ {
		idx := (hashOf(key, n) + i) % n
		switch p.slots[idx].State {
		case step.SlotOccupied:
			if p.slots[idx].Key == key {
				return
			}
		case step.SlotTombstone:
			if tomb < 0 {
				tomb = idx
			}
		case step.SlotEmpty:
			if tomb >= 0 {
				idx = tomb
			}
			p.slots[idx] = step.Slot{State: step.SlotOccupied, Key: key}
			return
		}
	}
	if tomb >= 0 {
		p.slots[tomb] = step.Slot{State: step.SlotOccupied, Key: key}
	}
}

func checkSize(size int) (step.Producer, bool) {
	switch {
	case size <= 0:
		return rejectStep(fmt.Sprintf("Table size must be positive, got %d.", size)), true
	case size > MaxTableSize:
		return rejectStep(fmt.Sprintf("Tables are limited to %d slots, got %d.", MaxTableSize, size)), true
	}
	return nil, false
}

func rejectStep(msg string) step.Producer {
	return step.Single(&step.HashStep{Meta: step.Meta{Message: msg}, Probe: -1})
}

var InsertCode = []string{
	"h := key mod size",
	"for i := 0; i < size; i++ {",
	"    idx := (h+i) mod size",
	"    if slot is empty { place key (or reuse first tombstone); return }",
	"    if slot is a tombstone { remember it; continue }",
	"    if slot holds key { return }",
	"table full",
}

// Insert adds key to a copy of t. The first tombstone on the probe path is
// reused once the key is known to be absent.
func Insert(t Table, key int) step.Producer {
	if p, bad := t.rejected(); bad {
		return p
	}
	return func(yield func(step.Step) bool) {
		p := &prober{slots: slices.Clone(t.Slots), key: key}
		runInsert(yield, p)
	}
}

func runInsert(yield func(step.Step) bool, p *prober) bool {
	n := len(p.slots)
	h := hashOf(p.key, n)
	if !step.Emit(yield, p.snap(1, fmt.Sprintf("Insert %d: hash %d mod %d = %d.", p.key, p.key, n, h), h, 0)) {
		return false
	}
	tomb := -1
	for i := 0; i < n; i++ {
		idx := (h + i) % n
		slot := p.slots[idx]
		var msg string
		line := 3
		switch slot.State {
		case step.SlotEmpty:
			target := idx
			if tomb >= 0 {
				target = tomb
			}
			p.slots[target] = step.Slot{State: step.SlotOccupied, Key: p.key}
			if target != idx {
				msg = fmt.Sprintf("Slot %d is empty, so %d is absent; reuse tombstone at %d.", idx, p.key, target)
			} else {
				msg = fmt.Sprintf("Slot %d is empty; place %d.", idx, p.key)
			}
			st := p.snap(4, msg, target, i+1)
			st.Found = true
			return step.Emit(yield, st)
		case step.SlotTombstone:
			if tomb < 0 {
				tomb = idx
			}
			msg, line = fmt.Sprintf("Slot %d is a tombstone; keep probing.", idx), 5
		case step.SlotOccupied:
			if slot.Key == p.key {
				st := p.snap(6, fmt.Sprintf("%d is already at slot %d.", p.key, idx), idx, i+1)
				st.Found = true
				return step.Emit(yield, st)
			}
			msg = fmt.Sprintf("Slot %d holds %d; collision, probe next.", idx, slot.Key)
		}
		if !step.Emit(yield, p.snap(line, msg, idx, i+1)) {
			return false
		}
	}
	if tomb >= 0 {
		p.slots[tomb] = step.Slot{State: step.SlotOccupied, Key: p.key}
		st := p.snap(4, fmt.Sprintf("No empty slot, but tombstone %d can take %d.", tomb, p.key), tomb, n)
		st.Found = true
		return step.Emit(yield, st)
	}
	return step.Emit(yield, p.snap(7, fmt.Sprintf("Table full: probed all %d slots without room for %d.", n, p.key), -1, n))
}

var SearchCode = []string{
	"h := key mod size",
	"for i := 0; i < size; i++ {",
	"    idx := (h+i) mod size",
	"    if slot is empty { not found }",
	"    if slot is a tombstone { continue }",
	"    if slot holds key { found }",
	"not found",
}

func Search(t Table, key int) step.Producer {
	if p, bad := t.rejected(); bad {
		return p
	}
	return func(yield func(step.Step) bool) {
		p := &prober{slots: slices.Clone(t.Slots), key: key}
		runLookup(yield, p, false)
	}
}

// Delete replaces the key's slot with a tombstone.
func Delete(t Table, key int) step.Producer {
	if p, bad := t.rejected(); bad {
		return p
	}
	return func(yield func(step.Step) bool) {
		p := &prober{slots: slices.Clone(t.Slots), key: key}
		runLookup(yield, p, true)
	}
}

func runLookup(yield func(step.Step) bool, p *prober, remove bool) bool {
	n := len(p.slots)
	h := hashOf(p.key, n)
	verb := "Search"
	if remove {
		verb = "Delete"
	}
	if !step.Emit(yield, p.snap(1, fmt.Sprintf("%s %d: hash %d mod %d = %d.", verb, p.key, p.key, n, h), h, 0)) {
		return false
	}
	for i := 0; i < n; i++ {
		idx := (h + i) % n
		slot := p.slots[idx]
		switch {
		case slot.State == step.SlotEmpty:
			return step.Emit(yield, p.snap(4, fmt.Sprintf("Slot %d is empty; %d not found.", idx, p.key), idx, i+1))
		case slot.State == step.SlotTombstone:
			if !step.Emit(yield, p.snap(5, fmt.Sprintf("Slot %d is a tombstone; keep probing.", idx), idx, i+1)) {
				return false
			}
		case slot.Key == p.key:
			if remove {
				p.slots[idx] = step.Slot{State: step.SlotTombstone, Key: p.key}
				st := p.snap(6, fmt.Sprintf("Found %d at slot %d; mark it as a tombstone.", p.key, idx), idx, i+1)
				st.Found = true
				return step.Emit(yield, st)
			}
			st := p.snap(6, fmt.Sprintf("Found %d at slot %d.", p.key, idx), idx, i+1)
			st.Found = true
			return step.Emit(yield, st)
		default:
			if !step.Emit(yield, p.snap(3, fmt.Sprintf("Slot %d holds %d; probe next.", idx, slot.Key), idx, i+1)) {
				return false
			}
		}
	}
	return step.Emit(yield, p.snap(7, fmt.Sprintf("Probed all %d slots; %d not found.", n, p.key), -1, n))
}

// Script runs ops in order against one table, so later operations see the
// tombstones and insertions of earlier ones.
func Script(t Table, ops []Op) step.Producer {
	if p, bad := t.rejected(); bad {
		return p
	}
	if len(ops) > MaxTableSize {
		return rejectStep(fmt.Sprintf("Scripts are limited to %d operations, got %d.", MaxTableSize, len(ops)))
	}
	return func(yield func(step.Step) bool) {
		slots := slices.Clone(t.Slots)
		for _, op := range ops {
			p := &prober{slots: slots, key: op.Key}
			var ok bool
			switch op.Kind {
			case OpInsert:
				ok = runInsert(yield, p)
			case OpSearch:
				ok = runLookup(yield, p, false)
			case OpDelete:
				ok = runLookup(yield, p, true)
			default:
				ok = step.Emit(yield, p.snap(0, fmt.Sprintf("Unknown operation %q skipped.", op.Kind), -1, 0))
			}
			if !ok {
				return
			}
		}
		if len(ops) == 0 {
			step.Emit(yield, (&prober{slots: slots}).snap(0, "No operations to run.", -1, 0))
		}
	}
}
