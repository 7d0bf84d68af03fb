// Package linkedlist animates pointer manipulation on singly linked lists.
package linkedlist

import (
	"fmt"
	"slices"

	"github.com/san-kum/stepviz/internal/step"
)

const nilNode = -1

type list struct {
	values []int
	next   []int
	head   int
}

// newList links values in order; tail >= 0 makes the last node point back to
// node tail, forming a cycle.
func newList(values []int, tail int) *list {
	l := &list{values: slices.Clone(values), next: make([]int, len(values)), head: nilNode}
	if len(values) == 0 {
		return l
	}
	l.head = 0
	for i := range l.next {
		l.next[i] = i + 1
	}
	l.next[len(values)-1] = nilNode
	if tail >= 0 && tail < len(values) {
		l.next[len(values)-1] = tail
	}
	return l
}

func (l *list) snap(line int, msg string, prev, curr, ahead int, hl ...int) *step.ListStep {
	return &step.ListStep{
		Meta:      step.Meta{Message: msg, Line: line},
		Values:    l.values,
		Next:      l.next,
		Head:      l.head,
		Prev:      prev,
		Curr:      curr,
		Ahead:     ahead,
		Highlight: hl,
	}
}

// tooLong reports a list over step.MaxArray nodes without building it.
func tooLong(values []int) step.Producer {
	return step.Single(&step.ListStep{
		Meta:   step.Meta{Message: fmt.Sprintf("Lists are limited to %d nodes, got %d.", step.MaxArray, len(values))},
		Values: []int{},
		Next:   []int{},
		Head:   nilNode,
		Prev:   nilNode,
		Curr:   nilNode,
		Ahead:  nilNode,
	})
}

func label(l *list, i int) string {
	if i == nilNode {
		return "nil"
	}
	return fmt.Sprint(l.values[i])
}

var ReverseCode = []string{
	"prev, curr := nil, head",
	"for curr != nil {",
	"    next := curr.next",
	"    curr.next = prev",
	"    prev, curr = curr, next",
	"head = prev",
}

func Reverse(values []int) step.Producer {
	if len(values) > step.MaxArray {
		return tooLong(values)
	}
	return func(yield func(step.Step) bool) {
		l := newList(values, nilNode)
		if l.head == nilNode {
			step.Emit(yield, l.snap(6, "The list is empty; nothing to reverse.", nilNode, nilNode, nilNode))
			return
		}
		prev, curr := nilNode, l.head
		if !step.Emit(yield, l.snap(1, "prev = nil, curr = head.", prev, curr, nilNode)) {
			return
		}
		for curr != nilNode {
			ahead := l.next[curr]
			if !step.Emit(yield, l.snap(3, fmt.Sprintf("Remember next = %s.", label(l, ahead)), prev, curr, ahead)) {
				return
			}
			l.next[curr] = prev
			if !step.Emit(yield, l.snap(4, fmt.Sprintf("Point %s back at %s.", label(l, curr), label(l, prev)), prev, curr, ahead, curr)) {
				return
			}
			prev, curr = curr, ahead
			if !step.Emit(yield, l.snap(5, "Advance prev and curr.", prev, curr, nilNode)) {
				return
			}
		}
		l.head = prev
		step.Emit(yield, l.snap(6, fmt.Sprintf("Head is now %s; the list is reversed.", label(l, prev)), nilNode, nilNode, nilNode))
	}
}

// DetectCycle runs Floyd's tortoise and hare. Curr is the slow pointer and
// Ahead the fast one. tail < 0 means the list is acyclic.
func DetectCycle(values []int, tail int) step.Producer {
	if len(values) > step.MaxArray {
		return tooLong(values)
	}
	return func(yield func(step.Step) bool) {
		l := newList(values, tail)
		if l.head == nilNode {
			step.Emit(yield, l.snap(0, "The list is empty, so it has no cycle.", nilNode, nilNode, nilNode))
			return
		}
		slow, fast := l.head, l.head
		if !step.Emit(yield, l.snap(0, "Both pointers start at the head.", nilNode, slow, fast)) {
			return
		}
		for fast != nilNode && l.next[fast] != nilNode {
			slow = l.next[slow]
			fast = l.next[l.next[fast]]
			if !step.Emit(yield, l.snap(0, fmt.Sprintf("Slow moves to %s, fast jumps to %s.", label(l, slow), label(l, fast)), nilNode, slow, fast)) {
				return
			}
			if slow == fast {
				step.Emit(yield, l.snap(0, fmt.Sprintf("The pointers meet at %s: the list has a cycle.", label(l, slow)), nilNode, slow, fast, slow))
				return
			}
		}
		step.Emit(yield, l.snap(0, "Fast reached the end: the list has no cycle.", nilNode, slow, fast))
	}
}
