// Package backtracking animates recursive search over boards.
//
// Each producer owns one mutable board that recursive calls modify in place and
// undo on the way back out. Every placement and every undo is a Step, and an
// unsolvable instance ends with an explanatory Step rather than an error.
package backtracking
