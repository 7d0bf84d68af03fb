// Package hashing animates open addressing with linear probing and separate
// chaining.
//
// Probing wraps modulo the table size and gives up after exactly size attempts,
// emitting a terminal "table full" or "not found" Step. Tombstones left by
// Delete keep a search probing; only an empty slot ends it.
package hashing
