// SPDX-License-Identifier: MIT
// Package diag: the process-wide diagnostic registry.
// Compiled only into diagnostic builds; release builds carry no side
// table and nothing that references one.

//go:build !cleanfloat_release

package diag

import (
	"fmt"
	"sync"

	"fortio.org/safecast"
)

// registry is the singleton side table. The zero value is ready to use:
// the record map is allocated on first insert and the whole structure
// lives until process exit. The lock is held only inside Insert, Remove
// and Len, never across surrounding arithmetic.
type registry struct {
	mu      sync.Mutex
	next    uint64
	records map[uint64]Record
}

var global registry

// Insert stores r under a fresh index and returns it.
// Indices are monotonic, start at 1, and are never reused within a
// process lifetime; concurrent inserts therefore never collide.
func Insert(r Record) int {
	global.mu.Lock()
	defer global.mu.Unlock()
	if global.records == nil {
		global.records = make(map[uint64]Record)
	}
	global.next++
	global.records[global.next] = r
	index, err := safecast.Conv[int](global.next)
	if err != nil {
		panic(fmt.Sprintf("diag: registry counter %d overflows int", global.next))
	}
	return index
}

// Remove deletes and returns the record stored under index.
//
// An absent index cannot result from normal use — only from consuming
// the same payload twice or from a corrupted payload — so Remove treats
// it as a programming defect and panics instead of returning an error.
func Remove(index int) Record {
	key, err := safecast.Conv[uint64](index)
	if err != nil {
		panic(fmt.Sprintf("diag: invalid registry index %d", index))
	}
	global.mu.Lock()
	defer global.mu.Unlock()
	r, ok := global.records[key]
	if !ok {
		panic(fmt.Sprintf("diag: no record under index %d (payload consumed twice or corrupted)", index))
	}
	delete(global.records, key)
	return r
}

// Len reports how many records are currently pending, i.e. inserted but
// not yet consumed by a payload decode.
func Len() int {
	global.mu.Lock()
	defer global.mu.Unlock()
	return len(global.records)
}
