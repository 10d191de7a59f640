/*
 * bbchess - bitboard chess engine core in Go
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

// Package arena implements the fixed-size, single-threaded position pool
// spec.md §4.5 calls for: a slab of Position slots handed out in allocation
// order and released back in LIFO order as the search unwinds.
package arena

import (
	"fmt"

	"github.com/frankkopp/bbchess/internal/logging"
	"github.com/frankkopp/bbchess/internal/position"
)

var log = logging.GetLog("arena")

// ErrExhausted is the value Alloc panics with when it would advance the
// free pointer past the slab's capacity. spec.md §6 classifies this as a programming error -
// the slab must be sized for the search's maximum branching times depth -
// so the caller is expected to treat it as fatal rather than retry.
type ErrExhausted struct {
	Size int
}

func (e *ErrExhausted) Error() string {
	return fmt.Sprintf("arena: exhausted %d-slot pool", e.Size)
}

// Arena is a monotonic slab of Position buffers plus a free pointer. The
// zero value is not usable; build one with New.
type Arena struct {
	slots []position.Position
	top   int
}

// New allocates a slab of the given size. spec.md suggests >= 1000 is
// sufficient for depths up to the search's maximum branching x depth.
func New(size int) *Arena {
	return &Arena{slots: make([]position.Position, size)}
}

// Len reports the current number of live allocations.
func (a *Arena) Len() int { return a.top }

// Cap reports the slab's total capacity.
func (a *Arena) Cap() int { return len(a.slots) }

// Mark returns a checkpoint of the free pointer, to be passed to Release
// once every child allocated since has been scored and is ready to be torn
// down. This is the "(start, len) into the slab" strategy spec.md's note on
// cyclic references recommends in place of parent/child back-pointers.
func (a *Arena) Mark() int { return a.top }

// Alloc returns a pointer to the next free, zero-valued Position slot and
// advances the free pointer. Panics with *ErrExhausted on overflow: this is
// a programming error (slab undersized for the search's depth/branching),
// not a condition normal play can trigger.
func (a *Arena) Alloc() *position.Position {
	if a.top >= len(a.slots) {
		err := &ErrExhausted{Size: len(a.slots)}
		log.Errorf("%v", err)
		panic(err)
	}
	slot := &a.slots[a.top]
	*slot = position.Position{}
	a.top++
	return slot
}

// Release resets the free pointer back to mark, discarding every
// allocation made since in one step - the LIFO bulk-free spec.md §4.5
// describes for releasing a node's children on return from search.
func (a *Arena) Release(mark int) {
	if mark < 0 || mark > a.top {
		panic(fmt.Sprintf("arena: release mark %d out of range [0,%d]", mark, a.top))
	}
	a.top = mark
}

// Free releases exactly the single most recently allocated slot, for
// callers that allocate and free one position at a time rather than in a
// Mark/Release batch.
func (a *Arena) Free() {
	if a.top == 0 {
		panic("arena: free on empty pool")
	}
	a.top--
}
