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

package repetition

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/frankkopp/bbchess/internal/zobrist"
)

func TestIsRepetition_FalseOnFirstOccurrence(t *testing.T) {
	s := New(16)
	key := zobrist.Key(1)
	s.Insert(key)
	assert.False(t, s.IsRepetition(key))
}

func TestIsRepetition_TrueOnSecondOccurrence(t *testing.T) {
	s := New(16)
	key := zobrist.Key(1)
	s.Insert(key)
	s.Insert(key)
	assert.True(t, s.IsRepetition(key))
}

func TestRemove_UndoesInsert(t *testing.T) {
	s := New(16)
	key := zobrist.Key(1)
	s.Insert(key)
	s.Insert(key)
	assert.True(t, s.IsRepetition(key))

	s.Remove(key)
	assert.False(t, s.IsRepetition(key))
}

func TestInsertRemove_DistinctKeysDoNotInterfere(t *testing.T) {
	s := New(16)
	a, b := zobrist.Key(10), zobrist.Key(11)
	s.Insert(a)
	s.Insert(b)
	s.Insert(b)
	assert.False(t, s.IsRepetition(a))
	assert.True(t, s.IsRepetition(b))
}

func TestClear_ResetsAllCounts(t *testing.T) {
	s := New(16)
	key := zobrist.Key(5)
	s.Insert(key)
	s.Insert(key)
	s.Clear()
	assert.False(t, s.IsRepetition(key))
}
