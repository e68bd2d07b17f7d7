// Copyright 2026 Florian Zenker (flo@znkr.io)
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package blocks finds blocks of matching tokens in two token streams.
//
// The default algorithm finds the longest run of matching tokens and then recursively does the
// same for the regions to the left and right of that run. For every token in x, a position index
// records where the same token occurs in y. Finding the longest run in a region then only needs
// to look at those positions instead of comparing every pair of tokens:
//
//	runs[t] = runs'[t-1] + 1 for every position t of x[s] in y
//
// where runs' is the run length table for the previous token in x. The first run (in x, then in
// y) that reaches the maximum length wins.
package blocks

import (
	"znkr.io/diff"
	"znkr.io/htmldiff/internal/tokens"
)

// Block is a run of Len tokens where x[X+i] and y[Y+i] have the same key.
type Block struct {
	X, Y int // Start in x and y.
	Len  int // Number of matching tokens.
}

// EndX returns the end (exclusive) of the block in x.
func (b Block) EndX() int { return b.X + b.Len }

// EndY returns the end (exclusive) of the block in y.
func (b Block) EndY() int { return b.Y + b.Len }

// Index maps a token key from x to the ascending positions of the same key in y.
type Index map[string][]int

// NewIndex creates an index of all keys in x.
func NewIndex(x, y []tokens.Token) Index {
	idx := make(Index, len(x))
	for _, tok := range x {
		if _, ok := idx[tok.Key]; !ok {
			idx[tok.Key] = nil
		}
	}
	for t, tok := range y {
		if locs, ok := idx[tok.Key]; ok {
			idx[tok.Key] = append(locs, t)
		}
	}
	return idx
}

// FindMatch returns the longest block of matching tokens in x[smin:smax] and y[tmin:tmax]. If
// there is more than one longest block, the first one is returned. The second result is false if
// there are no matching tokens in the given ranges.
func FindMatch(x []tokens.Token, idx Index, smin, smax, tmin, tmax int) (Block, bool) {
	var best Block
	runs := make(map[int]int) // length of the run ending in y[t] for the previous s
	next := make(map[int]int)
	for s := smin; s < smax; s++ {
		for _, t := range idx[x[s].Key] {
			if t < tmin {
				continue
			}
			if t >= tmax {
				break
			}
			n := runs[t-1] + 1
			next[t] = n
			if n > best.Len {
				best = Block{X: s - n + 1, Y: t - n + 1, Len: n}
			}
		}
		runs, next = next, runs
		clear(next)
	}
	return best, best.Len > 0
}

// region is a pair of ranges x[smin:smax] and y[tmin:tmax] that still needs to be searched.
type region struct {
	smin, smax, tmin, tmax int
}

// work is either a region to search or a block to emit.
type work struct {
	region region
	block  Block
	emit   bool
}

// Matching returns all matching blocks between x and y in ascending order. Blocks never overlap.
func Matching(x, y []tokens.Token) []Block {
	idx := NewIndex(x, y)

	var out []Block
	stack := []work{{region: region{0, len(x), 0, len(y)}}}
	for len(stack) > 0 {
		w := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if w.emit {
			out = append(out, w.block)
			continue
		}

		r := w.region
		b, ok := FindMatch(x, idx, r.smin, r.smax, r.tmin, r.tmax)
		if !ok {
			continue
		}

		// Push in reverse order: everything left of b comes first, then b, then everything
		// right of b.
		if b.EndX() < r.smax && b.EndY() < r.tmax {
			stack = append(stack, work{region: region{b.EndX(), r.smax, b.EndY(), r.tmax}})
		}
		stack = append(stack, work{block: b, emit: true})
		if r.smin < b.X && r.tmin < b.Y {
			stack = append(stack, work{region: region{r.smin, b.X, r.tmin, b.Y}})
		}
	}
	return out
}

// Myers returns the matching blocks of a minimal edit script between x and y.
func Myers(x, y []tokens.Token) []Block {
	var out []Block
	s, t := 0, 0
	for _, e := range diff.Edits(tokens.Keys(x), tokens.Keys(y)) {
		switch e.Op {
		case diff.Match:
			if n := len(out); n > 0 && out[n-1].EndX() == s && out[n-1].EndY() == t {
				out[n-1].Len++
			} else {
				out = append(out, Block{X: s, Y: t, Len: 1})
			}
			s++
			t++
		case diff.Delete:
			s++
		case diff.Insert:
			t++
		default:
			panic("never reached")
		}
	}
	return out
}
