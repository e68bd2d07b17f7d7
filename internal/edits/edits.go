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

// Package edits turns matching blocks into an edit script.
package edits

import (
	"znkr.io/htmldiff/internal/blocks"
	"znkr.io/htmldiff/internal/tokens"
)

// Action describes what an operation does with its token ranges.
//
//go:generate go tool golang.org/x/tools/cmd/stringer -type=Action
type Action int

const (
	Equal   Action = iota // Tokens are the same in both documents
	Insert                // Tokens from the new document are inserted
	Delete                // Tokens from the old document are deleted
	Replace               // Tokens from the old document are replaced by tokens from the new one
)

// Operation describes an edit of the token ranges x[PosX:EndX] and y[PosY:EndY].
//
//   - For Equal, both ranges have the same length and the tokens have the same keys.
//   - For Insert, the range in x is empty.
//   - For Delete, the range in y is empty.
//   - For Replace, neither range is empty.
type Operation struct {
	Action     Action
	PosX, EndX int // Start and end position in x.
	PosY, EndY int // Start and end position in y.
}

// Compute returns the operations that transform x into y, given the matching blocks of x and y.
// The operations cover both x and y completely and in order.
func Compute(x, y []tokens.Token, bs []blocks.Block) []Operation {
	var ops []Operation
	s, t := 0, 0 // current position in x and y
	bs = append(bs[:len(bs):len(bs)], blocks.Block{X: len(x), Y: len(y), Len: 0})
	for _, b := range bs {
		switch atX, atY := s == b.X, t == b.Y; {
		case atX && atY:
			// No gap in front of this block.
		case atX:
			ops = append(ops, Operation{Insert, s, s, t, b.Y})
		case atY:
			ops = append(ops, Operation{Delete, s, b.X, t, t})
		default:
			ops = append(ops, Operation{Replace, s, b.X, t, b.Y})
		}
		if b.Len != 0 {
			ops = append(ops, Operation{Equal, b.X, b.EndX(), b.Y, b.EndY()})
		}
		s, t = b.EndX(), b.EndY()
	}
	return merge(x, ops)
}

// merge folds operations into a preceding replace:
//
//   - a single whitespace character between a replaced word and the next replacement, so that
//     "foo bar" -> "baz qux" becomes one replacement instead of two around an unchanged space,
//   - a directly following replacement.
//
// Only the first token in x of the preceding replacement is checked for word characters.
func merge(x []tokens.Token, ops []Operation) []Operation {
	out := ops[:0]
	for _, op := range ops {
		if n := len(out); n > 0 && out[n-1].Action == Replace {
			last := &out[n-1]
			singleSpace := op.Action == Equal && op.EndX-op.PosX == 1 && tokens.IsSingleWhitespace(x[op.PosX].Key)
			if op.Action == Replace || singleSpace && tokens.ContainsWord(x[last.PosX].Key) {
				last.EndX, last.EndY = op.EndX, op.EndY
				continue
			}
		}
		out = append(out, op)
	}
	return out
}
