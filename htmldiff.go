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

package htmldiff

import (
	"znkr.io/htmldiff/internal/attrs"
	"znkr.io/htmldiff/internal/blocks"
	"znkr.io/htmldiff/internal/config"
	"znkr.io/htmldiff/internal/edits"
	"znkr.io/htmldiff/internal/render"
	"znkr.io/htmldiff/internal/tokens"
)

// Action describes what an [Operation] does.
type Action = edits.Action

const (
	Equal   = edits.Equal   // Tokens are the same in both documents
	Insert  = edits.Insert  // Tokens from the new document are inserted
	Delete  = edits.Delete  // Tokens from the old document are deleted
	Replace = edits.Replace // Tokens from the old document are replaced by tokens from the new one
)

// Operation describes a single edit of token ranges. PosX and EndX describe the range of tokens in
// the old document, PosY and EndY the range in the new document. Ranges are half open: the range
// of an insertion in the old document and the range of a deletion in the new document is empty.
type Operation = edits.Operation

// Diff compares before and after and returns after with all changes marked.
//
// Inserted text is enclosed in <ins>, deleted text in <del> (see [InsertTag] and [DeleteTag]). Tags
// are never enclosed by these markers themselves, a new list item is rendered as
// <li><ins>item</ins></li>.
//
// If before and after are identical, before is returned. If they only differ in tag attributes
// (see [StripAttributes]), after is returned.
//
// The following options are supported: [InsertTag], [DeleteTag], [Myers]
func Diff(before, after string, opts ...Option) string {
	cfg := config.FromOptions(opts, config.InsertTag|config.DeleteTag|config.Myers)
	if before == after {
		return before
	}
	if attrs.Strip(before) == attrs.Strip(after) {
		return after
	}
	x, y := tokens.Tokenize(before), tokens.Tokenize(after)
	return render.Operations(x, y, operations(x, y, cfg), cfg)
}

// Operations compares before and after and returns the operations necessary to transform the
// tokens of one into the tokens of the other (see [Tokens]). The operations cover both token
// sequences completely and in order.
//
// If before and after only differ in tag attributes, the output has length zero.
//
// The following option is supported: [Myers]
func Operations(before, after string, opts ...Option) []Operation {
	cfg := config.FromOptions(opts, config.Myers)
	if attrs.Strip(before) == attrs.Strip(after) {
		return nil
	}
	x, y := tokens.Tokenize(before), tokens.Tokenize(after)
	return operations(x, y, cfg)
}

func operations(x, y []tokens.Token, cfg config.Config) []Operation {
	var bs []blocks.Block
	switch cfg.Blocks {
	case config.BlocksLongestMatch:
		bs = blocks.Matching(x, y)
	case config.BlocksMyers:
		bs = blocks.Myers(x, y)
	default:
		panic("never reached")
	}
	return edits.Compute(x, y, bs)
}

// Tokens splits html into the tokens that are compared by [Diff] and [Operations]: tags, runs of
// whitespace, and words. Joining the tokens yields html.
func Tokens(html string) []string {
	return tokens.Texts(tokens.Tokenize(html))
}

// StripAttributes removes every key="value" attribute from every tag in html.
//
//	StripAttributes(`<td colspan="2">x</td>`) == "<td>x</td>"
func StripAttributes(html string) string {
	return attrs.Strip(html)
}
