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

// Package render renders an edit script as HTML with marked insertions and deletions.
package render

import (
	"fmt"
	"strings"

	"znkr.io/htmldiff/internal/config"
	"znkr.io/htmldiff/internal/edits"
	"znkr.io/htmldiff/internal/tokens"
)

// Operations renders ops. Unchanged tokens are written as they appear in y, inserted tokens are
// wrapped in cfg.InsertTag and deleted tokens in cfg.DeleteTag. A replacement is rendered as a
// deletion followed by an insertion.
func Operations(x, y []tokens.Token, ops []edits.Operation, cfg config.Config) string {
	var sb strings.Builder
	for _, op := range ops {
		switch op.Action {
		case edits.Equal:
			for _, tok := range y[op.PosY:op.EndY] {
				sb.WriteString(tok.Text)
			}
		case edits.Insert:
			Wrap(&sb, cfg.InsertTag, y[op.PosY:op.EndY])
		case edits.Delete:
			Wrap(&sb, cfg.DeleteTag, x[op.PosX:op.EndX])
		case edits.Replace:
			Wrap(&sb, cfg.DeleteTag, x[op.PosX:op.EndX])
			Wrap(&sb, cfg.InsertTag, y[op.PosY:op.EndY])
		default:
			panic(fmt.Sprintf("unknown action: %v", op.Action))
		}
	}
	return sb.String()
}

// Wrap writes toks to sb and encloses every run of tokens that aren't tags in <tag>...</tag>. Tags
// are written as is, so that the marker never contains markup:
//
//	<li>C</li> -> <li><ins>C</ins></li>
func Wrap(sb *strings.Builder, tag string, toks []tokens.Token) {
	for len(toks) > 0 {
		n := prefix(toks, false)
		if n > 0 {
			sb.WriteString("<" + tag + ">")
			for _, tok := range toks[:n] {
				sb.WriteString(tok.Text)
			}
			sb.WriteString("</" + tag + ">")
		}
		toks = toks[n:]

		n = prefix(toks, true)
		for _, tok := range toks[:n] {
			sb.WriteString(tok.Text)
		}
		toks = toks[n:]
	}
}

// prefix returns the number of leading tokens for which IsTag equals tag.
func prefix(toks []tokens.Token, tag bool) int {
	for i, tok := range toks {
		if tokens.IsTag(tok.Text) != tag {
			return i
		}
	}
	return len(toks)
}
