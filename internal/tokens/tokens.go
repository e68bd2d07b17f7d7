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

// Package tokens splits HTML into the units compared by the diff: tags, whitespace runs, and runs
// of word characters.
package tokens

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"znkr.io/htmldiff/internal/attrs"
)

// Token is a slice of the input document.
type Token struct {
	Text string // Verbatim input.
	Key  string // Comparison key, Text with tag attributes removed.
}

func newToken(text string) Token {
	key := text
	if text[0] == '<' {
		key = attrs.Strip(text)
	}
	return Token{Text: text, Key: key}
}

type mode int

const (
	modeChar mode = iota
	modeTag
	modeWhitespace
)

// Tokenize splits html into tokens. Concatenating the text of all tokens yields html.
//
// A tag token starts with '<' and extends up to and including the next '>' (or to the end of the
// input for an unclosed tag). A whitespace token is a run of whitespace. Any other character is
// either a word character extending the current token or starts a new token.
func Tokenize(html string) []Token {
	var toks []Token
	start := 0 // start of the current token
	flush := func(end int) {
		if end > start {
			toks = append(toks, newToken(html[start:end]))
		}
		start = end
	}

	m := modeChar
	for i, r := range html {
		switch m {
		case modeTag:
			if r == '>' {
				flush(i + 1)
				m = modeChar
			}
		case modeChar:
			switch {
			case r == '<':
				flush(i)
				m = modeTag
			case IsWhitespace(r):
				flush(i)
				m = modeWhitespace
			case IsWordRune(r):
				// Extends the current token.
			default:
				flush(i)
			}
		case modeWhitespace:
			switch {
			case r == '<':
				flush(i)
				m = modeTag
			case IsWhitespace(r):
				// Extends the current token.
			default:
				flush(i)
				m = modeChar
			}
		default:
			panic(fmt.Sprintf("unknown tokenizer mode: %d", m))
		}
	}
	flush(len(html))
	return toks
}

// Texts returns the text of every token.
func Texts(toks []Token) []string {
	out := make([]string, len(toks))
	for i, tok := range toks {
		out[i] = tok.Text
	}
	return out
}

// Keys returns the comparison key of every token.
func Keys(toks []Token) []string {
	out := make([]string, len(toks))
	for i, tok := range toks {
		out[i] = tok.Key
	}
	return out
}

// IsWordRune reports whether r is a letter, a number, or one of _ - \ # @.
func IsWordRune(r rune) bool {
	switch r {
	case '_', '-', '\\', '#', '@':
		return true
	}
	return unicode.IsLetter(r) || unicode.IsNumber(r)
}

// IsWhitespace reports whether r is whitespace. The set of whitespace runes is the one of
// ECMAScript, i.e. unicode.IsSpace without U+0085 but with U+FEFF.
func IsWhitespace(r rune) bool {
	switch r {
	case '\u0085':
		return false
	case '\ufeff':
		return true
	}
	return unicode.IsSpace(r)
}

// IsTag reports whether text is a complete tag, optionally surrounded by whitespace.
func IsTag(text string) bool {
	text = strings.TrimFunc(text, IsWhitespace)
	if len(text) < 3 || text[0] != '<' || text[len(text)-1] != '>' {
		return false
	}
	return !strings.ContainsRune(text[1:len(text)-1], '>')
}

// ContainsWord reports whether text contains at least one word character.
func ContainsWord(text string) bool {
	return strings.ContainsFunc(text, IsWordRune)
}

// IsSingleWhitespace reports whether text consists of exactly one whitespace character.
func IsSingleWhitespace(text string) bool {
	r, size := utf8.DecodeRuneInString(text)
	return size > 0 && size == len(text) && IsWhitespace(r)
}
