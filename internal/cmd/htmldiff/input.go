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

package main

import (
	"fmt"
	"os"

	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/html"
	"golang.org/x/text/unicode/norm"
)

// newMinifier returns a minifier that only removes formatting. Quotes and end tags are kept,
// because attribute stripping relies on quoted values, and optional end tags would otherwise
// appear as changes.
func newMinifier() *minify.M {
	m := minify.New()
	m.Add("text/html", &html.Minifier{
		KeepDefaultAttrVals: true,
		KeepDocumentTags:    true,
		KeepEndTags:         true,
		KeepQuotes:          true,
	})
	return m
}

func readInput(filename string, f *flags) (string, error) {
	b, err := os.ReadFile(filename)
	if err != nil {
		return "", fmt.Errorf("reading %s: %v", filename, err)
	}
	s := string(b)
	if f.nfc {
		s = norm.NFC.String(s)
	}
	if f.minify {
		s, err = newMinifier().String("text/html", s)
		if err != nil {
			return "", fmt.Errorf("minifying %s: %v", filename, err)
		}
	}
	return s, nil
}
