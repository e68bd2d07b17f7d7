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

// Package htmldiff compares two versions of an HTML document and renders the differences as HTML.
//
// The main function is [Diff], which returns the new document with removed text enclosed in
// <del> and added text enclosed in <ins>:
//
//	htmldiff.Diff("<p>Hello world</p>", "<p>Hello beautiful world</p>")
//	// <p>Hello <ins>beautiful </ins>world</p>
//
// The documents are not parsed. Instead, they are split into tokens (tags, runs of whitespace,
// and words) and the token streams are compared. Markup is never wrapped in a marker, only the
// text between tags is. Changes to tag attributes alone don't produce any markers: if the
// documents only differ in attributes, the new document is returned as is.
//
// The output is not sanitized. If the inputs aren't trusted, the output must be sanitized before
// it's displayed.
//
// Performance: The default algorithm repeatedly searches for the longest run of matching tokens.
// Its worst case complexity is quadratic or worse for inputs with many repeated tokens. It's meant
// for documents of moderate size, like the content of a rich text editor. Use [Myers] for large
// documents.
package htmldiff
