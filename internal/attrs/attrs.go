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

// Package attrs removes attributes from HTML tags.
package attrs

import "regexp"

var (
	tagRE  = regexp.MustCompile(`<[^>]+>`)
	attrRE = regexp.MustCompile(` [^=]+="[^"]+"`)
)

// Strip removes every key="value" attribute from every tag in html. The tag name and anything
// that isn't a quoted attribute (e.g. the '/' of a self-closing tag) are kept.
func Strip(html string) string {
	return tagRE.ReplaceAllStringFunc(html, func(tag string) string {
		return attrRE.ReplaceAllLiteralString(tag, "")
	})
}
