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
	"bytes"
	"fmt"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// pane is a section of the comparison page. It either shows the escaped source of a document or,
// if rendered is set, the source as markup.
type pane struct {
	title    string
	source   string
	rendered bool
}

const stylesheet = `
body { font-family: sans-serif; margin: 0; display: flex; gap: 1em; padding: 1em; }
section { flex: 1; min-width: 0; }
pre { white-space: pre-wrap; word-break: break-all; background: #f6f8fa; padding: 0.5em; }
%[1]s { background: #dafbe1; text-decoration: none; }
%[2]s { background: #ffebe9; }
`

// page renders a complete HTML document with one section per pane.
func page(panes []pane, f *flags) ([]byte, error) {
	head := element(atom.Head)
	head.AppendChild(element(atom.Meta, html.Attribute{Key: "charset", Val: "utf-8"}))
	head.AppendChild(withText(element(atom.Title), "htmldiff"))
	head.AppendChild(withText(element(atom.Style), fmt.Sprintf(stylesheet, f.insertTag, f.deleteTag)))

	body := element(atom.Body)
	for _, p := range panes {
		section := element(atom.Section)
		section.AppendChild(withText(element(atom.H2), p.title))
		if !p.rendered {
			section.AppendChild(withText(element(atom.Pre), p.source))
		} else {
			div := element(atom.Div, html.Attribute{Key: "class", Val: "diff"})
			nodes, err := html.ParseFragment(strings.NewReader(p.source), div)
			if err != nil {
				return nil, fmt.Errorf("parsing %s: %v", p.title, err)
			}
			for _, n := range nodes {
				div.AppendChild(n)
			}
			section.AppendChild(div)
		}
		body.AppendChild(section)
	}

	root := element(atom.Html)
	root.AppendChild(head)
	root.AppendChild(body)

	doc := &html.Node{Type: html.DocumentNode}
	doc.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})
	doc.AppendChild(root)

	var buf bytes.Buffer
	if err := html.Render(&buf, doc); err != nil {
		return nil, fmt.Errorf("rendering page: %v", err)
	}
	return buf.Bytes(), nil
}

func element(a atom.Atom, attrs ...html.Attribute) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		DataAtom: a,
		Data:     a.String(),
		Attr:     attrs,
	}
}

func withText(n *html.Node, text string) *html.Node {
	n.AppendChild(&html.Node{Type: html.TextNode, Data: text})
	return n
}
