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
	"bytes"
	"crypto/sha256"
	"flag"
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/net/html"
	"golang.org/x/tools/txtar"
)

var update = flag.Bool("update", false, "update golden files")

func TestDiff(t *testing.T) {
	for _, tt := range parseTests(t) {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			for sti, st := range tt.subtests {
				t.Run(st.name, func(t *testing.T) {
					got := Diff(tt.before, tt.after, st.opts...)
					if diff := cmp.Diff(st.want, got); diff != "" {
						t.Errorf("Diff(...) result is different:\ngot:\n%s\nwant:\n%s\ndiff [-want,+got]:\n%s", got, st.want, diff)
					}
					if *update {
						tt.subtests[sti].want = got
					}
				})
			}

			// Run in a cleanup to makes sure to runs after the subtests have finished.
			t.Cleanup(func() {
				if !*update {
					return
				}
				var b bytes.Buffer
				b.Write(tt.comment)
				b.WriteString("-- before --\n" + tt.before + "\n")
				b.WriteString("-- after --\n" + tt.after + "\n")
				for _, st := range tt.subtests {
					b.WriteString("-- diff --\n")
					b.Write(st.pragmas)
					b.WriteString(st.want + "\n")
				}
				if err := os.WriteFile(tt.filename, b.Bytes(), 0o644); err != nil {
					t.Fatalf("error writing golden file: %v", err)
				}
			})
		})
	}
}

func TestDiffMyers(t *testing.T) {
	// Myers' algorithm may align changes differently, but the result must still mark every change
	// without wrapping tags.
	for _, tt := range parseTests(t) {
		t.Run(tt.name, func(t *testing.T) {
			got := Diff(tt.before, tt.after, Myers())
			checkTagSafety(t, got)
			if tt.before == tt.after || StripAttributes(tt.before) == StripAttributes(tt.after) {
				if want := Diff(tt.before, tt.after); got != want {
					t.Errorf("Diff(..., Myers()) = %q, want %q", got, want)
				}
			}
		})
	}
}

func TestDiffShortCircuits(t *testing.T) {
	tests := []struct {
		name          string
		before, after string
		want          string
	}{
		{
			name: "empty",
			want: "",
		},
		{
			name:   "identical-text",
			before: "Hello world",
			after:  "Hello world",
			want:   "Hello world",
		},
		{
			name:   "inline-style",
			before: `<p style="color:red">Hi</p>`,
			after:  `<p style="color:blue">Hi</p>`,
			want:   `<p style="color:blue">Hi</p>`,
		},
		{
			name:   "table-spans",
			before: `<table><tr><td colspan="1" rowspan="1">cell</td></tr></table>`,
			after:  `<table><tr><td colspan="2" rowspan="3">cell</td></tr></table>`,
			want:   `<table><tr><td colspan="2" rowspan="3">cell</td></tr></table>`,
		},
		{
			name:   "image-source",
			before: `<p>Photo: <img src="old.jpg"> here</p>`,
			after:  `<p>Photo: <img src="new.jpg"> here</p>`,
			want:   `<p>Photo: <img src="new.jpg"> here</p>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Diff(tt.before, tt.after)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Diff(%q, %q) result is different [-want,+got]:\n%s", tt.before, tt.after, diff)
			}
		})
	}
}

func TestDiffMarkers(t *testing.T) {
	tests := []struct {
		name          string
		before, after string
		wantIns       bool
		wantDel       bool
		contains      []string
	}{
		{
			name:    "append-sentence",
			before:  "<p>Hello.</p>",
			after:   "<p>Hello. How are you?</p>",
			wantIns: true,
		},
		{
			name:    "remove-sentence",
			before:  "<p>Hello. How are you?</p>",
			after:   "<p>Hello.</p>",
			wantDel: true,
		},
		{
			name:     "table-with-spans",
			before:   `<table><tr><td colspan="2" rowspan="1">Old value</td><td>Static</td></tr></table>`,
			after:    `<table><tr><td colspan="2" rowspan="1">New value</td><td>Static</td></tr></table>`,
			wantIns:  true,
			wantDel:  true,
			contains: []string{"<del>Old", "<ins>New", "Static"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Diff(tt.before, tt.after)
			if has := strings.Contains(got, "<ins>"); has != tt.wantIns {
				t.Errorf("Diff(...) = %q, contains <ins>: %v, want %v", got, has, tt.wantIns)
			}
			if has := strings.Contains(got, "<del>"); has != tt.wantDel {
				t.Errorf("Diff(...) = %q, contains <del>: %v, want %v", got, has, tt.wantDel)
			}
			for _, s := range tt.contains {
				if !strings.Contains(got, s) {
					t.Errorf("Diff(...) = %q, want it to contain %q", got, s)
				}
			}
		})
	}
}

func TestOperations(t *testing.T) {
	tests := []struct {
		name          string
		before, after string
		want          []Operation
	}{
		{
			name:   "identical",
			before: "<p>a</p>",
			after:  "<p>a</p>",
			want:   nil,
		},
		{
			name:   "attributes-only",
			before: `<p class="a">a</p>`,
			after:  `<p class="b">a</p>`,
			want:   nil,
		},
		{
			name:   "insert",
			before: "<p>Hello world</p>",
			after:  "<p>Hello beautiful world</p>",
			want: []Operation{
				{Action: Equal, PosX: 0, EndX: 3, PosY: 0, EndY: 3},
				{Action: Insert, PosX: 3, EndX: 3, PosY: 3, EndY: 5},
				{Action: Equal, PosX: 3, EndX: 5, PosY: 5, EndY: 7},
			},
		},
		{
			name:   "replace",
			before: "<p>Hello</p>",
			after:  "<p>Hi</p>",
			want: []Operation{
				{Action: Equal, PosX: 0, EndX: 1, PosY: 0, EndY: 1},
				{Action: Replace, PosX: 1, EndX: 2, PosY: 1, EndY: 2},
				{Action: Equal, PosX: 2, EndX: 3, PosY: 2, EndY: 3},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Operations(tt.before, tt.after)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Operations(...) result is different [-want,+got]:\n%s", diff)
			}
		})
	}
}

var propertyInputs = []string{
	"",
	"Hello world",
	"<p>Hello world</p>",
	"<p>Hello beautiful world</p>",
	`<p class="intro">Hello <em>brave</em> new world</p>`,
	"<ul><li>A</li><li>B</li><li>C</li></ul>",
	"<ul><li>C</li><li>A</li></ul>",
	"<table><tr><td>Revenue</td><td>$1,000</td></tr></table>",
	"<table><tr><td>Revenue</td><td>$2,500</td><td>new</td></tr></table>",
	"<div><p>First</p><hr><p>Second</p></div>",
	"<p>Line 1<br>Line 2<br>Line 3</p>",
	"<p>the quick brown fox jumps over the lazy dog</p>",
	"<p>a quick red fox leaps over the dog</p>",
	"<p>Привет мир, 世界</p>",
}

func TestProperties(t *testing.T) {
	for _, x := range propertyInputs {
		if got := Diff(x, x); got != x {
			t.Errorf("Diff(%q, %q) = %q, want identity", x, x, got)
		}
		for _, y := range propertyInputs {
			got := Diff(x, y)
			checkTagSafety(t, got)
			checkCoverage(t, x, y, Operations(x, y))
			checkCoverage(t, x, y, Operations(x, y, Myers()))
		}
	}
}

func TestStripAttributesIdempotent(t *testing.T) {
	for _, in := range append(propertyInputs,
		`<img src="f.jpg" alt="bar"/>`,
		`<td colspan="2" rowspan="3">x</td>`,
		`<input disabled type="text">`,
		`<a  x= "y" z="w">`,
	) {
		once := StripAttributes(in)
		if twice := StripAttributes(once); twice != once {
			t.Errorf("StripAttributes is not idempotent for %q: %q != %q", in, twice, once)
		}
	}
}

func FuzzDiff(f *testing.F) {
	for _, in := range propertyInputs {
		f.Add(in, "<p>Hello world</p>")
	}
	f.Fuzz(func(t *testing.T, x, y string) {
		if got := strings.Join(Tokens(x), ""); got != x {
			t.Errorf("Tokens(%q) joined = %q", x, got)
		}
		if got := Diff(x, x); got != x {
			t.Errorf("Diff(%q, %q) = %q, want identity", x, x, got)
		}
		if StripAttributes(x) == StripAttributes(y) {
			if got := Diff(x, y); got != y {
				t.Errorf("Diff(%q, %q) = %q, want %q", x, y, got, y)
			}
			return
		}
		checkCoverage(t, x, y, Operations(x, y))
	})
}

// checkCoverage verifies that ops reproduce both token sequences.
func BenchmarkDiff(b *testing.B) {
	params := []struct {
		N int // Number of paragraphs
		D int // Number of edited words
	}{
		{10, 2},
		{100, 10},
		{100, 100},
		{1000, 10},
		{1000, 1000},
	}

	words := []string{"lorem", "ipsum", "dolor", "sit", "amet", "consectetur", "adipiscing", "elit"}
	for _, p := range params {
		name := fmt.Sprintf("N=%d_D=%d", p.N, p.D)
		rng := rand.New(rand.NewChaCha8(sha256.Sum256([]byte(name))))

		// Construct paragraphs of eight words each and edit D random words.
		x := make([][]string, p.N)
		y := make([][]string, p.N)
		for i := range x {
			x[i] = make([]string, 8)
			for j := range x[i] {
				x[i][j] = words[rng.IntN(len(words))]
			}
			y[i] = append([]string(nil), x[i]...)
		}
		for range p.D {
			y[rng.IntN(p.N)][rng.IntN(8)] = "edited"
		}
		before, after := document(x), document(y)

		for _, impl := range []struct {
			name string
			opts []Option
		}{
			{"matching", nil},
			{"myers", []Option{Myers()}},
		} {
			b.Run(name+"/impl="+impl.name, func(b *testing.B) {
				b.ReportAllocs()
				for b.Loop() {
					_ = Diff(before, after, impl.opts...)
				}
			})
		}
	}
}

func document(paragraphs [][]string) string {
	var sb strings.Builder
	for _, p := range paragraphs {
		sb.WriteString(`<p class="text">`)
		sb.WriteString(strings.Join(p, " "))
		sb.WriteString("</p>\n")
	}
	return sb.String()
}

func checkCoverage(t *testing.T, x, y string, ops []Operation) {
	t.Helper()
	if len(ops) == 0 {
		if StripAttributes(x) != StripAttributes(y) {
			t.Errorf("Operations(%q, %q) is empty", x, y)
		}
		return
	}
	xtoks, ytoks := Tokens(x), Tokens(y)
	var sx, sy strings.Builder
	for _, op := range ops {
		if op.Action != Insert {
			sx.WriteString(strings.Join(xtoks[op.PosX:op.EndX], ""))
		}
		if op.Action != Delete {
			sy.WriteString(strings.Join(ytoks[op.PosY:op.EndY], ""))
		}
	}
	if sx.String() != x {
		t.Errorf("operations for (%q, %q) don't cover before: %q", x, y, sx.String())
	}
	if sy.String() != y {
		t.Errorf("operations for (%q, %q) don't cover after: %q", x, y, sy.String())
	}
}

// checkTagSafety verifies that <ins> and <del> only ever enclose text.
func checkTagSafety(t *testing.T, out string) {
	t.Helper()
	z := html.NewTokenizer(strings.NewReader(out))
	var marker string // open marker element, if any
	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			break
		}
		tok := z.Token()
		switch {
		case marker == "" && tt == html.StartTagToken && (tok.Data == "ins" || tok.Data == "del"):
			marker = tok.Data
		case marker != "" && tt == html.EndTagToken && tok.Data == marker:
			marker = ""
		case marker != "" && tt != html.TextToken:
			t.Errorf("%q encloses %q in <%s>", out, tok.String(), marker)
		}
	}
	if marker != "" {
		t.Errorf("%q has an unclosed <%s>", out, marker)
	}
}

type test struct {
	name          string
	filename      string
	comment       []byte
	before, after string
	subtests      []subtest
}

type subtest struct {
	name    string
	opts    []Option
	pragmas []byte
	want    string
}

func parseTests(t testing.TB) []test {
	t.Helper()
	testFiles, err := filepath.Glob("testdata/*.test")
	if err != nil {
		t.Fatalf("Failed to read testdata: %v", err)
	}
	var tests []test
	for _, filename := range testFiles {
		ar, err := txtar.ParseFile(filename)
		if err != nil {
			t.Fatalf("failed to parse test case: %v", err)
		}
		test := test{
			name:     strings.TrimSuffix(filepath.Base(filename), ".test"),
			filename: filename,
			comment:  ar.Comment,
		}

		for _, f := range ar.Files {
			// Every section ends with a newline that isn't part of the document.
			data := strings.TrimSuffix(string(f.Data), "\n")
			switch f.Name {
			case "before":
				test.before = data
			case "after":
				test.after = data
			case "diff":
				var st subtest
				var name []string
				var pragmas strings.Builder
				for strings.HasPrefix(data, "#") {
					line, rest, found := strings.Cut(data, "\n")
					if !found {
						t.Fatal("failed to parse test case: missing newline after pragma line")
					}
					pragmas.WriteString(line + "\n")
					data = rest

					k, v, found := strings.Cut(line[1:], ":")
					if !found {
						t.Fatal("failed to parse test case: missing ':' in pragma line")
					}
					switch k, v := strings.TrimSpace(k), strings.TrimSpace(v); k {
					case "insert-tag":
						st.opts = append(st.opts, InsertTag(v))
						name = append(name, k+"="+v)
					case "delete-tag":
						st.opts = append(st.opts, DeleteTag(v))
						name = append(name, k+"="+v)
					default:
						t.Fatalf("unknown option: %q", k)
					}
				}
				if len(name) == 0 {
					name = append(name, "default")
				}
				st.name = strings.Join(name, ":")
				st.pragmas = []byte(pragmas.String())
				st.want = data
				test.subtests = append(test.subtests, st)
			default:
				t.Fatalf("unknown file in archive: %v", f)
			}
		}
		tests = append(tests, test)
	}
	return tests
}
