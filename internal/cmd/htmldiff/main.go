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

// htmldiff compares two HTML files and writes the newer one with all changes marked.
//
//	htmldiff before.html after.html > diff.html
//
// With --page, the output is a complete HTML document showing the source of both files next to the
// rendered diff. With --watch, the output file is rewritten whenever one of the inputs changes,
// which is handy to keep a browser tab with the page open while editing.
package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"
	"znkr.io/htmldiff"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

type flags struct {
	output    string
	insertTag string
	deleteTag string
	myers     bool
	minify    bool
	nfc       bool
	page      bool
	watch     bool
}

func (f *flags) options() []htmldiff.Option {
	opts := []htmldiff.Option{
		htmldiff.InsertTag(f.insertTag),
		htmldiff.DeleteTag(f.deleteTag),
	}
	if f.myers {
		opts = append(opts, htmldiff.Myers())
	}
	return opts
}

func newRootCmd() *cobra.Command {
	var f flags
	cmd := &cobra.Command{
		Use:          "htmldiff [flags] <before> <after>",
		Short:        "Compare two HTML documents and mark insertions and deletions",
		Args:         cobra.ExactArgs(2),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if f.insertTag == "" || f.deleteTag == "" || f.insertTag == f.deleteTag {
				return fmt.Errorf("--ins-tag and --del-tag must be different and not empty")
			}
			if f.watch {
				if f.output == "" {
					return fmt.Errorf("--watch requires --output")
				}
				return watch(args[0], args[1], &f)
			}
			out, err := generate(args[0], args[1], &f)
			if err != nil {
				return err
			}
			return write(cmd.OutOrStdout(), &f, out)
		},
	}

	fl := cmd.Flags()
	fl.StringVarP(&f.output, "output", "o", "", "write the result to `file` instead of stdout")
	fl.StringVar(&f.insertTag, "ins-tag", "ins", "element enclosing inserted text")
	fl.StringVar(&f.deleteTag, "del-tag", "del", "element enclosing deleted text")
	fl.BoolVar(&f.myers, "myers", false, "use Myers' algorithm to match the documents")
	fl.BoolVar(&f.minify, "minify", false, "minify both documents before comparing them")
	fl.BoolVar(&f.nfc, "nfc", false, "normalize both documents to Unicode NFC before comparing them")
	fl.BoolVar(&f.page, "page", false, "write a complete page with both sources and the diff")
	fl.BoolVar(&f.watch, "watch", false, "rewrite the output whenever an input changes")
	return cmd
}

// generate reads both files and returns the output.
func generate(beforeFile, afterFile string, f *flags) ([]byte, error) {
	before, err := readInput(beforeFile, f)
	if err != nil {
		return nil, err
	}
	after, err := readInput(afterFile, f)
	if err != nil {
		return nil, err
	}

	diff := htmldiff.Diff(before, after, f.options()...)
	if !f.page {
		return []byte(diff), nil
	}
	return page([]pane{
		{title: "Before: " + beforeFile, source: before},
		{title: "After: " + afterFile, source: after},
		{title: "Diff", source: diff, rendered: true},
	}, f)
}

func write(stdout io.Writer, f *flags, out []byte) error {
	if f.output == "" {
		_, err := stdout.Write(out)
		return err
	}
	if err := os.WriteFile(f.output, out, 0o644); err != nil {
		return fmt.Errorf("writing output: %v", err)
	}
	return nil
}
