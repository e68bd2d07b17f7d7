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

package config

import "fmt"

// Blocks selects the algorithm used to find matching blocks between two token streams.
type Blocks int

const (
	// Recursively find the longest run of matching tokens and decompose the regions to its left
	// and right.
	BlocksLongestMatch Blocks = iota

	// Derive matching blocks from Myers' algorithm. This produces a minimal edit script, but
	// doesn't prefer long runs of matching tokens.
	BlocksMyers
)

type Config struct {
	// InsertTag is the name of the element that wraps inserted text.
	InsertTag string

	// DeleteTag is the name of the element that wraps deleted text.
	DeleteTag string

	// Algorithm used to find matching blocks.
	Blocks Blocks
}

var Default = Config{
	InsertTag: "ins",
	DeleteTag: "del",
	Blocks:    BlocksLongestMatch,
}

type Flag int

const (
	InsertTag Flag = 1 << iota
	DeleteTag
	Myers
)

type Option func(*Config) Flag

func FromOptions(opts []Option, allowed Flag) Config {
	cfg := Default
	for _, opt := range opts {
		flag := opt(&cfg)
		if flag & ^allowed != 0 {
			panic("Option " + printFlag(flag) + " not allowed here")
		}
	}
	if cfg.InsertTag == "" || cfg.DeleteTag == "" {
		panic("marker tags must not be empty")
	}
	if cfg.InsertTag == cfg.DeleteTag {
		panic(fmt.Sprintf("insert and delete marker tags must differ, both are %q", cfg.InsertTag))
	}
	return cfg
}

func printFlag(flag Flag) string {
	switch flag {
	case InsertTag:
		return "htmldiff.InsertTag"
	case DeleteTag:
		return "htmldiff.DeleteTag"
	case Myers:
		return "htmldiff.Myers"
	default:
		panic("never reached")
	}
}
