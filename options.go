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

import "znkr.io/htmldiff/internal/config"

// Option configures the behavior of comparison functions.
type Option = config.Option

// InsertTag sets the name of the element that encloses inserted text. The default is "ins".
func InsertTag(name string) Option {
	return func(cfg *config.Config) config.Flag {
		cfg.InsertTag = name
		return config.InsertTag
	}
}

// DeleteTag sets the name of the element that encloses deleted text. The default is "del".
func DeleteTag(name string) Option {
	return func(cfg *config.Config) config.Flag {
		cfg.DeleteTag = name
		return config.DeleteTag
	}
}

// Myers uses Myers' algorithm to find the tokens both documents have in common.
//
// By default, the comparison recursively searches for the longest run of common tokens. That tends
// to keep larger passages of unchanged text together, but it can be slow for large documents with
// many repeated tokens. Myers' algorithm finds a minimal number of changes, is much faster for
// large inputs, but may split unchanged text into smaller pieces.
func Myers() Option {
	return func(cfg *config.Config) config.Flag {
		cfg.Blocks = config.BlocksMyers
		return config.Myers
	}
}
