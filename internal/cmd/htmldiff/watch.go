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
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"slices"
	"time"

	"github.com/fsnotify/fsnotify"
)

// watch writes the output and rewrites it whenever one of the inputs changes until Ctrl-C is
// pressed.
func watch(beforeFile, afterFile string, f *flags) error {
	update := func() error {
		out, err := generate(beforeFile, afterFile, f)
		if err != nil {
			return err
		}
		return write(nil, f, out)
	}
	if err := update(); err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("starting watcher: %v", err)
	}
	defer watcher.Close()

	// Watch the directories instead of the files, editors often replace files on save.
	inputs := make(map[string]bool)
	for _, name := range []string{beforeFile, afterFile} {
		abs, err := filepath.Abs(name)
		if err != nil {
			return fmt.Errorf("resolving %s: %v", name, err)
		}
		inputs[abs] = true
		if dir := filepath.Dir(abs); !slices.Contains(watcher.WatchList(), dir) {
			if err := watcher.Add(dir); err != nil {
				return fmt.Errorf("starting watch: %v", err)
			}
		}
	}
	log.Printf("Watching %s and %s, press Ctrl-C to stop", beforeFile, afterFile)

	sigint := make(chan os.Signal, 1)
	signal.Notify(sigint, os.Interrupt)

	for {
		select {
		case event := <-watcher.Events:
			if !inputs[event.Name] || !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			start := time.Now()
			if err := update(); err != nil {
				log.Printf("failed to update %s: %v", f.output, err)
				continue
			}
			log.Printf("Updated %s (%v)", f.output, time.Since(start))
		case err := <-watcher.Errors:
			return fmt.Errorf("watching: %v", err)
		case <-sigint:
			fmt.Print("\r") // remove Ctrl-C output characters
			log.Printf("Received Ctrl-C, shutting down")
			return nil
		}
	}
}
