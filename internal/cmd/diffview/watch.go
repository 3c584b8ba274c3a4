// Copyright 2025 Florian Zenker (flo@znkr.io)
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
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"znkr.io/diffview"
)

// Changes that arrive within this duration are reported together.
const debounce = 50 * time.Millisecond

// watchFiles calls update with the documents whose files have been written to, until ctx is done
// or update returns an error.
//
// The parent directories are watched instead of the files themselves, many editors save a file by
// writing a new one and renaming it over the old one.
func watchFiles(ctx context.Context, files [2]string, update func(changed []diffview.Doc) error) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %v", err)
	}
	defer fsw.Close()

	docs := make(map[string][]diffview.Doc)
	for i, name := range files {
		abs, err := filepath.Abs(name)
		if err != nil {
			return err
		}
		docs[abs] = append(docs[abs], diffview.Doc(i))
		if err := fsw.Add(filepath.Dir(abs)); err != nil {
			return fmt.Errorf("watching %s: %v", name, err)
		}
	}

	timer := time.NewTimer(debounce)
	timer.Stop()
	defer timer.Stop()

	var pending [2]bool
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			for _, doc := range docs[filepath.Clean(ev.Name)] {
				pending[doc] = true
				timer.Reset(debounce)
			}
		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("watching files: %v", err)
		case <-timer.C:
			var changed []diffview.Doc
			for i, p := range pending {
				if p {
					changed = append(changed, diffview.Doc(i))
				}
			}
			pending = [2]bool{}
			if err := update(changed); err != nil {
				return err
			}
		}
	}
}
