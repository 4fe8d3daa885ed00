/*
 * store.go, part of gocryst.
 *
 *
 * Copyright 2025 Raul Mera A. (raulpuntomeraatusachpuntocl)
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 *
 * goCryst is developed at the Universidad de Santiago de Chile
 * (USACH)
 *
 */

package dataset

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Store is a dataset archive rooted at a directory. Keys are slash-separated
// paths relative to the root, so the same keys could address a blob store,
// but only the local filesystem is implemented.
type Store struct {
	root string
}

// NewStore returns a Store rooted at the given directory. The directory
// does not need to exist yet, it is created on the first save.
func NewStore(root string) *Store {
	return &Store{root: root}
}

// Root returns the root directory of the store.
func (s *Store) Root() string {
	return s.root
}

func (s *Store) path(key string) string {
	return filepath.Join(s.root, filepath.FromSlash(key))
}

// SaveBytes writes data under the given key, creating any intermediate
// directories.
func (s *Store) SaveBytes(key string, data []byte) error {
	p := s.path(key)
	if err := os.MkdirAll(filepath.Dir(p), 0755); err != nil {
		return err
	}
	return os.WriteFile(p, data, 0644)
}

// LoadBytes reads the data stored under the given key.
func (s *Store) LoadBytes(key string) ([]byte, error) {
	return os.ReadFile(s.path(key))
}

// SaveJSON marshals v with 2-space indentation and stores it under the
// given key.
func (s *Store) SaveJSON(key string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("gocryst: store: marshaling %s: %w", key, err)
	}
	return s.SaveBytes(key, data)
}

// LoadJSON reads the data under the given key and unmarshals it into v.
func (s *Store) LoadJSON(key string, v any) error {
	data, err := s.LoadBytes(key)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("gocryst: store: parsing %s: %w", key, err)
	}
	return nil
}

// Exists reports whether something is stored under the given key.
func (s *Store) Exists(key string) bool {
	_, err := os.Stat(s.path(key))
	return err == nil
}

// MetaPaths returns the keys of the meta.json files of every dataset in
// the store, in no particular order. A missing datasets directory is an
// empty store, not an error.
func (s *Store) MetaPaths() ([]string, error) {
	base := filepath.Join(s.root, "datasets")
	dirs, err := os.ReadDir(base)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var paths []string
	for _, d := range dirs {
		if !d.IsDir() {
			continue
		}
		key := "datasets/" + d.Name() + "/" + metaFile
		if s.Exists(key) {
			paths = append(paths, key)
		}
	}
	return paths, nil
}
