/*
 * leaderboard.go, part of gocryst.
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
 */

package dataset

import "encoding/json"

//the leaderboard files live at the root of the store, next to the
//datasets directory.
const (
	benchmarksFile  = "benchmarks.json"
	leaderboardFile = "leaderboard.json"
)

// A Benchmark describes one benchmark dataset that leaderboard results
// can refer to.
type Benchmark struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Metric      string `json:"metric,omitempty"`
}

// A Result is one leaderboard submission. Results are freeform beyond the
// benchmark they belong to: the known string fields are picked up by name,
// every numeric field lands in Metrics, and anything else is dropped.
type Result struct {
	Benchmark string
	Method    string
	Submitter string
	Date      string
	Metrics   map[string]float64
}

// UnmarshalJSON implements the pragmatic schema described on Result.
func (r *Result) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	r.Metrics = make(map[string]float64)
	for k, v := range raw {
		var s string
		if err := json.Unmarshal(v, &s); err == nil {
			switch k {
			case "benchmark":
				r.Benchmark = s
			case "method":
				r.Method = s
			case "submitter":
				r.Submitter = s
			case "date":
				r.Date = s
			}
			continue
		}
		var f float64
		if err := json.Unmarshal(v, &f); err == nil {
			r.Metrics[k] = f
		}
	}
	return nil
}

// Benchmarks reads the benchmark catalog of the store. A store without
// one has no benchmarks, which is not an error.
func (s *Store) Benchmarks() ([]Benchmark, error) {
	if !s.Exists(benchmarksFile) {
		return nil, nil
	}
	var benchmarks []Benchmark
	if err := s.LoadJSON(benchmarksFile, &benchmarks); err != nil {
		return nil, err
	}
	return benchmarks, nil
}

// Leaderboard reads the leaderboard of the store, keeping only the results
// for the given benchmark, or all of them if benchmark is empty. A store
// without a leaderboard has an empty one.
func (s *Store) Leaderboard(benchmark string) ([]Result, error) {
	if !s.Exists(leaderboardFile) {
		return nil, nil
	}
	var results []Result
	if err := s.LoadJSON(leaderboardFile, &results); err != nil {
		return nil, err
	}
	if benchmark == "" {
		return results, nil
	}
	kept := results[:0]
	for _, r := range results {
		if r.Benchmark == benchmark {
			kept = append(kept, r)
		}
	}
	return kept, nil
}
