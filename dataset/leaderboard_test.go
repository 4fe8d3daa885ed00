/*
 * leaderboard_test.go, part of gocryst.
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

import "testing"

func TestLeaderboard(Te *testing.T) {
	s := NewStore(Te.TempDir())
	//an empty store has empty catalogs, not errors.
	if b, err := s.Benchmarks(); err != nil || len(b) != 0 {
		Te.Errorf("fresh store benchmarks: %v, %v", b, err)
	}
	if r, err := s.Leaderboard(""); err != nil || len(r) != 0 {
		Te.Errorf("fresh store leaderboard: %v, %v", r, err)
	}
	benchmarks := `[
  {"id": "co-25", "title": "CO blind test", "metric": "rmsd"},
  {"id": "bz-25", "title": "Benzene blind test"}
]`
	leaderboard := `[
  {"benchmark": "co-25", "method": "gen-a", "submitter": "lab1", "rmsd": 0.5, "rank": 1, "broken": [1]},
  {"benchmark": "co-25", "method": "gen-b", "rmsd": 0.9},
  {"benchmark": "bz-25", "method": "gen-a", "rmsd": 1.2}
]`
	if err := s.SaveBytes("benchmarks.json", []byte(benchmarks)); err != nil {
		Te.Fatal(err)
	}
	if err := s.SaveBytes("leaderboard.json", []byte(leaderboard)); err != nil {
		Te.Fatal(err)
	}
	b, err := s.Benchmarks()
	if err != nil {
		Te.Fatal(err)
	}
	if len(b) != 2 || b[0].ID != "co-25" || b[0].Metric != "rmsd" {
		Te.Errorf("benchmarks = %+v", b)
	}
	all, err := s.Leaderboard("")
	if err != nil {
		Te.Fatal(err)
	}
	if len(all) != 3 {
		Te.Fatalf("got %d results", len(all))
	}
	if all[0].Method != "gen-a" || all[0].Submitter != "lab1" {
		Te.Errorf("first result = %+v", all[0])
	}
	if all[0].Metrics["rmsd"] != 0.5 || all[0].Metrics["rank"] != 1 {
		Te.Errorf("first result metrics = %v", all[0].Metrics)
	}
	if _, ok := all[0].Metrics["broken"]; ok {
		Te.Error("non-scalar fields should be dropped")
	}
	co, err := s.Leaderboard("co-25")
	if err != nil {
		Te.Fatal(err)
	}
	if len(co) != 2 {
		Te.Errorf("co-25 has %d results, want 2", len(co))
	}
	for _, r := range co {
		if r.Benchmark != "co-25" {
			Te.Errorf("filtering let %q through", r.Benchmark)
		}
	}
}
