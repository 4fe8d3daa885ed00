/*
 * leaderboard_commands.go, part of gocryst.
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

package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/rmera/gocryst/dataset"
)

func newBenchmarksCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "benchmarks",
		Short: "List the benchmark datasets of the store",
		RunE: func(cmd *cobra.Command, args []string) error {
			benchmarks, err := ctx.store().Benchmarks()
			if err != nil {
				return err
			}
			if len(benchmarks) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "The store has no benchmarks")
				return nil
			}
			rows := make([][]string, 0, len(benchmarks))
			for _, b := range benchmarks {
				rows = append(rows, []string{b.ID, b.Title, b.Metric, b.Description})
			}
			table := renderTable([]string{"ID", "Title", "Metric", "Description"}, rows)
			fmt.Fprintln(cmd.OutOrStdout(), table)
			return nil
		},
	}
}

func newLeaderboardCommand(ctx *commandContext) *cobra.Command {
	var benchmark string

	cmd := &cobra.Command{
		Use:   "leaderboard",
		Short: "Show the leaderboard, optionally for one benchmark",
		RunE: func(cmd *cobra.Command, args []string) error {
			results, err := ctx.store().Leaderboard(benchmark)
			if err != nil {
				return err
			}
			if len(results) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "The leaderboard is empty")
				return nil
			}
			metrics := metricColumns(results)
			headers := append([]string{"Benchmark", "Method", "Submitter", "Date"}, metrics...)
			rows := make([][]string, 0, len(results))
			for _, r := range results {
				row := []string{r.Benchmark, r.Method, r.Submitter, r.Date}
				for _, m := range metrics {
					if v, ok := r.Metrics[m]; ok {
						row = append(row, fmt.Sprintf("%g", v))
					} else {
						row = append(row, "")
					}
				}
				rows = append(rows, row)
			}
			right := make([]int, len(metrics))
			for i := range metrics {
				right[i] = 4 + i
			}
			table := renderTable(headers, rows, right...)
			fmt.Fprintln(cmd.OutOrStdout(), table)
			return nil
		},
	}

	cmd.Flags().StringVarP(&benchmark, "benchmark", "b", "", "Keep only the results of this benchmark")
	return cmd
}

//metricColumns returns the union of the metric names across results, in
//alphabetical order, so the table has one column per metric.
func metricColumns(results []dataset.Result) []string {
	seen := make(map[string]bool)
	var names []string
	for _, r := range results {
		for name := range r.Metrics {
			if !seen[name] {
				seen[name] = true
				names = append(names, name)
			}
		}
	}
	sort.Strings(names)
	return names
}
