/*
 * dataset_commands.go, part of gocryst.
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
	"strconv"

	"github.com/spf13/cobra"

	"github.com/rmera/gocryst/crystplot"
)

func newDatasetsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "datasets",
		Short: "List the datasets in the store, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			metas, err := ctx.ingester().Datasets()
			if err != nil {
				return err
			}
			if len(metas) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "The store has no datasets")
				return nil
			}
			rows := make([][]string, 0, len(metas))
			for _, m := range metas {
				rows = append(rows, []string{
					m.DSID,
					strconv.Itoa(m.Count),
					strconv.Itoa(len(m.Warnings)),
					m.CreatedAt.Format("2006-01-02 15:04"),
				})
			}
			table := renderTable([]string{"Dataset", "Structures", "Skipped", "Created"}, rows, 1, 2)
			fmt.Fprintln(cmd.OutOrStdout(), table)
			return nil
		},
	}
}

func newLandscapeCommand(ctx *commandContext) *cobra.Command {
	var dsid, plotname string

	cmd := &cobra.Command{
		Use:   "landscape",
		Short: "Show the energy-vs-density landscape of a dataset",
		Long: "Landscape lists every structure of a dataset with its density and\n" +
			"energy. With --plot it draws the landscape to a png file instead,\n" +
			"marking the lowest-energy structure.",
		RunE: func(cmd *cobra.Command, args []string) error {
			points, err := ctx.ingester().Landscape(dsid)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(points) == 0 {
				fmt.Fprintln(out, "No structure of the dataset has both an energy and a density")
				return nil
			}
			if plotname != "" {
				if err := crystplot.LandscapePlot(points, dsid, plotname); err != nil {
					return err
				}
				fmt.Fprintf(out, "Wrote %s.png with %d structures\n", plotname, len(points))
				return nil
			}
			rows := make([][]string, 0, len(points))
			for _, p := range points {
				rows = append(rows, []string{
					p.Name,
					p.Label,
					fmt.Sprintf("%.4f", p.X),
					fmt.Sprintf("%g", p.Y),
				})
			}
			table := renderTable([]string{"Structure", "Formula", "Density", "Energy"}, rows, 2, 3)
			fmt.Fprintln(out, table)
			return nil
		},
	}

	cmd.Flags().StringVarP(&dsid, "dataset", "d", "", "Dataset to lay out")
	cmd.Flags().StringVar(&plotname, "plot", "", "Draw to this png file (extension appended) instead of listing")
	cmd.MarkFlagRequired("dataset")
	return cmd
}
