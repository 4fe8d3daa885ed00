/*
 * ingest_command.go, part of gocryst.
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
	"os"

	"github.com/spf13/cobra"
)

func newIngestCommand(ctx *commandContext) *cobra.Command {
	var molecule, structures string
	var name, energyKey, densityKey string

	cmd := &cobra.Command{
		Use:   "ingest",
		Short: "Ingest a molecule and its tokenized structures into the store",
		Long: "Ingest stores a new dataset: one molecule XYZ file plus a JSON object\n" +
			"of named structures, each with a tokens array and scalar properties.\n" +
			"The property named by --energy-key is mandatory per structure.\n" +
			"Densities come from the property named by --density-key when present,\n" +
			"and from the built-in estimator otherwise.",
		RunE: func(cmd *cobra.Command, args []string) error {
			molBytes, err := os.ReadFile(molecule)
			if err != nil {
				return err
			}
			structBytes, err := os.ReadFile(structures)
			if err != nil {
				return err
			}
			meta, err := ctx.ingester().Ingest(name, molBytes, structBytes, energyKey, densityKey)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Ingested dataset %s: %d structures", meta.DSID, meta.Count)
			if len(meta.Warnings) > 0 {
				fmt.Fprintf(out, ", %d skipped", len(meta.Warnings))
			}
			fmt.Fprintln(out)
			for _, w := range meta.Warnings {
				fmt.Fprintf(out, "  skipped %s\n", w)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&molecule, "molecule", "m", "", "XYZ file with the shared molecular geometry")
	cmd.Flags().StringVarP(&structures, "structures", "s", "", "JSON file with the tokenized structures")
	cmd.Flags().StringVarP(&name, "name", "n", "", "Dataset name, a random one if empty")
	cmd.Flags().StringVar(&energyKey, "energy-key", "", "Property holding each structure's energy")
	cmd.Flags().StringVar(&densityKey, "density-key", "", "Property holding each structure's density, optional")
	cmd.MarkFlagRequired("molecule")
	cmd.MarkFlagRequired("structures")
	cmd.MarkFlagRequired("energy-key")
	return cmd
}
