/*
 * cif_command.go, part of gocryst.
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
	"io"
	"strings"

	"github.com/spf13/cobra"

	cryst "github.com/rmera/gocryst"
)

func newCIFCommand(ctx *commandContext) *cobra.Command {
	var dsid, name string
	var tokensFile, moleculeFile string
	var output string
	var bulk bool

	cmd := &cobra.Command{
		Use:   "cif",
		Short: "Render structures to CIF",
		Long: "Cif renders a structure to CIF text. The structure comes either from\n" +
			"a dataset in the store (--dataset and --name) or from a token file\n" +
			"plus a molecule XYZ (--tokens and --molecule). With --bulk, every\n" +
			"structure of a dataset goes into one concatenated stream; an output\n" +
			"file ending in .gz, .zst or .zstd is compressed accordingly.",
		RunE: func(cmd *cobra.Command, args []string) error {
			fromDataset := dsid != ""
			fromFiles := tokensFile != ""
			if fromDataset == fromFiles {
				return fmt.Errorf("give either --dataset or --tokens, not both")
			}
			if bulk {
				if !fromDataset {
					return fmt.Errorf("--bulk needs a dataset")
				}
				if output == "" {
					return fmt.Errorf("--bulk needs an output file")
				}
				return writeBulkCIF(ctx, cmd.OutOrStdout(), dsid, output)
			}
			var c *cryst.Crystal
			var err error
			if fromDataset {
				if name == "" {
					return fmt.Errorf("--dataset needs --name, or --bulk for all structures")
				}
				c, err = ctx.ingester().Crystal(dsid, name)
				if err != nil {
					return err
				}
			} else {
				c, err = crystalFromFiles(cmd, tokensFile, moleculeFile)
				if err != nil {
					return err
				}
			}
			if output == "" {
				return c.CIF(cmd.OutOrStdout())
			}
			w, err := cryst.NewBulkCIFWriter(output)
			if err != nil {
				return err
			}
			if err := w.WNext(c); err != nil {
				w.Close()
				return err
			}
			return w.Close()
		},
	}

	cmd.Flags().StringVar(&dsid, "dataset", "", "Dataset to take the structure from")
	cmd.Flags().StringVar(&name, "name", "", "Structure name within the dataset")
	cmd.Flags().StringVar(&tokensFile, "tokens", "", "File with a whitespace-separated token sequence")
	cmd.Flags().StringVar(&moleculeFile, "molecule", "", "XYZ file with the molecular geometry")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file, standard output if empty")
	cmd.Flags().BoolVar(&bulk, "bulk", false, "Render every structure of the dataset")
	return cmd
}

//crystalFromFiles builds a renderable crystal from a token file and a
//molecule XYZ file.
func crystalFromFiles(cmd *cobra.Command, tokensFile, moleculeFile string) (*cryst.Crystal, error) {
	if moleculeFile == "" {
		return nil, fmt.Errorf("--tokens needs --molecule to build the full structure")
	}
	data, err := readInput(cmd, tokensFile)
	if err != nil {
		return nil, err
	}
	c, err := cryst.FromTokens(strings.Fields(string(data)), nil)
	if err != nil {
		return nil, err
	}
	symbols, coords, err := cryst.XyzFileRead(moleculeFile)
	if err != nil {
		return nil, err
	}
	if coords == nil {
		return nil, fmt.Errorf("the molecule file contains no atoms")
	}
	if err := c.SetMolecule(symbols, coords); err != nil {
		return nil, err
	}
	return c, nil
}

//writeBulkCIF renders every structure of a dataset into one concatenated
//CIF stream. Structures that fail to render are skipped with a warning.
func writeBulkCIF(ctx *commandContext, out io.Writer, dsid, output string) error {
	in := ctx.ingester()
	manifest, err := in.Manifest(dsid)
	if err != nil {
		return err
	}
	w, err := cryst.NewBulkCIFWriter(output)
	if err != nil {
		return err
	}
	log := ctx.logger()
	for _, entry := range manifest {
		c, err := in.Crystal(dsid, entry.Name)
		if err != nil {
			log.Warn("structure skipped", "name", entry.Name, "error", err)
			continue
		}
		if err := w.WNext(c); err != nil {
			log.Warn("structure not rendered", "name", entry.Name, "error", err)
		}
	}
	if err := w.Close(); err != nil {
		return err
	}
	fmt.Fprintf(out, "Wrote %d structures to %s\n", w.Blocks(), output)
	return nil
}
