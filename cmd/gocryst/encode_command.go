/*
 * encode_command.go, part of gocryst.
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
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	cryst "github.com/rmera/gocryst"
)

func newEncodeCommand(ctx *commandContext) *cobra.Command {
	var ids bool

	cmd := &cobra.Command{
		Use:   "encode [crystal.json]",
		Short: "Encode a packing recipe into a token sequence",
		Long: "Encode reads a crystal packing recipe, a JSON object with identity,\n" +
			"sg, cell, com and rod fields, from a file or standard input, and\n" +
			"prints its token sequence, one line, space separated.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := ""
			if len(args) == 1 {
				name = args[0]
			}
			data, err := readInput(cmd, name)
			if err != nil {
				return err
			}
			var cj crystalJSON
			if err := json.Unmarshal(data, &cj); err != nil {
				return fmt.Errorf("parsing the crystal recipe: %w", err)
			}
			c := crystalFromJSON(cj)
			tokens := c.Tokens()
			if !ids {
				fmt.Fprintln(cmd.OutOrStdout(), strings.Join(tokens, " "))
				return nil
			}
			numeric, err := c.TokenIDs(cryst.DefaultVocab())
			if err != nil {
				return err
			}
			out := make([]string, len(numeric))
			for i, id := range numeric {
				out[i] = strconv.Itoa(id)
			}
			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(out, " "))
			return nil
		},
	}

	cmd.Flags().BoolVar(&ids, "ids", false, "Print vocabulary ids instead of tokens")
	return cmd
}
