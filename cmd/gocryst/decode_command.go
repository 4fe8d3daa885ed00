/*
 * decode_command.go, part of gocryst.
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

func newDecodeCommand(ctx *commandContext) *cobra.Command {
	var ids bool

	cmd := &cobra.Command{
		Use:   "decode [tokens.txt]",
		Short: "Decode a token sequence back into a packing recipe",
		Long: "Decode reads a whitespace-separated token sequence from a file or\n" +
			"standard input and prints the packing recipe it encodes as JSON.",
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
			fields := strings.Fields(string(data))
			var c *cryst.Crystal
			if ids {
				numeric := make([]int, len(fields))
				for i, f := range fields {
					numeric[i], err = strconv.Atoi(f)
					if err != nil {
						return fmt.Errorf("token id %q is not a number", f)
					}
				}
				c, err = cryst.FromTokenIDs(numeric, cryst.DefaultVocab(), nil)
			} else {
				c, err = cryst.FromTokens(fields, nil)
			}
			if err != nil {
				return err
			}
			out, err := json.MarshalIndent(crystalToJSON(c), "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		},
	}

	cmd.Flags().BoolVar(&ids, "ids", false, "Read vocabulary ids instead of tokens")
	return cmd
}
