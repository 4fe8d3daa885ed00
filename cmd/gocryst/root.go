/*
 * root.go, part of gocryst.
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
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	cryst "github.com/rmera/gocryst"
	"github.com/rmera/gocryst/dataset"
)

//commandContext carries the persistent flags into the subcommands and
//builds the shared pieces from them.
type commandContext struct {
	data    string
	verbose bool
}

//logger returns a stderr logger, quiet unless --verbose is given.
func (ctx *commandContext) logger() *slog.Logger {
	level := slog.LevelWarn
	if ctx.verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func (ctx *commandContext) store() *dataset.Store {
	return dataset.NewStore(ctx.data)
}

//ingester builds the dataset Ingester, with the mass-over-volume density
//estimate of the cryst package as the density engine.
func (ctx *commandContext) ingester() *dataset.Ingester {
	density := func(c *cryst.Crystal) (float64, error) { return c.Density() }
	return dataset.NewIngester(ctx.store(), ctx.logger(), density)
}

func defaultDataRoot() string {
	if root := os.Getenv("GOCRYST_DATA"); root != "" {
		return root
	}
	return "data"
}

func newRootCommand() *cobra.Command {
	ctx := &commandContext{}

	rootCmd := &cobra.Command{
		Use:           "gocryst",
		Short:         "Tokenized molecular crystal toolbox",
		Long:          "gocryst encodes molecular crystals to token sequences and back,\nrenders them to CIF, and manages datasets of tokenized structures.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVar(&ctx.data, "data", defaultDataRoot(), "Root directory of the dataset store")
	rootCmd.PersistentFlags().BoolVarP(&ctx.verbose, "verbose", "v", false, "Log progress and skipped structures to stderr")

	rootCmd.AddCommand(newEncodeCommand(ctx))
	rootCmd.AddCommand(newDecodeCommand(ctx))
	rootCmd.AddCommand(newCIFCommand(ctx))
	rootCmd.AddCommand(newIngestCommand(ctx))
	rootCmd.AddCommand(newDatasetsCommand(ctx))
	rootCmd.AddCommand(newLandscapeCommand(ctx))
	rootCmd.AddCommand(newBenchmarksCommand(ctx))
	rootCmd.AddCommand(newLeaderboardCommand(ctx))

	return rootCmd
}

//readInput returns the contents of the named file, or of standard input
//when name is empty or "-".
func readInput(cmd *cobra.Command, name string) ([]byte, error) {
	if name == "" || name == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	return os.ReadFile(name)
}
