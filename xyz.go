/*
 * xyz.go, part of gocryst.
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

package cryst

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// XyzRead reads an XYZ geometry, returning the atom symbols and the
// coordinates as an Nx3 matrix, in the same units as the file (usually A).
// It takes both proper XYZ files, with the atom count and comment header,
// and bare coordinate tables without one. Lines with fewer than four
// fields are skipped, which takes care of stray comments, but a line that
// looks like an atom and doesn't parse is an error.
func XyzRead(r io.Reader) ([]string, *mat.Dense, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, err
	}
	data := lines
	if len(lines) > 0 {
		if n, err := strconv.Atoi(lines[0]); err == nil {
			//header mode: skip the count and the comment line, take n atoms,
			//or as many as the file actually has.
			start := 2
			end := 2 + n
			if end < start {
				end = start
			}
			if start > len(lines) {
				start = len(lines)
			}
			if end > len(lines) {
				end = len(lines)
			}
			data = lines[start:end]
		}
	}
	symbols := make([]string, 0, len(data))
	coords := make([]float64, 0, 3*len(data))
	for i, line := range data {
		fields := strings.Fields(line)
		if len(fields) < 4 {
			continue
		}
		symbols = append(symbols, fields[0])
		for j := 1; j <= 3; j++ {
			v, err := strconv.ParseFloat(fields[j], 64)
			if err != nil {
				return nil, nil, fmt.Errorf("gocryst: ill formatted XYZ, line %d: %q", i+1, line)
			}
			coords = append(coords, v)
		}
	}
	if len(symbols) == 0 {
		//gonum has no zero-row matrices, so an atomless input gives nil
		//coordinates. Callers wanting a geometry should test for that.
		return symbols, nil, nil
	}
	return symbols, mat.NewDense(len(symbols), 3, coords), nil
}

// XyzFileRead reads an XYZ geometry from the named file, as XyzRead does.
func XyzFileRead(name string) ([]string, *mat.Dense, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()
	return XyzRead(f)
}

// XyzWrite writes the given symbols and Nx3 coordinates as an XYZ
// geometry, with the atom count header and an empty comment line.
func XyzWrite(out io.Writer, symbols []string, coords *mat.Dense) error {
	r, c := coords.Dims()
	if c != 3 {
		return fmt.Errorf("gocryst: XyzWrite: coordinates must have 3 columns, not %d", c)
	}
	if r != len(symbols) {
		return fmt.Errorf("gocryst: XyzWrite: %d atom symbols for %d coordinate rows", len(symbols), r)
	}
	if _, err := fmt.Fprintf(out, "%-4d\n\n", r); err != nil {
		return err
	}
	for i, s := range symbols {
		_, err := fmt.Fprintf(out, "%-2s  %8.3f%8.3f%8.3f \n", s,
			coords.At(i, 0), coords.At(i, 1), coords.At(i, 2))
		if err != nil {
			return err
		}
	}
	return nil
}

// XyzFileWrite writes an XYZ geometry to the named file, which is created,
// or overwritten if it exists.
func XyzFileWrite(name string, symbols []string, coords *mat.Dense) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer f.Close()
	return XyzWrite(f, symbols, coords)
}
