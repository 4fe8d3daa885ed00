/*
 * xyz_test.go, part of gocryst.
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

package cryst

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestXyzReadHeader(Te *testing.T) {
	text := `3
water
O   0.000   0.000   0.117
H   0.000   0.757  -0.471
H   0.000  -0.757  -0.471
`
	symbols, coords, err := XyzRead(strings.NewReader(text))
	if err != nil {
		Te.Fatal(err)
	}
	if len(symbols) != 3 {
		Te.Fatalf("got %d atoms", len(symbols))
	}
	if symbols[0] != "O" || symbols[2] != "H" {
		Te.Errorf("symbols = %v", symbols)
	}
	if coords.At(0, 2) != 0.117 || coords.At(1, 1) != 0.757 {
		Te.Error("wrong coordinates from headed XYZ")
	}
}

func TestXyzReadHeadless(Te *testing.T) {
	//no atom count, no comment, some junk lines to skip.
	text := `C   1.000   2.000   3.000

nonsense line
O  -1.000  -2.000  -3.000
`
	symbols, coords, err := XyzRead(strings.NewReader(text))
	if err != nil {
		Te.Fatal(err)
	}
	if len(symbols) != 2 || symbols[1] != "O" {
		Te.Fatalf("symbols = %v", symbols)
	}
	if coords.At(1, 0) != -1 {
		Te.Error("wrong coordinates from headless XYZ")
	}
}

func TestXyzReadShortHeader(Te *testing.T) {
	//the header promises more atoms than the file holds.
	text := `5
short
C   1.000   2.000   3.000
`
	symbols, _, err := XyzRead(strings.NewReader(text))
	if err != nil {
		Te.Fatal(err)
	}
	if len(symbols) != 1 {
		Te.Errorf("got %d atoms from a short file", len(symbols))
	}
}

func TestXyzReadMalformed(Te *testing.T) {
	text := `C   1.000   2.000   3.000
O   1.000   oops    3.000
`
	_, _, err := XyzRead(strings.NewReader(text))
	if err == nil {
		Te.Fatal("expected an error for a non-numeric coordinate")
	}
	if !strings.Contains(err.Error(), "line") {
		Te.Errorf("error should point at the offending line: %v", err)
	}
}

func TestXyzReadEmpty(Te *testing.T) {
	symbols, coords, err := XyzRead(strings.NewReader("\n\n"))
	if err != nil {
		Te.Fatal(err)
	}
	if len(symbols) != 0 || coords != nil {
		Te.Error("empty input should yield no atoms and nil coordinates")
	}
}

func TestXyzRoundTrip(Te *testing.T) {
	name := filepath.Join(Te.TempDir(), "mol.xyz")
	symbols := []string{"C", "N", "O"}
	coords := mat.NewDense(3, 3, []float64{
		0.125, -1.5, 2.25,
		3.375, 0, -0.625,
		-2.125, 1.75, 0.5,
	})
	if err := XyzFileWrite(name, symbols, coords); err != nil {
		Te.Fatal(err)
	}
	gotSym, gotCoord, err := XyzFileRead(name)
	if err != nil {
		Te.Fatal(err)
	}
	if len(gotSym) != 3 || gotSym[1] != "N" {
		Te.Fatalf("symbols = %v", gotSym)
	}
	//every value above is exact at 3 decimals, so the round trip is too.
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if gotCoord.At(i, j) != coords.At(i, j) {
				Te.Errorf("coord (%d,%d) = %f, want %f", i, j, gotCoord.At(i, j), coords.At(i, j))
			}
		}
	}
	text, err := os.ReadFile(name)
	if err != nil {
		Te.Fatal(err)
	}
	if !strings.HasPrefix(string(text), "3") {
		Te.Error("written XYZ should start with the atom count")
	}
}
