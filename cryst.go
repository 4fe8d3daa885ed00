/*
 * cryst.go, part of gocryst.
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
/***Dedicated to the long life of the Ven. Khenpo Phuntzok Tenzin Rinpoche***/

package cryst

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/mat"
)

//amu2gcm3 converts a density in atomic mass units per cubic Angstrom
//into g/cm3.
const amu2gcm3 = 1.66053906660

// Cell holds the unit cell parameters, lengths in A and angles in degrees.
type Cell struct {
	A     float64
	B     float64
	C     float64
	Alpha float64
	Beta  float64
	Gamma float64
}

// Basis returns the 3x3 row-vector lattice basis for the cell.
func (c Cell) Basis() *mat.Dense {
	return LatticeBasis(c.A, c.B, c.C, c.Alpha, c.Beta, c.Gamma)
}

// Volume returns the cell volume in cubic A.
func (c Cell) Volume() float64 {
	return math.Abs(mat.Det(c.Basis()))
}

// Crystal represents a molecular crystal as a packing recipe: the identity
// of the molecule, the space group, the unit cell, and the placement of one
// molecule in it (center of mass in fractional coordinates plus a Rodrigues
// rotation). The recipe alone round-trips through the token codec. Only
// after SetMolecule provides the actual atom positions can the Crystal be
// rendered to a CIF file.
type Crystal struct {
	Identity   []string   //molecular identity tokens, whatever alphabet the vocabulary speaks.
	SpaceGroup int        //space group number, 1 to 230.
	Cell       Cell       //unit cell parameters.
	Center     [3]float64 //center of mass, fractional coordinates.
	Rod        [3]float64 //Rodrigues rotation vector, norm tan(theta/2).

	symbols    []string
	local      *mat.Dense
	properties map[string]float64
}

// New builds a Crystal from a packing recipe. The identity slice is copied.
func New(identity []string, spaceGroup int, cell Cell, center, rod [3]float64) *Crystal {
	ident := make([]string, len(identity))
	copy(ident, identity)
	return &Crystal{
		Identity:   ident,
		SpaceGroup: spaceGroup,
		Cell:       cell,
		Center:     center,
		Rod:        rod,
	}
}

// SetMolecule attaches the single-molecule geometry to the Crystal: one
// chemical symbol and one row of local Cartesian coordinates (in A,
// centered at the origin) per atom. Both are copied. It fails if the
// number of symbols does not match the number of coordinate rows, or if
// the coordinates do not have 3 columns.
func (C *Crystal) SetMolecule(symbols []string, local *mat.Dense) error {
	r, c := local.Dims()
	if c != 3 {
		return fmt.Errorf("gocryst: SetMolecule: coordinates must have 3 columns, not %d", c)
	}
	if r != len(symbols) {
		return fmt.Errorf("gocryst: SetMolecule: %d atom symbols for %d coordinate rows", len(symbols), r)
	}
	C.symbols = make([]string, len(symbols))
	copy(C.symbols, symbols)
	C.local = mat.DenseCopyOf(local)
	return nil
}

// HasMolecule reports whether a molecule geometry has been set.
func (C *Crystal) HasMolecule() bool {
	return C.local != nil && C.symbols != nil
}

// Molecule returns the atom symbols and local coordinates set with
// SetMolecule, as copies, or nil and nil if no molecule has been set.
func (C *Crystal) Molecule() ([]string, *mat.Dense) {
	if !C.HasMolecule() {
		return nil, nil
	}
	symbols := make([]string, len(C.symbols))
	copy(symbols, C.symbols)
	return symbols, mat.DenseCopyOf(C.local)
}

// SetProperty records a named scalar property, such as a lattice energy,
// overwriting any previous value under the same name.
func (C *Crystal) SetProperty(name string, value float64) {
	if C.properties == nil {
		C.properties = make(map[string]float64, 2)
	}
	C.properties[name] = value
}

// Property returns a named scalar property. The second return value is
// false if the property has not been set.
func (C *Crystal) Property(name string) (float64, bool) {
	v, ok := C.properties[name]
	return v, ok
}

// Properties returns a copy of all the scalar properties set so far. It
// can be empty, properties are always optional.
func (C *Crystal) Properties() map[string]float64 {
	props := make(map[string]float64, len(C.properties))
	for k, v := range C.properties {
		props[k] = v
	}
	return props
}

// Copy returns a deep copy of the Crystal, molecule and properties
// included.
func (C *Crystal) Copy() *Crystal {
	ret := New(C.Identity, C.SpaceGroup, C.Cell, C.Center, C.Rod)
	if C.HasMolecule() {
		ret.symbols = make([]string, len(C.symbols))
		copy(ret.symbols, C.symbols)
		ret.local = mat.DenseCopyOf(C.local)
	}
	if C.properties != nil {
		ret.properties = make(map[string]float64, len(C.properties))
		for k, v := range C.properties {
			ret.properties[k] = v
		}
	}
	return ret
}

// NAtoms returns the number of atoms in the molecule, 0 if no molecule has
// been set.
func (C *Crystal) NAtoms() int {
	if C.local == nil {
		return 0
	}
	r, _ := C.local.Dims()
	return r
}

// Formula returns the chemical formula of the molecule, with elements in
// first-appearance order and unit counts omitted, e.g. "C6H6" or "CH4". It
// fails with a MissingGeometryError if no molecule has been set.
func (C *Crystal) Formula() (string, error) {
	if !C.HasMolecule() {
		return "", &MissingGeometryError{}
	}
	order := make([]string, 0, 4)
	counts := make(map[string]int, 4)
	for _, s := range C.symbols {
		if _, ok := counts[s]; !ok {
			order = append(order, s)
		}
		counts[s]++
	}
	var b strings.Builder
	for _, s := range order {
		b.WriteString(s)
		if counts[s] > 1 {
			fmt.Fprintf(&b, "%d", counts[s])
		}
	}
	return b.String(), nil
}

// Density estimates the crystal density in g/cm3 from the molecular mass,
// the space group multiplicity and the cell volume. The molecule sits in a
// general position, so the cell holds one copy per symmetry operator. It
// fails with a MissingGeometryError if no molecule has been set, with an
// UnsupportedSpaceGroupError if the space group is not tabulated, and with
// a plain error if an atom symbol has no tabulated mass.
func (C *Crystal) Density() (float64, error) {
	if !C.HasMolecule() {
		return 0, &MissingGeometryError{}
	}
	z, err := Multiplicity(C.SpaceGroup)
	if err != nil {
		return 0, errDecorate(err, "Density")
	}
	var mass float64
	for _, s := range C.symbols {
		m, ok := symbolMass[s]
		if !ok {
			return 0, fmt.Errorf("gocryst: Density: no tabulated mass for element %s", s)
		}
		mass += m
	}
	vol := C.Cell.Volume()
	if vol < appzero {
		return 0, &DegenerateLatticeError{}
	}
	return float64(z) * mass / vol * amu2gcm3, nil
}
