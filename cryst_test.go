/*
 * cryst_test.go, part of gocryst.
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
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestSetMolecule(Te *testing.T) {
	c := testCrystal()
	if c.HasMolecule() {
		Te.Error("fresh crystal should not have a molecule")
	}
	if c.NAtoms() != 0 {
		Te.Error("fresh crystal should have 0 atoms")
	}
	local := mat.NewDense(2, 3, []float64{0, 0, 0, 1.5, 0, 0})
	symbols := []string{"C", "O"}
	if err := c.SetMolecule(symbols, local); err != nil {
		Te.Fatal(err)
	}
	if c.NAtoms() != 2 {
		Te.Errorf("NAtoms = %d", c.NAtoms())
	}
	//the crystal must keep copies, not references.
	local.Set(0, 0, 99)
	symbols[0] = "N"
	gotSym, gotCoord := c.Molecule()
	if gotSym[0] != "C" || gotCoord.At(0, 0) != 0 {
		Te.Error("SetMolecule kept references to the caller's data")
	}
	//and hand out copies too.
	gotCoord.Set(1, 0, -1)
	_, again := c.Molecule()
	if again.At(1, 0) != 1.5 {
		Te.Error("Molecule handed out a reference to the internal data")
	}
	if err := c.SetMolecule([]string{"C"}, mat.NewDense(2, 3, nil)); err == nil {
		Te.Error("expected an error for mismatched symbol and row counts")
	}
	if err := c.SetMolecule([]string{"C", "O"}, mat.NewDense(2, 2, nil)); err == nil {
		Te.Error("expected an error for non-3-column coordinates")
	}
}

func TestProperties(Te *testing.T) {
	c := testCrystal()
	if _, ok := c.Property("LE"); ok {
		Te.Error("fresh crystal should have no properties")
	}
	c.SetProperty("LE", -1.5)
	c.SetProperty("LE", -2.5) //overwrite
	c.SetProperty("density", 1.32)
	if v, ok := c.Property("LE"); !ok || v != -2.5 {
		Te.Errorf("LE = %v (%v)", v, ok)
	}
	props := c.Properties()
	if len(props) != 2 {
		Te.Errorf("got %d properties", len(props))
	}
	props["LE"] = 0 //must not write through
	if v, _ := c.Property("LE"); v != -2.5 {
		Te.Error("Properties handed out the internal map")
	}
}

func TestCopy(Te *testing.T) {
	c := testCrystal()
	c.SetProperty("LE", -1.5)
	if err := c.SetMolecule([]string{"C"}, mat.NewDense(1, 3, []float64{1, 2, 3})); err != nil {
		Te.Fatal(err)
	}
	d := c.Copy()
	d.SetProperty("LE", 7)
	d.Cell.A = 99
	d.Identity[0] = "[N]"
	dsym, dcoord := d.Molecule()
	dcoord.Set(0, 0, -1)
	_ = dsym
	if v, _ := c.Property("LE"); v != -1.5 {
		Te.Error("copy shares properties with the original")
	}
	if c.Cell.A == 99 {
		Te.Error("copy shares the cell with the original")
	}
	if c.Identity[0] != "[C]" {
		Te.Error("copy shares the identity slice with the original")
	}
	_, ccoord := c.Molecule()
	if ccoord.At(0, 0) != 1 {
		Te.Error("copy shares coordinates with the original")
	}
}

func TestFormula(Te *testing.T) {
	c := testCrystal()
	if _, err := c.Formula(); err == nil {
		Te.Error("Formula without a molecule should fail")
	}
	if err := c.SetMolecule([]string{"C", "H", "H", "C", "H", "H"}, mat.NewDense(6, 3, nil)); err != nil {
		Te.Fatal(err)
	}
	f, err := c.Formula()
	if err != nil {
		Te.Fatal(err)
	}
	if f != "C2H4" {
		Te.Errorf("formula = %q, want C2H4", f)
	}
	if err := c.SetMolecule([]string{"O"}, mat.NewDense(1, 3, nil)); err != nil {
		Te.Fatal(err)
	}
	f, _ = c.Formula()
	if f != "O" {
		Te.Errorf("formula = %q, want O with the unit count omitted", f)
	}
}

func TestVolumeAndDensity(Te *testing.T) {
	cell := Cell{A: 10, B: 10, C: 10, Alpha: 90, Beta: 90, Gamma: 90}
	if v := cell.Volume(); math.Abs(v-1000) > 1e-9 {
		Te.Errorf("cubic 10 A cell volume = %f", v)
	}
	c := New([]string{"[C]"}, 14, cell, [3]float64{}, [3]float64{})
	if _, err := c.Density(); err == nil {
		Te.Error("Density without a molecule should fail")
	}
	//benzene, 78.114 amu, 4 copies in a P21/c cell of 1000 A3.
	symbols := []string{"C", "C", "C", "C", "C", "C", "H", "H", "H", "H", "H", "H"}
	if err := c.SetMolecule(symbols, mat.NewDense(12, 3, nil)); err != nil {
		Te.Fatal(err)
	}
	d, err := c.Density()
	if err != nil {
		Te.Fatal(err)
	}
	if math.Abs(d-0.518845) > 1e-4 {
		Te.Errorf("benzene density = %f g/cm3, want about 0.5188", d)
	}
	if err := c.SetMolecule([]string{"Xx"}, mat.NewDense(1, 3, nil)); err != nil {
		Te.Fatal(err)
	}
	if _, err := c.Density(); err == nil {
		Te.Error("expected an error for an element without a tabulated mass")
	}
	c.SpaceGroup = 3 //not tabulated
	if _, err := c.Density(); err == nil {
		Te.Error("expected an error for an untabulated space group")
	} else if _, ok := err.(*UnsupportedSpaceGroupError); !ok {
		Te.Errorf("wrong error type for an untabulated group: %v", err)
	}
	flat := New([]string{"[C]"}, 1, Cell{A: 10, B: 10, C: 0, Alpha: 90, Beta: 90, Gamma: 90}, [3]float64{}, [3]float64{})
	if err := flat.SetMolecule([]string{"C"}, mat.NewDense(1, 3, nil)); err != nil {
		Te.Fatal(err)
	}
	if _, err := flat.Density(); err == nil {
		Te.Error("expected an error for a zero-volume cell")
	} else if _, ok := err.(*DegenerateLatticeError); !ok {
		Te.Errorf("wrong error type for a zero-volume cell: %v", err)
	}
}
