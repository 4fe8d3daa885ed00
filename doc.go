/*
 * doc.go, part of gocryst.
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
 * goCryst is developed at the Universidad de Santiago de Chile
 * (USACH)
 *
 */
/***Dedicated to the long life of the Ven. Khenpo Phuntzok Tenzin Rinpoche***/

/*Package cryst is the main package of the goCryst library. It implements a
token codec for organic molecular crystals, the geometry to put the encoded
structures back together, and a CIF writer for the result.

A molecular crystal is represented here as a packing recipe: a molecular
identity (a sequence of alphabet tokens describing the molecule, never
interpreted by this library), a space group, the unit cell parameters, and
the placement of one molecule in the cell as a fractional center of mass
plus a Rodrigues rotation vector. Optional scalar properties, such as
lattice energies, can ride along.


	**goCryst Capabilities**


    Serializes a crystal packing recipe into a flat sequence of discrete
	tokens, with every number exploded into digit tokens at a fixed
	precision, and parses such sequences back. The round trip is exact at
	the declared precisions.

    Maps token sequences to and from dense integer ids through a fixed,
	shared vocabulary, the form sequence models actually consume. Custom
	vocabularies can be generated from a small YAML spec.

    Rebuilds the full crystal geometry from a recipe plus an externally
	supplied single-molecule geometry: lattice basis construction,
	Rodrigues rotations both ways, and fractional/Cartesian transforms,
	all in the row-vector convention.

    Writes minimal CIF files, with the symmetry operators for 26 common
	molecular-crystal space groups taken from a built-in table, single
	blocks or many concatenated into one optionally compressed bulk file,
	and splits such bulk files back into blocks.

    Reads and writes XYZ geometries, including the headerless coordinate
	tables some tools produce.

    Estimates crystal densities from the molecular mass and cell volume.


Everything in this package is a pure computation over its inputs. There is
no hidden state, so any number of goroutines can encode, decode and render
different structures at the same time. The built-in vocabulary and symmetry
table are read-only.

Coordinates are gonum Dense matrices with one atom per row, and operators
multiply from the right, as in the rest of the goChem family.*/
package cryst
