/*
 * dataset.go, part of gocryst.
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

// Package dataset manages collections of tokenized crystal structures on
// disk. A dataset couples one molecule, given as an XYZ geometry, with many
// candidate packings of it, given as a JSON object of named token
// sequences. Ingestion decodes every packing, extracts its cell, placement
// and properties into a manifest, and keeps the original files around, so a
// structure can be rebuilt, or rendered to CIF, at any later time.
package dataset

import (
	"encoding/json"
	"fmt"
	"time"

	"gonum.org/v1/gonum/mat"
)

//the fixed per-dataset file layout, under datasets/<dsid>/.
const (
	moleculeXYZFile = "molecule.xyz"
	structuresFile  = "structures.json"
	moleculeFile    = "molecule.json"
	manifestFile    = "manifest.json"
	metaFile        = "meta.json"
)

func dsKey(dsid, file string) string {
	return "datasets/" + dsid + "/" + file
}

// A Record is one named entry of a structures.json file: the token sequence
// of a crystal plus its scalar properties, such as a lattice energy. Fields
// other than "tokens" that are not numbers are dropped on parsing.
type Record struct {
	Tokens []string
	Props  map[string]float64
}

// UnmarshalJSON accepts the {"tokens": [...], "<property>": <number>, ...}
// shape of a structures.json entry.
func (r *Record) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	r.Tokens = nil
	r.Props = make(map[string]float64, len(raw))
	for k, v := range raw {
		if k == "tokens" {
			if err := json.Unmarshal(v, &r.Tokens); err != nil {
				return fmt.Errorf("gocryst: dataset: tokens field: %w", err)
			}
			continue
		}
		var f float64
		if err := json.Unmarshal(v, &f); err == nil {
			r.Props[k] = f
		}
	}
	return nil
}

// A Molecule is the stored form of the parsed molecule.xyz, the single
// molecular geometry shared by every structure of a dataset.
type Molecule struct {
	AtomTypes   []string    `json:"atom_types"`
	LocalCoords [][]float64 `json:"local_coords"`
}

// NewMolecule builds the stored form from atom symbols and Nx3 coordinates.
func NewMolecule(symbols []string, coords *mat.Dense) *Molecule {
	n, _ := coords.Dims()
	rows := make([][]float64, n)
	for i := 0; i < n; i++ {
		rows[i] = []float64{coords.At(i, 0), coords.At(i, 1), coords.At(i, 2)}
	}
	return &Molecule{AtomTypes: symbols, LocalCoords: rows}
}

// Geometry returns the molecule as atom symbols and an Nx3 matrix.
func (m *Molecule) Geometry() ([]string, *mat.Dense, error) {
	if len(m.LocalCoords) != len(m.AtomTypes) {
		return nil, nil, fmt.Errorf("gocryst: dataset: %d atom types for %d coordinate rows", len(m.AtomTypes), len(m.LocalCoords))
	}
	if len(m.AtomTypes) == 0 {
		return nil, nil, fmt.Errorf("gocryst: dataset: empty molecule")
	}
	data := make([]float64, 0, 3*len(m.LocalCoords))
	for i, row := range m.LocalCoords {
		if len(row) != 3 {
			return nil, nil, fmt.Errorf("gocryst: dataset: coordinate row %d has %d components", i, len(row))
		}
		data = append(data, row...)
	}
	return m.AtomTypes, mat.NewDense(len(m.AtomTypes), 3, data), nil
}

// An Entry is one row of a dataset manifest: the properties of one
// structure that the catalog views need, extracted at ingestion time so
// nothing has to be decoded to list or plot a dataset. Density is a
// pointer because it can be legitimately unknown, when the dataset carries
// no density field and the density engine fails on that structure.
type Entry struct {
	Name    string             `json:"name"`
	Energy  float64            `json:"energy"`
	Density *float64           `json:"density"`
	SG      int                `json:"sg"`
	A       float64            `json:"a"`
	B       float64            `json:"b"`
	C       float64            `json:"c"`
	Alpha   float64            `json:"alpha"`
	Beta    float64            `json:"beta"`
	Gamma   float64            `json:"gamma"`
	Com     [3]float64         `json:"com"`
	Rod     [3]float64         `json:"rod"`
	Formula string             `json:"formula"`
	Extra   map[string]float64 `json:"extra,omitempty"`
}

// Meta is the per-dataset summary stored next to the manifest.
type Meta struct {
	DSID       string    `json:"dsid"`
	Title      string    `json:"title"`
	Count      int       `json:"count"`
	CreatedAt  time.Time `json:"created_at"`
	EnergyKey  string    `json:"energy_key"`
	DensityKey string    `json:"density_key,omitempty"`
	Warnings   []string  `json:"warnings"`
}
