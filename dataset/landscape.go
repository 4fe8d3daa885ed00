/*
 * landscape.go, part of gocryst.
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

package dataset

// A Point is one structure on the energy landscape of a dataset: density
// on the X axis, energy on the Y axis.
type Point struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Label string  `json:"label"`
}

// Landscape returns the energy-vs-density points of a dataset. Structures
// with no density in the manifest get one last chance through the
// Ingester's DensityFunc, and a successful estimate is cached back into
// the manifest; structures still without a density are left out.
func (in *Ingester) Landscape(dsid string) ([]Point, error) {
	manifest, err := in.Manifest(dsid)
	if err != nil {
		return nil, err
	}
	var records map[string]Record
	var mol Molecule
	loaded := false
	dirty := false
	pts := make([]Point, 0, len(manifest))
	for i := range manifest {
		m := &manifest[i]
		if m.Density == nil {
			if in.density == nil {
				continue
			}
			if !loaded {
				if err := in.store.LoadJSON(dsKey(dsid, structuresFile), &records); err != nil {
					return nil, err
				}
				if err := in.store.LoadJSON(dsKey(dsid, moleculeFile), &mol); err != nil {
					return nil, err
				}
				loaded = true
			}
			rec, ok := records[m.Name]
			if !ok {
				continue
			}
			symbols, coords, err := mol.Geometry()
			if err != nil {
				return nil, err
			}
			c, err := buildCrystal(rec, symbols, coords)
			if err != nil {
				in.log.Debug("structure skipped on the landscape", "name", m.Name, "error", err)
				continue
			}
			d, err := in.density(c)
			if err != nil {
				in.log.Debug("density estimate failed", "name", m.Name, "error", err)
				continue
			}
			m.Density = &d
			dirty = true
		}
		label := m.Formula
		if label == "" {
			label = m.Name
		}
		pts = append(pts, Point{ID: m.Name, Name: m.Name, X: *m.Density, Y: m.Energy, Label: label})
	}
	if dirty {
		//cache the estimates so the next call skips them. The points are
		//good even if the write fails.
		if err := in.store.SaveJSON(dsKey(dsid, manifestFile), manifest); err != nil {
			in.log.Warn("could not cache densities back into the manifest", "dsid", dsid, "error", err)
		}
	}
	return pts, nil
}
