/*
 * crystal_json.go, part of gocryst.
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
	cryst "github.com/rmera/gocryst"
)

//crystalJSON is the packing recipe as the encode and decode commands
//exchange it: everything the token codec carries, nothing else.
type crystalJSON struct {
	Identity   []string           `json:"identity"`
	SpaceGroup int                `json:"sg"`
	Cell       cellJSON           `json:"cell"`
	Com        [3]float64         `json:"com"`
	Rod        [3]float64         `json:"rod"`
	Properties map[string]float64 `json:"properties,omitempty"`
}

type cellJSON struct {
	A     float64 `json:"a"`
	B     float64 `json:"b"`
	C     float64 `json:"c"`
	Alpha float64 `json:"alpha"`
	Beta  float64 `json:"beta"`
	Gamma float64 `json:"gamma"`
}

func crystalToJSON(c *cryst.Crystal) crystalJSON {
	cj := crystalJSON{
		Identity:   c.Identity,
		SpaceGroup: c.SpaceGroup,
		Cell: cellJSON{
			A: c.Cell.A, B: c.Cell.B, C: c.Cell.C,
			Alpha: c.Cell.Alpha, Beta: c.Cell.Beta, Gamma: c.Cell.Gamma,
		},
		Com: c.Center,
		Rod: c.Rod,
	}
	if props := c.Properties(); len(props) > 0 {
		cj.Properties = props
	}
	return cj
}

func crystalFromJSON(cj crystalJSON) *cryst.Crystal {
	cell := cryst.Cell{
		A: cj.Cell.A, B: cj.Cell.B, C: cj.Cell.C,
		Alpha: cj.Cell.Alpha, Beta: cj.Cell.Beta, Gamma: cj.Cell.Gamma,
	}
	c := cryst.New(cj.Identity, cj.SpaceGroup, cell, cj.Com, cj.Rod)
	for k, v := range cj.Properties {
		c.SetProperty(k, v)
	}
	return c
}
