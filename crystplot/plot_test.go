/*
 * plot_test.go, part of gocryst.
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

package crystplot

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rmera/gocryst/dataset"
)

func TestLandscapePlot(Te *testing.T) {
	points := []dataset.Point{
		{ID: "a", Name: "a", X: 1.21, Y: -10.5, Label: "CO"},
		{ID: "b", Name: "b", X: 1.05, Y: -9.1, Label: "CO"},
		{ID: "c", Name: "c", X: 1.33, Y: -11.8, Label: "CO"},
		{ID: "d", Name: "d", X: 0.98, Y: -8.0, Label: "CO"},
	}
	plotname := filepath.Join(Te.TempDir(), "landscape")
	if err := LandscapePlot(points, "CO landscape", plotname); err != nil {
		Te.Fatal(err)
	}
	info, err := os.Stat(plotname + ".png")
	if err != nil {
		Te.Fatal(err)
	}
	if info.Size() == 0 {
		Te.Error("the landscape png came out empty")
	}
	if err := LandscapePlot(nil, "empty", plotname); err == nil {
		Te.Error("expected an error for an empty landscape")
	}
}

func TestColors(Te *testing.T) {
	r, g, b := colors(0, 5)
	if b != 255 || r != 0 {
		Te.Errorf("most stable rank should be blue, got %d %d %d", r, g, b)
	}
	r, g, b = colors(4, 5)
	if r != 255 || b != 0 {
		Te.Errorf("least stable rank should be red, got %d %d %d", r, g, b)
	}
	//a single point gets the stable end of the scale.
	r, g, b = colors(0, 1)
	if b != 255 {
		Te.Errorf("lone point should be blue, got %d %d %d", r, g, b)
	}
	ranks := energyRanks([]dataset.Point{{Y: 3}, {Y: 1}, {Y: 2}})
	if ranks[0] != 2 || ranks[1] != 0 || ranks[2] != 1 {
		Te.Errorf("ranks = %v", ranks)
	}
}
