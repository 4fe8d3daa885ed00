/*
 * landscape.go, part of gocryst.
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

// Package crystplot draws crystal structure prediction landscapes, in png
// format, from the points extracted out of a dataset.
package crystplot

import (
	"fmt"
	"image/color"
	"math"
	"sort"

	"github.com/rmera/gocryst/dataset"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

func basicLandscapePlot(title string) *plot.Plot {
	p := plot.New()
	p.Title.Padding = 3 * vg.Millimeter
	p.Title.Text = title
	p.X.Label.Text = "Density (g/cm3)"
	p.Y.Label.Text = "Energy"
	p.Add(plotter.NewGrid())
	return p
}

/*LandscapePlot produces a plot, in png format, of the energy landscape in
  points: every structure is a dot at its density (X) and energy (Y),
  colored from blue, for the most stable, to red, for the least stable.
  The lowest-energy structure, the putative crystal, is drawn as a larger
  pyramid. The .png extension is appended to plotname.*/
func LandscapePlot(points []dataset.Point, title, plotname string) error {
	if len(points) == 0 {
		return fmt.Errorf("gocryst: crystplot: no points to plot")
	}
	p := basicLandscapePlot(title)
	ranks := energyRanks(points)
	best := 0
	for i, pt := range points {
		if pt.Y < points[best].Y {
			best = i
		}
	}
	for i, pt := range points {
		xy := make(plotter.XYs, 1)
		xy[0].X = pt.X
		xy[0].Y = pt.Y
		s, err := plotter.NewScatter(xy)
		if err != nil {
			return err
		}
		r, g, b := colors(ranks[i], len(points))
		s.GlyphStyle.Color = color.RGBA{R: r, G: g, B: b, A: 255}
		if i == best {
			s.GlyphStyle.Shape = draw.PyramidGlyph{}
			s.GlyphStyle.Radius = s.GlyphStyle.Radius * 3 / 2
		}
		p.Add(s)
	}
	filename := fmt.Sprintf("%s.png", plotname)
	return p.Save(5*vg.Inch, 5*vg.Inch, filename)
}

//energyRanks returns, for each point, its 0-based rank by increasing
//energy, so colors can follow stability rather than slice order.
func energyRanks(points []dataset.Point) []int {
	order := make([]int, len(points))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(i, j int) bool { return points[order[i]].Y < points[order[j]].Y })
	ranks := make([]int, len(points))
	for rank, idx := range order {
		ranks[idx] = rank
	}
	return ranks
}

//colors maps a stability rank to an RGB color, running the hue from blue
//(rank 0) down to red (the last rank).
func colors(rank, steps int) (r, g, b uint8) {
	h := 240.0
	if steps > 1 {
		h = 240.0 * (1.0 - float64(rank)/float64(steps-1))
	}
	return hsv2rgb(h, 1.0, 1.0)
}

//takes hue (0-360), v and s (0-1), returns r,g,b (0-255).
func hsv2rgb(h, v, s float64) (uint8, uint8, uint8) {
	maxcolor := 255.0
	conversion := maxcolor * v
	if s == 0.0 {
		return uint8(conversion), uint8(conversion), uint8(conversion)
	}
	h = h / 60
	i := math.Floor(h)
	f := h - i
	p := v * (1 - s)
	q := v * (1 - s*f)
	t := v * (1 - s*(1-f))
	var r, g, b float64
	switch int(i) {
	case 0:
		r, g, b = v, t, p
	case 1:
		r, g, b = q, v, p
	case 2:
		r, g, b = p, v, t
	case 3:
		r, g, b = p, q, v
	case 4:
		r, g, b = t, p, v
	default: //case 5
		r, g, b = v, p, q
	}
	return uint8(r * conversion), uint8(g * conversion), uint8(b * conversion)
}
