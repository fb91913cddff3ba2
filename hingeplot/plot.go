/*
 * plot.go, part of gohinge.
 *
 * Copyright 2024 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
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
/***Dedicated to the long life of the Ven. Khenpo Phuntzok Tenzin Rinpoche***/

/*Package hingeplot draws PNG plots of per-residue profiles, such as displacement lengths
or fluctuations, and of normal-mode eigenvalue spectra.*/
package hingeplot

import (
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Size is the width and height of the plots.
var Size = 5 * vg.Inch

func basicPlot(title, xlabel, ylabel string) *plot.Plot {
	p := plot.New()
	p.Title.Padding = 3 * vg.Millimeter
	p.Title.Text = title
	p.X.Label.Text = xlabel
	p.Y.Label.Text = ylabel
	p.Add(plotter.NewGrid())
	return p
}

func save(p *plot.Plot, plotname string) error {
	filename := fmt.Sprintf("%s.png", plotname)
	if err := p.Save(Size, Size, filename); err != nil {
		return Error{err.Error(), []string{"save"}, true}
	}
	return nil
}

// Profile plots values against the residue index, as a line. If blocks is not nil, it must contain
// one group id per value, and the points of each non-zero group are drawn on top of the line,
// with one color per group. The plot is saved to plotname.png
func Profile(values []float64, blocks []int, title, ylabel, plotname string) error {
	if len(values) == 0 {
		return Error{"No values to plot", []string{"Profile"}, true}
	}
	if blocks != nil && len(blocks) != len(values) {
		return Error{fmt.Sprintf("%d group ids for %d values", len(blocks), len(values)), []string{"Profile"}, true}
	}
	p := basicPlot(title, "Residue", ylabel)
	pts := make(plotter.XYs, len(values))
	for i, v := range values {
		pts[i].X = float64(i + 1)
		pts[i].Y = v
	}
	l, err := plotter.NewLine(pts)
	if err != nil {
		return Error{err.Error(), []string{"plotter.NewLine", "Profile"}, true}
	}
	l.LineStyle.Width = vg.Points(1)
	p.Add(l)
	if blocks == nil {
		return save(p, plotname)
	}
	maxid := 0
	for _, b := range blocks {
		if b > maxid {
			maxid = b
		}
	}
	for id := 1; id <= maxid; id++ {
		group := make(plotter.XYs, 0)
		for i, b := range blocks {
			if b == id {
				group = append(group, pts[i])
			}
		}
		if len(group) == 0 {
			continue
		}
		s, err := plotter.NewScatter(group)
		if err != nil {
			return Error{err.Error(), []string{"plotter.NewScatter", "Profile"}, true}
		}
		r, g, b := colors(id-1, maxid)
		s.GlyphStyle.Color = color.RGBA{R: r, G: g, B: b, A: 255}
		s.GlyphStyle.Shape = shape(id - 1)
		p.Add(s)
		p.Legend.Add(fmt.Sprintf("Block %d", id), s)
	}
	return save(p, plotname)
}

// Spectrum plots the eigenvalues in values against the mode number. Eigenvalues smaller
// in absolute value than the threshold zero (the rigid-body modes) are left out.
// The plot is saved to plotname.png
func Spectrum(values []float64, zero float64, title, plotname string) error {
	pts := make(plotter.XYs, 0, len(values))
	for i, v := range values {
		if math.Abs(v) < zero {
			continue
		}
		pts = append(pts, plotter.XY{X: float64(i + 1), Y: v})
	}
	if len(pts) == 0 {
		return Error{"No non-zero eigenvalues to plot", []string{"Spectrum"}, true}
	}
	p := basicPlot(title, "Mode", "Eigenvalue")
	s, err := plotter.NewScatter(pts)
	if err != nil {
		return Error{err.Error(), []string{"plotter.NewScatter", "Spectrum"}, true}
	}
	s.GlyphStyle.Shape = draw.CircleGlyph{}
	r, g, b := colors(0, 1)
	s.GlyphStyle.Color = color.RGBA{R: r, G: g, B: b, A: 255}
	p.Add(s)
	return save(p, plotname)
}

// takes hue (0-360), v and s (0-1), returns r,g,b (0-255)
func iHVS2RGB(h, v, s float64) (uint8, uint8, uint8) {
	var r, g, b float64
	conversion := 255.0 * v
	if s == 0.0 {
		return uint8(conversion), uint8(conversion), uint8(conversion)
	}
	h = h / 60
	i := math.Floor(h)
	f := h - i
	p := v * (1 - s)
	q := v * (1 - s*f)
	t := v * (1 - s*(1-f))
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

// colors spreads steps colors over the hue circle, skipping the yellows,
// which are hard to see on white.
func colors(key, steps int) (r, g, b uint8) {
	norm := 260.0 / float64(steps)
	hp := float64(key)*norm + 20.0
	h := hp + 20.0
	if hp < 55 {
		h = hp - 20.0
	}
	return iHVS2RGB(h, 1.0, 1.0)
}

func shape(key int) draw.GlyphDrawer {
	switch key % 5 {
	case 0:
		return draw.CircleGlyph{}
	case 1:
		return draw.SquareGlyph{}
	case 2:
		return draw.PyramidGlyph{}
	case 3:
		return draw.CrossGlyph{}
	default:
		return draw.RingGlyph{}
	}
}

//Errors

// Error is the error type for the hingeplot package.
type Error struct {
	message  string
	deco     []string
	critical bool
}

func (err Error) Error() string { return err.message }

// Decorate will add the dec string to the decoration slice of strings of the error,
// and return the resulting slice.
func (err Error) Decorate(dec string) []string {
	if dec == "" {
		return err.deco
	}
	err.deco = append(err.deco, dec)
	return err.deco
}

// Critical returns whether the error is critical or it can be ignored
func (err Error) Critical() bool { return err.critical }
