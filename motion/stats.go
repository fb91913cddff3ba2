/*
 * stats.go, part of gohinge.
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

package motion

import (
	"fmt"

	v3 "github.com/rmera/gohinge/v3"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Stats summarizes the lengths of the displacements of the residues in a block.
type Stats struct {
	Block  int //0 for the residues in no block.
	N      int
	Mean   float64
	StdDev float64
	Max    float64
}

func (S Stats) String() string {
	return fmt.Sprintf("%3d %5d %8.4f %8.4f %8.4f", S.Block, S.N, S.Mean, S.StdDev, S.Max)
}

// Lengths returns the length of each displacement vector in D.
func Lengths(D *v3.Matrix) []float64 {
	ret := make([]float64, D.NVecs())
	row := make([]float64, 3)
	for i := range ret {
		for j := 0; j < 3; j++ {
			row[j] = D.At(i, j)
		}
		ret[i] = floats.Norm(row, 2)
	}
	return ret
}

// BlockStats returns the statistics of the lengths of the displacements in D, which must have one
// row per residue, as the matrices returned by Displacement. The element r of the returned slice
// corresponds to block r. Blocks without residues have N=0 and zero statistics.
func (A *Analyzer) BlockStats(D *v3.Matrix) []Stats {
	lengths := Lengths(D)
	groups := make([][]float64, A.NBlocks()+1)
	for i, l := range lengths {
		r := A.Block(i)
		if r < 0 || r >= len(groups) {
			r = 0
		}
		groups[r] = append(groups[r], l)
	}
	ret := make([]Stats, len(groups))
	for r, g := range groups {
		ret[r].Block = r
		ret[r].N = len(g)
		if len(g) == 0 {
			continue
		}
		ret[r].Max = floats.Max(g)
		if len(g) == 1 {
			ret[r].Mean = g[0]
			continue
		}
		ret[r].Mean, ret[r].StdDev = stat.MeanStdDev(g, nil)
	}
	return ret
}
