/*
 * geometric.go, part of gohinge.
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

package hinge

import (
	"fmt"
	"math"

	v3 "github.com/rmera/gohinge/v3"
	"gonum.org/v1/gonum/floats"
)

// Angle takes 2 vectors and calculate the angle in radians between them
// It does not check for correctness or return errors!
func Angle(v1, v2 *v3.Matrix) float64 {
	normproduct := v1.Norm(2) * v2.Norm(2)
	dotprod := v1.Dot(v2)
	argument := dotprod / normproduct
	//Take care of floating point math errors
	if math.Abs(argument-1) <= appzero {
		argument = 1
	} else if math.Abs(argument+1) <= appzero {
		argument = -1
	}
	return math.Acos(argument)
}

// RMSD returns the RSMD (root of the mean square deviation) for the sets of cartesian
// coordinates in test and template.
func RMSD(test, template *v3.Matrix) (float64, error) {
	tmr, tsr := template.NVecs(), test.NVecs()
	if tmr != tsr || tmr == 0 {
		return 0, CError{fmt.Sprintf("Ill formed matrices for RMSD calculation: %d and %d vectors", tsr, tmr), []string{"RMSD"}, true}
	}
	var sq float64
	for i := 0; i < tmr; i++ {
		d := template.Distance(i, test, i)
		sq += d * d
	}
	return math.Sqrt(sq / float64(tmr)), nil
}

// Centroid returns the mean of the vectors in coords.
func Centroid(coords *v3.Matrix) *v3.Matrix {
	n := coords.NVecs()
	ret := v3.Zeros(1)
	col := make([]float64, n)
	for j := 0; j < 3; j++ {
		for i := 0; i < n; i++ {
			col[i] = coords.At(i, j)
		}
		ret.Set(0, j, floats.Sum(col)/float64(n))
	}
	return ret
}

const appzero = 1e-12
