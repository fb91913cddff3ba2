/*
 * handy.go, part of gohinge.
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

	"github.com/rmera/gohinge/kabsch"
	v3 "github.com/rmera/gohinge/v3"
)

// Deg2Rad converts f from degrees to radians.
func Deg2Rad(f float64) float64 {
	return f * math.Pi / 180
}

// Rad2Deg converts f from radians to degrees.
func Rad2Deg(f float64) float64 {
	return f * 180 / math.Pi
}

// Super determines the best rotation and translation to superimpose the coords in test
// listed in testlst on the coords of templa listed in templalst.
// It applies that transformation to the whole of test, in place, and returns it.
// testlst and templalst must have the same number of elements. nil lists mean all the vectors.
func Super(test, templa *v3.Matrix, testlst, templalst []int) (*kabsch.Transform, error) {
	nt, nm := len(testlst), len(templalst)
	if testlst == nil {
		nt = test.NVecs()
	}
	if templalst == nil {
		nm = templa.NVecs()
	}
	if nt != nm {
		return nil, CError{fmt.Sprintf("Mismatched template and test atom numbers: %d, %d", nm, nt), []string{"Super"}, true}
	}
	T := kabsch.FitIndexes(templa, test, templalst, testlst, nil)
	if !T.Valid() {
		return nil, CError{fmt.Sprintf("Can't superimpose %d points", nt), []string{"Super"}, true}
	}
	T.ApplyTo(test)
	return T, nil
}

// Fit returns the transformation that superimposes the second-conformation residues
// of the pairs with the given handles onto the first-conformation ones. Pairs with
// a missing representative atom are skipped. If center is not nil, the fit is done in
// coordinates referred to it. The returned transformation has an RMSD of -1 if fewer than
// 3 pairs could be used.
func (C *Correspondence) Fit(handles []int, center *v3.Matrix) *kabsch.Transform {
	c1, c2, used := C.Coords(handles)
	if len(used) < kabsch.MinPoints {
		T := kabsch.Identity()
		T.N = len(used)
		if center != nil {
			T.Center.Copy(center)
		}
		return T
	}
	return kabsch.Fit(c1, c2, center)
}

// FitAll fits over all the pairs of interest.
func (C *Correspondence) FitAll(center *v3.Matrix) *kabsch.Transform {
	return C.Fit(C.Interesting(C.First), center)
}

// Centroid returns the centroid of the first-conformation representative atoms of the
// pairs of interest, or nil if there are none.
func (C *Correspondence) Centroid() *v3.Matrix {
	c1, _, used := C.Coords(C.Interesting(C.First))
	if len(used) == 0 {
		return nil
	}
	return Centroid(c1)
}

// Move applies T, in place, to the representative atoms of all the residues in chains.
// The residues' Coords method must return the stored coordinates, not a copy, for this
// to have any effect.
func Move(T *kabsch.Transform, chains ...Chain) {
	for _, c := range chains {
		for i := 0; i < c.Len(); i++ {
			if pos := c.Residue(i).Coords(); pos != nil {
				T.ApplyTo(pos)
			}
		}
	}
}
