/*
 * kabsch.go, part of gohinge.
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

/*Package kabsch obtains the least-squares rigid-body superposition of two sets of points
with Kabsch's closed-form method. The eigenproblem of the (symmetric, 3x3) product of the
covariance matrix by its transpose is solved analytically, from the roots of its characteristic
cubic, so no general SVD is needed. The RMSD is obtained from the residual energy, not by
moving the points.

References:
Kabsch W. A solution for the best rotation to relate two sets of vectors. Acta Cryst. 1976 A32:922.
Kabsch W. A discussion of the solution for the best rotation to relate two sets of vectors. Acta Cryst. 1978 A34:827.
*/
package kabsch

import (
	"log"
	"math"

	v3 "github.com/rmera/gohinge/v3"
)

// MinPoints is the smallest number of point pairs for which a fit is attempted.
const MinPoints = 3

// Fit returns the transformation that superimposes mov onto ref, in the least-squares sense.
// ref and mov must have the same number of vectors (otherwise, Fit panics).
// If center is not nil, the coordinates are referred to it, and the resulting
// transformation is expressed in that frame (see Transform).
// If fewer than MinPoints pairs are given, the returned Transform is the identity and
// has an RMSD of -1. If the rotation basis is degenerate, the identity rotation and a zero translation
// are returned, with a warning, but the RMSD is still the one from the residual energy.
func Fit(ref, mov, center *v3.Matrix) *Transform {
	n := ref.NVecs()
	if mov.NVecs() != n {
		panic(v3.ErrShape)
	}
	var c [3]float64
	if center != nil {
		c = [3]float64{center.At(0, 0), center.At(0, 1), center.At(0, 2)}
	}
	ret := Identity()
	ret.Center.Set(0, 0, c[0])
	ret.Center.Set(0, 1, c[1])
	ret.Center.Set(0, 2, c[2])
	ret.N = n
	if n < MinPoints {
		log.Printf("kabsch.Fit: Only %d points given, at least %d are needed", n, MinPoints)
		return ret
	}
	//x are the points to be moved, y the reference ones.
	var sx, sy [3]float64
	var sx2, sy2 float64
	var sxy [3][3]float64
	for k := 0; k < n; k++ {
		var x, y [3]float64
		for i := 0; i < 3; i++ {
			x[i] = mov.At(k, i) - c[i]
			y[i] = ref.At(k, i) - c[i]
		}
		for i := 0; i < 3; i++ {
			sx[i] += x[i]
			sy[i] += y[i]
			sx2 += x[i] * x[i]
			sy2 += y[i] * y[i]
			for j := 0; j < 3; j++ {
				sxy[i][j] += x[i] * y[j]
			}
		}
	}
	inpts := 1.0 / float64(n)
	e0 := (sx2 - dot(sx, sx)*inpts + sy2 - dot(sy, sy)*inpts) * inpts

	var r [3][3]float64
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r[i][j] = (sxy[i][j] - sx[i]*sy[j]*inpts) * inpts
		}
	}
	//rr is r*rT, packed as an upper triangle, column by column.
	var rr [6]float64
	m := 0
	for j := 0; j < 3; j++ {
		for i := 0; i <= j; i++ {
			rr[m] = r[i][0]*r[j][0] + r[i][1]*r[j][1] + r[i][2]*r[j][2]
			m++
		}
	}
	det := r[0][0]*(r[1][1]*r[2][2]-r[2][1]*r[1][2]) -
		r[1][0]*(r[0][1]*r[2][2]-r[2][1]*r[0][2]) +
		r[2][0]*(r[0][1]*r[1][2]-r[1][1]*r[0][2])
	spur := (rr[0] + rr[2] + rr[5]) / 3.0
	cof := (rr[2]*rr[5] - rr[4]*rr[4] + rr[0]*rr[5] - rr[3]*rr[3] + rr[0]*rr[2] - rr[1]*rr[1]) / 3.0

	var e [3]float64
	sw := solve(&e, det, spur, cof)
	rot, trans, ok := matrix(sw, e, rr, r, sx, sy, n)
	if !ok {
		log.Printf("kabsch.Fit: Degenerate rotation matrix, using the identity")
		ret.Degenerate = true
	} else {
		for i := 0; i < 3; i++ {
			ret.Trans.Set(0, i, trans[i])
			for j := 0; j < 3; j++ {
				ret.Rot.Set(i, j, rot[i][j])
			}
		}
	}
	d := sqrtabs(e[2])
	if det < 0 {
		d = -d
	}
	d += sqrtabs(e[1]) + sqrtabs(e[0])
	ret.RMSD = sqrtabs(e0 - 2*d)
	ret.Axis, ret.Angle = AxisAngle(ret.Rot)
	return ret
}

// FitIndexes superimposes the vectors of mov with indexes movlst onto those of ref with indexes reflst.
// nil index slices mean "all vectors".
func FitIndexes(ref, mov *v3.Matrix, reflst, movlst []int, center *v3.Matrix) *Transform {
	r := ref
	if reflst != nil {
		r = v3.Zeros(len(reflst))
		r.SomeVecs(ref, reflst)
	}
	m := mov
	if movlst != nil {
		m = v3.Zeros(len(movlst))
		m.SomeVecs(mov, movlst)
	}
	return Fit(r, m, center)
}

// Returns the roots of the characteristic cubic of rr in e, in descending order,
// and an integer telling how many roots are equal: 1 for three distinct roots,
// 2 or 3 for two equal ones (the largest, or the smallest root is the different
// one, respectively), 4 for three equal roots.
func solve(e *[3]float64, det, spur, cof float64) int {
	const epsilon = 1e-20
	const sqrt3 = 1.7320508075688772
	det *= det
	d := spur * spur
	h := d - cof
	g := spur*(cof*1.5-d) - det*0.5
	if h <= d*epsilon {
		e[0], e[1], e[2] = spur, spur, spur
		return 4
	}
	sqrth := sqrtabs(h)
	d = -g / (h * sqrth)
	switch {
	case d > 1-epsilon:
		e[0] = spur + 2*sqrth
		e[1] = spur - sqrth
		e[2] = e[1]
		return 2
	case d < -1+epsilon:
		e[0] = spur + sqrth
		e[1] = e[0]
		e[2] = math.Max(spur-2*sqrth, 0)
		return 3
	default:
		d = math.Acos(d) / 3.0
		cth := sqrth * math.Cos(d)
		sth := sqrth * sqrt3 * math.Sin(d)
		e[0] = spur + 2*cth
		e[1] = spur - cth + sth
		e[2] = math.Max(spur-cth-sth, 0)
		return 1
	}
}

// Builds the rotation matrix and translation vector from the eigen basis of rr (a)
// and its image under r (b). Returns false if the basis is degenerate.
func matrix(sw int, e [3]float64, rr [6]float64, r [3][3]float64, sx, sy [3]float64, npts int) ([3][3]float64, [3]float64, bool) {
	var a, b, rot [3][3]float64
	var trans [3]float64
	if sw == 4 {
		a = [3][3]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
	} else {
		var m, m1, m2, m3 int
		if sw == 1 {
			for l := 0; l < 2; l++ {
				d := e[l]
				var ss [6]float64
				ss[0] = (d-rr[2])*(d-rr[5]) - rr[4]*rr[4]
				ss[1] = (d-rr[5])*rr[1] + rr[3]*rr[4]
				ss[2] = (d-rr[0])*(d-rr[5]) - rr[3]*rr[3]
				ss[3] = (d-rr[2])*rr[3] + rr[1]*rr[4]
				ss[4] = (d-rr[0])*rr[4] + rr[1]*rr[3]
				ss[5] = (d-rr[0])*(d-rr[2]) - rr[1]*rr[1]
				switch {
				case math.Abs(ss[0]) >= math.Abs(ss[2]) && math.Abs(ss[0]) >= math.Abs(ss[5]):
					a[0][l], a[1][l], a[2][l] = ss[0], ss[1], ss[3]
				case math.Abs(ss[0]) >= math.Abs(ss[2]):
					a[0][l], a[1][l], a[2][l] = ss[3], ss[4], ss[5]
				case math.Abs(ss[2]) >= math.Abs(ss[5]):
					a[0][l], a[1][l], a[2][l] = ss[1], ss[2], ss[4]
				default:
					a[0][l], a[1][l], a[2][l] = ss[3], ss[4], ss[5]
				}
				d = math.Sqrt(a[0][l]*a[0][l] + a[1][l]*a[1][l] + a[2][l]*a[2][l])
				a[0][l] /= d
				a[1][l] /= d
				a[2][l] /= d
			}
			m1, m2, m3 = 2, 0, 1
		} else {
			if sw == 2 {
				m, m1, m2, m3 = 0, 2, 0, 1
			} else {
				m, m1, m2, m3 = 2, 0, 1, 2
			}
			h := e[2]
			a[0][1], a[1][1], a[2][1] = 1, 1, 1
			if math.Abs(rr[0]-h) > math.Abs(rr[2]-h) && math.Abs(rr[0]-h) > math.Abs(rr[5]-h) {
				a[0][m], a[1][m], a[2][m] = rr[0]-h, rr[1], rr[3]
				p := -(rr[0] + rr[1] + rr[3] - h)
				a[0][1] = p / a[0][m]
			} else if math.Abs(rr[0]-h) <= math.Abs(rr[2]-h) && math.Abs(rr[2]-h) > math.Abs(rr[5]-h) {
				a[0][m], a[1][m], a[2][m] = rr[1], rr[2]-h, rr[4]
				p := -(rr[1] + rr[2] + rr[4] - h)
				a[1][1] = p / a[1][m]
			} else {
				a[0][m], a[1][m], a[2][m] = rr[3], rr[4], rr[5]-h
				p := -(rr[3] + rr[4] + rr[5] - h)
				a[2][1] = p / a[2][m]
			}
			d := math.Sqrt(a[0][m]*a[0][m] + a[1][m]*a[1][m] + a[2][m]*a[2][m])
			p := math.Sqrt(a[0][1]*a[0][1] + a[1][1]*a[1][1] + a[2][1]*a[2][1])
			for i := 0; i < 3; i++ {
				a[i][1] /= p
				a[i][m] /= d
			}
		}
		a[0][m1] = a[1][m2]*a[2][m3] - a[1][m3]*a[2][m2]
		a[1][m1] = a[2][m2]*a[0][m3] - a[2][m3]*a[0][m2]
		a[2][m1] = a[0][m2]*a[1][m3] - a[0][m3]*a[1][m2]
	}
	for l := 0; l < 2; l++ {
		d := 0.0
		for i := 0; i < 3; i++ {
			b[i][l] = r[0][i]*a[0][l] + r[1][i]*a[1][l] + r[2][i]*a[2][l]
			d += b[i][l] * b[i][l]
		}
		d = math.Sqrt(d)
		if d == 0 || math.IsNaN(d) {
			return rot, trans, false
		}
		for i := 0; i < 3; i++ {
			b[i][l] /= d
		}
	}
	b[0][2] = b[1][0]*b[2][1] - b[1][1]*b[2][0]
	b[1][2] = b[2][0]*b[0][1] - b[2][1]*b[0][0]
	b[2][2] = b[0][0]*b[1][1] - b[0][1]*b[1][0]
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			rot[i][j] = b[i][0]*a[j][0] + b[i][1]*a[j][1] + b[i][2]*a[j][2]
		}
	}
	for i := 0; i < 3; i++ {
		trans[i] = (sy[i] - rot[i][0]*sx[0] - rot[i][1]*sx[1] - rot[i][2]*sx[2]) / float64(npts)
	}
	return rot, trans, true
}

func sqrtabs(v float64) float64 {
	return math.Sqrt(math.Abs(v))
}

func dot(a, b [3]float64) float64 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}
