/*
 * transform.go, part of gohinge.
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

package kabsch

import (
	"fmt"
	"math"

	v3 "github.com/rmera/gohinge/v3"
)

// Transform is a rigid-body transformation. A point x is taken to
// Rot*(x-Center)+Trans+Center. Axis and Angle (in radians, in [0,Pi]) describe Rot.
type Transform struct {
	Rot        *v3.Matrix //3x3
	Trans      *v3.Matrix //1x3
	Center     *v3.Matrix //1x3
	Axis       *v3.Matrix //1x3, unit vector, or zero if Angle is 0.
	Angle      float64
	RMSD       float64 //-1 if no fit was performed.
	N          int     //number of point pairs used in the fit.
	Degenerate bool
}

// Identity returns the identity transformation, with an RMSD of -1.
func Identity() *Transform {
	return &Transform{
		Rot:    v3.Eye(),
		Trans:  v3.Zeros(1),
		Center: v3.Zeros(1),
		Axis:   v3.Zeros(1),
		RMSD:   -1,
	}
}

// Valid returns true if the transformation comes from an actual fit.
func (T *Transform) Valid() bool {
	return T != nil && T.RMSD >= 0
}

// Copy returns a deep copy of T.
func (T *Transform) Copy() *Transform {
	ret := &Transform{Rot: v3.Zeros(3), Trans: v3.Zeros(1), Center: v3.Zeros(1), Axis: v3.Zeros(1),
		Angle: T.Angle, RMSD: T.RMSD, N: T.N, Degenerate: T.Degenerate}
	ret.Rot.Copy(T.Rot)
	ret.Trans.Copy(T.Trans)
	ret.Center.Copy(T.Center)
	ret.Axis.Copy(T.Axis)
	return ret
}

// Apply returns a new matrix with the vectors of coords transformed by T.
func (T *Transform) Apply(coords *v3.Matrix) *v3.Matrix {
	ret := v3.Zeros(coords.NVecs())
	ret.Copy(coords)
	T.ApplyTo(ret)
	return ret
}

// ApplyTo transforms the vectors of coords in place.
func (T *Transform) ApplyTo(coords *v3.Matrix) {
	coords.SubVec(coords, T.Center)
	coords.Mul(coords, T.Rot.T())
	off := v3.Zeros(1)
	off.Add(T.Trans, T.Center)
	coords.AddVec(coords, off)
}

// Absolute returns a transformation equivalent to T, but with a zero center.
func (T *Transform) Absolute() *Transform {
	ret := T.Copy()
	rc := v3.Zeros(1)
	rc.Mul(T.Center, T.Rot.T())
	ret.Trans.Add(T.Trans, T.Center)
	ret.Trans.Sub(ret.Trans, rc)
	ret.Center = v3.Zeros(1)
	return ret
}

// Inverse returns the transformation that undoes T. The center is kept.
func (T *Transform) Inverse() *Transform {
	ret := T.Copy()
	ret.Rot.Copy(T.Rot.T())
	ret.Trans.Mul(T.Trans, T.Rot) //row vector times Rot is RotT times column vector.
	ret.Trans.Scale(-1, ret.Trans)
	ret.Axis, ret.Angle = AxisAngle(ret.Rot)
	return ret
}

// Compose returns the transformation that first applies O and then T.
// If both have the same center, so does the result, otherwise the result
// has a zero center. The RMSD of the result is -1.
func (T *Transform) Compose(O *Transform) *Transform {
	t, o := T, O
	if !mat3Equal(T.Center, O.Center) {
		t, o = T.Absolute(), O.Absolute()
	}
	ret := Identity()
	ret.Center.Copy(t.Center)
	ret.Rot.Mul(t.Rot, o.Rot)
	ret.Trans.Mul(o.Trans, t.Rot.T())
	ret.Trans.Add(ret.Trans, t.Trans)
	ret.Axis, ret.Angle = AxisAngle(ret.Rot)
	return ret
}

// Fraction returns a transformation that rotates by f times the angle of T,
// about the same axis, and translates by f times the translation of T. The
// center is kept.
func (T *Transform) Fraction(f float64) *Transform {
	ret := Identity()
	ret.Center.Copy(T.Center)
	ret.Rot = RotationFraction(T.Rot, f)
	ret.Trans.Scale(f, T.Trans)
	ret.Axis, ret.Angle = AxisAngle(ret.Rot)
	return ret
}

func (T *Transform) String() string {
	return fmt.Sprintf("rot:\n%v\ntrans: %v\ncenter: %v\naxis: %v angle: %6.2f deg\nrmsd: %6.3f (%d points)",
		T.Rot, T.Trans, T.Center, T.Axis, T.Angle*180/math.Pi, T.RMSD, T.N)
}

// AxisAngle returns the rotation axis (as a unit 1x3 matrix) and the
// angle, in radians and within [0,Pi], of the rotation matrix rot. For a null
// rotation, or if rot is not a rotation matrix, the axis is zero and the angle 0.
func AxisAngle(rot *v3.Matrix) (*v3.Matrix, float64) {
	axis := v3.Zeros(1)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if v := rot.At(i, j); v > 1+1e-6 || v < -1-1e-6 || math.IsNaN(v) {
				return axis, 0
			}
		}
	}
	if math.Abs(v3.Det(rot)-1) > 1e-4 {
		return axis, 0
	}
	sym := v3.Zeros(3)
	sym.Add(rot, rot.T())
	sym.Scale(0.5, sym)
	evecs, _, err := v3.EigenWrap(sym)
	if err != nil {
		return axis, 0
	}
	//The rotation axis is the eigenvector with eigenvalue 1, the largest one.
	axis.Copy(evecs.VecView(2))
	w := v3.Vec(rot.At(2, 1)-rot.At(1, 2), rot.At(0, 2)-rot.At(2, 0), rot.At(1, 0)-rot.At(0, 1))
	sin := 0.5 * axis.Dot(w)
	cos := 0.5 * (rot.At(0, 0) + rot.At(1, 1) + rot.At(2, 2) - 1)
	angle := math.Atan2(sin, math.Max(-1, math.Min(1, cos)))
	if angle < 0 {
		angle = -angle
		axis.Scale(-1, axis)
	}
	if angle < 1e-12 {
		return v3.Zeros(1), 0
	}
	return axis, angle
}

// Rotator returns the matrix for a rotation of angle radians about axis.
// axis doesn't need to be normalized. A zero axis gives the identity.
func Rotator(axis *v3.Matrix, angle float64) *v3.Matrix {
	if axis.Norm(2) == 0 {
		return v3.Eye()
	}
	u := v3.Zeros(1)
	u.Unit(axis)
	x, y, z := u.At(0, 0), u.At(0, 1), u.At(0, 2)
	s, c := math.Sincos(angle)
	C := 1 - c
	xs, ys, zs := x*s, y*s, z*s
	xC, yC, zC := x*C, y*C, z*C
	xyC, yzC, zxC := x*yC, y*zC, z*xC
	ret, _ := v3.NewMatrix([]float64{
		x*xC + c, xyC - zs, zxC + ys,
		xyC + zs, y*yC + c, yzC - xs,
		zxC - ys, yzC + xs, z*zC + c,
	})
	return ret
}

// RotationFraction returns a rotation about the axis of rot, by f times its angle.
func RotationFraction(rot *v3.Matrix, f float64) *v3.Matrix {
	axis, angle := AxisAngle(rot)
	return Rotator(axis, angle*f)
}

func mat3Equal(a, b *v3.Matrix) bool {
	for i := 0; i < 3; i++ {
		if a.At(0, i) != b.At(0, i) {
			return false
		}
	}
	return true
}
