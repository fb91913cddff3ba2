/*
 * kabsch_test.go, part of gohinge.
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
	"math"
	"testing"

	v3 "github.com/rmera/gohinge/v3"
	gomatrix "github.com/skelterjohn/go.matrix"
)

// helix returns n points on an ideal alpha helix (C-alpha trace).
func helix(n int) *v3.Matrix {
	ret := v3.Zeros(n)
	for i := 0; i < n; i++ {
		a := float64(i) * 100 * math.Pi / 180
		ret.Set(i, 0, 2.3*math.Cos(a))
		ret.Set(i, 1, 2.3*math.Sin(a))
		ret.Set(i, 2, 1.5*float64(i))
	}
	return ret
}

func moved(A *v3.Matrix, axis *v3.Matrix, angle float64, trans *v3.Matrix) *v3.Matrix {
	T := Identity()
	T.Rot = Rotator(axis, angle)
	T.Trans.Copy(trans)
	return T.Apply(A)
}

func maxDiff(A, B *v3.Matrix) float64 {
	r, c := A.Dims()
	ret := 0.0
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			ret = math.Max(ret, math.Abs(A.At(i, j)-B.At(i, j)))
		}
	}
	return ret
}

func TestRecovery(Te *testing.T) {
	ref := helix(12)
	cases := []struct {
		name  string
		axis  *v3.Matrix
		angle float64
		trans *v3.Matrix
	}{
		{"identity", v3.Vec(0, 0, 1), 0, v3.Zeros(1)},
		{"translation", v3.Vec(0, 0, 1), 0, v3.Vec(3, -2, 7)},
		{"small", v3.Vec(1, 1, 0), 5 * math.Pi / 180, v3.Vec(0.5, 0, 0)},
		{"oblique", v3.Vec(1, -2, 3), 75 * math.Pi / 180, v3.Vec(-4, 1, 2)},
		{"obtuse", v3.Vec(0, 1, 0), 150 * math.Pi / 180, v3.Vec(1, 1, 1)},
	}
	for _, c := range cases {
		mov := moved(ref, c.axis, c.angle, c.trans)
		//Superimpose the original onto the moved copy, which gives back the applied transformation.
		T := Fit(mov, ref, nil)
		if T.RMSD < 0 || T.RMSD > 1e-5 {
			Te.Errorf("%s: RMSD should be ~0, got %g", c.name, T.RMSD)
		}
		if T.N != 12 {
			Te.Errorf("%s: expected 12 points, got %d", c.name, T.N)
		}
		if d := math.Abs(T.Angle - c.angle); d > 1e-4 {
			Te.Errorf("%s: angle %g, expected %g", c.name, T.Angle, c.angle)
		}
		if c.angle > 0 {
			u := v3.Zeros(1)
			u.Unit(c.axis)
			if d := u.Dot(T.Axis); d < 1-1e-4 {
				Te.Errorf("%s: axis %v, expected %v", c.name, T.Axis, u)
			}
		}
		if d := maxDiff(T.Trans, c.trans); d > 1e-4 {
			Te.Errorf("%s: translation %v, expected %v", c.name, T.Trans, c.trans)
		}
		if d := maxDiff(T.Apply(ref), mov); d > 1e-4 {
			Te.Errorf("%s: transformed coordinates deviate by %g", c.name, d)
		}
	}
}

func TestInverse(Te *testing.T) {
	A := helix(9)
	B := moved(A, v3.Vec(2, 1, -1), 0.8, v3.Vec(1, 2, 3))
	T := Fit(B, A, nil)
	back := T.Inverse().Apply(B)
	if d := maxDiff(back, A); d > 1e-5 {
		Te.Errorf("The inverse transformation deviates by %g", d)
	}
	if d := maxDiff(T.Compose(T.Inverse()).Rot, v3.Eye()); d > 1e-8 {
		Te.Errorf("T composed with its inverse is not the identity: %v", T.Compose(T.Inverse()).Rot)
	}
}

func TestCenter(Te *testing.T) {
	A := helix(10)
	B := moved(A, v3.Vec(0, 0, 1), math.Pi/4, v3.Vec(2, 0, 0))
	c := v3.Vec(3, 3, 3)
	T := Fit(A, B, c)
	if d := maxDiff(T.Apply(B), A); d > 1e-5 {
		Te.Errorf("Centered fit deviates by %g", d)
	}
	if d := maxDiff(T.Absolute().Apply(B), A); d > 1e-5 {
		Te.Errorf("Absolute form of centered fit deviates by %g", d)
	}
}

func TestTooFew(Te *testing.T) {
	A := helix(2)
	T := Fit(A, A, nil)
	if T.RMSD != -1 || T.Valid() {
		Te.Errorf("Fit with 2 points should give RMSD -1, got %g", T.RMSD)
	}
	if d := maxDiff(T.Rot, v3.Eye()); d != 0 {
		Te.Errorf("Fit with 2 points should give the identity rotation")
	}
}

// Two 10-residue chains, the second one rotated 30 degrees about Z and shifted by (1,0,0).
func TestThirtyDegrees(Te *testing.T) {
	A := helix(10)
	B := moved(A, v3.Vec(0, 0, 1), 30*math.Pi/180, v3.Vec(1, 0, 0))
	for _, T := range []*Transform{Fit(A, B, nil), Fit(B, A, nil)} {
		if T.RMSD > 1e-6 {
			Te.Errorf("RMSD %g", T.RMSD)
		}
		if math.Abs(math.Abs(T.Axis.At(0, 2))-1) > 1e-6 {
			Te.Errorf("Axis %v is not along Z", T.Axis)
		}
		if math.Abs(T.Angle-30*math.Pi/180) > 0.01 {
			Te.Errorf("Angle %g deg, expected 30", T.Angle*180/math.Pi)
		}
	}
}

// Checks the fitted rotation with an independent matrix implementation.
func TestOrthonormal(Te *testing.T) {
	A := helix(15)
	B := moved(A, v3.Vec(-1, 4, 2), 2.1, v3.Vec(0, 0, -5))
	//noise, so the fit is not exact.
	for i := 0; i < 15; i++ {
		B.Set(i, i%3, B.At(i, i%3)+0.1*math.Sin(float64(i)))
	}
	T := Fit(A, B, nil)
	rot := make([]float64, 0, 9)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			rot = append(rot, T.Rot.At(i, j))
		}
	}
	R := gomatrix.MakeDenseMatrix(rot, 3, 3)
	RRt, err := R.TimesDense(R.Transpose())
	if err != nil {
		Te.Fatal(err)
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			exp := 0.0
			if i == j {
				exp = 1
			}
			if math.Abs(RRt.Get(i, j)-exp) > 1e-8 {
				Te.Errorf("R*RT(%d,%d)=%g", i, j, RRt.Get(i, j))
			}
		}
	}
	if d := v3.Det(T.Rot); math.Abs(d-1) > 1e-8 {
		Te.Errorf("Determinant of the rotation is %g", d)
	}
	//The RMSD from the residual energy must agree with the one from the moved points.
	Bt := T.Apply(B)
	sum := 0.0
	for i := 0; i < 15; i++ {
		d := Bt.Distance(i, A, i)
		sum += d * d
	}
	if rmsd := math.Sqrt(sum / 15); math.Abs(rmsd-T.RMSD) > 1e-6 {
		Te.Errorf("RMSD from energy %g, from coordinates %g", T.RMSD, rmsd)
	}
}

func TestRotator(Te *testing.T) {
	R := Rotator(v3.Vec(0, 0, 2), math.Pi/2)
	x := v3.Vec(1, 0, 0)
	y := v3.Zeros(1)
	y.Mul(x, R.T())
	if d := maxDiff(y, v3.Vec(0, 1, 0)); d > 1e-12 {
		Te.Errorf("Rotating X 90 degrees about Z gave %v", y)
	}
	half := RotationFraction(R, 0.5)
	_, a := AxisAngle(half)
	if math.Abs(a-math.Pi/4) > 1e-9 {
		Te.Errorf("Half of a 90 degree rotation is %g rad", a)
	}
	mirror := v3.Eye()
	mirror.Set(2, 2, -1)
	if axis, a := AxisAngle(mirror); a != 0 || axis.Norm(2) != 0 {
		Te.Errorf("A reflection gave axis %v and angle %g", axis, a)
	}
}
