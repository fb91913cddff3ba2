/*
 * v3_test.go, part of gohinge.
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

package v3

import (
	"math"
	"testing"
)

func TestSomeVecs(Te *testing.T) {
	a := []float64{1.0, 2.0, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18}
	A, err := NewMatrix(a)
	if err != nil {
		Te.Fatal(err)
	}
	B := Zeros(3)
	cind := []int{1, 3, 5}
	B.SomeVecs(A, cind)
	if B.At(0, 0) != 4 || B.At(1, 1) != 11 || B.At(2, 2) != 18 {
		Te.Errorf("SomeVecs took the wrong vectors: %v", B)
	}
	B.Set(1, 1, 55)
	A.SetVecs(B, cind)
	if A.At(3, 1) != 55 {
		Te.Errorf("SetVecs didn't copy the vectors back: %v", A)
	}
}

func TestAddSub(Te *testing.T) {
	A, _ := NewMatrix([]float64{1, 2, 3, 4, 5, 6})
	row := Vec(10, 20, 30)
	A.AddVec(A, row)
	if A.At(1, 2) != 36 {
		Te.Errorf("AddVec gave %v", A)
	}
	A.SubVec(A, row)
	if A.At(1, 2) != 6 || A.At(0, 0) != 1 {
		Te.Errorf("SubVec gave %v", A)
	}
	if _, err := NewMatrix([]float64{1, 2}); err == nil {
		Te.Error("NewMatrix should fail with a slice not divisible by 3")
	}
}

func TestUnit(Te *testing.T) {
	x := Vec(1, 0, 0)
	y := Vec(0, 1, 0)
	v := Vec(2, 2, 1)
	v.Unit(v)
	if math.Abs(v.Norm(2)-1) > 1e-12 {
		Te.Errorf("Unit vector has norm %f", v.Norm(2))
	}
	if d := x.Distance(0, y, 0); math.Abs(d-math.Sqrt2) > 1e-12 {
		Te.Errorf("Wrong distance %f", d)
	}
}

func TestMulAliased(Te *testing.T) {
	R := Zeros(3)
	R.Set(0, 1, -1)
	R.Set(1, 0, 1)
	R.Set(2, 2, 1)
	R.Mul(R, R) //180 degrees about Z
	if R.At(0, 0) != -1 || R.At(1, 1) != -1 || R.At(2, 2) != 1 {
		Te.Errorf("Aliased Mul gave %v", R)
	}
	if d := Det(R); math.Abs(d-1) > 1e-12 {
		Te.Errorf("Determinant of a rotation should be 1, got %f", d)
	}
}

func TestEigen(Te *testing.T) {
	A, err := NewMatrix([]float64{1, 2, 0, 2, 1, 0, 0, 0, 1})
	if err != nil {
		Te.Fatal(err)
	}
	evecs, evals, err := EigenWrap(A)
	if err != nil {
		Te.Fatal(err)
	}
	want := []float64{-1, 1, 3}
	for i, v := range want {
		if math.Abs(evals[i]-v) > 1e-10 {
			Te.Errorf("Eigenvalue %d is %f, expected %f", i, evals[i], v)
		}
	}
	//the largest one must be (1,1,0)/sqrt(2), up to the sign
	top := evecs.VecView(2)
	if math.Abs(math.Abs(top.At(0, 0))-1/math.Sqrt2) > 1e-10 || math.Abs(top.At(0, 2)) > 1e-10 {
		Te.Errorf("Wrong top eigenvector %v", top)
	}
}
