/*
 * screw.go, part of gohinge.
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
	"log"
	"math"

	"github.com/rmera/gohinge/kabsch"
	v3 "github.com/rmera/gohinge/v3"
)

// Screw is the motion of one block relative to another one, from the first
// conformation to the second, decomposed as a rotation about an axis plus a
// translation along the same axis.
type Screw struct {
	//The whole relative motion, with the Analyzer's Center.
	*kabsch.Transform

	Static, Moving int        //block ids, 0 is the whole structure.
	Parallel       *v3.Matrix //translation along the axis.
	Perpendicular  *v3.Matrix //translation perpendicular to the axis.
	Point          *v3.Matrix //a point on the screw axis.
	Shift          float64    //signed length of Parallel, along Axis.
}

// Relative returns the motion of block moving when block static is kept fixed, decomposed
// as a screw. Block 0 is the whole structure. It returns nil, and logs a warning, if either block
// does not exist or has no transformation.
func (A *Analyzer) Relative(static, moving int) *Screw {
	n := A.NBlocks()
	if static < 0 || static > n || moving < 0 || moving > n {
		log.Printf("motion: Wrong blocks %d and %d, there are %d", static, moving, n)
		return nil
	}
	ts, tm := A.Transforms[static], A.Transforms[moving]
	if ts == nil || tm == nil {
		log.Printf("motion: No transformation for block %d or %d", static, moving)
		return nil
	}
	S := screw(ts.Compose(tm.Inverse()))
	S.Static, S.Moving = static, moving
	return S
}

func screw(T *kabsch.Transform) *Screw {
	S := &Screw{Transform: T, Parallel: v3.Zeros(1), Perpendicular: v3.Zeros(1), Point: v3.Zeros(1)}
	S.Point.Copy(T.Center)
	if T.Angle < 1e-6 {
		//practically a pure translation. The axis goes through the center,
		//so Fraction still gives the whole motion for f=1.
		S.Parallel.Copy(T.Trans)
		S.Shift = T.Trans.Norm(2)
		return S
	}
	S.Shift = T.Trans.Dot(T.Axis)
	S.Parallel.Scale(S.Shift, T.Axis)
	S.Perpendicular.Sub(T.Trans, S.Parallel)
	//The point p on the axis satisfies (I-R)p=t_perp, so p=(I-RT)t_perp/(2-2cos(angle)).
	p := v3.Zeros(1)
	p.Mul(S.Perpendicular, T.Rot)
	p.Sub(S.Perpendicular, p)
	p.Scale(1/(2-2*math.Cos(T.Angle)), p)
	S.Point.Add(S.Point, p)
	return S
}

// Fraction returns the transformation that performs the fraction f of the motion S. If
// asScrew is true, the rotation is performed about the screw axis, and the translation is only
// the part along that axis. Otherwise, the rotation is about the center, and the translation
// is f times the whole translation. Both give the whole motion for f=1.
func (S *Screw) Fraction(f float64, asScrew bool) *kabsch.Transform {
	if !asScrew {
		return S.Transform.Fraction(f)
	}
	ret := kabsch.Identity()
	ret.Center.Copy(S.Point)
	ret.Rot = kabsch.Rotator(S.Axis, f*S.Angle)
	ret.Trans.Scale(f, S.Parallel)
	ret.Axis, ret.Angle = kabsch.AxisAngle(ret.Rot)
	return ret
}

// Interpolate returns, for each pair, the displacement of the first-conformation residue after
// the fraction f of the motion of its block relative to the block static. Residues without a block move by f
// times their global displacement. It returns nil, and logs a warning, if f is not in [0,1], or if
// static, or any other block, has no transformation.
func (A *Analyzer) Interpolate(static int, f float64, asScrew bool) *v3.Matrix {
	if f < 0 || f > 1 {
		log.Printf("motion: Interpolation fraction %g not in [0,1]", f)
		return nil
	}
	n := A.NBlocks()
	if static < 0 || static > n || A.Transforms[static] == nil {
		log.Printf("motion: Wrong static block %d", static)
		return nil
	}
	fracs := make([]*kabsch.Transform, n+1)
	for r := 1; r <= n; r++ {
		S := A.Relative(static, r)
		if S == nil {
			return nil
		}
		fracs[r] = S.Fraction(f, asScrew)
	}
	ret := A.Displacement(false)
	ret.Scale(f, ret)
	for i := range A.handles {
		r := A.Block(i)
		if r <= 0 || r > n {
			continue
		}
		d := ret.VecView(i)
		d.Copy(A.c1.VecView(i))
		fracs[r].ApplyTo(d)
		d.Sub(d, A.c1.VecView(i))
	}
	return ret
}

// Frames returns n+1 sets of coordinates going from the first conformation (frame 0) to the second one,
// superimposed on the first one on block static, by interpolation of the motion of each block.
// It returns nil under the same conditions as Interpolate, or if n < 1.
func (A *Analyzer) Frames(static, n int, asScrew bool) []*v3.Matrix {
	if n < 1 {
		log.Printf("motion: Can't interpolate over %d steps", n)
		return nil
	}
	ret := make([]*v3.Matrix, 0, n+1)
	for i := 0; i <= n; i++ {
		D := A.Interpolate(static, float64(i)/float64(n), asScrew)
		if D == nil {
			return nil
		}
		D.Add(D, A.c1)
		ret = append(ret, D)
	}
	return ret
}
