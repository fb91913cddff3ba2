/*
 * hinge_test.go, part of gohinge.
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
	"math"
	"testing"

	"github.com/rmera/gohinge/kabsch"
	"github.com/rmera/gohinge/pairs"
	v3 "github.com/rmera/gohinge/v3"
)

// C-alpha trace of an ideal helix.
func helix(n int) *v3.Matrix {
	ret := v3.Zeros(n)
	for i := 0; i < n; i++ {
		a := Deg2Rad(100 * float64(i))
		ret.Set(i, 0, 2.3*math.Cos(a))
		ret.Set(i, 1, 2.3*math.Sin(a))
		ret.Set(i, 2, 1.5*float64(i))
	}
	return ret
}

func polyAla(Te *testing.T, id byte, coords *v3.Matrix) *SimpleChain {
	Te.Helper()
	seq := make([]byte, coords.NVecs())
	for i := range seq {
		seq[i] = 'A'
	}
	c, err := NewChain(id, string(seq), 1, coords)
	if err != nil {
		Te.Fatal(err)
	}
	ConnectCA(c)
	return c
}

func TestChainGaps(Te *testing.T) {
	c, err := NewChain('A', "MKV", 10, nil)
	if err != nil {
		Te.Fatal(err)
	}
	c.InsertGap(0)
	c.InsertGap(2)
	c.InsertGap(c.Len())
	if s := c.Sequence(); s != "-M-KV-" {
		Te.Errorf("Sequence with gaps is %s", s)
	}
	if n := CountResidues(c); n != 3 {
		Te.Errorf("%d residues, expected 3", n)
	}
	c.RemoveGaps()
	if s := c.Sequence(); s != "MKV" {
		Te.Errorf("Sequence without gaps is %s", s)
	}
	if c.Residue(2).Serial() != 12 {
		Te.Errorf("Wrong serial %d", c.Residue(2).Serial())
	}
	if _, err := NewChain('A', "MK", 1, v3.Zeros(3)); err == nil {
		Te.Error("Mismatched coordinates should give an error")
	}
}

func TestConnectCA(Te *testing.T) {
	coords := helix(6)
	//a chain break between residues 3 and 4
	for i := 3; i < 6; i++ {
		coords.Set(i, 2, coords.At(i, 2)+10)
	}
	c, _ := NewChain('A', "AAAAAA", 1, coords)
	if n := ConnectCA(c); n != 4 {
		Te.Errorf("%d bonds, expected 4", n)
	}
	if c.Res[2].ConnectedTo(c.Res[3]) {
		Te.Error("Residues across the break should not be bonded")
	}
	if !c.Res[4].ConnectedTo(c.Res[3]) || !c.Res[3].ConnectedTo(c.Res[4]) {
		Te.Error("Bonds should be symmetric")
	}
	if n := ConnectCA(c); n != 0 {
		Te.Errorf("Second call created %d bonds", n)
	}
	//a residue without coordinates between two close ones.
	line, _ := v3.NewMatrix([]float64{0, 0, 0, 1.9, 0, 0, 3.8, 0, 0, 7.6, 0, 0})
	m, _ := NewChain('B', "AAAA", 1, line)
	m.Res[1].Pos = nil
	if n := ConnectCA(m); n != 1 {
		Te.Errorf("%d bonds around a missing atom, expected 1", n)
	}
	if m.Res[2].ConnectedTo(m.Res[0]) || m.Res[2].ConnectedTo(m.Res[1]) {
		Te.Error("Residues should not be bonded across a missing atom")
	}
	if !m.Res[2].ConnectedTo(m.Res[3]) {
		Te.Error("Residues 3 and 4 should be bonded")
	}
}

func TestCorrespond(Te *testing.T) {
	c1 := polyAla(Te, 'A', helix(8))
	c2 := polyAla(Te, 'A', helix(8))
	c1.InsertGap(4)
	c2.InsertGap(c2.Len())
	C, err := Correspond([]Chain{c1}, []Chain{c2})
	if err != nil {
		Te.Fatal(err)
	}
	if C.NAligned != 7 {
		Te.Errorf("%d aligned pairs, expected 7", C.NAligned)
	}
	n := 0
	conn := 0
	prev := pairs.None
	C.Walk(C.First, func(i int, p *pairs.Pair[Residue]) bool {
		n++
		if prev != pairs.None && C.IsConnectedTo(prev, i) {
			conn++
		}
		prev = i
		return true
	})
	if n != 9 {
		Te.Errorf("%d pairs in the list, expected 9", n)
	}
	//the gap columns break three of the 8 links.
	if conn != 5 {
		Te.Errorf("%d connected neighbours, expected 5", conn)
	}
	if _, err := Correspond([]Chain{c1}, nil); err == nil {
		Te.Error("Mismatched chain numbers should give an error")
	}
}

func TestCorrespondFit(Te *testing.T) {
	A := helix(10)
	T := kabsch.Identity()
	T.Rot = kabsch.Rotator(v3.Vec(0, 0, 1), Deg2Rad(30))
	T.Trans.Copy(v3.Vec(1, 0, 0))
	B := T.Apply(A)
	c1, c2 := polyAla(Te, 'A', A), polyAla(Te, 'A', B)
	C, err := Correspond([]Chain{c1}, []Chain{c2})
	if err != nil {
		Te.Fatal(err)
	}
	F := C.FitAll(nil)
	if F.RMSD > 1e-6 || F.N != 10 {
		Te.Errorf("Fit RMSD %g over %d points", F.RMSD, F.N)
	}
	if math.Abs(Rad2Deg(F.Angle)-30) > 0.5 {
		Te.Errorf("Fit angle %g", Rad2Deg(F.Angle))
	}
	Move(F, c2)
	r, err := RMSD(c1.Res[0].Pos, c2.Res[0].Pos)
	if err != nil || r > 1e-5 {
		Te.Errorf("Moved chain deviates by %g (%v)", r, err)
	}
	if F := C.Fit(C.Interesting(C.First)[:2], nil); F.Valid() {
		Te.Error("A fit over 2 pairs should not be valid")
	}
}

func TestSuper(Te *testing.T) {
	A := helix(7)
	T := kabsch.Identity()
	T.Rot = kabsch.Rotator(v3.Vec(1, 1, 1), 1.2)
	B := T.Apply(A)
	if _, err := Super(B, A, []int{0, 1, 2}, []int{0, 1}); err == nil {
		Te.Error("Mismatched lists should give an error")
	}
	if _, err := Super(B, A, nil, nil); err != nil {
		Te.Fatal(err)
	}
	if r, _ := RMSD(A, B); r > 1e-6 {
		Te.Errorf("RMSD after Super is %g", r)
	}
	c := Centroid(v3.Zeros(4))
	if c.Norm(2) != 0 {
		Te.Error("Centroid of zeros is not zero")
	}
}
