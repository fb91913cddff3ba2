/*
 * rigid_test.go, part of gohinge.
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

package rigid

import (
	"math"
	"strings"
	"testing"

	hinge "github.com/rmera/gohinge"
	"github.com/rmera/gohinge/kabsch"
	v3 "github.com/rmera/gohinge/v3"
)

func helix(n int, x float64) *v3.Matrix {
	ret := v3.Zeros(n)
	for i := 0; i < n; i++ {
		a := float64(i) * 100 * math.Pi / 180
		ret.Set(i, 0, x+2.3*math.Cos(a))
		ret.Set(i, 1, 2.3*math.Sin(a))
		ret.Set(i, 2, 1.5*float64(i))
	}
	return ret
}

func chain(Te *testing.T, id byte, coords *v3.Matrix) *hinge.SimpleChain {
	Te.Helper()
	c, err := hinge.NewChain(id, strings.Repeat("A", coords.NVecs()), 1, coords)
	if err != nil {
		Te.Fatal(err)
	}
	hinge.ConnectCA(c)
	return c
}

// two helices of n1 and n2 residues, 20 A apart, the second one rotated about its own axis
// and moved away in the second conformation.
func domains(n1, n2 int) (*v3.Matrix, *v3.Matrix) {
	d1, d2 := helix(n1, 0), helix(n2, 20)
	idx1, idx2 := make([]int, n1), make([]int, n2)
	for i := range idx1 {
		idx1[i] = i
	}
	for i := range idx2 {
		idx2[i] = n1 + i
	}
	A := v3.Zeros(n1 + n2)
	A.SetVecs(d1, idx1)
	A.SetVecs(d2, idx2)
	T := kabsch.Identity()
	T.Rot = kabsch.Rotator(v3.Vec(0, 0, 1), 40*math.Pi/180)
	T.Center.Copy(v3.Vec(20, 0, 0))
	T.Trans.Copy(v3.Vec(15, 0, 0))
	B := v3.Zeros(n1 + n2)
	B.SetVecs(d1, idx1)
	B.SetVecs(T.Apply(d2), idx2)
	return A, B
}

func twoDomains() (*v3.Matrix, *v3.Matrix) {
	return domains(10, 10)
}

func TestSingleBlock(Te *testing.T) {
	A := helix(10, 0)
	T := kabsch.Identity()
	T.Rot = kabsch.Rotator(v3.Vec(0, 0, 1), 30*math.Pi/180)
	T.Trans.Copy(v3.Vec(1, 0, 0))
	c1, c2 := chain(Te, 'A', A), chain(Te, 'B', T.Apply(A))
	O := DefaultOptions()
	O.Delta(0.1)
	F, err := FindRigids([]hinge.Chain{c1}, []hinge.Chain{c2}, O)
	if err != nil {
		Te.Fatal(err)
	}
	if F.NRigids != 1 {
		Te.Fatalf("%d blocks, expected 1", F.NRigids)
	}
	if s := F.BlockSizes(); len(s) != 1 || s[0] != 10 {
		Te.Errorf("Block sizes %v, expected [10]", s)
	}
	if c := F.Coverage(); c != 1 {
		Te.Errorf("Coverage %g, expected 1", c)
	}
	for i := 0; i < 10; i++ {
		if c1.Residue(i).GroupID() != 1 || c2.Residue(i).GroupID() != 1 {
			Te.Errorf("Residue %d not in block 1", i)
		}
	}
	if r := F.Report(); r != "10 (AB,1,1,10)\n" {
		Te.Errorf("Report %q", r)
	}
}

func TestTwoDomains(Te *testing.T) {
	A, B := twoDomains()
	c1, c2 := chain(Te, 'A', A), chain(Te, 'A', B)
	O := DefaultOptions()
	O.Delta(1.0)
	F, err := FindRigids([]hinge.Chain{c1}, []hinge.Chain{c2}, O)
	if err != nil {
		Te.Fatal(err)
	}
	if F.NRigids != 2 {
		Te.Fatalf("%d blocks, expected 2", F.NRigids)
	}
	exp := "10 (AA,1,1,10)\n10 (AA,11,11,10)\n"
	if r := F.Report(); r != exp {
		Te.Errorf("Report\n%s\nexpected\n%s", r, exp)
	}
	//a second search gives the same blocks.
	if n := F.Find(); n != 2 || F.Report() != exp {
		Te.Errorf("Second search gave %d blocks:\n%s", n, F.Report())
	}
	//with a tolerance larger than any deviation, the domains are
	//still separated, as they are too far apart to make a compact block.
	O.Delta(100)
	if n := F.Find(); n != 2 {
		Te.Errorf("%d blocks with a large tolerance, expected 2", n)
	}
	if s := F.BlockSizes(); len(s) != 2 || s[0] != 10 || s[1] != 10 {
		Te.Errorf("Blocks of %v residues with a large tolerance, expected [10 10]", s)
	}
}

// Blocks are numbered by size, largest first, whichever comes first in the chain.
func TestBlockOrder(Te *testing.T) {
	cases := []struct {
		n1, n2 int
		report string
	}{
		{6, 14, "14 (AA,7,7,14)\n6 (AA,1,1,6)\n"},
		{14, 6, "14 (AA,1,1,14)\n6 (AA,15,15,6)\n"},
		{5, 9, "9 (AA,6,6,9)\n5 (AA,1,1,5)\n"},
		{9, 5, "9 (AA,1,1,9)\n5 (AA,10,10,5)\n"},
	}
	for _, c := range cases {
		A, B := domains(c.n1, c.n2)
		c1, c2 := chain(Te, 'A', A), chain(Te, 'A', B)
		O := DefaultOptions()
		O.Delta(1.0)
		F, err := FindRigids([]hinge.Chain{c1}, []hinge.Chain{c2}, O)
		if err != nil {
			Te.Fatal(err)
		}
		s := F.BlockSizes()
		if len(s) != 2 {
			Te.Errorf("%d+%d: blocks of %v residues, expected 2 blocks", c.n1, c.n2, s)
			continue
		}
		if s[0] < s[1] || s[0] != max(c.n1, c.n2) {
			Te.Errorf("%d+%d: block sizes %v not ordered by size", c.n1, c.n2, s)
		}
		if r := F.Report(); r != c.report {
			Te.Errorf("%d+%d: report\n%s\nexpected\n%s", c.n1, c.n2, r, c.report)
		}
		big := 0
		if c.n2 > c.n1 {
			big = c.n1
		}
		if c1.Residue(big).GroupID() != 1 {
			Te.Errorf("%d+%d: residue %d of the larger domain is in block %d", c.n1, c.n2, big, c1.Residue(big).GroupID())
		}
	}
}

func TestMonotonic(Te *testing.T) {
	A, B := twoDomains()
	c1, c2 := chain(Te, 'A', A), chain(Te, 'A', B)
	C, err := hinge.Correspond([]hinge.Chain{c1}, []hinge.Chain{c2})
	if err != nil {
		Te.Fatal(err)
	}
	O := DefaultOptions()
	F := NewFinder(C, O)
	prev := 0
	for _, d := range []float64{0.01, 0.1, 0.5, 1, 2.5, 5, 20} {
		O.Delta(d)
		if F.Find() < 1 {
			Te.Fatalf("No blocks with delta %g", d)
		}
		largest := F.BlockSizes()[0]
		if largest < prev {
			Te.Errorf("Largest block shrank from %d to %d with delta %g", prev, largest, d)
		}
		prev = largest
	}
}

func TestReverse(Te *testing.T) {
	A, B := twoDomains()
	O := DefaultOptions()
	O.Delta(1.0)
	O.Reverse(true)
	O.Refine(false)
	F, err := FindRigids([]hinge.Chain{chain(Te, 'A', A)}, []hinge.Chain{chain(Te, 'A', B)}, O)
	if err != nil {
		Te.Fatal(err)
	}
	if F.NRigids != 2 || F.Coverage() != 1 {
		Te.Errorf("%d blocks covering %g of the pairs, expected 2 and 1", F.NRigids, F.Coverage())
	}
}

func TestNoSearch(Te *testing.T) {
	E, err := hinge.Correspond(nil, nil)
	if err != nil {
		Te.Fatal(err)
	}
	F := NewFinder(E, nil)
	if F.n != 0 || F.Find() != -1 {
		Te.Fatal("Empty correspondence with pairs")
	}
	A := helix(6, 0)
	C, _ := hinge.Correspond([]hinge.Chain{chain(Te, 'A', A)}, []hinge.Chain{chain(Te, 'A', A)})
	O := DefaultOptions()
	O.Delta(-1)
	F = NewFinder(C, O)
	if n := F.Find(); n != -1 || F.NRigids != -1 {
		Te.Errorf("A negative tolerance gave %d blocks", n)
	}
	if F.BlockSizes() != nil || F.Coverage() != 0 {
		Te.Error("No sizes expected before a search")
	}
	//three residues can't make a block.
	B := helix(3, 0)
	F, _ = FindRigids([]hinge.Chain{chain(Te, 'A', B)}, []hinge.Chain{chain(Te, 'A', B)}, nil)
	if F.NRigids != 0 || F.Report() != "" {
		Te.Errorf("%d blocks among 3 residues", F.NRigids)
	}
}

func setGIDs(F *Finder, gids []int) {
	for i, h := range F.C.Interesting(F.C.First) {
		F.C.At(h).GID = gids[i]
	}
}

func getGIDs(F *Finder) []int {
	ret := []int{}
	for _, h := range F.C.Interesting(F.C.First) {
		ret = append(ret, F.C.At(h).GID)
	}
	return ret
}

func sameInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestFragments(Te *testing.T) {
	A := helix(12, 0)
	C, err := hinge.Correspond([]hinge.Chain{chain(Te, 'A', A)}, []hinge.Chain{chain(Te, 'A', A)})
	if err != nil {
		Te.Fatal(err)
	}
	F := NewFinder(C, nil)
	//one-residue hole in a block.
	setGIDs(F, []int{1, 1, 1, 1, 1, 0, 1, 1, 1, 1, 1, 1})
	F.clusterFragments(1, 1)
	if g := getGIDs(F); !sameInts(g, []int{1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1}) {
		Te.Errorf("Hole not filled: %v", g)
	}
	//a two-residue hole is too large for a gap size of 1.
	setGIDs(F, []int{1, 1, 1, 1, 0, 0, 1, 1, 1, 1, 1, 1})
	F.clusterFragments(1, 1)
	if g := getGIDs(F); !sameInts(g, []int{1, 1, 1, 1, 0, 0, 1, 1, 1, 1, 1, 1}) {
		Te.Errorf("Two-residue hole filled with gap size 1: %v", g)
	}
	F.clusterFragments(2, 1)
	if g := getGIDs(F); !sameInts(g, []int{1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1}) {
		Te.Errorf("Two-residue hole not filled with gap size 2: %v", g)
	}
	//short pieces are removed.
	setGIDs(F, []int{2, 2, 0, 0, 2, 2, 2, 2, 2, 0, 2, 0})
	F.clearShortFragments(2)
	if g := getGIDs(F); !sameInts(g, []int{0, 0, 0, 0, 2, 2, 2, 2, 2, 0, 0, 0}) {
		Te.Errorf("Short fragments left: %v", g)
	}
}

func TestReport(Te *testing.T) {
	c1, _ := hinge.NewChain('A', "AAAAAA", 1, nil)
	c2, _ := hinge.NewChain('B', "AAAAAA", 101, nil)
	for i, g := range []int{1, 1, 1, 0, 1, 1} {
		c1.Residue(i).SetGroupID(g)
		c2.Residue(i).SetGroupID(g)
	}
	r := Report([]hinge.Chain{c1}, []hinge.Chain{c2})
	if r != "5 (AB,1,101,3) (AB,5,105,2)\n" {
		Te.Errorf("Report %q", r)
	}
	var b strings.Builder
	O := DefaultOptions()
	O.Delta(2)
	O.Cluster(false)
	if err := WriteReport(&b, "open", "closed", O, r); err != nil {
		Te.Fatal(err)
	}
	if !strings.HasPrefix(b.String(), "open closed 2.0 refine nocluster\n5 (AB") {
		Te.Errorf("Written report %q", b.String())
	}
}
