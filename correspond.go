/*
 * correspond.go, part of gohinge.
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

	"github.com/rmera/gohinge/pairs"
	v3 "github.com/rmera/gohinge/v3"
)

// Correspondence is the residue-to-residue correspondence between two
// sets of co-indexed chains (normally, after an alignment). There is one pair per
// column, linked in chain order. Pairs where neither residue is a gap are of interest.
type Correspondence struct {
	*pairs.List[Residue]
	First    int //handle of the first pair, pairs.None if empty.
	NAligned int //number of pairs of interest.
	Chains1  []Chain
	Chains2  []Chain
}

// Correspond builds the Correspondence between chains1 and chains2. Chains with the
// same index are taken to correspond to each other, and residues with the same
// index in corresponding chains are paired. If both residues of a pair
// have the same group id, the pair takes it. Consecutive pairs are connected
// when the residues on both sides are bonded to their predecessors.
func Correspond(chains1, chains2 []Chain) (*Correspondence, error) {
	if len(chains1) != len(chains2) {
		return nil, CError{fmt.Sprintf("Different number of chains: %d and %d", len(chains1), len(chains2)), []string{"Correspond"}, true}
	}
	n := 0
	for i, c := range chains1 {
		if c == nil || chains2[i] == nil {
			return nil, CError{fmt.Sprintf("Nil chain in pair %d", i), []string{"Correspond"}, true}
		}
		n += c.Len()
	}
	C := &Correspondence{List: pairs.New[Residue](n), First: pairs.None, Chains1: chains1, Chains2: chains2}
	last := pairs.None
	for c := range chains1 {
		c1, c2 := chains1[c], chains2[c]
		for k := 0; k < c1.Len() && k < c2.Len(); k++ {
			a1, a2 := c1.Residue(k), c2.Residue(k)
			isGap := a1.Gap() || a2.Gap()
			p := C.Add(a1, a2, !isGap)
			if a1.GroupID() == a2.GroupID() {
				C.At(p).GID = a1.GroupID()
			}
			if !isGap {
				C.NAligned++
			}
			if last == pairs.None {
				C.First, last = p, p
				continue
			}
			if C.InsertAfter(last, p) {
				prev := C.At(last)
				if a1.ConnectedTo(prev.Obj1) && a2.ConnectedTo(prev.Obj2) {
					C.AddConnection(last, p)
				}
				last = p
			}
		}
	}
	return C, nil
}

// Project writes the group id of each pair onto both of its residues.
func (C *Correspondence) Project() {
	C.Walk(C.First, func(_ int, p *pairs.Pair[Residue]) bool {
		p.Obj1.SetGroupID(p.GID)
		p.Obj2.SetGroupID(p.GID)
		return true
	})
}

// Coords returns the coordinates of the representative atoms of both residues
// for the given pairs, skipping the pairs where either atom is missing. It also
// returns the handles of the pairs actually used. If no pair can be used, the
// matrices are nil.
func (C *Correspondence) Coords(handles []int) (*v3.Matrix, *v3.Matrix, []int) {
	used := make([]int, 0, len(handles))
	for _, h := range handles {
		p := C.At(h)
		if p.Obj1.Coords() == nil || p.Obj2.Coords() == nil {
			continue
		}
		used = append(used, h)
	}
	if len(used) == 0 {
		return nil, nil, used
	}
	c1 := v3.Zeros(len(used))
	c2 := v3.Zeros(len(used))
	for i, h := range used {
		p := C.At(h)
		c1.VecView(i).Copy(p.Obj1.Coords())
		c2.VecView(i).Copy(p.Obj2.Coords())
	}
	return c1, c2, used
}

// Group returns the handles, in chain order, of the pairs of interest with
// group id gid.
func (C *Correspondence) Group(gid int) []int {
	ret := make([]int, 0)
	C.Walk(C.First, func(i int, p *pairs.Pair[Residue]) bool {
		if p.Interest && p.GID == gid {
			ret = append(ret, i)
		}
		return true
	})
	return ret
}

// MaxGID returns the largest group id among the pairs of interest.
func (C *Correspondence) MaxGID() int {
	ret := 0
	C.Walk(C.First, func(_ int, p *pairs.Pair[Residue]) bool {
		if p.Interest && p.GID > ret {
			ret = p.GID
		}
		return true
	})
	return ret
}
