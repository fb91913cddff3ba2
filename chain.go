/*
 * chain.go, part of gohinge.
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
	"strings"

	v3 "github.com/rmera/gohinge/v3"
)

// GapLetter is the letter used for gap placeholders.
const GapLetter byte = '-'

// Res is a simple residue, with one representative atom.
// It implements Residue.
type Res struct {
	Code    byte
	Num     int
	Pos     *v3.Matrix //1x3, nil if the representative atom is missing.
	gid     int
	aligned bool
	gap     bool
	bonds   []*Res
}

// NewRes returns a residue with the given one-letter code, serial number
// and coordinates for the representative atom. pos can be nil.
func NewRes(code byte, num int, pos *v3.Matrix) *Res {
	return &Res{Code: code, Num: num, Pos: pos}
}

// NewGap returns a gap placeholder.
func NewGap() *Res {
	return &Res{Code: GapLetter, gap: true}
}

func (R *Res) Coords() *v3.Matrix {
	if R.gap {
		return nil
	}
	return R.Pos
}
func (R *Res) Letter() byte            { return R.Code }
func (R *Res) Serial() int             { return R.Num }
func (R *Res) Gap() bool               { return R.gap }
func (R *Res) GroupID() int            { return R.gid }
func (R *Res) SetGroupID(gid int)      { R.gid = gid }
func (R *Res) Aligned() bool           { return R.aligned }
func (R *Res) SetAligned(aligned bool) { R.aligned = aligned }

// ConnectedTo returns true if R and other are bonded.
func (R *Res) ConnectedTo(other Residue) bool {
	o, ok := other.(*Res)
	if !ok || o == nil {
		return false
	}
	for _, v := range R.bonds {
		if v == o {
			return true
		}
	}
	return false
}

// Bond bonds R and other. Does nothing if they are the same residue, or
// are already bonded, or if one of them is a gap.
func (R *Res) Bond(other *Res) {
	if other == nil || R == other || R.gap || other.gap || R.ConnectedTo(other) {
		return
	}
	R.bonds = append(R.bonds, other)
	other.bonds = append(other.bonds, R)
}

func (R *Res) String() string {
	if R.gap {
		return "gap"
	}
	return fmt.Sprintf("%c%d", R.Code, R.Num)
}

// SimpleChain is a chain of Res. It implements GapChain.
type SimpleChain struct {
	Id  byte
	Res []*Res
}

// NewChain builds a chain with id from a sequence of one-letter
// codes and a matrix with the coordinates of one representative atom
// per residue. Residues are numbered from first on. coords can be nil,
// otherwise it must have one vector per letter in seq.
func NewChain(id byte, seq string, first int, coords *v3.Matrix) (*SimpleChain, error) {
	if coords != nil && coords.NVecs() != len(seq) {
		return nil, CError{fmt.Sprintf("%d residues but %d coordinates", len(seq), coords.NVecs()), []string{"NewChain"}, true}
	}
	C := &SimpleChain{Id: id, Res: make([]*Res, 0, len(seq))}
	for i := 0; i < len(seq); i++ {
		var pos *v3.Matrix
		if coords != nil {
			pos = v3.Zeros(1)
			pos.Copy(coords.VecView(i))
		}
		C.Res = append(C.Res, NewRes(seq[i], first+i, pos))
	}
	return C, nil
}

func (C *SimpleChain) ID() byte { return C.Id }
func (C *SimpleChain) Len() int { return len(C.Res) }

// Residue returns the ith residue of the chain. Panics if out of range.
func (C *SimpleChain) Residue(i int) Residue {
	return C.Res[i]
}

// InsertGap puts a gap placeholder at position i.
// i can be equal to the length of the chain, to append a gap.
func (C *SimpleChain) InsertGap(i int) {
	if i < 0 || i > len(C.Res) {
		panic(fmt.Sprintf("InsertGap: position %d out of range [0,%d]", i, len(C.Res)))
	}
	C.Res = append(C.Res, nil)
	copy(C.Res[i+1:], C.Res[i:])
	C.Res[i] = NewGap()
}

// RemoveGaps deletes all gap placeholders in the chain.
func (C *SimpleChain) RemoveGaps() {
	ret := C.Res[:0]
	for _, v := range C.Res {
		if !v.gap {
			ret = append(ret, v)
		}
	}
	for i := len(ret); i < len(C.Res); i++ {
		C.Res[i] = nil
	}
	C.Res = ret
}

// Sequence returns the one-letter sequence of C, with GapLetter for
// the gap placeholders.
func (C *SimpleChain) Sequence() string {
	return Sequence(C)
}

// Sequence returns the one-letter sequence of any chain, with GapLetter for
// the gap placeholders.
func Sequence(C Chain) string {
	var b strings.Builder
	for i := 0; i < C.Len(); i++ {
		r := C.Residue(i)
		if r.Gap() {
			b.WriteByte(GapLetter)
			continue
		}
		b.WriteByte(r.Letter())
	}
	return b.String()
}

// CountResidues returns the number of non-gap residues in the chains.
func CountResidues(chains ...Chain) int {
	ret := 0
	for _, c := range chains {
		for i := 0; i < c.Len(); i++ {
			if !c.Residue(i).Gap() {
				ret++
			}
		}
	}
	return ret
}

// Chains returns the chains in C as a slice of Chain.
func Chains(C []*SimpleChain) []Chain {
	ret := make([]Chain, len(C))
	for i, v := range C {
		ret[i] = v
	}
	return ret
}
