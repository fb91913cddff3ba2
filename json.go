/*
 * json.go, part of gohinge.
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
	"encoding/json"
	"fmt"
	"io"

	v3 "github.com/rmera/gohinge/v3"
)

// JSONChain is the JSON description of a chain. Sequence can contain GapLetter for
// gap placeholders. CA, if given, has one entry per letter, with the coordinates of the
// representative atom, or null if the atom is missing. Groups, if given, has one group id
// per letter. Residues are numbered from First on, gaps are not numbered.
type JSONChain struct {
	ID       string        `json:"id"`
	Sequence string        `json:"sequence"`
	First    int           `json:"first"`
	CA       []*[3]float64 `json:"ca,omitempty"`
	Groups   []int         `json:"groups,omitempty"`
}

// JSONPair describes two conformations of the same chains.
type JSONPair struct {
	Name1   string       `json:"name1,omitempty"`
	Name2   string       `json:"name2,omitempty"`
	Chains1 []*JSONChain `json:"chains1"`
	Chains2 []*JSONChain `json:"chains2"`
}

// Chain builds the chain described by J, and bonds consecutive residues with ConnectCA.
func (J *JSONChain) Chain() (*SimpleChain, error) {
	n := len(J.Sequence)
	if len(J.ID) > 1 {
		return nil, CError{fmt.Sprintf("Chain id %q is longer than one letter", J.ID), []string{"JSONChain.Chain"}, true}
	}
	if J.CA != nil && len(J.CA) != n {
		return nil, CError{fmt.Sprintf("Chain %s: %d residues but %d coordinates", J.ID, n, len(J.CA)), []string{"JSONChain.Chain"}, true}
	}
	if J.Groups != nil && len(J.Groups) != n {
		return nil, CError{fmt.Sprintf("Chain %s: %d residues but %d group ids", J.ID, n, len(J.Groups)), []string{"JSONChain.Chain"}, true}
	}
	id := byte(' ')
	if len(J.ID) == 1 {
		id = J.ID[0]
	}
	C := &SimpleChain{Id: id, Res: make([]*Res, 0, n)}
	num := J.First
	for i := 0; i < n; i++ {
		if J.Sequence[i] == GapLetter {
			C.Res = append(C.Res, NewGap())
			continue
		}
		var pos *v3.Matrix
		if J.CA != nil && J.CA[i] != nil {
			c := J.CA[i]
			pos = v3.Vec(c[0], c[1], c[2])
		}
		r := NewRes(J.Sequence[i], num, pos)
		if J.Groups != nil {
			r.gid = J.Groups[i]
		}
		C.Res = append(C.Res, r)
		num++
	}
	ConnectCA(C)
	return C, nil
}

// ChainJSON returns the JSON description of C.
func ChainJSON(C Chain) *JSONChain {
	J := &JSONChain{ID: string(C.ID()), First: 1}
	seq := make([]byte, C.Len())
	J.CA = make([]*[3]float64, C.Len())
	J.Groups = make([]int, C.Len())
	first := true
	for i := range seq {
		r := C.Residue(i)
		if r.Gap() {
			seq[i] = GapLetter
			continue
		}
		seq[i] = r.Letter()
		if first {
			J.First = r.Serial()
			first = false
		}
		J.Groups[i] = r.GroupID()
		if c := r.Coords(); c != nil {
			J.CA[i] = &[3]float64{c.At(0, 0), c.At(0, 1), c.At(0, 2)}
		}
	}
	J.Sequence = string(seq)
	return J
}

// NewJSONPair returns the JSON description of two conformations.
func NewJSONPair(name1, name2 string, chains1, chains2 []Chain) *JSONPair {
	J := &JSONPair{Name1: name1, Name2: name2}
	for _, c := range chains1 {
		J.Chains1 = append(J.Chains1, ChainJSON(c))
	}
	for _, c := range chains2 {
		J.Chains2 = append(J.Chains2, ChainJSON(c))
	}
	return J
}

// Chains builds both sets of chains described in J.
func (J *JSONPair) Chains() ([]*SimpleChain, []*SimpleChain, error) {
	if len(J.Chains1) != len(J.Chains2) {
		return nil, nil, CError{fmt.Sprintf("Different number of chains: %d and %d", len(J.Chains1), len(J.Chains2)), []string{"JSONPair.Chains"}, true}
	}
	build := func(jc []*JSONChain) ([]*SimpleChain, error) {
		ret := make([]*SimpleChain, 0, len(jc))
		for _, v := range jc {
			c, err := v.Chain()
			if err != nil {
				return nil, err
			}
			ret = append(ret, c)
		}
		return ret, nil
	}
	c1, err := build(J.Chains1)
	if err != nil {
		err.(CError).Decorate("JSONPair.Chains")
		return nil, nil, err
	}
	c2, err := build(J.Chains2)
	if err != nil {
		err.(CError).Decorate("JSONPair.Chains")
		return nil, nil, err
	}
	return c1, c2, nil
}

// DecodeJSONPair reads a JSONPair from in.
func DecodeJSONPair(in io.Reader) (*JSONPair, error) {
	J := new(JSONPair)
	if err := json.NewDecoder(in).Decode(J); err != nil {
		return nil, CError{err.Error(), []string{"DecodeJSONPair"}, true}
	}
	return J, nil
}

// Encode writes J to out, indented.
func (J *JSONPair) Encode(out io.Writer) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(J); err != nil {
		return CError{err.Error(), []string{"JSONPair.Encode"}, true}
	}
	return nil
}
