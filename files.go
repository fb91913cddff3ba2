/*
 * files.go, part of gohinge.
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
	"bufio"
	"fmt"
	"io"

	v3 "github.com/rmera/gohinge/v3"
)

// A map between 1-letter names for aminoacidic residues and the corresponding 3-letter names.
var one2ThreeLetter = map[byte]string{
	'S': "SER",
	'T': "THR",
	'N': "ASN",
	'Q': "GLN",
	'U': "SEC", //Selenocysteine!
	'C': "CYS",
	'G': "GLY",
	'P': "PRO",
	'A': "ALA",
	'V': "VAL",
	'I': "ILE",
	'L': "LEU",
	'M': "MET",
	'F': "PHE",
	'Y': "TYR",
	'W': "TRP",
	'R': "ARG",
	'H': "HIS",
	'K': "LYS",
	'D': "ASP",
	'E': "GLU",
}

// ThreeLetter returns the 3-letter name of the residue with 1-letter code code, or "UNK".
func ThreeLetter(code byte) string {
	if s, ok := one2ThreeLetter[code]; ok {
		return s
	}
	return "UNK"
}

// Trace is a set of residues with their chain ids, for writing
// their representative atoms.
type Trace struct {
	Res    []Residue
	Chains []byte //one per residue. If nil, all residues are in chain A.
}

// NewTrace returns the Trace with the non-gap residues of chains.
func NewTrace(chains []Chain) *Trace {
	T := &Trace{}
	for _, c := range chains {
		for i := 0; i < c.Len(); i++ {
			r := c.Residue(i)
			if r.Gap() {
				continue
			}
			T.Res = append(T.Res, r)
			T.Chains = append(T.Chains, c.ID())
		}
	}
	return T
}

func (T *Trace) chain(i int) byte {
	if T.Chains == nil {
		return 'A'
	}
	return T.Chains[i]
}

// WritePDB writes frames of the C-alpha trace T to out in PDB format, one
// MODEL per frame. Each frame must have one vector per residue in T. Group ids are
// written in the B-factor column.
func (T *Trace) WritePDB(out io.Writer, frames ...*v3.Matrix) error {
	w := bufio.NewWriter(out)
	fmt.Fprint(w, "REMARK     WRITTEN WITH GOHINGE :-)\n")
	for j, coords := range frames {
		if coords.NVecs() != len(T.Res) {
			return CError{fmt.Sprintf("Frame %d has %d coordinates for %d residues", j, coords.NVecs(), len(T.Res)), []string{"Trace.WritePDB"}, true}
		}
		fmt.Fprintf(w, "MODEL %8d\n", j+1)
		for i, r := range T.Res {
			if i > 0 && T.chain(i) != T.chain(i-1) {
				fmt.Fprintln(w, "TER")
			}
			_, err := fmt.Fprintf(w, "%-6s%5d  %-3s %3s %1c%4d    %8.3f%8.3f%8.3f%6.2f%6.2f          %2s  \n", "ATOM", i+1, "CA", ThreeLetter(r.Letter()), T.chain(i),
				r.Serial(), coords.At(i, 0), coords.At(i, 1), coords.At(i, 2), 1.0, float64(r.GroupID()), "C")
			if err != nil {
				return CError{err.Error(), []string{"Trace.WritePDB"}, true}
			}
		}
		fmt.Fprint(w, "ENDMDL\n")
	}
	fmt.Fprint(w, "END\n")
	if err := w.Flush(); err != nil {
		return CError{err.Error(), []string{"Trace.WritePDB"}, true}
	}
	return nil
}

// WriteXYZ writes frames of the trace T to out, as a multi-frame XYZ file
// where every representative atom is a carbon.
func (T *Trace) WriteXYZ(out io.Writer, frames ...*v3.Matrix) error {
	w := bufio.NewWriter(out)
	for j, coords := range frames {
		if coords.NVecs() != len(T.Res) {
			return CError{fmt.Sprintf("Frame %d has %d coordinates for %d residues", j, coords.NVecs(), len(T.Res)), []string{"Trace.WriteXYZ"}, true}
		}
		fmt.Fprintf(w, "%-4d\n", len(T.Res))
		fmt.Fprintf(w, "Frame %d\n", j+1)
		for i := range T.Res {
			_, err := fmt.Fprintf(w, "%-2s  %8.3f%8.3f%8.3f \n", "C", coords.At(i, 0), coords.At(i, 1), coords.At(i, 2))
			if err != nil {
				return CError{err.Error(), []string{"Trace.WriteXYZ"}, true}
			}
		}
	}
	if err := w.Flush(); err != nil {
		return CError{err.Error(), []string{"Trace.WriteXYZ"}, true}
	}
	return nil
}
