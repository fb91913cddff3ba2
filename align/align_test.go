/*
 * align_test.go, part of gohinge.
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

package align

import (
	"testing"

	hinge "github.com/rmera/gohinge"
	"github.com/rmera/gohinge/pairs"
)

func TestAlign(Te *testing.T) {
	cases := []struct {
		s1, s2     string
		score      int
		length     int
		ident      int
		gaps       int
		ali1, ali2 string
	}{
		{"A", "A", 4, 1, 1, 0, "A", "A"},
		{"MKVLAAGIC", "MKVLAAGIC", 45, 9, 9, 0, "MKVLAAGIC", "MKVLAAGIC"},
		//leading and trailing gaps are free, and not part of the aligned sequences.
		{"AAAWWWWW", "WWWWW", 55, 5, 5, 0, "WWWWW", "WWWWW"},
		{"WWWWW", "WWWWWAAA", 55, 5, 5, 0, "WWWWW", "WWWWW"},
		//one internal gap costs the opening penalty.
		{"WWWWGWWWW", "WWWWWWWW", 78, 9, 8, 1, "WWWWGWWWW", "WWWW-WWWW"},
	}
	A := NewAligner(nil)
	for _, c := range cases {
		R := A.Align([]byte(c.s1), []byte(c.s2))
		if R.Score != c.score {
			Te.Errorf("%s/%s: score %d, expected %d", c.s1, c.s2, R.Score, c.score)
		}
		if R.Length != c.length || R.Identical != c.ident || R.Gaps != c.gaps {
			Te.Errorf("%s/%s: length %d identical %d gaps %d, expected %d %d %d", c.s1, c.s2,
				R.Length, R.Identical, R.Gaps, c.length, c.ident, c.gaps)
		}
		if R.Seq1 != c.ali1 || R.Seq2 != c.ali2 {
			Te.Errorf("%s/%s: aligned\n%s\n%s\nexpected\n%s\n%s", c.s1, c.s2, R.Seq1, R.Seq2, c.ali1, c.ali2)
		}
		if R.Len1 != len(c.s1) || R.Len2 != len(c.s2) {
			Te.Errorf("%s/%s: wrong input lengths %d %d", c.s1, c.s2, R.Len1, R.Len2)
		}
	}
}

func TestColumns(Te *testing.T) {
	R := NewAligner(nil).Align([]byte("AAAWWWWW"), []byte("WWWWW"))
	n1, n2, both := 0, 0, 0
	R.Columns.Walk(R.First, func(_ int, p *pairs.Pair[int]) bool {
		if p.Obj1 != pairs.None {
			if p.Obj1 != n1 {
				Te.Errorf("Column for residue %d of sequence 1 out of order", p.Obj1)
			}
			n1++
		}
		if p.Obj2 != pairs.None {
			n2++
		}
		if p.Interest {
			both++
			if p.Aux != 11 {
				Te.Errorf("W/W column with score %g", p.Aux)
			}
		}
		return true
	})
	if n1 != 8 || n2 != 5 || both != 5 {
		Te.Errorf("Columns cover %d and %d residues, %d aligned, expected 8, 5, 5", n1, n2, both)
	}
}

func TestEmpty(Te *testing.T) {
	A := NewAligner(nil)
	for _, s := range [][2]string{{"", "AAA"}, {"KK", ""}, {"", ""}} {
		R := A.Align([]byte(s[0]), []byte(s[1]))
		if R.Score != -1 || !R.Empty() {
			Te.Errorf("Aligning %q and %q should give an empty result", s[0], s[1])
		}
	}
	if R := A.AlignChains(nil, nil); !R.Empty() {
		Te.Error("Aligning nil chains should give an empty result")
	}
}

func TestOptions(Te *testing.T) {
	O := DefaultOptions()
	if O.GapOpen(5) != DefaultGapOpen || O.GapExtend(1) != DefaultGapExtend {
		Te.Error("Positive penalties should be rejected")
	}
	if O.GapOpen(-12) != -12 || O.GapExtend(-2) != -2 {
		Te.Error("Negative penalties should be accepted")
	}
	if O.Matrix("NOTAMATRIX") != DefaultMatrix {
		Te.Error("Unknown matrices should be rejected")
	}
	if O.Matrix(" PAM30 ") != "PAM30" {
		Te.Error("PAM30 should be accepted")
	}
	R := NewAligner(O).Align([]byte("A"), []byte("A"))
	if R.Score != 6 {
		Te.Errorf("A/A with PAM30 scored %d, expected 6", R.Score)
	}
	b62, _ := Matrix("BLOSUM62")
	if b62.Score('A', '#') != b62.Score('A', '*') {
		Te.Error("Unknown letters should score as *")
	}
	for _, name := range MatrixNames() {
		m, _ := Matrix(name)
		for i := 0; i < len(Letters); i++ {
			for j := 0; j < i; j++ {
				if m[i][j] != m[j][i] {
					Te.Errorf("%s is not symmetric at %c/%c", name, Letters[i], Letters[j])
				}
			}
		}
	}
}

func TestApplyToChains(Te *testing.T) {
	c1, _ := hinge.NewChain('A', "GWWWWW", 1, nil)
	c2, _ := hinge.NewChain('B', "WWWWWK", 1, nil)
	//stale gaps must be removed first.
	c1.InsertGap(3)
	A := NewAligner(nil)
	R := A.AlignChains(c1, c2)
	if R.Score != 55 {
		Te.Errorf("Score %d, expected 55", R.Score)
	}
	if err := ApplyToChains(R, c1, c2); err != nil {
		Te.Fatal(err)
	}
	if s1, s2 := c1.Sequence(), c2.Sequence(); s1 != "GWWWWW-" || s2 != "-WWWWWK" {
		Te.Errorf("Chains after alignment:\n%s\n%s", s1, s2)
	}
	aligned := []bool{false, true, true, true, true, true, false}
	for i, a := range aligned {
		if c1.Residue(i).Gap() {
			continue
		}
		if c1.Residue(i).Aligned() != a {
			Te.Errorf("Residue %d of chain 1 has aligned=%v", i, !a)
		}
	}
	if c2.Residue(6).Aligned() {
		Te.Error("The last residue of chain 2 should not be aligned")
	}
	short, _ := hinge.NewChain('C', "WW", 1, nil)
	if err := ApplyToChains(R, short, c2); err == nil {
		Te.Error("Applying an alignment to the wrong chains should fail")
	}
}
