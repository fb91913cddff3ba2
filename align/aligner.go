/*
 * aligner.go, part of gohinge.
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

/*Package align performs global sequence alignments with the Needleman-Wunsch
algorithm and affine gap penalties, and writes the resulting gaps into chains,
so they become co-indexed.

Gaps before the first, and after the last, aligned residue of either sequence
are not penalized.
*/
package align

import (
	"fmt"
	"log"
	"strings"

	"github.com/andrew-torda/matrix"
	hinge "github.com/rmera/gohinge"
	"github.com/rmera/gohinge/pairs"
)

// Result contains an alignment of two sequences.
type Result struct {
	Seq1, Seq2 string //aligned part of both sequences, with '-' for gaps.
	Len1, Len2 int    //lengths of the input sequences, without gaps.
	Length     int    //length of the aligned part.
	Identical  int
	Positive   int //number of aligned residue pairs with positive substitution score.
	Gaps       int
	Score      int //-1 if no alignment was performed.

	//Columns contains one pair per alignment column, from the first residue
	//to the last one of both sequences. The objects of each pair are the indexes of the
	//residues in the (gap-less) input sequences, or pairs.None for gaps. Aux holds the
	//substitution score of the column.
	Columns *pairs.List[int]
	First   int //handle of the first column.
}

func emptyResult() *Result {
	return &Result{Score: -1, Columns: pairs.New[int](0), First: pairs.None}
}

// Empty returns true if R contains no alignment.
func (R *Result) Empty() bool {
	return R == nil || R.First == pairs.None
}

func (R *Result) String() string {
	if R.Empty() {
		return "No alignment"
	}
	return fmt.Sprintf("Score: %d Length: %d Identical: %d Positive: %d Gaps: %d\n%s\n%s",
		R.Score, R.Length, R.Identical, R.Positive, R.Gaps, R.Seq1, R.Seq2)
}

// Aligner aligns pairs of sequences. It keeps its work arrays between calls, so
// a given Aligner should not be used concurrently. Different Aligners are independent.
type Aligner struct {
	O      *Options
	pscore matrix.FMatrix2d
	score  []int32
	tx, ty []int32
}

// NewAligner returns an Aligner with the options O. If O is nil, DefaultOptions are used.
func NewAligner(O *Options) *Aligner {
	if O == nil {
		O = DefaultOptions()
	}
	return &Aligner{O: O}
}

func (A *Aligner) resize(n1, n2 int) {
	A.pscore.Resize(n1, n2)
	n := (n1 + 1) * (n2 + 1)
	if cap(A.score) < n {
		A.score = make([]int32, n)
		A.tx = make([]int32, n)
		A.ty = make([]int32, n)
	}
	A.score = A.score[:n]
	A.tx = A.tx[:n]
	A.ty = A.ty[:n]
}

// Align aligns seq1 and seq2, given as one-letter codes. Gap letters in the
// input are not skipped, use AlignChains for sequences with gaps.
// If either sequence is empty, the returned Result is empty, with a Score of -1.
func (A *Aligner) Align(seq1, seq2 []byte) *Result {
	n1, n2 := len(seq1), len(seq2)
	if n1 == 0 || n2 == 0 {
		log.Printf("align: Can't align empty sequences (lengths %d and %d)", n1, n2)
		return emptyResult()
	}
	S := A.O.subMatrix()
	gopen, gext := int32(A.O.gapOpen), int32(A.O.gapExtend)
	A.resize(n1, n2)
	ps := A.pscore.Mat
	for i, c1 := range seq1 {
		for j, c2 := range seq2 {
			ps[i][j] = float32(S.Score(c1, c2))
		}
	}
	w := n2 + 1
	at := func(i, j int) int { return i*w + j }
	score, tx, ty := A.score, A.tx, A.ty
	//A negative trace means a gap is open in that direction. The
	//first row and column hold free leading gaps.
	score[0], tx[0], ty[0] = 0, 0, 0
	for i := 1; i <= n1; i++ {
		score[at(i, 0)] = 0
		tx[at(i, 0)] = int32(-(i - 1))
		ty[at(i, 0)] = 0
	}
	for j := 1; j <= n2; j++ {
		score[at(0, j)] = 0
		tx[at(0, j)] = 0
		ty[at(0, j)] = int32(-(j - 1))
	}
	for i := 1; i <= n1; i++ {
		im := i - 1
		for j := 1; j <= n2; j++ {
			jm := j - 1
			diag := score[at(im, jm)] + int32(ps[im][jm])
			left := score[at(im, j)]
			up := score[at(i, jm)]
			//trailing gaps are free, too.
			if j != n2 {
				if tx[at(im, j)] < 0 {
					left += gext
				} else {
					left += gopen
				}
			}
			if i != n1 {
				if ty[at(i, jm)] < 0 {
					up += gext
				} else {
					up += gopen
				}
			}
			c := at(i, j)
			switch {
			case diag >= left && diag >= up:
				score[c], tx[c], ty[c] = diag, int32(im), int32(jm)
			case left >= diag && left >= up:
				score[c], tx[c], ty[c] = left, int32(-im), int32(j)
			default:
				score[c], tx[c], ty[c] = up, int32(i), int32(-jm)
			}
		}
	}
	return A.traceback(seq1, seq2)
}

func abs32(i int32) int {
	if i < 0 {
		return int(-i)
	}
	return int(i)
}

func (A *Aligner) traceback(seq1, seq2 []byte) *Result {
	n1, n2 := len(seq1), len(seq2)
	w := n2 + 1
	ps := A.pscore.Mat
	R := &Result{Len1: n1, Len2: n2, Columns: pairs.New[int](n1 + n2), First: pairs.None}
	var ali1, ali2 []byte
	i1, i2 := n1, n2
	R.Score = int(A.score[i1*w+i2])
	new1, new2 := abs32(A.tx[i1*w+i2]), abs32(A.ty[i1*w+i2])
	for new1 != i1 || new2 != i2 {
		i1m, i2m := i1-1, i2-1
		o1, o2 := pairs.None, pairs.None
		if new1 != i1 {
			o1 = i1m
		}
		if new2 != i2 {
			o2 = i2m
		}
		col := R.Columns.Add(o1, o2, o1 != pairs.None && o2 != pairs.None)
		if R.First != pairs.None {
			R.Columns.InsertBefore(R.First, col)
		}
		R.First = col
		if i1m >= 0 && i2m >= 0 {
			nongap := i1m == new1 && i2m == new2
			if nongap || R.Length > 0 {
				R.Length++
				c1, c2 := seq1[i1m], seq2[i2m]
				if nongap {
					sc := ps[i1m][i2m]
					R.Columns.At(col).Aux = sc
					if c1 == c2 {
						R.Identical++
					}
					if sc > 0 {
						R.Positive++
					}
				} else {
					R.Gaps++
					if new1 == i1 {
						c1 = hinge.GapLetter
					}
					if new2 == i2 {
						c2 = hinge.GapLetter
					}
				}
				ali1 = append(ali1, c1)
				ali2 = append(ali2, c2)
			}
		}
		i1, i2 = new1, new2
		new1, new2 = abs32(A.tx[i1*w+i2]), abs32(A.ty[i1*w+i2])
	}
	R.Seq1 = reverse(ali1)
	R.Seq2 = reverse(ali2)
	return R
}

func reverse(b []byte) string {
	var s strings.Builder
	s.Grow(len(b))
	for i := len(b) - 1; i >= 0; i-- {
		s.WriteByte(b[i])
	}
	return s.String()
}

// ChainLetters returns the one-letter codes of the residues of C that are not gaps.
func ChainLetters(C hinge.Chain) []byte {
	ret := make([]byte, 0, C.Len())
	for i := 0; i < C.Len(); i++ {
		if r := C.Residue(i); !r.Gap() {
			ret = append(ret, r.Letter())
		}
	}
	return ret
}

// AlignChains aligns the sequences of the residues of c1 and c2, skipping
// any gaps they contain.
func (A *Aligner) AlignChains(c1, c2 hinge.Chain) *Result {
	if c1 == nil || c2 == nil {
		log.Printf("align: Can't align a nil chain")
		return emptyResult()
	}
	return A.Align(ChainLetters(c1), ChainLetters(c2))
}

// ApplyToChains removes all gaps in c1 and c2, and inserts new ones according to the alignment
// R, which must come from the sequences of c1 and c2. After this, both chains have the same length
// and residues with the same index are aligned. Each residue is flagged as aligned if its counterpart is
// not a gap.
func ApplyToChains(R *Result, c1, c2 hinge.GapChain) error {
	if R.Empty() {
		return Error{"Empty alignment", []string{"ApplyToChains"}, true}
	}
	c1.RemoveGaps()
	c2.RemoveGaps()
	if c1.Len() != R.Len1 || c2.Len() != R.Len2 {
		return Error{fmt.Sprintf("Chains with %d and %d residues, alignment of sequences with %d and %d", c1.Len(), c2.Len(), R.Len1, R.Len2), []string{"ApplyToChains"}, true}
	}
	k := 0
	R.Columns.Walk(R.First, func(_ int, p *pairs.Pair[int]) bool {
		if p.Obj1 == pairs.None {
			c1.InsertGap(k)
		}
		if p.Obj2 == pairs.None {
			c2.InsertGap(k)
		}
		k++
		return true
	})
	SetAligned(c1, c2)
	return nil
}

// SetAligned flags each residue of c1 and c2 as aligned if the residue with the same
// index in the other chain exists and is not a gap.
func SetAligned(c1, c2 hinge.Chain) {
	n1, n2 := c1.Len(), c2.Len()
	for i := 0; i < n1 || i < n2; i++ {
		switch {
		case i >= n1:
			c2.Residue(i).SetAligned(false)
		case i >= n2:
			c1.Residue(i).SetAligned(false)
		default:
			r1, r2 := c1.Residue(i), c2.Residue(i)
			r1.SetAligned(!r2.Gap())
			r2.SetAligned(!r1.Gap())
		}
	}
}

//Errors

// Error is the error type for the align package.
type Error struct {
	message  string
	deco     []string
	critical bool
}

func (err Error) Error() string { return err.message }

// Decorate will add the dec string to the decoration slice of strings of the error,
// and return the resulting slice.
func (err Error) Decorate(dec string) []string {
	if dec == "" {
		return err.deco
	}
	err.deco = append(err.deco, dec)
	return err.deco
}

// Critical returns whether the error is critical or it can be ignored
func (err Error) Critical() bool { return err.critical }
