/*
 * analyzer.go, part of gohinge.
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

/*Package motion describes the differences between two conformations whose rigid blocks
are known: per-residue displacements, the motion of each block relative to another one, as a screw,
interpolations between both conformations, and the tree of which block moves relative to which.

All the transformations are fitted in coordinates referred to the centroid of the first conformation,
and map the second conformation onto the first one.
*/
package motion

import (
	"fmt"
	"io"
	"log"

	hinge "github.com/rmera/gohinge"
	"github.com/rmera/gohinge/kabsch"
	v3 "github.com/rmera/gohinge/v3"
)

// Analyzer holds the global and per-block superpositions of the two
// conformations in a Correspondence.
type Analyzer struct {
	C      *hinge.Correspondence
	Center *v3.Matrix //centroid of the first conformation.

	//Transforms[0] superimposes the whole structures, Transforms[r] superimposes
	//block r. It is nil for blocks with fewer than 3 usable pairs.
	Transforms []*kabsch.Transform

	handles []int      //pairs with coordinates on both sides, in chain order.
	c1, c2  *v3.Matrix //their coordinates.
}

// NewAnalyzer fits the global and block transformations for C. It returns nil, and logs
// a warning, if C has fewer than 3 pairs of interest with coordinates on both sides.
func NewAnalyzer(C *hinge.Correspondence) *Analyzer {
	if C == nil {
		log.Printf("motion: No correspondence given")
		return nil
	}
	c1, c2, used := C.Coords(C.Interesting(C.First))
	if len(used) < kabsch.MinPoints {
		log.Printf("motion: Not enough aligned residues: %d", len(used))
		return nil
	}
	A := &Analyzer{C: C, handles: used, c1: c1, c2: c2}
	A.Center = hinge.Centroid(c1)
	nrigids := C.MaxGID()
	A.Transforms = make([]*kabsch.Transform, nrigids+1)
	A.Transforms[0] = kabsch.Fit(c1, c2, A.Center)
	for r := 1; r <= nrigids; r++ {
		T := C.Fit(C.Group(r), A.Center)
		if !T.Valid() {
			log.Printf("motion: Not enough aligned residues in block %d: %d", r, T.N)
			continue
		}
		A.Transforms[r] = T
	}
	return A
}

// NewAnalyzerChains builds the Correspondence of chains1 and chains2 and returns
// an Analyzer for it.
func NewAnalyzerChains(chains1, chains2 []hinge.Chain) (*Analyzer, error) {
	C, err := hinge.Correspond(chains1, chains2)
	if err != nil {
		return nil, err
	}
	A := NewAnalyzer(C)
	if A == nil {
		return nil, Error{"Not enough aligned residues", []string{"NewAnalyzerChains"}, true}
	}
	return A, nil
}

// NBlocks returns the number of rigid blocks.
func (A *Analyzer) NBlocks() int {
	return len(A.Transforms) - 1
}

// NResidues returns the number of residue pairs the Analyzer works with,
// which is the number of rows in the displacement matrices.
func (A *Analyzer) NResidues() int {
	return len(A.handles)
}

// Handles returns the handles of the pairs, in the Correspondence,
// that correspond to each row of the displacement matrices.
func (A *Analyzer) Handles() []int {
	return append([]int(nil), A.handles...)
}

// Block returns the block id of the pair in row i of the displacement matrices.
func (A *Analyzer) Block(i int) int {
	return A.C.At(A.handles[i]).GID
}

// transformFor returns the transformation for the pair in row i, the one of its
// block if that exists and perBlock is true, or the global one otherwise.
func (A *Analyzer) transformFor(i int, perBlock bool) *kabsch.Transform {
	if perBlock {
		if r := A.Block(i); r > 0 && r < len(A.Transforms) && A.Transforms[r] != nil {
			return A.Transforms[r]
		}
	}
	return A.Transforms[0]
}

// Displacement returns, for each pair, the vector from the first-conformation residue to the
// superimposed second-conformation one. The superposition is the global one or, if perBlock is true,
// that of the block the residue belongs to. Residues without a block use the global superposition.
func (A *Analyzer) Displacement(perBlock bool) *v3.Matrix {
	ret := v3.Zeros(len(A.handles))
	for i := range A.handles {
		d := ret.VecView(i)
		d.Copy(A.c2.VecView(i))
		A.transformFor(i, perBlock).ApplyTo(d)
		d.Sub(d, A.c1.VecView(i))
	}
	return ret
}

// Superimposed returns the coordinates of the second conformation, superimposed on the first one
// globally or, if perBlock is true, block by block.
func (A *Analyzer) Superimposed(perBlock bool) *v3.Matrix {
	ret := A.Displacement(perBlock)
	ret.Add(ret, A.c1)
	return ret
}

// First returns a copy of the coordinates of the first conformation, one row
// per pair, in the order of the displacement matrices.
func (A *Analyzer) First() *v3.Matrix {
	ret := v3.Zeros(A.c1.NVecs())
	ret.Copy(A.c1)
	return ret
}

// Trace returns the first-conformation residues of the rows of the displacement
// matrices, with their chain ids, for writing coordinates such as those from Frames.
func (A *Analyzer) Trace() *hinge.Trace {
	ids := make(map[hinge.Residue]byte)
	for _, c := range A.C.Chains1 {
		for i := 0; i < c.Len(); i++ {
			ids[c.Residue(i)] = c.ID()
		}
	}
	T := &hinge.Trace{Res: make([]hinge.Residue, len(A.handles)), Chains: make([]byte, len(A.handles))}
	for i, h := range A.handles {
		r := A.C.At(h).Obj1
		T.Res[i] = r
		T.Chains[i] = ids[r]
	}
	return T
}

// WriteDisplacement writes D to w, one residue per line, each component
// with the format %8.4f.
func WriteDisplacement(w io.Writer, D *v3.Matrix) error {
	for i := 0; i < D.NVecs(); i++ {
		if _, err := fmt.Fprintf(w, "%8.4f %8.4f %8.4f\n", D.At(i, 0), D.At(i, 1), D.At(i, 2)); err != nil {
			return Error{err.Error(), []string{"WriteDisplacement"}, true}
		}
	}
	return nil
}

//Errors

// Error is the error type for the motion package.
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
