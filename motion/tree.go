/*
 * tree.go, part of gohinge.
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
	"fmt"
	"log"
	"math"
	"strings"

	hinge "github.com/rmera/gohinge"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/traverse"
)

// Tree tells which block moves relative to which. Block ids are used as indexes,
// so the element 0 of the slices is not used.
type Tree struct {
	//Norms[r1][r2] is the length of the mean displacement of the residues of block r2
	//when the structures are superimposed on block r1.
	Norms [][]float64
	//Angles[r1][r2] is the rotation angle of block r2 relative to block r1, in radians.
	Angles [][]float64

	Possible *Graph   //blocks that are neighbours in some chain.
	Motions  *Graph   //directed, from the fixed block to the one moving relative to it.
	Root     int      //the first block fixed.
	Parent   []int    //block relative to which each block moves, 0 for the root and for blocks not in the tree.
	Order    [][2]int //fixed and moving block, in the order the motions were assigned.
}

// MotionTree builds the tree of relative motions. Starting from the first block with a
// transformation (the largest one, for blocks numbered by rigid.Finder), it repeatedly takes,
// among the pairs of neighbouring blocks where one is already in the tree and the other is not,
// the one where the second block moves the least when the structures are superimposed on the
// first, and adds the second block to the tree.
// It returns nil, and logs a warning, if no block has a transformation.
func (A *Analyzer) MotionTree() *Tree {
	n := A.NBlocks()
	T := &Tree{Parent: make([]int, n+1), Possible: &Graph{}, Motions: &Graph{Directed: true}}
	for r := 1; r <= n; r++ {
		if A.Transforms[r] == nil {
			continue
		}
		if T.Root == 0 {
			T.Root = r
		}
		size := 0
		for i := range A.handles {
			if A.Block(i) == r {
				size++
			}
		}
		T.Possible.Blocks = append(T.Possible.Blocks, &Block{Id: r, Size: size})
		T.Motions.Blocks = append(T.Motions.Blocks, &Block{Id: r, Size: size})
	}
	if T.Root == 0 {
		log.Printf("motion: No blocks to build a motion tree")
		return nil
	}
	A.relativeNorms(T)
	A.possibleMotions(T)
	fixed := make([]bool, n+1)
	fixed[T.Root] = true
	for nfixed := 1; nfixed < len(T.Motions.Blocks); nfixed++ {
		fix, move := T.closest(fixed, true)
		if move < 0 {
			log.Printf("motion: Blocks not connected to the motion tree, assigning by displacement only")
			fix, move = T.closest(fixed, false)
		}
		fixed[move] = true
		T.Parent[move] = fix
		T.Order = append(T.Order, [2]int{fix, move})
		T.Motions.Connect(fix, move, T.Norms[fix][move])
	}
	return T
}

// closest returns the fixed and not fixed blocks with the smallest norm between them. If
// neighbours is true, only blocks linked in T.Possible are considered.
func (T *Tree) closest(fixed []bool, neighbours bool) (int, int) {
	fix, move := -1, -1
	min := math.Inf(1)
	for _, b1 := range T.Motions.Blocks {
		if !fixed[b1.Id] {
			continue
		}
		for _, b2 := range T.Motions.Blocks {
			if fixed[b2.Id] {
				continue
			}
			if neighbours && !T.Possible.HasEdgeBetween(b1.ID(), b2.ID()) {
				continue
			}
			if v := T.Norms[b1.Id][b2.Id]; v < min || move < 0 {
				min = v
				fix, move = b1.Id, b2.Id
			}
		}
	}
	return fix, move
}

func (A *Analyzer) relativeNorms(T *Tree) {
	n := A.NBlocks()
	T.Norms = make([][]float64, n+1)
	T.Angles = make([][]float64, n+1)
	for r := range T.Norms {
		T.Norms[r] = make([]float64, n+1)
		T.Angles[r] = make([]float64, n+1)
	}
	dx := make([][3]float64, 0, len(A.handles))
	for r1 := 1; r1 <= n; r1++ {
		t1 := A.Transforms[r1]
		for r2 := 1; r2 <= n; r2++ {
			if r1 == r2 {
				continue
			}
			if t1 == nil || A.Transforms[r2] == nil {
				T.Norms[r1][r2] = math.Inf(1)
				continue
			}
			dx = dx[:0]
			for i := range A.handles {
				if A.Block(i) != r2 {
					continue
				}
				x := A.c2.VecView(i)
				x = t1.Apply(x)
				x.Sub(A.c1.VecView(i), x)
				dx = append(dx, [3]float64{x.At(0, 0), x.At(0, 1), x.At(0, 2)})
			}
			mean := make([]float64, 3)
			col := make([]float64, len(dx))
			for j := 0; j < 3; j++ {
				for k := range dx {
					col[k] = dx[k][j]
				}
				mean[j] = floats.Sum(col) / float64(len(dx))
			}
			T.Norms[r1][r2] = floats.Norm(mean, 2)
			if S := A.Relative(r1, r2); S != nil {
				T.Angles[r1][r2] = math.Abs(S.Angle)
			}
		}
	}
}

// possibleMotions links the blocks that follow each other in some chain, skipping
// the residues that are in no block.
func (A *Analyzer) possibleMotions(T *Tree) {
	for _, chains := range [][]hinge.Chain{A.C.Chains1, A.C.Chains2} {
		for _, c := range chains {
			prev := 0
			for i := 0; i < c.Len(); i++ {
				r := c.Residue(i)
				if r.Gap() || r.GroupID() <= 0 {
					continue
				}
				id := r.GroupID()
				if prev != 0 && id != prev {
					T.Possible.Connect(prev, id, T.norm(prev, id))
				}
				prev = id
			}
		}
	}
}

func (T *Tree) norm(r1, r2 int) float64 {
	if r1 >= len(T.Norms) || r2 >= len(T.Norms) {
		return math.Inf(1)
	}
	return math.Min(T.Norms[r1][r2], T.Norms[r2][r1])
}

// Levels returns the blocks of the tree grouped by their depth, from
// the root (depth 0) on.
func (T *Tree) Levels() [][]int {
	ret := make([][]int, 0)
	var bf traverse.BreadthFirst
	bf.Walk(T.Motions, T.Motions.Node(int64(T.Root)), func(n graph.Node, d int) bool {
		for len(ret) <= d {
			ret = append(ret, nil)
		}
		ret[d] = append(ret[d], int(n.ID()))
		return false
	})
	return ret
}

// String returns one line per assigned motion, with the ids of the fixed and the moving blocks.
func (T *Tree) String() string {
	var b strings.Builder
	for _, m := range T.Order {
		fmt.Fprintf(&b, "%d %d\n", m[0], m[1])
	}
	return b.String()
}
