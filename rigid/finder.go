/*
 * finder.go, part of gohinge.
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

/*Package rigid separates two aligned conformations into rigid blocks: sets of residues
whose interresidue distances are conserved, within a tolerance, between both conformations.
The blocks are found one at a time, the largest first, among the residues not yet assigned.
Block ids go from 1 (the largest block) to the number of blocks. Residues in no block have id 0.

Reference:
Abyzov A, Bjornson R, Felipe M, Gerstein M. RigidFinder: a fast and sensitive method to
detect rigid blocks in large macromolecular complexes. Proteins 2010 78:309.
*/
package rigid

import (
	"log"
	"math"
	"sort"
	"time"

	hinge "github.com/rmera/gohinge"
	"github.com/rmera/gohinge/pairs"
	"gonum.org/v1/gonum/floats"
)

// Finder finds the rigid blocks in a Correspondence. All the work arrays
// belong to the Finder, so each Finder should be used by one goroutine at the time.
type Finder struct {
	C       *hinge.Correspondence
	O       *Options
	NRigids int           //number of blocks found by the last search, -1 if none was done.
	Elapsed time.Duration //time spent in the last search.

	n     int       //number of pairs of interest
	order []int     //handles of the pairs of interest, in the current working order.
	delta []float64 //n*n deviations of interresidue distances.
	aver  []float64 //n*n average interresidue distances.
	bad   []bool
	ne    []int32 //lengths of the candidate chains, n*nTrace
	trace []int32 //backpointers of the candidate chains, residue and candidate, n*nTrace*2
	ind   []int
	skip  []bool
}

// NewFinder returns a Finder for the pairs of interest in C, with the options O (DefaultOptions
// if O is nil). The interresidue distances are calculated here, a missing representative atom
// counts as being at distance 0 from everything, and is warned about.
func NewFinder(C *hinge.Correspondence, O *Options) *Finder {
	if O == nil {
		O = DefaultOptions()
	}
	F := &Finder{C: C, O: O, NRigids: -1}
	F.order = C.Interesting(C.First)
	F.n = len(F.order)
	for i, h := range F.order {
		C.At(h).Index = i
	}
	F.calcDistMatrix()
	return F
}

// FindRigids builds the Correspondence of chains1 and chains2, and
// runs a Finder with options O on it.
func FindRigids(chains1, chains2 []hinge.Chain, O *Options) (*Finder, error) {
	C, err := hinge.Correspond(chains1, chains2)
	if err != nil {
		return nil, err
	}
	F := NewFinder(C, O)
	F.Find()
	return F, nil
}

func (F *Finder) calcDistMatrix() {
	n := F.n
	F.delta = make([]float64, n*n)
	F.aver = make([]float64, n*n)
	coords := func(r hinge.Residue) [3]float64 {
		var ret [3]float64
		c := r.Coords()
		if c == nil {
			return [3]float64{math.NaN(), 0, 0}
		}
		for i := 0; i < 3; i++ {
			ret[i] = c.At(0, i)
		}
		return ret
	}
	dist := func(a, b [3]float64) float64 {
		if math.IsNaN(a[0]) || math.IsNaN(b[0]) {
			return 0
		}
		return math.Sqrt((a[0]-b[0])*(a[0]-b[0]) + (a[1]-b[1])*(a[1]-b[1]) + (a[2]-b[2])*(a[2]-b[2]))
	}
	x1 := make([][3]float64, n)
	x2 := make([][3]float64, n)
	for i, h := range F.order {
		p := F.C.At(h)
		x1[i], x2[i] = coords(p.Obj1), coords(p.Obj2)
		if math.IsNaN(x1[i][0]) || math.IsNaN(x2[i][0]) {
			log.Printf("rigid: Missing representative atom in pair %d", i)
		}
	}
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			d1 := dist(x1[i], x1[j])
			d2 := dist(x2[i], x2[j])
			F.delta[i*n+j] = math.Abs(d2 - d1)
			F.delta[j*n+i] = F.delta[i*n+j]
			F.aver[i*n+j] = (d1 + d2) / 2
			F.aver[j*n+i] = F.aver[i*n+j]
		}
	}
}

func (F *Finder) calcFlagMatrix(maxDelta float64) {
	F.bad = make([]bool, len(F.delta))
	for i, d := range F.delta {
		F.bad[i] = d > maxDelta
	}
}

// Find searches for the rigid blocks, assigns their ids to the pairs and to both residues in each pair, and
// returns the number of blocks found. It returns -1 if there are no pairs of interest or if the
// allowed deviation is negative.
func (F *Finder) Find() int {
	maxDelta := F.O.Delta()
	if F.n == 0 || maxDelta < 0 {
		return -1
	}
	start := time.Now()
	minb := F.O.MinBlock()
	F.C.ResetGID()
	F.calcFlagMatrix(maxDelta)
	nt := F.O.NTrace()
	F.ne = make([]int32, F.n*nt)
	F.trace = make([]int32, 2*F.n*nt)
	F.ind = make([]int, F.n)
	F.skip = make([]bool, F.n)

	gid := 0
	found := 0
	for {
		gid++
		F.sortByIndex()
		found = F.findLargest(gid)
		if found < minb {
			break
		}
		if F.O.Refine() {
			F.clearShortFragments(gid)
			found = F.refine(gid)
		}
		if F.O.Cluster() {
			found = F.clusterAll(gid)
		}
		if found < minb {
			break
		}
		//Only done after clustering, which removes the occasional
		//pair far away from the main block.
		found = F.findCompact(gid)
		if found < minb {
			break
		}
		if F.O.Cluster() {
			found = F.clusterAll(gid)
		}
		if found < minb {
			break
		}
	}
	F.NRigids = gid - 1
	F.C.Walk(F.C.First, func(_ int, p *pairs.Pair[hinge.Residue]) bool {
		if p.GID > F.NRigids {
			p.GID = 0
		}
		return true
	})
	//The largest block gets id 1.
	for id1 := 1; id1 <= F.NRigids; id1++ {
		maxid := id1
		maxn := F.C.CountGID(id1)
		for id2 := id1 + 1; id2 <= F.NRigids; id2++ {
			if n := F.C.CountGID(id2); maxn < n {
				maxn = n
				maxid = id2
			}
		}
		if id1 != maxid {
			F.C.SwapGID(id1, maxid)
		}
	}
	F.C.Project()
	F.Elapsed = time.Since(start)
	log.Printf("rigid: %d blocks found in %v", F.NRigids, F.Elapsed)
	return F.NRigids
}

// clusterAll absorbs short gaps and fragments into the block gid, removes the
// short fragments of the block left, and returns the size of the block.
func (F *Finder) clusterAll(gid int) int {
	for gap := 1; gap < F.O.MinBlock(); gap++ {
		F.clusterFragments(gap, gid)
		F.clusterFragments(gap, 0)
	}
	//short fragments can be left within blocks found before.
	F.clearShortFragments(gid)
	return F.C.CountGID(gid)
}

func (F *Finder) sortByIndex() {
	sort.Slice(F.order, func(i, j int) bool {
		return F.C.At(F.order[i]).Index < F.C.At(F.order[j]).Index
	})
}

func (F *Finder) sortByKey() {
	sort.SliceStable(F.order, func(i, j int) bool {
		a, b := F.C.At(F.order[i]), F.C.At(F.order[j])
		if a.Key != b.Key {
			return a.Key < b.Key
		}
		return a.Aux < b.Aux
	})
}

// sortForBlock sorts the pairs so that block gid comes first, its members ordered by
// the sum of their average distances to the rest of the block. The
// other pairs follow, in order of distance to the block.
func (F *Finder) sortForBlock(gid int) {
	n := F.n
	for _, h := range F.order {
		F.C.At(h).Aux = 0
	}
	for i1, h1 := range F.order {
		p1 := F.C.At(h1)
		if p1.GID == gid {
			p1.Key = 0
			for _, h2 := range F.order[i1+1:] {
				p2 := F.C.At(h2)
				if p2.GID != gid {
					continue
				}
				a := float32(F.aver[p1.Index*n+p2.Index])
				p1.Aux += a
				p2.Aux += a
			}
			continue
		}
		min := 1e100
		for _, h2 := range F.order {
			p2 := F.C.At(h2)
			if p2.GID != gid {
				continue
			}
			if d := F.aver[p1.Index*n+p2.Index]; d < min {
				min = d
			}
		}
		p1.Key = min
	}
	F.sortByKey()
}

// refine searches again for the block gid, after sorting the pairs by their proximity to it.
func (F *Finder) refine(gid int) int {
	F.sortForBlock(gid)
	for _, h := range F.order {
		if p := F.C.At(h); p.GID == gid {
			p.GID = 0
		}
	}
	return F.findLargest(gid)
}

// findLargest finds the largest set of pairs, among those not yet in blocks with ids smaller than gid,
// where all the deviations of interresidue distances are within the tolerance. It assigns gid to those
// pairs and returns their number.
// For each residue, up to nTrace candidate sets are kept, each of them the
// extension of a candidate of an earlier residue in the working order.
func (F *Finder) findLargest(gid int) int {
	n, nt := F.n, F.O.NTrace()
	ne, tr, ind, skip := F.ne, F.trace, F.ind, F.skip
	for r, h := range F.order {
		p := F.C.At(h)
		ind[r] = p.Index
		skip[r] = p.GID > 0 && p.GID < gid
	}
	start1, end1, step1 := 0, n, 1
	if F.O.Reverse() {
		start1, end1, step1 = n-1, -1, -1
	}
	for r1 := start1; r1 != end1; r1 += step1 {
		if skip[r1] {
			continue
		}
		b1 := r1 * nt
		for s := 0; s < nt; s++ {
			ne[b1+s] = 0
			tr[2*(b1+s)] = -1
			tr[2*(b1+s)+1] = -1
		}
		ne[b1] = 1
		minInd, nTraced := -1, 1
		i1 := ind[r1]
		start2, end2, step2 := r1-1, -1, -1
		if F.O.Reverse() {
			start2, end2, step2 = r1+1, n, 1
		}
		for r2 := start2; r2 != end2; r2 += step2 {
			if skip[r2] {
				continue
			}
			for s := 0; s < nt; s++ {
				b2 := r2*nt + s
				if ne[b2] <= 0 {
					break
				}
				if nTraced == nt && ne[b2] < ne[b1+minInd] {
					continue
				}
				neNew := ne[b2] + 1
				bad := false
				for rt, st := int32(r2), int32(s); rt >= 0 && st >= 0; {
					if F.bad[ind[rt]*n+i1] {
						bad = true
						break
					}
					k := 2 * (int(rt)*nt + int(st))
					rt, st = tr[k], tr[k+1]
				}
				if bad {
					continue
				}
				put := -1
				if nTraced < nt {
					put = nTraced
					nTraced++
				} else if neNew > ne[b1+minInd] {
					put = minInd
				}
				if put < 0 {
					continue
				}
				ne[b1+put] = neNew
				tr[2*(b1+put)] = int32(r2)
				tr[2*(b1+put)+1] = int32(s)
				minInd = 1
				min := ne[b1+1]
				for i := 2; i < nTraced; i++ {
					if ne[b1+i] < min {
						min = ne[b1+i]
						minInd = i
					}
				}
			}
		}
	}
	rBest, sBest := -1, -1
	var neBest int32
	for r := 0; r < n; r++ {
		if skip[r] {
			continue
		}
		for s := 0; s < nt; s++ {
			if ne[r*nt+s] > neBest {
				neBest = ne[r*nt+s]
				rBest, sBest = r, s
			}
		}
	}
	if rBest < 0 {
		return int(neBest)
	}
	for rt, st := int32(rBest), int32(sBest); rt >= 0 && st >= 0; {
		F.C.At(F.order[rt]).GID = gid
		k := 2 * (int(rt)*nt + int(st))
		rt, st = tr[k], tr[k+1]
	}
	return int(neBest)
}

// findCompact keeps, from block gid, the part that is single-linkage clustered, with a cutoff of CompactCutoff,
// around the most central member of the block. It returns the number of pairs kept, or 0 if the block is empty.
func (F *Finder) findCompact(gid int) int {
	F.sortForBlock(gid)
	p0 := F.C.At(F.order[0])
	if p0.GID != gid {
		return 0
	}
	n := F.n
	i0 := p0.Index
	p0.Key, p0.Aux = 0, 0
	for _, h := range F.order[1:] {
		p := F.C.At(h)
		p.Key = F.aver[i0*n+p.Index]
		p.Aux = 0
	}
	F.sortByKey()
	ret := 1
	for i1 := 1; i1 < n; i1++ {
		p1 := F.C.At(F.order[i1])
		if p1.GID != gid {
			continue
		}
		p1.GID = 0
		for _, h2 := range F.order[:i1] {
			p2 := F.C.At(h2)
			if p2.GID != gid {
				continue
			}
			if F.aver[p1.Index*n+p2.Index] < CompactCutoff {
				p1.GID = gid
				ret++
				break
			}
		}
	}
	return ret
}

// BlockSizes returns the number of pairs in each block found, the size of
// block i is in the element i-1.
func (F *Finder) BlockSizes() []int {
	if F.NRigids <= 0 {
		return nil
	}
	ret := make([]int, F.NRigids)
	for i := range ret {
		ret[i] = F.C.CountGID(i + 1)
	}
	return ret
}

// Coverage returns the fraction of the pairs of interest that belong to some block.
func (F *Finder) Coverage() float64 {
	sizes := F.BlockSizes()
	if len(sizes) == 0 || F.n == 0 {
		return 0
	}
	fs := make([]float64, len(sizes))
	for i, v := range sizes {
		fs[i] = float64(v)
	}
	return floats.Sum(fs) / float64(F.n)
}
