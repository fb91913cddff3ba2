/*
 * options.go, part of gohinge.
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

const (
	DefaultDelta    = 2.5 //A
	DefaultNTrace   = 50
	DefaultMinBlock = 4

	//CompactCutoff is the single-linkage cutoff, in A, used to
	//separate a block into spatially compact parts.
	CompactCutoff = 10.0
)

// Options contains the options for the rigid block search.
type Options struct {
	delta    float64
	refine   bool
	cluster  bool
	reverse  bool
	nTrace   int
	minBlock int
}

// DefaultOptions returns options for a search with a maximum deviation of
// interresidue distances of 2.5 A, with refinement and clustering of short fragments.
func DefaultOptions() *Options {
	r := new(Options)
	r.delta = DefaultDelta
	r.refine = true
	r.cluster = true
	r.nTrace = DefaultNTrace
	r.minBlock = DefaultMinBlock
	return r
}

// Returns the largest allowed deviation, in A, of an interresidue distance
// between the two conformations, for both residues to be in the same
// rigid block. Sets it to a new value, if given.
func (O *Options) Delta(d ...float64) float64 {
	if len(d) > 0 {
		O.delta = d[0]
	}
	return O.delta
}

// Returns whether found blocks are refined, and sets the value, if given.
func (O *Options) Refine(r ...bool) bool {
	if len(r) > 0 {
		O.refine = r[0]
	}
	return O.refine
}

// Returns whether short fragments and gaps are clustered with the blocks, and
// sets the value, if given.
func (O *Options) Cluster(c ...bool) bool {
	if len(c) > 0 {
		O.cluster = c[0]
	}
	return O.cluster
}

// Returns whether the search goes from the C-terminal to the N-terminal,
// and sets the value, if given.
func (O *Options) Reverse(r ...bool) bool {
	if len(r) > 0 {
		O.reverse = r[0]
	}
	return O.reverse
}

// Returns the number of candidate chains kept for each residue during
// the search, and sets it to a new value, if given. Values smaller than 2 are ignored.
func (O *Options) NTrace(n ...int) int {
	if len(n) > 0 && n[0] > 1 {
		O.nTrace = n[0]
	}
	return O.nTrace
}

// Returns the smallest number of residues for a rigid block, and sets it to
// a new value, if given. Values smaller than 1 are ignored.
func (O *Options) MinBlock(n ...int) int {
	if len(n) > 0 && n[0] > 0 {
		O.minBlock = n[0]
	}
	return O.minBlock
}
