/*
 * cluster.go, part of gohinge.
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

import "github.com/rmera/gohinge/pairs"

func (F *Finder) gid(p int) int { return F.C.At(p).GID }

// fragment returns the end of the run of connected pairs with id gid that starts at p, the
// pair following that run, and the run's length. If p does not have the id gid, the run
// is empty and p itself is returned as the following pair.
func (F *Finder) fragment(p, gid int) (end, after, length int) {
	if F.gid(p) != gid {
		return pairs.None, p, 0
	}
	end = p
	length = 1
	p = F.C.Next(p)
	for p != pairs.None && F.gid(p) == gid && F.C.IsConnectedTo(p, end) {
		end = p
		p = F.C.Next(p)
		length++
	}
	return end, p, length
}

// clusterFragments extends the fragments of block gid that are at least MinBlock long over the
// neighbouring runs of at most gap pairs of interest not in the block, if another fragment of the block
// (or the end of the chain, for gap-1 pairs) lies past them. With gid 0 this removes
// short pieces of blocks surrounded by unassigned pairs.
func (F *Finder) clusterFragments(gap, gid int) {
	minb := F.O.MinBlock()
	for p := F.C.First; p != pairs.None; p = F.C.Next(p) {
		start := p
		end, after, length := F.fragment(p, gid)
		p = after
		if length >= minb {
			F.clusterOnSide(gap, gid, start, false)
			F.clusterOnSide(gap, gid, end, true)
		}
		for p != pairs.None && F.gid(p) == gid {
			p = F.C.Next(p)
		}
		if p == pairs.None {
			break
		}
	}
}

// clusterOnSide absorbs into block gid the short runs of pairs found after (or before) start, for as
// long as they are followed by more pairs of the block.
func (F *Finder) clusterOnSide(gap, gid, start int, after bool) {
	step := F.C.Prev
	if after {
		step = F.C.Next
	}
	for {
		p := step(start)
		between := 0
		for p != pairs.None && F.gid(p) != gid {
			if F.C.At(p).Interest {
				between++
			}
			p = step(p)
		}
		if p == pairs.None {
			if between > gap-1 {
				return
			}
		} else if between > gap {
			return
		}
		for start != p {
			if q := F.C.At(start); q.Interest {
				q.GID = gid
			}
			start = step(start)
		}
		for p != pairs.None && F.gid(p) == gid {
			start = p
			p = step(p)
		}
		if p == pairs.None {
			return
		}
	}
}

// clearShortFragments unassigns the runs of connected pairs of block
// gid that are shorter than MinBlock.
func (F *Finder) clearShortFragments(gid int) {
	minb := F.O.MinBlock()
	for p := F.C.First; p != pairs.None; p = F.C.Next(p) {
		start := p
		_, after, length := F.fragment(p, gid)
		p = after
		if length > 0 && length < minb {
			for ; start != p; start = F.C.Next(start) {
				F.C.At(start).GID = 0
			}
		}
		if p == pairs.None {
			break
		}
	}
}
