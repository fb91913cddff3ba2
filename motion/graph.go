/*
 * graph.go, part of gohinge.
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
	"gonum.org/v1/gonum/graph"
)

// Block is a rigid block, as a graph node.
type Block struct {
	Id   int
	Size int //number of residue pairs.
}

func (B *Block) ID() int64 {
	return int64(B.Id)
}

// Link joins two blocks. In a motion tree, B2 moves relative to B1.
type Link struct {
	B1, B2 *Block
	Norm   float64 //mean displacement of B2 when superimposed as B1.
}

func (L *Link) From() graph.Node {
	return L.B1
}

func (L *Link) To() graph.Node {
	return L.B2
}

// ReversedEdge returns a new link with the blocks swapped.
func (L *Link) ReversedEdge() graph.Edge {
	return &Link{B1: L.B2, B2: L.B1, Norm: L.Norm}
}

func (L *Link) Weight() float64 {
	return L.Norm
}

// Blocks implements gonum's graph.Nodes.
type Blocks struct {
	Blocks []*Block
	curr   int
}

func newBlocks(b []*Block) *Blocks {
	return &Blocks{Blocks: b, curr: -1}
}

// Len returns the number of blocks not yet iterated over.
func (B *Blocks) Len() int {
	return len(B.Blocks) - B.curr - 1
}

func (B *Blocks) Reset() {
	B.curr = -1
}

func (B *Blocks) Next() bool {
	if B.curr+1 >= len(B.Blocks) {
		return false
	}
	B.curr++
	return true
}

func (B *Blocks) Node() graph.Node {
	if B.curr < 0 || B.curr >= len(B.Blocks) {
		return nil
	}
	return B.Blocks[B.curr]
}

// Graph is a set of blocks and the links among them. It implements gonum's graph.Graph
// and graph.Weighted. Unless Directed is true, links are taken to go both ways.
type Graph struct {
	Blocks   []*Block
	Links    []*Link
	Directed bool
}

// Node returns the block with the given id, or nil.
func (G *Graph) Node(id int64) graph.Node {
	for _, b := range G.Blocks {
		if b.ID() == id {
			return b
		}
	}
	return nil
}

func (G *Graph) block(id int64) *Block {
	for _, b := range G.Blocks {
		if b.ID() == id {
			return b
		}
	}
	return nil
}

func (G *Graph) Nodes() graph.Nodes {
	return newBlocks(G.Blocks)
}

// From returns the blocks reachable from the block id through one link.
func (G *Graph) From(id int64) graph.Nodes {
	ret := make([]*Block, 0)
	for _, l := range G.Links {
		if l.B1.ID() == id {
			ret = append(ret, l.B2)
		} else if !G.Directed && l.B2.ID() == id {
			ret = append(ret, l.B1)
		}
	}
	return newBlocks(ret)
}

func (G *Graph) link(id1, id2 int64) *Link {
	for _, l := range G.Links {
		if l.B1.ID() == id1 && l.B2.ID() == id2 {
			return l
		}
		if !G.Directed && l.B1.ID() == id2 && l.B2.ID() == id1 {
			return l
		}
	}
	return nil
}

func (G *Graph) HasEdgeBetween(id1, id2 int64) bool {
	return G.link(id1, id2) != nil || G.link(id2, id1) != nil
}

// Edge returns the link from uid to vid, or nil.
func (G *Graph) Edge(uid, vid int64) graph.Edge {
	l := G.link(uid, vid)
	if l == nil {
		return nil
	}
	return l
}

func (G *Graph) WeightedEdge(uid, vid int64) graph.WeightedEdge {
	l := G.link(uid, vid)
	if l == nil {
		return nil
	}
	return l
}

func (G *Graph) Weight(id1, id2 int64) (w float64, ok bool) {
	if id1 == id2 {
		return 0.0, true
	}
	l := G.link(id1, id2)
	if l == nil {
		return -1, false
	}
	return l.Weight(), true
}

// Connect adds a link between the blocks with ids id1 and id2, if both exist and
// are not linked yet. It returns true if the link was added.
func (G *Graph) Connect(id1, id2 int, norm float64) bool {
	b1, b2 := G.block(int64(id1)), G.block(int64(id2))
	if b1 == nil || b2 == nil || id1 == id2 || G.link(int64(id1), int64(id2)) != nil {
		return false
	}
	G.Links = append(G.Links, &Link{B1: b1, B2: b2, Norm: norm})
	return true
}
