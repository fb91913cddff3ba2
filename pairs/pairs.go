/*
 * pairs.go, part of gohinge.
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

/*Package pairs implements a doubly linked list of correspondence pairs, stored as an arena:
a slice of nodes addressed by integer handles, where None (-1) marks the lack of
a neighbour. Each pair holds two objects (normally, two residues, one from each conformation),
a flag telling whether the pair is of interest, and a few scalar annotations that the
algorithms using the list reuse as they need (group ids, indexes, sort keys).

Pairs also carry a symmetric "connectivity" relation, used to tell whether two alignment
columns are chemically consecutive.

Mutations that would break the list (linking an already linked pair, linking a pair to itself)
are rejected, and the method returns false or None.
*/
package pairs

import "fmt"

// None is the handle for "no pair".
const None = -1

// Pair is one column of a correspondence between two sequences of objects.
type Pair[T any] struct {
	Obj1, Obj2 T
	Interest   bool    //false for columns where one of the objects is a gap.
	GID        int     //group id
	Index      int     //position of the pair among the pairs of interest
	Aux        float32 //auxiliary score
	Key        float64 //sort key
	next, prev int
	conn       []int
}

// List is an arena of pairs. The pairs in the arena may form one or
// more chains, each of them a doubly linked list.
type List[T any] struct {
	nodes []Pair[T]
}

// New returns an empty List with room for capacity pairs.
func New[T any](capacity int) *List[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &List[T]{nodes: make([]Pair[T], 0, capacity)}
}

// Add creates a new, unlinked pair and returns its handle.
func (L *List[T]) Add(obj1, obj2 T, interest bool) int {
	L.nodes = append(L.nodes, Pair[T]{Obj1: obj1, Obj2: obj2, Interest: interest, next: None, prev: None})
	return len(L.nodes) - 1
}

// Len returns the number of pairs in the arena, linked or not.
func (L *List[T]) Len() int {
	return len(L.nodes)
}

// At returns the pair with handle i. Panics if i is out of range.
func (L *List[T]) At(i int) *Pair[T] {
	if i < 0 || i >= len(L.nodes) {
		panic(fmt.Sprintf("pairs: handle %d out of range [0,%d)", i, len(L.nodes)))
	}
	return &L.nodes[i]
}

func (L *List[T]) valid(i int) bool {
	return i >= 0 && i < len(L.nodes)
}

// Next returns the handle of the pair after i, or None.
func (L *List[T]) Next(i int) int {
	return L.At(i).next
}

// Prev returns the handle of the pair before i, or None.
func (L *List[T]) Prev(i int) int {
	return L.At(i).prev
}

// Linked returns true if the pair i has at least one neighbour.
func (L *List[T]) Linked(i int) bool {
	p := L.At(i)
	return p.next != None || p.prev != None
}

// InsertAfter links the unlinked pair p right after the pair at.
// Returns false, and does nothing, if p is already linked, if p and at are the same
// pair, or if either handle is invalid.
func (L *List[T]) InsertAfter(at, p int) bool {
	if !L.valid(at) || !L.valid(p) || at == p || L.Linked(p) {
		return false
	}
	a := &L.nodes[at]
	n := &L.nodes[p]
	n.prev = at
	n.next = a.next
	if a.next != None {
		L.nodes[a.next].prev = p
	}
	a.next = p
	return true
}

// InsertBefore links the unlinked pair p right before the pair at.
// It follows the same rules as InsertAfter.
func (L *List[T]) InsertBefore(at, p int) bool {
	if !L.valid(at) || !L.valid(p) || at == p || L.Linked(p) {
		return false
	}
	a := &L.nodes[at]
	n := &L.nodes[p]
	n.next = at
	n.prev = a.prev
	if a.prev != None {
		L.nodes[a.prev].next = p
	}
	a.prev = p
	return true
}

// ExtractAfter detaches the pair following at and returns its handle, relinking
// at with the pair that followed the extracted one. Returns None if at is the
// last pair of its chain.
func (L *List[T]) ExtractAfter(at int) int {
	if !L.valid(at) {
		return None
	}
	ret := L.nodes[at].next
	if ret == None {
		return None
	}
	L.unlink(ret)
	return ret
}

// ExtractBefore detaches the pair preceding at and returns its handle. Returns None
// if at is the first pair of its chain.
func (L *List[T]) ExtractBefore(at int) int {
	if !L.valid(at) {
		return None
	}
	ret := L.nodes[at].prev
	if ret == None {
		return None
	}
	L.unlink(ret)
	return ret
}

func (L *List[T]) unlink(i int) {
	n := &L.nodes[i]
	if n.prev != None {
		L.nodes[n.prev].next = n.next
	}
	if n.next != None {
		L.nodes[n.next].prev = n.prev
	}
	n.next, n.prev = None, None
}

// AddConnection makes a and b connected. The relation is symmetric.
// Returns false if a and b are the same pair, or if they are already connected.
func (L *List[T]) AddConnection(a, b int) bool {
	if !L.valid(a) || !L.valid(b) || a == b || L.IsConnectedTo(a, b) {
		return false
	}
	L.nodes[a].conn = append(L.nodes[a].conn, b)
	L.nodes[b].conn = append(L.nodes[b].conn, a)
	return true
}

// IsConnectedTo returns true if a and b are connected.
func (L *List[T]) IsConnectedTo(a, b int) bool {
	if !L.valid(a) || !L.valid(b) {
		return false
	}
	for _, v := range L.nodes[a].conn {
		if v == b {
			return true
		}
	}
	return false
}

// Head returns the first pair of the chain containing i.
func (L *List[T]) Head(i int) int {
	if !L.valid(i) {
		return None
	}
	for L.nodes[i].prev != None {
		i = L.nodes[i].prev
	}
	return i
}

// Walk calls f on each pair of the chain starting at first, in order,
// until f returns false or the chain ends.
func (L *List[T]) Walk(first int, f func(i int, p *Pair[T]) bool) {
	for i := first; i != None; i = L.nodes[i].next {
		if !f(i, &L.nodes[i]) {
			return
		}
	}
}

// Interesting returns, in chain order starting at first, the handles of
// the pairs of interest.
func (L *List[T]) Interesting(first int) []int {
	ret := make([]int, 0, len(L.nodes))
	L.Walk(first, func(i int, p *Pair[T]) bool {
		if p.Interest {
			ret = append(ret, i)
		}
		return true
	})
	return ret
}

// ResetGID sets the group id of all pairs in the arena to 0.
func (L *List[T]) ResetGID() {
	for i := range L.nodes {
		L.nodes[i].GID = 0
	}
}

// CountGID returns the number of pairs with the given group id.
func (L *List[T]) CountGID(gid int) int {
	ret := 0
	for i := range L.nodes {
		if L.nodes[i].GID == gid {
			ret++
		}
	}
	return ret
}

// SwapGID exchanges the group ids gid1 and gid2 in all pairs.
func (L *List[T]) SwapGID(gid1, gid2 int) {
	for i := range L.nodes {
		switch L.nodes[i].GID {
		case gid1:
			L.nodes[i].GID = gid2
		case gid2:
			L.nodes[i].GID = gid1
		}
	}
}
