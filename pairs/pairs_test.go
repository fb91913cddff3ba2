/*
 * pairs_test.go, part of gohinge.
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

package pairs

import "testing"

// checks that next/prev links agree in the whole chain starting at first
// and returns the objects in order.
func consistent(Te *testing.T, L *List[string], first int) []string {
	Te.Helper()
	ret := []string{}
	prev := None
	for i := first; i != None; i = L.Next(i) {
		if L.Prev(i) != prev {
			Te.Fatalf("Inconsistent links at %d: prev is %d, expected %d", i, L.Prev(i), prev)
		}
		ret = append(ret, L.At(i).Obj1)
		prev = i
		if len(ret) > L.Len() {
			Te.Fatal("Cycle in list")
		}
	}
	return ret
}

func same(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestInsertExtract(Te *testing.T) {
	L := New[string](4)
	a := L.Add("a", "A", true)
	b := L.Add("b", "B", true)
	c := L.Add("c", "C", false)
	d := L.Add("d", "D", true)
	if !L.InsertAfter(a, c) {
		Te.Fatal("Couldn't insert c after a")
	}
	if !L.InsertBefore(c, b) {
		Te.Fatal("Couldn't insert b before c")
	}
	if !L.InsertAfter(c, d) {
		Te.Fatal("Couldn't insert d after c")
	}
	if got := consistent(Te, L, a); !same(got, []string{"a", "b", "c", "d"}) {
		Te.Errorf("Wrong order %v", got)
	}
	if L.InsertAfter(a, a) {
		Te.Error("A pair should not be inserted after itself")
	}
	if L.InsertAfter(d, b) {
		Te.Error("A linked pair should not be inserted again")
	}
	if L.InsertBefore(a, 100) {
		Te.Error("Invalid handles should be rejected")
	}
	if got := L.Interesting(a); len(got) != 3 || got[2] != d {
		Te.Errorf("Wrong pairs of interest %v", got)
	}
	x := L.ExtractAfter(a)
	if x != b || L.Linked(b) {
		Te.Errorf("ExtractAfter returned %d, expected %d, or left it linked", x, b)
	}
	if got := consistent(Te, L, a); !same(got, []string{"a", "c", "d"}) {
		Te.Errorf("Wrong order after extraction %v", got)
	}
	x = L.ExtractBefore(a)
	if x != None {
		Te.Errorf("Nothing is before the head, got %d", x)
	}
	x = L.ExtractBefore(d)
	if x != c {
		Te.Errorf("ExtractBefore returned %d, expected %d", x, c)
	}
	if got := consistent(Te, L, a); !same(got, []string{"a", "d"}) {
		Te.Errorf("Wrong order after extraction %v", got)
	}
	if L.Head(d) != a {
		Te.Errorf("Wrong head %d", L.Head(d))
	}
	//extracted pairs can be linked again
	if !L.InsertBefore(a, b) {
		Te.Error("Couldn't re-insert an extracted pair")
	}
	if got := consistent(Te, L, b); !same(got, []string{"b", "a", "d"}) {
		Te.Errorf("Wrong order after re-insertion %v", got)
	}
}

func TestConnections(Te *testing.T) {
	L := New[string](3)
	a := L.Add("a", "A", true)
	b := L.Add("b", "B", true)
	c := L.Add("c", "C", true)
	if !L.AddConnection(a, b) {
		Te.Fatal("Couldn't connect a and b")
	}
	if L.AddConnection(b, a) {
		Te.Error("The connection should already exist")
	}
	if L.AddConnection(c, c) {
		Te.Error("A pair should not be connected to itself")
	}
	if !L.IsConnectedTo(b, a) || !L.IsConnectedTo(a, b) {
		Te.Error("Connections should be symmetric")
	}
	if L.IsConnectedTo(a, c) {
		Te.Error("a and c are not connected")
	}
}

func TestGID(Te *testing.T) {
	L := New[string](3)
	for _, v := range []string{"a", "b", "c"} {
		L.Add(v, v, true)
	}
	L.At(0).GID = 1
	L.At(1).GID = 2
	L.At(2).GID = 2
	L.SwapGID(1, 2)
	if L.CountGID(1) != 2 || L.CountGID(2) != 1 {
		Te.Errorf("Wrong counts after swapping %d %d", L.CountGID(1), L.CountGID(2))
	}
	L.ResetGID()
	if L.CountGID(0) != 3 {
		Te.Error("ResetGID didn't reset all ids")
	}
}
