/*
 * connect.go, part of gohinge.
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

package hinge

// MaxCADist is the largest distance, in A, between two consecutive C-alpha atoms
// for them to be considered bonded.
const MaxCADist = 4.2

// ConnectCA bonds each residue of C to the residue before it, if both have a representative
// atom and the atoms are within MaxCADist. Gaps are skipped, but a residue without coordinates
// breaks the chain. It returns the number of bonds created.
func ConnectCA(C *SimpleChain) int {
	const maxd2 = MaxCADist * MaxCADist
	var prev *Res
	ret := 0
	for _, r := range C.Res {
		if r.gap {
			continue
		}
		p := prev
		prev = r
		if p == nil || p.Pos == nil || r.Pos == nil {
			continue
		}
		d2 := 0.0
		for j := 0; j < 3; j++ {
			d := r.Pos.At(0, j) - p.Pos.At(0, j)
			d2 += d * d
		}
		if d2 > maxd2 {
			continue
		}
		if !r.ConnectedTo(p) {
			r.Bond(p)
			ret++
		}
	}
	return ret
}
