/*
 * doc.go, part of gohinge.
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

/*Package hinge is the main package of the goHinge library. goHinge compares two conformations
of a protein (or of two related proteins) and finds out which parts of them move as rigid
bodies, and how.

The root package holds the data model shared by the rest of the library: the Residue and
Chain interfaces that any molecule model can implement, a simple implementation of them
(Res and SimpleChain) and the Correspondence between two sets of aligned chains.


	**goHinge Capabilities**


    Aligns two sequences with the Needleman-Wunsch algorithm, affine gap penalties
	and free end gaps, and writes the gaps back into the chains (package align).

    Superimposes two sets of points with Kabsch's closed-form method, and gives the
	rotation axis and angle of the superposition (package kabsch).

    Partitions the aligned residues into rigid blocks, the sets of residues whose
	interresidue distances are conserved between the conformations (package rigid).

    Obtains displacement fields, screw motions of each block relative to another,
	interpolations between conformations and the hierarchy of block motions (package motion).

    Calculates the normal modes of an elastic network model of a single
	conformation (package nma).

    Reads and writes block assignments (package groupio) and plots displacement
	profiles and mode spectra (package hingeplot).


A typical session builds two chains, aligns them, builds the Correspondence, runs the rigid block
finder on it and then analyzes the motion of the blocks. The command gohinge (cmd/gohinge) does just
that.

goHinge uses Gonum (gonum.org) for its linear algebra.
*/
package hinge
