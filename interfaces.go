/*
 * interfaces.go, part of gohinge.
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

import v3 "github.com/rmera/gohinge/v3"

// Residue is what the geometric algorithms need from a residue of a molecule model.
// The model owns the residues, the algorithms only borrow them.
type Residue interface {

	//Coords returns a 1x3 matrix with the coordinates of the
	//representative atom (normally, the C-alpha) or nil if the
	//residue has no such atom.
	Coords() *v3.Matrix

	//Letter returns the one-letter code of the residue.
	Letter() byte

	//Serial returns the residue number in its chain.
	Serial() int

	//Gap is true for gap placeholders, which have no structure.
	Gap() bool

	GroupID() int
	SetGroupID(gid int)

	//Aligned tells whether the counterpart of this residue in an alignment
	//is not a gap.
	Aligned() bool
	SetAligned(aligned bool)

	//ConnectedTo is true if the residue is chemically bonded to other.
	ConnectedTo(other Residue) bool
}

// Chain is an ordered sequence of residues.
type Chain interface {
	ID() byte
	Len() int

	//Residue returns the ith residue of the chain. Should panic
	//if out of range.
	Residue(i int) Residue
}

// GapChain is a chain where gap placeholders can be spliced in and out, so
// it can be made co-indexed with another chain after an alignment.
type GapChain interface {
	Chain

	//InsertGap puts a new gap placeholder at position i, shifting
	//the residues from i on.
	InsertGap(i int)

	//RemoveGaps deletes all the gap placeholders in the chain.
	RemoveGaps()
}

//Errors

// Error is the interface for errors that all packages in this library implement. The Decorate method allows to add and retrieve info from the
// error, without changing it's type or wrapping it around something else.
type Error interface {
	Error() string
	Decorate(string) []string //Adds information when the error is passed up. Each call also returns the "decoration" slice of strings resulting from the current call. If passed an empty string, it just returns the current value.
	Critical() bool
}

// CError is the Error implementation for the root package.
type CError struct {
	msg      string
	deco     []string
	critical bool
}

func (err CError) Error() string { return err.msg }

// Decorate will add the dec string to the decoration slice of strings of the error,
// and return the resulting slice.
func (err CError) Decorate(dec string) []string {
	if dec == "" {
		return err.deco
	}
	err.deco = append(err.deco, dec)
	return err.deco
}

// Critical returns whether the error is critical or it can be ignored
func (err CError) Critical() bool { return err.critical }
