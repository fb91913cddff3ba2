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

package align

import (
	"log"
	"strings"
)

const (
	DefaultMatrix    = "BLOSUM62"
	DefaultGapOpen   = -10
	DefaultGapExtend = -1
)

// Options contains the options for the sequence alignment.
type Options struct {
	matrixName string
	matrix     *SubMatrix
	gapOpen    int
	gapExtend  int
}

// DefaultOptions returns BLOSUM62 with a gap opening penalty of -10 and
// a gap extension penalty of -1.
func DefaultOptions() *Options {
	r := new(Options)
	r.matrixName = DefaultMatrix
	r.matrix, _ = Matrix(DefaultMatrix)
	r.gapOpen = DefaultGapOpen
	r.gapExtend = DefaultGapExtend
	return r
}

// Returns the name of the substitution matrix used, and sets it to a new
// one, if given. Unknown names are rejected with a warning, and the previous
// matrix is kept.
func (O *Options) Matrix(name ...string) string {
	if len(name) > 0 {
		m, ok := Matrix(name[0])
		if !ok {
			log.Printf("align: Matrix %s is not accepted. Using %s", name[0], O.matrixName)
			return O.matrixName
		}
		O.matrixName = strings.TrimSpace(name[0])
		O.matrix = m
	}
	return O.matrixName
}

// Returns the gap opening penalty, and sets it to a new value, if
// given. Positive values are rejected with a warning.
func (O *Options) GapOpen(p ...int) int {
	if len(p) > 0 {
		if p[0] > 0 {
			log.Printf("align: Gap opening penalty %d is not accepted. Using %d", p[0], O.gapOpen)
			return O.gapOpen
		}
		O.gapOpen = p[0]
	}
	return O.gapOpen
}

// Returns the gap extension penalty, and sets it to a new value, if
// given. Positive values are rejected with a warning.
func (O *Options) GapExtend(p ...int) int {
	if len(p) > 0 {
		if p[0] > 0 {
			log.Printf("align: Gap extension penalty %d is not accepted. Using %d", p[0], O.gapExtend)
			return O.gapExtend
		}
		O.gapExtend = p[0]
	}
	return O.gapExtend
}

func (O *Options) subMatrix() *SubMatrix {
	if O.matrix == nil {
		O.matrix, _ = Matrix(DefaultMatrix)
	}
	return O.matrix
}
