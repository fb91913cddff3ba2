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

package nma

import (
	"log"

	hinge "github.com/rmera/gohinge"
)

const (
	DefaultGamma  = 1.0
	DefaultCutoff = 15.0 //A
)

// Options contains the options for the elastic network.
type Options struct {
	gamma    float64
	cutoff   float64
	selected func(hinge.Residue) bool
}

// DefaultOptions returns options for a network with springs up to 15 A, all of them equally stiff,
// over all the residues.
func DefaultOptions() *Options {
	r := new(Options)
	r.gamma = DefaultGamma
	r.cutoff = DefaultCutoff
	return r
}

// Returns the stiffness of the springs between residues of the same rigid block, relative to the
// others, and sets it to a new value, if given. Negative values are ignored.
func (O *Options) Gamma(g ...float64) float64 {
	if len(g) > 0 {
		if g[0] < 0 {
			log.Printf("nma: Negative gamma %g ignored", g[0])
		} else {
			O.gamma = g[0]
		}
	}
	return O.gamma
}

// Returns the largest distance, in A, between two residues joined by a spring, and sets
// it to a new value, if given. Values that are not positive are ignored.
func (O *Options) Cutoff(c ...float64) float64 {
	if len(c) > 0 {
		if c[0] <= 0 {
			log.Printf("nma: Cutoff %g ignored", c[0])
		} else {
			O.cutoff = c[0]
		}
	}
	return O.cutoff
}

// Returns the function that tells whether a residue is included in the network, and sets
// it, if given. A nil function includes all residues.
func (O *Options) Selected(f ...func(hinge.Residue) bool) func(hinge.Residue) bool {
	if len(f) > 0 {
		O.selected = f[0]
	}
	return O.selected
}

func (O *Options) use(r hinge.Residue) bool {
	if r.Gap() || r.Coords() == nil {
		return false
	}
	return O.selected == nil || O.selected(r)
}
