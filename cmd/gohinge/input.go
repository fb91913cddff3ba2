/*
 * input.go, part of gohinge.
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

package main

import (
	"fmt"
	"io"
	"os"

	hinge "github.com/rmera/gohinge"
	"github.com/rmera/gohinge/align"
	"github.com/rmera/gohinge/cmd/gohinge/config"
	"github.com/rmera/gohinge/groupio"
	"github.com/spf13/viper"
)

// structures holds both conformations read from the input.
type structures struct {
	name1, name2 string
	c1, c2       []*hinge.SimpleChain
}

func (s *structures) chains1() []hinge.Chain { return hinge.Chains(s.c1) }
func (s *structures) chains2() []hinge.Chain { return hinge.Chains(s.c2) }

// both returns the chains of both conformations, as they are stored in group files.
func (s *structures) both() []hinge.Chain {
	return append(s.chains1(), s.chains2()...)
}

// load reads the settings and the structures in name ("-" for the standard input). It aligns
// the chains if the settings ask for it. If readGroups is true and a group file is given, the
// group ids in it replace those in the input.
func load(name string, readGroups bool, out io.Writer) (config.Config, *structures, error) {
	c, err := config.NewConfig(viper.GetViper())
	if err != nil {
		return c, nil, err
	}
	var in io.Reader = os.Stdin
	if name != "-" {
		f, err := os.Open(name)
		if err != nil {
			return c, nil, err
		}
		defer f.Close()
		in = f
	}
	J, err := hinge.DecodeJSONPair(in)
	if err != nil {
		return c, nil, err
	}
	s := &structures{name1: J.Name1, name2: J.Name2}
	if s.name1 == "" {
		s.name1 = "first"
	}
	if s.name2 == "" {
		s.name2 = "second"
	}
	if s.c1, s.c2, err = J.Chains(); err != nil {
		return c, nil, err
	}
	if c.Prealign {
		if err := alignAll(c.AlignOptions(), s, out); err != nil {
			return c, nil, err
		}
	}
	if readGroups && c.Groups != "" {
		if err := groupio.Load(c.Groups, s.both()); err != nil {
			return c, nil, err
		}
	}
	return c, s, nil
}

// alignAll aligns each pair of chains in s, writes the gaps into them and prints the alignments to out.
func alignAll(O *align.Options, s *structures, out io.Writer) error {
	A := align.NewAligner(O)
	for i := range s.c1 {
		R := A.AlignChains(s.c1[i], s.c2[i])
		if R.Empty() {
			return fmt.Errorf("can't align chains %c and %c", s.c1[i].Id, s.c2[i].Id)
		}
		if err := align.ApplyToChains(R, s.c1[i], s.c2[i]); err != nil {
			return err
		}
		fmt.Fprintf(out, "Chains %c/%c\n%s\n", s.c1[i].Id, s.c2[i].Id, R)
	}
	return nil
}

// save writes the structures s, with their current group ids and gaps, as JSON to name.
// Does nothing if name is empty.
func save(name string, s *structures) error {
	if name == "" {
		return nil
	}
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := hinge.NewJSONPair(s.name1, s.name2, s.chains1(), s.chains2()).Encode(f); err != nil {
		return err
	}
	return f.Close()
}
